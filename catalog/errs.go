package catalog

import "errors"

var ErrCatalog = errors.New("catalog error")
