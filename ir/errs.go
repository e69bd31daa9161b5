package ir

import (
	"errors"

	"github.com/signadot/flowdoc/format"
)

var (
	errInternal = errors.New("internal error")

	ErrParse     = errors.New("parse error")
	ErrBadFormat = format.ErrBadFormat
)
