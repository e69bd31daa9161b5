// Package catalog provides the lookup service flow documents are
// classified and ordered against.
//
// The core only ever sees the [Cache] interface: a read-only,
// already populated view that answers "what is the entry named n in
// catalog k". [Registry] is the in-memory implementation and [LoadDir]
// fills one from Camel catalog style files such as
//
//	log:
//	  model:
//	    title: Log
//	  properties:
//	    message: {index: 0, kind: attribute, type: string}
//	    loggingLevel: {index: 1, kind: attribute, type: enum}
//
// Entries without a properties map are kept; they carry no ordering
// metadata.
package catalog
