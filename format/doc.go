// Package format names the document encodings flowdoc reads and writes.
package format
