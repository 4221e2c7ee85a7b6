package archive

import "errors"

// Sentinel errors for package archive.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Handle errors
	ErrNotFound          = errors.New("path does not exist")
	ErrUnsupportedFormat = errors.New("unsupported extension")

	// Codec errors
	ErrWriteUnsupported  = errors.New("format cannot be written")
	ErrUnsafePath        = errors.New("entry escapes extraction directory")
	ErrExpectedDirectory = errors.New("expected directory but got file")
)
