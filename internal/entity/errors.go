package entity

import "errors"

var (
	// Request errors
	ErrEmptySource          = errors.New("tikz code must not be empty")
	ErrInvalidFormat        = errors.New("output_format must be png, pdf or both")
	ErrInvalidBackground    = errors.New("background must be white or transparent")
	ErrInvalidDPI           = errors.New("dpi is out of the supported range")
	ErrUnsupportedExtension = errors.New("file must have a .tex, .tikz or .txt extension")
	ErrNotUTF8              = errors.New("file content is not valid UTF-8")

	// Compilation errors
	ErrCompileFailed  = errors.New("latex compilation failed")
	ErrCompileTimeout = errors.New("latex compilation timed out")

	// Conversion errors
	ErrConvertFailed  = errors.New("pdf to png conversion failed")
	ErrConvertTimeout = errors.New("pdf to png conversion timed out")

	// General errors
	ErrNoArtifact = errors.New("expected output file was not generated")
)

// IsClientError reports whether err should map to HTTP 400 rather than 500.
func IsClientError(err error) bool {
	for _, e := range []error{
		ErrEmptySource,
		ErrInvalidFormat,
		ErrInvalidBackground,
		ErrInvalidDPI,
		ErrUnsupportedExtension,
		ErrNotUTF8,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
