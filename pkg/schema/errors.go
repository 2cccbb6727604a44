package schema

import "errors"

var (
	ErrParsingCancelled   = errors.New("schema parsing cancelled")
	ErrFailedToParseYAML  = errors.New("failed to parse YAML schema")
	ErrFailedToParseJSON  = errors.New("failed to parse JSON schema")
	ErrInvalidDocument    = errors.New("invalid schema document")
	ErrUnsupportedFormat  = errors.New("unsupported schema file format")
	ErrFailedToReadFile   = errors.New("failed to read schema file")
	ErrDuplicateFieldName = errors.New("duplicate field name")
)
