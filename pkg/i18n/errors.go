package i18n

import "errors"

var (
	ErrParsingCancelled  = errors.New("catalog parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrInvalidStructure  = errors.New("invalid catalog structure")

	ErrUnsupportedFormat = errors.New("unsupported catalog file format")
	ErrFailedToReadFile  = errors.New("failed to read catalog file")
)
