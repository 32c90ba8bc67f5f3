package ruleset

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported rule set format")
	ErrFailedToReadFile  = errors.New("failed to read rule set file")
	ErrFailedToDecode    = errors.New("failed to decode rule set")
	ErrInvalidStep       = errors.New("invalid rule step")
	ErrMissingFieldName  = errors.New("field name is required")
)
