package schema

import "errors"

var (
	ErrParsingCancelled  = errors.New("schema parsing cancelled")
	ErrFailedToParseYAML = errors.New("failed to parse YAML schema")
	ErrFailedToParseJSON = errors.New("failed to parse JSON schema")
	ErrFailedToReadFile  = errors.New("failed to read schema file")
	ErrUnsupportedFormat = errors.New("unsupported schema file format")

	ErrNoForms          = errors.New("schema defines no forms")
	ErrUnknownRuleType  = errors.New("unknown rule type")
	ErrMissingMax       = errors.New("rule requires max")
	ErrMissingPattern   = errors.New("rule requires pattern")
	ErrInvalidPattern   = errors.New("invalid rule pattern")
	ErrInvalidFormField = errors.New("invalid form field")

	ErrUnknownForm = errors.New("unknown form")
)
