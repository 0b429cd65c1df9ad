package siteswap

import "errors"

// User-facing failure messages.
const (
	MessageMissingPattern = `Invalid siteswap: the "pattern" attribute is required.`
	MessageInvalid        = "Invalid siteswap."
)

var (
	// ErrParse indicates that the block text is not well-formed.
	ErrParse = errors.New("siteswap block parse error")
	// ErrMissingPattern indicates a mapping block without a pattern key.
	ErrMissingPattern = errors.New("siteswap block missing pattern")
	// ErrUnsupportedShape indicates a block that is neither a mapping nor a scalar.
	ErrUnsupportedShape = errors.New("siteswap block has unsupported shape")
)

// ErrorKind classifies a block failure.
type ErrorKind string

const (
	ErrorParse            ErrorKind = "parse"
	ErrorMissingPattern   ErrorKind = "missing_pattern"
	ErrorUnsupportedShape ErrorKind = "unsupported_shape"
)

// BlockError is the failure outcome of a render. Its Error text is the
// message shown in place of the image.
type BlockError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *BlockError) Error() string {
	return e.Message
}

func (e *BlockError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *BlockError) Is(target error) bool {
	switch e.Kind {
	case ErrorParse:
		return target == ErrParse
	case ErrorMissingPattern:
		return target == ErrMissingPattern
	case ErrorUnsupportedShape:
		return target == ErrUnsupportedShape
	}
	return false
}

func parseError(err error) *BlockError {
	return &BlockError{Kind: ErrorParse, Message: err.Error(), Err: err}
}

func missingPatternError() *BlockError {
	return &BlockError{Kind: ErrorMissingPattern, Message: MessageMissingPattern}
}

func unsupportedShapeError(err error) *BlockError {
	return &BlockError{Kind: ErrorUnsupportedShape, Message: MessageInvalid, Err: err}
}
