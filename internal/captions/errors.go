package captions

import (
	"errors"
	"fmt"
)

// ErrEmptyInput reports an empty word sequence. It is not fatal: callers
// render a header-only document instead of failing.
var ErrEmptyInput = errors.New("empty word sequence")

// ConfigError reports an invalid grouping or styling option. Nothing is
// processed once one is found.
type ConfigError struct {
	Option string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid option %s=%v: %s", e.Option, e.Value, e.Reason)
}

// InputValidationError reports a malformed word timing record. Index is the
// zero-based position of the record in the input sequence.
type InputValidationError struct {
	Index  int
	Field  string
	Value  any
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("word %d: field %s=%v: %s", e.Index, e.Field, e.Value, e.Reason)
}

// SerializationError reports an internal consistency violation discovered
// while rendering, such as a negative highlight duration. It indicates a
// logic defect upstream, not bad user input.
type SerializationError struct {
	Block  int
	Word   int
	Reason string
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialize block %d word %d: %s", e.Block, e.Word, e.Reason)
}
