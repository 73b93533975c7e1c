// Package bmpmerr defines the error kinds the core can return:
// InvalidInput (EmptyInput, InvalidEncoding, InputTooLong) and RuleLoad
// (FileNotFound, InvalidFormat, MissingField). The shape follows go-dirsyn's
// err.go: sentinel values for the fixed set of conditions, plus small
// constructor helpers for the ones that carry parameters.
package bmpmerr

import (
	"errors"
	"fmt"
)

// InvalidInput sentinels.
var (
	ErrEmptyInput      = errors.New("bmpm: empty input")
	ErrInvalidEncoding = errors.New("bmpm: input is not valid UTF-8 or any supported legacy encoding")
	ErrInputTooLong    = errors.New("bmpm: input exceeds the configured length cap")
)

// RuleLoad sentinels, surfaced by the external rule-file loader; the
// rewrite engine itself never returns these.
var (
	ErrRuleFileNotFound  = errors.New("bmpm: rule file not found")
	ErrRuleInvalidFormat = errors.New("bmpm: rule file is not valid JSON")
	ErrRuleMissingField  = errors.New("bmpm: rule file is missing a required field")
)

// TooLong wraps ErrInputTooLong with the offending length.
func TooLong(length, max int) error {
	return fmt.Errorf("%w: normalized length %d exceeds cap %d", ErrInputTooLong, length, max)
}

// InvalidEncoding wraps ErrInvalidEncoding with the attempted candidates.
func InvalidEncoding(tried []string) error {
	return fmt.Errorf("%w (tried: %v)", ErrInvalidEncoding, tried)
}

// MissingField wraps ErrRuleMissingField with the field and file name.
func MissingField(file, field string) error {
	return fmt.Errorf("%w: %q in %s", ErrRuleMissingField, field, file)
}

// FileNotFound wraps ErrRuleFileNotFound with the missing path.
func FileNotFound(path string) error {
	return fmt.Errorf("%w: %s", ErrRuleFileNotFound, path)
}
