package itinerary

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrMalformedResponse   = errors.New("malformed generation response")
	ErrGenerationFailure   = errors.New("generation failed")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrInvalidInput        = errors.New("invalid input")
)

// maxRawExcerpt bounds how much of an offending payload is kept for logs.
const maxRawExcerpt = 512

// MalformedResponseError reports a backend payload that could not be decoded
// or that decoded into something breaking the domain invariants.
type MalformedResponseError struct {
	Kind       Kind
	Raw        string
	Violations []string
	Err        error
}

func newMalformedResponse(kind Kind, raw string, err error, violations ...string) *MalformedResponseError {
	return &MalformedResponseError{
		Kind:       kind,
		Raw:        truncate(raw, maxRawExcerpt),
		Violations: violations,
		Err:        err,
	}
}

func (e *MalformedResponseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "malformed %s response", e.Kind)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if len(e.Violations) > 0 {
		fmt.Fprintf(&b, ": %d violation(s): %s", len(e.Violations), strings.Join(e.Violations, "; "))
	}
	return b.String()
}

func (e *MalformedResponseError) Is(target error) bool { return target == ErrMalformedResponse }

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// GenerationError is what the itinerary flow surfaces for any backend or
// parse failure.
type GenerationError struct {
	Kind Kind
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Kind, e.Err)
}

func (e *GenerationError) Is(target error) bool { return target == ErrGenerationFailure }

func (e *GenerationError) Unwrap() error { return e.Err }

// ValidationError rejects caller input before any backend call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// keep the cut on a rune boundary
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "...(truncated)"
}
