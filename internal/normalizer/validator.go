// Package normalizer converts raw provider records into Articles.
package normalizer

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"headlines/internal/models"
)

// dateLen is the length in characters of a YYYY-MM-DD date prefix.
const dateLen = 10

// Validation errors. Every record-level failure wraps ErrMalformedRecord.
var (
	ErrMalformedRecord    = errors.New("malformed record")
	ErrMissingTitle       = errors.New("missing title")
	ErrMissingSource      = errors.New("missing source.name")
	ErrMissingPublishedAt = errors.New("missing publishedAt")
	ErrShortPublishedAt   = errors.New("publishedAt shorter than a date")
	ErrInvalidPublishedAt = errors.New("publishedAt is not valid UTF-8")
	ErrMissingURL         = errors.New("missing url")
)

// Validator checks that a raw record carries every field an Article needs.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks if a raw record meets requirements.
func (v *Validator) Validate(raw *models.RawArticle) error {
	if raw == nil {
		return fmt.Errorf("%w: nil record", ErrMalformedRecord)
	}

	if raw.Title == nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, ErrMissingTitle)
	}

	if raw.Source == nil || raw.Source.Name == nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, ErrMissingSource)
	}

	if raw.PublishedAt == nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, ErrMissingPublishedAt)
	}

	if !utf8.ValidString(*raw.PublishedAt) {
		return fmt.Errorf("%w: %w: %q", ErrMalformedRecord, ErrInvalidPublishedAt, *raw.PublishedAt)
	}

	if _, ok := datePrefix(*raw.PublishedAt); !ok {
		return fmt.Errorf("%w: %w: %q", ErrMalformedRecord, ErrShortPublishedAt, *raw.PublishedAt)
	}

	if raw.URL == nil {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, ErrMissingURL)
	}

	return nil
}

// datePrefix returns the first dateLen characters of s. ok is false when s
// is shorter than that.
func datePrefix(s string) (prefix string, ok bool) {
	n := 0

	for i := range s {
		if n == dateLen {
			return s[:i], true
		}

		n++
	}

	return s, n == dateLen
}
