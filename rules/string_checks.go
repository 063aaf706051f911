package rules

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

// Required fails on strings that are empty after trimming whitespace.
func Required() Check[string] {
	return func(value string) *Failure {
		if strings.TrimSpace(value) != "" {
			return nil
		}
		return &Failure{
			Message: "field is required",
			Key:     "validation.required",
			Values:  map[string]any{},
		}
	}
}

// MinLen fails on strings shorter than min bytes.
func MinLen(min int) Check[string] {
	return func(value string) *Failure {
		if len(value) >= min {
			return nil
		}
		return &Failure{
			Message: fmt.Sprintf("must be at least %d characters long", min),
			Key:     "validation.min_length",
			Values:  map[string]any{"min": min},
		}
	}
}

// MaxLen fails on strings longer than max bytes.
func MaxLen(max int) Check[string] {
	return func(value string) *Failure {
		if len(value) <= max {
			return nil
		}
		return &Failure{
			Message: fmt.Sprintf("must be at most %d characters long", max),
			Key:     "validation.max_length",
			Values:  map[string]any{"max": max},
		}
	}
}

// Pattern fails on strings that do not match the given regular expression.
// The pattern is compiled once when the check is built; description names the
// expected shape in the failure message.
func Pattern(pattern, description string) Check[string] {
	re := regexp.MustCompile(pattern)
	return func(value string) *Failure {
		if re.MatchString(value) {
			return nil
		}
		return &Failure{
			Message: fmt.Sprintf("must be a valid %s", description),
			Key:     "validation.pattern",
			Values:  map[string]any{"description": description},
		}
	}
}

// Email fails on strings that are not a parseable email address.
func Email() Check[string] {
	return func(value string) *Failure {
		if _, err := mail.ParseAddress(value); err == nil {
			return nil
		}
		return &Failure{
			Message: "must be a valid email address",
			Key:     "validation.email",
			Values:  map[string]any{},
		}
	}
}
