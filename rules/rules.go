package rules

import (
	"context"

	"github.com/formkit-go/formkit"
)

// Numeric is the constraint used by the numeric check builders.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Failure describes a failed check together with translation metadata. The
// Message is the default English text; Key and Values let a localizer build
// the same message in another language.
type Failure struct {
	Message string
	Key     string
	Values  map[string]any
}

// Check inspects a single value and returns nil when it passes.
type Check[T any] func(value T) *Failure

// Localizer renders a translation key with its placeholder values. See
// package translate for the canonical implementation.
type Localizer func(key string, values map[string]any) string

// All composes checks into a formkit validator. Checks run in order and the
// first failure wins; its default message becomes the validation result.
func All[T any](checks ...Check[T]) formkit.ValidateFunc[T] {
	return func(ctx context.Context, value T) (string, error) {
		for _, check := range checks {
			if failure := check(value); failure != nil {
				return failure.Message, nil
			}
		}
		return "", nil
	}
}

// Localized composes checks into a formkit validator whose failure messages
// are rendered through the given localizer instead of the default English
// text.
func Localized[T any](localize Localizer, checks ...Check[T]) formkit.ValidateFunc[T] {
	return func(ctx context.Context, value T) (string, error) {
		for _, check := range checks {
			if failure := check(value); failure != nil {
				if localize == nil {
					return failure.Message, nil
				}
				return localize(failure.Key, failure.Values), nil
			}
		}
		return "", nil
	}
}
