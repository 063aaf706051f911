package rules

import "fmt"

// Min fails on numeric values below min.
func Min[T Numeric](min T) Check[T] {
	return func(value T) *Failure {
		if value >= min {
			return nil
		}
		return &Failure{
			Message: fmt.Sprintf("must be at least %v", min),
			Key:     "validation.min",
			Values:  map[string]any{"min": min},
		}
	}
}

// Max fails on numeric values above max.
func Max[T Numeric](max T) Check[T] {
	return func(value T) *Failure {
		if value <= max {
			return nil
		}
		return &Failure{
			Message: fmt.Sprintf("must be at most %v", max),
			Key:     "validation.max",
			Values:  map[string]any{"max": max},
		}
	}
}

// OneOf fails on values outside the allowed set.
func OneOf[T comparable](allowed ...T) Check[T] {
	return func(value T) *Failure {
		for _, candidate := range allowed {
			if value == candidate {
				return nil
			}
		}
		return &Failure{
			Message: fmt.Sprintf("must be one of: %v", allowed),
			Key:     "validation.in_list",
			Values:  map[string]any{"allowed_values": allowed},
		}
	}
}
