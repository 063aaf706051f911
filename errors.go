package formkit

import "errors"

// Common errors
var (
	// ErrValidatorNil is returned when a field is attached without a validator.
	ErrValidatorNil = errors.New("validator cannot be nil")

	// ErrSetterNil is returned when a field is attached without a setter callback.
	ErrSetterNil = errors.New("setter callback cannot be nil")

	// ErrAdapterNil is returned when an adapter session is created without an adapter.
	ErrAdapterNil = errors.New("adapter cannot be nil")

	// ErrAdapterSession is returned when a direct-validator field is attached
	// to a session that was created with an adapter.
	ErrAdapterSession = errors.New("session uses an adapter, attach fields with AttachSchema")

	// ErrDirectSession is returned when a schema field is attached to a session
	// that was created without an adapter.
	ErrDirectSession = errors.New("session has no adapter, attach fields with Attach")
)
