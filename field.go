package formkit

import (
	"context"
	"log/slog"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// Field is one validatable unit attached to a Session. It mirrors its current
// value locally, runs its validator on every value change, and exposes its
// error only while the session is in the reporting state.
//
// The validator runs on every change even while errors are hidden, so the
// result is already warm when reporting is later triggered; only visibility
// is gated, never the computation.
type Field[T any] struct {
	id      uuid.UUID
	session *Session

	mu        sync.Mutex
	value     T
	localErr  string
	reporting bool
	gen       uint64

	validate ValidateFunc[T]
	setter   func(T)
	observer func()
}

// BoundField is a Field whose value is owned by an external source. It
// additionally exposes the mirrored value and accepts external re-syncs. The
// capability is fixed at construction: a field either is bound or is not.
type BoundField[T any] struct {
	Field[T]
}

// Attach registers a new field with a direct-validator session. The setter is
// invoked with every value passed to SetValue; it is the field's only output
// channel for value changes.
func Attach[T any](s *Session, fn ValidateFunc[T], setter func(T), opts ...FieldOption) (*Field[T], error) {
	if s.adapter != nil {
		return nil, ErrAdapterSession
	}

	f := &Field[T]{}
	if err := initField(f, s, fn, setter, opts); err != nil {
		return nil, err
	}
	return f, nil
}

// AttachValue registers a new bound field seeded with an externally owned
// value. Use Sync to push later external changes into the field.
func AttachValue[T any](s *Session, value T, fn ValidateFunc[T], setter func(T), opts ...FieldOption) (*BoundField[T], error) {
	if s.adapter != nil {
		return nil, ErrAdapterSession
	}

	b := &BoundField[T]{}
	b.value = value
	if err := initField(&b.Field, s, fn, setter, opts); err != nil {
		return nil, err
	}
	return b, nil
}

// AttachSchema registers a new field with an adapter session. The schema is
// opaque to the session and is handed to the adapter on every validation.
func AttachSchema[T any](s *Session, schema any, setter func(T), opts ...FieldOption) (*Field[T], error) {
	fn, err := schemaValidator[T](s, schema)
	if err != nil {
		return nil, err
	}

	f := &Field[T]{}
	if err := initField(f, s, fn, setter, opts); err != nil {
		return nil, err
	}
	return f, nil
}

// AttachValueSchema registers a new bound field with an adapter session.
func AttachValueSchema[T any](s *Session, value T, schema any, setter func(T), opts ...FieldOption) (*BoundField[T], error) {
	fn, err := schemaValidator[T](s, schema)
	if err != nil {
		return nil, err
	}

	b := &BoundField[T]{}
	b.value = value
	if err := initField(&b.Field, s, fn, setter, opts); err != nil {
		return nil, err
	}
	return b, nil
}

func schemaValidator[T any](s *Session, schema any) (ValidateFunc[T], error) {
	if s.adapter == nil {
		return nil, ErrDirectSession
	}

	adapter := s.adapter
	return func(ctx context.Context, value T) (string, error) {
		return adapter(ctx, value, schema)
	}, nil
}

func initField[T any](f *Field[T], s *Session, fn ValidateFunc[T], setter func(T), opts []FieldOption) error {
	if fn == nil {
		return ErrValidatorNil
	}
	if setter == nil {
		return ErrSetterNil
	}

	options := defaultFieldOptions()
	for _, opt := range opts {
		opt(&options)
	}

	f.id = uuid.New()
	f.session = s
	f.validate = fn
	f.setter = setter
	f.observer = options.observer
	s.attach(f.id, f.notify)
	return nil
}

// ID returns the field's identity within its session. It is allocated once at
// attach time and never derived from the field's value.
func (f *Field[T]) ID() string {
	return f.id.String()
}

// Err returns the field's current validation message, or the empty string if
// the field is valid or the session is not reporting yet.
func (f *Field[T]) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.reporting {
		return ""
	}
	return f.localErr
}

// SetValue updates the mirrored value, forwards it to the setter callback
// unconditionally, and revalidates in the background. The mirror update and
// the forward are synchronous; only the validation tail is asynchronous.
func (f *Field[T]) SetValue(value T) {
	f.mu.Lock()
	f.value = value
	f.mu.Unlock()

	f.setter(value)
	go f.revalidate()
}

// Detach removes the field from its session. The session keeps the field's
// last reported error until Reset. Detaching twice is harmless.
func (f *Field[T]) Detach() {
	f.session.detach(f.id)
}

// notify is the session's callback into the field. Reporting=true re-runs
// validation against the current mirrored value before returning; =false
// clears the visible error without touching any in-flight validation.
func (f *Field[T]) notify(ctx context.Context, reporting bool) error {
	if !reporting {
		f.mu.Lock()
		f.reporting = false
		f.localErr = ""
		f.session.report(f.id, "")
		f.mu.Unlock()

		f.observe()
		return nil
	}

	f.mu.Lock()
	f.reporting = true
	f.mu.Unlock()

	if err := f.run(ctx); err != nil {
		return err
	}
	f.observe()
	return nil
}

// revalidate is the asynchronous tail of a value change. There is no caller
// to surface an unexpected validator error to, so it is logged instead.
func (f *Field[T]) revalidate() {
	if err := f.run(context.Background()); err != nil {
		f.session.logger.Error("validator failed",
			slog.String("field_id", f.id.String()),
			slog.String("error", err.Error()))
		return
	}
	f.observe()
}

// run executes one validation against the latest value. Each invocation takes
// a generation number; the result is applied only if no newer invocation has
// started in the meantime, so results land in invocation order regardless of
// completion order. Superseded validators run to completion but their outcome
// is discarded.
func (f *Field[T]) run(ctx context.Context) error {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	value := f.value
	validate := f.validate
	f.mu.Unlock()

	msg, err := validate(ctx, value)
	if err != nil {
		return err
	}

	f.apply(gen, msg)
	return nil
}

// apply records a validation outcome, dropping it if superseded. While the
// field is gated the session is told "valid" so the field never contributes
// to the aggregate; the real message is kept locally.
func (f *Field[T]) apply(gen uint64, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.gen {
		return
	}

	f.localErr = msg
	if f.reporting {
		f.session.report(f.id, msg)
	} else {
		f.session.report(f.id, "")
	}
}

func (f *Field[T]) observe() {
	if f.observer != nil {
		f.observer()
	}
}

// Value returns the current mirrored value.
func (b *BoundField[T]) Value() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.value
}

// Sync pushes an external value change into the field. Values are compared
// structurally; an unchanged value is a no-op. Unlike SetValue, Sync never
// invokes the setter callback, so external owners cannot trigger their own
// change handler by syncing.
func (b *BoundField[T]) Sync(value T) {
	b.mu.Lock()
	if reflect.DeepEqual(b.value, value) {
		b.mu.Unlock()
		return
	}
	b.value = value
	b.mu.Unlock()

	go b.revalidate()
}
