package formkit

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ValidateFunc checks a single value. An empty string means the value is
// valid; a non-empty string is the failure message shown to the user; a
// non-nil error is an unexpected validator failure and is propagated to the
// caller of Session.Validate.
//
// A ValidateFunc may block (timers, network lookups). The session always
// invokes validators off the caller's goroutine on value changes and
// concurrently across fields during Validate.
type ValidateFunc[T any] func(ctx context.Context, value T) (string, error)

// Adapter translates an opaque schema object plus a value into a validation
// result. The session never interprets the schema; only the adapter knows how
// to read it. This lets one session plug into arbitrary external validation
// engines without depending on their types.
type Adapter func(ctx context.Context, value any, schema any) (string, error)

// notifyFunc is registered by each field and invoked with the new reporting
// state whenever Validate or Reset is called.
type notifyFunc func(ctx context.Context, reporting bool) error

// Session coordinates validation across independently attached fields. Fields
// register a notification callback on attach; Validate broadcasts "start
// reporting" to all of them concurrently and resolves once every triggered
// validation has settled; Reset hides all errors again synchronously.
//
// Errors are aggregated per field id in first-report order. Detaching a field
// intentionally leaves its last reported error in place until Reset, so the
// last-known error survives a remount.
//
// All methods are safe for concurrent use.
type Session struct {
	mu        sync.Mutex
	adapter   Adapter
	logger    *slog.Logger
	canReport bool
	registry  map[uuid.UUID]notifyFunc
	errors    map[uuid.UUID]string
	reported  map[uuid.UUID]struct{}
	order     []uuid.UUID
}

// New creates a session for direct validators, where each field supplies its
// own ValidateFunc.
func New(opts ...Option) *Session {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Session{
		logger:   options.logger,
		registry: make(map[uuid.UUID]notifyFunc),
		errors:   make(map[uuid.UUID]string),
		reported: make(map[uuid.UUID]struct{}),
	}
}

// NewWithAdapter creates a session in adapter mode: every field carries an
// opaque schema and all validation goes through the given adapter. The two
// modes are mutually exclusive per session.
func NewWithAdapter(adapter Adapter, opts ...Option) (*Session, error) {
	if adapter == nil {
		return nil, ErrAdapterNil
	}

	s := New(opts...)
	s.adapter = adapter
	return s, nil
}

// Validate turns on error reporting and re-validates every attached field
// against its current value. Field validations run concurrently; Validate
// returns only after all of them have settled, with the aggregated error
// messages at that point.
//
// A validator that fails validation contributes its message; a validator that
// returns an error (an unexpected failure, not a validation result) causes
// Validate to return that error instead. Calling Validate repeatedly
// re-broadcasts and re-awaits.
func (s *Session) Validate(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	s.canReport = true
	notifiers := make([]notifyFunc, 0, len(s.registry))
	for _, notify := range s.registry {
		notifiers = append(notifiers, notify)
	}
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "validation triggered", slog.Int("fields", len(notifiers)))

	g, gctx := errgroup.WithContext(ctx)
	for _, notify := range notifiers {
		g.Go(func() error {
			return notify(gctx, true)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.Errors(), nil
}

// Reset turns off error reporting and clears the aggregate immediately. It
// does not wait for in-flight validators; a validator that settles later
// still updates field-local state, but its result stays hidden until the
// next Validate.
func (s *Session) Reset() {
	s.mu.Lock()
	s.canReport = false
	clear(s.errors)
	clear(s.reported)
	s.order = s.order[:0]
	notifiers := make([]notifyFunc, 0, len(s.registry))
	for _, notify := range s.registry {
		notifiers = append(notifiers, notify)
	}
	s.mu.Unlock()

	s.logger.Debug("session reset", slog.Int("fields", len(notifiers)))

	for _, notify := range notifiers {
		// Reporting=false never runs a validator, so this stays synchronous.
		_ = notify(context.Background(), false)
	}
}

// Errors returns the current error messages in first-report order. Duplicate
// messages from different fields are kept. The result is empty before the
// first Validate and after every Reset.
func (s *Session) Errors() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.canReport {
		return []string{}
	}

	out := make([]string, 0, len(s.errors))
	for _, id := range s.order {
		if msg, ok := s.errors[id]; ok {
			out = append(out, msg)
		}
	}
	return out
}

// attach registers a field's notification callback. Re-attaching the same id
// replaces the previous callback.
func (s *Session) attach(id uuid.UUID, notify notifyFunc) {
	s.mu.Lock()
	s.registry[id] = notify
	s.mu.Unlock()

	s.logger.Debug("field attached", slog.String("field_id", id.String()))
}

// detach removes a field's notification callback. The field's last reported
// error entry is deliberately kept until Reset. Detaching an unknown id is a
// no-op.
func (s *Session) detach(id uuid.UUID) {
	s.mu.Lock()
	delete(s.registry, id)
	s.mu.Unlock()

	s.logger.Debug("field detached", slog.String("field_id", id.String()))
}

// report upserts a field's validation outcome. An empty message marks the
// field valid and removes its entry. Late reports from detached fields are
// accepted; the aggregate is gated by canReport, not by registry membership.
func (s *Session) report(id uuid.UUID, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reported[id]; !ok {
		s.reported[id] = struct{}{}
		s.order = append(s.order, id)
	}
	if msg == "" {
		delete(s.errors, id)
	} else {
		s.errors[id] = msg
	}
}
