// Package formkit coordinates validation across independently created form
// fields. Fields attach to a shared Session, each with its own validator and
// a local mirror of its value; errors stay hidden until Session.Validate is
// explicitly called, and Session.Reset hides them again. The session
// aggregates every field's current error into a single ordered collection.
//
// # Architecture
//
// A Session owns the global reporting gate, a registry of field notification
// callbacks, and the error aggregate keyed by field id. A Field owns its
// mirrored value, its own error, and a generation counter that serializes
// asynchronous validations: only the most recently started validation may
// apply its result, regardless of completion order. Validation runs on every
// value change even while errors are hidden, so results are already warm when
// reporting is triggered.
//
// Two validator shapes exist, mutually exclusive per session:
//   - direct: each field supplies a ValidateFunc of its value type (New)
//   - adapter: the session holds one Adapter and each field carries an opaque
//     schema the adapter knows how to read (NewWithAdapter)
//
// The adapter shape decouples the session from any specific schema engine;
// package schema provides a YAML-backed adapter, and any external engine can
// be plugged in the same way.
//
// # Usage
//
//	session := formkit.New()
//
//	name := ""
//	field, err := formkit.Attach(session,
//		func(ctx context.Context, v string) (string, error) {
//			if v == "" {
//				return "Required", nil
//			}
//			return "", nil
//		},
//		func(v string) { name = v },
//	)
//	if err != nil {
//		// handle error
//	}
//
//	errs, err := session.Validate(ctx) // ["Required"], field.Err() == "Required"
//	field.SetValue("Ada")              // revalidates; error clears without another Validate
//	session.Reset()                    // hides everything again
//
// # Error Handling
//
// Validation failures are data, not errors: a validator signals failure by
// returning a non-empty message string. A non-nil error from a validator is
// an unexpected failure and propagates to the Validate caller unchanged; the
// session never converts it into a message.
//
// # Concurrency
//
// Validate fans out to all fields concurrently and waits for every triggered
// validation to settle, so total latency approximates the slowest validator.
// Superseded validations are never cancelled, only their results are
// discarded. All Session and Field methods are safe for concurrent use.
package formkit
