package formkit_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formkit-go/formkit"
)

func TestFieldAttach(t *testing.T) {
	t.Parallel()

	t.Run("requires a validator", func(t *testing.T) {
		t.Parallel()

		_, err := formkit.Attach[string](formkit.New(), nil, discard)
		assert.ErrorIs(t, err, formkit.ErrValidatorNil)
	})

	t.Run("requires a setter", func(t *testing.T) {
		t.Parallel()

		_, err := formkit.Attach(formkit.New(), requiredString, nil)
		assert.ErrorIs(t, err, formkit.ErrSetterNil)
	})

	t.Run("allocates a stable id", func(t *testing.T) {
		t.Parallel()

		session := formkit.New()
		field, err := formkit.Attach(session, requiredString, discard)
		require.NoError(t, err)

		id := field.ID()
		assert.NotEmpty(t, id)
		field.SetValue("new value")
		assert.Equal(t, id, field.ID())

		other, err := formkit.Attach(session, requiredString, discard)
		require.NoError(t, err)
		assert.NotEqual(t, id, other.ID())
	})
}

func TestFieldSetValue(t *testing.T) {
	t.Parallel()

	t.Run("forwards every value to the setter", func(t *testing.T) {
		t.Parallel()

		var got []string
		session := formkit.New()
		field, err := formkit.Attach(session, requiredString, func(v string) {
			got = append(got, v)
		})
		require.NoError(t, err)

		field.SetValue("a")
		field.SetValue("") // forwarded even though invalid
		assert.Equal(t, []string{"a", ""}, got)
	})

	t.Run("revalidates live once reporting", func(t *testing.T) {
		t.Parallel()

		session := formkit.New()
		field, err := formkit.Attach(session, requiredString, discard)
		require.NoError(t, err)

		errs, verr := session.Validate(context.Background())
		require.NoError(t, verr)
		require.Equal(t, []string{"Required"}, errs)

		// A now-valid value clears the error without another Validate.
		field.SetValue("x")
		assert.Eventually(t, func() bool {
			return field.Err() == "" && len(session.Errors()) == 0
		}, time.Second, 10*time.Millisecond)

		field.SetValue("")
		assert.Eventually(t, func() bool {
			return field.Err() == "Required" && len(session.Errors()) == 1
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("applies results in invocation order", func(t *testing.T) {
		t.Parallel()

		slowThenFast := func(ctx context.Context, v string) (string, error) {
			switch v {
			case "v1":
				time.Sleep(50 * time.Millisecond)
				return "v1 rejected", nil
			case "v2":
				time.Sleep(10 * time.Millisecond)
				return "v2 rejected", nil
			default:
				return "", nil
			}
		}

		session := formkit.New()
		field, err := formkit.Attach(session, slowThenFast, discard)
		require.NoError(t, err)

		_, verr := session.Validate(context.Background())
		require.NoError(t, verr)

		// v1's validator is still running when v2 supersedes it; the late v1
		// result must be discarded even though it resolves last.
		field.SetValue("v1")
		field.SetValue("v2")

		assert.Eventually(t, func() bool {
			return field.Err() == "v2 rejected"
		}, time.Second, 5*time.Millisecond)
		assert.Never(t, func() bool {
			return field.Err() == "v1 rejected"
		}, 150*time.Millisecond, 5*time.Millisecond)
	})
}

func TestFieldGatedComputation(t *testing.T) {
	t.Parallel()

	// Value changes run the validator even before Validate; only visibility
	// is gated.
	var calls atomic.Int64
	session := formkit.New()
	field, err := formkit.Attach(session, func(ctx context.Context, v string) (string, error) {
		calls.Add(1)
		return "hidden failure", nil
	}, discard)
	require.NoError(t, err)

	field.SetValue("a")
	field.SetValue("b")

	assert.Eventually(t, func() bool {
		return calls.Load() == 2
	}, time.Second, 10*time.Millisecond)
	assert.Empty(t, field.Err())
	assert.Empty(t, session.Errors())
}

func TestBoundField(t *testing.T) {
	t.Parallel()

	minLen3 := func(ctx context.Context, v string) (string, error) {
		if len(v) < 3 {
			return "must be at least 3 characters long", nil
		}
		return "", nil
	}

	t.Run("seeds the mirror from the external value", func(t *testing.T) {
		t.Parallel()

		session := formkit.New()
		field, err := formkit.AttachValue(session, "ab", minLen3, discard)
		require.NoError(t, err)

		assert.Equal(t, "ab", field.Value())
		assert.Empty(t, field.Err())

		errs, verr := session.Validate(context.Background())
		require.NoError(t, verr)
		assert.Equal(t, []string{"must be at least 3 characters long"}, errs)
	})

	t.Run("sync updates value and revalidates without the setter", func(t *testing.T) {
		t.Parallel()

		var setterCalls atomic.Int64
		session := formkit.New()
		field, err := formkit.AttachValue(session, "ab", minLen3, func(string) {
			setterCalls.Add(1)
		})
		require.NoError(t, err)

		_, verr := session.Validate(context.Background())
		require.NoError(t, verr)
		require.Equal(t, "must be at least 3 characters long", field.Err())

		field.Sync("abcd")
		assert.Eventually(t, func() bool {
			return field.Err() == "" && field.Value() == "abcd"
		}, time.Second, 10*time.Millisecond)
		assert.Zero(t, setterCalls.Load())
	})

	t.Run("sync with an equal value is a no-op", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		session := formkit.New()
		field, err := formkit.AttachValue(session, []string{"a", "b"}, func(ctx context.Context, v []string) (string, error) {
			calls.Add(1)
			return "", nil
		}, func([]string) {})
		require.NoError(t, err)

		// Structurally equal but a different slice header.
		field.Sync([]string{"a", "b"})
		assert.Never(t, func() bool {
			return calls.Load() > 0
		}, 100*time.Millisecond, 10*time.Millisecond)

		field.Sync([]string{"a", "b", "c"})
		assert.Eventually(t, func() bool {
			return calls.Load() == 1
		}, time.Second, 10*time.Millisecond)
	})
}

func TestFieldObserver(t *testing.T) {
	t.Parallel()

	var observed atomic.Int64
	session := formkit.New()
	field, err := formkit.Attach(session, requiredString, discard,
		formkit.WithObserver(func() { observed.Add(1) }))
	require.NoError(t, err)

	_, verr := session.Validate(context.Background())
	require.NoError(t, verr)
	assert.Positive(t, observed.Load())

	before := observed.Load()
	field.SetValue("x")
	assert.Eventually(t, func() bool {
		return observed.Load() > before
	}, time.Second, 10*time.Millisecond)
}
