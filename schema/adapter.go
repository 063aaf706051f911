package schema

import (
	"context"
	"fmt"

	"github.com/formkit-go/formkit"
)

// Adapter returns a formkit adapter that validates values against *Rules
// documents. Create the session with formkit.NewWithAdapter(schema.Adapter())
// and attach each field with its own rule document as the opaque schema.
//
// String values are checked against the string constraints, numeric values
// against the bounds. A schema that is not a *Rules or a value of an
// unsupported type is an adapter error, not a validation failure, and
// surfaces from Session.Validate.
func Adapter() formkit.Adapter {
	return func(ctx context.Context, value any, schema any) (string, error) {
		rules, ok := schema.(*Rules)
		if !ok {
			return "", fmt.Errorf("%w, got %T", ErrSchemaType, schema)
		}

		switch v := value.(type) {
		case string:
			return rules.check(v), nil
		case int:
			return rules.checkNumber(float64(v)), nil
		case int64:
			return rules.checkNumber(float64(v)), nil
		case float64:
			return rules.checkNumber(v), nil
		case float32:
			return rules.checkNumber(float64(v)), nil
		case nil:
			// Absence is not an error unless the document requires a value.
			return rules.check(""), nil
		default:
			return "", fmt.Errorf("%w: %T", ErrValueType, value)
		}
	}
}
