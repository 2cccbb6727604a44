package formkit

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/dmitrymomot/formkit/pkg/field"
	"github.com/dmitrymomot/formkit/pkg/schema"
)

var (
	ErrInvalidForm = errors.New("invalid form data")
	ErrLoadForm    = errors.New("failed to load form")
)

// Load reads a schema document and builds its fields with reg, or with a
// default registry when reg is nil.
func Load(ctx context.Context, filename string, reg *field.Registry) (*field.Collection, error) {
	defs, err := schema.Load(ctx, filename)
	if err != nil {
		return nil, errors.Join(ErrLoadForm, err)
	}
	c, err := schema.Build(defs, reg)
	if err != nil {
		return nil, errors.Join(ErrLoadForm, err)
	}
	return c, nil
}

// Bind applies submitted form values to the fields of c. Keys are matched
// to field names exactly first and then case-insensitively. A single value
// is passed as a string; repeated keys pass a []string. Keys without a
// field are ignored, and so are fields without a key, which keep their
// prefilled value.
//
// Bind returns a ValidationError when any field is invalid afterwards.
// Other errors wrap ErrInvalidForm.
func Bind(c *field.Collection, values url.Values) error {
	input := make(map[string]any, len(values))
	for key, vs := range values {
		switch len(vs) {
		case 0:
		case 1:
			input[key] = vs[0]
		default:
			input[key] = vs
		}
	}

	if err := c.Input(input); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	if errs := ErrorsOf(c); !errs.IsEmpty() {
		return errs
	}
	return nil
}
