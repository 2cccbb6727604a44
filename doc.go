// Package formkit validates form input against declared field constraints.
//
// Each field carries an ordered set of attributes (min, max, step,
// precision, currency, pattern, options and so on) that both describe the
// field to a renderer and constrain the values it accepts. A field moves
// through a small lifecycle (pristine, prefilled, dirty, valid, invalid) as
// it is prefilled from stored data, receives user input, is reset or is
// cleared, and it reports human readable messages for every constraint the
// current value violates.
//
// The module is layered:
//
//   - pkg/attribute  – attribute values, kinds and allow-listed sets
//   - pkg/validator  – one validator per field type (money, number, date, password, ...)
//   - pkg/field      – fields, their lifecycle, registries and collections
//   - pkg/schema     – YAML and JSON field definitions
//   - pkg/config     – environment configuration
//   - pkg/logger     – slog setup and attribute helpers
//
// This package ties them together for the common case of a form loaded from
// a schema file and bound to submitted values:
//
//	form, err := formkit.Load(ctx, "forms/checkout.yaml", nil)
//	if err != nil {
//	    return err
//	}
//	if err := formkit.Bind(form, r.PostForm); err != nil {
//	    var verr formkit.ValidationError
//	    if errors.As(err, &verr) {
//	        // re-render with verr.Get("price") next to the price input
//	    }
//	    return err
//	}
//	values := form.Values()
//
// Fields can also be built in code:
//
//	price, err := field.New("money", "price", "Price",
//		attribute.Min("0.00"),
//		attribute.Currency("EUR"),
//		attribute.Required(),
//	)
//
// Validators work without fields too:
//
//	res, err := validator.NewNumber().Validate("1.5", attribute.Of(attribute.Step("0.5")))
//
// # Errors
//
// Configuration problems (a constraint the type does not allow, a min above
// its max, an unknown type) are returned as Go errors wrapping package
// sentinels such as attribute.ErrNotAllowed, validator.ErrMisconfigured and
// field.ErrUnknownType. Invalid user data never is: it is collected as
// messages on the field, and Bind reports those as a ValidationError.
package formkit
