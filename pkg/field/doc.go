// Package field models form fields and their lifecycle.
//
// A Field owns an attribute set (name, label, type, markers such as
// required or disabled, and the constraints of its type), its current value
// and the value it was prefilled with. Validation is delegated to the
// validator of the field type; the field commits the result and tracks
// whether the user changed anything.
//
// # Lifecycle
//
// Every field runs a small state machine:
//
//	pristine --prefill--> prefilled --input--> dirty --accept--> valid
//	                                             \----reject--> invalid
//
// Input is accepted again from valid and invalid. Reset returns to
// prefilled when an original value exists and to pristine otherwise. Clear
// drops the value and lands in invalid for required fields and valid for
// optional ones. Transitions are logged at debug level.
//
// # Types
//
// A Registry maps type names to a Schema: the extra attribute kinds the type
// admits and the attributes a new field starts with. NewRegistry knows the
// built-in types of the validator package; WithType adds more.
//
//	reg := field.NewRegistry(field.WithConfig(cfg), field.WithLogger(log))
//	price, err := reg.New(validator.TypeMoney, "price", "Price",
//	    attribute.Required(), attribute.Min("0.00"), attribute.Currency("EUR"))
//	if err != nil {
//	    return err // misconfigured constraints
//	}
//	if err := price.Input("12.5"); err != nil {
//	    return err
//	}
//	price.IsValid() // true, price.Value() == "12.50"
//
// # Definitions
//
// Definition is the decoded form of a field description, as produced by the
// schema package or DefinitionFromMap. Registry.FromDefinition turns it
// into a prefilled field, and Collection groups fields by name.
//
// # Configuration
//
// LoadConfig reads Config from FORMKIT_ prefixed environment variables
// (FORMKIT_MONEY_PRECISION, FORMKIT_PASSWORD_POLICY, FORMKIT_LOG_LEVEL and
// so on).
//
// # Error Handling
//
// Problems with input data are field errors, never Go errors. Go errors
// signal configuration problems and wrap ErrUnknownType,
// ErrInvalidDefinition, ErrInvalidTransition, attribute.ErrNotAllowed or
// validator.ErrMisconfigured.
package field
