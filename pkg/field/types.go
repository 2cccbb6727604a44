package field

import (
	"github.com/dmitrymomot/formkit/pkg/attribute"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Schema describes a field type: the attribute kinds it admits on top of
// the common ones and the attributes every new field starts with.
type Schema struct {
	// Allowed lists the type specific kinds.
	Allowed []attribute.Kind

	// Defaults returns the starting attributes; caller supplied attributes replace them.
	Defaults func(cfg validator.Config) []attribute.Attribute

	// Validator overrides the built-in validator of the same type name.
	// Required for types unknown to the validator package.
	Validator validator.Validator
}

// commonKinds are admitted by every field type.
var commonKinds = []attribute.Kind{
	attribute.KindID,
	attribute.KindName,
	attribute.KindLabel,
	attribute.KindType,
	attribute.KindValue,
	attribute.KindClass,
	attribute.KindStyle,
	attribute.KindTitle,
	attribute.KindHidden,
	attribute.KindHint,
	attribute.KindPlaceholder,
	attribute.KindAutocomplete,
	attribute.KindRequired,
	attribute.KindDisabled,
	attribute.KindReadOnly,
	attribute.KindCustom,
}

var (
	rangeKinds    = []attribute.Kind{attribute.KindMin, attribute.KindMax}
	temporalKinds = []attribute.Kind{attribute.KindMin, attribute.KindMax, attribute.KindStep, attribute.KindFirstDayOfWeek}
	textKinds     = []attribute.Kind{attribute.KindMin, attribute.KindMax, attribute.KindPattern}
)

func autocomplete(token string) func(validator.Config) []attribute.Attribute {
	return func(validator.Config) []attribute.Attribute {
		return []attribute.Attribute{attribute.Autocomplete(token)}
	}
}

func builtinSchemas() map[string]Schema {
	return map[string]Schema{
		validator.TypeMoney: {
			Allowed: []attribute.Kind{attribute.KindMin, attribute.KindMax, attribute.KindPrecision, attribute.KindCurrency, attribute.KindStep},
		},
		validator.TypeNumber: {
			Allowed: []attribute.Kind{attribute.KindMin, attribute.KindMax, attribute.KindStep, attribute.KindPrecision},
		},
		validator.TypeDate:     {Allowed: temporalKinds},
		validator.TypeDateTime: {Allowed: temporalKinds},
		validator.TypeTime: {
			Allowed: []attribute.Kind{attribute.KindMin, attribute.KindMax, attribute.KindStep},
		},
		validator.TypePassword: {
			Allowed:  append([]attribute.Kind{attribute.KindPolicy}, rangeKinds...),
			Defaults: autocomplete("current-password"),
		},
		validator.TypePassphrase: {
			Allowed:  []attribute.Kind{attribute.KindEntropy, attribute.KindAlgorithm},
			Defaults: autocomplete("new-password"),
		},
		validator.TypePhone: {
			Allowed:  textKinds,
			Defaults: autocomplete("tel"),
		},
		validator.TypeUUID: {
			Allowed: []attribute.Kind{attribute.KindVersion},
			Defaults: func(validator.Config) []attribute.Attribute {
				return []attribute.Attribute{attribute.AnyVersion()}
			},
		},
		validator.TypeEnum: {Allowed: []attribute.Kind{attribute.KindOptions}},
		validator.TypeName: {
			Allowed: textKinds,
			Defaults: func(cfg validator.Config) []attribute.Attribute {
				return []attribute.Attribute{
					attribute.Must(attribute.Pattern(validator.NamePattern)),
					attribute.MinInt(1),
					attribute.MaxInt(cfg.NameMaxLength),
					attribute.Autocomplete("name"),
				}
			},
		},
		validator.TypeText: {
			Allowed: append([]attribute.Kind{attribute.KindMultiline}, textKinds...),
		},
		validator.TypeEmail: {
			Allowed:  textKinds,
			Defaults: autocomplete("email"),
		},
		validator.TypeURL: {
			Allowed:  append([]attribute.Kind{attribute.KindURLType}, rangeKinds...),
			Defaults: autocomplete("url"),
		},
		validator.TypeBoolean: {Allowed: []attribute.Kind{attribute.KindChecked}},
		validator.TypeLink: {
			Defaults: func(validator.Config) []attribute.Attribute {
				return []attribute.Attribute{attribute.ReadOnly()}
			},
		},
	}
}
