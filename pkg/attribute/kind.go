package attribute

// Kind identifies the concrete variant of an attribute.
type Kind string

const (
	KindName           Kind = "name"
	KindLabel          Kind = "label"
	KindType           Kind = "type"
	KindValue          Kind = "value"
	KindID             Kind = "id"
	KindClass          Kind = "class"
	KindStyle          Kind = "style"
	KindTitle          Kind = "title"
	KindHidden         Kind = "hidden"
	KindHint           Kind = "hint"
	KindPlaceholder    Kind = "placeholder"
	KindAutocomplete   Kind = "autocomplete"
	KindRequired       Kind = "required"
	KindDisabled       Kind = "disabled"
	KindReadOnly       Kind = "readonly"
	KindChecked        Kind = "checked"
	KindMin            Kind = "min"
	KindMax            Kind = "max"
	KindStep           Kind = "step"
	KindPrecision      Kind = "precision"
	KindPattern        Kind = "pattern"
	KindMultiline      Kind = "multiline"
	KindOptions        Kind = "options"
	KindPolicy         Kind = "policy"
	KindEntropy        Kind = "entropy"
	KindAlgorithm      Kind = "algorithm"
	KindVersion        Kind = "version"
	KindCurrency       Kind = "currency"
	KindURLType        Kind = "url-type"
	KindFirstDayOfWeek Kind = "first-day-of-week"

	// KindCustom covers ad-hoc attributes identified by name rather than kind.
	KindCustom Kind = "custom"
)

// Capability flags attached to each attribute kind.
type Capability uint8

const (
	// Boolean attributes are true when present; a false value is never materialized.
	Boolean Capability = 1 << iota
	// Constraint attributes restrict acceptable input and are read by validators.
	Constraint
)

var capabilities = map[Kind]Capability{
	KindHidden:         Boolean,
	KindChecked:        Boolean,
	KindDisabled:       Boolean,
	KindReadOnly:       Boolean,
	KindRequired:       Boolean | Constraint,
	KindMultiline:      Boolean | Constraint,
	KindMin:            Constraint,
	KindMax:            Constraint,
	KindStep:           Constraint,
	KindPrecision:      Constraint,
	KindPattern:        Constraint,
	KindOptions:        Constraint,
	KindPolicy:         Constraint,
	KindEntropy:        Constraint,
	KindAlgorithm:      Constraint,
	KindVersion:        Constraint,
	KindCurrency:       Constraint,
	KindURLType:        Constraint,
	KindName:           0,
	KindLabel:          0,
	KindType:           0,
	KindValue:          0,
	KindID:             0,
	KindClass:          0,
	KindStyle:          0,
	KindTitle:          0,
	KindHint:           0,
	KindPlaceholder:    0,
	KindAutocomplete:   0,
	KindFirstDayOfWeek: 0,
	KindCustom:         0,
}

// Capabilities returns the capability flags of the kind.
func (k Kind) Capabilities() Capability {
	return capabilities[k]
}

// Is reports whether the kind carries every flag in c.
func (k Kind) Is(c Capability) bool {
	return capabilities[k]&c == c
}

// Known reports whether k is one of the declared kinds.
func (k Kind) Known() bool {
	_, ok := capabilities[k]
	return ok
}

func (k Kind) String() string {
	return string(k)
}
