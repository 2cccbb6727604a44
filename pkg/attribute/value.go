package attribute

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	ValueNull ValueKind = iota
	ValueBool
	ValueInt
	ValueDecimal
	ValueText
	ValueList
)

// Entry is one key/value pair of a composite list value.
type Entry struct {
	Key   string
	Value string
}

// Value holds one of: null, bool, integer, decimal string, text or an ordered list of entries.
// Every variant has a lossless text form.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	s    string
	list []Entry
}

var decimalRegex = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// Null returns the empty value.
func Null() Value { return Value{} }

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{kind: ValueBool, b: b} }

// IntValue wraps an integer.
func IntValue(i int64) Value { return Value{kind: ValueInt, i: i} }

// TextValue wraps arbitrary text.
func TextValue(s string) Value { return Value{kind: ValueText, s: s} }

// DecimalValue wraps a decimal string in plain digit form ("-12.50").
// The digits are kept verbatim so the text form round-trips exactly.
func DecimalValue(s string) (Value, error) {
	if !decimalRegex.MatchString(s) {
		return Value{}, newInvalidValue("decimal", s)
	}
	return Value{kind: ValueDecimal, s: s}, nil
}

// ListValue wraps an ordered list of entries. The entries are copied.
func ListValue(entries ...Entry) Value {
	return Value{kind: ValueList, list: slices.Clone(entries)}
}

// Kind reports the variant held.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether the value is the null variant.
func (v Value) IsNull() bool { return v.kind == ValueNull }

// Bool returns the boolean variant; any other non-null variant counts as true.
func (v Value) Bool() bool {
	switch v.kind {
	case ValueNull:
		return false
	case ValueBool:
		return v.b
	}
	return true
}

// Int returns the integer variant, or parses text and decimal variants that hold an integer.
func (v Value) Int() (int64, bool) {
	switch v.kind {
	case ValueInt:
		return v.i, true
	case ValueText, ValueDecimal:
		i, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// Entries returns a copy of the list variant.
func (v Value) Entries() []Entry {
	return slices.Clone(v.list)
}

// Text returns the lossless text form of the value.
func (v Value) Text() string {
	switch v.kind {
	case ValueBool:
		return strconv.FormatBool(v.b)
	case ValueInt:
		return strconv.FormatInt(v.i, 10)
	case ValueDecimal, ValueText:
		return v.s
	case ValueList:
		var b strings.Builder
		for _, e := range v.list {
			b.WriteString(e.Key)
			b.WriteString(": ")
			b.WriteString(e.Value)
			b.WriteString("; ")
		}
		return strings.TrimSuffix(b.String(), " ")
	}
	return ""
}

// Equal reports whether both values hold the same variant and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ValueNull:
		return true
	case ValueBool:
		return v.b == o.b
	case ValueInt:
		return v.i == o.i
	case ValueList:
		return slices.Equal(v.list, o.list)
	}
	return v.s == o.s
}

func (v Value) String() string {
	return v.Text()
}
