package attribute

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// CustomPrefix marks definition keys that become custom attributes.
const CustomPrefix = "data-"

// keyAliases maps alternative definition keys to kinds.
var keyAliases = map[string]Kind{
	"read-only": KindReadOnly,
	"urltype":   KindURLType,
	"url_type":  KindURLType,
}

// KindForKey resolves a definition key to an attribute kind.
func KindForKey(key string) (Kind, bool) {
	key = sanitizer.TrimToLower(key)
	if k, ok := keyAliases[key]; ok {
		return k, true
	}
	k := Kind(key)
	if k == KindCustom || !k.Known() {
		return "", false
	}
	return k, true
}

// Parse builds an attribute from a definition key and a raw decoded value.
// Raw values may be strings, booleans, integers, lossless floats, json.Number,
// []Entry, Options, Policy, map[string]string or map[string]any.
//
// The boolean result is false when the attribute must be omitted, which is the
// case for boolean attributes holding false.
func Parse(key string, raw any) (Attribute, bool, error) {
	if strings.HasPrefix(sanitizer.ToLower(key), CustomPrefix) {
		v, err := scalarValue(raw)
		if err != nil {
			return Attribute{}, false, fmt.Errorf("%s: %w", key, err)
		}
		a, err := Custom(key, v)
		return a, err == nil, err
	}

	kind, ok := KindForKey(key)
	if !ok {
		return Attribute{}, false, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	a, err := parseKind(kind, raw)
	if err != nil {
		return Attribute{}, false, err
	}
	if a.Is(Boolean) && !a.value.Bool() {
		return Attribute{}, false, nil
	}
	return a, true, nil
}

func parseKind(kind Kind, raw any) (Attribute, error) {
	if kind.Is(Boolean) {
		b, err := boolOf(kind, raw)
		if err != nil {
			return Attribute{}, err
		}
		return New(kind, BoolValue(b)), nil
	}

	switch kind {
	case KindOptions:
		entries, err := entriesOf(kind, raw)
		if err != nil {
			return Attribute{}, err
		}
		o, err := NewOptions(entries...)
		if err != nil {
			return Attribute{}, err
		}
		return OptionsOf(o), nil

	case KindPolicy:
		if s, ok := raw.(string); ok {
			return PolicyNamed(s)
		}
		if p, ok := raw.(Policy); ok {
			return PolicyOf(p), nil
		}
		entries, err := entriesOf(kind, raw)
		if err != nil {
			return Attribute{}, err
		}
		p, err := NewPolicy(entries...)
		if err != nil {
			return Attribute{}, err
		}
		return PolicyOf(p), nil
	}

	v, err := scalarValue(raw)
	if err != nil {
		return Attribute{}, fmt.Errorf("%s: %w", kind, err)
	}
	text := v.Text()

	switch kind {
	case KindPrecision:
		n, err := intText(kind, text)
		if err != nil {
			return Attribute{}, err
		}
		return Precision(n)
	case KindEntropy:
		n, err := intText(kind, text)
		if err != nil {
			return Attribute{}, err
		}
		return Entropy(n)
	case KindFirstDayOfWeek:
		n, err := intText(kind, text)
		if err != nil {
			return Attribute{}, err
		}
		return FirstDayOfWeek(n)
	case KindVersion:
		if strings.EqualFold(strings.TrimSpace(text), AnyVersionText) {
			return AnyVersion(), nil
		}
		n, err := intText(kind, text)
		if err != nil {
			return Attribute{}, err
		}
		return Version(n)
	case KindPattern:
		return Pattern(text)
	case KindURLType:
		return URLType(text)
	case KindName:
		return Name(text)
	case KindLabel:
		return Label(text)
	case KindType:
		return Type(text)
	case KindID:
		return ID(text)
	case KindAlgorithm:
		return Algorithm(text)
	case KindCurrency:
		return Currency(text), nil
	case KindMin, KindMax, KindStep, KindValue:
		return New(kind, v), nil
	}
	return New(kind, TextValue(text)), nil
}

// scalarValue converts a raw scalar into a Value without losing information.
func scalarValue(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case string:
		return TextValue(v), nil
	case bool:
		return BoolValue(v), nil
	case int:
		return IntValue(int64(v)), nil
	case int8:
		return IntValue(int64(v)), nil
	case int16:
		return IntValue(int64(v)), nil
	case int32:
		return IntValue(int64(v)), nil
	case int64:
		return IntValue(v), nil
	case uint8:
		return IntValue(int64(v)), nil
	case uint16:
		return IntValue(int64(v)), nil
	case uint32:
		return IntValue(int64(v)), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return Value{}, newInvalidValue("integer", v)
		}
		return IntValue(int64(v)), nil
	case uint64:
		if v > math.MaxInt64 {
			return Value{}, newInvalidValue("integer", v)
		}
		return IntValue(int64(v)), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return IntValue(i), nil
		}
		if d, err := DecimalValue(v.String()); err == nil {
			return d, nil
		}
		return TextValue(v.String()), nil
	case float32:
		return floatValue(float64(v), 32)
	case float64:
		return floatValue(v, 64)
	case fmt.Stringer:
		return TextValue(v.String()), nil
	}
	return Value{}, fmt.Errorf("%w: cannot be represented as text without information loss (%T)", ErrInvalidValue, raw)
}

// floatValue accepts floats whose shortest text form parses back to the same value.
func floatValue(f float64, bits int) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, newInvalidValue("number", f)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return IntValue(int64(f)), nil
	}
	s := strconv.FormatFloat(f, 'f', -1, bits)
	back, err := strconv.ParseFloat(s, bits)
	if err != nil || back != f {
		return Value{}, newInvalidValue("number", f)
	}
	return DecimalValue(s)
}

func boolOf(kind Kind, raw any) (bool, error) {
	switch v := raw.(type) {
	case nil:
		return true, nil
	case bool:
		return v, nil
	case string:
		switch sanitizer.TrimToLower(v) {
		case "", "true", "1", "on", "yes", string(kind):
			return true, nil
		case "false", "0", "off", "no":
			return false, nil
		}
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case json.Number:
		return v.String() != "0", nil
	}
	return false, newInvalidValue(string(kind), raw)
}

func entriesOf(kind Kind, raw any) ([]Entry, error) {
	switch v := raw.(type) {
	case []Entry:
		return v, nil
	case Options:
		return v.entries, nil
	case map[string]string:
		keys := slices.Sorted(maps.Keys(v))
		entries := make([]Entry, 0, len(keys))
		for _, k := range keys {
			entries = append(entries, Entry{Key: k, Value: v[k]})
		}
		return entries, nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(v))
		entries := make([]Entry, 0, len(keys))
		for _, k := range keys {
			sv, err := scalarValue(v[k])
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", kind, k, err)
			}
			entries = append(entries, Entry{Key: k, Value: sv.Text()})
		}
		return entries, nil
	case []string:
		entries := make([]Entry, 0, len(v))
		for _, s := range v {
			entries = append(entries, Entry{Key: s, Value: s})
		}
		return entries, nil
	case []any:
		entries := make([]Entry, 0, len(v))
		for _, item := range v {
			sv, err := scalarValue(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", kind, err)
			}
			entries = append(entries, Entry{Key: sv.Text(), Value: sv.Text()})
		}
		return entries, nil
	}
	return nil, newInvalidValue(string(kind), raw)
}
