package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dmitrymomot/formkit/pkg/attribute"
	"github.com/dmitrymomot/formkit/pkg/field"
)

// JSONParser implements the Parser interface for JSON documents.
// Numbers keep their raw text, so 100.00 stays "100.00".
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes a document that is either an array of field objects or an
// object with a "fields" array.
func (p *JSONParser) Parse(ctx context.Context, content []byte) ([]field.Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}
	if strings.TrimSpace(string(content)) == "" {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}
	if !gjson.ValidBytes(content) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrFailedToParseJSON)
	}

	root := gjson.ParseBytes(content)
	list := root
	if root.IsObject() {
		list = root.Get(FieldsKey)
		if !list.Exists() {
			return nil, fmt.Errorf("%w: missing %q", ErrInvalidDocument, FieldsKey)
		}
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: expected a list of fields", ErrInvalidDocument)
	}

	var (
		defs []field.Definition
		err  error
	)
	i := 0
	list.ForEach(func(_, item gjson.Result) bool {
		if err = ctx.Err(); err != nil {
			err = errors.Join(ErrParsingCancelled, err)
			return false
		}
		var def field.Definition
		if def, err = jsonDefinition(item); err != nil {
			err = fmt.Errorf("field %d: %w", i, err)
			return false
		}
		defs = append(defs, def)
		i++
		return true
	})
	if err != nil {
		return nil, err
	}
	return defs, nil
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

func jsonDefinition(obj gjson.Result) (field.Definition, error) {
	var def field.Definition
	if !obj.IsObject() {
		return def, fmt.Errorf("%w: offset %d: expected an object", ErrInvalidDocument, obj.Index)
	}
	var err error
	obj.ForEach(func(key, value gjson.Result) bool {
		var raw any
		if raw, err = jsonValue(value); err != nil {
			err = fmt.Errorf("%w: offset %d: %s: %w", ErrInvalidDocument, key.Index, key.Str, err)
			return false
		}
		err = put(&def, key.Str, raw, fmt.Sprintf("offset %d", key.Index))
		return err == nil
	})
	return def, err
}

func jsonValue(v gjson.Result) (any, error) {
	switch {
	case v.IsObject():
		var (
			entries []attribute.Entry
			err     error
		)
		v.ForEach(func(key, item gjson.Result) bool {
			if item.IsObject() || item.IsArray() {
				err = fmt.Errorf("%s: nested values must be scalars", key.Str)
				return false
			}
			entries = append(entries, attribute.Entry{Key: key.Str, Value: jsonText(item)})
			return true
		})
		return entries, err
	case v.IsArray():
		var (
			items []any
			err   error
		)
		v.ForEach(func(_, item gjson.Result) bool {
			if item.IsObject() || item.IsArray() {
				err = errors.New("list items must be scalars")
				return false
			}
			items = append(items, jsonScalar(item))
			return true
		})
		return items, err
	}
	return jsonScalar(v), nil
}

func jsonScalar(v gjson.Result) any {
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.True, gjson.False:
		return v.Bool()
	}
	return jsonText(v)
}

func jsonText(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Null:
		return ""
	}
	return v.Raw
}
