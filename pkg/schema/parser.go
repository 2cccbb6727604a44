package schema

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/field"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// FieldsKey is the top-level key holding the field list. A document may
// also be the bare list.
const FieldsKey = "fields"

// Parser decodes a schema document into field definitions in document order.
type Parser interface {
	Parse(ctx context.Context, content []byte) ([]field.Definition, error)

	// SupportsFileExtension checks if the parser supports a given file extension,
	// with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile picks a parser by file extension, or returns nil.
func NewParserForFile(filename string) Parser {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	for _, p := range []Parser{NewYAMLParser(), NewJSONParser()} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// Load reads and parses a schema file from disk.
func Load(ctx context.Context, filename string) ([]field.Definition, error) {
	return load(ctx, filename, os.ReadFile)
}

// LoadFS reads and parses a schema file from fsys, e.g. an embed.FS.
func LoadFS(ctx context.Context, fsys fs.FS, filename string) ([]field.Definition, error) {
	return load(ctx, filename, func(name string) ([]byte, error) {
		return fs.ReadFile(fsys, strings.TrimPrefix(path.Clean(name), "/"))
	})
}

func load(ctx context.Context, filename string, read func(string) ([]byte, error)) ([]field.Definition, error) {
	p := NewParserForFile(filename)
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}
	content, err := read(filename)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return p.Parse(ctx, content)
}

// ParseYAML parses a YAML schema document.
func ParseYAML(ctx context.Context, content []byte) ([]field.Definition, error) {
	return NewYAMLParser().Parse(ctx, content)
}

// ParseJSON parses a JSON schema document.
func ParseJSON(ctx context.Context, content []byte) ([]field.Definition, error) {
	return NewJSONParser().Parse(ctx, content)
}

// Build turns definitions into a collection using reg, or a default
// registry when reg is nil. Field names must be unique.
func Build(defs []field.Definition, reg *field.Registry) (*field.Collection, error) {
	if reg == nil {
		reg = field.NewRegistry()
	}
	c := field.NewCollection()
	for i, def := range defs {
		if _, exists := c.Find(def.Name); exists {
			return nil, fmt.Errorf("%w: field %d %q", ErrDuplicateFieldName, i, def.Name)
		}
		f, err := reg.FromDefinition(def)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		c.Add(f)
	}
	return c, nil
}

// cleanKey strips what editors leave around mapping keys.
var cleanKey = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.Trim)

// put records a decoded key on def, wrapping field errors with the document position.
func put(def *field.Definition, key string, value any, where string) error {
	if err := def.Put(cleanKey(key), value); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidDocument, where, err)
	}
	return nil
}
