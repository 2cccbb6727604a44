// Package schema loads form field definitions from YAML and JSON documents.
//
// A document is either a bare list of fields or a mapping whose "fields" key
// holds that list. Each field is a mapping with a type, a name, a label, an
// optional prefill value and any number of attribute keys:
//
//	fields:
//	  - type: money
//	    name: price
//	    label: Price
//	    currency: EUR
//	    max: 100.00
//	    value: 12.50
//	  - type: enum
//	    name: size
//	    label: Size
//	    options: {s: Small, m: Medium, l: Large}
//
// Scalars keep their source text, so decimal constraints survive without
// float rounding. Nested mappings keep their document order, which matters
// for enum options and password policies.
//
// Parsers are picked by file extension:
//
//	defs, err := schema.Load(ctx, "forms/checkout.yaml")
//	if err != nil {
//	    return err
//	}
//	fields, err := schema.Build(defs, registry)
//
// Errors wrap the package sentinels (ErrInvalidDocument, ErrFailedToParseYAML
// and so on) together with the field errors of package field.
package schema
