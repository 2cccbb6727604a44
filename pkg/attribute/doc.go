// Package attribute models the named, typed values that describe a form field:
// its name and label, cosmetic metadata, and the constraints a validator reads.
//
// Each attribute has a Kind drawn from a closed set plus KindCustom for ad-hoc
// names such as "data-test". Kinds carry capability flags from an immutable
// table: Boolean attributes are true by presence, Constraint attributes are
// consumed by validators. Values are tagged variants (null, bool, integer,
// decimal string, text, ordered list) with a lossless text form.
//
// Attributes are immutable. Updating one means building a new attribute and
// replacing it in a Set:
//
//	set := attribute.NewSet(attribute.KindMin, attribute.KindMax, attribute.KindPrecision)
//	_ = set.Add(attribute.Min("0.00"), attribute.Max("100.00"))
//	_ = set.Set(attribute.Max("250.00"))
//
//	err := set.Add(attribute.Required())
//	// errors.Is(err, attribute.ErrNotAllowed) == true
//
// Parse turns a definition key and a decoded value into an attribute and is
// the entry point for schema documents.
package attribute
