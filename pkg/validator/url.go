package validator

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/formkit/pkg/attribute"
)

// RFC 3986 appendix B.
var uriPattern = regexp.MustCompile(`^(([^:/?#]+):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?`)

// minimum length per URL type
var urlMinLength = map[string]int{
	attribute.URLAbsolute: 5,
	attribute.URLRelative: 1,
	attribute.URLAny:      1,
}

type uriParts struct {
	scheme, authority, path, query, fragment *string
}

func parseURI(s string) uriParts {
	m := uriPattern.FindStringSubmatchIndex(s)
	group := func(n int) *string {
		if m == nil || m[2*n] < 0 {
			return nil
		}
		v := s[m[2*n]:m[2*n+1]]
		return &v
	}
	return uriParts{scheme: group(2), authority: group(4), path: group(5), query: group(7), fragment: group(9)}
}

// absolute URIs need a scheme and an authority and cannot carry a fragment.
func (u uriParts) absolute() bool {
	return u.scheme != nil && u.authority != nil && *u.authority != "" && u.fragment == nil
}

// relative references have no scheme and start with an authority or a rooted path.
func (u uriParts) relative() bool {
	if u.scheme != nil {
		return false
	}
	return u.authority != nil || (u.path != nil && len(*u.path) > 0 && (*u.path)[0] == '/')
}

// URL validates absolute URLs, relative references or either, depending on the url-type constraint.
type URL struct {
	maxLength int
}

func NewURL(cfg Config) URL {
	return URL{maxLength: cfg.URLMaxLength}
}

type urlConstraints struct {
	typ    string
	length bounds
}

func (v URL) constraints(attrs *attribute.Set) (urlConstraints, error) {
	c := urlConstraints{typ: attribute.URLAny}
	if s, ok := attrs.Text(attribute.KindURLType); ok {
		c.typ = s
	}
	typeMin, known := urlMinLength[c.typ]
	if !known {
		return c, misconfigured(attribute.KindURLType, "unknown URL type %q", c.typ)
	}
	var err error
	c.length, err = lengthBounds(attrs, bounds{min: typeMin, hasMin: true, max: v.maxLength, hasMax: v.maxLength > 0})
	if err != nil {
		return c, err
	}
	if c.length.min < typeMin {
		return c, misconfigured(attribute.KindMin, "minimum length for URL type %q is %d characters", c.typ, typeMin)
	}
	return c, nil
}

func (v URL) CheckConstraints(attrs *attribute.Set) error {
	_, err := v.constraints(orEmpty(attrs))
	return err
}

func (v URL) Validate(candidate any, attrs *attribute.Set) (Result, error) {
	c, err := v.constraints(orEmpty(attrs))
	if err != nil {
		return Result{}, err
	}
	value, ok := stringOf(candidate)
	if !ok {
		return Failed(candidate, "Value must be a string."), nil
	}

	parts := parseURI(value)
	var shape Rule
	switch c.typ {
	case attribute.URLAbsolute:
		shape = Rule{Check: parts.absolute, Message: `URL must start with a scheme and have a host (e.g. "http://example.com").`}
	case attribute.URLRelative:
		shape = Rule{Check: parts.relative, Message: `URL must start with a path (e.g. "/path/to/resource").`}
	default:
		shape = Rule{
			Check:   func() bool { return parts.absolute() || parts.relative() },
			Message: `URL must be an absolute or relative URL. (e.g. "http://example.com" or "/path/to/resource").`,
		}
	}

	n := length(value)
	return Guess(value, Apply(
		shape,
		Rule{
			Check:   func() bool { return n >= c.length.min },
			Message: fmt.Sprintf("Value must be more than %d characters long.", c.length.min),
		},
		Rule{
			Check:   func() bool { return !c.length.hasMax || n <= c.length.max },
			Message: fmt.Sprintf("Value must be less than %d characters long.", c.length.max),
		},
	)), nil
}
