package attribute

import (
	"fmt"
	"regexp"
	"strings"
)

// CompilePattern compiles a pattern attribute value. Plain RE2 syntax is accepted,
// as is the delimited form "/expr/flags" where flags may contain i, m, s and U
// (and u, which is implied).
func CompilePattern(expr string) (*regexp.Regexp, error) {
	body, flags, delimited := splitDelimited(expr)
	if delimited {
		var inline strings.Builder
		for _, f := range flags {
			switch f {
			case 'i', 'm', 's', 'U':
				inline.WriteRune(f)
			case 'u':
			default:
				return nil, fmt.Errorf("%w: unsupported pattern flag %q", ErrInvalidValue, f)
			}
		}
		if inline.Len() > 0 {
			body = "(?" + inline.String() + ")" + body
		}
		expr = body
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern: %w", ErrInvalidValue, err)
	}
	return re, nil
}

func splitDelimited(expr string) (body, flags string, ok bool) {
	if len(expr) < 2 || expr[0] != '/' {
		return "", "", false
	}
	end := strings.LastIndexByte(expr, '/')
	if end <= 0 {
		return "", "", false
	}
	flags = expr[end+1:]
	for _, r := range flags {
		if r < 'a' || r > 'z' {
			if r != 'U' {
				return "", "", false
			}
		}
	}
	return expr[1:end], flags, true
}
