package validator

import (
	"regexp"

	"golang.org/x/text/currency"
)

var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// IsCurrencyCode reports whether code is a known ISO 4217 code in upper case.
func IsCurrencyCode(code string) bool {
	if !currencyCodeRegex.MatchString(code) {
		return false
	}
	_, err := currency.ParseISO(code)
	return err == nil
}
