// Package phone formats and normalizes phone numbers for display and for use as lookup keys.
package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// digits strips everything that is not an ASCII digit.
func digits(n string) string {
	var b strings.Builder
	for _, r := range n {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format returns a human friendly rendering of a number.
// 10 digits become (NNN) NNN-NNNN, 11 digits with a leading 1 become +1 (NNN) NNN-NNNN.
// Anything else is returned as given, with a leading + added if it is missing.
func Format(n string) string {
	if n == "" {
		return ""
	}

	d := digits(n)
	switch {
	case len(d) == 10:
		return fmt.Sprintf("(%s) %s-%s", d[0:3], d[3:6], d[6:])
	case len(d) == 11 && d[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", d[1:4], d[4:7], d[7:])
	}

	if strings.HasPrefix(n, "+") {
		return n
	}
	return "+" + n
}

// DefaultRegion is assumed for numbers written without a country code.
const DefaultRegion = "US"

// Normalize returns the E.164 form of a dialable number so that
// "+1 (234) 567-8901", "2345678901" and "12345678901" compare equal.
// Inputs that are not made of digits and punctuation, or that do not parse, are only trimmed.
func Normalize(n string) string {
	n = strings.TrimSpace(n)
	if !dialable(n) {
		return n
	}

	num, err := phonenumbers.Parse(n, DefaultRegion)
	if err != nil {
		return n
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

// dialable reports whether n holds digits and nothing but phone punctuation.
func dialable(n string) bool {
	found := false
	for _, r := range n {
		switch {
		case r >= '0' && r <= '9':
			found = true
		case r == '+', r == ' ', r == '-', r == '(', r == ')', r == '.':
		default:
			return false
		}
	}
	return found
}

// ContactName is the display name used for a number that has no saved contact.
func ContactName(n string) string {
	return "Contact at " + Format(n)
}
