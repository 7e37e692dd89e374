package smsprovider

import "strings"

// FormatPhoneNumber normalizes a raw phone number to international format.
// The heuristic is US/Canada-biased: 11 digits starting with "1" and plain
// 10-digit numbers are treated as NANP; anything longer is assumed to already
// carry a country code. Shorter inputs fall through with a "+1" prefix and
// are expected to fail IsValidPhoneNumber.
func FormatPhoneNumber(raw string) string {
	cleaned := digitsOnly(raw)

	if len(cleaned) == 11 && strings.HasPrefix(cleaned, "1") {
		return "+" + cleaned
	}

	if len(cleaned) == 10 {
		return "+1" + cleaned
	}

	if len(cleaned) > 10 {
		return "+" + cleaned
	}

	return "+1" + cleaned
}

// IsValidPhoneNumber reports whether the number carries between 10 and 15
// digits. This is a length check, not a country-code table lookup.
func IsValidPhoneNumber(phoneNumber string) bool {
	n := len(digitsOnly(phoneNumber))
	return n >= 10 && n <= 15
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
