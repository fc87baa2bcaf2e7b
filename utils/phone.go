package utils

import "strings"

// FormatPhone normalizes a Malaysian phone number into the grouped form used
// on printed documents (e.g. 012-3456789, 03-12345678, 088-123456).
//
// Rules, in order:
//   - strip everything but digits, fold a leading 60 country code to 0
//   - 088/089 (and 011) are 3-digit area codes
//   - 01x numbers are mobiles, grouped after the third digit
//   - everything else is a fixed line with a 2-digit area code
//
// Input that does not reach a recognizable length is returned as bare digits
// so partially typed numbers round-trip unchanged.
func FormatPhone(input string) string {
	if input == "" {
		return ""
	}

	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	originalLength := len(digits)
	hadLeadingZero := strings.HasPrefix(digits, "0")

	// Fold country code (+60 / 60). With the code a Malaysian number is
	// 10-12 digits; without, 8-10.
	if strings.HasPrefix(digits, "60") && len(digits) >= 10 {
		digits = "0" + digits[2:]
	}

	if !strings.HasPrefix(digits, "0") {
		if len(digits) >= 8 && len(digits) <= 10 {
			digits = "0" + digits
		} else {
			return digits
		}
	}

	n := len(digits)

	// 3-digit area codes 088/089 take precedence over the 2-digit rules.
	if strings.HasPrefix(digits, "088") || strings.HasPrefix(digits, "089") {
		if n >= 8 && n <= 11 {
			return digits[:3] + "-" + digits[3:]
		}
	}

	// 8-digit input without a leading zero became a 9-digit 01x number
	// above; those are fixed lines (01-xxxxxxx), not mobiles.
	if originalLength == 8 && !hadLeadingZero && n == 9 && strings.HasPrefix(digits, "01") {
		return digits[:2] + "-" + digits[2:]
	}

	// Mobiles: 01x followed by 6-8 digits. 011 is a 3-digit area code,
	// handled below.
	if strings.HasPrefix(digits, "01") && !strings.HasPrefix(digits, "011") {
		if n >= 9 && n <= 11 {
			return digits[:3] + "-" + digits[3:]
		}
	}

	// Fixed lines with 2-digit area codes (03, 04, 07, ...). 8-digit
	// numbers are always fixed lines, even when they start with 01.
	if n == 8 {
		return digits[:2] + "-" + digits[2:]
	}
	if n >= 9 && n <= 11 && !strings.HasPrefix(digits, "01") {
		return digits[:2] + "-" + digits[2:]
	}

	if strings.HasPrefix(digits, "011") && n >= 9 && n <= 11 {
		return digits[:3] + "-" + digits[3:]
	}

	// Partial input.
	return digits
}
