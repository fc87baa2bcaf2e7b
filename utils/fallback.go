package utils

import "strings"

// FirstNonEmpty returns the first value whose trimmed form is non-empty.
// It is the resolution rule for billing/shipping fields falling back to the
// legacy name/phone/address columns.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
