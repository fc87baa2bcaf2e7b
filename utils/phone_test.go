package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mark-25-git/business-documents-tool/utils"
)

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"mobile 10 digits", "0123456789", "012-3456789"},
		{"mobile 11 digits", "01123456789", "011-23456789"},
		{"mobile with spaces and dashes", "012-345 6789", "012-3456789"},
		{"country code plus", "+60123456789", "012-3456789"},
		{"country code bare", "60123456789", "012-3456789"},
		{"fixed line kl", "0312345678", "03-12345678"},
		{"fixed line 8 digits", "03123456", "03-123456"},
		{"sabah 3-digit area code", "0881234567", "088-1234567"},
		{"sabah short", "088123456", "088-123456"},
		{"011 area code 10 digits", "0111234567", "011-1234567"},
		{"no leading zero 8 digits", "12345678", "01-2345678"},
		{"no leading zero fixed line", "312345678", "03-12345678"},
		{"partial input", "012", "012"},
		{"letters only", "abc", ""},
		{"too long unrecognized", "0123456789012345", "0123456789012345"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, utils.FormatPhone(tc.in))
		})
	}
}
