package utils_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mark-25-git/business-documents-tool/utils"
)

func TestFlexFloatCoercion(t *testing.T) {
	type row struct {
		Quantity  utils.FlexFloat  `json:"quantity"`
		UnitPrice utils.FlexFloat  `json:"unitPrice"`
		Amount    *utils.FlexFloat `json:"amount"`
	}

	cases := []struct {
		name      string
		body      string
		qty       float64
		price     float64
		amountNil bool
	}{
		{"plain numbers", `{"quantity":2,"unitPrice":100.5}`, 2, 100.5, true},
		{"numeric strings", `{"quantity":"3","unitPrice":" 49.90 "}`, 3, 49.9, true},
		{"garbage coerces to zero", `{"quantity":"two","unitPrice":{}}`, 0, 0, true},
		{"null coerces to zero", `{"quantity":null,"unitPrice":null}`, 0, 0, true},
		{"explicit amount survives", `{"quantity":1,"unitPrice":0,"amount":-50}`, 1, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r row
			require.NoError(t, json.Unmarshal([]byte(tc.body), &r))
			require.Equal(t, tc.qty, r.Quantity.Float64())
			require.Equal(t, tc.price, r.UnitPrice.Float64())
			if tc.amountNil {
				require.Nil(t, r.Amount)
			} else {
				require.NotNil(t, r.Amount)
			}
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	require.Equal(t, "billing", utils.FirstNonEmpty("billing", "legacy"))
	require.Equal(t, "legacy", utils.FirstNonEmpty("", "legacy"))
	require.Equal(t, "legacy", utils.FirstNonEmpty("   ", "legacy"))
	require.Equal(t, "", utils.FirstNonEmpty("", "  ", ""))
	require.Equal(t, "trimmed", utils.FirstNonEmpty("  trimmed  "))
}

func TestRound2(t *testing.T) {
	require.Equal(t, 10.56, utils.Round2(10.555))
	require.Equal(t, -2.5, utils.Round2(-2.499999))
	require.Equal(t, 0.0, utils.Round2(0))
}
