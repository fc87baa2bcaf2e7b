package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mark-25-git/business-documents-tool/models"
	"github.com/mark-25-git/business-documents-tool/services"
)

func fptr(v float64) *float64 { return &v }

func TestNormalizeItemsNoDelivery(t *testing.T) {
	items, summary := services.NormalizeItems([]services.ItemInput{
		{Description: "Sofa", Quantity: 1, UnitPrice: 500, Amount: fptr(500)},
	}, false, 0)

	require.Len(t, items, 1)
	require.Equal(t, 500.0, summary.Subtotal)
	require.Equal(t, 500.0, summary.Total)
	require.Equal(t, 0.0, summary.DeliveryFee)
	require.Equal(t, models.DeliveryNone, summary.Kind)
}

func TestNormalizeItemsDeliveryFee(t *testing.T) {
	items, summary := services.NormalizeItems([]services.ItemInput{
		{Description: "Chair", Quantity: 2, UnitPrice: 100},
	}, false, 25)

	require.Len(t, items, 2)
	require.Equal(t, models.LineItem{
		Description: "Delivery Fee", Quantity: 1, UnitPrice: 25, Amount: 25,
	}, items[1])
	require.Equal(t, 200.0, summary.Subtotal)
	require.Equal(t, 25.0, summary.DeliveryFee)
	require.Equal(t, 225.0, summary.Total)
	require.Equal(t, models.DeliveryFee, summary.Kind)
}

func TestNormalizeItemsFreeDelivery(t *testing.T) {
	// Free delivery wins even when a fee was entered.
	items, summary := services.NormalizeItems([]services.ItemInput{
		{Description: "Chair", Quantity: 2, UnitPrice: 100},
	}, true, 25)

	require.Len(t, items, 2)
	require.Equal(t, models.LineItem{
		Description: "Free Delivery", Quantity: 1, UnitPrice: 0, Amount: 0,
	}, items[1])
	require.Equal(t, 200.0, summary.Subtotal)
	require.Equal(t, 0.0, summary.DeliveryFee)
	require.Equal(t, 200.0, summary.Total)
	require.Equal(t, models.DeliveryFree, summary.Kind)
}

func TestNormalizeItemsDropsEmptyDescriptions(t *testing.T) {
	items, summary := services.NormalizeItems([]services.ItemInput{
		{Description: "   ", Quantity: 3, UnitPrice: 10},
		{Description: "", Quantity: 1, UnitPrice: 99},
		{Description: "Table", Quantity: 1, UnitPrice: 150},
	}, false, 0)

	require.Len(t, items, 1)
	require.Equal(t, "Table", items[0].Description)
	require.Equal(t, 150.0, summary.Subtotal)
	require.Equal(t, 150.0, summary.Total)
}

func TestNormalizeItemsDerivesMissingAmount(t *testing.T) {
	items, _ := services.NormalizeItems([]services.ItemInput{
		{Description: "Cabinet", Quantity: 3, UnitPrice: 120.5},
		{Description: "Promo item", Quantity: 2, UnitPrice: 80, Amount: fptr(0)},
	}, false, 0)

	require.Equal(t, 361.5, items[0].Amount)
	// An explicit zero override is respected, not re-derived.
	require.Equal(t, 0.0, items[1].Amount)
}

func TestNormalizeItemsNegativeUnitPrice(t *testing.T) {
	items, summary := services.NormalizeItems([]services.ItemInput{
		{Description: "Sofa", Quantity: 1, UnitPrice: 500},
		{Description: "Trade-in discount", Quantity: 1, UnitPrice: -50},
	}, false, 0)

	require.Equal(t, -50.0, items[1].Amount)
	require.Equal(t, 450.0, summary.Subtotal)
	require.Equal(t, 450.0, summary.Total)
}

func TestSummarizeRoundTrip(t *testing.T) {
	// Whatever NormalizeItems produced, re-scanning the persisted rows must
	// reproduce the save-time summary, with or without the typed kind.
	cases := []struct {
		name string
		free bool
		fee  float64
	}{
		{"no delivery", false, 0},
		{"delivery fee", false, 25},
		{"free delivery", true, 0},
		{"negative fee", false, -10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, saved := services.NormalizeItems([]services.ItemInput{
				{Description: "Chair", Quantity: 2, UnitPrice: 100},
				{Description: "Table", Quantity: 1, UnitPrice: 250},
			}, tc.free, tc.fee)

			require.Equal(t, saved, services.Summarize(items, saved.Kind))
			// Legacy rows have no typed kind; the description scan must agree.
			require.Equal(t, saved, services.Summarize(items, models.DeliveryUnset))
			// And twice more, for idempotence.
			require.Equal(t, saved, services.Summarize(items, models.DeliveryUnset))
		})
	}
}

func TestSummarizeFirstDeliveryLineWins(t *testing.T) {
	items := []models.LineItem{
		{Description: "Chair", Amount: 200},
		{Description: "Delivery Fee", Amount: 30},
		{Description: "Free Delivery", Amount: 0},
	}

	summary := services.Summarize(items, models.DeliveryUnset)
	require.Equal(t, models.DeliveryFee, summary.Kind)
	require.Equal(t, 30.0, summary.DeliveryFee)
	require.Equal(t, 230.0, summary.Total)
}

func TestSummarizeTypedKindWinsOverScan(t *testing.T) {
	items := []models.LineItem{
		{Description: "Chair", Amount: 200},
		{Description: "Free Delivery", Amount: 0},
	}

	summary := services.Summarize(items, models.DeliveryFree)
	require.Equal(t, models.DeliveryFree, summary.Kind)
	require.Equal(t, 200.0, summary.Total)
}

func TestBaseItems(t *testing.T) {
	items := []models.LineItem{
		{Description: "Chair", Amount: 200},
		{Description: "  ", Amount: 99},
		{Description: "Delivery Fee", Amount: 25},
	}

	base := services.BaseItems(items)
	require.Len(t, base, 1)
	require.Equal(t, "Chair", base[0].Description)
}

func TestIsSuggestionExcluded(t *testing.T) {
	require.True(t, services.IsSuggestionExcluded("Delivery Fee"))
	require.True(t, services.IsSuggestionExcluded("free delivery"))
	require.True(t, services.IsSuggestionExcluded("Shipping fee (east Malaysia)"))
	require.False(t, services.IsSuggestionExcluded("3 Seater Sofa"))
}
