package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mark-25-git/business-documents-tool/models"
	"github.com/mark-25-git/business-documents-tool/services"
)

func sampleDocument() models.Document {
	return models.Document{
		Id:             "doc-1",
		DocNumber:      "2503-014",
		Type:           models.TypeInvoice,
		Date:           time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC),
		CustomerName:   "Aina Trading",
		BillingPhone:   "012-3456789",
		BillingAddress: "12 Jalan Besar, Muar",
		DeliveryKind:   models.DeliveryFee,
		Items: []models.LineItem{
			{Description: "3 Seater Sofa", Quantity: 1, UnitPrice: 1500, Amount: 1500},
			{Description: "Delivery Fee", Quantity: 1, UnitPrice: 80, Amount: 80},
		},
	}
}

func TestBuildDocumentView(t *testing.T) {
	view := services.BuildDocumentView(sampleDocument(), models.CompanyProfile{Name: "Perabot Megah Enterprise"})

	require.Equal(t, "Invoice", view.TypeLabel)
	require.Equal(t, "2503-014", view.DocNumber)
	require.Equal(t, 1500.0, view.Subtotal)
	require.Equal(t, 80.0, view.DeliveryFee)
	require.Equal(t, 1580.0, view.Total)
	require.False(t, view.IsFreeDelivery)
	require.False(t, view.IsDeliveryOrder)
	require.Equal(t, "RM", view.CurrencyLabel)
	// Shipping falls back to the billing party when no snapshot was taken.
	require.Equal(t, "Aina Trading", view.Shipping.Name)
	require.Equal(t, "12 Jalan Besar, Muar", view.Shipping.Address)
}

func TestIsDeliveryOrderType(t *testing.T) {
	require.True(t, services.IsDeliveryOrderType("DELIVERY_ORDER"))
	require.True(t, services.IsDeliveryOrderType("Delivery Order."))
	require.True(t, services.IsDeliveryOrderType("D.O"))
	require.True(t, services.IsDeliveryOrderType("do"))
	require.False(t, services.IsDeliveryOrderType("INVOICE"))
}

func TestFormatCurrency(t *testing.T) {
	require.Equal(t, "RM 1,234.50", services.FormatCurrency(1234.5))
	require.Equal(t, "RM 0.00", services.FormatCurrency(0))
	require.Equal(t, "RM -50.00", services.FormatCurrency(-50))
}

func TestRenderPDF(t *testing.T) {
	view := services.BuildDocumentView(sampleDocument(), models.CompanyProfile{
		Name:        "Perabot Megah Enterprise",
		Address:     "No.12, Taman Perdana, 84000 Muar, Johor",
		BankName:    "Public Bank",
		BankAccount: "3242595608",
	})

	out, err := services.RenderPDF(view)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	require.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderPDFDeliveryOrder(t *testing.T) {
	doc := sampleDocument()
	doc.Type = models.TypeDeliveryOrder
	doc.ShippingName = "Aina Trading (Warehouse)"
	view := services.BuildDocumentView(doc, models.CompanyProfile{Name: "Perabot Megah Enterprise"})

	require.True(t, view.IsDeliveryOrder)
	require.Equal(t, "Aina Trading (Warehouse)", view.Shipping.Name)

	out, err := services.RenderPDF(view)
	require.NoError(t, err)
	require.Equal(t, "%PDF", string(out[:4]))
}
