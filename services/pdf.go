package services

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mark-25-git/business-documents-tool/models"
	"github.com/mark-25-git/business-documents-tool/utils"
)

// CurrencyLabel is the single currency this tool prints. Not parameterized.
const CurrencyLabel = "RM"

var typeLabels = map[string]string{
	models.TypeInvoice:       "Invoice",
	models.TypeQuotation:     "Quotation",
	models.TypeReceipt:       "Receipt",
	models.TypeDeliveryOrder: "Delivery Order",
}

var currencyPrinter = message.NewPrinter(language.MustParse("en-MY"))

// FormatCurrency renders an amount as printed on documents, e.g. "RM 1,234.50".
func FormatCurrency(v float64) string {
	return currencyPrinter.Sprintf("%s %.2f", CurrencyLabel, v)
}

// Party is one side of a document: who gets billed, or who receives goods.
type Party struct {
	Name    string
	Phone   string
	Address string
}

// DocumentView is the normalized input handed to the PDF renderer. It is
// fully derived; rendering the same view twice yields the same layout.
type DocumentView struct {
	TypeLabel       string
	DocNumber       string
	IssueDate       time.Time
	Billing         Party
	Shipping        Party
	Items           []models.LineItem
	Subtotal        float64
	DeliveryFee     float64
	IsFreeDelivery  bool
	Total           float64
	CurrencyLabel   string
	IsDeliveryOrder bool
	Notes           string
	Company         models.CompanyProfile
}

// IsDeliveryOrderType matches the loose spellings the original data contains
// ("DELIVERY_ORDER", "Delivery Order.", "D.O", "DO").
func IsDeliveryOrderType(docType string) bool {
	upper := strings.ToUpper(strings.TrimSpace(docType))
	return strings.Contains(upper, "DELIVERY") || strings.Contains(upper, "D.O") || upper == "DO"
}

// TypeLabel maps a stored document type to its printed heading.
func TypeLabel(docType string) string {
	if label, ok := typeLabels[docType]; ok {
		return label
	}
	return docType
}

// BuildDocumentView derives the render input for a stored document. Totals
// are recomputed from the items; shipping falls back to the billing party
// when no distinct shipping snapshot was taken.
func BuildDocumentView(doc models.Document, company models.CompanyProfile) DocumentView {
	summary := Summarize(doc.Items, doc.DeliveryKind)

	billing := Party{
		Name:    doc.CustomerName,
		Phone:   doc.BillingPhone,
		Address: doc.BillingAddress,
	}
	shipping := Party{
		Name:    utils.FirstNonEmpty(doc.ShippingName, doc.CustomerName),
		Phone:   utils.FirstNonEmpty(doc.ShippingPhone, doc.BillingPhone),
		Address: utils.FirstNonEmpty(doc.ShippingAddress, doc.BillingAddress),
	}

	return DocumentView{
		TypeLabel:       TypeLabel(doc.Type),
		DocNumber:       doc.DocNumber,
		IssueDate:       doc.Date,
		Billing:         billing,
		Shipping:        shipping,
		Items:           doc.Items,
		Subtotal:        summary.Subtotal,
		DeliveryFee:     summary.DeliveryFee,
		IsFreeDelivery:  summary.Kind == models.DeliveryFree,
		Total:           summary.Total,
		CurrencyLabel:   CurrencyLabel,
		IsDeliveryOrder: doc.Type == models.TypeDeliveryOrder || IsDeliveryOrderType(doc.Type),
		Notes:           doc.Notes,
		Company:         company,
	}
}

// RenderPDF lays the view out on an A4 page. Delivery orders show the
// ship-to party and quantities only: no prices, no totals.
func RenderPDF(view DocumentView) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Company header
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 7, view.Company.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, line := range []string{view.Company.Registration, view.Company.Address, view.Company.Email, view.Company.Phone} {
		if line != "" {
			pdf.CellFormat(0, 4.5, line, "", 1, "C", false, 0, "")
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, view.TypeLabel, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// Counterparty block left, number/date right
	party := view.Billing
	partyLabel := "To"
	if view.IsDeliveryOrder {
		party = view.Shipping
		partyLabel = "Ship To"
	}
	top := pdf.GetY()
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(100, 4, partyLabel, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 10)
	for _, line := range []string{party.Name, party.Phone, party.Address} {
		if line != "" {
			pdf.MultiCell(100, 5, line, "", "L", false)
		}
	}
	bottom := pdf.GetY()

	pdf.SetY(top)
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 4, view.TypeLabel+" No.", "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 5, view.DocNumber, "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 4, "Issue Date", "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, view.IssueDate.Format("02/01/2006"), "", 1, "R", false, 0, "")
	if pdf.GetY() < bottom {
		pdf.SetY(bottom)
	}
	pdf.Ln(6)

	// Items table
	const (
		colDesc   = 100.0
		colQty    = 20.0
		colPrice  = 35.0
		colAmount = 35.0
	)
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	if view.IsDeliveryOrder {
		pdf.CellFormat(colDesc+colPrice+colAmount, 7, "Description", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colQty, 7, "Qty", "1", 1, "R", true, 0, "")
	} else {
		pdf.CellFormat(colDesc, 7, "Description", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colQty, 7, "Qty", "1", 0, "R", true, 0, "")
		pdf.CellFormat(colPrice, 7, "Unit Price", "1", 0, "R", true, 0, "")
		pdf.CellFormat(colAmount, 7, "Amount", "1", 1, "R", true, 0, "")
	}

	pdf.SetFont("Arial", "", 10)
	qtyFmt := func(q float64) string { return strconv.FormatFloat(q, 'f', -1, 64) }
	for _, item := range view.Items {
		if view.IsDeliveryOrder {
			if IsDeliveryLine(item.Description) {
				continue // delivery charges are not goods to receive
			}
			pdf.CellFormat(colDesc+colPrice+colAmount, 7, item.Description, "1", 0, "L", false, 0, "")
			pdf.CellFormat(colQty, 7, qtyFmt(item.Quantity), "1", 1, "R", false, 0, "")
			continue
		}
		pdf.CellFormat(colDesc, 7, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colQty, 7, qtyFmt(item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colPrice, 7, FormatCurrency(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colAmount, 7, FormatCurrency(item.Amount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Totals, hidden for delivery orders
	if !view.IsDeliveryOrder {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(colDesc+colQty+colPrice, 6, "Subtotal", "", 0, "R", false, 0, "")
		pdf.CellFormat(colAmount, 6, FormatCurrency(view.Subtotal), "", 1, "R", false, 0, "")
		if view.IsFreeDelivery {
			pdf.CellFormat(colDesc+colQty+colPrice, 6, "Delivery", "", 0, "R", false, 0, "")
			pdf.CellFormat(colAmount, 6, "Free", "", 1, "R", false, 0, "")
		} else if view.DeliveryFee != 0 {
			pdf.CellFormat(colDesc+colQty+colPrice, 6, "Delivery Fee", "", 0, "R", false, 0, "")
			pdf.CellFormat(colAmount, 6, FormatCurrency(view.DeliveryFee), "", 1, "R", false, 0, "")
		}
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(colDesc+colQty+colPrice, 8, "Total", "", 0, "R", false, 0, "")
		pdf.CellFormat(colAmount, 8, FormatCurrency(view.Total), "", 1, "R", false, 0, "")
		pdf.Ln(6)

		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(0, 5, "Terms:", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 5, "All goods sold are non-returnable and non-refundable.", "", 1, "L", false, 0, "")
		if view.Company.BankAccount != "" {
			pdf.CellFormat(0, 5, "All payments by bank transfer should be made to the following bank details.", "", 1, "L", false, 0, "")
			pdf.CellFormat(0, 5, "    "+view.Company.Name, "", 1, "L", false, 0, "")
			pdf.CellFormat(0, 5, "    "+view.Company.BankName+" (A/C NO: "+view.Company.BankAccount+")", "", 1, "L", false, 0, "")
		}
	}

	if view.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(0, 5, view.Notes, "", "L", false)
	}

	// Signatures
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 9)
	if view.IsDeliveryOrder {
		pdf.CellFormat(95, 5, "Issued by", "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 5, "Received by", "", 1, "R", false, 0, "")
		pdf.Ln(18)
		pdf.CellFormat(95, 5, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 5, "____________________", "", 1, "R", false, 0, "")
	} else {
		pdf.CellFormat(0, 5, "Issued by", "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
