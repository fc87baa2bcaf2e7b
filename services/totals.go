package services

import (
	"strings"

	"github.com/mark-25-git/business-documents-tool/models"
	"github.com/mark-25-git/business-documents-tool/utils"
)

// Descriptions of the synthesized delivery lines. Persisted rows are
// re-classified by scanning for these keywords, so the wording is part of the
// storage format.
const (
	FreeDeliveryDescription = "Free Delivery"
	DeliveryFeeDescription  = "Delivery Fee"
)

// deliveryKeywords also excludes delivery-like rows from item suggestions.
var deliveryKeywords = []string{"delivery", "delivery fee", "free delivery", "shipping", "shipping fee"}

// ItemInput is one editable row from the document editor. Amount nil means
// "no explicit override": the amount derives from quantity * unit price.
// Explicit overrides survive as written (discounts, zero-amount lines).
type ItemInput struct {
	Description string
	Quantity    float64
	UnitPrice   float64
	Amount      *float64
}

// Summary holds the derived monetary totals of a document.
type Summary struct {
	Subtotal    float64
	DeliveryFee float64
	Total       float64
	Kind        models.DeliveryKind
}

// IsDeliveryLine reports whether a line-item description marks the row as a
// delivery charge. Case-insensitive substring match, as the original sheet
// rows rely on.
func IsDeliveryLine(description string) bool {
	return strings.Contains(strings.ToLower(description), "delivery")
}

func isFreeDeliveryLine(description string) bool {
	return strings.Contains(strings.ToLower(description), "free delivery")
}

// IsSuggestionExcluded reports whether a description is delivery-like and
// must not appear in item autocomplete suggestions.
func IsSuggestionExcluded(description string) bool {
	lower := strings.ToLower(strings.TrimSpace(description))
	for _, kw := range deliveryKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// NormalizeItems turns raw editor rows plus delivery preferences into the
// canonical item list to persist and its totals.
//
// Rows with an empty trimmed description are dropped. At most one delivery
// line is appended: a zero-amount Free Delivery line when isFreeDelivery is
// set, else a Delivery Fee line when the fee is non-zero. The subtotal covers
// base items only; the total covers everything. Malformed input never fails:
// missing numbers have already been coerced to zero by the transport layer.
func NormalizeItems(inputs []ItemInput, isFreeDelivery bool, deliveryFee float64) ([]models.LineItem, Summary) {
	items := make([]models.LineItem, 0, len(inputs)+1)

	var subtotal float64
	for _, in := range inputs {
		desc := strings.TrimSpace(in.Description)
		if desc == "" {
			continue
		}
		amount := in.Quantity * in.UnitPrice
		if in.Amount != nil {
			amount = *in.Amount
		}
		amount = utils.Round2(amount)
		subtotal += amount
		items = append(items, models.LineItem{
			Description: desc,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Amount:      amount,
		})
	}

	summary := Summary{Subtotal: utils.Round2(subtotal), Kind: models.DeliveryNone}
	switch {
	case isFreeDelivery:
		summary.Kind = models.DeliveryFree
		items = append(items, models.LineItem{
			Description: FreeDeliveryDescription,
			Quantity:    1,
			UnitPrice:   0,
			Amount:      0,
		})
	case deliveryFee != 0:
		deliveryFee = utils.Round2(deliveryFee)
		summary.Kind = models.DeliveryFee
		summary.DeliveryFee = deliveryFee
		items = append(items, models.LineItem{
			Description: DeliveryFeeDescription,
			Quantity:    1,
			UnitPrice:   deliveryFee,
			Amount:      deliveryFee,
		})
	}
	summary.Total = utils.Round2(summary.Subtotal + summary.DeliveryFee)

	return items, summary
}

// Summarize re-derives a document's totals from its persisted items. The
// typed kind wins when present; rows stored before the field existed fall
// back to the description scan, where the first delivery-like row in a
// linear scan governs classification.
//
// For any item list produced by NormalizeItems the result matches the
// summary computed at save time.
func Summarize(items []models.LineItem, kind models.DeliveryKind) Summary {
	var subtotal float64
	var deliveryLine *models.LineItem
	for i := range items {
		desc := strings.TrimSpace(items[i].Description)
		if desc == "" {
			continue
		}
		if IsDeliveryLine(desc) {
			if deliveryLine == nil {
				deliveryLine = &items[i]
			}
			continue
		}
		subtotal += items[i].Amount
	}

	if kind == models.DeliveryUnset {
		switch {
		case deliveryLine == nil:
			kind = models.DeliveryNone
		case isFreeDeliveryLine(deliveryLine.Description):
			kind = models.DeliveryFree
		default:
			kind = models.DeliveryFee
		}
	}

	summary := Summary{Subtotal: utils.Round2(subtotal), Kind: kind}
	if kind == models.DeliveryFee && deliveryLine != nil {
		summary.DeliveryFee = deliveryLine.Amount
	}
	summary.Total = utils.Round2(summary.Subtotal + summary.DeliveryFee)
	return summary
}

// BaseItems filters a persisted item list down to base items: non-empty
// trimmed descriptions, delivery lines excluded.
func BaseItems(items []models.LineItem) []models.LineItem {
	out := make([]models.LineItem, 0, len(items))
	for _, item := range items {
		desc := strings.TrimSpace(item.Description)
		if desc == "" || IsDeliveryLine(desc) {
			continue
		}
		out = append(out, item)
	}
	return out
}
