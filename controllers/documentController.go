package controllers

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mark-25-git/business-documents-tool/database"
	"github.com/mark-25-git/business-documents-tool/middlewares"
	"github.com/mark-25-git/business-documents-tool/models"
	"github.com/mark-25-git/business-documents-tool/services"
	"github.com/mark-25-git/business-documents-tool/utils"
)

// LineItemDTO is one editor row. Quantity/unit price coerce malformed input
// to zero instead of rejecting; amount nil means derive from quantity*price.
type LineItemDTO struct {
	Description string           `json:"description"`
	Quantity    utils.FlexFloat  `json:"quantity"`
	UnitPrice   utils.FlexFloat  `json:"unitPrice"`
	Amount      *utils.FlexFloat `json:"amount"`
}

type CreateDocumentDTO struct {
	Type       string `json:"type" validate:"required,oneof=INVOICE QUOTATION RECEIPT DELIVERY_ORDER"`
	Date       string `json:"date"` // ISO date; empty means today
	CustomerId string `json:"customerId" validate:"required"`
	Status     string `json:"status" validate:"omitempty,oneof=PAID PENDING DRAFT"`
	Notes      string `json:"notes"`

	Items          []LineItemDTO   `json:"items"`
	IsFreeDelivery bool            `json:"isFreeDelivery"`
	DeliveryFee    utils.FlexFloat `json:"deliveryFee"`

	// Optional snapshot overrides; absent fields resolve from the customer.
	BillingAddress  string `json:"billingAddress"`
	BillingPhone    string `json:"billingPhone"`
	BillingEmail    string `json:"billingEmail"`
	ShippingName    string `json:"shippingName"`
	ShippingAddress string `json:"shippingAddress"`
	ShippingPhone   string `json:"shippingPhone"`
}

type UpdateDocumentDTO struct {
	Date   *string `json:"date"`
	Status *string `json:"status" validate:"omitempty,oneof=PAID PENDING DRAFT"`
	Notes  *string `json:"notes"`

	BillingAddress  *string `json:"billingAddress"`
	BillingPhone    *string `json:"billingPhone"`
	BillingEmail    *string `json:"billingEmail"`
	ShippingName    *string `json:"shippingName"`
	ShippingAddress *string `json:"shippingAddress"`
	ShippingPhone   *string `json:"shippingPhone"`
}

func parseDocDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// CreateDocument normalizes the line items, snapshots the counterparty,
// issues the document number and persists header plus items, all inside the
// request transaction. A counter failure aborts the whole operation: no
// number is issued without its increment on record.
func CreateDocument(c *fiber.Ctx) error {
	var dto CreateDocumentDTO
	if err := middlewares.BindAndValidate(c, &dto); err != nil {
		return err
	}

	date, err := parseDocDate(dto.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid date")
	}

	db := database.FromCtx(c)

	var customer models.Customer
	if err := db.Where("id = ?", dto.CustomerId).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Customer not found"})
		}
		return err
	}

	inputs := make([]services.ItemInput, 0, len(dto.Items))
	for _, item := range dto.Items {
		in := services.ItemInput{
			Description: item.Description,
			Quantity:    item.Quantity.Float64(),
			UnitPrice:   item.UnitPrice.Float64(),
		}
		if item.Amount != nil {
			amount := item.Amount.Float64()
			in.Amount = &amount
		}
		inputs = append(inputs, in)
	}
	items, summary := services.NormalizeItems(inputs, dto.IsFreeDelivery, dto.DeliveryFee.Float64())

	gen := services.NumberGenerator{Store: database.NewCounterRepo(db)}
	docNumber, err := gen.Next()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not generate document number")
	}

	status := dto.Status
	if status == "" {
		status = "PENDING"
	}

	doc := models.Document{
		DocNumber:    docNumber,
		Type:         dto.Type,
		Date:         date,
		CustomerId:   customer.Id,
		CustomerName: customer.Name,
		Items:        items,
		TotalAmount:  summary.Total,
		DeliveryKind: summary.Kind,
		Status:       status,
		Notes:        dto.Notes,

		BillingAddress:  utils.FirstNonEmpty(dto.BillingAddress, customer.BillingAddress, customer.Address),
		BillingPhone:    utils.FirstNonEmpty(dto.BillingPhone, customer.BillingPhone, customer.Phone),
		BillingEmail:    utils.FirstNonEmpty(dto.BillingEmail, customer.BillingEmail, customer.Email),
		ShippingName:    utils.FirstNonEmpty(dto.ShippingName, customer.ShippingName, customer.Name),
		ShippingAddress: utils.FirstNonEmpty(dto.ShippingAddress, customer.ShippingAddress, customer.Address),
		ShippingPhone:   utils.FirstNonEmpty(dto.ShippingPhone, customer.ShippingPhone, customer.Phone),
	}

	if err := db.Create(&doc).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"message": "Could not create document",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"document": doc,
		"summary":  summary,
	})
}

func GetDocuments(c *fiber.Ctx) error {
	var docs []models.Document

	db := database.FromCtx(c)
	if err := db.Order("created_at DESC").Find(&docs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list documents")
	}

	return c.JSON(fiber.Map{
		"documents": docs,
		"message":   "success",
	})
}

// GetDocument returns the stored header and items plus totals recomputed by
// the calculator, so stale or legacy rows always display consistently.
func GetDocument(c *fiber.Ctx) error {
	db := database.FromCtx(c)

	var doc models.Document
	if err := db.Preload("Items").Where("id = ?", c.Params("id")).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Document not found"})
		}
		return err
	}

	summary := services.Summarize(doc.Items, doc.DeliveryKind)

	return c.JSON(fiber.Map{
		"document": doc,
		"summary":  summary,
	})
}

// UpdateDocument edits the mutable slice of a document: status, notes, date
// and the billing/shipping snapshots. DocNumber, type and items are frozen.
// The prior header state is kept as an immutable revision.
func UpdateDocument(c *fiber.Ctx) error {
	var dto UpdateDocumentDTO
	if err := middlewares.BindAndValidate(c, &dto); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&dto)

	db := database.FromCtx(c)

	var doc models.Document
	if err := db.Preload("Items").Where("id = ?", c.Params("id")).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Document not found"})
		}
		return err
	}

	updates := utils.UpdatesFromPtrDTO(&dto, map[string]string{
		"billingAddress":  "billing_address",
		"billingPhone":    "billing_phone",
		"billingEmail":    "billing_email",
		"shippingName":    "shipping_name",
		"shippingAddress": "shipping_address",
		"shippingPhone":   "shipping_phone",
	})
	if dto.Date != nil {
		date, err := parseDocDate(*dto.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid date")
		}
		updates["date"] = date
	}
	if len(updates) == 0 {
		return c.JSON(doc)
	}

	// Snapshot the current header before touching it.
	snapshot, err := json.Marshal(doc)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not snapshot document")
	}
	var lastVersion int
	db.Model(&models.DocumentRevision{}).
		Where("document_id = ?", doc.Id).
		Select("COALESCE(MAX(version_no), 0)").Scan(&lastVersion)
	revision := models.DocumentRevision{
		DocumentId: doc.Id,
		VersionNo:  lastVersion + 1,
		Snapshot:   datatypes.JSON(snapshot),
	}
	if err := db.Create(&revision).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"message": "Could not record document revision",
			"error":   err.Error(),
		})
	}

	if err := db.Model(&doc).Updates(updates).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not update document",
			"error":   err.Error(),
		})
	}

	return c.JSON(doc)
}

func DeleteDocument(c *fiber.Ctx) error {
	db := database.FromCtx(c)

	var doc models.Document
	if err := db.Where("id = ?", c.Params("id")).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Document not found"})
		}
		return err
	}

	if err := db.Where("doc_id = ?", doc.Id).Delete(&models.LineItem{}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete line items")
	}
	if err := db.Delete(&doc).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete document")
	}

	return c.JSON(fiber.Map{"message": "success"})
}

// GetItemSuggestions lists distinct line-item descriptions with the first
// unit price seen for each, for editor autocomplete. Delivery-like rows are
// excluded.
func GetItemSuggestions(c *fiber.Ctx) error {
	db := database.FromCtx(c)

	var rows []models.LineItem
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load line items")
	}

	type suggestion struct {
		Description string  `json:"description"`
		Price       float64 `json:"price"`
	}
	seen := make(map[string]bool)
	suggestions := make([]suggestion, 0)
	for _, row := range rows {
		desc := strings.TrimSpace(row.Description)
		if desc == "" || services.IsSuggestionExcluded(desc) {
			continue
		}
		if seen[desc] {
			continue
		}
		seen[desc] = true
		suggestions = append(suggestions, suggestion{Description: desc, Price: row.UnitPrice})
	}

	return c.JSON(fiber.Map{
		"suggestions": suggestions,
		"message":     "success",
	})
}
