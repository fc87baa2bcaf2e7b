package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Document types.
const (
	TypeInvoice       = "INVOICE"
	TypeQuotation     = "QUOTATION"
	TypeReceipt       = "RECEIPT"
	TypeDeliveryOrder = "DELIVERY_ORDER"
)

// DeliveryKind records how a document's delivery charge was classified at
// save time. Documents created before the field existed have it empty; for
// those the description scan in services is the source of truth.
type DeliveryKind string

const (
	DeliveryUnset DeliveryKind = ""
	DeliveryNone  DeliveryKind = "none"
	DeliveryFee   DeliveryKind = "fee"
	DeliveryFree  DeliveryKind = "free"
)

// Document is a commercial document header. The doc number and the line items
// are immutable once issued; billing/shipping snapshots, status and notes stay
// editable without touching the owning customer.
type Document struct {
	Id        string    `json:"id" gorm:"primaryKey"`
	DocNumber string    `json:"docNumber" gorm:"unique;not null"`
	Type      string    `json:"type" gorm:"size:20;not null;index"`
	Date      time.Time `json:"date"`

	CustomerId   string   `json:"customerId" gorm:"index"`
	Customer     Customer `json:"-" gorm:"foreignKey:CustomerId;references:Id"`
	CustomerName string   `json:"customerName"` // denormalized snapshot

	Items        []LineItem   `json:"items" gorm:"foreignKey:DocId;constraint:OnDelete:CASCADE"`
	TotalAmount  float64      `json:"totalAmount" gorm:"type:numeric(12,2)"`
	DeliveryKind DeliveryKind `json:"deliveryKind" gorm:"size:10"`

	Status string `json:"status" gorm:"size:20"` // PAID | PENDING | DRAFT
	Notes  string `json:"notes"`

	// Snapshots taken from the customer at creation time, editable thereafter.
	BillingAddress  string `json:"billingAddress"`
	BillingPhone    string `json:"billingPhone"`
	BillingEmail    string `json:"billingEmail"`
	ShippingName    string `json:"shippingName"`
	ShippingAddress string `json:"shippingAddress"`
	ShippingPhone   string `json:"shippingPhone"`

	CreatedAt time.Time `json:"createdAt"`
}

func (doc *Document) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	doc.Id = uuid.NewString()
	return
}

// LineItem is an immutable row belonging to a document. Amount is persisted
// rather than recomputed so explicit overrides (discounts, free delivery)
// survive as written.
type LineItem struct {
	Id          string  `json:"id" gorm:"primaryKey"`
	DocId       string  `json:"-" gorm:"index"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice" gorm:"type:numeric(12,2)"`
	Amount      float64 `json:"amount" gorm:"type:numeric(12,2)"`
}

func (item *LineItem) BeforeCreate(tx *gorm.DB) (err error) {
	if item.Id == "" {
		item.Id = uuid.NewString()
	}
	return
}

// DocumentRevision is an immutable snapshot of a document header taken before
// an edit is applied.
type DocumentRevision struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	DocumentId string         `json:"documentId" gorm:"index:idx_document_revisions_doc_version,unique,priority:1"`
	VersionNo  int            `json:"versionNo" gorm:"not null;index:idx_document_revisions_doc_version,unique,priority:2"`
	Snapshot   datatypes.JSON `json:"snapshot" gorm:"type:jsonb"`
	CreatedAt  time.Time      `json:"createdAt"`
}
