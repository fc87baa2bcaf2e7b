package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer keeps the legacy name/phone/address/email fields alongside the
// billing/shipping split. The legacy fields act as fallbacks for rows created
// before the split existed; resolution happens at write time in the controller.
type Customer struct {
	Id      string `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"not null;index"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`

	BillingAddress string `json:"billingAddress"`
	BillingPhone   string `json:"billingPhone"`
	BillingEmail   string `json:"billingEmail"`

	ShippingName    string `json:"shippingName"`
	ShippingAddress string `json:"shippingAddress"`
	ShippingPhone   string `json:"shippingPhone"`

	CreatedAt time.Time `json:"createdAt"`
}

func (customer *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	customer.Id = uuid.NewString()
	return
}
