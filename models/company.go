package models

// CompanyProfile is the seller identity printed on every PDF header. A single
// row exists; it is editable through the API instead of being hardcoded into
// the renderer.
type CompanyProfile struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"not null"`
	Registration string `json:"registration"`
	Address      string `json:"address"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	BankName     string `json:"bankName"`
	BankAccount  string `json:"bankAccount"`
}
