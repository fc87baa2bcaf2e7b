package models

// CounterState is the persisted month/counter pair behind document numbering.
// A single row exists; readers lock it FOR UPDATE before incrementing so
// concurrent creations cannot observe the same counter value.
type CounterState struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	LastDocMonth string `json:"lastDocMonth" gorm:"size:4"` // YYMM
	DocCounter   int    `json:"docCounter"`
}
