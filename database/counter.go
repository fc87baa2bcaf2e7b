package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mark-25-git/business-documents-tool/models"
)

// CounterRepo implements services.CounterStore over a gorm handle. Run it
// against the request's transaction: Read takes a FOR UPDATE lock on the
// single counter row, so concurrent document creations serialize on the row
// instead of reading the same value twice.
type CounterRepo struct {
	db *gorm.DB
}

func NewCounterRepo(db *gorm.DB) *CounterRepo {
	return &CounterRepo{db: db}
}

func (r *CounterRepo) Read() (models.CounterState, error) {
	var state models.CounterState
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("id").First(&state).Error
	if err != nil {
		return models.CounterState{}, err
	}
	return state, nil
}

func (r *CounterRepo) Write(state models.CounterState) error {
	return r.db.Model(&models.CounterState{}).
		Where("id = ?", state.ID).
		Updates(map[string]any{
			"last_doc_month": state.LastDocMonth,
			"doc_counter":    state.DocCounter,
		}).Error
}
