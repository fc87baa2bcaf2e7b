package services

import (
	"fmt"
	"time"

	"github.com/mark-25-git/business-documents-tool/models"
)

// CounterStore persists the month/counter pair behind document numbering.
// The production implementation locks the counter row inside the request's
// transaction; tests substitute an in-memory fake.
type CounterStore interface {
	Read() (models.CounterState, error)
	Write(models.CounterState) error
}

// NumberGenerator issues YYMM-NNN document numbers, unique and monotonic
// within a calendar month. Counter state is persisted before the number is
// handed out; a store failure aborts the whole document creation so no
// number is ever issued without its increment on record.
type NumberGenerator struct {
	Store CounterStore
	Now   func() time.Time // nil means time.Now
}

// MonthKey renders the two-digit year and month of t, e.g. "2503".
func MonthKey(t time.Time) string {
	return t.Format("0601")
}

// FormatDocNumber zero-pads the counter to three digits. Counters past 999
// widen the suffix; uniqueness holds, the fixed width does not.
func FormatDocNumber(monthKey string, counter int) string {
	return fmt.Sprintf("%s-%03d", monthKey, counter)
}

// Next issues the next document number and persists the updated counter
// state. It must be called exactly once per document.
func (g *NumberGenerator) Next() (string, error) {
	now := time.Now()
	if g.Now != nil {
		now = g.Now()
	}

	state, err := g.Store.Read()
	if err != nil {
		return "", fmt.Errorf("read counter state: %w", err)
	}

	monthKey := MonthKey(now)
	if state.LastDocMonth != monthKey {
		state.LastDocMonth = monthKey
		state.DocCounter = 1
	} else {
		state.DocCounter++
	}

	if err := g.Store.Write(state); err != nil {
		return "", fmt.Errorf("write counter state: %w", err)
	}

	return FormatDocNumber(monthKey, state.DocCounter), nil
}
