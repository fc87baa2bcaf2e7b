package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mark-25-git/business-documents-tool/models"
)

// Migrate applies idempotent schema migrations:
// - AutoMigrate (tables/columns/index tags)
// - Money column types (NUMERIC(12,2))
// - CHECK constraints on document type/status
// - Seed rows: the single counter-state row and the company profile
func Migrate() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.User{},
			&models.CompanyProfile{},
			&models.Customer{},
			&models.Document{},
			&models.LineItem{},
			&models.DocumentRevision{},
			&models.CounterState{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		// --- Enforce money columns as NUMERIC(12,2) (idempotent ALTERs) ---
		alters := []string{
			`ALTER TABLE documents  ALTER COLUMN total_amount TYPE numeric(12,2)`,
			`ALTER TABLE line_items ALTER COLUMN unit_price   TYPE numeric(12,2)`,
			`ALTER TABLE line_items ALTER COLUMN amount       TYPE numeric(12,2)`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("money type migration failed on: %s - %w", stmt, err)
			}
		}

		// --- CHECK constraints (drop+add to stay idempotent) ---
		checks := []struct{ name, table, expr string }{
			{"chk_documents_type", "documents",
				`type IN ('INVOICE','QUOTATION','RECEIPT','DELIVERY_ORDER')`},
			{"chk_counter_month_format", "counter_states",
				`last_doc_month = '' OR last_doc_month ~ '^[0-9]{4}$'`},
		}
		for _, chk := range checks {
			if err := tx.Exec(fmt.Sprintf(
				`ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s`, chk.table, chk.name)).Error; err != nil {
				return fmt.Errorf("drop constraint %s failed: %w", chk.name, err)
			}
			if err := tx.Exec(fmt.Sprintf(
				`ALTER TABLE %s ADD CONSTRAINT %s CHECK (%s)`, chk.table, chk.name, chk.expr)).Error; err != nil {
				return fmt.Errorf("add constraint %s failed: %w", chk.name, err)
			}
		}

		// --- Seed the single counter row ---
		var counter models.CounterState
		if err := tx.First(&counter).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("counter seed lookup failed: %w", err)
			}
			if err := tx.Create(&models.CounterState{LastDocMonth: "", DocCounter: 0}).Error; err != nil {
				return fmt.Errorf("counter seed failed: %w", err)
			}
		}

		// --- Seed the company profile (placeholder until edited via the API) ---
		var company models.CompanyProfile
		if err := tx.First(&company).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("company seed lookup failed: %w", err)
			}
			if err := tx.Create(&models.CompanyProfile{Name: "My Company"}).Error; err != nil {
				return fmt.Errorf("company seed failed: %w", err)
			}
		}

		return nil
	})
}
