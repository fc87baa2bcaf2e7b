package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/mark-25-git/business-documents-tool/database"
)

// Tx opens a per-request DB transaction for mutating routes. Handlers reach
// it through database.FromCtx(c); the counter row lock taken during document
// creation lives and dies with this transaction.
// Order: run AFTER Idempotency() so idempotency records aren't tied to the
// handler TX.
func Tx() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		tx := database.DB.Begin()
		if tx.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to begin transaction")
		}

		// Ensure we always cleanup.
		defer func() {
			if r := recover(); r != nil {
				_ = tx.Rollback()
				panic(r) // re-panic after rollback so Fiber's handler can catch
			}
			if err != nil {
				_ = tx.Rollback()
				return
			}
			if e := tx.Commit().Error; e != nil {
				log.Printf("tx commit failed: %v", e)
				err = fiber.NewError(fiber.StatusInternalServerError, "transaction commit failed")
			}
		}()

		c.Locals("tx", tx)

		err = c.Next()
		return err
	}
}
