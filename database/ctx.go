package database

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FromCtx returns the handle handlers should use for this request: the
// per-request transaction when middlewares.Tx opened one, the shared
// connection otherwise.
func FromCtx(c *fiber.Ctx) *gorm.DB {
	if v := c.Locals("tx"); v != nil {
		if tx, ok := v.(*gorm.DB); ok && tx != nil {
			return tx
		}
	}
	return DB
}
