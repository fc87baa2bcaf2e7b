package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mark-25-git/business-documents-tool/database"
	"github.com/mark-25-git/business-documents-tool/middlewares"
	"github.com/mark-25-git/business-documents-tool/models"
	"github.com/mark-25-git/business-documents-tool/utils"
)

type UpdateCompanyDTO struct {
	Name         *string `json:"name"`
	Registration *string `json:"registration"`
	Address      *string `json:"address"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone"`
	BankName     *string `json:"bankName"`
	BankAccount  *string `json:"bankAccount"`
}

// GetCompanyProfile returns the seller identity printed on PDFs.
func GetCompanyProfile(c *fiber.Ctx) error {
	db := database.FromCtx(c)

	var company models.CompanyProfile
	if err := db.First(&company).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load company profile")
	}

	return c.JSON(company)
}

func UpdateCompanyProfile(c *fiber.Ctx) error {
	var dto UpdateCompanyDTO
	if err := middlewares.BindAndValidate(c, &dto); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&dto)

	db := database.FromCtx(c)

	var company models.CompanyProfile
	if err := db.First(&company).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load company profile")
	}

	updates := utils.UpdatesFromPtrDTO(&dto, map[string]string{
		"bankName":    "bank_name",
		"bankAccount": "bank_account",
	})
	if len(updates) == 0 {
		return c.JSON(company)
	}

	if err := db.Model(&company).Updates(updates).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not update company profile",
			"error":   err.Error(),
		})
	}

	return c.JSON(company)
}
