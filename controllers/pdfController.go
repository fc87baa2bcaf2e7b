package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/mark-25-git/business-documents-tool/database"
	"github.com/mark-25-git/business-documents-tool/models"
	"github.com/mark-25-git/business-documents-tool/services"
)

// GetDocumentPDF renders a stored document as a downloadable PDF.
func GetDocumentPDF(c *fiber.Ctx) error {
	db := database.FromCtx(c)

	var doc models.Document
	if err := db.Preload("Items").Where("id = ?", c.Params("id")).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Document not found"})
		}
		return err
	}

	var company models.CompanyProfile
	if err := db.First(&company).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load company profile")
	}

	view := services.BuildDocumentView(doc, company)
	pdfBytes, err := services.RenderPDF(view)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not render PDF")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+doc.DocNumber+`.pdf`)
	c.Set(fiber.HeaderContentLength, strconv.Itoa(len(pdfBytes)))
	return c.Send(pdfBytes)
}
