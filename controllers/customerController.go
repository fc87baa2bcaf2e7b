package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/mark-25-git/business-documents-tool/database"
	"github.com/mark-25-git/business-documents-tool/middlewares"
	"github.com/mark-25-git/business-documents-tool/models"
	"github.com/mark-25-git/business-documents-tool/utils"
)

// CreateCustomerDTO carries the legacy contact fields plus the optional
// billing/shipping split. Absent split fields resolve from the legacy ones.
type CreateCustomerDTO struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email" validate:"omitempty,email"`

	BillingAddress string `json:"billingAddress"`
	BillingPhone   string `json:"billingPhone"`
	BillingEmail   string `json:"billingEmail"`

	ShippingName    string `json:"shippingName"`
	ShippingAddress string `json:"shippingAddress"`
	ShippingPhone   string `json:"shippingPhone"`
}

type UpdateCustomerDTO struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Email   *string `json:"email" validate:"omitempty,email"`

	BillingAddress *string `json:"billingAddress"`
	BillingPhone   *string `json:"billingPhone"`
	BillingEmail   *string `json:"billingEmail"`

	ShippingName    *string `json:"shippingName"`
	ShippingAddress *string `json:"shippingAddress"`
	ShippingPhone   *string `json:"shippingPhone"`
}

func CreateCustomer(c *fiber.Ctx) error {
	var dto CreateCustomerDTO
	if err := middlewares.BindAndValidate(c, &dto); err != nil {
		return err
	}

	phone := utils.FormatPhone(dto.Phone)
	customer := models.Customer{
		Name:            dto.Name,
		Phone:           phone,
		Address:         dto.Address,
		Email:           dto.Email,
		BillingAddress:  utils.FirstNonEmpty(dto.BillingAddress, dto.Address),
		BillingPhone:    utils.FormatPhone(utils.FirstNonEmpty(dto.BillingPhone, dto.Phone)),
		BillingEmail:    utils.FirstNonEmpty(dto.BillingEmail, dto.Email),
		ShippingName:    utils.FirstNonEmpty(dto.ShippingName, dto.Name),
		ShippingAddress: utils.FirstNonEmpty(dto.ShippingAddress, dto.Address),
		ShippingPhone:   utils.FormatPhone(utils.FirstNonEmpty(dto.ShippingPhone, dto.Phone)),
	}

	db := database.FromCtx(c)
	if err := db.Create(&customer).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not create customer",
			"error":   err.Error(),
		})
	}

	return c.JSON(customer)
}

func GetCustomers(c *fiber.Ctx) error {
	var customers []models.Customer

	db := database.FromCtx(c)
	if err := db.Order("created_at DESC").Find(&customers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not list customers")
	}

	return c.JSON(fiber.Map{
		"customers": customers,
		"message":   "success",
	})
}

func GetCustomer(c *fiber.Ctx) error {
	db := database.FromCtx(c)

	var customer models.Customer
	if err := db.Where("id = ?", c.Params("id")).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Customer not found"})
		}
		return err
	}

	return c.JSON(customer)
}

func UpdateCustomer(c *fiber.Ctx) error {
	var dto UpdateCustomerDTO
	if err := middlewares.BindAndValidate(c, &dto); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&dto)
	for _, p := range []*string{dto.Phone, dto.BillingPhone, dto.ShippingPhone} {
		if p != nil {
			*p = utils.FormatPhone(*p)
		}
	}

	db := database.FromCtx(c)

	var customer models.Customer
	if err := db.Where("id = ?", c.Params("id")).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Customer not found"})
		}
		return err
	}

	updates := utils.UpdatesFromPtrDTO(&dto, map[string]string{
		"billingAddress":  "billing_address",
		"billingPhone":    "billing_phone",
		"billingEmail":    "billing_email",
		"shippingName":    "shipping_name",
		"shippingAddress": "shipping_address",
		"shippingPhone":   "shipping_phone",
	})
	if len(updates) == 0 {
		return c.JSON(customer)
	}

	if err := db.Model(&customer).Updates(updates).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not update customer",
			"error":   err.Error(),
		})
	}

	return c.JSON(customer)
}
