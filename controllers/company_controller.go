package controllers

import (
	"errors"
	"strings"

	"wms-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CompanyController struct {
	DB *gorm.DB
}

func NewCompanyController(db *gorm.DB) *CompanyController {
	return &CompanyController{DB: db}
}

func (c *CompanyController) CreateCompany(ctx *fiber.Ctx) error {
	var company models.Company
	if err := ctx.BodyParser(&company); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	company.CompanyCode = strings.ToUpper(strings.TrimSpace(company.CompanyCode))
	company.IsActive = true
	company.CreatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Create(&company).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Company created successfully",
		"data":    company,
	})
}

func (c *CompanyController) GetAllCompanies(ctx *fiber.Ctx) error {
	var companies []models.Company
	if err := c.DB.Find(&companies).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": companies})
}

func (c *CompanyController) GetCompanyByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var company models.Company

	if err := c.DB.First(&company, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": company})
}

func (c *CompanyController) UpdateCompany(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var payload models.Company
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	payload.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Model(&models.Company{}).Where("id = ?", id).Updates(payload).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Company updated successfully"})
}

func (c *CompanyController) DeleteCompany(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var company models.Company
	if err := c.DB.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	company.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&company).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&company).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Company deleted successfully"})
}
