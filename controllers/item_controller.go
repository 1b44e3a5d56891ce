package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wms-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ItemController struct {
	DB *gorm.DB
}

func NewItemController(DB *gorm.DB) *ItemController {
	return &ItemController{DB: DB}
}

var itemInput struct {
	ItemCode    string `json:"item_code" validate:"required"`
	ItemName    string `json:"item_name" validate:"required"`
	Barcode     string `json:"barcode"`
	Uom         string `json:"uom"`
	CompanyCode string `json:"company_code" validate:"required"`
	Remarks     string `json:"remarks"`
}

func (c *ItemController) CreateItem(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&itemInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(itemInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var company models.Company
	if err := c.DB.First(&company, "company_code = ?", itemInput.CompanyCode).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}

	uom := itemInput.Uom
	if uom == "" {
		uom = "PCS"
	}

	item := models.Item{
		ItemCode:    strings.ToUpper(strings.TrimSpace(itemInput.ItemCode)),
		ItemName:    itemInput.ItemName,
		Barcode:     itemInput.Barcode,
		Uom:         uom,
		CompanyCode: company.CompanyCode,
		Remarks:     itemInput.Remarks,
		IsActive:    true,
		CreatedBy:   int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item created successfully", "data": item})
}

// GetAllItems supports pagination and search on the item list screen.
func (c *ItemController) GetAllItems(ctx *fiber.Ctx) error {
	var items []models.Item
	var total int64

	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))
	search := ctx.Query("search", "")

	offset := (page - 1) * limit

	query := c.DB.Model(&models.Item{})

	if search != "" {
		query = query.Where("item_code LIKE ? OR item_name LIKE ? OR barcode LIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	query.Count(&total)

	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&items).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    items,
		"meta": fiber.Map{
			"total":       total,
			"page":        page,
			"limit":       limit,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

func (c *ItemController) GetItemByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.Item
	if err := c.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item found", "data": item})
}

func (c *ItemController) UpdateItem(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := ctx.BodyParser(&itemInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var company models.Company
	if err := c.DB.First(&company, "company_code = ?", itemInput.CompanyCode).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}

	item := models.Item{
		ItemCode:    strings.ToUpper(strings.TrimSpace(itemInput.ItemCode)),
		ItemName:    itemInput.ItemName,
		Barcode:     itemInput.Barcode,
		Uom:         itemInput.Uom,
		CompanyCode: itemInput.CompanyCode,
		Remarks:     itemInput.Remarks,
		UpdatedBy:   int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Model(&item).Where("id = ?", id).Updates(item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item updated successfully", "data": item})
}

func (c *ItemController) DeleteItem(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var item models.Item
	if err := c.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	item.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&item).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item deleted successfully", "data": item})
}

type ItemUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	SkippedCount  int      `json:"skipped_count"`
	ErrorCount    int      `json:"error_count"`
	SkippedItems  []string `json:"skipped_items"`
	ErrorMessages []string `json:"error_messages"`
}

// CreateItemFromExcel imports master items from an uploaded workbook.
// Columns: ITEM_CODE, ITEM_NAME, BARCODE, UOM, COMPANY_CODE.
func (c *ItemController) CreateItemFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "File is required",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Only Excel files (.xlsx, .xls) are allowed",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open file",
		})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read Excel file",
		})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No sheets found in Excel file",
		})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read rows",
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Excel file must contain header and at least one data row",
		})
	}

	result := ItemUploadResult{
		TotalRows:     len(rows) - 1,
		SkippedItems:  []string{},
		ErrorMessages: []string{},
	}

	userID := int(ctx.Locals("userID").(float64))
	companyCache := make(map[string]bool)

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for i, row := range rows[1:] {
		rowNum := i + 2 // Excel row number, header is row 1

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		if len(row) < 5 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Insufficient columns (expected 5)", rowNum))
			continue
		}

		itemCode := strings.ToUpper(strings.TrimSpace(row[0]))
		itemName := strings.TrimSpace(row[1])
		barcode := strings.TrimSpace(row[2])
		uom := strings.ToUpper(strings.TrimSpace(row[3]))
		companyCode := strings.ToUpper(strings.TrimSpace(row[4]))

		if itemCode == "" || itemName == "" || companyCode == "" {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: ITEM_CODE, ITEM_NAME, and COMPANY_CODE are required", rowNum))
			continue
		}

		if _, exists := companyCache[companyCode]; !exists {
			var company models.Company
			if err := tx.Where("company_code = ?", companyCode).First(&company).Error; err != nil {
				result.ErrorCount++
				result.ErrorMessages = append(result.ErrorMessages,
					fmt.Sprintf("Row %d: Company '%s' not found", rowNum, companyCode))
				continue
			}
			companyCache[companyCode] = true
		}

		var existingItem models.Item
		if err := tx.Where("item_code = ?", itemCode).First(&existingItem).Error; err == nil {
			result.SkippedCount++
			result.SkippedItems = append(result.SkippedItems, itemCode)
			continue
		}

		if uom == "" {
			uom = "PCS"
		}

		item := models.Item{
			ItemCode:    itemCode,
			ItemName:    itemName,
			Barcode:     barcode,
			Uom:         uom,
			CompanyCode: companyCode,
			IsActive:    true,
			CreatedBy:   userID,
		}

		if err := tx.Create(&item).Error; err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Failed to create item - %s", rowNum, err.Error()))
			continue
		}

		result.SuccessCount++
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to commit transaction",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Upload completed: %d success, %d skipped, %d errors",
			result.SuccessCount, result.SkippedCount, result.ErrorCount),
		"data": result,
	})
}
