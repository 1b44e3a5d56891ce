package controllers

import (
	"errors"
	"time"

	"wms-app/config"
	"wms-app/idgen"
	"wms-app/models"
	"wms-app/repositories"
	"wms-app/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AsnController struct {
	DB *gorm.DB
}

func NewAsnController(DB *gorm.DB) *AsnController {
	return &AsnController{DB: DB}
}

type Asn struct {
	ID       int       `json:"ID"`
	AsnNo    string    `json:"asn_no"`
	AsnDate  string    `json:"asn_date"`
	PoNumber string    `json:"po_number"`
	Supplier string    `json:"supplier"`
	Status   string    `json:"status"`
	Remarks  string    `json:"remarks"`
	Items    []AsnItem `json:"items"`
}

type AsnItem struct {
	ID       int    `json:"ID"`
	AsnID    int    `json:"asn_id"`
	ItemCode string `json:"item_code"`
	Quantity int    `json:"quantity"`
	UOM      string `json:"uom"`
	Remarks  string `json:"remarks"`
}

func (c *AsnController) CreateAsn(ctx *fiber.Ctx) error {
	var payload Asn

	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payload",
			"error":   err.Error(),
		})
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	asnRepo := repositories.NewAsnRepository(tx)

	asnNo, err := asnRepo.GenerateAsnNumber()
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate ASN no",
			"error":   err.Error(),
		})
	}

	userID := int(ctx.Locals("userID").(float64))

	var supplier models.Supplier
	if err := tx.First(&supplier, "supplier_code = ?", payload.Supplier).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Supplier not found",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get supplier",
			"error":   err.Error(),
		})
	}

	asnHeader := models.AsnHeader{
		AsnNo:        asnNo,
		AsnDate:      payload.AsnDate,
		PoNumber:     payload.PoNumber,
		SupplierID:   int(supplier.ID),
		SupplierCode: supplier.SupplierCode,
		SupplierName: supplier.SupplierName,
		CompanyCode:  supplier.CompanyCode,
		Status:       "open",
		Remarks:      payload.Remarks,
		CreatedBy:    userID,
		UpdatedBy:    userID,
	}

	if err := tx.Create(&asnHeader).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to insert ASN header",
			"error":   err.Error(),
		})
	}

	for _, item := range payload.Items {
		var product models.Item
		if err := tx.First(&product, "item_code = ?", item.ItemCode).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found: " + item.ItemCode})
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		asnDetail := models.AsnDetail{
			AsnID:     int(asnHeader.ID),
			AsnNo:     asnNo,
			ItemID:    int(product.ID),
			ItemCode:  product.ItemCode,
			Barcode:   product.Barcode,
			Quantity:  item.Quantity,
			Uom:       product.Uom,
			Remarks:   item.Remarks,
			CreatedBy: userID,
			UpdatedBy: userID,
		}

		validate := validator.New()
		if err := validate.Struct(asnDetail); err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		if err := tx.Create(&asnDetail).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to insert ASN detail",
				"error":   err.Error(),
			})
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to commit transaction",
			"error":   err.Error(),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "ASN created successfully",
		"data": fiber.Map{
			"asn_id": asnHeader.ID,
			"asn_no": asnNo,
		},
	})
}

func (c *AsnController) GetAsnList(ctx *fiber.Ctx) error {
	var asns []models.AsnHeader
	if err := c.DB.Order("created_at DESC").Find(&asns).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "ASN found", "data": asns})
}

func (c *AsnController) GetAsnByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var asnHeader models.AsnHeader
	if err := c.DB.Preload("AsnDetails").First(&asnHeader, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "ASN not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": asnHeader})
}

// ReceiveAsn books all outstanding ASN quantities into inventory at the
// receiving dock. Putaway moves the stock to storage afterwards.
func (c *AsnController) ReceiveAsn(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	userID := int(ctx.Locals("userID").(float64))

	tx := c.DB.Begin()
	if tx.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start transaction"})
	}

	var asnHeader models.AsnHeader
	if err := tx.First(&asnHeader, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "ASN not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if asnHeader.Status != "open" {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ASN is not open"})
	}

	var dock models.Location
	if err := tx.First(&dock, "location_code = ?", config.ReceivingDock).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Receiving dock location not found"})
	}

	var asnDetails []models.AsnDetail
	if err := tx.Where("asn_id = ?", id).Find(&asnDetails).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	recDate := time.Now().Format("2006-01-02")

	for _, asnDetail := range asnDetails {
		qtyOutstanding := asnDetail.Quantity - asnDetail.QtyReceived
		if qtyOutstanding < 1 {
			continue
		}

		inventory := models.Inventory{
			ID:           types.SnowflakeID(idgen.GenerateID()),
			AsnID:        asnDetail.AsnID,
			AsnDetailID:  int(asnDetail.ID),
			RecDate:      recDate,
			LocationID:   int(dock.ID),
			LocationCode: dock.LocationCode,
			ItemID:       asnDetail.ItemID,
			ItemCode:     asnDetail.ItemCode,
			Barcode:      asnDetail.Barcode,
			Uom:          asnDetail.Uom,
			QtyOrigin:    qtyOutstanding,
			QtyOnhand:    qtyOutstanding,
			QtyAvailable: qtyOutstanding,
			CreatedBy:    userID,
		}

		if err := tx.Create(&inventory).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create inventory"})
		}

		if err := tx.Model(&models.AsnDetail{}).
			Where("id = ?", asnDetail.ID).
			Updates(map[string]interface{}{
				"qty_received": gorm.Expr("qty_received + ?", qtyOutstanding),
				"status":       "received",
				"updated_by":   userID,
			}).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update ASN detail"})
		}
	}

	if err := tx.Model(&models.AsnHeader{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     "received",
			"updated_by": userID,
		}).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update ASN header"})
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "ASN received successfully"})
}

func (c *AsnController) DeleteAsn(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var asnHeader models.AsnHeader
	if err := c.DB.First(&asnHeader, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "ASN not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if asnHeader.Status != "open" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only open ASN can be deleted"})
	}

	asnHeader.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&asnHeader).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&asnHeader).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "ASN deleted successfully"})
}
