package controllers

import (
	"errors"
	"strconv"

	"wms-app/idgen"
	"wms-app/models"
	"wms-app/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PutawayController struct {
	DB *gorm.DB
}

func NewPutawayController(DB *gorm.DB) *PutawayController {
	return &PutawayController{DB: DB}
}

// GetPendingPutaway lists inventory still sitting on the dock.
func (c *PutawayController) GetPendingPutaway(ctx *fiber.Ctx) error {
	var inventories []models.Inventory
	if err := c.DB.
		Where("is_putaway = ? AND qty_onhand > 0", false).
		Order("rec_date ASC, id ASC").
		Find(&inventories).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": inventories})
}

type putawayInput struct {
	InventoryID string `json:"inventory_id"`
	LocationID  int    `json:"location_id"`
	Quantity    int    `json:"quantity"`
}

// ProcessPutaway moves received stock from the dock into a storage location.
// A full-quantity putaway relocates the inventory row; a partial one splits it.
func (c *PutawayController) ProcessPutaway(ctx *fiber.Ctx) error {
	var input putawayInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	inventoryID, err := strconv.ParseInt(input.InventoryID, 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid inventory ID"})
	}

	userID := int(ctx.Locals("userID").(float64))

	tx := c.DB.Begin()
	if tx.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start transaction"})
	}

	var inventory models.Inventory
	if err := tx.First(&inventory, "id = ?", inventoryID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inventory not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if inventory.IsPutaway {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Inventory already put away"})
	}

	if input.Quantity < 1 || input.Quantity > inventory.QtyAvailable {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid putaway quantity"})
	}

	var location models.Location
	if err := tx.First(&location, "id = ? AND is_active = ?", input.LocationID, true).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Target location not found or inactive"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	fromLocation := inventory.LocationCode

	if input.Quantity == inventory.QtyOnhand {
		// full putaway, relocate the row
		if err := tx.Model(&models.Inventory{}).
			Where("id = ?", inventory.ID).
			Updates(map[string]interface{}{
				"location_id":   location.ID,
				"location_code": location.LocationCode,
				"is_putaway":    true,
				"updated_by":    userID,
			}).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update inventory"})
		}
	} else {
		// partial putaway, split off a new row at the target location
		if err := tx.Model(&models.Inventory{}).
			Where("id = ?", inventory.ID).
			Updates(map[string]interface{}{
				"qty_origin":    gorm.Expr("qty_origin - ?", input.Quantity),
				"qty_onhand":    gorm.Expr("qty_onhand - ?", input.Quantity),
				"qty_available": gorm.Expr("qty_available - ?", input.Quantity),
				"updated_by":    userID,
			}).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update inventory"})
		}

		split := models.Inventory{
			ID:           types.SnowflakeID(idgen.GenerateID()),
			AsnID:        inventory.AsnID,
			AsnDetailID:  inventory.AsnDetailID,
			RecDate:      inventory.RecDate,
			LocationID:   int(location.ID),
			LocationCode: location.LocationCode,
			ItemID:       inventory.ItemID,
			ItemCode:     inventory.ItemCode,
			Barcode:      inventory.Barcode,
			Uom:          inventory.Uom,
			QtyOrigin:    input.Quantity,
			QtyOnhand:    input.Quantity,
			QtyAvailable: input.Quantity,
			IsPutaway:    true,
			CreatedBy:    userID,
		}
		if err := tx.Create(&split).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create inventory split"})
		}
	}

	putawayLog := models.PutawayLog{
		InventoryID:  inventory.ID,
		ItemID:       inventory.ItemID,
		ItemCode:     inventory.ItemCode,
		FromLocation: fromLocation,
		ToLocation:   location.LocationCode,
		Quantity:     input.Quantity,
		CreatedBy:    userID,
	}
	if err := tx.Create(&putawayLog).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create putaway log"})
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Putaway processed successfully"})
}

// GetPutawayLogs lists putaway movements, newest first.
func (c *PutawayController) GetPutawayLogs(ctx *fiber.Ctx) error {
	var logs []models.PutawayLog
	if err := c.DB.Order("created_at DESC").Limit(200).Find(&logs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": logs})
}
