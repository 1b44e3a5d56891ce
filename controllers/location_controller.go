package controllers

import (
	"errors"
	"strconv"

	"wms-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(DB *gorm.DB) *LocationController {
	return &LocationController{DB: DB}
}

// CREATE
func (lc *LocationController) CreateLocation(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var location models.Location
	if err := ctx.BodyParser(&location); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if location.LocationCode == "" {
		location.LocationCode = location.Row + location.Bay + location.Level + location.Bin
	}

	bayInt, err := strconv.Atoi(location.Bay)
	if err != nil {
		location.Area = "Unknown"
	} else {
		if bayInt%2 != 0 {
			location.Area = "odd"
		} else {
			location.Area = "even"
		}
	}

	location.CreatedBy = userID
	location.UpdatedBy = userID

	if err := lc.DB.Create(&location).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Location created successfully",
		"data":    location,
	})
}

// READ ALL
func (lc *LocationController) GetAllLocations(ctx *fiber.Ctx) error {
	var locations []models.Location
	if err := lc.DB.Find(&locations).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    locations,
	})
}

// READ BY ID
func (lc *LocationController) GetLocationByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var location models.Location

	if err := lc.DB.First(&location, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"data":    location,
	})
}

// UPDATE
func (lc *LocationController) UpdateLocation(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var payload models.Location
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	payload.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := lc.DB.Model(&models.Location{}).Where("id = ?", id).Updates(payload).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Location updated successfully"})
}

// DELETE
func (lc *LocationController) DeleteLocation(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var location models.Location
	if err := lc.DB.First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Location not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// refuse to delete a location still holding stock
	var stock int64
	lc.DB.Model(&models.Inventory{}).
		Where("location_id = ? AND qty_onhand > 0", location.ID).
		Count(&stock)
	if stock > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Location still holds stock"})
	}

	location.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := lc.DB.Select("deleted_by").Where("id = ?", id).Updates(&location).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := lc.DB.Delete(&location).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "message": "Location deleted successfully"})
}
