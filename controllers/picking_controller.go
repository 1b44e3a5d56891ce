package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"wms-app/mailer"
	"wms-app/models"
	"wms-app/repositories"
	"wms-app/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type PickingController struct {
	DB *gorm.DB
}

func NewPickingController(DB *gorm.DB) *PickingController {
	return &PickingController{DB: DB}
}

// Response shapes follow the reconciliation API contract, so field names here
// are camelCase unlike the rest of the admin endpoints.

type PickingDetailResponse struct {
	ID                int    `json:"id"`
	ItemID            int    `json:"itemId"`
	ItemCode          string `json:"itemCode"`
	ItemName          string `json:"itemName"`
	ItemUnit          string `json:"itemUnit"`
	Status            string `json:"status"`
	QuantityRequired  int    `json:"quantityRequired"`
	QuantityPicked    int    `json:"quantityPicked"`
	RemainingQuantity int    `json:"remainingQuantity"`
	LocationID        int    `json:"locationId,omitempty"`
}

type PickingResponse struct {
	ID              int                     `json:"id"`
	PickingNo       string                  `json:"pickingNo"`
	SalesOrderNo    string                  `json:"salesOrderNo"`
	CustomerName    string                  `json:"customerName"`
	HoldingLocation string                  `json:"holdingLocation"`
	Status          string                  `json:"status"`
	Details         []PickingDetailResponse `json:"details"`
}

type CreatePickingItem struct {
	ItemCode string `json:"item_code" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type CreatePickingInput struct {
	SalesOrderNo    string              `json:"sales_order_no" validate:"required"`
	Customer        string              `json:"customer" validate:"required"`
	HoldingLocation string              `json:"holding_location"`
	Remarks         string              `json:"remarks"`
	Items           []CreatePickingItem `json:"items" validate:"required,min=1,dive"`
}

func (c *PickingController) CreatePicking(ctx *fiber.Ctx) error {
	var payload CreatePickingInput

	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payload",
			"error":   err.Error(),
		})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	userID := int(ctx.Locals("userID").(float64))

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	pickingRepo := repositories.NewPickingRepository(tx)

	pickingNo, err := pickingRepo.GeneratePickingNumber()
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to generate picking no",
			"error":   err.Error(),
		})
	}

	var customer models.Customer
	if err := tx.First(&customer, "customer_code = ?", payload.Customer).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Customer not found",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to get customer",
			"error":   err.Error(),
		})
	}

	pickingHeader := models.PickingHeader{
		PickingNo:       pickingNo,
		SalesOrderNo:    payload.SalesOrderNo,
		CustomerID:      int(customer.ID),
		CustomerCode:    customer.CustomerCode,
		CustomerName:    customer.CustomerName,
		HoldingLocation: payload.HoldingLocation,
		Status:          types.PickingPending,
		Remarks:         payload.Remarks,
		CreatedBy:       userID,
		UpdatedBy:       userID,
	}

	if err := tx.Create(&pickingHeader).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to insert picking header",
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

		pickingDetail := models.PickingDetail{
			PickingID:   int(pickingHeader.ID),
			PickingNo:   pickingNo,
			ItemID:      int(product.ID),
			ItemCode:    product.ItemCode,
			ItemName:    product.ItemName,
			Uom:         product.Uom,
			QtyRequired: item.Quantity,
			Status:      types.DetailPending,
			CreatedBy:   userID,
			UpdatedBy:   userID,
		}

		if err := tx.Create(&pickingDetail).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Failed to insert picking detail",
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
		"message": "Picking created successfully",
		"data": fiber.Map{
			"picking_id": pickingHeader.ID,
			"picking_no": pickingNo,
		},
	})
}

func (c *PickingController) GetPickingList(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "10"))
	search := ctx.Query("search", "")
	statusFilter := ctx.Query("status", "")

	if statusFilter != "" {
		parsed, err := types.ParsePickingStatus(statusFilter)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid status filter",
			})
		}
		statusFilter = parsed.String()
	}

	pickingRepo := repositories.NewPickingRepository(c.DB)
	rows, total, err := pickingRepo.GetPickingList(page, limit, search, statusFilter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Picking found",
		"data":    rows,
		"meta": fiber.Map{
			"total":       total,
			"page":        page,
			"limit":       limit,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

func (c *PickingController) GetPickingByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var pickingHeader models.PickingHeader
	if err := c.DB.First(&pickingHeader, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Picking not found",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var pickingDetails []models.PickingDetail
	if err := c.DB.Where("picking_id = ?", pickingHeader.ID).Order("id ASC").Find(&pickingDetails).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	result := PickingResponse{
		ID:              int(pickingHeader.ID),
		PickingNo:       pickingHeader.PickingNo,
		SalesOrderNo:    pickingHeader.SalesOrderNo,
		CustomerName:    pickingHeader.CustomerName,
		HoldingLocation: pickingHeader.HoldingLocation,
		Status:          pickingHeader.Status.String(),
		Details:         []PickingDetailResponse{},
	}

	for _, detail := range pickingDetails {
		result.Details = append(result.Details, PickingDetailResponse{
			ID:                int(detail.ID),
			ItemID:            detail.ItemID,
			ItemCode:          detail.ItemCode,
			ItemName:          detail.ItemName,
			ItemUnit:          detail.Uom,
			Status:            detail.Status.String(),
			QuantityRequired:  detail.QtyRequired,
			QuantityPicked:    detail.QtyPicked,
			RemainingQuantity: detail.RemainingQuantity(),
			LocationID:        detail.LocationID,
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": result})
}

// GetPickingLocations lists candidate source locations for one item, ranked so
// locations that can cover the requested quantity come first.
func (c *PickingController) GetPickingLocations(ctx *fiber.Ctx) error {
	itemID, err := ctx.ParamsInt("itemId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	qtyRequired, _ := strconv.Atoi(ctx.Query("quantityRequired", "0"))

	pickingRepo := repositories.NewPickingRepository(c.DB)
	options, err := pickingRepo.GetLocationOptions(itemID, qtyRequired)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": options})
}

type ProcessPickingDetail struct {
	PickingDetailID int `json:"pickingDetailId" validate:"required"`
	QuantityToPick  int `json:"quantityToPick" validate:"required,min=1"`
	LocationID      int `json:"locationId" validate:"required"`
}

type ProcessPickingInput struct {
	Details []ProcessPickingDetail `json:"details" validate:"required,min=1,dive"`
}

// ProcessPicking applies one operator session's set of picks atomically.
// Every line is re-validated against remaining quantity and location stock
// before any inventory moves; one bad line rolls back the whole request.
func (c *PickingController) ProcessPicking(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var payload ProcessPickingInput
	if err := ctx.BodyParser(&payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid payload",
			"error":   err.Error(),
		})
	}

	validate := validator.New()
	if err := validate.Struct(payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	userID := int(ctx.Locals("userID").(float64))

	tx := c.DB.Begin()
	if tx.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to start transaction",
		})
	}

	var pickingHeader models.PickingHeader
	if err := tx.First(&pickingHeader, "id = ?", id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Picking not found",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if pickingHeader.Status == types.PickingCompleted || pickingHeader.Status == types.PickingCancelled {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Picking is already " + pickingHeader.Status.String(),
		})
	}

	pickingRepo := repositories.NewPickingRepository(tx)
	inventoryRepo := repositories.NewInventoryRepository(tx)

	for _, line := range payload.Details {
		var detail models.PickingDetail
		if err := tx.First(&detail, "id = ? AND picking_id = ?", line.PickingDetailID, pickingHeader.ID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"success": false,
					"message": fmt.Sprintf("Picking detail %d not found on this order", line.PickingDetailID),
				})
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		remaining := detail.RemainingQuantity()
		if remaining < 1 {
			tx.Rollback()
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": fmt.Sprintf("Item %s is already fully picked", detail.ItemCode),
			})
		}

		if line.QuantityToPick > remaining {
			tx.Rollback()
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": fmt.Sprintf("Quantity %d exceeds remaining %d for item %s", line.QuantityToPick, remaining, detail.ItemCode),
			})
		}

		available, err := pickingRepo.AvailableStockAt(detail.ItemID, line.LocationID)
		if err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		if line.QuantityToPick > available {
			tx.Rollback()
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": fmt.Sprintf("Quantity %d exceeds available stock %d at location %d for item %s",
					line.QuantityToPick, available, line.LocationID, detail.ItemCode),
			})
		}

		if err := inventoryRepo.AllocateFromLocation(detail.ItemID, line.LocationID, line.QuantityToPick, userID); err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		if err := inventoryRepo.ShipAllocated(detail.ItemID, line.LocationID, line.QuantityToPick, userID); err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		newPicked := detail.QtyPicked + line.QuantityToPick
		newStatus := types.DetailPending
		if newPicked >= detail.QtyRequired {
			newStatus = types.DetailPicked
		}

		if err := tx.Model(&models.PickingDetail{}).
			Where("id = ?", detail.ID).
			Updates(map[string]interface{}{
				"qty_picked":  newPicked,
				"location_id": line.LocationID,
				"status":      newStatus,
				"updated_by":  userID,
				"updated_at":  time.Now(),
			}).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update picking detail"})
		}
	}

	// header goes Completed only when every line is fully picked
	var unpicked int64
	if err := tx.Model(&models.PickingDetail{}).
		Where("picking_id = ? AND status <> ?", pickingHeader.ID, types.DetailPicked).
		Count(&unpicked).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	newHeaderStatus := types.PickingInProgress
	if unpicked == 0 {
		newHeaderStatus = types.PickingCompleted
	}

	if err := tx.Model(&models.PickingHeader{}).
		Where("id = ?", pickingHeader.ID).
		Updates(map[string]interface{}{
			"status":     newHeaderStatus,
			"updated_by": userID,
		}).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update picking header"})
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if newHeaderStatus == types.PickingCompleted {
		var totalPicked int
		c.DB.Model(&models.PickingDetail{}).
			Select("COALESCE(SUM(qty_picked),0)").
			Where("picking_id = ?", pickingHeader.ID).
			Scan(&totalPicked)
		go mailer.SendPickingCompleted(pickingHeader.PickingNo, pickingHeader.CustomerName, totalPicked)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Picking processed successfully",
	})
}

// CancelPicking cancels an order that has not started picking yet.
func (c *PickingController) CancelPicking(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var pickingHeader models.PickingHeader
	if err := c.DB.First(&pickingHeader, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Picking not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if pickingHeader.Status != types.PickingPending {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Only pending picking can be cancelled",
		})
	}

	if err := c.DB.Model(&models.PickingHeader{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     types.PickingCancelled,
			"updated_by": int(ctx.Locals("userID").(float64)),
		}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Picking cancelled successfully"})
}

// ExportPickingList streams the current picking list as an Excel workbook.
func (c *PickingController) ExportPickingList(ctx *fiber.Ctx) error {
	pickingRepo := repositories.NewPickingRepository(c.DB)
	rows, _, err := pickingRepo.GetPickingList(1, 10000, ctx.Query("search", ""), ctx.Query("status", ""))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Picking"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"PICKING_NO", "SALES_ORDER_NO", "CUSTOMER", "HOLDING_LOCATION", "STATUS", "TOTAL_REQUIRED", "TOTAL_PICKED", "PROGRESS"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		values := []interface{}{
			row.PickingNo, row.SalesOrderNo, row.CustomerName, row.HoldingLocation,
			row.Status, row.TotalRequired, row.TotalPicked, fmt.Sprintf("%d%%", row.Progress),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate file"})
	}

	filename := "picking_list_" + time.Now().Format("20060102_150405") + ".xlsx"
	ctx.Set("Content-Disposition", "attachment; filename="+filename)
	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	return ctx.Send(buf.Bytes())
}
