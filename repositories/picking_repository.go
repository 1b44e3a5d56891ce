package repositories

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"wms-app/models"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type PickingRepository struct {
	db *gorm.DB
}

func NewPickingRepository(db *gorm.DB) *PickingRepository {
	return &PickingRepository{db: db}
}

// PickingListRow is one row of the picking list screen.
type PickingListRow struct {
	ID              int    `json:"id"`
	PickingNo       string `json:"pickingNo"`
	SalesOrderNo    string `json:"salesOrderNo"`
	CustomerName    string `json:"customerName"`
	HoldingLocation string `json:"holdingLocation"`
	Status          string `json:"status"`
	TotalRequired   int    `json:"totalRequired"`
	TotalPicked     int    `json:"totalPicked"`
	Progress        int    `json:"progress"`
}

// LocationOption is one candidate source location for an item. Field names
// follow the reconciliation API contract.
type LocationOption struct {
	LocationID     int    `json:"locationId"`
	LocationCode   string `json:"locationCode"`
	LocationName   string `json:"locationName"`
	AvailableStock int    `json:"availableStock"`
}

// GeneratePickingNumber builds PKyymmddnnnn, resetting the sequence per day.
func (r *PickingRepository) GeneratePickingNumber() (string, error) {
	var lastPicking models.PickingHeader

	if err := r.db.Unscoped().Last(&lastPicking).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	currentDate := time.Now().Format("060102")

	var pickingNo string
	if lastPicking.PickingNo != "" && len(lastPicking.PickingNo) >= 12 {
		lastDatePart := lastPicking.PickingNo[2:8]
		lastSequenceStr := lastPicking.PickingNo[len(lastPicking.PickingNo)-4:]

		if currentDate != lastDatePart {
			pickingNo = fmt.Sprintf("PK%s%04d", currentDate, 1)
		} else {
			lastSequenceInt, _ := strconv.Atoi(lastSequenceStr)
			pickingNo = fmt.Sprintf("PK%s%04d", currentDate, lastSequenceInt+1)
		}
	} else {
		pickingNo = fmt.Sprintf("PK%s%04d", currentDate, 1)
	}

	return pickingNo, nil
}

// GetPickingList returns one page of picking orders with per-order progress.
func (r *PickingRepository) GetPickingList(page, limit int, search, status string) ([]PickingListRow, int64, error) {
	var headers []models.PickingHeader
	var total int64

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := r.db.Model(&models.PickingHeader{})

	if search != "" {
		query = query.Where("picking_no LIKE ? OR sales_order_no LIKE ? OR customer_name LIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&headers).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]PickingListRow, 0, len(headers))
	for _, header := range headers {
		var sums struct {
			TotalRequired int
			TotalPicked   int
		}
		if err := r.db.Model(&models.PickingDetail{}).
			Select("COALESCE(SUM(qty_required),0) AS total_required, COALESCE(SUM(qty_picked),0) AS total_picked").
			Where("picking_id = ?", header.ID).
			Scan(&sums).Error; err != nil {
			return nil, 0, err
		}

		progress := 0
		if sums.TotalRequired > 0 {
			progress = sums.TotalPicked * 100 / sums.TotalRequired
		}

		rows = append(rows, PickingListRow{
			ID:              int(header.ID),
			PickingNo:       header.PickingNo,
			SalesOrderNo:    header.SalesOrderNo,
			CustomerName:    header.CustomerName,
			HoldingLocation: header.HoldingLocation,
			Status:          header.Status.String(),
			TotalRequired:   sums.TotalRequired,
			TotalPicked:     sums.TotalPicked,
			Progress:        progress,
		})
	}

	return rows, total, nil
}

// GetLocationOptions lists locations holding available stock of the item,
// ranked sufficiency-first: locations that can cover the requested quantity
// come before the rest, larger stock first within each group.
func (r *PickingRepository) GetLocationOptions(itemID, qtyRequired int) ([]LocationOption, error) {
	var options []LocationOption

	err := r.db.Model(&models.Inventory{}).
		Select("inventories.location_id AS location_id, locations.location_code AS location_code, locations.location_name AS location_name, SUM(inventories.qty_available) AS available_stock").
		Joins("JOIN locations ON locations.id = inventories.location_id").
		Where("inventories.item_id = ? AND inventories.qty_available > 0 AND locations.is_active = ?", itemID, true).
		Group("inventories.location_id, locations.location_code, locations.location_name").
		Scan(&options).Error
	if err != nil {
		return nil, err
	}

	rankLocationOptions(options, qtyRequired)

	return options, nil
}

func rankLocationOptions(options []LocationOption, qtyRequired int) {
	slices.SortFunc(options, func(a, b LocationOption) int {
		aCovers := a.AvailableStock >= qtyRequired
		bCovers := b.AvailableStock >= qtyRequired
		if aCovers != bCovers {
			if aCovers {
				return -1
			}
			return 1
		}
		if a.AvailableStock != b.AvailableStock {
			return b.AvailableStock - a.AvailableStock
		}
		return a.LocationID - b.LocationID
	})
}

// AvailableStockAt sums available stock of the item at one location.
func (r *PickingRepository) AvailableStockAt(itemID, locationID int) (int, error) {
	var available int
	err := r.db.Model(&models.Inventory{}).
		Select("COALESCE(SUM(qty_available),0)").
		Where("item_id = ? AND location_id = ?", itemID, locationID).
		Scan(&available).Error
	return available, err
}
