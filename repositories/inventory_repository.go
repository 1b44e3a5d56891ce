package repositories

import (
	"fmt"
	"time"

	"wms-app/models"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// AllocateFromLocation moves qty from available to allocated across the item's
// inventory rows at one location, oldest received first. Fails without partial
// effect when the location cannot cover qty; run it inside a transaction.
func (r *InventoryRepository) AllocateFromLocation(itemID, locationID, qty, userID int) error {
	var inventories []models.Inventory

	if err := r.db.
		Where("item_id = ? AND location_id = ? AND qty_available > 0", itemID, locationID).
		Order("rec_date ASC, id ASC").
		Find(&inventories).Error; err != nil {
		return err
	}

	remaining := qty
	for _, inventory := range inventories {
		if remaining < 1 {
			break
		}

		take := inventory.QtyAvailable
		if take > remaining {
			take = remaining
		}

		if err := r.db.Model(&models.Inventory{}).
			Where("id = ?", inventory.ID).
			Updates(map[string]interface{}{
				"qty_available": gorm.Expr("qty_available - ?", take),
				"qty_allocated": gorm.Expr("qty_allocated + ?", take),
				"updated_by":    userID,
				"updated_at":    time.Now(),
			}).Error; err != nil {
			return err
		}

		remaining -= take
	}

	if remaining > 0 {
		return fmt.Errorf("insufficient stock at location %d for item %d: short by %d", locationID, itemID, remaining)
	}

	return nil
}

// ShipAllocated converts allocated stock into shipped stock after a pick is
// confirmed: on-hand and allocated go down, shipped goes up.
func (r *InventoryRepository) ShipAllocated(itemID, locationID, qty, userID int) error {
	var inventories []models.Inventory

	if err := r.db.
		Where("item_id = ? AND location_id = ? AND qty_allocated > 0", itemID, locationID).
		Order("rec_date ASC, id ASC").
		Find(&inventories).Error; err != nil {
		return err
	}

	remaining := qty
	for _, inventory := range inventories {
		if remaining < 1 {
			break
		}

		take := inventory.QtyAllocated
		if take > remaining {
			take = remaining
		}

		if err := r.db.Model(&models.Inventory{}).
			Where("id = ?", inventory.ID).
			Updates(map[string]interface{}{
				"qty_onhand":    gorm.Expr("qty_onhand - ?", take),
				"qty_allocated": gorm.Expr("qty_allocated - ?", take),
				"qty_shipped":   gorm.Expr("qty_shipped + ?", take),
				"updated_by":    userID,
			}).Error; err != nil {
			return err
		}

		remaining -= take
	}

	if remaining > 0 {
		return fmt.Errorf("allocated stock at location %d for item %d short by %d", locationID, itemID, remaining)
	}

	return nil
}
