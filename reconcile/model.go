// Package reconcile drives a picking session against the WMS API: it loads a
// picking order, offers stock locations per line, keeps every entered quantity
// inside what the order still needs and what the chosen location actually
// holds, and submits the whole set of picks as one atomic request.
package reconcile

import "wms-app/types"

// Detail is one line of a picking order as served by the API.
type Detail struct {
	ID                int
	ItemID            int
	ItemCode          string
	ItemName          string
	ItemUnit          string
	Status            types.DetailStatus
	QuantityRequired  int
	QuantityPicked    int
	RemainingQuantity int
	LocationID        int
}

// Order is a picking order header with its lines.
type Order struct {
	ID              int
	PickingNo       string
	SalesOrderNo    string
	CustomerName    string
	HoldingLocation string
	Status          types.PickingStatus
	Details         []Detail
}

// LocationOption is one candidate source location for an item.
type LocationOption struct {
	LocationID     int    `json:"locationId"`
	LocationCode   string `json:"locationCode"`
	LocationName   string `json:"locationName"`
	AvailableStock int    `json:"availableStock"`
}

// PickInput is one line of the process-picking request body.
type PickInput struct {
	PickingDetailID int `json:"pickingDetailId"`
	QuantityToPick  int `json:"quantityToPick"`
	LocationID      int `json:"locationId"`
}

// Backend is the slice of the WMS API a session needs. *Client implements it
// over HTTP; tests swap in a stub.
type Backend interface {
	GetOrder(id int) (*Order, error)
	GetLocationOptions(itemID, quantityRequired int) ([]LocationOption, error)
	ProcessPicks(orderID int, picks []PickInput) error
}
