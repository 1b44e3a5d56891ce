package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankLocationOptionsSufficiencyFirst(t *testing.T) {
	options := []LocationOption{
		{LocationID: 1, LocationCode: "L1", AvailableStock: 4},
		{LocationID: 2, LocationCode: "L2", AvailableStock: 20},
		{LocationID: 3, LocationCode: "L3", AvailableStock: 5},
		{LocationID: 4, LocationCode: "L4", AvailableStock: 12},
	}

	rankLocationOptions(options, 10)

	got := make([]int, 0, len(options))
	for _, opt := range options {
		got = append(got, opt.LocationID)
	}
	// covering locations first by stock, then the short ones by stock
	assert.Equal(t, []int{2, 4, 3, 1}, got)
}

func TestRankLocationOptionsTiesByLocationID(t *testing.T) {
	options := []LocationOption{
		{LocationID: 9, AvailableStock: 7},
		{LocationID: 3, AvailableStock: 7},
	}

	rankLocationOptions(options, 5)

	assert.Equal(t, 3, options[0].LocationID)
	assert.Equal(t, 9, options[1].LocationID)
}

func TestRankLocationOptionsZeroRequired(t *testing.T) {
	options := []LocationOption{
		{LocationID: 1, AvailableStock: 2},
		{LocationID: 2, AvailableStock: 8},
	}

	rankLocationOptions(options, 0)

	// everything covers zero, so order is purely by stock
	assert.Equal(t, 2, options[0].LocationID)
}
