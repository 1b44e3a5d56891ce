package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePickingStatusVariants(t *testing.T) {
	cases := map[string]PickingStatus{
		"Pending":     PickingPending,
		"pending":     PickingPending,
		"  PENDING  ": PickingPending,
		"InProgress":  PickingInProgress,
		"in_progress": PickingInProgress,
		"In Progress": PickingInProgress,
		"in-progress": PickingInProgress,
		"Completed":   PickingCompleted,
		"cancelled":   PickingCancelled,
		"canceled":    PickingCancelled,
		"CANCELLED":   PickingCancelled,
	}
	for raw, want := range cases {
		got, err := ParsePickingStatus(raw)
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, want, got, "input %q", raw)
	}
}

func TestParsePickingStatusRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "archived", "done", "pending2"} {
		_, err := ParsePickingStatus(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestParseDetailStatus(t *testing.T) {
	got, err := ParseDetailStatus("picked")
	require.NoError(t, err)
	assert.Equal(t, DetailPicked, got)

	_, err = ParseDetailStatus("shipped")
	assert.Error(t, err)
}
