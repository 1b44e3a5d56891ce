package types

import (
	"fmt"
	"strings"
)

// PickingStatus is the closed set of picking order statuses. Everything that
// crosses the API boundary goes through ParsePickingStatus so variants like
// "In Progress" and "in_progress" collapse into one canonical value instead of
// drifting through the codebase as ad-hoc strings.
type PickingStatus string

const (
	PickingPending    PickingStatus = "Pending"
	PickingInProgress PickingStatus = "InProgress"
	PickingCompleted  PickingStatus = "Completed"
	PickingCancelled  PickingStatus = "Cancelled"
)

// DetailStatus is the per-line status of a picking detail.
type DetailStatus string

const (
	DetailPending DetailStatus = "Pending"
	DetailPicked  DetailStatus = "Picked"
)

func normalizeStatus(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}

// ParsePickingStatus maps a raw status string onto the canonical enumeration.
// Unknown values are an error, not a silent passthrough.
func ParsePickingStatus(raw string) (PickingStatus, error) {
	switch normalizeStatus(raw) {
	case "pending":
		return PickingPending, nil
	case "inprogress":
		return PickingInProgress, nil
	case "completed":
		return PickingCompleted, nil
	case "cancelled", "canceled":
		return PickingCancelled, nil
	default:
		return "", fmt.Errorf("unknown picking status %q", raw)
	}
}

// ParseDetailStatus maps a raw detail status string onto the canonical value.
func ParseDetailStatus(raw string) (DetailStatus, error) {
	switch normalizeStatus(raw) {
	case "pending":
		return DetailPending, nil
	case "picked":
		return DetailPicked, nil
	default:
		return "", fmt.Errorf("unknown picking detail status %q", raw)
	}
}

func (s PickingStatus) String() string { return string(s) }

func (s DetailStatus) String() string { return string(s) }
