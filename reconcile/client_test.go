package reconcile

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wms-app/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPIStub(t *testing.T) (*httptest.Server, *http.ServeMux) {
	t.Helper()
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, mux
}

func writeEnvelope(w http.ResponseWriter, success bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": success,
		"message": message,
		"data":    data,
	})
}

func TestClientGetOrder(t *testing.T) {
	server, mux := newAPIStub(t)
	mux.HandleFunc("/picking/7", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		writeEnvelope(w, true, "", map[string]interface{}{
			"id":           7,
			"pickingNo":    "PK2608290001",
			"salesOrderNo": "SO-1001",
			"customerName": "PT Maju Jaya",
			"status":       "in_progress",
			"details": []map[string]interface{}{
				{
					"id": 71, "itemId": 501, "itemCode": "ITM-A", "itemUnit": "PCS",
					"status": "Pending", "quantityRequired": 10, "quantityPicked": 3,
					"remainingQuantity": 7, "locationId": 2,
				},
			},
		})
	})

	client := NewClient(server.URL, "token-abc")
	order, err := client.GetOrder(7)
	require.NoError(t, err)

	assert.Equal(t, "PK2608290001", order.PickingNo)
	assert.Equal(t, types.PickingInProgress, order.Status)
	require.Len(t, order.Details, 1)
	assert.Equal(t, types.DetailPending, order.Details[0].Status)
	assert.Equal(t, 7, order.Details[0].RemainingQuantity)
	assert.Equal(t, 2, order.Details[0].LocationID)
}

func TestClientGetOrderRejectsUnknownStatus(t *testing.T) {
	server, mux := newAPIStub(t)
	mux.HandleFunc("/picking/7", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, true, "", map[string]interface{}{
			"id": 7, "pickingNo": "PK2608290001", "status": "archived",
		})
	})

	client := NewClient(server.URL, "token-abc")
	_, err := client.GetOrder(7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown picking status")
}

func TestClientGetOrderSurfacesAPIFailure(t *testing.T) {
	server, mux := newAPIStub(t)
	mux.HandleFunc("/picking/7", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		writeEnvelope(w, false, "Picking not found", nil)
	})

	client := NewClient(server.URL, "token-abc")
	_, err := client.GetOrder(7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Picking not found")
}

func TestClientGetLocationOptions(t *testing.T) {
	server, mux := newAPIStub(t)
	mux.HandleFunc("/picking/locations/501", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("quantityRequired"))
		writeEnvelope(w, true, "", []map[string]interface{}{
			{"locationId": 2, "locationCode": "L2", "locationName": "Rack L2", "availableStock": 20},
			{"locationId": 1, "locationCode": "L1", "locationName": "Rack L1", "availableStock": 4},
		})
	})

	client := NewClient(server.URL, "token-abc")
	options, err := client.GetLocationOptions(501, 10)
	require.NoError(t, err)
	require.Len(t, options, 2)
	assert.Equal(t, 20, options[0].AvailableStock)
}

func TestClientProcessPicks(t *testing.T) {
	server, mux := newAPIStub(t)
	var received struct {
		Details []PickInput `json:"details"`
	}
	mux.HandleFunc("/picking/7/process", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		writeEnvelope(w, true, "Picking processed successfully", nil)
	})

	client := NewClient(server.URL, "token-abc")
	err := client.ProcessPicks(7, []PickInput{
		{PickingDetailID: 71, QuantityToPick: 6, LocationID: 2},
	})
	require.NoError(t, err)
	require.Len(t, received.Details, 1)
	assert.Equal(t, 71, received.Details[0].PickingDetailID)
	assert.Equal(t, 6, received.Details[0].QuantityToPick)
	assert.Equal(t, 2, received.Details[0].LocationID)
}
