package reconcile

import (
	"errors"
	"sync"
	"testing"

	"wms-app/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBackend struct {
	mu sync.Mutex

	order    *Order
	orderErr error

	options    map[int][]LocationOption
	optionsErr map[int]error

	processErr   error
	processCalls int
	lastOrderID  int
	lastPicks    []PickInput
}

func (b *stubBackend) GetOrder(id int) (*Order, error) {
	if b.orderErr != nil {
		return nil, b.orderErr
	}
	clone := *b.order
	clone.Details = append([]Detail(nil), b.order.Details...)
	return &clone, nil
}

func (b *stubBackend) GetLocationOptions(itemID, quantityRequired int) ([]LocationOption, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err, ok := b.optionsErr[itemID]; ok {
		return nil, err
	}
	return b.options[itemID], nil
}

func (b *stubBackend) ProcessPicks(orderID int, picks []PickInput) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.processCalls++
	b.lastOrderID = orderID
	b.lastPicks = append([]PickInput(nil), picks...)
	return b.processErr
}

func testBackend() *stubBackend {
	return &stubBackend{
		order: &Order{
			ID:           7,
			PickingNo:    "PK2608290001",
			SalesOrderNo: "SO-1001",
			CustomerName: "PT Maju Jaya",
			Status:       types.PickingPending,
			Details: []Detail{
				{ID: 71, ItemID: 501, ItemCode: "ITM-A", ItemUnit: "PCS", Status: types.DetailPending,
					QuantityRequired: 10, QuantityPicked: 0, RemainingQuantity: 10},
				{ID: 72, ItemID: 502, ItemCode: "ITM-B", ItemUnit: "BOX", Status: types.DetailPending,
					QuantityRequired: 5, QuantityPicked: 0, RemainingQuantity: 5},
			},
		},
		options: map[int][]LocationOption{
			501: {
				{LocationID: 1, LocationCode: "L1", AvailableStock: 4},
				{LocationID: 2, LocationCode: "L2", AvailableStock: 20},
			},
			502: {
				{LocationID: 3, LocationCode: "L3", AvailableStock: 5},
			},
		},
	}
}

func TestOpenFailsWhenOrderFetchFails(t *testing.T) {
	backend := testBackend()
	backend.orderErr = errors.New("connection refused")

	session := NewSession(backend)
	err := session.Open(7)
	require.Error(t, err)
	assert.Empty(t, session.Rows())
}

func TestOpenRejectsClosedOrders(t *testing.T) {
	backend := testBackend()
	backend.order.Status = types.PickingCompleted

	session := NewSession(backend)
	err := session.Open(7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Completed")
}

func TestOpenDefaultsQuantityToRemaining(t *testing.T) {
	backend := testBackend()
	backend.order.Details[0].QuantityPicked = 3
	backend.order.Details[0].RemainingQuantity = 7

	session := NewSession(backend)
	require.NoError(t, session.Open(7))

	row, err := session.RowByDetail(71)
	require.NoError(t, err)
	assert.Equal(t, 7, row.Quantity)
	assert.Equal(t, 7, row.MaxQuantity)
	assert.Len(t, row.Options, 2)
}

func TestOptionFetchFailureDegradesOneRow(t *testing.T) {
	backend := testBackend()
	backend.optionsErr = map[int]error{502: errors.New("timeout")}

	session := NewSession(backend)
	require.NoError(t, session.Open(7))

	broken, err := session.RowByDetail(72)
	require.NoError(t, err)
	assert.Error(t, broken.OptionsErr)
	assert.Empty(t, broken.Options)

	healthy, err := session.RowByDetail(71)
	require.NoError(t, err)
	assert.NoError(t, healthy.OptionsErr)
	assert.Len(t, healthy.Options, 2)
}

func TestSelectLocationCapsQuantityByStock(t *testing.T) {
	backend := testBackend()
	session := NewSession(backend)
	require.NoError(t, session.Open(7))

	// L1 holds 4 of the 10 required: quantity clamps down, warning set
	require.NoError(t, session.SelectLocation(71, 1))
	row, _ := session.RowByDetail(71)
	assert.Equal(t, 4, row.MaxQuantity)
	assert.Equal(t, 4, row.Quantity)
	assert.NotEmpty(t, row.Warning)

	// L2 holds 20: cap goes back up to remaining, warning clears
	require.NoError(t, session.SelectLocation(71, 2))
	row, _ = session.RowByDetail(71)
	assert.Equal(t, 10, row.MaxQuantity)
	assert.Equal(t, 4, row.Quantity)
	assert.Empty(t, row.Warning)
}

func TestSelectLocationRejectsUnknownLocation(t *testing.T) {
	backend := testBackend()
	session := NewSession(backend)
	require.NoError(t, session.Open(7))

	err := session.SelectLocation(71, 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not offered")
}

func TestSetQuantityClampsSilently(t *testing.T) {
	backend := testBackend()
	session := NewSession(backend)
	require.NoError(t, session.Open(7))
	require.NoError(t, session.SelectLocation(71, 1))

	cases := []struct {
		in   int
		want int
	}{
		{-5, 0},
		{0, 0},
		{1, 1},
		{4, 4},
		{5, 4},
		{1000, 4},
	}
	for _, tc := range cases {
		require.NoError(t, session.SetQuantity(71, tc.in))
		row, _ := session.RowByDetail(71)
		assert.Equal(t, tc.want, row.Quantity, "input %d", tc.in)
	}
}

func TestClampIsIdempotent(t *testing.T) {
	backend := testBackend()
	session := NewSession(backend)
	require.NoError(t, session.Open(7))
	require.NoError(t, session.SelectLocation(71, 1))

	require.NoError(t, session.SetQuantity(71, 50))
	first, _ := session.RowByDetail(71)

	require.NoError(t, session.SetQuantity(71, first.Quantity))
	second, _ := session.RowByDetail(71)
	assert.Equal(t, first.Quantity, second.Quantity)
}

func TestSubmitAllZeroRejectedWithoutNetworkCall(t *testing.T) {
	backend := testBackend()
	session := NewSession(backend)
	require.NoError(t, session.Open(7))

	require.NoError(t, session.SetQuantity(71, 0))
	require.NoError(t, session.SetQuantity(72, 0))

	err := session.Submit()
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, 0, backend.processCalls)
}

func TestSubmitCollectsAllMissingLocations(t *testing.T) {
	backend := testBackend()
	session := NewSession(backend)
	require.NoError(t, session.Open(7))

	// quantities set on both rows, neither has a location
	err := session.Submit()
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
	assert.Equal(t, 0, backend.processCalls)

	// state survives the failed validation
	row, _ := session.RowByDetail(71)
	assert.Equal(t, 10, row.Quantity)
}

func TestPayloadSkipsZeroRows(t *testing.T) {
	backend := testBackend()
	session := NewSession(backend)
	require.NoError(t, session.Open(7))

	require.NoError(t, session.SelectLocation(71, 2))
	require.NoError(t, session.SetQuantity(71, 6))
	require.NoError(t, session.SetQuantity(72, 0))

	picks := session.Payload()
	require.Len(t, picks, 1)
	assert.Equal(t, PickInput{PickingDetailID: 71, QuantityToPick: 6, LocationID: 2}, picks[0])
}

func TestSubmitSendsOneAtomicRequest(t *testing.T) {
	backend := testBackend()
	session := NewSession(backend)
	require.NoError(t, session.Open(7))

	require.NoError(t, session.SelectLocation(71, 2))
	require.NoError(t, session.SetQuantity(71, 10))
	require.NoError(t, session.SelectLocation(72, 3))
	require.NoError(t, session.SetQuantity(72, 5))

	require.NoError(t, session.Submit())

	assert.Equal(t, 1, backend.processCalls)
	assert.Equal(t, 7, backend.lastOrderID)
	assert.ElementsMatch(t, []PickInput{
		{PickingDetailID: 71, QuantityToPick: 10, LocationID: 2},
		{PickingDetailID: 72, QuantityToPick: 5, LocationID: 3},
	}, backend.lastPicks)

	// session closed after a successful submit
	assert.Empty(t, session.Rows())
}

func TestFailedSubmitPreservesState(t *testing.T) {
	backend := testBackend()
	backend.processErr = errors.New("insufficient stock at location 2")

	session := NewSession(backend)
	require.NoError(t, session.Open(7))

	require.NoError(t, session.SelectLocation(71, 2))
	require.NoError(t, session.SetQuantity(71, 8))
	require.NoError(t, session.SelectLocation(72, 3))
	require.NoError(t, session.SetQuantity(72, 5))

	err := session.Submit()
	require.Error(t, err)

	row, getErr := session.RowByDetail(71)
	require.NoError(t, getErr)
	assert.Equal(t, 8, row.Quantity)
	assert.Equal(t, 2, row.SelectedID)

	// operator fixes nothing, retry goes out again with the same payload
	backend.processErr = nil
	require.NoError(t, session.Submit())
	assert.Equal(t, 2, backend.processCalls)
}

func TestPriorLocationReselectedWhenStillOffered(t *testing.T) {
	backend := testBackend()
	backend.order.Details[0].LocationID = 1

	session := NewSession(backend)
	require.NoError(t, session.Open(7))

	row, _ := session.RowByDetail(71)
	assert.Equal(t, 1, row.SelectedID)
	assert.Equal(t, 4, row.MaxQuantity)
}

func TestStaleOptionFetchIsDiscarded(t *testing.T) {
	backend := testBackend()
	session := NewSession(backend)
	require.NoError(t, session.Open(7))

	staleGen := session.gen
	session.Close()
	require.NoError(t, session.Open(7))

	// a late result from the first generation must not land on the new rows
	session.applyOptions(staleGen, 71, []LocationOption{
		{LocationID: 99, LocationCode: "GHOST", AvailableStock: 1},
	}, nil)

	row, _ := session.RowByDetail(71)
	require.Len(t, row.Options, 2)
	assert.NotEqual(t, 99, row.Options[0].LocationID)
}

type recordingObserver struct {
	mu      sync.Mutex
	changed []int
}

func (o *recordingObserver) RowChanged(detailID int) {
	o.mu.Lock()
	o.changed = append(o.changed, detailID)
	o.mu.Unlock()
}

func TestObserverNotifiedOnRowChanges(t *testing.T) {
	backend := testBackend()
	session := NewSession(backend)
	observer := &recordingObserver{}
	session.SetObserver(observer)

	require.NoError(t, session.Open(7))
	require.NoError(t, session.SelectLocation(71, 1))
	require.NoError(t, session.SetQuantity(72, 2))

	observer.mu.Lock()
	defer observer.mu.Unlock()
	assert.Contains(t, observer.changed, 71)
	assert.Contains(t, observer.changed, 72)
}
