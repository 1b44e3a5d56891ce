package reconcile

import (
	"fmt"
	"strings"
	"sync"

	"wms-app/types"
)

// RowObserver is notified whenever a row's editable state changes. The zero
// observer is fine; a UI layer can hook redraws here.
type RowObserver interface {
	RowChanged(detailID int)
}

// Row is the editable state for one order line. Quantity 0 means "do not pick
// this line in this submission"; anything above 0 is clamped into
// [1, min(remaining, available stock at the chosen location)].
type Row struct {
	Detail      Detail
	Options     []LocationOption
	SelectedID  int
	Quantity    int
	MaxQuantity int
	Warning     string
	OptionsErr  error
}

func (r *Row) selected() *LocationOption {
	for i := range r.Options {
		if r.Options[i].LocationID == r.SelectedID {
			return &r.Options[i]
		}
	}
	return nil
}

// ValidationError is one problem found while checking a session before
// submission. DetailID 0 marks an order-level problem.
type ValidationError struct {
	DetailID int
	Message  string
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, "; ")
}

// Session holds one open picking order and its editable rows. All methods are
// safe for concurrent use. Open and Close bump an internal generation counter
// so location options arriving for an order that is no longer open are
// discarded instead of corrupting the current one.
type Session struct {
	backend  Backend
	observer RowObserver

	mu    sync.Mutex
	gen   uint64
	order *Order
	rows  []*Row
}

func NewSession(backend Backend) *Session {
	return &Session{backend: backend}
}

func (s *Session) SetObserver(o RowObserver) {
	s.mu.Lock()
	s.observer = o
	s.mu.Unlock()
}

func (s *Session) notify(detailID int) {
	if s.observer != nil {
		s.observer.RowChanged(detailID)
	}
}

// Open loads an order and its rows. A failed order fetch leaves the session
// closed. A failed option fetch only degrades that one row to an empty option
// list; the row records the error and stays editable once options arrive via
// a later Open.
func (s *Session) Open(orderID int) error {
	order, err := s.backend.GetOrder(orderID)
	if err != nil {
		return fmt.Errorf("load picking order %d: %w", orderID, err)
	}

	if order.Status == types.PickingCompleted || order.Status == types.PickingCancelled {
		return fmt.Errorf("picking order %s is %s and cannot be picked", order.PickingNo, order.Status)
	}

	rows := make([]*Row, 0, len(order.Details))
	for _, d := range order.Details {
		qty := d.RemainingQuantity
		if qty < 0 {
			qty = 0
		}
		rows = append(rows, &Row{
			Detail:      d,
			Quantity:    qty,
			MaxQuantity: qty,
		})
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.order = order
	s.rows = rows
	s.mu.Unlock()

	var wg sync.WaitGroup
	for _, row := range rows {
		if row.Detail.RemainingQuantity < 1 {
			continue
		}
		wg.Add(1)
		go func(row *Row) {
			defer wg.Done()
			options, err := s.backend.GetLocationOptions(row.Detail.ItemID, row.Detail.RemainingQuantity)
			s.applyOptions(gen, row.Detail.ID, options, err)
		}(row)
	}
	wg.Wait()

	return nil
}

// applyOptions installs a fetch result unless the session has moved on to a
// newer generation in the meantime.
func (s *Session) applyOptions(gen uint64, detailID int, options []LocationOption, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen {
		return
	}

	row := s.findRow(detailID)
	if row == nil {
		return
	}

	if err != nil {
		row.Options = nil
		row.OptionsErr = err
		s.notify(detailID)
		return
	}

	row.Options = options
	row.OptionsErr = nil

	// re-select the location the line was last picked from, when still offered
	if row.Detail.LocationID != 0 {
		for _, opt := range options {
			if opt.LocationID == row.Detail.LocationID {
				s.selectLocked(row, opt.LocationID)
				break
			}
		}
	}
	s.notify(detailID)
}

func (s *Session) findRow(detailID int) *Row {
	for _, row := range s.rows {
		if row.Detail.ID == detailID {
			return row
		}
	}
	return nil
}

// Rows returns a snapshot of the current rows.
func (s *Session) Rows() []Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Row, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, *row)
	}
	return out
}

// RowByDetail returns a snapshot of one row.
func (s *Session) RowByDetail(detailID int) (Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.findRow(detailID)
	if row == nil {
		return Row{}, fmt.Errorf("no row for picking detail %d", detailID)
	}
	return *row, nil
}

// SelectLocation picks the source location for one row. The row's quantity cap
// becomes min(remaining, stock at that location) and the current quantity is
// clamped down if the new cap is lower. A location that cannot cover the full
// remaining quantity is allowed but leaves a warning on the row.
func (s *Session) SelectLocation(detailID, locationID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.order == nil {
		return fmt.Errorf("no picking order is open")
	}

	row := s.findRow(detailID)
	if row == nil {
		return fmt.Errorf("no row for picking detail %d", detailID)
	}

	if err := s.selectLocked(row, locationID); err != nil {
		return err
	}
	s.notify(detailID)
	return nil
}

func (s *Session) selectLocked(row *Row, locationID int) error {
	var option *LocationOption
	for i := range row.Options {
		if row.Options[i].LocationID == locationID {
			option = &row.Options[i]
			break
		}
	}
	if option == nil {
		return fmt.Errorf("location %d is not offered for item %s", locationID, row.Detail.ItemCode)
	}

	row.SelectedID = option.LocationID
	row.MaxQuantity = minInt(row.Detail.RemainingQuantity, option.AvailableStock)
	row.Quantity = clampQuantity(row.Quantity, row.MaxQuantity)

	row.Warning = ""
	if option.AvailableStock < row.Detail.RemainingQuantity {
		row.Warning = fmt.Sprintf("location %s holds %d of the %d still required",
			option.LocationCode, option.AvailableStock, row.Detail.RemainingQuantity)
	}
	return nil
}

// SetQuantity sets the quantity to pick for one row. Values at or below zero
// become zero, meaning the row is skipped; positive values are clamped into
// [1, cap] without error so repeated edits cannot drift out of bounds.
func (s *Session) SetQuantity(detailID, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.order == nil {
		return fmt.Errorf("no picking order is open")
	}

	row := s.findRow(detailID)
	if row == nil {
		return fmt.Errorf("no row for picking detail %d", detailID)
	}

	row.Quantity = clampQuantity(quantity, row.MaxQuantity)
	s.notify(detailID)
	return nil
}

func clampQuantity(quantity, max int) int {
	if quantity <= 0 {
		return 0
	}
	if max < 1 {
		return 0
	}
	if quantity > max {
		return max
	}
	return quantity
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Validate checks every row and returns all problems at once. It never stops
// at the first bad row and it performs no network calls.
func (s *Session) Validate() ValidationErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateLocked()
}

func (s *Session) validateLocked() ValidationErrors {
	var errs ValidationErrors

	if s.order == nil {
		return ValidationErrors{{Message: "no picking order is open"}}
	}

	total := 0
	for _, row := range s.rows {
		if row.Quantity < 1 {
			continue
		}
		total += row.Quantity
		if row.selected() == nil {
			errs = append(errs, ValidationError{
				DetailID: row.Detail.ID,
				Message:  fmt.Sprintf("choose a location for item %s", row.Detail.ItemCode),
			})
		}
	}

	if total == 0 {
		errs = append(errs, ValidationError{Message: "nothing to pick: every quantity is zero"})
	}
	return errs
}

// Payload builds the submission body from the current rows. Rows with a zero
// quantity are left out entirely.
func (s *Session) Payload() []PickInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payloadLocked()
}

func (s *Session) payloadLocked() []PickInput {
	picks := make([]PickInput, 0, len(s.rows))
	for _, row := range s.rows {
		if row.Quantity < 1 {
			continue
		}
		picks = append(picks, PickInput{
			PickingDetailID: row.Detail.ID,
			QuantityToPick:  row.Quantity,
			LocationID:      row.SelectedID,
		})
	}
	return picks
}

// Submit validates the whole session and, only when every row passes, sends
// the picks as one request. Validation failures and backend failures both
// leave every row exactly as entered so the operator can correct and retry.
func (s *Session) Submit() error {
	s.mu.Lock()
	if errs := s.validateLocked(); len(errs) > 0 {
		s.mu.Unlock()
		return errs
	}
	orderID := s.order.ID
	picks := s.payloadLocked()
	s.mu.Unlock()

	if err := s.backend.ProcessPicks(orderID, picks); err != nil {
		return fmt.Errorf("process picking %d: %w", orderID, err)
	}

	s.Close()
	return nil
}

// Close drops the open order. Any option fetch still in flight for it will be
// discarded by the generation check.
func (s *Session) Close() {
	s.mu.Lock()
	s.gen++
	s.order = nil
	s.rows = nil
	s.mu.Unlock()
}
