package reconcile

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"wms-app/types"

	"github.com/gofiber/fiber/v2"
)

// Client talks to the picking endpoints and implements Backend.
type Client struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		Timeout: 15 * time.Second,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	agent := fiber.AcquireAgent()
	req := agent.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.BaseURL + path)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+c.Token)
	req.Header.SetContentType(fiber.MIMEApplicationJSON)

	if body != nil {
		agent.JSON(body)
	}
	if c.Timeout > 0 {
		agent.Timeout(c.Timeout)
	}

	if err := agent.Parse(); err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}

	code, respBody, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("request %s %s: %w", method, path, errs[0])
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("decode response of %s %s: %w", method, path, err)
	}

	if code < 200 || code >= 300 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("status %d", code)
		}
		return fmt.Errorf("%s %s failed: %s", method, path, msg)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data of %s %s: %w", method, path, err)
		}
	}
	return nil
}

// wireDetail and wireOrder carry statuses as raw strings so they can go
// through the strict parsers instead of straight into the enum types.
type wireDetail struct {
	ID                int    `json:"id"`
	ItemID            int    `json:"itemId"`
	ItemCode          string `json:"itemCode"`
	ItemName          string `json:"itemName"`
	ItemUnit          string `json:"itemUnit"`
	Status            string `json:"status"`
	QuantityRequired  int    `json:"quantityRequired"`
	QuantityPicked    int    `json:"quantityPicked"`
	RemainingQuantity int    `json:"remainingQuantity"`
	LocationID        int    `json:"locationId"`
}

type wireOrder struct {
	ID              int          `json:"id"`
	PickingNo       string       `json:"pickingNo"`
	SalesOrderNo    string       `json:"salesOrderNo"`
	CustomerName    string       `json:"customerName"`
	HoldingLocation string       `json:"holdingLocation"`
	Status          string       `json:"status"`
	Details         []wireDetail `json:"details"`
}

func (c *Client) GetOrder(id int) (*Order, error) {
	var raw wireOrder
	if err := c.do(fiber.MethodGet, "/picking/"+strconv.Itoa(id), nil, &raw); err != nil {
		return nil, err
	}

	status, err := types.ParsePickingStatus(raw.Status)
	if err != nil {
		return nil, fmt.Errorf("picking %d: %w", id, err)
	}

	order := &Order{
		ID:              raw.ID,
		PickingNo:       raw.PickingNo,
		SalesOrderNo:    raw.SalesOrderNo,
		CustomerName:    raw.CustomerName,
		HoldingLocation: raw.HoldingLocation,
		Status:          status,
		Details:         make([]Detail, 0, len(raw.Details)),
	}

	for _, d := range raw.Details {
		detailStatus, err := types.ParseDetailStatus(d.Status)
		if err != nil {
			return nil, fmt.Errorf("picking %d detail %d: %w", id, d.ID, err)
		}
		order.Details = append(order.Details, Detail{
			ID:                d.ID,
			ItemID:            d.ItemID,
			ItemCode:          d.ItemCode,
			ItemName:          d.ItemName,
			ItemUnit:          d.ItemUnit,
			Status:            detailStatus,
			QuantityRequired:  d.QuantityRequired,
			QuantityPicked:    d.QuantityPicked,
			RemainingQuantity: d.RemainingQuantity,
			LocationID:        d.LocationID,
		})
	}
	return order, nil
}

func (c *Client) GetLocationOptions(itemID, quantityRequired int) ([]LocationOption, error) {
	path := fmt.Sprintf("/picking/locations/%d?quantityRequired=%d", itemID, quantityRequired)
	var options []LocationOption
	if err := c.do(fiber.MethodGet, path, nil, &options); err != nil {
		return nil, err
	}
	return options, nil
}

func (c *Client) ProcessPicks(orderID int, picks []PickInput) error {
	body := map[string]interface{}{"details": picks}
	return c.do(fiber.MethodPost, "/picking/"+strconv.Itoa(orderID)+"/process", body, nil)
}
