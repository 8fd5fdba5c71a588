package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/models"
)

// Sheet tab names as the remote endpoint knows them.
const (
	SheetUsers     = "Users"
	SheetCustomers = "Customers"
	SheetInventory = "Inventory"
	SheetRepairs   = "Repairs"
	SheetSales     = "Sales"
	SheetPurchases = "Purchases"
	SheetExpenses  = "Expenses"
	SheetEmployees = "Employees"
	SheetPayroll   = "Payroll"
	SheetSettings  = "Settings"
)

// Mutation actions the endpoint accepts.
const (
	ActionAdd    = "add"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// mutation is the POST body the sheet endpoint expects.
type mutation struct {
	Sheet  string      `json:"sheet"`
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

// Client talks to the spreadsheet-backed endpoint. Reads pull the
// whole store at once; writes are single-row, fire-and-forget, and
// never retried. Local state stays authoritative either way.
type Client struct {
	mu       sync.RWMutex
	endpoint string
	http     *http.Client
}

// New builds a Client for the given endpoint URL. An empty endpoint
// is valid: the app runs unconfigured and every call becomes a no-op.
func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// SetEndpoint swaps the endpoint at runtime (settings screen).
func (c *Client) SetEndpoint(url string) {
	c.mu.Lock()
	c.endpoint = url
	c.mu.Unlock()
}

// Endpoint returns the currently configured URL, "" if none.
func (c *Client) Endpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.endpoint
}

// Configured reports whether a remote endpoint is set.
func (c *Client) Configured() bool {
	return c.Endpoint() != ""
}

// FetchSnapshot reads the entire backing store. Every collection key
// is optional and decoded independently: a missing or malformed key
// is skipped (its slice stays nil), never an error for the caller.
func (c *Client) FetchSnapshot(ctx context.Context) (*models.Snapshot, error) {
	endpoint := c.Endpoint()
	if endpoint == "" {
		return nil, fmt.Errorf("no sheet endpoint configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet endpoint answered %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("sheet payload is not a JSON object: %w", err)
	}

	snap := &models.Snapshot{
		Users:     decodeRows[models.User](raw, SheetUsers),
		Customers: decodeRows[models.Customer](raw, SheetCustomers),
		Inventory: decodeRows[models.Product](raw, SheetInventory),
		Repairs:   decodeRows[models.VehicleRepair](raw, SheetRepairs),
		Sales:     decodeRows[models.Sale](raw, SheetSales),
		Purchases: decodeRows[models.Purchase](raw, SheetPurchases),
		Expenses:  decodeRows[models.Expense](raw, SheetExpenses),
		Employees: decodeRows[models.Employee](raw, SheetEmployees),
		Payroll:   decodeRows[models.PayrollRecord](raw, SheetPayroll),
	}

	// The Settings tab is key/value rows; only exchangeRate matters.
	for _, row := range decodeRows[models.SettingRow](raw, SheetSettings) {
		if row.Key == "exchangeRate" {
			if rate, err := strconv.ParseFloat(row.Value, 64); err == nil {
				snap.ExchangeRate = rate
				snap.HasRate = true
			}
		}
	}

	return snap, nil
}

// decodeRows pulls one collection out of the raw payload. Absent or
// non-array values simply yield nil.
func decodeRows[T any](raw map[string]json.RawMessage, key string) []T {
	data, ok := raw[key]
	if !ok {
		return nil
	}
	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		log.Printf("sheet: skipping malformed %s tab: %v", key, err)
		return nil
	}
	return rows
}

// Replicate mirrors one local mutation to the remote sheet. It fires
// on its own goroutine and nobody waits for it: failures are logged
// and dropped, the local collection already holds the truth for this
// session. With no endpoint configured it is a silent no-op.
func (c *Client) Replicate(sheet, action string, row interface{}) {
	if !c.Configured() {
		return
	}
	go func() {
		if err := c.send(sheet, action, row); err != nil {
			log.Printf("sheet: %s %s failed (dropped): %v", action, sheet, err)
		}
	}()
}

func (c *Client) send(sheet, action string, row interface{}) error {
	body, err := json.Marshal(mutation{Sheet: sheet, Action: action, Data: row})
	if err != nil {
		return err
	}

	resp, err := c.http.Post(c.Endpoint(), "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	// Response content is irrelevant by contract; drain and close so
	// the connection can be reused.
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}
