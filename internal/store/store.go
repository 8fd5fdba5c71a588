package store

import (
	"math/rand"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/gateway"
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/models"
)

// Replicator is the slice of the sheet gateway the store needs. Every
// local mutation is mirrored through it, fire-and-forget.
type Replicator interface {
	Replicate(sheet, action string, row interface{})
}

// Store is the single authority over the in-memory domain
// collections. Every write lands locally first (the UI never waits on
// the network), then the same row is replicated to the sheet under
// the same add/update/delete action. Collections are copy-on-write: a
// mutation builds a fresh slice, so anything a reader got earlier
// stays stable.
type Store struct {
	mu     sync.RWMutex
	remote Replicator

	users     []models.User
	customers []models.Customer
	inventory []models.Product
	repairs   []models.VehicleRepair
	sales     []models.Sale
	purchases []models.Purchase
	expenses  []models.Expense
	employees []models.Employee
	payroll   []models.PayrollRecord

	exchangeRate float64
}

// New builds an empty store replicating through the given gateway.
func New(remote Replicator) *Store {
	return &Store{remote: remote}
}

// Load replaces local collections with a freshly fetched snapshot.
// A nil collection in the snapshot (tab missing or malformed) leaves
// the previous local data untouched.
func (s *Store) Load(snap *models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap.Users != nil {
		s.users = snap.Users
	}
	if snap.Customers != nil {
		s.customers = snap.Customers
	}
	if snap.Inventory != nil {
		s.inventory = snap.Inventory
	}
	if snap.Repairs != nil {
		s.repairs = snap.Repairs
	}
	if snap.Sales != nil {
		s.sales = snap.Sales
	}
	if snap.Purchases != nil {
		s.purchases = snap.Purchases
	}
	if snap.Expenses != nil {
		s.expenses = snap.Expenses
	}
	if snap.Employees != nil {
		s.employees = snap.Employees
	}
	if snap.Payroll != nil {
		s.payroll = snap.Payroll
	}
	if snap.HasRate {
		s.exchangeRate = snap.ExchangeRate
	}
}

// State is the aggregate the SPA pulls to render everything at once.
type State struct {
	Users        []models.User          `json:"users"`
	Customers    []models.Customer      `json:"customers"`
	Inventory    []models.Product       `json:"inventory"`
	Repairs      []models.VehicleRepair `json:"repairs"`
	Sales        []models.Sale          `json:"sales"`
	Purchases    []models.Purchase      `json:"purchases"`
	Expenses     []models.Expense       `json:"expenses"`
	Employees    []models.Employee      `json:"employees"`
	Payroll      []models.PayrollRecord `json:"payroll"`
	ExchangeRate float64                `json:"exchangeRate"`
}

// Snapshot returns the whole current state in one read.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Users:        s.users,
		Customers:    s.customers,
		Inventory:    s.inventory,
		Repairs:      s.repairs,
		Sales:        s.sales,
		Purchases:    s.purchases,
		Expenses:     s.expenses,
		Employees:    s.employees,
		Payroll:      s.payroll,
		ExchangeRate: s.exchangeRate,
	}
}

// --- Read accessors ---
// Mutations never touch a published slice in place, so handing the
// current slice out under a read lock is safe.

func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users
}

func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customers
}

func (s *Store) Inventory() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inventory
}

func (s *Store) Repairs() []models.VehicleRepair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.repairs
}

func (s *Store) Sales() []models.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sales
}

func (s *Store) Purchases() []models.Purchase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.purchases
}

func (s *Store) Expenses() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expenses
}

func (s *Store) Employees() []models.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.employees
}

func (s *Store) Payroll() []models.PayrollRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payroll
}

func (s *Store) ExchangeRate() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exchangeRate
}

// FindProduct looks an inventory row up by id.
func (s *Store) FindProduct(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.inventory {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// SetExchangeRate stores the scalar and replicates it as a Settings
// row update.
func (s *Store) SetExchangeRate(rate float64) {
	s.mu.Lock()
	s.exchangeRate = rate
	s.mu.Unlock()

	s.remote.Replicate(gateway.SheetSettings, gateway.ActionUpdate, models.SettingRow{
		Key:   "exchangeRate",
		Value: strconv.FormatFloat(rate, 'f', -1, 64),
	})
}

// newID mints an opaque row id for entities created on this side.
func newID() string {
	return uuid.NewString()
}

// randomBarcode generates the 12-digit code assigned to products
// synthesized from a purchase of something not yet in inventory.
func randomBarcode() string {
	digits := make([]byte, 12)
	for i := range digits {
		digits[i] = byte('0' + rand.Intn(10))
	}
	return string(digits)
}
