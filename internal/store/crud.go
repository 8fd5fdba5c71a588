package store

import (
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/gateway"
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/models"
)

// rowRef is the payload replicated for deletes: the endpoint only
// needs the logical row identity.
type rowRef struct {
	ID string `json:"id"`
}

// --- Customers ---

func (s *Store) AddCustomer(c models.Customer) models.Customer {
	if c.ID == "" {
		c.ID = newID()
	}
	s.mu.Lock()
	s.customers = append(append([]models.Customer{}, s.customers...), c)
	s.mu.Unlock()

	s.remote.Replicate(gateway.SheetCustomers, gateway.ActionAdd, c)
	return c
}

func (s *Store) UpdateCustomer(c models.Customer) bool {
	s.mu.Lock()
	next := append([]models.Customer{}, s.customers...)
	found := false
	for i := range next {
		if next[i].ID == c.ID {
			next[i] = c
			found = true
			break
		}
	}
	if found {
		s.customers = next
	}
	s.mu.Unlock()

	if found {
		s.remote.Replicate(gateway.SheetCustomers, gateway.ActionUpdate, c)
	}
	return found
}

func (s *Store) DeleteCustomer(id string) bool {
	s.mu.Lock()
	next := make([]models.Customer, 0, len(s.customers))
	found := false
	for _, c := range s.customers {
		if c.ID == id {
			found = true
			continue
		}
		next = append(next, c)
	}
	if found {
		s.customers = next
	}
	s.mu.Unlock()

	if found {
		s.remote.Replicate(gateway.SheetCustomers, gateway.ActionDelete, rowRef{ID: id})
	}
	return found
}

// --- Inventory ---

func (s *Store) AddProduct(p models.Product) models.Product {
	if p.ID == "" {
		p.ID = newID()
	}
	s.mu.Lock()
	s.inventory = append(append([]models.Product{}, s.inventory...), p)
	s.mu.Unlock()

	s.remote.Replicate(gateway.SheetInventory, gateway.ActionAdd, p)
	return p
}

func (s *Store) UpdateProduct(p models.Product) bool {
	s.mu.Lock()
	next := append([]models.Product{}, s.inventory...)
	found := false
	for i := range next {
		if next[i].ID == p.ID {
			next[i] = p
			found = true
			break
		}
	}
	if found {
		s.inventory = next
	}
	s.mu.Unlock()

	if found {
		s.remote.Replicate(gateway.SheetInventory, gateway.ActionUpdate, p)
	}
	return found
}

func (s *Store) DeleteProduct(id string) bool {
	s.mu.Lock()
	next := make([]models.Product, 0, len(s.inventory))
	found := false
	for _, p := range s.inventory {
		if p.ID == id {
			found = true
			continue
		}
		next = append(next, p)
	}
	if found {
		s.inventory = next
	}
	s.mu.Unlock()

	if found {
		s.remote.Replicate(gateway.SheetInventory, gateway.ActionDelete, rowRef{ID: id})
	}
	return found
}

// --- Repairs ---

func (s *Store) AddRepair(r models.VehicleRepair) models.VehicleRepair {
	if r.ID == "" {
		r.ID = newID()
	}
	if r.Status == "" {
		r.Status = models.StatusReceived
	}
	s.mu.Lock()
	s.repairs = append(append([]models.VehicleRepair{}, s.repairs...), r)
	s.mu.Unlock()

	s.remote.Replicate(gateway.SheetRepairs, gateway.ActionAdd, r)
	return r
}

func (s *Store) UpdateRepair(r models.VehicleRepair) bool {
	s.mu.Lock()
	next := append([]models.VehicleRepair{}, s.repairs...)
	found := false
	for i := range next {
		if next[i].ID == r.ID {
			next[i] = r
			found = true
			break
		}
	}
	if found {
		s.repairs = next
	}
	s.mu.Unlock()

	if found {
		s.remote.Replicate(gateway.SheetRepairs, gateway.ActionUpdate, r)
	}
	return found
}

func (s *Store) DeleteRepair(id string) bool {
	s.mu.Lock()
	next := make([]models.VehicleRepair, 0, len(s.repairs))
	found := false
	for _, r := range s.repairs {
		if r.ID == id {
			found = true
			continue
		}
		next = append(next, r)
	}
	if found {
		s.repairs = next
	}
	s.mu.Unlock()

	if found {
		s.remote.Replicate(gateway.SheetRepairs, gateway.ActionDelete, rowRef{ID: id})
	}
	return found
}

// --- Purchases (update/delete; AddPurchase lives in sync.go with
// its inventory side effects) ---

func (s *Store) UpdatePurchase(p models.Purchase) bool {
	s.mu.Lock()
	next := append([]models.Purchase{}, s.purchases...)
	found := false
	for i := range next {
		if next[i].ID == p.ID {
			next[i] = p
			found = true
			break
		}
	}
	if found {
		s.purchases = next
	}
	s.mu.Unlock()

	if found {
		s.remote.Replicate(gateway.SheetPurchases, gateway.ActionUpdate, p)
	}
	return found
}

func (s *Store) DeletePurchase(id string) bool {
	s.mu.Lock()
	next := make([]models.Purchase, 0, len(s.purchases))
	found := false
	for _, p := range s.purchases {
		if p.ID == id {
			found = true
			continue
		}
		next = append(next, p)
	}
	if found {
		s.purchases = next
	}
	s.mu.Unlock()

	if found {
		s.remote.Replicate(gateway.SheetPurchases, gateway.ActionDelete, rowRef{ID: id})
	}
	return found
}

// --- Expenses ---

func (s *Store) AddExpense(e models.Expense) models.Expense {
	if e.ID == "" {
		e.ID = newID()
	}
	s.mu.Lock()
	s.expenses = append(append([]models.Expense{}, s.expenses...), e)
	s.mu.Unlock()

	s.remote.Replicate(gateway.SheetExpenses, gateway.ActionAdd, e)
	return e
}

func (s *Store) UpdateExpense(e models.Expense) bool {
	s.mu.Lock()
	next := append([]models.Expense{}, s.expenses...)
	found := false
	for i := range next {
		if next[i].ID == e.ID {
			next[i] = e
			found = true
			break
		}
	}
	if found {
		s.expenses = next
	}
	s.mu.Unlock()

	if found {
		s.remote.Replicate(gateway.SheetExpenses, gateway.ActionUpdate, e)
	}
	return found
}

func (s *Store) DeleteExpense(id string) bool {
	s.mu.Lock()
	next := make([]models.Expense, 0, len(s.expenses))
	found := false
	for _, e := range s.expenses {
		if e.ID == id {
			found = true
			continue
		}
		next = append(next, e)
	}
	if found {
		s.expenses = next
	}
	s.mu.Unlock()

	if found {
		s.remote.Replicate(gateway.SheetExpenses, gateway.ActionDelete, rowRef{ID: id})
	}
	return found
}

// --- Employees ---

func (s *Store) AddEmployee(e models.Employee) models.Employee {
	if e.ID == "" {
		e.ID = newID()
	}
	s.mu.Lock()
	s.employees = append(append([]models.Employee{}, s.employees...), e)
	s.mu.Unlock()

	s.remote.Replicate(gateway.SheetEmployees, gateway.ActionAdd, e)
	return e
}

func (s *Store) UpdateEmployee(e models.Employee) bool {
	s.mu.Lock()
	next := append([]models.Employee{}, s.employees...)
	found := false
	for i := range next {
		if next[i].ID == e.ID {
			next[i] = e
			found = true
			break
		}
	}
	if found {
		s.employees = next
	}
	s.mu.Unlock()

	if found {
		s.remote.Replicate(gateway.SheetEmployees, gateway.ActionUpdate, e)
	}
	return found
}

func (s *Store) DeleteEmployee(id string) bool {
	s.mu.Lock()
	next := make([]models.Employee, 0, len(s.employees))
	found := false
	for _, e := range s.employees {
		if e.ID == id {
			found = true
			continue
		}
		next = append(next, e)
	}
	if found {
		s.employees = next
	}
	s.mu.Unlock()

	if found {
		s.remote.Replicate(gateway.SheetEmployees, gateway.ActionDelete, rowRef{ID: id})
	}
	return found
}

// --- Users ---

func (s *Store) AddUser(u models.User) models.User {
	if u.ID == "" {
		u.ID = newID()
	}
	s.mu.Lock()
	s.users = append(append([]models.User{}, s.users...), u)
	s.mu.Unlock()

	s.remote.Replicate(gateway.SheetUsers, gateway.ActionAdd, u)
	return u
}

func (s *Store) UpdateUser(u models.User) bool {
	s.mu.Lock()
	next := append([]models.User{}, s.users...)
	found := false
	for i := range next {
		if next[i].ID == u.ID {
			next[i] = u
			found = true
			break
		}
	}
	if found {
		s.users = next
	}
	s.mu.Unlock()

	if found {
		s.remote.Replicate(gateway.SheetUsers, gateway.ActionUpdate, u)
	}
	return found
}

func (s *Store) DeleteUser(id string) bool {
	s.mu.Lock()
	next := make([]models.User, 0, len(s.users))
	found := false
	for _, u := range s.users {
		if u.ID == id {
			found = true
			continue
		}
		next = append(next, u)
	}
	if found {
		s.users = next
	}
	s.mu.Unlock()

	if found {
		s.remote.Replicate(gateway.SheetUsers, gateway.ActionDelete, rowRef{ID: id})
	}
	return found
}

// --- Payroll (append-only log; only the status ever changes) ---

func (s *Store) AddPayroll(p models.PayrollRecord) models.PayrollRecord {
	if p.ID == "" {
		p.ID = newID()
	}
	if p.Status == "" {
		p.Status = models.PayrollPending
	}
	s.mu.Lock()
	s.payroll = append(append([]models.PayrollRecord{}, s.payroll...), p)
	s.mu.Unlock()

	s.remote.Replicate(gateway.SheetPayroll, gateway.ActionAdd, p)
	return p
}

func (s *Store) UpdatePayroll(p models.PayrollRecord) bool {
	s.mu.Lock()
	next := append([]models.PayrollRecord{}, s.payroll...)
	found := false
	for i := range next {
		if next[i].ID == p.ID {
			next[i] = p
			found = true
			break
		}
	}
	if found {
		s.payroll = next
	}
	s.mu.Unlock()

	if found {
		s.remote.Replicate(gateway.SheetPayroll, gateway.ActionUpdate, p)
	}
	return found
}
