package reports

import (
	"sort"

	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/models"
)

// Pure roll-ups over the in-memory collections. Nothing here caches
// or mutates; every call recomputes from the slices it is handed.

// Movement directions in a product's kardex.
const (
	MovementEntry = "ENTRY"
	MovementExit  = "EXIT"
)

// Movement is one row of a product's kardex ledger.
type Movement struct {
	Date      string  `json:"date"`
	Type      string  `json:"type"` // ENTRY or EXIT
	Reference string  `json:"reference"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Kardex rebuilds the movement ledger for one product: purchases in,
// sale lines out, matched by id or by name, newest first. No running
// balance is stored; the reader derives point-in-time balances.
func Kardex(product models.Product, purchases []models.Purchase, sales []models.Sale) []Movement {
	var moves []Movement

	for _, p := range purchases {
		if p.ProductID == product.ID || (p.ProductName != "" && p.ProductName == product.Name) {
			moves = append(moves, Movement{
				Date:      p.Date,
				Type:      MovementEntry,
				Reference: p.InvoiceNumber + " / " + p.Provider,
				Quantity:  float64(p.Quantity),
				UnitPrice: float64(p.Price),
			})
		}
	}

	for _, s := range sales {
		for _, line := range s.Items {
			if line.ProductID == product.ID || (line.Name != "" && line.Name == product.Name) {
				moves = append(moves, Movement{
					Date:      s.Date,
					Type:      MovementExit,
					Reference: "Sale " + s.ID,
					Quantity:  float64(line.Quantity),
					UnitPrice: float64(line.Price),
				})
			}
		}
	}

	// Dates are YYYY-MM-DD strings, so plain string order is
	// chronological. Newest first.
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Date > moves[j].Date
	})
	return moves
}

// CustomerValue is the customer's gross billed value: every sale
// total plus every item subtotal on their repair tickets.
// Installments are deliberately not subtracted.
func CustomerValue(customerID string, sales []models.Sale, repairs []models.VehicleRepair) float64 {
	var total float64
	for _, s := range sales {
		if s.CustomerID == customerID {
			total += float64(s.Total)
		}
	}
	for _, r := range repairs {
		if r.CustomerID == customerID {
			total += r.Total()
		}
	}
	return total
}

// Earnings breaks an employee's pay into base and commission.
type Earnings struct {
	EmployeeID string  `json:"employeeId"`
	BaseSalary float64 `json:"baseSalary"`
	Commission float64 `json:"commission"`
	Total      float64 `json:"total"`
}

// ComputeEarnings applies the commission rules:
//   - Mechanic: commissionRate times the Service-item subtotals of
//     every Delivered ticket assigned to them.
//   - Seller: an equal share of a pool worth 2.5% of all-time sales,
//     split across every Seller-role employee. No sellers, no pool.
//   - Anyone else: base salary only.
func ComputeEarnings(emp models.Employee, repairs []models.VehicleRepair, sales []models.Sale, employees []models.Employee) Earnings {
	out := Earnings{
		EmployeeID: emp.ID,
		BaseSalary: float64(emp.BaseSalary),
	}

	switch emp.Role {
	case models.StaffMechanic:
		var serviceBilled float64
		for _, r := range repairs {
			if r.MechanicID != emp.ID || r.Status != models.StatusDelivered {
				continue
			}
			for _, it := range r.Items {
				if it.Type == models.ItemService {
					serviceBilled += it.Subtotal()
				}
			}
		}
		out.Commission = float64(emp.CommissionRate) * serviceBilled

	case models.StaffSeller:
		sellers := 0
		for _, e := range employees {
			if e.Role == models.StaffSeller {
				sellers++
			}
		}
		if sellers > 0 {
			var allSales float64
			for _, s := range sales {
				allSales += float64(s.Total)
			}
			out.Commission = (allSales * 0.025) / float64(sellers)
		}
	}

	out.Total = out.BaseSalary + out.Commission
	return out
}

// InvoiceGroup is the logical supplier invoice behind a set of
// purchase rows sharing (invoiceNumber, provider).
type InvoiceGroup struct {
	InvoiceNumber  string            `json:"invoiceNumber"`
	Provider       string            `json:"provider"`
	Date           string            `json:"date"`
	Type           string            `json:"type"`
	Status         string            `json:"status"`
	Total          float64           `json:"total"`
	Rows           []models.Purchase `json:"rows"`
	PendingPayment bool              `json:"pendingPayment"`
}

// GroupInvoices folds purchase rows into their logical invoices. The
// type/status carried redundantly on each row is taken from the last
// row seen, matching how the sheet keeps them in lockstep. An invoice
// is pending payment when it is Credit and not yet Paid.
func GroupInvoices(purchases []models.Purchase) []InvoiceGroup {
	index := make(map[string]int)
	var groups []InvoiceGroup

	for _, p := range purchases {
		key := p.InvoiceNumber + "\x00" + p.Provider
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, InvoiceGroup{
				InvoiceNumber: p.InvoiceNumber,
				Provider:      p.Provider,
				Date:          p.Date,
			})
		}
		groups[i].Rows = append(groups[i].Rows, p)
		groups[i].Total += float64(p.Total)
		groups[i].Type = p.Type
		groups[i].Status = p.Status
	}

	for i := range groups {
		groups[i].PendingPayment = groups[i].Type == models.PurchaseCredit && groups[i].Status != models.InvoicePaid
	}
	return groups
}

// Summary is the financial rollup for a slice of activity.
type Summary struct {
	TotalSales     float64            `json:"totalSales"`
	TotalPurchases float64            `json:"totalPurchases"`
	TotalExpenses  float64            `json:"totalExpenses"`
	Balance        float64            `json:"balance"`
	ByCategory     map[string]float64 `json:"expensesByCategory"`
}

// Summarize computes totals and net balance = sales - (purchases +
// expenses), plus a per-category expense breakdown.
func Summarize(sales []models.Sale, purchases []models.Purchase, expenses []models.Expense) Summary {
	sum := Summary{ByCategory: make(map[string]float64)}

	for _, s := range sales {
		sum.TotalSales += float64(s.Total)
	}
	for _, p := range purchases {
		sum.TotalPurchases += float64(p.Total)
	}
	for _, e := range expenses {
		sum.TotalExpenses += float64(e.Amount)
		cat := e.Category
		if cat == "" {
			cat = "Other"
		}
		sum.ByCategory[cat] += float64(e.Amount)
	}

	sum.Balance = sum.TotalSales - (sum.TotalPurchases + sum.TotalExpenses)
	return sum
}

// SummarizeDate is Summarize restricted to a single YYYY-MM-DD day.
func SummarizeDate(date string, sales []models.Sale, purchases []models.Purchase, expenses []models.Expense) Summary {
	var daySales []models.Sale
	for _, s := range sales {
		if s.Date == date {
			daySales = append(daySales, s)
		}
	}
	var dayPurchases []models.Purchase
	for _, p := range purchases {
		if p.Date == date {
			dayPurchases = append(dayPurchases, p)
		}
	}
	var dayExpenses []models.Expense
	for _, e := range expenses {
		if e.Date == date {
			dayExpenses = append(dayExpenses, e)
		}
	}
	return Summarize(daySales, dayPurchases, dayExpenses)
}
