package reports

import (
	"math"
	"testing"

	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/models"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestKardexMergesAndSortsNewestFirst(t *testing.T) {
	product := models.Product{ID: "p1", Name: "Oil filter"}
	purchases := []models.Purchase{
		{ProductID: "p1", Date: "2024-01-10", Quantity: 5, Price: 4, InvoiceNumber: "F-1", Provider: "ACME"},
		{ProductID: "zz", ProductName: "Oil filter", Date: "2024-03-01", Quantity: 2, Price: 5, InvoiceNumber: "F-2", Provider: "ACME"},
		{ProductID: "other", ProductName: "Coolant", Date: "2024-02-01", Quantity: 9, Price: 1},
	}
	sales := []models.Sale{
		{ID: "s1", Date: "2024-02-15", Items: models.SaleLines{{ProductID: "p1", Quantity: 3, Price: 8}}},
		{ID: "s2", Date: "2024-02-20", Items: models.SaleLines{{ProductID: "nope", Name: "Coolant", Quantity: 1}}},
	}

	moves := Kardex(product, purchases, sales)
	if len(moves) != 3 {
		t.Fatalf("movements = %d, want 3 (2 entries + 1 exit)", len(moves))
	}

	// Newest first: F-2 entry, s1 exit, F-1 entry.
	if moves[0].Type != MovementEntry || moves[0].Date != "2024-03-01" {
		t.Fatalf("moves[0] = %+v, want the 2024-03-01 entry", moves[0])
	}
	if moves[1].Type != MovementExit || moves[1].Quantity != 3 {
		t.Fatalf("moves[1] = %+v, want the sale exit of 3", moves[1])
	}
	if moves[2].Date != "2024-01-10" {
		t.Fatalf("moves[2] = %+v, want the oldest entry", moves[2])
	}
}

func TestCustomerValueIsGrossBilled(t *testing.T) {
	sales := []models.Sale{
		{CustomerID: "c1", Total: 100},
		{CustomerID: "c2", Total: 999},
		{CustomerID: "c1", Total: 50},
	}
	repairs := []models.VehicleRepair{
		{
			CustomerID: "c1",
			Items: models.RepairItems{
				{Type: models.ItemPart, Price: 30, Quantity: 2},    // 60
				{Type: models.ItemService, Price: 40, Quantity: 1}, // 40
			},
			// Installments must NOT reduce the value.
			Installments: models.Installments{{Amount: 80}},
		},
		{CustomerID: "c2", Items: models.RepairItems{{Price: 10, Quantity: 1}}},
	}

	if got := CustomerValue("c1", sales, repairs); !almost(got, 250) {
		t.Fatalf("value = %v, want 250", got)
	}
}

func TestMechanicCommissionOnlyForDeliveredServiceWork(t *testing.T) {
	mechanic := models.Employee{ID: "m1", Role: models.StaffMechanic, BaseSalary: 500, CommissionRate: 0.1}
	repairs := []models.VehicleRepair{
		{ // counts: delivered, assigned, has a service line
			MechanicID: "m1", Status: models.StatusDelivered,
			Items: models.RepairItems{
				{Type: models.ItemService, Price: 200, Quantity: 1},
				{Type: models.ItemPart, Price: 999, Quantity: 1}, // parts never count
			},
		},
		{ // not delivered yet
			MechanicID: "m1", Status: models.StatusInRepair,
			Items: models.RepairItems{{Type: models.ItemService, Price: 300, Quantity: 1}},
		},
		{ // someone else's ticket
			MechanicID: "m2", Status: models.StatusDelivered,
			Items: models.RepairItems{{Type: models.ItemService, Price: 400, Quantity: 1}},
		},
	}

	got := ComputeEarnings(mechanic, repairs, nil, []models.Employee{mechanic})
	if !almost(got.Commission, 20) {
		t.Fatalf("commission = %v, want 20 (0.1 x 200)", got.Commission)
	}
	if !almost(got.Total, 520) {
		t.Fatalf("total = %v, want 520", got.Total)
	}
}

func TestMechanicCommissionZeroWithoutDeliveredTickets(t *testing.T) {
	mechanic := models.Employee{ID: "m1", Role: models.StaffMechanic, BaseSalary: 500, CommissionRate: 0.1}
	repairs := []models.VehicleRepair{
		{MechanicID: "m1", Status: models.StatusFinished,
			Items: models.RepairItems{{Type: models.ItemService, Price: 100, Quantity: 1}}},
	}

	got := ComputeEarnings(mechanic, repairs, nil, nil)
	if got.Commission != 0 {
		t.Fatalf("commission = %v, want 0", got.Commission)
	}
}

func TestSellerPoolSplitsEvenly(t *testing.T) {
	// Spec scenario: $2000 all-time sales, two sellers ->
	// (2000 x 0.025) / 2 = $25 each, total pay $125.
	seller := models.Employee{ID: "e1", Role: models.StaffSeller, BaseSalary: 100}
	other := models.Employee{ID: "e2", Role: models.StaffSeller, BaseSalary: 200}
	admin := models.Employee{ID: "e3", Role: models.StaffAdmin, BaseSalary: 300}
	sales := []models.Sale{{Total: 1200}, {Total: 800}}

	got := ComputeEarnings(seller, nil, sales, []models.Employee{seller, other, admin})
	if !almost(got.Commission, 25) {
		t.Fatalf("commission = %v, want 25", got.Commission)
	}
	if !almost(got.Total, 125) {
		t.Fatalf("total = %v, want 125", got.Total)
	}

	// Admin gets base only.
	if e := ComputeEarnings(admin, nil, sales, []models.Employee{seller, other, admin}); e.Commission != 0 || !almost(e.Total, 300) {
		t.Fatalf("admin earnings = %+v, want base only", e)
	}
}

func TestSellerPoolWithZeroSellers(t *testing.T) {
	// No division by zero: an employee computed as Seller while the
	// roster holds none gets no share.
	seller := models.Employee{ID: "e1", Role: models.StaffSeller, BaseSalary: 100}
	got := ComputeEarnings(seller, nil, []models.Sale{{Total: 5000}}, []models.Employee{})
	if got.Commission != 0 {
		t.Fatalf("commission = %v, want 0", got.Commission)
	}
}

func TestGroupInvoices(t *testing.T) {
	purchases := []models.Purchase{
		{InvoiceNumber: "F-1", Provider: "ACME", Total: 10, Type: models.PurchaseCredit, Status: models.InvoicePending},
		{InvoiceNumber: "F-1", Provider: "ACME", Total: 15, Type: models.PurchaseCredit, Status: models.InvoicePending},
		{InvoiceNumber: "F-1", Provider: "Other Parts", Total: 99, Type: models.PurchaseCash, Status: models.InvoicePaid},
		{InvoiceNumber: "F-2", Provider: "ACME", Total: 7, Type: models.PurchaseCredit, Status: models.InvoicePaid},
	}

	groups := GroupInvoices(purchases)
	if len(groups) != 3 {
		t.Fatalf("groups = %d, want 3 (same number, different provider splits)", len(groups))
	}

	byKey := map[string]InvoiceGroup{}
	for _, g := range groups {
		byKey[g.InvoiceNumber+"/"+g.Provider] = g
	}

	acme := byKey["F-1/ACME"]
	if !almost(acme.Total, 25) || len(acme.Rows) != 2 {
		t.Fatalf("F-1/ACME = %+v, want total 25 over 2 rows", acme)
	}
	if !acme.PendingPayment {
		t.Fatal("credit + not paid must be pending payment")
	}
	if byKey["F-1/Other Parts"].PendingPayment {
		t.Fatal("cash invoices are never pending payment")
	}
	if byKey["F-2/ACME"].PendingPayment {
		t.Fatal("paid credit invoices are not pending payment")
	}
}

func TestSummarizeAllTimeAndSingleDay(t *testing.T) {
	sales := []models.Sale{
		{Date: "2024-05-01", Total: 100},
		{Date: "2024-05-01", Total: 40},
		{Date: "2024-05-02", Total: 60},
	}
	purchases := []models.Purchase{
		{Date: "2024-05-01", Total: 30},
		{Date: "2024-05-02", Total: 20},
	}
	expenses := []models.Expense{
		{Date: "2024-05-01", Category: "Rent", Amount: 25},
		{Date: "2024-05-02", Category: "Utilities", Amount: 5},
	}

	all := Summarize(sales, purchases, expenses)
	if !almost(all.TotalSales, 200) || !almost(all.TotalPurchases, 50) || !almost(all.TotalExpenses, 30) {
		t.Fatalf("totals = %+v", all)
	}
	if !almost(all.Balance, 120) {
		t.Fatalf("balance = %v, want 120 (200 - 50 - 30)", all.Balance)
	}
	if !almost(all.ByCategory["Rent"], 25) || !almost(all.ByCategory["Utilities"], 5) {
		t.Fatalf("category breakdown = %v", all.ByCategory)
	}

	day := SummarizeDate("2024-05-01", sales, purchases, expenses)
	if !almost(day.TotalSales, 140) || !almost(day.TotalPurchases, 30) || !almost(day.TotalExpenses, 25) {
		t.Fatalf("day totals = %+v", day)
	}
	if !almost(day.Balance, 85) {
		t.Fatalf("day balance = %v, want 85", day.Balance)
	}
}
