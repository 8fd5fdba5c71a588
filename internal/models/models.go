package models

// Roles a login account can carry. They gate which sections of the
// app the account is allowed to open.
const (
	RoleAdmin   = "admin"
	RoleSeller  = "seller"
	RoleCashier = "cashier"
)

// Workshop staff roles (payroll side, distinct from login roles).
const (
	StaffMechanic = "Mechanic"
	StaffSeller   = "Seller"
	StaffAdmin    = "Admin"
)

// Repair ticket lifecycle. A ticket only counts for mechanic
// commission once it reaches StatusDelivered.
const (
	StatusReceived        = "Received"
	StatusDiagnosing      = "Diagnosing"
	StatusWaitingApproval = "Waiting Approval"
	StatusInRepair        = "In Repair"
	StatusFinished        = "Finished"
	StatusDelivered       = "Delivered"
)

// Repair item kinds.
const (
	ItemPart       = "Part"
	ItemConsumable = "Consumable"
	ItemService    = "Service"
)

// Purchase invoice type and payment status.
const (
	PurchaseCash   = "Cash"
	PurchaseCredit = "Credit"

	InvoicePending = "Pending"
	InvoiceClosed  = "Closed"
	InvoicePaid    = "Paid"
)

// Payroll record status.
const (
	PayrollPending = "Pending"
	PayrollPaid    = "Paid"
)

// ExpenseCategories is the closed set the expense classifier is
// allowed to answer with.
var ExpenseCategories = []string{"Parts", "Tools", "Rent", "Utilities", "Salaries", "Other"}

// User - a login account loaded from the Users sheet
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"` // stripped before the user is stored in a session
	Name     string `json:"name"`
	Role     string `json:"role"` // 'admin', 'seller', 'cashier'
}

// Customer - the workshop's client directory
type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// Product - one inventory row. Dates travel as YYYY-MM-DD strings,
// same as the sheet stores them.
type Product struct {
	ID        string `json:"id"`
	Barcode   string `json:"barcode"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  Number `json:"quantity"`
	Cost      Number `json:"cost"`
	Price     Number `json:"price"`
	LastEntry string `json:"lastEntry"`
}

// RepairItem - one billable line inside a repair ticket
type RepairItem struct {
	Type        string `json:"type"` // Part, Consumable, Service
	Description string `json:"description"`
	Quantity    Number `json:"quantity"`
	Price       Number `json:"price"`
	ProductID   string `json:"productId,omitempty"`
}

// Subtotal is price times quantity for this line.
func (it RepairItem) Subtotal() float64 {
	return float64(it.Price) * float64(it.Quantity)
}

// Installment - a partial payment recorded against an open ticket
type Installment struct {
	Date   string `json:"date"`
	Amount Number `json:"amount"`
	Method string `json:"method"`
}

// VehicleRepair - the central work-order entity (a "ticket")
type VehicleRepair struct {
	ID            string       `json:"id"`
	CustomerID    string       `json:"customerId"`
	Plate         string       `json:"plate"`
	Brand         string       `json:"brand"`
	Model         string       `json:"model"`
	Year          string       `json:"year"`
	Status        string       `json:"status"`
	Diagnosis     string       `json:"diagnosis"`
	MechanicID    string       `json:"mechanicId"`
	Items         RepairItems  `json:"items"`
	Installments  Installments `json:"installments"`
	CreatedAt     string       `json:"createdAt"`
	FinishedAt    string       `json:"finishedAt,omitempty"`
	PaymentMethod string       `json:"paymentMethod,omitempty"`
}

// Total is always the sum of the item lines. Installments reduce the
// outstanding balance, never the total itself.
func (r VehicleRepair) Total() float64 {
	var total float64
	for _, it := range r.Items {
		total += it.Subtotal()
	}
	return total
}

// Paid sums the installments recorded so far.
func (r VehicleRepair) Paid() float64 {
	var paid float64
	for _, ins := range r.Installments {
		paid += float64(ins.Amount)
	}
	return paid
}

// Balance is what the customer still owes on this ticket.
func (r VehicleRepair) Balance() float64 {
	return r.Total() - r.Paid()
}

// SaleLine - one product inside a point-of-sale cart
type SaleLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     Number `json:"price"`
	Quantity  Number `json:"quantity"`
}

// Sale - a point-of-sale transaction. Decrements inventory.
type Sale struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customerId,omitempty"`
	Date          string    `json:"date"`
	Items         SaleLines `json:"items"`
	Total         Number    `json:"total"`
	Tax           bool      `json:"tax"`
	PaymentMethod string    `json:"paymentMethod"`
}

// Purchase - one product line of a supplier invoice. Rows sharing
// (invoiceNumber, provider) form one logical invoice; type and status
// are carried redundantly on every row.
type Purchase struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoiceNumber"`
	Provider      string `json:"provider"`
	Date          string `json:"date"`
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName"`
	Category      string `json:"category"`
	Price         Number `json:"price"` // unit cost
	Quantity      Number `json:"quantity"`
	Total         Number `json:"total"`
	Type          string `json:"type"`   // Cash, Credit
	Status        string `json:"status"` // Pending, Closed, Paid
}

// Expense - a standalone cost entry, no relation to other entities
type Expense struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Amount      Number `json:"amount"`
}

// Employee - drives the payroll calculation
type Employee struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role"` // Mechanic, Seller, Admin
	BaseSalary     Number `json:"baseSalary"`
	CommissionRate Number `json:"commissionRate"`
}

// PayrollRecord - append-only payment log
type PayrollRecord struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	BaseSalary Number `json:"baseSalary"`
	Commission Number `json:"commission"`
	Total      Number `json:"total"`
	Status     string `json:"status"` // Pending, Paid
}

// SettingRow - a key/value row on the Settings sheet. Only
// "exchangeRate" is consumed today.
type SettingRow struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Snapshot is everything a full read of the remote sheet can return.
// A nil collection means the sheet did not carry that tab (or its
// payload was malformed) - the loader leaves the previous local
// collection untouched in that case.
type Snapshot struct {
	Users        []User
	Customers    []Customer
	Inventory    []Product
	Repairs      []VehicleRepair
	Sales        []Sale
	Purchases    []Purchase
	Expenses     []Expense
	Employees    []Employee
	Payroll      []PayrollRecord
	ExchangeRate float64
	HasRate      bool
}
