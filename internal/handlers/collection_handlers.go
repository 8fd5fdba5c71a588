package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/models"
)

// Thin gin bindings over the store's mutations. Validation here is
// deliberately inline guard checks: the user gets blocked with a
// message, nothing structured.

// --- Customers ---

func (a *App) AddCustomer(c *gin.Context) {
	var cust models.Customer
	if err := c.ShouldBindJSON(&cust); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if strings.TrimSpace(cust.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer name is required"})
		return
	}
	c.JSON(http.StatusCreated, a.Store.AddCustomer(cust))
}

func (a *App) UpdateCustomer(c *gin.Context) {
	var cust models.Customer
	if err := c.ShouldBindJSON(&cust); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	cust.ID = c.Param("id")
	if !a.Store.UpdateCustomer(cust) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (a *App) DeleteCustomer(c *gin.Context) {
	if !a.Store.DeleteCustomer(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}

// --- Inventory ---

func (a *App) AddProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if strings.TrimSpace(p.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product name is required"})
		return
	}
	if p.Price < 0 || p.Cost < 0 || p.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amounts cannot be negative"})
		return
	}
	c.JSON(http.StatusCreated, a.Store.AddProduct(p))
}

func (a *App) UpdateProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	p.ID = c.Param("id")
	if p.Price < 0 || p.Cost < 0 || p.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amounts cannot be negative"})
		return
	}
	if !a.Store.UpdateProduct(p) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (a *App) DeleteProduct(c *gin.Context) {
	if !a.Store.DeleteProduct(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// --- Repairs ---

func (a *App) AddRepair(c *gin.Context) {
	var r models.VehicleRepair
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if r.CustomerID == "" || strings.TrimSpace(r.Plate) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer and plate are required"})
		return
	}
	c.JSON(http.StatusCreated, a.Store.AddRepair(r))
}

func (a *App) UpdateRepair(c *gin.Context) {
	var r models.VehicleRepair
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	r.ID = c.Param("id")
	if !a.Store.UpdateRepair(r) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Repair ticket not found"})
		return
	}
	c.JSON(http.StatusOK, r)
}

func (a *App) DeleteRepair(c *gin.Context) {
	if !a.Store.DeleteRepair(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Repair ticket not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Repair ticket deleted"})
}

// --- Sales (append-only) ---

func (a *App) AddSale(c *gin.Context) {
	var s models.Sale
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if len(s.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Sale needs at least one item"})
		return
	}
	for _, line := range s.Items {
		if line.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item quantities must be positive"})
			return
		}
	}
	c.JSON(http.StatusCreated, a.Store.AddSale(s))
}

// --- Purchases ---

func (a *App) AddPurchase(c *gin.Context) {
	var p models.Purchase
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if strings.TrimSpace(p.Provider) == "" || strings.TrimSpace(p.InvoiceNumber) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provider and invoice number are required"})
		return
	}
	if strings.TrimSpace(p.ProductName) == "" && p.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Purchase needs a product"})
		return
	}
	if p.Quantity <= 0 || p.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be positive"})
		return
	}
	c.JSON(http.StatusCreated, a.Store.AddPurchase(p))
}

func (a *App) UpdatePurchase(c *gin.Context) {
	var p models.Purchase
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	p.ID = c.Param("id")
	if !a.Store.UpdatePurchase(p) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (a *App) DeletePurchase(c *gin.Context) {
	if !a.Store.DeletePurchase(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase deleted"})
}

// --- Expenses ---

func (a *App) AddExpense(c *gin.Context) {
	var e models.Expense
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if e.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
		return
	}
	if strings.TrimSpace(e.Description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Description is required"})
		return
	}
	c.JSON(http.StatusCreated, a.Store.AddExpense(e))
}

func (a *App) UpdateExpense(c *gin.Context) {
	var e models.Expense
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	e.ID = c.Param("id")
	if e.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
		return
	}
	if !a.Store.UpdateExpense(e) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}

func (a *App) DeleteExpense(c *gin.Context) {
	if !a.Store.DeleteExpense(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

// --- Employees ---

func (a *App) AddEmployee(c *gin.Context) {
	var e models.Employee
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if strings.TrimSpace(e.Name) == "" || e.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and role are required"})
		return
	}
	if e.BaseSalary < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Salary cannot be negative"})
		return
	}
	c.JSON(http.StatusCreated, a.Store.AddEmployee(e))
}

func (a *App) UpdateEmployee(c *gin.Context) {
	var e models.Employee
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	e.ID = c.Param("id")
	if !a.Store.UpdateEmployee(e) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}

func (a *App) DeleteEmployee(c *gin.Context) {
	if !a.Store.DeleteEmployee(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}

// --- Users ---

func (a *App) AddUser(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if strings.TrimSpace(u.Username) == "" || u.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}
	saved := a.Store.AddUser(u)
	saved.Password = "" // never echo credentials back
	c.JSON(http.StatusCreated, saved)
}

func (a *App) UpdateUser(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	u.ID = c.Param("id")
	if !a.Store.UpdateUser(u) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	u.Password = ""
	c.JSON(http.StatusOK, u)
}

func (a *App) DeleteUser(c *gin.Context) {
	if !a.Store.DeleteUser(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// --- Payroll ---

func (a *App) AddPayroll(c *gin.Context) {
	var p models.PayrollRecord
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if p.EmployeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Employee is required"})
		return
	}
	if p.Total == 0 {
		p.Total = p.BaseSalary + p.Commission
	}
	c.JSON(http.StatusCreated, a.Store.AddPayroll(p))
}

func (a *App) UpdatePayroll(c *gin.Context) {
	var p models.PayrollRecord
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	p.ID = c.Param("id")
	if !a.Store.UpdatePayroll(p) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payroll record not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}
