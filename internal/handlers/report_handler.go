package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/reports"
)

// --- GET: /api/inventory/:id/kardex ---
func (a *App) GetKardex(c *gin.Context) {
	product, ok := a.Store.FindProduct(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	moves := reports.Kardex(product, a.Store.Purchases(), a.Store.Sales())
	c.JSON(http.StatusOK, gin.H{
		"product":   product,
		"movements": moves,
	})
}

// --- GET: /api/customers/:id/value ---
func (a *App) GetCustomerValue(c *gin.Context) {
	id := c.Param("id")
	value := reports.CustomerValue(id, a.Store.Sales(), a.Store.Repairs())
	c.JSON(http.StatusOK, gin.H{
		"customerId": id,
		"value":      value,
	})
}

// --- GET: /api/employees/:id/earnings ---
func (a *App) GetEarnings(c *gin.Context) {
	id := c.Param("id")
	for _, emp := range a.Store.Employees() {
		if emp.ID == id {
			earnings := reports.ComputeEarnings(emp, a.Store.Repairs(), a.Store.Sales(), a.Store.Employees())
			c.JSON(http.StatusOK, earnings)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
}

// --- GET: /api/purchases/invoices ---
func (a *App) GetInvoices(c *gin.Context) {
	c.JSON(http.StatusOK, reports.GroupInvoices(a.Store.Purchases()))
}

// --- GET: /api/reports/finance?date=YYYY-MM-DD ---
// Without a date the rollup covers all-time activity.
func (a *App) GetFinanceSummary(c *gin.Context) {
	date := c.Query("date")

	var sum reports.Summary
	if date == "" {
		sum = reports.Summarize(a.Store.Sales(), a.Store.Purchases(), a.Store.Expenses())
	} else {
		sum = reports.SummarizeDate(date, a.Store.Sales(), a.Store.Purchases(), a.Store.Expenses())
	}
	c.JSON(http.StatusOK, sum)
}
