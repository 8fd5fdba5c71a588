package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/ai"
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/reports"
)

// The three text helpers are one-shot calls. On any failure the SPA
// keeps whatever the user typed: nothing is applied server-side.

func geminiKey(c *gin.Context) (string, bool) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server missing Gemini API key"})
		return "", false
	}
	return apiKey, true
}

type textRequest struct {
	Text string `json:"text" binding:"required"`
}

// --- POST: /api/ai/diagnosis ---
func (a *App) RewriteDiagnosis(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}
	apiKey, ok := geminiKey(c)
	if !ok {
		return
	}

	rewritten, err := ai.RewriteDiagnosis(c.Request.Context(), apiKey, req.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"diagnosis": rewritten})
}

// --- POST: /api/ai/audit ---
// Narrates the current all-time (or single-day) financial rollup.
func (a *App) AuditNarrative(c *gin.Context) {
	apiKey, ok := geminiKey(c)
	if !ok {
		return
	}

	date := c.Query("date")
	var sum reports.Summary
	if date == "" {
		sum = reports.Summarize(a.Store.Sales(), a.Store.Purchases(), a.Store.Expenses())
	} else {
		sum = reports.SummarizeDate(date, a.Store.Sales(), a.Store.Purchases(), a.Store.Expenses())
	}

	narrative, err := ai.AuditNarrative(c.Request.Context(), apiKey, sum)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"narrative": narrative, "summary": sum})
}

// --- POST: /api/ai/classify-expense ---
func (a *App) ClassifyExpense(c *gin.Context) {
	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is required"})
		return
	}
	apiKey, ok := geminiKey(c)
	if !ok {
		return
	}

	category, err := ai.ClassifyExpense(c.Request.Context(), apiKey, req.Text)
	if err != nil {
		// The form keeps its previous category when this fails.
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}
