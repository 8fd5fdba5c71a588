package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/gateway"
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/handlers"
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/middleware"
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/session"
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	// Local durable state: the configured sheet endpoint and the
	// persisted session user. Everything else lives in memory.
	statePath := os.Getenv("STATE_FILE")
	if statePath == "" {
		statePath = "./gonzacars-state.json"
	}
	stateFile := session.NewStateFile(statePath)
	st := stateFile.Load()

	// SHEET_ENDPOINT from .env only bootstraps a fresh install; the
	// persisted value wins once the user configured one in the app.
	endpoint := st.Endpoint
	if endpoint == "" {
		endpoint = os.Getenv("SHEET_ENDPOINT")
	}

	gw := gateway.New(endpoint)
	db := store.New(gw)

	// Initial snapshot pull. A failure (or no endpoint yet) just
	// means we start with empty collections - the app stays usable.
	if gw.Configured() {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		if snap, err := gw.FetchSnapshot(ctx); err != nil {
			log.Println("⚠️ Could not load sheet snapshot, starting empty:", err)
		} else {
			db.Load(snap)
			log.Println("✅ Sheet snapshot loaded!")
		}
		cancel()
	} else {
		log.Println("⚠️ No sheet endpoint configured. Running in local-only mode.")
	}

	app := &handlers.App{Store: db, Gateway: gw, State: stateFile}

	r := gin.Default()

	// The Bridge Configuration: let the React SPA talk to us in dev.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", app.Login)

	// --- PROTECTED ROUTES ---
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.POST("/logout", app.Logout)
		api.GET("/state", app.GetState)
		api.POST("/sync/refresh", app.Refresh)

		// Settings: endpoint + exchange rate.
		settings := api.Group("/", middleware.RequireSection(session.SectionSettings))
		{
			settings.GET("/config/endpoint", app.GetEndpoint)
			settings.PUT("/config/endpoint", app.SetEndpoint)
			settings.PUT("/settings/exchange-rate", app.SetExchangeRate)
		}

		customers := api.Group("/customers", middleware.RequireSection(session.SectionCustomers))
		{
			customers.POST("", app.AddCustomer)
			customers.PUT("/:id", app.UpdateCustomer)
			customers.DELETE("/:id", app.DeleteCustomer)
			customers.GET("/:id/value", app.GetCustomerValue)
		}

		inventory := api.Group("/inventory", middleware.RequireSection(session.SectionInventory))
		{
			inventory.POST("", app.AddProduct)
			inventory.PUT("/:id", app.UpdateProduct)
			inventory.DELETE("/:id", app.DeleteProduct)
			inventory.GET("/:id/kardex", app.GetKardex)
		}

		repairs := api.Group("/repairs", middleware.RequireSection(session.SectionRepairs))
		{
			repairs.POST("", app.AddRepair)
			repairs.PUT("/:id", app.UpdateRepair)
			repairs.DELETE("/:id", app.DeleteRepair)
			repairs.POST("/:id/diagnosis", app.RewriteDiagnosis)
		}

		pos := api.Group("/sales", middleware.RequireSection(session.SectionPOS))
		{
			pos.POST("", app.AddSale)
		}

		purchases := api.Group("/purchases", middleware.RequireSection(session.SectionPurchases))
		{
			purchases.POST("", app.AddPurchase)
			purchases.PUT("/:id", app.UpdatePurchase)
			purchases.DELETE("/:id", app.DeletePurchase)
			purchases.GET("/invoices", app.GetInvoices)
		}

		finance := api.Group("/", middleware.RequireSection(session.SectionFinance))
		{
			finance.POST("/expenses", app.AddExpense)
			finance.PUT("/expenses/:id", app.UpdateExpense)
			finance.DELETE("/expenses/:id", app.DeleteExpense)
			finance.GET("/reports/finance", app.GetFinanceSummary)
			finance.POST("/ai/audit", app.AuditNarrative)
			finance.POST("/ai/classify-expense", app.ClassifyExpense)
		}

		employees := api.Group("/employees", middleware.RequireSection(session.SectionEmployees))
		{
			employees.POST("", app.AddEmployee)
			employees.PUT("/:id", app.UpdateEmployee)
			employees.DELETE("/:id", app.DeleteEmployee)
			employees.GET("/:id/earnings", app.GetEarnings)
		}

		payroll := api.Group("/payroll", middleware.RequireSection(session.SectionPayroll))
		{
			payroll.POST("", app.AddPayroll)
			payroll.PUT("/:id", app.UpdatePayroll)
		}

		// ADMIN ONLY: account management.
		users := api.Group("/users", middleware.RequireSection(session.SectionSettings))
		{
			users.POST("", app.AddUser)
			users.PUT("/:id", app.UpdateUser)
			users.DELETE("/:id", app.DeleteUser)
		}
	}

	// --- DEPLOYMENT: Serve the built SPA ---
	r.Static("/assets", "./web/assets")
	r.NoRoute(func(c *gin.Context) {
		c.File("./web/index.html")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 GonzaCars server starting on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
