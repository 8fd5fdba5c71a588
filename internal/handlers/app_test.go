package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/auth"
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/gateway"
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/middleware"
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/session"
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/store"
)

func newTestApp(t *testing.T) (*App, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gw := gateway.New("") // unconfigured: local-only mode
	app := &App{
		Store:   store.New(gw),
		Gateway: gw,
		State:   session.NewStateFile(filepath.Join(t.TempDir(), "state.json")),
	}

	r := gin.New()
	r.POST("/login", app.Login)
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		api.GET("/state", app.GetState)
		customers := api.Group("/customers", middleware.RequireSection(session.SectionCustomers))
		customers.POST("", app.AddCustomer)
		payroll := api.Group("/payroll", middleware.RequireSection(session.SectionPayroll))
		payroll.POST("", app.AddPayroll)
	}
	return app, r
}

func do(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginWithRecoveryCredentialAndSessionPersistence(t *testing.T) {
	app, r := newTestApp(t)

	// No endpoint configured, no users loaded: recovery works.
	w := do(r, http.MethodPost, "/login", "", `{"username":"admin","password":"gonzacars2024"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token    string   `json:"token"`
		Role     string   `json:"role"`
		Sections []string `json:"sections"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Token == "" || resp.Role != "admin" {
		t.Fatalf("response = %+v", resp)
	}
	if len(resp.Sections) == 0 {
		t.Fatal("admin should see every section")
	}

	// The session user survives in the state file, sans password.
	st := app.State.Load()
	if st.User == nil || st.User.Username != "admin" || st.User.Password != "" {
		t.Fatalf("persisted session = %+v", st.User)
	}

	// Wrong password is refused.
	if w := do(r, http.MethodPost, "/login", "", `{"username":"admin","password":"nope"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login = %d, want 401", w.Code)
	}
}

func TestProtectedRoutesNeedTokenAndSection(t *testing.T) {
	app, r := newTestApp(t)

	// No token at all.
	if w := do(r, http.MethodGet, "/api/state", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no token = %d, want 401", w.Code)
	}

	adminToken, err := auth.GenerateToken("admin", "admin")
	if err != nil {
		t.Fatal(err)
	}
	cashierToken, err := auth.GenerateToken("caja", "cashier")
	if err != nil {
		t.Fatal(err)
	}

	// Admin may add a customer.
	w := do(r, http.MethodPost, "/api/customers", adminToken, `{"name":"Ana","phone":"555"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("admin add customer = %d: %s", w.Code, w.Body.String())
	}
	if len(app.Store.Customers()) != 1 {
		t.Fatal("customer should land in the store")
	}

	// A cashier may not touch customers or payroll.
	if w := do(r, http.MethodPost, "/api/customers", cashierToken, `{"name":"Eve"}`); w.Code != http.StatusForbidden {
		t.Fatalf("cashier add customer = %d, want 403", w.Code)
	}
	if w := do(r, http.MethodPost, "/api/payroll", cashierToken, `{"employeeId":"e1"}`); w.Code != http.StatusForbidden {
		t.Fatalf("cashier payroll = %d, want 403", w.Code)
	}

	// Validation guard: missing name blocks the action.
	if w := do(r, http.MethodPost, "/api/customers", adminToken, `{"phone":"555"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("nameless customer = %d, want 400", w.Code)
	}
}
