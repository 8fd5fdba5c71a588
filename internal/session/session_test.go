package session

import (
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/models"
)

func TestLoginCaseInsensitiveUsernameExactPassword(t *testing.T) {
	users := []models.User{
		{ID: "u1", Username: "Pedro", Password: "secret", Name: "Pedro O.", Role: models.RoleAdmin},
	}

	u, err := Login(users, "pEDRO", "secret", true)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if u.ID != "u1" {
		t.Fatalf("logged in as %q, want u1", u.ID)
	}
	if u.Password != "" {
		t.Fatal("password must be stripped from the session user")
	}

	if _, err := Login(users, "pedro", "SECRET", true); err == nil {
		t.Fatal("password comparison must be exact")
	}
	if _, err := Login(users, "nobody", "secret", true); err == nil {
		t.Fatal("unknown username must fail")
	}
}

func TestLoginAcceptsBcryptHashedPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	users := []models.User{{ID: "u1", Username: "pedro", Password: string(hash)}}

	if _, err := Login(users, "pedro", "secret", true); err != nil {
		t.Fatalf("hashed password should be accepted: %v", err)
	}
	if _, err := Login(users, "pedro", "wrong", true); err == nil {
		t.Fatal("wrong password against a hash must fail")
	}
}

func TestRecoveryCredentialGating(t *testing.T) {
	// Works with no users loaded.
	u, err := Login(nil, "admin", "gonzacars2024", true)
	if err != nil {
		t.Fatalf("recovery should work with an empty user list: %v", err)
	}
	if u.Role != models.RoleAdmin {
		t.Fatalf("recovery role = %q, want admin", u.Role)
	}

	// Works with users loaded but no endpoint configured.
	users := []models.User{{Username: "pedro", Password: "secret"}}
	if _, err := Login(users, "admin", "gonzacars2024", false); err != nil {
		t.Fatalf("recovery should work while unconfigured: %v", err)
	}

	// Refused once real users exist and an endpoint is configured.
	if _, err := Login(users, "admin", "gonzacars2024", true); err == nil {
		t.Fatal("recovery must be refused when real users are loaded")
	}
}

func TestIsPermitted(t *testing.T) {
	cases := []struct {
		role, section string
		want          bool
	}{
		{models.RoleAdmin, SectionPayroll, true},
		{models.RoleAdmin, SectionSettings, true},
		{models.RoleSeller, SectionPOS, true},
		{models.RoleSeller, SectionCustomers, true},
		{models.RoleSeller, SectionPayroll, false},
		{models.RoleSeller, SectionSettings, false},
		{models.RoleCashier, SectionPOS, true},
		{models.RoleCashier, SectionFinance, true},
		{models.RoleCashier, SectionInventory, false},
		{"", SectionDashboard, false},
	}
	for _, tc := range cases {
		if got := IsPermitted(tc.role, tc.section); got != tc.want {
			t.Errorf("IsPermitted(%q, %q) = %v, want %v", tc.role, tc.section, got, tc.want)
		}
	}
}

func TestStateFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	f := NewStateFile(path)

	// Fresh install: nothing persisted yet.
	st := f.Load()
	if st.Endpoint != "" || st.User != nil {
		t.Fatalf("fresh state = %+v, want empty", st)
	}

	st.Endpoint = "https://sheet.example/api"
	st.User = &models.User{ID: "u1", Username: "pedro", Password: "leak", Role: models.RoleAdmin}
	if err := f.Save(st); err != nil {
		t.Fatal(err)
	}

	got := f.Load()
	if got.Endpoint != "https://sheet.example/api" {
		t.Fatalf("endpoint = %q", got.Endpoint)
	}
	if got.User == nil || got.User.Username != "pedro" {
		t.Fatalf("user = %+v", got.User)
	}
	if got.User.Password != "" {
		t.Fatal("password must never be persisted")
	}
}
