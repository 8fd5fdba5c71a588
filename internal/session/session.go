package session

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/models"
)

// Recovery credential: the bootstrap login that works only while no
// real user data is loaded (empty Users sheet or no endpoint
// configured). It exists so a fresh install can be set up at all.
const (
	recoveryUsername = "admin"
	recoveryPassword = "gonzacars2024"
)

// ErrInvalidCredentials is returned for every failed login; callers
// must not leak whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Login checks the credentials against the loaded Users collection:
// case-insensitive username, exact password. The returned user has
// its password stripped and is safe to persist.
func Login(users []models.User, username, password string, endpointConfigured bool) (models.User, error) {
	for _, u := range users {
		if strings.EqualFold(u.Username, username) && passwordMatches(u.Password, password) {
			u.Password = ""
			return u, nil
		}
	}

	// Bootstrap path: only when there is no real user data to check
	// against does the recovery credential open the door.
	if len(users) == 0 || !endpointConfigured {
		if strings.EqualFold(username, recoveryUsername) && password == recoveryPassword {
			return models.User{
				ID:       "recovery",
				Username: recoveryUsername,
				Name:     "Recovery Administrator",
				Role:     models.RoleAdmin,
			}, nil
		}
	}

	return models.User{}, ErrInvalidCredentials
}

// passwordMatches accepts the sheet's plaintext passwords as-is, and
// also a bcrypt hash in the same column for sheets that were hardened
// by hand.
func passwordMatches(stored, input string) bool {
	if stored == "" {
		return false
	}
	if stored == input {
		return true
	}
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(input)) == nil
	}
	return false
}
