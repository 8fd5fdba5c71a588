package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/auth"
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/gateway"
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/session"
	"github.com/ojedapedro/gonzacars-sistem-sub000/internal/store"
)

// App bundles everything a handler needs: the domain store, the sheet
// gateway and the persisted local state. Built once in main, torn
// down with the process - no package-level mutable state.
type App struct {
	Store   *store.Store
	Gateway *gateway.Client
	State   *session.StateFile
}

// Refresh pulls the full remote snapshot and replaces the local
// collections. A failed fetch leaves prior state untouched and just
// turns the loading flag off - connectivity problems never surface
// as user-facing errors.
func (a *App) Refresh(c *gin.Context) {
	loaded := a.refresh(c)
	c.JSON(http.StatusOK, gin.H{"loaded": loaded})
}

func (a *App) refresh(c *gin.Context) bool {
	if !a.Gateway.Configured() {
		return false
	}
	snap, err := a.Gateway.FetchSnapshot(c.Request.Context())
	if err != nil {
		log.Println("snapshot fetch failed, keeping local state:", err)
		return false
	}
	a.Store.Load(snap)
	return true
}

// GetState hands the SPA the whole local state in one read.
func (a *App) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, a.Store.Snapshot())
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks credentials against the loaded Users collection (or
// the recovery credential while unconfigured/empty), persists the
// session user and hands back a token.
func (a *App) Login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	user, err := session.Login(a.Store.Users(), input.Username, input.Password, a.Gateway.Configured())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	// Session survives reloads; password was already stripped.
	st := a.State.Load()
	st.User = &user
	if err := a.State.Save(st); err != nil {
		log.Println("could not persist session:", err)
	}

	token, err := auth.GenerateToken(user.Username, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": user.Username,
		"name":     user.Name,
		"role":     user.Role,
		"sections": session.Sections(user.Role),
	})
}

// Logout wipes the persisted session user. The token itself simply
// stops being presented by the SPA.
func (a *App) Logout(c *gin.Context) {
	st := a.State.Load()
	st.User = nil
	if err := a.State.Save(st); err != nil {
		log.Println("could not clear session:", err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetEndpoint reports the configured sheet endpoint.
func (a *App) GetEndpoint(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"endpoint":   a.Gateway.Endpoint(),
		"configured": a.Gateway.Configured(),
	})
}

type endpointRequest struct {
	Endpoint string `json:"endpoint"`
}

// SetEndpoint reconfigures the sheet endpoint, persists it, and
// immediately tries a full snapshot pull against it.
func (a *App) SetEndpoint(c *gin.Context) {
	var input endpointRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	a.Gateway.SetEndpoint(input.Endpoint)

	st := a.State.Load()
	st.Endpoint = input.Endpoint
	if err := a.State.Save(st); err != nil {
		log.Println("could not persist endpoint:", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"endpoint": input.Endpoint,
		"loaded":   a.refresh(c),
	})
}

type exchangeRateRequest struct {
	Rate string `json:"rate" binding:"required"`
}

// SetExchangeRate updates the scalar setting. The sheet stores it as
// a number-string, so that is what we accept.
func (a *App) SetExchangeRate(c *gin.Context) {
	var input exchangeRateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	rate, err := strconv.ParseFloat(input.Rate, 64)
	if err != nil || rate <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rate must be a positive number"})
		return
	}

	a.Store.SetExchangeRate(rate)
	c.JSON(http.StatusOK, gin.H{"exchangeRate": rate})
}
