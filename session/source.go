package session

import (
	"errors"

	"github.com/labstack/echo/v4"
)

var (
	// ErrNoSession means the request carried no credentials at all.
	ErrNoSession = errors.New("no session")
	// ErrSessionExpired means credentials were presented but their
	// validity window has elapsed.
	ErrSessionExpired = errors.New("session expired")
)

// Identity is the authenticated caller as established by a Source.
type Identity struct {
	UserID uint   `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
	Admin  bool   `json:"admin"`
}

// Source is one way of establishing who the caller is. The guard consults
// its sources in order, so the delegated identity provider and the legacy
// timestamped token coexist without runtime type checks.
type Source interface {
	Authenticate(c echo.Context) (*Identity, error)
}
