package session

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	LegacyTokenHeader     = "X-Auth-Token"
	LegacyTimestampHeader = "X-Auth-Timestamp"
	legacyTokenCookie     = "auth_token"
	legacyTimestampCookie = "auth_timestamp"
)

// TokenState is the legacy token lifecycle: tokens are never refreshed, the
// only transition is ValidToken -> ExpiredToken by wall-clock elapse.
type TokenState int

const (
	NoToken TokenState = iota
	ValidToken
	ExpiredToken
)

// LegacySource accepts the pre-provider scheme: an opaque token plus its
// issue timestamp in milliseconds, valid for a fixed window from issuance.
type LegacySource struct {
	maxAge time.Duration
}

func NewLegacySource(maxAge time.Duration) *LegacySource {
	return &LegacySource{maxAge: maxAge}
}

// State classifies a token pair at the given instant. Elapsed time strictly
// greater than the window is expired; exactly at the boundary is still valid.
func (s *LegacySource) State(token, issueMillis string, now time.Time) TokenState {
	if token == "" || issueMillis == "" {
		return NoToken
	}

	issued, err := strconv.ParseInt(issueMillis, 10, 64)
	if err != nil {
		return NoToken
	}

	elapsed := now.UnixMilli() - issued
	if elapsed > s.maxAge.Milliseconds() {
		return ExpiredToken
	}
	return ValidToken
}

func (s *LegacySource) Authenticate(c echo.Context) (*Identity, error) {
	token := c.Request().Header.Get(LegacyTokenHeader)
	issue := c.Request().Header.Get(LegacyTimestampHeader)

	if token == "" {
		if cookie, err := c.Cookie(legacyTokenCookie); err == nil {
			token = cookie.Value
		}
		if cookie, err := c.Cookie(legacyTimestampCookie); err == nil {
			issue = cookie.Value
		}
	}

	switch s.State(token, issue, time.Now()) {
	case ValidToken:
		// Legacy tokens carry no identity beyond "logged in"; the old
		// scheme had no admin role.
		return &Identity{}, nil
	case ExpiredToken:
		return nil, ErrSessionExpired
	default:
		return nil, ErrNoSession
	}
}

// ClearLegacyCookies expires the legacy pair on the client.
func ClearLegacyCookies(c echo.Context) {
	for _, name := range []string{legacyTokenCookie, legacyTimestampCookie} {
		c.SetCookie(&http.Cookie{
			Name:    name,
			Value:   "",
			Path:    "/",
			MaxAge:  -1,
			Expires: time.Unix(0, 0),
		})
	}
}
