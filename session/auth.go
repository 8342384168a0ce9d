package session

import (
	"time"

	"github.com/labstack/echo/v4"
)

const (
	UserIDKey        = "_user_id"
	EmailKey         = "_email"
	AuthenticatedKey = "_authenticated"
)

// Login marks the current scs session authenticated and records a tracking
// row for the device.
func Login(c echo.Context, service Service, userID uint, email string) {
	manager := GetManager(c)
	if manager == nil {
		return
	}

	ctx := c.Request().Context()
	manager.Put(ctx, UserIDKey, userID)
	manager.Put(ctx, EmailKey, email)
	manager.Put(ctx, AuthenticatedKey, true)

	if service != nil {
		if token := manager.Token(ctx); token != "" {
			expiresAt := time.Now().Add(manager.config.MaxAge)
			_ = service.TrackSession(userID, token, c.RealIP(), c.Request().UserAgent(), expiresAt)
		}
	}
}

// Logout destroys the scs session and removes its tracking row.
func Logout(c echo.Context, service Service) {
	manager := GetManager(c)
	if manager == nil {
		return
	}

	ctx := c.Request().Context()
	if service != nil {
		if token := manager.Token(ctx); token != "" {
			_ = service.RemoveSessionByToken(token)
		}
	}

	manager.Remove(ctx, UserIDKey)
	manager.Remove(ctx, EmailKey)
	manager.Remove(ctx, AuthenticatedKey)
	_ = manager.Destroy(ctx)
}

func IsAuthenticated(c echo.Context) bool {
	manager := GetManager(c)
	if manager == nil {
		return false
	}
	return manager.GetBool(c.Request().Context(), AuthenticatedKey)
}

func GetUserID(c echo.Context) uint {
	manager := GetManager(c)
	if manager == nil {
		return 0
	}

	switch v := manager.Get(c.Request().Context(), UserIDKey).(type) {
	case uint:
		return v
	case int:
		return uint(v)
	case int64:
		return uint(v)
	case float64:
		return uint(v)
	default:
		return 0
	}
}

func GetEmail(c echo.Context) string {
	manager := GetManager(c)
	if manager == nil {
		return ""
	}
	return manager.GetString(c.Request().Context(), EmailKey)
}
