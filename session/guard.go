package session

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/happywht/gg-mange/services/logging"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Guard gates page and API access. It tries each configured Source in
// order; the first one that yields an identity wins, so pages still on the
// legacy token scheme keep working while the provider path rolls out.
type Guard struct {
	sources []Source
	logger  *logging.Service
}

func NewGuard(logger *logging.Service, sources ...Source) *Guard {
	return &Guard{sources: sources, logger: logger}
}

// Identify returns the caller's identity, or nil with the most specific
// failure seen (expired beats absent).
func (g *Guard) Identify(c echo.Context) (*Identity, error) {
	err := ErrNoSession
	for _, source := range g.sources {
		identity, sourceErr := source.Authenticate(c)
		if identity != nil {
			return identity, nil
		}
		if sourceErr == ErrSessionExpired {
			err = sourceErr
		}
	}
	return nil, err
}

func (g *Guard) IsAuthenticated(c echo.Context) bool {
	identity, _ := g.Identify(c)
	return identity != nil
}

// RequireAuth redirects unauthenticated page requests to the login page
// with the origin encoded as a query parameter; API requests get 401 JSON.
func (g *Guard) RequireAuth(loginURL string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := g.Identify(c)
			if identity == nil {
				g.logger.Debug("request rejected by auth guard",
					zap.String("path", c.Request().URL.Path),
					zap.Error(err))
				return g.deny(c, loginURL)
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// RequireAdmin additionally checks the identity's admin role, which is
// granted by the fixed email allow-list. Non-admin page requests land back
// on the default page.
func (g *Guard) RequireAdmin(loginURL string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := g.Identify(c)
			if identity == nil {
				g.logger.Debug("request rejected by admin guard",
					zap.String("path", c.Request().URL.Path),
					zap.Error(err))
				return g.deny(c, loginURL)
			}

			if !identity.Admin {
				g.logger.Warn("admin page denied",
					zap.String("email", identity.Email))
				if isAPIRequest(c) {
					return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
				}
				return c.Redirect(http.StatusFound, "/index.html")
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// Logout invalidates whichever scheme the caller used and sends page
// requests back to the login page.
func (g *Guard) Logout(c echo.Context, service Service, loginURL string) error {
	Logout(c, service)
	ClearLegacyCookies(c)

	if isAPIRequest(c) {
		return c.JSON(http.StatusOK, map[string]any{"success": true})
	}
	return c.Redirect(http.StatusFound, loginURL)
}

func (g *Guard) deny(c echo.Context, loginURL string) error {
	if isAPIRequest(c) {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	origin := c.Request().URL.Path
	return c.Redirect(http.StatusFound, loginURL+"?redirect="+url.QueryEscape(origin))
}

const identityKey = "_identity"

// CurrentIdentity returns the identity stored by a guard middleware, if any.
func CurrentIdentity(c echo.Context) *Identity {
	if identity, ok := c.Get(identityKey).(*Identity); ok {
		return identity
	}
	return nil
}

func isAPIRequest(c echo.Context) bool {
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		return true
	}
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
