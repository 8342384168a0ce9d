package session

import (
	"errors"
	"strings"

	"github.com/happywht/gg-mange/services/auth"
	"github.com/labstack/echo/v4"
)

// ProviderSource authenticates through the identity provider: either the
// scs cookie session established at sign-in, or a provider-issued bearer
// token for API clients.
type ProviderSource struct {
	manager *Manager
	authSvc *auth.Service
}

func NewProviderSource(manager *Manager, authSvc *auth.Service) *ProviderSource {
	return &ProviderSource{manager: manager, authSvc: authSvc}
}

func (s *ProviderSource) Authenticate(c echo.Context) (*Identity, error) {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, "Bearer ") {
		return s.authenticateBearer(strings.TrimPrefix(header, "Bearer "))
	}

	if !IsAuthenticated(c) {
		return nil, ErrNoSession
	}

	email := GetEmail(c)
	return &Identity{
		UserID: GetUserID(c),
		Email:  email,
		Admin:  s.authSvc.IsAdmin(email),
	}, nil
}

func (s *ProviderSource) authenticateBearer(token string) (*Identity, error) {
	claims, err := s.authSvc.ValidateProviderToken(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, ErrSessionExpired
		}
		return nil, ErrNoSession
	}

	return &Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Admin:  s.authSvc.IsAdmin(claims.Email),
	}, nil
}
