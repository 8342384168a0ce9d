package handlers

import (
	"errors"
	"net/http"

	"github.com/happywht/gg-mange/services/auth"
	"github.com/happywht/gg-mange/session"
	"github.com/labstack/echo/v4"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *Handler) SignUp(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
	}

	user, err := h.authSvc.SignUp(req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailAlreadyExists):
			return c.JSON(http.StatusConflict, errorResponse(err.Error()))
		case errors.Is(err, auth.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, errorResponse("email and password are required"))
		default:
			return c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
	})
}

// SignIn establishes a cookie session and also returns a provider token for
// clients that prefer bearer auth.
func (h *Handler) SignIn(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
	}

	user, err := h.authSvc.SignIn(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorResponse(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}

	session.Login(c, h.sessions, user.ID, user.Email)

	token, err := h.authSvc.GenerateProviderToken(user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"user": map[string]any{
			"id":      user.ID,
			"email":   user.Email,
			"isAdmin": h.authSvc.IsAdmin(user.Email),
		},
		"token": token,
	})
}

func (h *Handler) SignOut(c echo.Context) error {
	return h.guard.Logout(c, h.sessions, loginPage)
}

// GetSession reports the caller's identity and their active device sessions.
func (h *Handler) GetSession(c echo.Context) error {
	identity := session.CurrentIdentity(c)
	if identity == nil {
		return c.JSON(http.StatusUnauthorized, errorResponse("authentication required"))
	}

	response := map[string]any{"user": identity}

	if identity.UserID != 0 && h.sessions != nil {
		var token string
		if manager := session.GetManager(c); manager != nil {
			token = manager.Token(c.Request().Context())
		}
		if sessions, err := h.sessions.GetUserSessions(identity.UserID, token); err == nil {
			response["sessions"] = sessions
		}
	}

	return c.JSON(http.StatusOK, response)
}
