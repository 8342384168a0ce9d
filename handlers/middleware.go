package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/happywht/gg-mange/services/access"
)

func errorResponse(message string) map[string]string {
	return map[string]string{"error": message}
}

// adminPassword pulls the shared admin password from the query string or the
// JSON body; both locations are accepted and checked by the same rule. The
// body is restored so the handler can bind it again.
func adminPassword(c echo.Context) string {
	if pw := c.QueryParam("password"); pw != "" {
		return pw
	}

	if c.Request().Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return ""
	}
	c.Request().Body = io.NopCloser(bytes.NewReader(body))

	var payload struct {
		Password string `json:"password"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Password
}

// RequireAdminPassword guards mutation endpoints with the process-wide admin
// secret. Failures never touch state.
func (h *Handler) RequireAdminPassword(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !h.gate.AuthorizeAdmin(adminPassword(c)) {
			return c.JSON(http.StatusUnauthorized, errorResponse(access.ErrUnauthorized.Error()))
		}
		return next(c)
	}
}
