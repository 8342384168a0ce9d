package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/happywht/gg-mange/services/totp"
	"github.com/happywht/gg-mange/vault"
	"github.com/labstack/echo/v4"
)

// GetAccountPassword returns the stored plaintext password for copying.
func (h *Handler) GetAccountPassword(c echo.Context) error {
	id := c.Param("id")

	if !h.gate.AuthorizeSensitiveRead(id) {
		return c.JSON(http.StatusUnauthorized, errorResponse("unauthorized"))
	}

	account, err := h.store.GetAccount(id)
	if err != nil {
		if errors.Is(err, vault.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse("account not found"))
		}
		return c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, map[string]string{"password": account.Password})
}

// GetAccountTOTP generates the current passcode server-side so the shared
// secret never reaches the page.
func (h *Handler) GetAccountTOTP(c echo.Context) error {
	id := c.Param("id")

	if !h.gate.AuthorizeSensitiveRead(id) {
		return c.JSON(http.StatusUnauthorized, errorResponse("unauthorized"))
	}

	account, err := h.store.GetAccount(id)
	if err != nil {
		if errors.Is(err, vault.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse("account not found"))
		}
		return c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}

	if !account.HasSecret() {
		return c.JSON(http.StatusOK, map[string]any{
			"totp":      nil,
			"hasSecret": false,
		})
	}

	passcode, err := h.engine.Passcode(account.Secret, time.Now())
	if err != nil {
		if errors.Is(err, totp.ErrInvalidSecret) {
			return c.JSON(http.StatusInternalServerError, errorResponse("passcode generation failed: "+err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"totp":      passcode.Code,
		"timeLeft":  passcode.TimeLeft,
		"hasSecret": true,
	})
}
