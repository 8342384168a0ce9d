package handlers

import (
	"errors"
	"net/http"

	"github.com/happywht/gg-mange/vault"
	"github.com/labstack/echo/v4"
)

type accountRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Secret   string `json:"secret"`
}

// ListAccounts returns every account with credentials stripped.
func (h *Handler) ListAccounts(c echo.Context) error {
	accounts, err := h.store.ListAccounts()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}

	safe := make([]vault.SafeAccount, 0, len(accounts))
	for _, account := range accounts {
		safe = append(safe, account.Safe())
	}
	return c.JSON(http.StatusOK, map[string]any{"accounts": safe})
}

func (h *Handler) CreateAccount(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
	}

	account := &vault.Account{
		ID:       req.ID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Secret:   req.Secret,
	}

	if err := h.store.CreateAccount(account); err != nil {
		if errors.Is(err, vault.ErrValidation) {
			return c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"account": account,
	})
}

func (h *Handler) UpdateAccount(c echo.Context) error {
	var req accountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
	}

	account := &vault.Account{
		ID:       c.Param("id"),
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Secret:   req.Secret,
	}

	updated, err := h.store.UpdateAccount(account)
	if err != nil {
		if errors.Is(err, vault.ErrValidation) {
			return c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"updated": updated,
	})
}

func (h *Handler) DeleteAccount(c echo.Context) error {
	deleted, err := h.store.DeleteAccount(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"deleted": deleted,
	})
}

// AdminListAccounts returns full rows, credentials included.
func (h *Handler) AdminListAccounts(c echo.Context) error {
	accounts, err := h.store.ListAccounts()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}
	return c.JSON(http.StatusOK, map[string]any{"accounts": accounts})
}

// AdminDatabaseDump mirrors AdminListAccounts under the raw-data route the
// admin page queries.
func (h *Handler) AdminDatabaseDump(c echo.Context) error {
	accounts, err := h.store.ListAccounts()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}
	return c.JSON(http.StatusOK, map[string]any{"data": accounts})
}
