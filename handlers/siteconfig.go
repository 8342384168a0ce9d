package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/happywht/gg-mange/services/siteconfig"
	"github.com/labstack/echo/v4"
)

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetSiteConfig serves the page bootstrap payload: contact card and button
// visibility.
func (h *Handler) GetSiteConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"contact": h.site.Contact(),
		"buttons": h.site.Buttons(),
	})
}

func (h *Handler) GetButtons(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"buttons": h.site.Buttons()})
}

type buttonUpdateRequest struct {
	Key    string                 `json:"key"`
	Config siteconfig.ButtonPatch `json:"config"`
}

func (h *Handler) UpdateButton(c echo.Context) error {
	var req buttonUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
	}

	buttons, err := h.site.UpdateButton(req.Key, req.Config)
	if err != nil {
		if errors.Is(err, siteconfig.ErrUnknownButton) {
			return c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"buttons": buttons,
	})
}

func (h *Handler) AdminGetSiteConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"contact": h.site.Contact(),
		"buttons": h.site.Buttons(),
	})
}

type contactUpdateRequest struct {
	Contact *siteconfig.ContactPatch `json:"contact"`
}

func (h *Handler) UpdateContact(c echo.Context) error {
	var req contactUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
	}

	if req.Contact == nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid configuration"))
	}

	contact := h.site.UpdateContact(*req.Contact)
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"contact": contact,
	})
}
