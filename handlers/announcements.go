package handlers

import (
	"errors"
	"net/http"

	"github.com/happywht/gg-mange/vault"
	"github.com/labstack/echo/v4"
)

type announcementRequest struct {
	Message  string `json:"message"`
	Password string `json:"password"`
}

// GetAnnouncement returns the current announcement, or an empty default row
// when none has been published.
func (h *Handler) GetAnnouncement(c echo.Context) error {
	announcement, err := h.store.CurrentAnnouncement()
	if err != nil {
		if errors.Is(err, vault.ErrNotFound) {
			return c.JSON(http.StatusOK, map[string]string{
				"id":      "default",
				"message": "",
			})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}
	return c.JSON(http.StatusOK, announcement)
}

func (h *Handler) PublishAnnouncement(c echo.Context) error {
	var req announcementRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
	}

	announcement, err := h.store.PublishAnnouncement(req.Message)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":      true,
		"announcement": announcement,
	})
}

// AdminGetAnnouncement returns the current row, or null when none exists.
func (h *Handler) AdminGetAnnouncement(c echo.Context) error {
	announcement, err := h.store.CurrentAnnouncement()
	if err != nil {
		if errors.Is(err, vault.ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}
	return c.JSON(http.StatusOK, announcement)
}

// AdminPublishAnnouncement requires a non-empty message, unlike the public
// publication route.
func (h *Handler) AdminPublishAnnouncement(c echo.Context) error {
	var req announcementRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
	}

	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, errorResponse("announcement message is required"))
	}

	announcement, err := h.store.PublishAnnouncement(req.Message)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":      true,
		"announcement": announcement,
	})
}

func (h *Handler) DeleteAnnouncements(c echo.Context) error {
	count, err := h.store.DeleteAnnouncements()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"deleted": count > 0,
	})
}
