package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fabrica/realestate-crm/internal/core/domain"
	"github.com/fabrica/realestate-crm/internal/core/ports"
)

const defaultActivityLimit = 50

// ActivityHandler serves the dashboard audit feed.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Recent handles GET /api/activity?limit=N, newest entries first.
//
// @Summary      Recent activity feed
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max entries (default 50)"
// @Success      200    {array}   domain.ActivityEntry
// @Failure      401    {object}  messageResponse
// @Router       /api/activity [get]
func (h *ActivityHandler) Recent(c echo.Context) error {
	limit := defaultActivityLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	entries, err := h.service.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.ActivityEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}
