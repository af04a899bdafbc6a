package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/libraryhub/catalog-api/internal/core/ports"
)

// StatsHandler serves the aggregate dashboard view.
type StatsHandler struct {
	service ports.CatalogService
}

func NewStatsHandler(service ports.CatalogService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Get handles GET /v1/stats.
//
// @Summary      Catalog and ledger statistics
// @Tags         stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Statistics
// @Failure      401  {object}  errorResponse
// @Router       /v1/stats [get]
func (h *StatsHandler) Get(c echo.Context) error {
	stats, err := h.service.Statistics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
