package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/libraryhub/catalog-api/internal/core/domain"
)

// ActivityReader is the slice of the feed the handler needs.
type ActivityReader interface {
	Recent(limit int) []domain.LoanActivity
}

// ActivityHandler serves the recent loan activity feed.
type ActivityHandler struct {
	feed ActivityReader
}

func NewActivityHandler(feed ActivityReader) *ActivityHandler {
	return &ActivityHandler{feed: feed}
}

// List handles GET /v1/activity.
//
// @Summary      Recent loan activity
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries to return"
// @Success      200    {object}  activityResponse
// @Failure      401    {object}  errorResponse
// @Router       /v1/activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return c.JSON(http.StatusOK, activityResponse{Data: h.feed.Recent(limit)})
}
