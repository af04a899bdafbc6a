package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/libraryhub/catalog-api/internal/api/metrics"
	"github.com/libraryhub/catalog-api/internal/core/domain"
	"github.com/libraryhub/catalog-api/internal/core/ports"
)

// LoanHandler exposes the loan lifecycle. The session user always comes
// from the claims, never from the request body.
type LoanHandler struct {
	service ports.LoanService
}

func NewLoanHandler(service ports.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

// Borrow handles POST /v1/loans.
//
// @Summary      Borrow a book
// @Tags         loans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      borrowRequest  true  "Book to borrow"
// @Success      201   {object}  loanResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/loans [post]
func (h *LoanHandler) Borrow(c echo.Context) error {
	var req borrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	userID, _, err := ctxUser(c)
	if err != nil {
		metrics.LoanRejectionsTotal.WithLabelValues("no_session").Inc()
		return err
	}

	record, err := h.service.Borrow(c.Request().Context(), ports.BorrowInput{
		BookID: req.BookID,
		UserID: userID,
	})
	if err != nil {
		countRejection(err)
		return err
	}

	metrics.LoansCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toLoanResponse(record))
}

// Return handles POST /v1/loans/:id/return.
//
// @Summary      Return a borrowed book
// @Tags         loans
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Borrow record id"
// @Success      200  {object}  loanResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/loans/{id}/return [post]
func (h *LoanHandler) Return(c echo.Context) error {
	if _, _, err := ctxUser(c); err != nil {
		return err
	}

	record, err := h.service.Return(c.Request().Context(), c.Param("id"))
	if err != nil {
		countRejection(err)
		return err
	}

	metrics.LoansReturnedTotal.Inc()
	return c.JSON(http.StatusOK, toLoanResponse(record))
}

// MyLoans handles GET /v1/loans/me.
//
// @Summary      List the session user's active loans
// @Tags         loans
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  myLoansResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/loans/me [get]
func (h *LoanHandler) MyLoans(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	loans, err := h.service.LoansForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, myLoansResponse{Data: loans, Total: len(loans)})
}

// countRejection tags the rejection counter with the reason the lifecycle
// engine gave. Unknown errors are left for the error handler to log.
func countRejection(err error) {
	switch {
	case errors.Is(err, domain.ErrNoSession):
		metrics.LoanRejectionsTotal.WithLabelValues("no_session").Inc()
	case errors.Is(err, domain.ErrBookNotFound):
		metrics.LoanRejectionsTotal.WithLabelValues("book_not_found").Inc()
	case errors.Is(err, domain.ErrBookUnavailable):
		metrics.LoanRejectionsTotal.WithLabelValues("book_unavailable").Inc()
	case errors.Is(err, domain.ErrRecordNotFound):
		metrics.LoanRejectionsTotal.WithLabelValues("record_not_found").Inc()
	}
}
