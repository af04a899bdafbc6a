package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/libraryhub/catalog-api/internal/api/metrics"
	"github.com/libraryhub/catalog-api/internal/core/domain"
	"github.com/libraryhub/catalog-api/internal/core/ports"
)

type stubLoanService struct {
	borrowFn       func(ctx context.Context, input ports.BorrowInput) (*domain.BorrowRecord, error)
	returnFn       func(ctx context.Context, recordID string) (*domain.BorrowRecord, error)
	loansForUserFn func(ctx context.Context, userID string) ([]ports.Loan, error)
}

func (s *stubLoanService) Borrow(ctx context.Context, input ports.BorrowInput) (*domain.BorrowRecord, error) {
	return s.borrowFn(ctx, input)
}

func (s *stubLoanService) Return(ctx context.Context, recordID string) (*domain.BorrowRecord, error) {
	return s.returnFn(ctx, recordID)
}

func (s *stubLoanService) LoansForUser(ctx context.Context, userID string) ([]ports.Loan, error) {
	return s.loansForUserFn(ctx, userID)
}

func sessionContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID, role string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("role", role)
	return c
}

func TestLoanHandler_Borrow_Success(t *testing.T) {
	e := newEcho()
	now := time.Now().UTC()
	stub := &stubLoanService{
		borrowFn: func(ctx context.Context, input ports.BorrowInput) (*domain.BorrowRecord, error) {
			if input.BookID != "1" || input.UserID != "u-1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.BorrowRecord{
				ID:         "rec-1",
				UserID:     input.UserID,
				BookID:     input.BookID,
				BorrowDate: now,
				DueDate:    now.Add(domain.LoanPeriod),
			}, nil
		},
	}
	handler := NewLoanHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/loans", strings.NewReader(`{"book_id":"1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := sessionContext(e, req, rec, "u-1", domain.RoleMember)

	created := testutil.ToFloat64(metrics.LoansCreatedTotal)
	if err := handler.Borrow(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got := testutil.ToFloat64(metrics.LoansCreatedTotal) - created; got != 1 {
		t.Fatalf("loans created counter moved by %v, want 1", got)
	}

	var resp loanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "rec-1" || resp.BookID != "1" || resp.ReturnDate != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestLoanHandler_Borrow_NoSessionClaims(t *testing.T) {
	e := newEcho()
	handler := NewLoanHandler(&stubLoanService{
		borrowFn: func(context.Context, ports.BorrowInput) (*domain.BorrowRecord, error) {
			t.Fatal("service must not be called without session claims")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/loans", strings.NewReader(`{"book_id":"1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Borrow(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestLoanHandler_Borrow_MissingBookID(t *testing.T) {
	e := newEcho()
	handler := NewLoanHandler(&stubLoanService{
		borrowFn: func(context.Context, ports.BorrowInput) (*domain.BorrowRecord, error) {
			t.Fatal("service must not be called on validation failure")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/loans", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := sessionContext(e, req, rec, "u-1", domain.RoleMember)

	err := handler.Borrow(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestLoanHandler_Borrow_Unavailable(t *testing.T) {
	e := newEcho()
	handler := NewLoanHandler(&stubLoanService{
		borrowFn: func(context.Context, ports.BorrowInput) (*domain.BorrowRecord, error) {
			return nil, domain.ErrBookUnavailable
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/loans", strings.NewReader(`{"book_id":"3"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := sessionContext(e, req, rec, "u-1", domain.RoleMember)

	// The domain error is passed through untouched for the central error
	// handler to map; the handler counts the rejection by reason.
	rejected := testutil.ToFloat64(metrics.LoanRejectionsTotal.WithLabelValues("book_unavailable"))
	err := handler.Borrow(c)
	if !errors.Is(err, domain.ErrBookUnavailable) {
		t.Fatalf("expected ErrBookUnavailable, got %v", err)
	}
	if got := testutil.ToFloat64(metrics.LoanRejectionsTotal.WithLabelValues("book_unavailable")) - rejected; got != 1 {
		t.Fatalf("rejection counter moved by %v, want 1", got)
	}
}

func TestLoanHandler_Return_Success(t *testing.T) {
	e := newEcho()
	now := time.Now().UTC()
	returned := now.Add(time.Hour)
	handler := NewLoanHandler(&stubLoanService{
		returnFn: func(ctx context.Context, recordID string) (*domain.BorrowRecord, error) {
			if recordID != "rec-1" {
				t.Fatalf("unexpected record id: %s", recordID)
			}
			return &domain.BorrowRecord{
				ID:         recordID,
				UserID:     "u-1",
				BookID:     "1",
				BorrowDate: now,
				DueDate:    now.Add(domain.LoanPeriod),
				ReturnDate: &returned,
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/loans/rec-1/return", nil)
	rec := httptest.NewRecorder()
	c := sessionContext(e, req, rec, "u-1", domain.RoleMember)
	c.SetParamNames("id")
	c.SetParamValues("rec-1")

	if err := handler.Return(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ReturnDate == nil {
		t.Fatal("expected a return date on a closed record")
	}
}

func TestLoanHandler_Return_NotFound(t *testing.T) {
	e := newEcho()
	handler := NewLoanHandler(&stubLoanService{
		returnFn: func(context.Context, string) (*domain.BorrowRecord, error) {
			return nil, domain.ErrRecordNotFound
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/loans/nope/return", nil)
	rec := httptest.NewRecorder()
	c := sessionContext(e, req, rec, "u-1", domain.RoleMember)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	if err := handler.Return(c); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestLoanHandler_MyLoans(t *testing.T) {
	e := newEcho()
	handler := NewLoanHandler(&stubLoanService{
		loansForUserFn: func(ctx context.Context, userID string) ([]ports.Loan, error) {
			if userID != "u-1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return []ports.Loan{
				{
					Record: domain.BorrowRecord{ID: "rec-1", UserID: userID, BookID: "1"},
					Book:   domain.Book{ID: "1", Title: "Dune"},
				},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/loans/me", nil)
	rec := httptest.NewRecorder()
	c := sessionContext(e, req, rec, "u-1", domain.RoleMember)

	if err := handler.MyLoans(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp myLoansResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total != 1 || len(resp.Data) != 1 {
		t.Fatalf("expected one loan, got %+v", resp)
	}
	if resp.Data[0].Book.Title != "Dune" {
		t.Fatalf("expected joined book, got %+v", resp.Data[0])
	}
}
