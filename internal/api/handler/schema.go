package handler

import (
	"time"

	"github.com/libraryhub/catalog-api/internal/core/domain"
	"github.com/libraryhub/catalog-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// --- Catalog ---

type addBookRequest struct {
	Title         string `json:"title"          validate:"required"`
	Author        string `json:"author"         validate:"required"`
	ISBN          string `json:"isbn"           validate:"required"`
	Category      string `json:"category"       validate:"required"`
	Summary       string `json:"summary"`
	CoverURL      string `json:"cover_url"`
	PublishedYear int    `json:"published_year" validate:"required,gt=0"`
}

type listBooksResponse struct {
	Data       []domain.Book `json:"data"`
	Categories []string      `json:"categories"`
	Total      int           `json:"total"`
}

// --- Loans ---

type borrowRequest struct {
	BookID string `json:"book_id" validate:"required"`
}

type loanResponse struct {
	ID         string     `json:"id"`
	BookID     string     `json:"book_id"`
	UserID     string     `json:"user_id"`
	BorrowDate time.Time  `json:"borrow_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
}

type myLoansResponse struct {
	Data  []ports.Loan `json:"data"`
	Total int          `json:"total"`
}

func toLoanResponse(r *domain.BorrowRecord) loanResponse {
	return loanResponse{
		ID:         r.ID,
		BookID:     r.BookID,
		UserID:     r.UserID,
		BorrowDate: r.BorrowDate,
		DueDate:    r.DueDate,
		ReturnDate: r.ReturnDate,
	}
}

// --- Activity ---

type activityResponse struct {
	Data []domain.LoanActivity `json:"data"`
}
