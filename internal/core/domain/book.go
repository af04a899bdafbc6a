package domain

import "errors"

// BookStatus represents the lifecycle state of a catalog book.
type BookStatus string

const (
	StatusAvailable BookStatus = "available"
	StatusBorrowed  BookStatus = "borrowed"
)

// validTransitions defines the allowed state machine transitions.
// A book alternates between exactly two states for its whole life.
var validTransitions = map[BookStatus][]BookStatus{
	StatusAvailable: {StatusBorrowed},
	StatusBorrowed:  {StatusAvailable},
}

var ErrBookNotFound = errors.New("book not found")
var ErrBookUnavailable = errors.New("book is already on loan")
var ErrDuplicateBook = errors.New("book already exists")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s BookStatus) CanTransitionTo(next BookStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Book is a catalog entry. Status is never written directly by callers;
// it only changes as a side effect of the loan lifecycle.
type Book struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	ISBN          string     `json:"isbn"`
	Category      string     `json:"category"`
	Summary       string     `json:"summary"`
	Status        BookStatus `json:"status"`
	CoverURL      string     `json:"cover_url"`
	PublishedYear int        `json:"published_year"`
}

// Available reports whether the book can currently be borrowed.
func (b *Book) Available() bool {
	return b.Status == StatusAvailable
}
