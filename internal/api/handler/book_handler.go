package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/libraryhub/catalog-api/internal/core/ports"
)

// knownCategories is the fixed set the presentation renders as filter tabs,
// with the leading "All" pseudo-category.
var knownCategories = []string{"All", "Classic", "Sci-Fi", "Self-Help", "History", "Fiction", "Fantasy"}

// BookHandler handles catalog reads and the admin add-book surface.
type BookHandler struct {
	service ports.CatalogService
}

func NewBookHandler(service ports.CatalogService) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /v1/books with optional q and category filters.
//
// @Summary      List or search the catalog
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        q         query     string  false  "Substring of title or author, case-insensitive"
// @Param        category  query     string  false  "Exact category; All or empty disables the filter"
// @Success      200       {object}  listBooksResponse
// @Failure      401       {object}  errorResponse
// @Router       /v1/books [get]
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.service.SearchBooks(c.Request().Context(), ports.SearchInput{
		Query:    c.QueryParam("q"),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listBooksResponse{
		Data:       books,
		Categories: knownCategories,
		Total:      len(books),
	})
}

// Get handles GET /v1/books/:id.
//
// @Summary      Get a book by id
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Book id"
// @Success      200  {object}  domain.Book
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	book, err := h.service.GetBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, book)
}

// Create handles POST /v1/books. Admin only.
//
// @Summary      Add a book to the catalog
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addBookRequest  true  "Book details"
// @Success      201   {object}  domain.Book
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/books [post]
func (h *BookHandler) Create(c echo.Context) error {
	var req addBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	book, err := h.service.AddBook(c.Request().Context(), ports.AddBookInput{
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		Category:      req.Category,
		Summary:       req.Summary,
		CoverURL:      req.CoverURL,
		PublishedYear: req.PublishedYear,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, book)
}
