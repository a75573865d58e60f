package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"bookstore/internal/domain"
	applog "bookstore/internal/log"
	"bookstore/internal/services"
	"bookstore/internal/validate"
)

// BookHandler is the JSON catalog API under /api/books.
type BookHandler struct {
	Catalog *services.CatalogService
}

// List handles GET /api/books with page, pageSize, sortField, sortOrder and
// category query parameters. Defaults mirror the storefront client:
// page=1, pageSize=5, sortField=Title ascending, no category filter.
func (h *BookHandler) List(c *fiber.Ctx) error {
	page := validate.Page(c.Query("page", "1"))
	pageSize := validate.PageSize(c.Query("pageSize"), services.DefaultPageSize)
	sortField := c.Query("sortField", "Title")
	sortOrder := c.Query("sortOrder", "asc")
	category := c.Query("category")

	books, total, err := h.Catalog.ListBooks(page, pageSize, sortField, sortOrder, category)
	if err != nil {
		return apiError(c, "books.list", err)
	}
	return c.JSON(domain.BookPage{TotalBooks: total, Books: books})
}

// Categories handles GET /api/books/categories.
func (h *BookHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		return apiError(c, "books.categories", err)
	}
	return c.JSON(cats)
}

// Get handles GET /api/books/:id.
func (h *BookHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.BookID(c.Params("id"))
	if !ok {
		return apiError(c, "books.get", domain.ErrNotFound)
	}
	b, err := h.Catalog.GetBook(id)
	if err != nil {
		return apiError(c, "books.get", err)
	}
	return c.JSON(b)
}

// Create handles POST /api/books. The body is a Book draft without an id;
// the response carries the assigned id and a Location header.
func (h *BookHandler) Create(c *fiber.Ctx) error {
	var draft domain.Book
	if err := c.BodyParser(&draft); err != nil {
		return apiError(c, "books.create", domain.Invalid("body", "malformed JSON"))
	}
	b, err := h.Catalog.CreateBook(draft)
	if err != nil {
		return apiError(c, "books.create", err)
	}
	applog.Audit(c, "books.create", map[string]any{"id": b.ID, "title": b.Title})
	c.Set("Location", fmt.Sprintf("/api/books/%d", b.ID))
	return c.Status(fiber.StatusCreated).JSON(b)
}

// Update handles PUT /api/books/:id. The body id must equal the path id and
// the record's fields are fully replaced.
func (h *BookHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.BookID(c.Params("id"))
	if !ok {
		return apiError(c, "books.update", domain.ErrNotFound)
	}
	var b domain.Book
	if err := c.BodyParser(&b); err != nil {
		return apiError(c, "books.update", domain.Invalid("body", "malformed JSON"))
	}
	if err := h.Catalog.UpdateBook(id, b); err != nil {
		return apiError(c, "books.update", err)
	}
	applog.Audit(c, "books.update", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete handles DELETE /api/books/:id.
func (h *BookHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.BookID(c.Params("id"))
	if !ok {
		return apiError(c, "books.delete", domain.ErrNotFound)
	}
	if err := h.Catalog.DeleteBook(id); err != nil {
		return apiError(c, "books.delete", err)
	}
	applog.Audit(c, "books.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
