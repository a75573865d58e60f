package services

import (
	"errors"
	"strings"

	"bookstore/internal/domain"
	"bookstore/internal/repos"
)

const (
	DefaultPageSize = 5
	MaxPageSize     = 100

	// CategoryAll is the sentinel the client sends for "no category filter".
	CategoryAll = "All"
)

type CatalogService struct {
	Books *repos.BookRepo
}

func NewCatalogService(books *repos.BookRepo) *CatalogService {
	return &CatalogService{Books: books}
}

// ParseSortField normalizes a raw sort field name. Unrecognized values fall
// back to title; "pages" is accepted as an alias for pagecount because the
// storefront client sends it.
func ParseSortField(s string) repos.SortField {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "author":
		return repos.SortAuthor
	case "publisher":
		return repos.SortPublisher
	case "isbn":
		return repos.SortISBN
	case "category":
		return repos.SortCategory
	case "classification":
		return repos.SortClassification
	case "pages", "pagecount":
		return repos.SortPageCount
	case "price":
		return repos.SortPrice
	default:
		return repos.SortTitle
	}
}

// ListBooks returns one catalog page plus the filtered total. Out-of-range
// pagination input is clamped rather than rejected: page < 1 becomes 1,
// pageSize < 1 becomes the default, pageSize above the cap is capped.
// sortOrder is ascending only for "asc" (case-insensitive).
func (s *CatalogService) ListBooks(page, pageSize int, sortField, sortOrder, category string) ([]domain.Book, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if category == CategoryAll {
		category = ""
	}

	q := repos.ListQuery{
		Page:     page,
		PageSize: pageSize,
		Sort:     ParseSortField(sortField),
		Asc:      strings.EqualFold(strings.TrimSpace(sortOrder), "asc"),
		Category: category,
	}
	books, total, err := s.Books.List(q)
	if err != nil {
		return nil, 0, &domain.StoreError{Op: "list books", Err: err}
	}
	return books, total, nil
}

func (s *CatalogService) ListCategories() ([]string, error) {
	cats, err := s.Books.Categories()
	if err != nil {
		return nil, &domain.StoreError{Op: "list categories", Err: err}
	}
	return cats, nil
}

func validateBook(b domain.Book) error {
	switch {
	case strings.TrimSpace(b.Title) == "":
		return domain.Invalid("title", "required")
	case strings.TrimSpace(b.Author) == "":
		return domain.Invalid("author", "required")
	case strings.TrimSpace(b.Publisher) == "":
		return domain.Invalid("publisher", "required")
	case strings.TrimSpace(b.ISBN) == "":
		return domain.Invalid("isbn", "required")
	case strings.TrimSpace(b.Category) == "":
		return domain.Invalid("category", "required")
	}
	return nil
}

// CreateBook stores a draft and returns the record with its assigned id.
// The draft must not carry an id of its own.
func (s *CatalogService) CreateBook(draft domain.Book) (domain.Book, error) {
	if draft.ID != 0 {
		return domain.Book{}, domain.Invalid("bookId", "must not be set on create")
	}
	if err := validateBook(draft); err != nil {
		return domain.Book{}, err
	}
	if strings.TrimSpace(draft.Classification) == "" {
		draft.Classification = domain.DefaultClassification
	}
	id, err := s.Books.Insert(draft)
	if err != nil {
		return domain.Book{}, &domain.StoreError{Op: "create book", Err: err}
	}
	draft.ID = id
	return draft, nil
}

func (s *CatalogService) GetBook(id int64) (domain.Book, error) {
	b, err := s.Books.Get(id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return b, &domain.StoreError{Op: "get book", Err: err}
	}
	return b, err
}

// UpdateBook fully replaces the record's fields. The body id must match the
// addressed id.
func (s *CatalogService) UpdateBook(id int64, b domain.Book) error {
	if b.ID != id {
		return domain.Invalid("bookId", "does not match the addressed id")
	}
	if err := validateBook(b); err != nil {
		return err
	}
	if strings.TrimSpace(b.Classification) == "" {
		b.Classification = domain.DefaultClassification
	}
	err := s.Books.Update(b)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return &domain.StoreError{Op: "update book", Err: err}
	}
	return err
}

func (s *CatalogService) DeleteBook(id int64) error {
	err := s.Books.Delete(id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return &domain.StoreError{Op: "delete book", Err: err}
	}
	return err
}
