package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"bookstore/internal/domain"
)

// SortField enumerates the sortable book columns. Values outside the enum
// never reach the repo; the service normalizes raw input first.
type SortField string

const (
	SortTitle          SortField = "title"
	SortAuthor         SortField = "author"
	SortPublisher      SortField = "publisher"
	SortISBN           SortField = "isbn"
	SortCategory       SortField = "category"
	SortClassification SortField = "classification"
	SortPageCount      SortField = "pagecount"
	SortPrice          SortField = "price"
)

// sortColumns is the static sort-field -> ORDER BY expression map.
// price is stored as NUMERIC; the CAST forces numeric ordering so that
// 9.99 sorts below 10.99 rather than after it lexically.
var sortColumns = map[SortField]string{
	SortTitle:          "title",
	SortAuthor:         "author",
	SortPublisher:      "publisher",
	SortISBN:           "isbn",
	SortCategory:       "category",
	SortClassification: "classification",
	SortPageCount:      "page_count",
	SortPrice:          "CAST(price AS REAL)",
}

// ListQuery describes one catalog page request after normalization:
// Page and PageSize are >= 1, Sort is a valid SortField, and an empty
// Category means no filter.
type ListQuery struct {
	Page     int
	PageSize int
	Sort     SortField
	Asc      bool
	Category string
}

type BookRepo struct{ db *sqlx.DB }

func NewBookRepo(db *sqlx.DB) *BookRepo { return &BookRepo{db: db} }

// List returns one page of the filtered, sorted catalog plus the total
// count of the filtered set before pagination. Ties on the sort column are
// broken by id so page slices are deterministic.
func (r *BookRepo) List(q ListQuery) ([]domain.Book, int, error) {
	where := `1=1`
	args := []any{}
	if q.Category != "" {
		where = `category = ?`
		args = append(args, q.Category)
	}

	var total int
	if err := r.db.Get(&total, `SELECT COUNT(*) FROM books WHERE `+where, args...); err != nil {
		return nil, 0, err
	}

	dir := "DESC"
	if q.Asc {
		dir = "ASC"
	}
	query := `
  SELECT id, title, author, publisher, isbn, category, classification, page_count, price
  FROM books
  WHERE ` + where + `
  ORDER BY ` + sortColumns[q.Sort] + ` ` + dir + `, id ASC
  LIMIT ? OFFSET ?`
	args = append(args, q.PageSize, (q.Page-1)*q.PageSize)

	out := []domain.Book{}
	if err := r.db.Select(&out, query, args...); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Categories returns the distinct category values in ascending lexical order.
func (r *BookRepo) Categories() ([]string, error) {
	out := []string{}
	err := r.db.Select(&out, `SELECT DISTINCT category FROM books ORDER BY category`)
	return out, err
}

func (r *BookRepo) Get(id int64) (domain.Book, error) {
	var b domain.Book
	err := r.db.Get(&b, `
  SELECT id, title, author, publisher, isbn, category, classification, page_count, price
  FROM books WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return b, domain.ErrNotFound
	}
	return b, err
}

// Insert stores a new book and returns its assigned id.
func (r *BookRepo) Insert(b domain.Book) (int64, error) {
	res, err := r.db.Exec(`
  INSERT INTO books(title,author,publisher,isbn,category,classification,page_count,price)
  VALUES(?,?,?,?,?,?,?,?)`,
		b.Title, b.Author, b.Publisher, b.ISBN, b.Category, b.Classification, b.PageCount, b.Price)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update fully replaces the record's fields. Returns domain.ErrNotFound
// when no row has b.ID.
func (r *BookRepo) Update(b domain.Book) error {
	res, err := r.db.Exec(`
  UPDATE books SET title=?, author=?, publisher=?, isbn=?, category=?,
    classification=?, page_count=?, price=?, updated_at=CURRENT_TIMESTAMP
  WHERE id=?`,
		b.Title, b.Author, b.Publisher, b.ISBN, b.Category, b.Classification, b.PageCount, b.Price, b.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM books WHERE id=?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
