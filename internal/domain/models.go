package domain

// Book is a single catalog record. JSON names match the storefront client's
// wire shape; db tags match the books table.
type Book struct {
	ID             int64   `db:"id" json:"bookId"`
	Title          string  `db:"title" json:"title"`
	Author         string  `db:"author" json:"author"`
	Publisher      string  `db:"publisher" json:"publisher"`
	ISBN           string  `db:"isbn" json:"isbn"`
	Category       string  `db:"category" json:"category"`
	Classification string  `db:"classification" json:"classification"`
	PageCount      int     `db:"page_count" json:"pageCount"`
	Price          float64 `db:"price" json:"price"`
}

// DefaultClassification is applied when a draft omits the field.
const DefaultClassification = "Unclassified"

// BookPage is one page of a filtered/sorted catalog listing. TotalBooks is
// the size of the filtered set before pagination.
type BookPage struct {
	TotalBooks int    `json:"totalBooks"`
	Books      []Book `json:"books"`
}
