package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed demo catalog if DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS books(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  author TEXT NOT NULL,
  publisher TEXT NOT NULL,
  isbn TEXT NOT NULL,
  category TEXT NOT NULL,
  classification TEXT NOT NULL DEFAULT 'Unclassified',
  page_count INTEGER NOT NULL,
  price NUMERIC NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_books_category ON books(category);
CREATE INDEX IF NOT EXISTS idx_books_title    ON books(LOWER(title));
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM books`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo books")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO books(title,author,publisher,isbn,category,classification,page_count,price) VALUES
	  ('Pride and Prejudice','Jane Austen','T. Egerton','978-0141439518','Classic','Fiction',432,9.99),
	  ('The Great Gatsby','F. Scott Fitzgerald','Scribner','978-0743273565','Classic','Fiction',180,10.99),
	  ('Dune','Frank Herbert','Chilton Books','978-0441172719','Science Fiction','Fiction',412,12.50),
	  ('The Hobbit','J.R.R. Tolkien','Allen & Unwin','978-0547928227','Fantasy','Fiction',310,14.95),
	  ('Sapiens','Yuval Noah Harari','Harvill Secker','978-0062316097','History','Nonfiction',443,18.99),
	  ('Clean Code','Robert C. Martin','Prentice Hall','978-0132350884','Technology','Nonfiction',464,39.99),
	  ('The Name of the Rose','Umberto Eco','Bompiani','978-0156001311','Mystery','Fiction',536,15.95),
	  ('Persuasion','Jane Austen','John Murray','978-0141439686','Classic','Fiction',249,8.99)`)

	return tx.Commit()
}
