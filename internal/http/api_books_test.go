package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"bookstore/internal/domain"
	"bookstore/internal/http/handlers"
	"bookstore/internal/repos"
)

// Minimal app with the JSON catalog API over a seeded in-memory store.
func newAPIApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	deps := handlers.NewDeps(db)

	app := fiber.New()
	app.Use(requestid.New())
	api := app.Group("/api/books")
	api.Get("/", deps.BookHandler.List)
	api.Get("/categories", deps.BookHandler.Categories)
	api.Get("/:id", deps.BookHandler.Get)
	api.Post("/", deps.BookHandler.Create)
	api.Put("/:id", deps.BookHandler.Update)
	api.Delete("/:id", deps.BookHandler.Delete)
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatal(err)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp.StatusCode
}

func sendJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestListDefaults(t *testing.T) {
	app := newAPIApp(t)

	var page domain.BookPage
	if code := getJSON(t, app, "/api/books", &page); code != http.StatusOK {
		t.Fatalf("want 200, got %d", code)
	}
	// seeded catalog has 8 books; default page is the first 5 by title asc
	if page.TotalBooks != 8 || len(page.Books) != 5 {
		t.Fatalf("defaults: totalBooks=%d len=%d", page.TotalBooks, len(page.Books))
	}
	for i := 1; i < len(page.Books); i++ {
		if page.Books[i-1].Title > page.Books[i].Title {
			t.Fatalf("not sorted by title asc: %q > %q", page.Books[i-1].Title, page.Books[i].Title)
		}
	}
}

func TestListPastEndKeepsTotal(t *testing.T) {
	app := newAPIApp(t)

	var page domain.BookPage
	getJSON(t, app, "/api/books?page=99&pageSize=5", &page)
	if page.TotalBooks != 8 || len(page.Books) != 0 {
		t.Fatalf("past end: totalBooks=%d len=%d", page.TotalBooks, len(page.Books))
	}
}

func TestListCategoryFilterAndSort(t *testing.T) {
	app := newAPIApp(t)

	var page domain.BookPage
	getJSON(t, app, "/api/books?category=Classic&sortField=price&sortOrder=desc&pageSize=10", &page)
	if page.TotalBooks != 3 {
		t.Fatalf("want 3 classics, got %d", page.TotalBooks)
	}
	for i, b := range page.Books {
		if b.Category != "Classic" {
			t.Fatalf("filter leaked %q", b.Category)
		}
		if i > 0 && page.Books[i-1].Price < b.Price {
			t.Fatalf("not sorted by price desc")
		}
	}

	// unrecognized sortField falls back to title, not an error
	if code := getJSON(t, app, "/api/books?sortField=bogus", &page); code != http.StatusOK {
		t.Fatalf("bogus sortField: want 200, got %d", code)
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	app := newAPIApp(t)

	var cats []string
	if code := getJSON(t, app, "/api/books/categories", &cats); code != http.StatusOK {
		t.Fatalf("want 200, got %d", code)
	}
	if len(cats) == 0 {
		t.Fatal("no categories")
	}
	seen := map[string]bool{}
	for i, c := range cats {
		if seen[c] {
			t.Fatalf("duplicate category %q", c)
		}
		seen[c] = true
		if i > 0 && cats[i-1] > c {
			t.Fatalf("categories not sorted: %v", cats)
		}
	}
}

func TestCreateGetDeleteFlow(t *testing.T) {
	app := newAPIApp(t)

	draft := domain.Book{
		Title: "Emma", Author: "Jane Austen", Publisher: "John Murray",
		ISBN: "978-0141439587", Category: "Classic", PageCount: 474, Price: 11.50,
	}
	resp := sendJSON(t, app, "POST", "/api/books", draft)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: want 201, got %d", resp.StatusCode)
	}
	var created domain.Book
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.ID == 0 {
		t.Fatal("create did not assign an id")
	}
	if created.Classification != domain.DefaultClassification {
		t.Fatalf("classification default missing: %q", created.Classification)
	}
	wantLoc := fmt.Sprintf("/api/books/%d", created.ID)
	if loc := resp.Header.Get("Location"); loc != wantLoc {
		t.Fatalf("Location: want %s, got %s", wantLoc, loc)
	}

	var got domain.Book
	if code := getJSON(t, app, wantLoc, &got); code != http.StatusOK {
		t.Fatalf("get created: want 200, got %d", code)
	}
	if got != created {
		t.Fatalf("round-trip mismatch:\n  created %+v\n  got     %+v", created, got)
	}

	delReq := httptest.NewRequest("DELETE", wantLoc, nil)
	delResp, err := app.Test(delReq)
	if err != nil {
		t.Fatal(err)
	}
	if delResp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: want 204, got %d", delResp.StatusCode)
	}
	if code := getJSON(t, app, wantLoc, nil); code != http.StatusNotFound {
		t.Fatalf("get after delete: want 404, got %d", code)
	}
}

func TestCreateMissingFieldRejected(t *testing.T) {
	app := newAPIApp(t)

	draft := domain.Book{Author: "Nobody", Publisher: "P", ISBN: "I", Category: "C", PageCount: 1, Price: 1}
	resp := sendJSON(t, app, "POST", "/api/books", draft)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "title") {
		t.Fatalf("error body should name the field: %s", body)
	}
}

func TestUpdateStatusCodes(t *testing.T) {
	app := newAPIApp(t)

	var existing domain.Book
	if code := getJSON(t, app, "/api/books/1", &existing); code != http.StatusOK {
		t.Fatalf("seed book 1 missing: %d", code)
	}

	// body id differs from path id
	mismatch := existing
	mismatch.ID = existing.ID + 1
	if resp := sendJSON(t, app, "PUT", "/api/books/1", mismatch); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("id mismatch: want 400, got %d", resp.StatusCode)
	}

	// no record with that id
	ghost := existing
	ghost.ID = 9999
	if resp := sendJSON(t, app, "PUT", "/api/books/9999", ghost); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing id: want 404, got %d", resp.StatusCode)
	}

	// a clean full replace
	existing.Price = 1.23
	resp := sendJSON(t, app, "PUT", fmt.Sprintf("/api/books/%d", existing.ID), existing)
	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("update: want 204, got %d body=%s", resp.StatusCode, body)
	}
	var got domain.Book
	getJSON(t, app, fmt.Sprintf("/api/books/%d", existing.ID), &got)
	if got.Price != 1.23 {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestDeleteMissingIs404(t *testing.T) {
	app := newAPIApp(t)
	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/books/9999", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}
