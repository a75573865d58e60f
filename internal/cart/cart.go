// Package cart holds the in-memory shopping cart: a pure state machine over
// book-id -> quantity lines. Carts live for one browser session only and are
// never persisted.
package cart

import "bookstore/internal/domain"

// Line is one cart entry. Book is a snapshot taken when the line was added;
// it is never re-fetched, so a later price change does not affect the cart.
type Line struct {
	Book     domain.Book
	Quantity int
}

// Total is the line's price*quantity.
func (l Line) Total() float64 { return l.Book.Price * float64(l.Quantity) }

// Cart maps book ids to lines, preserving insertion order for rendering.
// At most one line exists per book id and quantities are always >= 1.
// A Cart is not safe for concurrent use; each session owns exactly one.
type Cart struct {
	lines map[int64]*Line
	order []int64

	// LastViewedPage is the catalog page to return to from the cart view.
	LastViewedPage int
}

func New() *Cart {
	return &Cart{lines: map[int64]*Line{}, LastViewedPage: 1}
}

// Add inserts a line with quantity 1, or increments the existing line for
// the same book id. Deliberately not idempotent: adding twice counts twice.
func (c *Cart) Add(b domain.Book) {
	if l, ok := c.lines[b.ID]; ok {
		l.Quantity++
		return
	}
	c.lines[b.ID] = &Line{Book: b, Quantity: 1}
	c.order = append(c.order, b.ID)
}

// UpdateQuantity sets a line's quantity outright. A quantity of zero or
// below removes the line. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(bookID int64, quantity int) {
	if quantity <= 0 {
		c.Remove(bookID)
		return
	}
	if l, ok := c.lines[bookID]; ok {
		l.Quantity = quantity
	}
}

// Remove deletes the line for bookID if present.
func (c *Cart) Remove(bookID int64) {
	if _, ok := c.lines[bookID]; !ok {
		return
	}
	delete(c.lines, bookID)
	for i, id := range c.order {
		if id == bookID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = map[int64]*Line{}
	c.order = nil
}

// Lines returns the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// ItemCount is the sum of all line quantities, recomputed on every call.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Subtotal is the sum of price*quantity over all lines, recomputed on every
// call.
func (c *Cart) Subtotal() float64 {
	t := 0.0
	for _, l := range c.lines {
		t += l.Book.Price * float64(l.Quantity)
	}
	return t
}

// Quantity reports the quantity for a book id, zero if absent.
func (c *Cart) Quantity(bookID int64) int {
	if l, ok := c.lines[bookID]; ok {
		return l.Quantity
	}
	return 0
}
