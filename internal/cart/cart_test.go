package cart_test

import (
	"testing"

	"bookstore/internal/cart"
	"bookstore/internal/domain"
)

var bookA = domain.Book{ID: 1, Title: "Pride and Prejudice", Author: "Jane Austen", Price: 9.99}
var bookB = domain.Book{ID: 2, Title: "Dune", Author: "Frank Herbert", Price: 12.50}

func TestAddIncrementAndRemoveViaZero(t *testing.T) {
	c := cart.New()

	c.Add(bookA)
	if c.ItemCount() != 1 || c.Subtotal() != bookA.Price {
		t.Fatalf("after first add: count=%d subtotal=%.2f", c.ItemCount(), c.Subtotal())
	}

	// adding the same book again increments, it does not duplicate the line
	c.Add(bookA)
	if c.ItemCount() != 2 || c.Quantity(bookA.ID) != 2 || len(c.Lines()) != 1 {
		t.Fatalf("after second add: count=%d qty=%d lines=%d", c.ItemCount(), c.Quantity(bookA.ID), len(c.Lines()))
	}

	// setting quantity to zero removes the line
	c.UpdateQuantity(bookA.ID, 0)
	if c.ItemCount() != 0 || !c.Empty() {
		t.Fatalf("after zeroing: count=%d empty=%v", c.ItemCount(), c.Empty())
	}
}

func TestUpdateQuantityIsAbsolute(t *testing.T) {
	c := cart.New()
	c.Add(bookA)
	c.UpdateQuantity(bookA.ID, 5)
	if c.Quantity(bookA.ID) != 5 {
		t.Fatalf("want qty 5, got %d", c.Quantity(bookA.ID))
	}
	c.UpdateQuantity(bookA.ID, 3)
	if c.Quantity(bookA.ID) != 3 {
		t.Fatalf("set is absolute, not a delta: got %d", c.Quantity(bookA.ID))
	}
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	c := cart.New()
	c.Add(bookA)
	c.UpdateQuantity(99, 4)
	if c.ItemCount() != 1 || c.Quantity(99) != 0 {
		t.Fatalf("unknown id must be a no-op: count=%d", c.ItemCount())
	}
}

func TestRemoveAndClearIdempotent(t *testing.T) {
	c := cart.New()
	c.Add(bookA)
	c.Add(bookB)

	c.Remove(bookA.ID)
	c.Remove(bookA.ID) // second remove is a no-op
	if c.ItemCount() != 1 || c.Quantity(bookB.ID) != 1 {
		t.Fatalf("after removes: count=%d", c.ItemCount())
	}

	c.Clear()
	c.Clear()
	if !c.Empty() {
		t.Fatal("cart not empty after clear")
	}
}

func TestSubtotalRecomputed(t *testing.T) {
	c := cart.New()
	c.Add(bookA)
	c.Add(bookB)
	c.UpdateQuantity(bookB.ID, 2)

	want := bookA.Price + 2*bookB.Price
	if got := c.Subtotal(); got != want {
		t.Fatalf("subtotal: want %.2f, got %.2f", want, got)
	}
	if got := c.ItemCount(); got != 3 {
		t.Fatalf("item count: want 3, got %d", got)
	}
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	c := cart.New()
	c.Add(bookB)
	c.Add(bookA)
	c.Add(bookB)

	lines := c.Lines()
	if len(lines) != 2 || lines[0].Book.ID != bookB.ID || lines[1].Book.ID != bookA.ID {
		t.Fatalf("unexpected line order: %+v", lines)
	}
	if lines[0].Total() != 2*bookB.Price {
		t.Fatalf("line total: want %.2f, got %.2f", 2*bookB.Price, lines[0].Total())
	}
}

// The line keeps the snapshot taken at add time; later price changes to the
// caller's copy do not reach the cart.
func TestAddSnapshotsBook(t *testing.T) {
	c := cart.New()
	b := bookA
	c.Add(b)
	b.Price = 99.99
	if c.Subtotal() != bookA.Price {
		t.Fatalf("cart must keep the add-time snapshot, subtotal=%.2f", c.Subtotal())
	}
}

func TestStoreSessionIsolation(t *testing.T) {
	s := cart.NewStore()
	s.Get("sid-1").Add(bookA)

	if got := s.Get("sid-2").ItemCount(); got != 0 {
		t.Fatalf("sessions must not share carts: count=%d", got)
	}
	if got := s.Get("sid-1").ItemCount(); got != 1 {
		t.Fatalf("cart lost between lookups: count=%d", got)
	}

	s.Drop("sid-1")
	if got := s.Get("sid-1").ItemCount(); got != 0 {
		t.Fatalf("dropped cart must start fresh: count=%d", got)
	}
}
