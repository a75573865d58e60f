package cart

import "sync"

// Store keeps one Cart per browser session id. Carts are process-local and
// vanish on restart. The mutex guards the map only; each cart is touched by
// a single session's requests.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: map[string]*Cart{}}
}

// Get returns the session's cart, creating an empty one on first use.
func (s *Store) Get(sid string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sid]
	if !ok {
		c = New()
		s.carts[sid] = c
	}
	return c
}

// Drop discards a session's cart.
func (s *Store) Drop(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sid)
}
