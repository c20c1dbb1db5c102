package cart

import "sync"

// Store holds one cart per session token. Carts are created empty on first
// access and live for the session; persistence beyond the process is an
// external concern.
type Store struct {
	mu      sync.RWMutex
	carts   map[string]*Cart
	catalog DeliveryCatalog
}

func NewStore(catalog DeliveryCatalog) *Store {
	return &Store{
		carts:   make(map[string]*Cart),
		catalog: catalog,
	}
}

// Get returns the session's cart, creating an empty one on first access.
func (s *Store) Get(sessionToken string) *Cart {
	s.mu.RLock()
	c, ok := s.carts[sessionToken]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under the write lock.
	if c, ok := s.carts[sessionToken]; ok {
		return c
	}

	c = New(s.catalog)
	s.carts[sessionToken] = c
	return c
}
