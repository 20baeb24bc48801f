package catalog

import (
	"fmt"
	"sync"
)

// Store is the ordered in-memory collection of listings. Most recently
// added products come first. All mutation happens on the UI event loop,
// but the store still carries a mutex so incidental readers (logging,
// one-shot CLI paths) are safe.
type Store struct {
	mu       sync.RWMutex
	products []Product
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// NewSeededStore creates a store pre-populated with the demo catalog.
func NewSeededStore() *Store {
	return &Store{products: Seed()}
}

// List returns a snapshot of the current listings, newest first.
func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len returns the number of listings.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Get returns the listing with the given id.
func (s *Store) Get(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Add prepends a listing. The id must be unique within the catalog.
func (s *Store) Add(p Product) error {
	if p.ID == "" {
		return fmt.Errorf("product id is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.products {
		if existing.ID == p.ID {
			return fmt.Errorf("product id %q already in catalog", p.ID)
		}
	}

	s.products = append([]Product{p}, s.products...)
	return nil
}

// Remove deletes the listing with the given id. Removing an absent id is
// a no-op; the boolean reports whether anything was removed so callers
// can log the miss without treating it as an error.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}
