package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/cadburyboy21/billing-system-frontend/models"
)

// View is a read-only snapshot of one session's cart
type View struct {
	Lines []models.CartLine
	Total decimal.Decimal
}

// SessionStore owns the cart of every active session. Each browser session
// mutates only its own cart, but handlers run concurrently, so all access goes
// through the store's lock. The store also tracks which sessions have a checkout
// in flight so a double-clicked checkout cannot submit twice.
type SessionStore struct {
	mu         sync.RWMutex
	carts      map[string]*Cart
	processing map[string]bool
}

// NewSessionStore creates an empty SessionStore
func NewSessionStore() *SessionStore {
	return &SessionStore{
		carts:      make(map[string]*Cart),
		processing: make(map[string]bool),
	}
}

// cartFor returns the session's cart, creating an empty one on first use.
// Callers must hold the write lock.
func (s *SessionStore) cartFor(sessionID string) *Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = &Cart{}
		s.carts[sessionID] = c
	}
	return c
}

// Add puts one unit of a menu item into the session's cart
func (s *SessionStore) Add(sessionID string, item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartFor(sessionID).Add(item)
}

// UpdateQuantity sets a line's quantity in the session's cart
func (s *SessionStore) UpdateQuantity(sessionID, menuItemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartFor(sessionID).UpdateQuantity(menuItemID, quantity)
}

// Remove deletes a line from the session's cart
func (s *SessionStore) Remove(sessionID, menuItemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartFor(sessionID).Remove(menuItemID)
}

// Clear empties the session's cart
func (s *SessionStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartFor(sessionID).Clear()
}

// Snapshot returns the session's cart lines and total for rendering
func (s *SessionStore) Snapshot(sessionID string) View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[sessionID]
	if !ok {
		return View{Total: decimal.Zero}
	}
	return View{Lines: c.Lines(), Total: c.Total()}
}

// OrderItems builds the checkout payload from the session's cart
func (s *SessionStore) OrderItems(sessionID string) []models.OrderRequestItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[sessionID]
	if !ok {
		return nil
	}
	return c.OrderItems()
}

// BeginCheckout marks the session as having a checkout in flight. It returns
// false if one is already in flight, in which case the caller must not submit.
func (s *SessionStore) BeginCheckout(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.processing[sessionID] {
		return false
	}
	s.processing[sessionID] = true
	return true
}

// EndCheckout clears the session's in-flight mark so a later attempt can run
func (s *SessionStore) EndCheckout(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.processing, sessionID)
}
