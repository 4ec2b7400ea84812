package session

import (
	"log"
	"sync"
	"time"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/cart"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/pkg/apperr"
)

type entry struct {
	cart     *cart.Cart
	lastSeen time.Time
}

// Store maps opaque session ids to carts. The map itself is guarded by a
// RWMutex; mutating a given cart is serialized by the cart's own mutex,
// never by a store-wide lock.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration

	stop chan struct{}
	once sync.Once
}

// NewStore builds a store whose carts expire after ttl of inactivity.
// ttl <= 0 disables expiry.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
}

// Create registers a fresh empty cart for the session. An existing cart
// for the same id is silently replaced: logging in again always restarts
// with an empty cart.
func (s *Store) Create(sessionID string) *cart.Cart {
	c := cart.New()
	s.mu.Lock()
	s.sessions[sessionID] = &entry{cart: c, lastSeen: time.Now()}
	s.mu.Unlock()
	return c
}

// Get looks up the session's cart and stamps its last access. An unknown
// id is a not-found error and creates nothing.
func (s *Store) Get(sessionID string) (*cart.Cart, error) {
	s.mu.RLock()
	e, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, apperr.New(apperr.NotFound, "session not found")
	}

	s.mu.Lock()
	e.lastSeen = time.Now()
	s.mu.Unlock()
	return e.cart, nil
}

// Remove is idempotent.
func (s *Store) Remove(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartJanitor evicts idle carts in the background until Stop is called.
func (s *Store) StartJanitor(interval time.Duration) {
	if s.ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := s.evictIdle(time.Now()); n > 0 {
					log.Printf("evicted %d idle session(s)", n)
				}
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *Store) Stop() {
	s.once.Do(func() { close(s.stop) })
}

func (s *Store) evictIdle(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}
