package agentapi

import (
	"sync"

	"github.com/jcmexdev/voicecart/internal/coffee"
	"github.com/jcmexdev/voicecart/internal/grocery/cart"
	"github.com/jcmexdev/voicecart/internal/grocery/catalog"
)

// Sessions maps conversation session ids to their per-session state. Each
// cart or intake is only ever touched by its own conversation, but sessions
// are created and dropped from the HTTP dispatch loop, so the registry itself
// is locked.
type Sessions struct {
	resolver  *catalog.Resolver
	ordersDir string

	mu      sync.Mutex
	carts   map[string]*cart.Cart
	intakes map[string]*coffee.Intake
}

// NewSessions returns an empty registry. ordersDir is where finished coffee
// orders are written.
func NewSessions(resolver *catalog.Resolver, ordersDir string) *Sessions {
	return &Sessions{
		resolver:  resolver,
		ordersDir: ordersDir,
		carts:     make(map[string]*cart.Cart),
		intakes:   make(map[string]*coffee.Intake),
	}
}

// Cart returns the session's cart, creating an empty one on first use.
func (s *Sessions) Cart(sessionID string) *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		c = cart.New(s.resolver)
		s.carts[sessionID] = c
	}
	return c
}

// Intake returns the session's coffee intake, creating one on first use.
func (s *Sessions) Intake(sessionID string) *coffee.Intake {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.intakes[sessionID]
	if !ok {
		i = coffee.NewIntake(s.ordersDir)
		s.intakes[sessionID] = i
	}
	return i
}

// Drop discards all state for the session. Called when the conversation ends.
func (s *Sessions) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	delete(s.intakes, sessionID)
}
