package cartstore

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/session"
)

// Manager hands out one Store per customer. Cart state is process-local:
// two storefront instances (or browser tabs talking to different
// instances) may hold divergent views of the same server cart, and the
// server stays authoritative on every mutation.
type Manager struct {
	carts    CartAPI
	payments PaymentAPI
	sessions session.Provider
	logger   *zap.Logger

	mu     sync.Mutex
	stores map[int64]*Store
}

func NewManager(carts CartAPI, payments PaymentAPI, sessions session.Provider, logger *zap.Logger) *Manager {
	return &Manager{
		carts:    carts,
		payments: payments,
		sessions: sessions,
		logger:   logger,
		stores:   make(map[int64]*Store),
	}
}

// For returns the store holding customerID's cart state, creating it on
// first use.
func (m *Manager) For(customerID int64) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[customerID]; ok {
		return s
	}
	s := New(m.carts, m.payments, m.sessions, m.logger)
	m.stores[customerID] = s
	return s
}

// Evict drops a customer's store, e.g. on logout.
func (m *Manager) Evict(customerID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, customerID)
}
