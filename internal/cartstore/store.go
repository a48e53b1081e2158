// Package cartstore is the single source of truth for the current
// customer's cart as the UI observes it. It coordinates read-after-write
// consistency: every mutation installs the backend's returned cart
// instead of applying local deltas, and overlapping loads resolve by
// last-issued-wins so a slow stale response never overwrites fresher
// state.
package cartstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/backend"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/domain"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/session"
)

// CartAPI is the slice of the backend cart client the store needs.
type CartAPI interface {
	FetchByCustomer(ctx context.Context, customerID int64) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID, productID int64, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, cartID, productID int64) (*domain.Cart, error)
	Checkout(ctx context.Context, cartID int64) (*domain.Order, error)
}

// PaymentAPI records a payment after checkout, fire-and-forget.
type PaymentAPI interface {
	Record(ctx context.Context, p domain.Payment) error
}

type Store struct {
	carts    CartAPI
	payments PaymentAPI
	sessions session.Provider
	logger   *zap.Logger

	mu      sync.Mutex
	cur     *domain.Cart
	issued  uint64 // sequence handed to the most recently issued load
	applied uint64 // sequence of the response currently installed

	adding      bool
	removing    bool
	checkingOut bool
}

func New(carts CartAPI, payments PaymentAPI, sessions session.Provider, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{carts: carts, payments: payments, sessions: sessions, logger: logger}
}

// Load fetches the current customer's cart (creating one on first access)
// and installs it. Safe to call repeatedly and concurrently: duplicate
// overlapping loads are normal on auth transitions, and a response from a
// load superseded by a later-issued load's completion is discarded.
func (s *Store) Load(ctx context.Context) (*domain.Cart, error) {
	sess, err := s.currentSession(ctx, "store.load")
	if err != nil {
		return nil, err
	}
	ctx = session.WithSession(ctx, sess)

	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.mu.Unlock()

	cart, err := s.carts.FetchByCustomer(ctx, sess.Customer.ID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		// A later-issued load (or a mutation) already installed fresher
		// state; this response is stale.
		s.logger.Debug("discarding stale cart load", zap.Uint64("seq", seq), zap.Uint64("applied", s.applied))
		return s.cur, nil
	}
	s.applied = seq
	s.cur = cart
	return cart, nil
}

// AddItem adds quantity units of the product to the current cart. When no
// cart is loaded yet it loads (and thereby creates) one first; a mutation
// is never attempted against an absent cart.
func (s *Store) AddItem(ctx context.Context, product domain.Product, quantity int) (*domain.Cart, error) {
	const op = "store.addItem"

	if quantity <= 0 {
		return nil, backend.Errorf(backend.KindValidation, op, "quantity must be positive, got %d", quantity)
	}
	if product.ID == 0 {
		return nil, backend.Errorf(backend.KindValidation, op, "product has no identifier")
	}

	sess, err := s.currentSession(ctx, op)
	if err != nil {
		return nil, err
	}
	ctx = session.WithSession(ctx, sess)

	s.setFlag(&s.adding, true)
	defer s.setFlag(&s.adding, false)

	cartID := s.currentCartID()
	if cartID == 0 {
		cart, err := s.Load(ctx)
		if err != nil {
			return nil, err
		}
		// A superseded load resolves to whatever is installed, and a
		// checkout that landed in between leaves nothing installed.
		if cart == nil || cart.ID == 0 {
			return nil, backend.Errorf(backend.KindValidation, op, "no cart available")
		}
		cartID = cart.ID
	}

	cart, err := s.carts.AddItem(ctx, cartID, product.ID, quantity)
	if err != nil {
		return nil, err
	}
	s.install(cart)
	return cart, nil
}

// RemoveItem removes the product line from the current cart. Fails
// locally when no cart is loaded; no network call is made in that case.
func (s *Store) RemoveItem(ctx context.Context, productID int64) (*domain.Cart, error) {
	const op = "store.removeItem"

	cartID := s.currentCartID()
	if cartID == 0 {
		return nil, backend.Errorf(backend.KindValidation, op, "no cart loaded")
	}

	sess, err := s.currentSession(ctx, op)
	if err != nil {
		return nil, err
	}
	ctx = session.WithSession(ctx, sess)

	s.setFlag(&s.removing, true)
	defer s.setFlag(&s.removing, false)

	cart, err := s.carts.RemoveItem(ctx, cartID, productID)
	if err != nil {
		return nil, err
	}
	s.install(cart)
	return cart, nil
}

// Checkout converts the current cart into an order, records the payment
// (fire-and-forget; a payment-record failure never rolls the checkout
// back) and clears the held cart so the next Load opens a fresh one. On
// failure the held cart is left untouched.
func (s *Store) Checkout(ctx context.Context, paymentMethod string) (*domain.Order, error) {
	const op = "store.checkout"

	s.mu.Lock()
	cur := s.cur
	s.mu.Unlock()

	if cur == nil || cur.ID == 0 {
		return nil, backend.Errorf(backend.KindValidation, op, "no cart loaded")
	}
	if cur.Empty() {
		return nil, backend.Errorf(backend.KindValidation, op, "cart is empty")
	}

	sess, err := s.currentSession(ctx, op)
	if err != nil {
		return nil, err
	}
	ctx = session.WithSession(ctx, sess)

	s.setFlag(&s.checkingOut, true)
	defer s.setFlag(&s.checkingOut, false)

	order, err := s.carts.Checkout(ctx, cur.ID)
	if err != nil {
		return nil, err
	}

	// The cart is consumed; its id must not be mutated again.
	s.install(nil)

	if s.payments != nil && paymentMethod != "" {
		go s.recordPayment(sess, order, paymentMethod)
	}
	return order, nil
}

// Total sums the item subtotals of the held cart, rounded to two places.
// The locally recomputed value wins over any server-sent cart total.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	if s.cur == nil {
		return total
	}
	for _, it := range s.cur.Items {
		total = total.Add(it.Subtotal)
	}
	return total.Round(2)
}

// ItemCount sums the quantities of the held cart, 0 when absent.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur == nil {
		return 0
	}
	n := 0
	for _, it := range s.cur.Items {
		n += it.Quantity
	}
	return n
}

// Current returns the held cart, nil when none is loaded.
func (s *Store) Current() *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

func (s *Store) IsAdding() bool      { s.mu.Lock(); defer s.mu.Unlock(); return s.adding }
func (s *Store) IsRemoving() bool    { s.mu.Lock(); defer s.mu.Unlock(); return s.removing }
func (s *Store) IsCheckingOut() bool { s.mu.Lock(); defer s.mu.Unlock(); return s.checkingOut }

// install replaces the held cart with the backend's response and marks it
// as the freshest state, superseding any load still in flight.
func (s *Store) install(cart *domain.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	s.applied = s.issued
	s.cur = cart
}

func (s *Store) currentCartID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil {
		return 0
	}
	return s.cur.ID
}

func (s *Store) currentSession(ctx context.Context, op string) (*session.Session, error) {
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, backend.E(backend.KindUnauthorized, op, err)
		}
		return nil, backend.E(backend.KindUnknown, op, err)
	}
	if sess.Customer.ID == 0 {
		return nil, backend.Errorf(backend.KindUnauthorized, op, "session has no customer")
	}
	return sess, nil
}

func (s *Store) recordPayment(sess *session.Session, order *domain.Order, method string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ctx = session.WithSession(ctx, sess)

	err := s.payments.Record(ctx, domain.Payment{
		OrderID: order.ID,
		Method:  method,
		Amount:  order.Total,
		Status:  "Completado",
	})
	if err != nil {
		s.logger.Warn("payment record failed",
			zap.Int64("order_id", order.ID),
			zap.Error(err))
	}
}

func (s *Store) setFlag(flag *bool, v bool) {
	s.mu.Lock()
	*flag = v
	s.mu.Unlock()
}
