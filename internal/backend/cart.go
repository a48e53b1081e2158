package backend

import (
	"context"
	"fmt"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/domain"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/normalize"
)

type CartClient struct{ c *Client }

func NewCartClient(c *Client) *CartClient { return &CartClient{c: c} }

// FetchByCustomer returns the customer's active cart, creating one when
// the backend has none. An absent cart is not an error: the customer's
// cart moves from absent to active on first access. A transient fetch
// failure triggers exactly one create attempt before the fetch failure
// surfaces.
func (cc *CartClient) FetchByCustomer(ctx context.Context, customerID int64) (*domain.Cart, error) {
	payload, err := cc.c.Get(ctx, fmt.Sprintf("/carts/customer/%d", customerID))
	if err != nil {
		if KindOf(err) == KindTransient {
			if cart, createErr := cc.Create(ctx, customerID); createErr == nil {
				return cart, nil
			}
		}
		return nil, err
	}

	if cartAbsent(payload) {
		return cc.Create(ctx, customerID)
	}

	cart := normalize.Cart(payload)
	if cart == nil || cart.ID == 0 {
		return cc.Create(ctx, customerID)
	}
	return cart, nil
}

// FetchByID looks a cart up directly.
func (cc *CartClient) FetchByID(ctx context.Context, cartID int64) (*domain.Cart, error) {
	const op = "cart.fetchById"

	payload, err := cc.c.Get(ctx, fmt.Sprintf("/carts/%d", cartID))
	if err != nil {
		return nil, err
	}
	cart := normalize.Cart(payload)
	if cart == nil || cart.ID == 0 {
		return nil, Errorf(KindNotFound, op, "cart %d not found", cartID)
	}
	return cart, nil
}

// Create opens a new active cart for the customer. Not idempotent;
// callers must not call it when a cart is known to exist.
func (cc *CartClient) Create(ctx context.Context, customerID int64) (*domain.Cart, error) {
	const op = "cart.create"

	payload, err := cc.c.Post(ctx, "/carts", map[string]any{
		"cliente_id": customerID,
		"estado":     domain.CartStateActive,
	})
	if err != nil {
		return nil, err
	}
	cart := normalize.Cart(payload)
	if cart == nil || cart.ID == 0 {
		return nil, Errorf(KindUnknown, op, "backend returned no cart for customer %d", customerID)
	}
	if cart.CustomerID == 0 {
		cart.CustomerID = customerID
	}
	return cart, nil
}

// AddItem adds or increments a product line and returns the updated cart.
func (cc *CartClient) AddItem(ctx context.Context, cartID, productID int64, quantity int) (*domain.Cart, error) {
	const op = "cart.addItem"

	if quantity <= 0 {
		return nil, Errorf(KindValidation, op, "quantity must be positive, got %d", quantity)
	}

	payload, err := cc.c.Post(ctx, fmt.Sprintf("/carts/%d/add", cartID), map[string]any{
		"id_producto": productID,
		"cantidad":    quantity,
	})
	if err != nil {
		return nil, err
	}
	return normalize.Cart(payload), nil
}

// RemoveItem removes a product line and returns the updated cart.
// Removing a product that is not in the cart is a backend no-op.
func (cc *CartClient) RemoveItem(ctx context.Context, cartID, productID int64) (*domain.Cart, error) {
	payload, err := cc.c.Post(ctx, fmt.Sprintf("/carts/%d/remove", cartID), map[string]any{
		"id_producto": productID,
	})
	if err != nil {
		return nil, err
	}
	return normalize.Cart(payload), nil
}

// Checkout converts the cart into an order. The cart id must not be
// reused for mutation afterwards.
func (cc *CartClient) Checkout(ctx context.Context, cartID int64) (*domain.Order, error) {
	const op = "cart.checkout"

	payload, err := cc.c.Post(ctx, fmt.Sprintf("/carts/%d/checkout", cartID), nil)
	if err != nil {
		return nil, err
	}
	order := normalize.Order(payload)
	if order == nil || order.ID == 0 {
		return nil, Errorf(KindUnknown, op, "backend returned no order for cart %d", cartID)
	}
	return order, nil
}

// cartAbsent recognizes the response shapes that mean "this customer has
// no cart yet": nothing, an empty list, or an object with no cart in it.
func cartAbsent(payload any) bool {
	switch v := payload.(type) {
	case nil:
		return true
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}
