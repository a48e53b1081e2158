package backend

import (
	"context"
	"fmt"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/domain"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/normalize"
)

type OrderClient struct{ c *Client }

func NewOrderClient(c *Client) *OrderClient { return &OrderClient{c: c} }

// All lists every order, for the back-office view.
func (oc *OrderClient) All(ctx context.Context) ([]domain.Order, error) {
	payload, err := oc.c.Get(ctx, "/orders")
	if err != nil {
		return nil, err
	}
	return normalize.Orders(payload), nil
}

// Mine lists the orders of the authenticated customer.
func (oc *OrderClient) Mine(ctx context.Context) ([]domain.Order, error) {
	payload, err := oc.c.Get(ctx, "/orders/my-orders")
	if err != nil {
		return nil, err
	}
	return normalize.Orders(payload), nil
}

func (oc *OrderClient) ByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	payload, err := oc.c.Get(ctx, fmt.Sprintf("/orders/customer/%d", customerID))
	if err != nil {
		return nil, err
	}
	return normalize.Orders(payload), nil
}

func (oc *OrderClient) ByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	const op = "order.byId"

	payload, err := oc.c.Get(ctx, fmt.Sprintf("/orders/%d", orderID))
	if err != nil {
		return nil, err
	}
	o := normalize.Order(payload)
	if o == nil || o.ID == 0 {
		return nil, Errorf(KindNotFound, op, "order %d not found", orderID)
	}
	return o, nil
}

// UpdateStatus moves an order through the backend's status machine. The
// statuses are free text owned by the backend; this client passes them
// through untouched.
func (oc *OrderClient) UpdateStatus(ctx context.Context, orderID int64, status string) (*domain.Order, error) {
	payload, err := oc.c.Patch(ctx, fmt.Sprintf("/orders/%d", orderID), map[string]any{
		"estado": status,
	})
	if err != nil {
		return nil, err
	}
	return normalize.Order(payload), nil
}

func (oc *OrderClient) Delete(ctx context.Context, orderID int64) error {
	_, err := oc.c.Delete(ctx, fmt.Sprintf("/orders/%d", orderID))
	return err
}
