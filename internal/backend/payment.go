package backend

import (
	"context"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/domain"
)

type PaymentClient struct{ c *Client }

func NewPaymentClient(c *Client) *PaymentClient { return &PaymentClient{c: c} }

// Record registers a payment against an order. Called after checkout;
// a failure here never rolls the completed checkout back.
func (pc *PaymentClient) Record(ctx context.Context, p domain.Payment) error {
	_, err := pc.c.Post(ctx, "/payment", p)
	return err
}
