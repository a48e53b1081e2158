package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/domain"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/normalize"
)

type ProductClient struct{ c *Client }

func NewProductClient(c *Client) *ProductClient { return &ProductClient{c: c} }

// ProductInput is the admin-facing create/update shape for menu entries.
type ProductInput struct {
	Name        string          `json:"nombre_producto"`
	Description string          `json:"descripcion,omitempty"`
	Price       decimal.Decimal `json:"precio"`
	Image       string          `json:"imagen,omitempty"`
	Category    string          `json:"categoria,omitempty"`
}

func (pc *ProductClient) List(ctx context.Context) ([]domain.Product, error) {
	payload, err := pc.c.Get(ctx, "/all-products")
	if err != nil {
		return nil, err
	}
	return normalize.Products(payload), nil
}

func (pc *ProductClient) Get(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "product.get"

	payload, err := pc.c.Get(ctx, fmt.Sprintf("/products/%d", id))
	if err != nil {
		return nil, err
	}
	p := normalize.Product(payload)
	if p == nil || p.ID == 0 {
		return nil, Errorf(KindNotFound, op, "product %d not found", id)
	}
	return p, nil
}

func (pc *ProductClient) Search(ctx context.Context, query string) ([]domain.Product, error) {
	payload, err := pc.c.Get(ctx, "/products/search?q="+url.QueryEscape(query))
	if err != nil {
		return nil, err
	}
	return normalize.Products(payload), nil
}

func (pc *ProductClient) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	payload, err := pc.c.Post(ctx, "/products", in)
	if err != nil {
		return nil, err
	}
	return normalize.Product(payload), nil
}

func (pc *ProductClient) Update(ctx context.Context, id int64, in ProductInput) (*domain.Product, error) {
	payload, err := pc.c.Put(ctx, fmt.Sprintf("/products/%d", id), in)
	if err != nil {
		return nil, err
	}
	return normalize.Product(payload), nil
}

func (pc *ProductClient) Delete(ctx context.Context, id int64) error {
	_, err := pc.c.Delete(ctx, fmt.Sprintf("/products/%d", id))
	return err
}
