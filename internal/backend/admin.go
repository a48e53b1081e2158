package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/domain"
)

// EmployeeClient and IngredientClient cover the admin back-office
// resources. Their payloads are stable (single naming convention), so
// they decode straight into the domain types without the alias layer.

type EmployeeClient struct{ c *Client }

func NewEmployeeClient(c *Client) *EmployeeClient { return &EmployeeClient{c: c} }

func (ec *EmployeeClient) List(ctx context.Context) ([]domain.Employee, error) {
	payload, err := ec.c.Get(ctx, "/employees")
	if err != nil {
		return nil, err
	}
	var out []domain.Employee
	if err := decodeInto("employee.list", payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (ec *EmployeeClient) Create(ctx context.Context, e domain.Employee) (*domain.Employee, error) {
	payload, err := ec.c.Post(ctx, "/employees", e)
	if err != nil {
		return nil, err
	}
	var out domain.Employee
	if err := decodeInto("employee.create", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (ec *EmployeeClient) Update(ctx context.Context, id int64, e domain.Employee) (*domain.Employee, error) {
	payload, err := ec.c.Put(ctx, fmt.Sprintf("/employees/%d", id), e)
	if err != nil {
		return nil, err
	}
	var out domain.Employee
	if err := decodeInto("employee.update", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (ec *EmployeeClient) Delete(ctx context.Context, id int64) error {
	_, err := ec.c.Delete(ctx, fmt.Sprintf("/employees/%d", id))
	return err
}

type IngredientClient struct{ c *Client }

func NewIngredientClient(c *Client) *IngredientClient { return &IngredientClient{c: c} }

func (ic *IngredientClient) List(ctx context.Context) ([]domain.Ingredient, error) {
	payload, err := ic.c.Get(ctx, "/ingredients")
	if err != nil {
		return nil, err
	}
	var out []domain.Ingredient
	if err := decodeInto("ingredient.list", payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (ic *IngredientClient) Create(ctx context.Context, in domain.Ingredient) (*domain.Ingredient, error) {
	payload, err := ic.c.Post(ctx, "/ingredients", in)
	if err != nil {
		return nil, err
	}
	var out domain.Ingredient
	if err := decodeInto("ingredient.create", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (ic *IngredientClient) Update(ctx context.Context, id int64, in domain.Ingredient) (*domain.Ingredient, error) {
	payload, err := ic.c.Put(ctx, fmt.Sprintf("/ingredients/%d", id), in)
	if err != nil {
		return nil, err
	}
	var out domain.Ingredient
	if err := decodeInto("ingredient.update", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (ic *IngredientClient) Delete(ctx context.Context, id int64) error {
	_, err := ic.c.Delete(ctx, fmt.Sprintf("/ingredients/%d", id))
	return err
}

// AdminStats is the dashboard summary the backend computes for the back
// office. Missing counters stay zero.
type AdminStats struct {
	TotalOrders   int64 `json:"totalOrders"`
	PendingOrders int64 `json:"pendingOrders"`
	TotalProducts int64 `json:"totalProducts"`
}

type StatsClient struct{ c *Client }

func NewStatsClient(c *Client) *StatsClient { return &StatsClient{c: c} }

func (sc *StatsClient) Fetch(ctx context.Context) (*AdminStats, error) {
	payload, err := sc.c.Get(ctx, "/admin/stats")
	if err != nil {
		return nil, err
	}
	var out AdminStats
	if err := decodeInto("admin.stats", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// decodeInto re-marshals an envelope-unwrapped payload into a typed
// destination.
func decodeInto(op string, payload, out any) error {
	if payload == nil {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return E(KindUnknown, op, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return E(KindUnknown, op, err)
	}
	return nil
}
