// Package normalize reshapes the heterogeneous payloads the restaurant
// backend returns into the canonical domain model. The backend has gone
// through several naming conventions (Spanish domain-prefixed fields,
// camelCase, plain English); every known alias is listed in an ordered
// table per field and the first present, non-empty alias wins.
//
// All functions are total: they never error, and a nil input stays nil.
package normalize

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/domain"
)

// Alias precedence per field. Order matters: canonical name first, then the
// Spanish domain alias, then camelCase variants seen from older backends.
var (
	cartIDAliases       = []string{"id", "id_carrito", "cartId"}
	cartCustomerAliases = []string{"cliente_id", "id_cliente", "userId"}
	cartItemsAliases    = []string{"items", "carrito_productos", "cartProducts"}
	cartStateAliases    = []string{"estado", "status"}

	itemIDAliases        = []string{"id", "id_carrito_producto"}
	itemProductIDAliases = []string{"producto_id", "id_producto", "productId"}
	itemProductAliases   = []string{"producto", "product"}
	itemQuantityAliases  = []string{"cantidad", "quantity"}
	itemPriceAliases     = []string{"precio_unitario", "precio", "price"}

	productIDAliases    = []string{"id", "id_producto"}
	productNameAliases  = []string{"nombre_producto", "nombre", "name"}
	productDescAliases  = []string{"descripcion", "description"}
	productPriceAliases = []string{"precio", "price"}
	productImageAliases = []string{"imagen", "image"}
	productCatAliases   = []string{"categoria", "category"}

	orderIDAliases     = []string{"id", "id_pedido", "orderId"}
	orderNumberAliases = []string{"numero_orden", "numero"}
	orderDateAliases   = []string{"fecha_pedido", "fecha", "createdAt"}
)

// Cart converts a raw backend cart payload into the canonical shape.
// The backend is inconsistent about returning one cart versus a list of
// carts for a customer; a list collapses to its first element. Nil in,
// nil out.
func Cart(raw any) *domain.Cart {
	m, ok := asObject(raw)
	if !ok {
		return nil
	}

	c := &domain.Cart{
		ID:         firstInt(m, cartIDAliases),
		CustomerID: firstInt(m, cartCustomerAliases),
		State:      firstString(m, cartStateAliases),
		Items:      []domain.CartItem{},
	}

	for _, el := range firstList(m, cartItemsAliases) {
		if it := Item(el); it != nil {
			c.Items = append(c.Items, *it)
		}
	}

	if total, ok := toDecimal(m["total"]); ok {
		c.Total = total
	} else {
		c.Total = sumSubtotals(c.Items)
	}
	return c
}

// Item converts a raw cart line. Unit price falls back to the embedded
// product's price, and a missing subtotal is derived as quantity times
// unit price rather than trusted absent.
func Item(raw any) *domain.CartItem {
	m, ok := asObject(raw)
	if !ok {
		return nil
	}

	it := &domain.CartItem{
		ID:        firstInt(m, itemIDAliases),
		ProductID: firstInt(m, itemProductIDAliases),
		Quantity:  int(firstInt(m, itemQuantityAliases)),
	}

	if p := Product(first(m, itemProductAliases)); p != nil {
		it.Product = p
		if it.ProductID == 0 {
			it.ProductID = p.ID
		}
	}

	if price, ok := firstDecimal(m, itemPriceAliases); ok {
		it.UnitPrice = price
	} else if it.Product != nil {
		it.UnitPrice = it.Product.Price
	}

	if sub, ok := toDecimal(m["subtotal"]); ok {
		it.Subtotal = sub
	} else if it.Quantity > 0 {
		it.Subtotal = it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
	}
	return it
}

// Product converts a raw product payload. Nil in, nil out.
func Product(raw any) *domain.Product {
	m, ok := asObject(raw)
	if !ok {
		return nil
	}
	p := &domain.Product{
		ID:          firstInt(m, productIDAliases),
		Name:        firstString(m, productNameAliases),
		Description: firstString(m, productDescAliases),
		Image:       firstString(m, productImageAliases),
		Category:    firstString(m, productCatAliases),
	}
	if price, ok := firstDecimal(m, productPriceAliases); ok {
		p.Price = price
	}
	return p
}

// Products converts a raw list payload, dropping elements that are not
// objects. A bare object becomes a one-element slice.
func Products(raw any) []domain.Product {
	out := []domain.Product{}
	switch v := raw.(type) {
	case []any:
		for _, el := range v {
			if p := Product(el); p != nil {
				out = append(out, *p)
			}
		}
	default:
		if p := Product(raw); p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// Order converts a raw order payload, e.g. the result of a checkout.
func Order(raw any) *domain.Order {
	m, ok := asObject(raw)
	if !ok {
		return nil
	}
	o := &domain.Order{
		ID:         firstInt(m, orderIDAliases),
		CustomerID: firstInt(m, cartCustomerAliases),
		Number:     firstString(m, orderNumberAliases),
		Status:     firstString(m, cartStateAliases),
	}
	if total, ok := toDecimal(m["total"]); ok {
		o.Total = total
	}
	if ts := firstString(m, orderDateAliases); ts != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, ts); err == nil {
				o.PlacedAt = t
				break
			}
		}
	}
	for _, el := range firstList(m, cartItemsAliases) {
		if it := Item(el); it != nil {
			o.Items = append(o.Items, *it)
		}
	}
	return o
}

// Orders converts a raw list of orders.
func Orders(raw any) []domain.Order {
	out := []domain.Order{}
	switch v := raw.(type) {
	case []any:
		for _, el := range v {
			if o := Order(el); o != nil {
				out = append(out, *o)
			}
		}
	default:
		if o := Order(raw); o != nil {
			out = append(out, *o)
		}
	}
	return out
}

// asObject coerces a decoded JSON value to an object, collapsing a list
// to its first element.
func asObject(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case map[string]any:
		return v, true
	case []any:
		if len(v) == 0 {
			return nil, false
		}
		return asObject(v[0])
	default:
		return nil, false
	}
}

func first(m map[string]any, aliases []string) any {
	for _, k := range aliases {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func firstString(m map[string]any, aliases []string) string {
	for _, k := range aliases {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func firstInt(m map[string]any, aliases []string) int64 {
	for _, k := range aliases {
		if n, ok := toInt(m[k]); ok && n != 0 {
			return n
		}
	}
	return 0
}

func firstDecimal(m map[string]any, aliases []string) (decimal.Decimal, bool) {
	for _, k := range aliases {
		if d, ok := toDecimal(m[k]); ok {
			return d, true
		}
	}
	return decimal.Zero, false
}

func firstList(m map[string]any, aliases []string) []any {
	for _, k := range aliases {
		if l, ok := m[k].([]any); ok {
			return l
		}
	}
	return nil
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case float64:
		return decimal.NewFromFloat(n), true
	case string:
		if n == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(n)
		return d, err == nil
	case int64:
		return decimal.NewFromInt(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	default:
		return decimal.Zero, false
	}
}

func sumSubtotals(items []domain.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return total
}
