package normalize_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/normalize"
)

// decode mirrors how the backend client hands payloads to the
// normalization layer: json.Number for numerics.
func decode(t *testing.T, raw string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

func TestCartNilPropagation(t *testing.T) {
	assert.Nil(t, normalize.Cart(nil))
	assert.Nil(t, normalize.Cart(decode(t, `[]`)))
	assert.Nil(t, normalize.Cart(decode(t, `"not an object"`)))
}

func TestCartIDAliases(t *testing.T) {
	t.Run("canonical id", func(t *testing.T) {
		c := normalize.Cart(decode(t, `{"id": 10, "cliente_id": 42}`))
		require.NotNil(t, c)
		assert.Equal(t, int64(10), c.ID)
		assert.Equal(t, int64(42), c.CustomerID)
	})

	t.Run("domain alias", func(t *testing.T) {
		c := normalize.Cart(decode(t, `{"id_carrito": 11, "cliente_id": 42}`))
		require.NotNil(t, c)
		assert.Equal(t, int64(11), c.ID)
	})

	t.Run("camelCase alias", func(t *testing.T) {
		c := normalize.Cart(decode(t, `{"cartId": 12}`))
		require.NotNil(t, c)
		assert.Equal(t, int64(12), c.ID)
	})

	t.Run("conflicting aliases: canonical wins", func(t *testing.T) {
		c := normalize.Cart(decode(t, `{"id": 1, "id_carrito": 2, "cartId": 3}`))
		require.NotNil(t, c)
		assert.Equal(t, int64(1), c.ID)
	})

	t.Run("domain alias beats camelCase", func(t *testing.T) {
		c := normalize.Cart(decode(t, `{"id_carrito": 2, "cartId": 3}`))
		require.NotNil(t, c)
		assert.Equal(t, int64(2), c.ID)
	})
}

func TestCartCollapsesList(t *testing.T) {
	c := normalize.Cart(decode(t, `[{"id_carrito": 7, "cliente_id": 42}, {"id": 99}]`))
	require.NotNil(t, c)
	assert.Equal(t, int64(7), c.ID)
}

func TestCartItemsContainerAliases(t *testing.T) {
	for _, container := range []string{"items", "carrito_productos", "cartProducts"} {
		t.Run(container, func(t *testing.T) {
			c := normalize.Cart(decode(t, `{"id": 1, "`+container+`": [{"id": 5, "producto_id": 7, "cantidad": 2, "precio_unitario": 3.5}]}`))
			require.NotNil(t, c)
			require.Len(t, c.Items, 1)
			assert.Equal(t, int64(5), c.Items[0].ID)
		})
	}
}

func TestItemSubtotalDerivation(t *testing.T) {
	t.Run("derived when absent", func(t *testing.T) {
		it := normalize.Item(decode(t, `{"id": 1, "cantidad": 3, "precio_unitario": 5.50}`))
		require.NotNil(t, it)
		assert.True(t, it.Subtotal.Equal(decimal.RequireFromString("16.5")),
			"got %s", it.Subtotal)
	})

	t.Run("server subtotal kept when present", func(t *testing.T) {
		it := normalize.Item(decode(t, `{"id": 1, "cantidad": 2, "precio_unitario": 5, "subtotal": 9.99}`))
		require.NotNil(t, it)
		assert.True(t, it.Subtotal.Equal(decimal.RequireFromString("9.99")))
	})

	t.Run("unit price derived from embedded product", func(t *testing.T) {
		it := normalize.Item(decode(t, `{"id": 1, "cantidad": 2, "producto": {"id_producto": 7, "precio": 10}}`))
		require.NotNil(t, it)
		assert.True(t, it.UnitPrice.Equal(decimal.RequireFromString("10")))
		assert.True(t, it.Subtotal.Equal(decimal.RequireFromString("20")))
		assert.Equal(t, int64(7), it.ProductID)
	})
}

func TestItemAliases(t *testing.T) {
	it := normalize.Item(decode(t, `{"id_carrito_producto": 4, "id_producto": 9, "quantity": 1, "product": {"id": 9, "price": 2.5, "name": "Papas"}}`))
	require.NotNil(t, it)
	assert.Equal(t, int64(4), it.ID)
	assert.Equal(t, int64(9), it.ProductID)
	assert.Equal(t, 1, it.Quantity)
	require.NotNil(t, it.Product)
	assert.True(t, it.UnitPrice.Equal(decimal.RequireFromString("2.5")))
}

func TestCartTotal(t *testing.T) {
	t.Run("server total kept", func(t *testing.T) {
		c := normalize.Cart(decode(t, `{"id": 1, "total": 30, "items": [{"cantidad": 2, "precio_unitario": 5}]}`))
		require.NotNil(t, c)
		assert.True(t, c.Total.Equal(decimal.RequireFromString("30")))
	})

	t.Run("summed when absent", func(t *testing.T) {
		c := normalize.Cart(decode(t, `{"id": 1, "items": [{"cantidad": 2, "precio_unitario": 5.5}, {"cantidad": 1, "precio_unitario": 3}]}`))
		require.NotNil(t, c)
		assert.True(t, c.Total.Equal(decimal.RequireFromString("14")), "got %s", c.Total)
	})
}

func TestProductAliases(t *testing.T) {
	p := normalize.Product(decode(t, `{"id_producto": 3, "nombre_producto": "Hamburguesa", "precio": "8.90"}`))
	require.NotNil(t, p)
	assert.Equal(t, int64(3), p.ID)
	assert.Equal(t, "Hamburguesa", p.Name)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("8.90")))
}

func TestProductsListShapes(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		ps := normalize.Products(decode(t, `[{"id": 1, "precio": 2}, {"id": 2, "precio": 3}]`))
		assert.Len(t, ps, 2)
	})

	t.Run("bare object", func(t *testing.T) {
		ps := normalize.Products(decode(t, `{"id": 1, "precio": 2}`))
		assert.Len(t, ps, 1)
	})

	t.Run("nil", func(t *testing.T) {
		assert.Empty(t, normalize.Products(nil))
	})
}

func TestOrder(t *testing.T) {
	o := normalize.Order(decode(t, `{"id_pedido": 20, "cliente_id": 42, "total": 35.50, "estado": "Pendiente", "fecha_pedido": "2026-01-15T10:30:00Z"}`))
	require.NotNil(t, o)
	assert.Equal(t, int64(20), o.ID)
	assert.Equal(t, int64(42), o.CustomerID)
	assert.Equal(t, "Pendiente", o.Status)
	assert.True(t, o.Total.Equal(decimal.RequireFromString("35.50")))
	assert.Equal(t, 2026, o.PlacedAt.Year())
}

func TestCustomerAliases(t *testing.T) {
	c := normalize.Customer(decode(t, `{"id_cliente": 8, "nombre_cliente": "Ana", "correo_cliente": "ana@example.com", "rol_cliente": "admin"}`))
	require.NotNil(t, c)
	assert.Equal(t, int64(8), c.ID)
	assert.Equal(t, "Ana", c.FirstName)
	assert.Equal(t, "ana@example.com", c.Email)
	assert.Equal(t, "admin", c.Role)
}
