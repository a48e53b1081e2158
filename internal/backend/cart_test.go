package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/backend"
)

func newCartClient(t *testing.T, handler http.Handler) *backend.CartClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.NewCartClient(backend.NewClient("test", srv.URL, srv.Client(), nil))
}

func TestFetchByCustomerCreatesOnEmpty(t *testing.T) {
	shapes := []string{`[]`, `null`, `{}`}

	for _, shape := range shapes {
		t.Run("empty shape "+shape, func(t *testing.T) {
			var created atomic.Bool
			mux := http.NewServeMux()
			mux.HandleFunc("GET /carts/customer/42", func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(shape))
			})
			mux.HandleFunc("POST /carts", func(w http.ResponseWriter, r *http.Request) {
				created.Store(true)
				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.EqualValues(t, 42, body["cliente_id"])
				assert.Equal(t, "active", body["estado"])
				_, _ = w.Write([]byte(`{"id_carrito": 100, "cliente_id": 42, "estado": "active", "items": []}`))
			})

			cc := newCartClient(t, mux)
			cart, err := cc.FetchByCustomer(context.Background(), 42)
			require.NoError(t, err)
			require.NotNil(t, cart)
			assert.True(t, created.Load(), "expected cart creation")
			assert.Equal(t, int64(100), cart.ID)
			assert.Empty(t, cart.Items)
		})
	}
}

func TestFetchByCustomerReturnsExistingCart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /carts/customer/42", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [{"id_carrito": 55, "cliente_id": 42, "items": [{"id": 1, "producto_id": 7, "cantidad": 2, "precio_unitario": 10}]}]}`))
	})
	mux.HandleFunc("POST /carts", func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("must not create when a cart exists")
	})

	cc := newCartClient(t, mux)
	cart, err := cc.FetchByCustomer(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(55), cart.ID)
	require.Len(t, cart.Items, 1)
	assert.True(t, cart.Items[0].Subtotal.Equal(decimal.RequireFromString("20")))
}

func TestFetchByCustomerTransientFallsBackToCreateOnce(t *testing.T) {
	t.Run("create succeeds", func(t *testing.T) {
		var creates atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("GET /carts/customer/42", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		mux.HandleFunc("POST /carts", func(w http.ResponseWriter, r *http.Request) {
			creates.Add(1)
			_, _ = w.Write([]byte(`{"id": 101, "cliente_id": 42}`))
		})

		cc := newCartClient(t, mux)
		cart, err := cc.FetchByCustomer(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, int64(101), cart.ID)
		assert.Equal(t, int32(1), creates.Load())
	})

	t.Run("create also fails: fetch error surfaces", func(t *testing.T) {
		var creates atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("GET /carts/customer/42", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		mux.HandleFunc("POST /carts", func(w http.ResponseWriter, r *http.Request) {
			creates.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		})

		cc := newCartClient(t, mux)
		_, err := cc.FetchByCustomer(context.Background(), 42)
		require.Error(t, err)
		assert.Equal(t, backend.KindTransient, backend.KindOf(err))
		assert.Equal(t, int32(1), creates.Load(), "create fallback must run exactly once")
	})

	t.Run("non-transient fetch error does not trigger create", func(t *testing.T) {
		var creates atomic.Int32
		mux := http.NewServeMux()
		mux.HandleFunc("GET /carts/customer/42", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		mux.HandleFunc("POST /carts", func(w http.ResponseWriter, r *http.Request) {
			creates.Add(1)
		})

		cc := newCartClient(t, mux)
		_, err := cc.FetchByCustomer(context.Background(), 42)
		require.Error(t, err)
		assert.Equal(t, backend.KindUnauthorized, backend.KindOf(err))
		assert.Zero(t, creates.Load())
	})
}

func TestFetchByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /carts/55", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id": 55, "cliente_id": 42}`))
		})

		cc := newCartClient(t, mux)
		cart, err := cc.FetchByID(context.Background(), 55)
		require.NoError(t, err)
		assert.Equal(t, int64(55), cart.ID)
	})

	t.Run("absent", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /carts/55", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "no cart"}`))
		})

		cc := newCartClient(t, mux)
		_, err := cc.FetchByID(context.Background(), 55)
		require.Error(t, err)
		assert.Equal(t, backend.KindNotFound, backend.KindOf(err))
	})

	t.Run("empty body classifies as not found", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /carts/55", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`null`))
		})

		cc := newCartClient(t, mux)
		_, err := cc.FetchByID(context.Background(), 55)
		require.Error(t, err)
		assert.Equal(t, backend.KindNotFound, backend.KindOf(err))
	})
}

func TestAddItem(t *testing.T) {
	t.Run("posts product and quantity", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /carts/55/add", func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.EqualValues(t, 7, body["id_producto"])
			assert.EqualValues(t, 2, body["cantidad"])
			_, _ = w.Write([]byte(`{"id": 55, "items": [{"id": 1, "producto_id": 7, "cantidad": 2, "precio_unitario": 10}]}`))
		})

		cc := newCartClient(t, mux)
		cart, err := cc.AddItem(context.Background(), 55, 7, 2)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.True(t, cart.Items[0].Subtotal.Equal(decimal.RequireFromString("20")))
	})

	t.Run("non-positive quantity fails without a network call", func(t *testing.T) {
		var calls atomic.Int32
		cc := newCartClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))

		for _, qty := range []int{0, -1} {
			_, err := cc.AddItem(context.Background(), 55, 7, qty)
			require.Error(t, err)
			assert.Equal(t, backend.KindValidation, backend.KindOf(err))
		}
		assert.Zero(t, calls.Load())
	})
}

func TestRemoveItem(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /carts/55/remove", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 7, body["id_producto"])
		_, _ = w.Write([]byte(`{"id": 55, "items": []}`))
	})

	cc := newCartClient(t, mux)
	cart, err := cc.RemoveItem(context.Background(), 55, 7)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCheckout(t *testing.T) {
	t.Run("returns order essentials", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /carts/55/checkout", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data": {"id_pedido": 900, "cliente_id": 42, "total": 35.50, "estado": "Pendiente"}}`))
		})

		cc := newCartClient(t, mux)
		order, err := cc.Checkout(context.Background(), 55)
		require.NoError(t, err)
		assert.Equal(t, int64(900), order.ID)
		assert.True(t, order.Total.Equal(decimal.RequireFromString("35.50")))
	})

	t.Run("missing order surfaces unknown", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /carts/55/checkout", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})

		cc := newCartClient(t, mux)
		_, err := cc.Checkout(context.Background(), 55)
		require.Error(t, err)
		assert.Equal(t, backend.KindUnknown, backend.KindOf(err))
	})
}
