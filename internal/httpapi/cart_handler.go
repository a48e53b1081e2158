package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/cartstore"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/domain"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/session"
)

type CartHandler struct {
	carts *cartstore.Manager
}

func NewCartHandler(carts *cartstore.Manager) *CartHandler {
	return &CartHandler{carts: carts}
}

// cartView is what the UI renders: the cart plus the derived values the
// header badge and totals row need.
type cartView struct {
	Cart      *domain.Cart    `json:"cart"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

type addItemRequest struct {
	ProductID int64 `json:"id_producto"`
	Quantity  int   `json:"cantidad"`
}

type removeItemRequest struct {
	ProductID int64 `json:"id_producto"`
}

type checkoutRequest struct {
	Method string `json:"metodo"`
}

type checkoutResponse struct {
	OrderID int64           `json:"id_pedido"`
	Total   decimal.Decimal `json:"total"`
}

func (h *CartHandler) store(r *http.Request) *cartstore.Store {
	sess := session.FromContext(r.Context())
	return h.carts.For(sess.Customer.ID)
}

// GetCart loads (creating on first access) and returns the customer's
// active cart.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	store := h.store(r)
	if _, err := store.Load(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cartView{
		Cart:      store.Current(),
		Total:     store.Total(),
		ItemCount: store.ItemCount(),
	})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, "invalid json")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	store := h.store(r)
	if _, err := store.AddItem(r.Context(), domain.Product{ID: req.ProductID}, req.Quantity); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cartView{
		Cart:      store.Current(),
		Total:     store.Total(),
		ItemCount: store.ItemCount(),
	})
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req removeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, "invalid json")
		return
	}

	store := h.store(r)
	if _, err := store.RemoveItem(r.Context(), req.ProductID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cartView{
		Cart:      store.Current(),
		Total:     store.Total(),
		ItemCount: store.ItemCount(),
	})
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, "invalid json")
		return
	}
	if req.Method == "" {
		req.Method = "Tarjeta"
	}

	order, err := h.store(r).Checkout(r.Context(), req.Method)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, checkoutResponse{OrderID: order.ID, Total: order.Total})
}
