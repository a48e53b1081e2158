package httpapi

import (
	"net/http"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/backend"
)

type OrderHandler struct {
	orders *backend.OrderClient
}

func NewOrderHandler(orders *backend.OrderClient) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Mine lists the authenticated customer's own orders.
func (h *OrderHandler) Mine(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.Mine(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
