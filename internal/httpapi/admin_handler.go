package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/backend"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/catalog"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/domain"
)

// AdminHandler exposes the back-office: menu, orders, employees and
// ingredients. Everything passes through to the backend; the only local
// responsibility is invalidating the menu cache after mutations.
type AdminHandler struct {
	products    *backend.ProductClient
	orders      *backend.OrderClient
	employees   *backend.EmployeeClient
	ingredients *backend.IngredientClient
	stats       *backend.StatsClient
	catalog     *catalog.Service
}

func NewAdminHandler(
	products *backend.ProductClient,
	orders *backend.OrderClient,
	employees *backend.EmployeeClient,
	ingredients *backend.IngredientClient,
	stats *backend.StatsClient,
	cat *catalog.Service,
) *AdminHandler {
	return &AdminHandler{
		products:    products,
		orders:      orders,
		employees:   employees,
		ingredients: ingredients,
		stats:       stats,
		catalog:     cat,
	}
}

// Stats serves the dashboard counters.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Fetch(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// --- menu ---

func (h *AdminHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var in backend.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, r, "invalid json")
		return
	}

	product, err := h.products.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.catalog.Invalidate(r.Context())
	writeJSON(w, http.StatusCreated, product)
}

func (h *AdminHandler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in backend.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, r, "invalid json")
		return
	}

	product, err := h.products.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.catalog.Invalidate(r.Context())
	writeJSON(w, http.StatusOK, product)
}

func (h *AdminHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.products.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	h.catalog.Invalidate(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// --- orders ---

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.All(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"estado"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		writeBadRequest(w, r, "estado is required")
		return
	}

	order, err := h.orders.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *AdminHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.orders.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- employees ---

func (h *AdminHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *AdminHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var in domain.Employee
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, r, "invalid json")
		return
	}
	employee, err := h.employees.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, employee)
}

func (h *AdminHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in domain.Employee
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, r, "invalid json")
		return
	}
	employee, err := h.employees.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *AdminHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.employees.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- ingredients ---

func (h *AdminHandler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.ingredients.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ingredients)
}

func (h *AdminHandler) CreateIngredient(w http.ResponseWriter, r *http.Request) {
	var in domain.Ingredient
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, r, "invalid json")
		return
	}
	ingredient, err := h.ingredients.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ingredient)
}

func (h *AdminHandler) UpdateIngredient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var in domain.Ingredient
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, r, "invalid json")
		return
	}
	ingredient, err := h.ingredients.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ingredient)
}

func (h *AdminHandler) DeleteIngredient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.ingredients.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeBadRequest(w, r, "invalid "+name)
		return 0, false
	}
	return id, true
}
