package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/backend"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/middleware"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a classified backend error onto this service's own
// response: Validation 400, Unauthorized 401, NotFound 404, Transient
// 502, Unknown 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeJSON(w, backend.HTTPStatus(err), model.ErrorResponse{
		Error:         err.Error(),
		Kind:          backend.KindOf(err).String(),
		CorrelationID: middleware.GetCorrelationID(r.Context()),
	})
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
		Error:         msg,
		Kind:          backend.KindValidation.String(),
		CorrelationID: middleware.GetCorrelationID(r.Context()),
	})
}
