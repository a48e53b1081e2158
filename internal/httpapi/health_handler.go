package httpapi

import (
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/backend"
)

type HealthHandler struct {
	Backend *backend.Client
	Redis   *redis.Client
}

type upstreamHealth struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HealthHandler) Upstreams(w http.ResponseWriter, r *http.Request) {
	results := []upstreamHealth{}

	be := upstreamHealth{Name: "backend", OK: true}
	if err := h.Backend.Ping(r.Context()); err != nil {
		be.OK = false
		be.Error = err.Error()
	}
	results = append(results, be)

	if h.Redis != nil {
		rd := upstreamHealth{Name: "redis", OK: true}
		if err := h.Redis.Ping(r.Context()).Err(); err != nil {
			rd.OK = false
			rd.Error = err.Error()
		}
		results = append(results, rd)
	}

	status := http.StatusOK
	for _, res := range results {
		if !res.OK {
			status = http.StatusServiceUnavailable
			break
		}
	}
	writeJSON(w, status, results)
}
