package backend

import (
	"context"
	"net/http"
	"time"
)

// Ping probes the backend's health endpoint. Any response counts as up;
// only a transport failure or a 5xx marks the backend down.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	u := *c.baseURL
	u.Path = "/health"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return E(KindUnknown, "backend.ping", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return E(KindTransient, "backend.ping", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return Errorf(KindTransient, "backend.ping", "upstream status %d", resp.StatusCode)
	}
	return nil
}
