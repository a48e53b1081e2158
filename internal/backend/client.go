// Package backend talks to the restaurant REST backend. Each resource gets
// a small typed client over a shared base Client; every response passes
// through the normalization layer before callers see it.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/middleware"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/session"
)

type Client struct {
	name    string
	baseURL *url.URL
	http    *http.Client
	logger  *zap.Logger
}

func NewClient(name, baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	u, err := url.Parse(baseURL)
	if err != nil {
		// Fail fast: config error
		panic(fmt.Sprintf("invalid %s base url %q: %v", name, baseURL, err))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{name: name, baseURL: u, http: httpClient, logger: logger}
}

func (c *Client) Get(ctx context.Context, path string) (any, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body any) (any, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

func (c *Client) Patch(ctx context.Context, path string, body any) (any, error) {
	return c.do(ctx, http.MethodPatch, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (any, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

// do issues one request and returns the decoded, envelope-unwrapped
// payload. Transport failures classify as Transient; HTTP failures
// classify by status.
func (c *Client) do(ctx context.Context, method, path string, body any) (any, error) {
	op := c.name + " " + method + " " + path

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, E(KindUnknown, op, err)
		}
		reader = bytes.NewReader(data)
	}

	rel, err := url.Parse(path)
	if err != nil {
		return nil, E(KindUnknown, op, err)
	}
	u := c.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, E(KindUnknown, op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := session.TokenFrom(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	if cid := middleware.GetCorrelationID(ctx); cid != "" {
		req.Header.Set(middleware.HeaderCorrelationID, cid)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, E(KindTransient, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		kind := kindFromStatus(resp.StatusCode)
		msg := upstreamMessage(resp.Body)
		c.logger.Debug("upstream error",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg))
		return nil, Errorf(kind, op, "upstream status %d: %s", resp.StatusCode, msg)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, E(KindUnknown, op, err)
	}
	return unwrapEnvelope(payload), nil
}

// unwrapEnvelope peels the {"success": ..., "data": ...} wrapper some
// backend routes add and others do not.
func unwrapEnvelope(payload any) any {
	m, ok := payload.(map[string]any)
	if !ok {
		return payload
	}
	if data, ok := m["data"]; ok && data != nil {
		return data
	}
	return payload
}

func upstreamMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err == nil {
		for _, k := range []string{"message", "error", "detail"} {
			if s, ok := m[k].(string); ok && s != "" {
				return s
			}
		}
	}
	return string(data)
}
