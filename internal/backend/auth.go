package backend

import (
	"context"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/normalize"
	"github.com/Chriss720/me-lleva-la-burger-front/internal/session"
)

type AuthClient struct{ c *Client }

func NewAuthClient(c *Client) *AuthClient { return &AuthClient{c: c} }

type RegisterInput struct {
	FirstName string `json:"nombre_cliente"`
	LastName  string `json:"apellido_cliente"`
	Email     string `json:"correo_cliente"`
	Password  string `json:"contrasena_cliente"`
	Phone     string `json:"telefono_cliente"`
	Address   string `json:"direccion,omitempty"`
}

// Login exchanges credentials for a backend session. The backend has
// issued the token under both access_token and token, and the customer
// under usuario, user and cliente, over time; all are accepted.
func (ac *AuthClient) Login(ctx context.Context, email, password string) (*session.Session, error) {
	const op = "auth.login"

	payload, err := ac.c.Post(ctx, "/auth/login", map[string]any{
		"email":      email,
		"contrasena": password,
	})
	if err != nil {
		return nil, err
	}
	return sessionFromAuthPayload(op, payload)
}

// Register creates the customer account and logs it in when the backend
// returns a token alongside the created customer.
func (ac *AuthClient) Register(ctx context.Context, in RegisterInput) (*session.Session, error) {
	const op = "auth.register"

	if in.Address == "" {
		in.Address = "No especificada"
	}
	payload, err := ac.c.Post(ctx, "/customer", in)
	if err != nil {
		return nil, err
	}
	return sessionFromAuthPayload(op, payload)
}

func sessionFromAuthPayload(op string, payload any) (*session.Session, error) {
	m, ok := payload.(map[string]any)
	if !ok {
		return nil, Errorf(KindUnknown, op, "unexpected auth response shape")
	}

	token := stringAlias(m, "access_token", "token")
	if token == "" {
		return nil, Errorf(KindUnauthorized, op, "backend returned no token")
	}

	customer := normalize.Customer(anyAlias(m, "usuario", "user", "cliente"))
	if customer == nil || customer.ID == 0 {
		return nil, Errorf(KindUnknown, op, "backend returned no customer")
	}

	return &session.Session{Token: token, Customer: *customer}, nil
}

func stringAlias(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func anyAlias(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}
