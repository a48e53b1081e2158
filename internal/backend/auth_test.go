package backend_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chriss720/me-lleva-la-burger-front/internal/backend"
)

func TestLoginAcceptsTokenAndCustomerAliases(t *testing.T) {
	shapes := []string{
		`{"token":"tok-1","usuario":{"id":42,"nombre_cliente":"Ana"}}`,
		`{"access_token":"tok-1","user":{"id":42,"nombre_cliente":"Ana"}}`,
		`{"token":"tok-1","cliente":{"id":42,"nombre_cliente":"Ana"}}`,
	}

	for _, shape := range shapes {
		t.Run(shape, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/auth/login", r.URL.Path)
				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "ana@example.com", body["email"])
				assert.Equal(t, "secret", body["contrasena"])
				fmt.Fprint(w, shape)
			})
	
			sess, err := backend.NewAuthClient(c).Login(context.Background(), "ana@example.com", "secret")
			require.NoError(t, err)
			assert.Equal(t, "tok-1", sess.Token)
			assert.Equal(t, int64(42), sess.Customer.ID)
			assert.Equal(t, "Ana", sess.Customer.FirstName)
		})
	}
}

func TestLoginWithoutTokenIsUnauthorized(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"usuario":{"id":42}}`)
	})

	_, err := backend.NewAuthClient(c).Login(context.Background(), "a@b.c", "pw")
	require.Error(t, err)
	assert.Equal(t, backend.KindUnauthorized, backend.KindOf(err))
}

func TestRegisterDefaultsAddress(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/customer", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "No especificada", body["direccion"])
		fmt.Fprint(w, `{"token":"tok-2","usuario":{"id":7,"correo_cliente":"n@e.com"}}`)
	})

	sess, err := backend.NewAuthClient(c).Register(context.Background(), backend.RegisterInput{
		FirstName: "Nora",
		Email:     "n@e.com",
		Password:  "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-2", sess.Token)
	assert.Equal(t, int64(7), sess.Customer.ID)
}
