package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"grostory/internal/client"
	"grostory/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIClient_SignUp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/signup", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "shopper@example.com", req["email"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "User created successfully",
			"user":    map[string]string{"uid": "user-123", "email": req["email"]},
			"token":   "token-abc",
		})
	}))
	defer server.Close()

	api := client.NewAPIClient(server.URL+"/api", nil)
	resp, err := api.SignUp("shopper@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "token-abc", resp.Token)
	assert.Equal(t, "user-123", resp.User.ID)
}

func TestAPIClient_LogIn_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid email or password"})
	}))
	defer server.Close()

	api := client.NewAPIClient(server.URL+"/api", nil)
	_, err := api.LogIn("shopper@example.com", "wrong")
	assert.EqualError(t, err, "Invalid email or password")
}

func TestAPIClient_Verify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid or expired token"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"valid": true,
			"user":  map[string]string{"uid": "user-123", "email": "shopper@example.com"},
		})
	}))
	defer server.Close()

	api := client.NewAPIClient(server.URL+"/api", nil)

	user, err := api.Verify("good-token")
	assert.NoError(t, err)
	assert.Equal(t, "user-123", user.ID)

	_, err = api.Verify("bad-token")
	assert.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestAPIClient_GetCart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]interface{}{
				{"id": 1, "name": "Apple", "price": 1.5, "image": "a.png", "quantity": 2},
			},
		})
	}))
	defer server.Close()

	api := client.NewAPIClient(server.URL+"/api", nil)
	items, err := api.GetCart("token-abc")
	assert.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAPIClient_GetCart_MissingCartIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"items": []interface{}{}})
	}))
	defer server.Close()

	api := client.NewAPIClient(server.URL+"/api", nil)
	items, err := api.GetCart("token-abc")
	assert.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestAPIClient_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Down before the first request.

	api := client.NewAPIClient(server.URL+"/api", nil)
	_, err := api.GetCart("token-abc")
	assert.ErrorIs(t, err, client.ErrRemoteUnavailable)
}

func TestAPIClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
	}))
	defer server.Close()

	api := client.NewAPIClient(server.URL+"/api", nil)
	err := api.SaveCart("token-abc", []models.CartItem{})
	assert.ErrorIs(t, err, client.ErrRemoteUnavailable)
}

func TestAPIClient_ClearCart(t *testing.T) {
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		json.NewEncoder(w).Encode(map[string]string{"message": "Cart cleared successfully"})
	}))
	defer server.Close()

	api := client.NewAPIClient(server.URL+"/api", nil)
	assert.NoError(t, api.ClearCart("token-abc"))
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestAPIClient_ListGroceries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "g-1", "name": "Apple", "price": 1.5, "inStock": true},
		})
	}))
	defer server.Close()

	api := client.NewAPIClient(server.URL+"/api", nil)
	items, err := api.ListGroceries("token-abc")
	assert.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Apple", items[0].Name)
}
