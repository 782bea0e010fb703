package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"grostory/internal/models"
)

var (
	// ErrRemoteUnavailable covers network failures and server-side errors.
	// Cart callers treat it as non-fatal and fall back to the local cache.
	ErrRemoteUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is returned on 401/403 responses. Callers must treat
	// it as "not authenticated" and clear any cached identity.
	ErrUnauthorized = errors.New("unauthorized")
)

// AuthResponse is the server's reply to signup and login.
type AuthResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
}

// APIClient is a thin HTTP+JSON client for the Gro-Story backend.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates an APIClient for the given base URL, for example
// "http://localhost:3001/api". A nil httpClient uses http.DefaultClient.
func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &APIClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// apiError extracts the server's {"error": ...} message for 4xx responses.
func apiError(body []byte, fallback string) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return errors.New(payload.Error)
	}
	return errors.New(fallback)
}

// do sends a request and decodes the JSON response body into out (when out
// is non-nil). Transport failures and 5xx map to ErrRemoteUnavailable,
// 401/403 to ErrUnauthorized, other 4xx to the server's error message.
func (c *APIClient) do(method, path, token string, reqBody, out interface{}) error {
	var bodyReader io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrRemoteUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		return apiError(data, "request failed")
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// SignUp registers a new account.
func (c *APIClient) SignUp(email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(http.MethodPost, "/auth/signup", "", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LogIn authenticates an existing account.
func (c *APIClient) LogIn(email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verify checks the token with the server and returns the identity it is
// bound to.
func (c *APIClient) Verify(token string) (*models.User, error) {
	var resp struct {
		Valid bool         `json:"valid"`
		User  *models.User `json:"user"`
	}
	if err := c.do(http.MethodPost, "/auth/verify", token, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Valid || resp.User == nil {
		return nil, ErrUnauthorized
	}
	return resp.User, nil
}

// GetCart fetches the authenticated user's saved cart. A user with no saved
// cart gets an empty list, not an error.
func (c *APIClient) GetCart(token string) ([]models.CartItem, error) {
	var resp struct {
		Items []models.CartItem `json:"items"`
	}
	if err := c.do(http.MethodGet, "/cart", token, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Items == nil {
		resp.Items = []models.CartItem{}
	}
	return resp.Items, nil
}

// SaveCart overwrites the authenticated user's saved cart wholesale.
func (c *APIClient) SaveCart(token string, items []models.CartItem) error {
	body := map[string]interface{}{"items": items}
	return c.do(http.MethodPost, "/cart", token, body, nil)
}

// ClearCart deletes the authenticated user's saved cart.
func (c *APIClient) ClearCart(token string) error {
	return c.do(http.MethodDelete, "/cart", token, nil, nil)
}

// ListGroceries fetches the product catalog.
func (c *APIClient) ListGroceries(token string) ([]models.GroceryItem, error) {
	var items []models.GroceryItem
	if err := c.do(http.MethodGet, "/groceries", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateGrocery adds a product to the catalog.
func (c *APIClient) CreateGrocery(token string, item *models.GroceryItem) (*models.GroceryItem, error) {
	var created models.GroceryItem
	if err := c.do(http.MethodPost, "/groceries", token, item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
