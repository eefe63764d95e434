package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const userInfoPath = "/auth/v1/user"

// HTTPResolver delegates token validation to the external auth provider's
// user-info endpoint.
type HTTPResolver struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewHTTPResolver constructs a resolver against the given provider base URL.
func NewHTTPResolver(baseURL, apiKey string) (*HTTPResolver, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("AUTH_URL is required")
	}
	return &HTTPResolver{
		baseURL: baseURL,
		apiKey:  strings.TrimSpace(apiKey),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Resolve asks the provider who the token belongs to.
func (r *HTTPResolver) Resolve(ctx context.Context, token string) (User, error) {
	if strings.TrimSpace(token) == "" {
		return User{}, ErrInvalidToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+userInfoPath, nil)
	if err != nil {
		return User{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if r.apiKey != "" {
		req.Header.Set("apikey", r.apiKey)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return User{}, fmt.Errorf("identity provider request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return User{}, fmt.Errorf("identity provider read: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return User{}, ErrInvalidToken
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return User{}, fmt.Errorf("identity provider parse: %w", err)
	}
	if user.ID == "" {
		return User{}, ErrInvalidToken
	}
	return user, nil
}

var _ Resolver = (*HTTPResolver)(nil)
