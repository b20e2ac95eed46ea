// Package gateway contains HTTP clients for the remote services the
// transfer flow depends on: the authorizer and the transfer notifier.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPAuthorizer asks a remote service whether a transfer may proceed.
type HTTPAuthorizer struct {
	client  *http.Client
	authURL string
}

func NewHTTPAuthorizer(authURL string, timeout time.Duration) *HTTPAuthorizer {
	return &HTTPAuthorizer{
		client:  &http.Client{Timeout: timeout},
		authURL: authURL,
	}
}

// Authorize calls the remote authorizer. Retrying a denied or failed
// call is the caller's concern, not this gateway's.
func (g *HTTPAuthorizer) Authorize(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.authURL, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build authorize request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("authorize request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("authorizer returned status %d", resp.StatusCode)
	}

	var body struct {
		Authorized bool `json:"authorized"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("failed to decode authorizer response: %w", err)
	}
	return body.Authorized, nil
}
