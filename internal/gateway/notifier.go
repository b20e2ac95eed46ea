package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HTTPTransferNotifier calls the remote notification service. The call
// carries no payload: it only signals that a transfer was recorded.
type HTTPTransferNotifier struct {
	client    *http.Client
	notifyURL string
}

func NewHTTPTransferNotifier(notifyURL string, timeout time.Duration) *HTTPTransferNotifier {
	return &HTTPTransferNotifier{
		client:    &http.Client{Timeout: timeout},
		notifyURL: notifyURL,
	}
}

func (g *HTTPTransferNotifier) Notify(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.notifyURL, strings.NewReader("{}"))
	if err != nil {
		return fmt.Errorf("failed to build notify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notifier returned status %d", resp.StatusCode)
	}
	return nil
}
