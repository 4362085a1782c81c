// --- File: pkg/tokensink/http.go ---
package tokensink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// registerRequest is the body posted to the registration endpoint.
type registerRequest struct {
	Token string `json:"token"`
}

// HTTPSink posts each delivered token to a backend registration endpoint as
// a JSON body of the form {"token": "..."}.
type HTTPSink struct {
	endpoint    string
	bearerToken string
	client      *http.Client
	logger      *slog.Logger
}

// NewHTTPSink targets the given endpoint. An empty bearerToken sends no
// Authorization header; a nil client gets a default one with a 10 second
// timeout.
func NewHTTPSink(endpoint, bearerToken string, client *http.Client, logger *slog.Logger) *HTTPSink {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPSink{
		endpoint:    endpoint,
		bearerToken: bearerToken,
		client:      client,
		logger:      logger.With("component", "HTTPSink"),
	}
}

// Deliver implements Sink.
func (s *HTTPSink) Deliver(ctx context.Context, token string) error {
	body, err := json.Marshal(registerRequest{Token: token})
	if err != nil {
		return fmt.Errorf("tokensink: encode register request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("tokensink: build register request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.bearerToken)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("tokensink: post token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("tokensink: registration endpoint returned status %d", resp.StatusCode)
	}

	s.logger.Debug("Token delivered to backend.", "status", resp.StatusCode)
	return nil
}
