package notifier

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Priya8975/pawpal-landing/internal/domain"
)

// WebhookSender posts a purchase intent event and reports the HTTP status.
// A non-nil error means no response was received.
type WebhookSender interface {
	Send(ctx context.Context, event domain.PurchaseIntentEvent) (int, error)
}

// HTTPSender delivers purchase intent events to the fixed webhook endpoint.
type HTTPSender struct {
	httpClient  *http.Client
	endpointURL string
	secret      string
	logger      *slog.Logger
}

// NewHTTPSender creates a sender posting to endpointURL. A zero timeout
// leaves the request unbounded. When secret is set every payload is signed.
func NewHTTPSender(endpointURL, secret string, timeout time.Duration, logger *slog.Logger) *HTTPSender {
	return &HTTPSender{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		endpointURL: endpointURL,
		secret:      secret,
		logger:      logger,
	}
}

// Send issues a single POST with the event serialized as JSON.
func (s *HTTPSender) Send(ctx context.Context, event domain.PurchaseIntentEvent) (int, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return 0, fmt.Errorf("encoding intent payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpointURL, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("creating webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if s.secret != "" {
		req.Header.Set("X-Webhook-Signature", computeHMAC(payload, s.secret))
	}

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	// Only the first 1KB of the body is kept for the debug log.
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

	s.logger.Debug("webhook responded",
		"source", event.Surface.Source,
		"status_code", resp.StatusCode,
		"response_time_ms", time.Since(start).Milliseconds(),
		"response_body", string(body),
	)

	return resp.StatusCode, nil
}

// computeHMAC generates an HMAC-SHA256 signature for the payload.
func computeHMAC(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
