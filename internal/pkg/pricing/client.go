package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ainative-studio/studio-web/internal/pkg/config"
)

// ErrBadEnvelope marks a response that parsed but carried success=false or
// no data. Callers use it to distinguish API rejections from transport
// failures; the resolver treats both the same way.
var ErrBadEnvelope = errors.New("pricing api returned unsuccessful envelope")

// Client talks to the public pricing API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a pricing API client from site configuration.
func NewClient(cfg config.Site) *Client {
	timeout := cfg.API.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(cfg.API.BaseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

var (
	defaultClient     *Client
	defaultClientOnce sync.Once
)

// DefaultClient returns the process-wide pricing client. Initialization is
// lazy and happens once; the client lives for the lifetime of the process.
func DefaultClient() *Client {
	defaultClientOnce.Do(func() {
		defaultClient = NewClient(config.Load())
	})
	return defaultClient
}

// FetchPlans retrieves the raw plan list from the pricing API. The result
// is not normalized; see NormalizePlans.
func (c *Client) FetchPlans(ctx context.Context) ([]Plan, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/public/pricing/plans", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("pricing plans request failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	var envelope Envelope[PlanListData]
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success || envelope.Data == nil {
		if msg := strings.TrimSpace(envelope.Message); msg != "" {
			return nil, fmt.Errorf("%w: %s", ErrBadEnvelope, msg)
		}
		return nil, ErrBadEnvelope
	}
	return envelope.Data.Plans, nil
}

// checkoutData tolerates both field naming variants the API emits.
type checkoutData struct {
	URL        string `json:"url"`
	SessionURL string `json:"sessionUrl"`
	ID         string `json:"id"`
	SessionID  string `json:"sessionId"`
}

// CreateCheckoutSession asks the payment backend for a checkout session
// for the given plan and returns its redirect URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	if strings.TrimSpace(req.PlanID) == "" {
		return nil, errors.New("plan_id is required")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/public/pricing/checkout", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var envelope Envelope[checkoutData]
	if err := json.Unmarshal(body, &envelope); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("checkout session request failed: status=%d body=%s", resp.StatusCode, string(body))
		}
		return nil, err
	}
	if !envelope.Success || envelope.Data == nil {
		if msg := strings.TrimSpace(envelope.Message); msg != "" {
			return nil, fmt.Errorf("%w: %s", ErrBadEnvelope, msg)
		}
		return nil, ErrBadEnvelope
	}

	session := &CheckoutSession{
		SessionURL: firstNonEmpty(envelope.Data.URL, envelope.Data.SessionURL),
		SessionID:  firstNonEmpty(envelope.Data.ID, envelope.Data.SessionID),
	}
	if session.SessionURL == "" {
		return nil, fmt.Errorf("%w: checkout session missing url", ErrBadEnvelope)
	}
	return session, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
