package pricing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitiatePlanURLWinsWithoutNetworkCall(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	initiator := NewInitiator(newTestClient(srv))

	// absolute URL opens externally, even when a payment ref is set
	out := initiator.Initiate(context.Background(), Plan{
		ID:         "enterprise",
		URL:        "https://calendly.com/seedlingstudio/",
		PaymentRef: "price_123",
	}, CheckoutOptions{Origin: "https://site.example"})

	assert.Equal(t, OutcomeOpenExternal, out.Kind)
	assert.Equal(t, "https://calendly.com/seedlingstudio/", out.Target)

	// relative URL navigates in place
	out = initiator.Initiate(context.Background(), Plan{
		ID:  "free",
		URL: "/login",
	}, CheckoutOptions{Origin: "https://site.example"})

	assert.Equal(t, OutcomeNavigate, out.Kind)
	assert.Equal(t, "/login", out.Target)

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestInitiateCreatesCheckoutSession(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)

		var req CheckoutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "pro", req.PlanID)
		assert.Equal(t, "https://site.example/billing/success", req.SuccessURL)
		assert.Equal(t, "https://site.example/pricing", req.CancelURL)
		assert.Equal(t, "Pro", req.Metadata["plan_name"])
		assert.Equal(t, "pro", req.Metadata["plan_id"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"url": "https://pay.example/cs_9", "id": "cs_9"},
		})
	}))
	defer srv.Close()

	initiator := NewInitiator(newTestClient(srv))
	out := initiator.Initiate(context.Background(), Plan{
		ID:         "pro",
		Name:       "Pro",
		PaymentRef: "price_123",
	}, CheckoutOptions{Origin: "https://site.example"})

	assert.Equal(t, OutcomeNavigate, out.Kind)
	assert.Equal(t, "https://pay.example/cs_9", out.Target)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestInitiateChecksOutFailureSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "card declined",
		})
	}))
	defer srv.Close()

	initiator := NewInitiator(newTestClient(srv))
	out := initiator.Initiate(context.Background(), Plan{
		ID:         "pro",
		Name:       "Pro",
		PaymentRef: "price_123",
	}, CheckoutOptions{Origin: "https://site.example"})

	assert.Equal(t, OutcomeNotice, out.Kind)
	assert.Contains(t, out.Message, "Unable to start subscription checkout")
	assert.Contains(t, out.Message, "card declined")
	assert.Contains(t, out.Message, "contact support if the issue persists")
}

func TestInitiateFreePlanNeverChecksOut(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	initiator := NewInitiator(newTestClient(srv))
	out := initiator.Initiate(context.Background(), Plan{
		ID:         FreePlanID,
		Name:       "Hobbyist",
		PaymentRef: "price_free",
	}, CheckoutOptions{Origin: "https://site.example"})

	assert.Equal(t, OutcomeNone, out.Kind)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestInitiateNotPurchasableNotice(t *testing.T) {
	initiator := NewInitiator(&Client{BaseURL: "http://unused.invalid", HTTPClient: http.DefaultClient})

	out := initiator.Initiate(context.Background(), Plan{
		ID:   "enterprise",
		Name: "Enterprise",
	}, CheckoutOptions{Origin: "https://site.example"})

	assert.Equal(t, OutcomeNotice, out.Kind)
	assert.Equal(t, "This plan is not available for online purchase. Please contact support.", out.Message)
}

func TestInitiateHonorsURLOverrides(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req CheckoutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://other.example/done", req.SuccessURL)
		assert.Equal(t, "https://other.example/back", req.CancelURL)
		assert.Equal(t, "cus_42", req.CustomerID)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"url": "https://pay.example/cs_1"},
		})
	}))
	defer srv.Close()

	initiator := NewInitiator(newTestClient(srv))
	out := initiator.Initiate(context.Background(), Plan{
		ID:         "pro",
		Name:       "Pro",
		PaymentRef: "price_123",
	}, CheckoutOptions{
		Origin:     "https://site.example",
		SuccessURL: "https://other.example/done",
		CancelURL:  "https://other.example/back",
		CustomerID: "cus_42",
	})

	assert.Equal(t, OutcomeNavigate, out.Kind)
}

func TestOutcomeKindString(t *testing.T) {
	assert.Equal(t, "none", OutcomeNone.String())
	assert.Equal(t, "open_external", OutcomeOpenExternal.String())
	assert.Equal(t, "navigate", OutcomeNavigate.String())
	assert.Equal(t, "notice", OutcomeNotice.String())
}
