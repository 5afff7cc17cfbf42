package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutForm(planID string) *http.Request {
	form := url.Values{"plan_id": {planID}}
	req := httptest.NewRequest(http.MethodPost, "/pricing/checkout", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// The pricing client binds its base URL on first use; the upstream mock is
// wired before any handler runs and shared by all cases.
func TestHandlePricingCheckout(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/public/pricing/plans":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data": map[string]any{
					"plans": []map[string]any{
						{"id": "pro", "name": "Pro", "price": 12, "currency": "USD", "stripe_price_id": "price_123"},
						{"id": "enterprise", "name": "Enterprise", "url": "https://calendly.com/seedlingstudio/"},
						{"id": "starter", "name": "Starter", "price": 5, "currency": "USD"},
					},
				},
			})
		case "/v1/public/pricing/checkout":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    map[string]any{"url": "https://pay.example/cs_7", "id": "cs_7"},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer upstream.Close()

	t.Setenv("API_BASE_URL", upstream.URL)

	app := fiber.New()
	app.Post("/pricing/checkout", HandlePricingCheckout)

	t.Run("missing plan id redirects back", func(t *testing.T) {
		resp, err := app.Test(newCheckoutForm(""), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/pricing", resp.Header.Get("Location"))
	})

	t.Run("unknown plan redirects back", func(t *testing.T) {
		resp, err := app.Test(newCheckoutForm("nope"), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/pricing", resp.Header.Get("Location"))
	})

	t.Run("plan url redirects to external target", func(t *testing.T) {
		resp, err := app.Test(newCheckoutForm("enterprise"), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "https://calendly.com/seedlingstudio/", resp.Header.Get("Location"))
	})

	t.Run("payment plan redirects to checkout session", func(t *testing.T) {
		resp, err := app.Test(newCheckoutForm("pro"), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "https://pay.example/cs_7", resp.Header.Get("Location"))
	})

	t.Run("plan without payment ref redirects back with notice", func(t *testing.T) {
		resp, err := app.Test(newCheckoutForm("starter"), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, "/pricing", resp.Header.Get("Location"))
	})
}
