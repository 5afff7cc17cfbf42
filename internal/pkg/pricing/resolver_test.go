package pricing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ainative-studio/studio-web/internal/pkg/config"
)

func testConfig() config.Site {
	return config.Load()
}

func TestResolvePrefersAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"plans": []map[string]any{
					{"id": "pro", "name": "Pro", "price": 12, "currency": "USD"},
				},
			},
		})
	}))
	defer srv.Close()

	r := NewResolver(newTestClient(srv), testConfig())
	catalog := r.Resolve(context.Background())

	assert.Equal(t, SourceAPI, catalog.Source)
	require.Len(t, catalog.Plans, 1)
	assert.Equal(t, "pro", catalog.Plans[0].ID)
	// normalization ran
	assert.Equal(t, "Upgrade to Pro", catalog.Plans[0].ButtonText)
}

func TestResolveFallsBackOnAPIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	r := NewResolver(newTestClient(srv), testConfig())
	catalog := r.Resolve(context.Background())

	assert.Equal(t, SourceFallback, catalog.Source)
	require.Len(t, catalog.Plans, 4)
}

func TestResolveFiltersReservedPlansFromAPIResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"plans": []map[string]any{
					{"id": "free", "name": "Free"},
					{"id": "pro", "name": "Pro"},
					{"id": "zerodb_free", "name": "ZeroDB Free"},
					{"id": "teams", "name": "Teams"},
					{"id": "enterprise", "name": "Enterprise"},
				},
			},
		})
	}))
	defer srv.Close()

	r := NewResolver(newTestClient(srv), testConfig())
	catalog := r.Resolve(context.Background())

	require.Len(t, catalog.Plans, 4)
	for _, p := range catalog.Plans {
		assert.NotEqual(t, "zerodb_free", p.ID)
		assert.NotEqual(t, "ZeroDB Free", p.Name)
	}
}

func TestFallbackCatalogShape(t *testing.T) {
	catalog := NormalizePlans(FallbackPlans(testConfig()))

	require.Len(t, catalog, 4)

	wantIDs := []string{"free", "basic", "teams", "enterprise"}
	wantPrices := []float64{0, 12, 25, 50}
	wantPeriods := []string{"", PeriodMonth, PeriodMonth, PeriodMonth}

	for i, p := range catalog {
		assert.Equal(t, wantIDs[i], p.ID)
		require.NotNil(t, p.Price, "plan %s", p.ID)
		assert.Equal(t, wantPrices[i], *p.Price, "plan %s", p.ID)
		assert.Equal(t, wantPeriods[i], p.BillingPeriod, "plan %s", p.ID)
		assert.True(t, p.IsActive)
		assert.NotEmpty(t, p.Features, "plan %s", p.ID)
	}

	// the Pro card is the highlighted one
	assert.True(t, catalog[1].Highlighted)
	assert.Equal(t, "Pro", catalog[1].Name)

	// enterprise links out to a scheduling page instead of checkout
	assert.Contains(t, catalog[3].URL, "calendly.com")
}

func TestFallbackCatalogIsDeterministic(t *testing.T) {
	cfg := testConfig()

	first := NormalizePlans(FallbackPlans(cfg))
	second := NormalizePlans(FallbackPlans(cfg))

	assert.Equal(t, first, second)
}

func TestResolveRepeatedFallbacksAreIdentical(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	r := NewResolver(newTestClient(srv), testConfig())

	first := r.Resolve(context.Background())
	second := r.Resolve(context.Background())

	assert.Equal(t, first, second)
}

func TestCatalogPlanByID(t *testing.T) {
	catalog := Catalog{Plans: NormalizePlans(FallbackPlans(testConfig()))}

	plan, ok := catalog.PlanByID("teams")
	require.True(t, ok)
	assert.Equal(t, "Teams", plan.Name)

	_, ok = catalog.PlanByID("nope")
	assert.False(t, ok)
}
