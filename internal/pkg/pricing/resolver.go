package pricing

import (
	"context"
	"log"

	"github.com/ainative-studio/studio-web/internal/pkg/config"
)

// Source records where a resolved catalog came from.
type Source string

const (
	// SourceAPI means the live pricing API supplied the catalog.
	SourceAPI Source = "api"
	// SourceFallback means the static catalog was used because the API
	// call failed or returned a bad envelope.
	SourceFallback Source = "fallback"
)

// Catalog is one resolved plan snapshot. Plans are normalized and sorted;
// Source tells the caller whether live pricing could be confirmed.
type Catalog struct {
	Plans  []Plan
	Source Source
}

// Resolver produces the current plan catalog, preferring the live API and
// degrading to the static fallback. It keeps no state between calls:
// every Resolve builds a fresh snapshot, so concurrent and repeated calls
// are independent.
type Resolver struct {
	client *Client
	cfg    config.Site
}

// NewResolver creates a resolver using the given client and site config.
func NewResolver(client *Client, cfg config.Site) *Resolver {
	return &Resolver{client: client, cfg: cfg}
}

// Resolve returns a usable catalog in every case. An API failure is
// recovered locally: it is logged as a warning and the fallback catalog is
// returned with SourceFallback, never an error. The caller decides whether
// "fallback" deserves a retry affordance in the UI.
func (r *Resolver) Resolve(ctx context.Context) Catalog {
	raw, err := r.client.FetchPlans(ctx)
	if err != nil {
		log.Printf("Warning: pricing API unavailable, using fallback catalog: %v", err)
		return Catalog{
			Plans:  NormalizePlans(FallbackPlans(r.cfg)),
			Source: SourceFallback,
		}
	}
	return Catalog{
		Plans:  NormalizePlans(raw),
		Source: SourceAPI,
	}
}

// PlanByID finds a plan in the catalog. The bool reports whether it was
// found.
func (c Catalog) PlanByID(id string) (Plan, bool) {
	for _, p := range c.Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
