package pricing

import "strconv"

// Level is the coarse tier category used for feature comparison ordering
// and icon selection. It is distinct from the plan id.
type Level string

const (
	LevelStart      Level = "start"
	LevelPro        Level = "pro"
	LevelTeams      Level = "teams"
	LevelEnterprise Level = "enterprise"
	LevelFree       Level = "free"
	LevelScale      Level = "scale"
	LevelIndividual Level = "individual"
	LevelHobbyist   Level = "hobbyist"
	LevelZeroDBFree Level = "zerodb_free"
	LevelZeroDBPro  Level = "zerodb_pro"
	LevelZeroDBScl  Level = "zerodb_scale"
	LevelCody       Level = "cody"
	LevelSwarm      Level = "swarm"
)

// Billing period values used by the pricing API. An empty period means the
// plan is one-time, free or custom.
const (
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// FreePlanID is the always-free plan. Selecting it never initiates a
// checkout session.
const FreePlanID = "hobbyist"

// Plan is the display-ready pricing plan shape. Plans arrive either from
// the public pricing API or from the static fallback catalog; the
// normalizer resolves both into this one shape.
type Plan struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Subtitle      string   `json:"subtitle,omitempty"`
	Price         *float64 `json:"price"`
	Currency      string   `json:"currency"`
	BillingPeriod string   `json:"billing_period,omitempty"`
	PaymentRef    string   `json:"stripe_price_id,omitempty"`
	ButtonText    string   `json:"button_text"`
	Level         Level    `json:"level"`
	Highlighted   bool     `json:"highlighted"`
	Features      []string `json:"features"`
	UseCases      string   `json:"use_cases,omitempty"`
	URL           string   `json:"url,omitempty"`
	IsActive      bool     `json:"is_active"`
	SortOrder     *int     `json:"sort_order"`
}

// PriceLabel renders the card price: "Free" for zero, "Custom" when the
// price is absent (contact sales), otherwise "$N".
func (p Plan) PriceLabel() string {
	if p.Price == nil {
		return "Custom"
	}
	if *p.Price == 0 {
		return "Free"
	}
	return formatPrice(*p.Price)
}

// PeriodLabel renders the billing period suffix, e.g. "/month".
func (p Plan) PeriodLabel() string {
	if p.BillingPeriod == "" {
		return ""
	}
	return "/" + p.BillingPeriod
}

// Envelope is the {success, message, data} wrapper the pricing API uses
// for every response.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

// PlanListData is the payload of the plan list endpoint.
type PlanListData struct {
	Plans []Plan `json:"plans"`
}

// CheckoutSession is a payment-provider issued resource the browser is
// redirected to. The API exposes the fields under two naming variants.
type CheckoutSession struct {
	SessionURL string
	SessionID  string
}

// CheckoutRequest is the body of the checkout session creation call.
type CheckoutRequest struct {
	PlanID     string            `json:"plan_id"`
	SuccessURL string            `json:"success_url"`
	CancelURL  string            `json:"cancel_url"`
	CustomerID string            `json:"customer_id,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

func formatPrice(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', -1, 64)
}
