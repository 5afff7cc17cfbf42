package pricing

import (
	"context"
	"fmt"
	"strings"
)

// OutcomeKind classifies what the UI should do after a plan selection.
type OutcomeKind int

const (
	// OutcomeNone means nothing happens (the free plan with no URL).
	OutcomeNone OutcomeKind = iota
	// OutcomeOpenExternal opens Target in a new browsing context.
	OutcomeOpenExternal
	// OutcomeNavigate navigates the current context to Target.
	OutcomeNavigate
	// OutcomeNotice surfaces Message to the user without navigating.
	OutcomeNotice
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOpenExternal:
		return "open_external"
	case OutcomeNavigate:
		return "navigate"
	case OutcomeNotice:
		return "notice"
	default:
		return "none"
	}
}

// Outcome is the navigation result of a plan selection.
type Outcome struct {
	Kind    OutcomeKind
	Target  string
	Message string
}

// CheckoutOptions override the redirect URLs sent with a checkout session.
// Empty fields default to Origin + /billing/success and /pricing.
type CheckoutOptions struct {
	Origin     string
	SuccessURL string
	CancelURL  string
	CustomerID string
}

// Initiator turns a plan selection into a navigation outcome, calling the
// checkout API when the plan needs a payment session.
type Initiator struct {
	client *Client
}

// NewInitiator creates a checkout initiator on top of a pricing client.
func NewInitiator(client *Client) *Initiator {
	return &Initiator{client: client}
}

// Initiate evaluates the selection policy in order: a plan URL wins over
// checkout, checkout requires a payment reference and a non-free plan, and
// anything else yields a notice. It is safe to call again after a failed
// attempt; the same decision is simply repeated.
func (i *Initiator) Initiate(ctx context.Context, plan Plan, opts CheckoutOptions) Outcome {
	if u := strings.TrimSpace(plan.URL); u != "" {
		if isAbsoluteURL(u) {
			return Outcome{Kind: OutcomeOpenExternal, Target: u}
		}
		return Outcome{Kind: OutcomeNavigate, Target: u}
	}

	if plan.PaymentRef != "" && plan.ID != FreePlanID {
		session, err := i.client.CreateCheckoutSession(ctx, CheckoutRequest{
			PlanID:     plan.ID,
			SuccessURL: defaultURL(opts.SuccessURL, opts.Origin, "/billing/success"),
			CancelURL:  defaultURL(opts.CancelURL, opts.Origin, "/pricing"),
			CustomerID: opts.CustomerID,
			Metadata: map[string]string{
				"plan_name": plan.Name,
				"plan_id":   plan.ID,
			},
		})
		if err != nil {
			return Outcome{
				Kind:    OutcomeNotice,
				Message: fmt.Sprintf("Unable to start subscription checkout: %v. Please try again or contact support if the issue persists.", err),
			}
		}
		return Outcome{Kind: OutcomeNavigate, Target: session.SessionURL}
	}

	if plan.ID != FreePlanID {
		return Outcome{
			Kind:    OutcomeNotice,
			Message: "This plan is not available for online purchase. Please contact support.",
		}
	}

	return Outcome{Kind: OutcomeNone}
}

func isAbsoluteURL(u string) bool {
	return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
}

func defaultURL(override, origin, path string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	return strings.TrimRight(origin, "/") + path
}
