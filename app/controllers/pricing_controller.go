package controllers

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/ainative-studio/studio-web/internal/pkg/config"
	"github.com/ainative-studio/studio-web/internal/pkg/constants"
	"github.com/ainative-studio/studio-web/internal/pkg/pricing"
	"github.com/ainative-studio/studio-web/internal/pkg/session"
	"github.com/ainative-studio/studio-web/internal/pkg/statistics"
	"github.com/ainative-studio/studio-web/internal/pkg/viewmodel"
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
)

// Session keys carried from checkout initiation to the success page.
const (
	sessionCheckoutPlanID   = "checkout_plan_id"
	sessionCheckoutPlanName = "checkout_plan_name"
)

// HandlePricing renders the pricing page from a freshly resolved catalog.
// A failed API fetch still renders the page, from the fallback catalog,
// with a banner telling the visitor live pricing could not be confirmed.
func HandlePricing(c *fiber.Ctx) error {
	if err := statistics.AddPageView(constants.PricingRoute); err != nil {
		log.Printf("Warning: could not count pricing page view: %v", err)
	}

	cfg := config.Load()
	ctx, cancel := context.WithTimeout(c.Context(), 20*time.Second)
	defer cancel()

	resolver := pricing.NewResolver(pricing.DefaultClient(), cfg)
	catalog := resolver.Resolve(ctx)

	og := &viewmodel.OpenGraph{
		Title:       "Pricing - AINative Studio",
		Description: "Simple, transparent pricing. Pick a plan tailored for your team size and development stage.",
		URL:         constants.PricingRoute,
	}

	return c.Render("pricing", fiber.Map{
		"Title":        "Pricing",
		"Plans":        catalog.Plans,
		"UsedFallback": catalog.Source == pricing.SourceFallback,
		"Msg":          flash.Get(c),
		"OG":           og,
		"CSRFToken":    c.Locals("csrf"),
	}, "layouts/main")
}

// HandlePricingCheckout handles the plan selection POST. It re-resolves
// the catalog, finds the selected plan and runs the checkout decision:
// plan URL wins, then a checkout session, otherwise a notice.
func HandlePricingCheckout(c *fiber.Ctx) error {
	planID := strings.TrimSpace(c.FormValue("plan_id"))
	if planID == "" {
		return flash.WithError(c, fiber.Map{"type": "error", "message": "No plan selected."}).Redirect(constants.PricingRoute)
	}

	cfg := config.Load()
	ctx, cancel := context.WithTimeout(c.Context(), 20*time.Second)
	defer cancel()

	resolver := pricing.NewResolver(pricing.DefaultClient(), cfg)
	catalog := resolver.Resolve(ctx)

	plan, ok := catalog.PlanByID(planID)
	if !ok {
		return flash.WithError(c, fiber.Map{"type": "error", "message": "Unknown plan. Please pick a plan from the list."}).Redirect(constants.PricingRoute)
	}

	initiator := pricing.NewInitiator(pricing.DefaultClient())
	outcome := initiator.Initiate(ctx, plan, pricing.CheckoutOptions{
		Origin: c.BaseURL(),
	})

	switch outcome.Kind {
	case pricing.OutcomeOpenExternal:
		return c.Redirect(outcome.Target, fiber.StatusSeeOther)
	case pricing.OutcomeNavigate:
		_ = session.SetSessionValue(c, sessionCheckoutPlanID, plan.ID)
		_ = session.SetSessionValue(c, sessionCheckoutPlanName, plan.Name)
		return c.Redirect(outcome.Target, fiber.StatusSeeOther)
	case pricing.OutcomeNotice:
		return flash.WithError(c, fiber.Map{"type": "error", "message": outcome.Message}).Redirect(constants.PricingRoute)
	default:
		return c.Redirect(constants.PricingRoute, fiber.StatusSeeOther)
	}
}

// HandleBillingSuccess thanks the visitor after a completed checkout.
func HandleBillingSuccess(c *fiber.Ctx) error {
	planName := session.GetSessionValue(c, sessionCheckoutPlanName)

	return c.Render("billing_success", fiber.Map{
		"Title":    "Thank you",
		"PlanName": planName,
		"Msg":      flash.Get(c),
	}, "layouts/main")
}
