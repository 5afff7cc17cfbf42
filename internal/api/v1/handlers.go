package apiv1

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ainative-studio/studio-web/internal/pkg/config"
	"github.com/ainative-studio/studio-web/internal/pkg/pricing"
)

// APIServer implements the ServerInterface
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// ServerInterface lists the operations the v1 API serves.
type ServerInterface interface {
	GetPing(c *fiber.Ctx) error
	GetPricingPlans(c *fiber.Ctx) error
	PostPricingCheckout(c *fiber.Ctx) error
}

// Pong is the ping response body.
type Pong struct {
	Ping string `json:"ping"`
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetPricingPlans returns the resolved plan catalog as JSON. The response
// keeps the upstream envelope shape so clients of the upstream API can
// consume this endpoint unchanged.
func (s *APIServer) GetPricingPlans(c *fiber.Ctx) error {
	cfg := config.Load()
	ctx, cancel := context.WithTimeout(c.Context(), 20*time.Second)
	defer cancel()

	resolver := pricing.NewResolver(pricing.DefaultClient(), cfg)
	catalog := resolver.Resolve(ctx)

	message := "plans resolved from pricing API"
	if catalog.Source == pricing.SourceFallback {
		message = "plans resolved from fallback catalog"
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data": fiber.Map{
			"plans": catalog.Plans,
		},
	})
}

type checkoutBody struct {
	PlanID     string `json:"plan_id"`
	SuccessURL string `json:"success_url"`
	CancelURL  string `json:"cancel_url"`
	CustomerID string `json:"customer_id"`
}

// PostPricingCheckout runs the checkout decision for a plan and returns
// the outcome as JSON, for clients that render the pricing page
// themselves.
func (s *APIServer) PostPricingCheckout(c *fiber.Ctx) error {
	var body checkoutBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid request body",
		})
	}
	if body.PlanID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "plan_id is required",
		})
	}

	cfg := config.Load()
	ctx, cancel := context.WithTimeout(c.Context(), 20*time.Second)
	defer cancel()

	resolver := pricing.NewResolver(pricing.DefaultClient(), cfg)
	catalog := resolver.Resolve(ctx)

	plan, ok := catalog.PlanByID(body.PlanID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "unknown plan",
		})
	}

	initiator := pricing.NewInitiator(pricing.DefaultClient())
	outcome := initiator.Initiate(ctx, plan, pricing.CheckoutOptions{
		Origin:     c.BaseURL(),
		SuccessURL: body.SuccessURL,
		CancelURL:  body.CancelURL,
		CustomerID: body.CustomerID,
	})

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"kind":    outcome.Kind.String(),
			"target":  outcome.Target,
			"message": outcome.Message,
		},
	})
}

// RegisterHandlers mounts the v1 routes on the given router group.
func RegisterHandlers(router fiber.Router, s ServerInterface) {
	router.Get("/ping", s.GetPing)
	router.Get("/pricing/plans", s.GetPricingPlans)
	router.Post("/pricing/checkout", s.PostPricingCheckout)
}
