package router

import (
	"strings"
	"time"

	"github.com/ainative-studio/studio-web/app/controllers"
	"github.com/ainative-studio/studio-web/internal/pkg/constants"
	"github.com/ainative-studio/studio-web/internal/pkg/env"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/csrf"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	csrfConf := csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		CookieSecure:   !env.IsDev(),
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
	}

	group := app.Group("", cors.New(), csrf.New(csrfConf))
	group.Get(constants.HomeRoute, controllers.HandleHome)
	group.Get(constants.ProductsRoute, controllers.HandleProducts)
	group.Get(constants.AIKitRoute, controllers.HandleAIKit)

	group.Get(constants.PricingRoute, controllers.HandlePricing)
	group.Post(constants.PricingCheckoutRoute, controllers.HandlePricingCheckout)
	group.Get(constants.BillingSuccessRoute, controllers.HandleBillingSuccess)

	group.Get(constants.ContactRoute, controllers.HandleContact)
	group.Post(constants.ContactRoute, controllers.HandleContactSubmit)
}
