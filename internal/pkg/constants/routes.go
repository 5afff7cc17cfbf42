package constants

// Static route constants
const (
	HomeRoute            = "/"
	PricingRoute         = "/pricing"
	PricingCheckoutRoute = "/pricing/checkout"
	ProductsRoute        = "/products"
	AIKitRoute           = "/ai-kit"
	ContactRoute         = "/contact"
	BillingSuccessRoute  = "/billing/success"
	LoginRoute           = "/login"
)
