package pricing

import "github.com/ainative-studio/studio-web/internal/pkg/config"

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// FallbackPlans is the static catalog served whenever the pricing API is
// unreachable or returns a bad envelope. Prices and feature texts mirror
// the live Stripe products and are part of the page's observable contract.
func FallbackPlans(cfg config.Site) []Plan {
	return []Plan{
		{
			ID:            "free",
			Name:          "Free",
			Description:   "Perfect for getting started",
			Price:         floatPtr(0),
			Currency:      "USD",
			BillingPeriod: "",
			PaymentRef:    cfg.Pricing.FreePriceRef,
			ButtonText:    "Get Started",
			Level:         LevelStart,
			Highlighted:   false,
			Features: []string{
				"50 prompt credits/month",
				"Across leading models (OpenAI, Claude, Gemini, xAI, and more)",
				"All premium models",
				"Optional zero data retention",
				"Unlimited Fast Tab",
				"Unlimited SWE-1 Lite",
				"Unlimited Command",
				"Previews",
				"2 App Deploys / day",
				"Community support",
			},
			URL:       "/login",
			IsActive:  true,
			SortOrder: intPtr(0),
		},
		{
			ID:            "basic",
			Name:          "Pro",
			Description:   "Great for individual developers",
			Price:         floatPtr(12),
			Currency:      "USD",
			BillingPeriod: PeriodMonth,
			PaymentRef:    cfg.Pricing.BasicPriceRef,
			ButtonText:    "Select Plan",
			Level:         LevelPro,
			Highlighted:   true,
			Features: []string{
				"Everything in Free, plus:",
				"750 prompt credits/month",
				"Across leading models (OpenAI, Claude, Gemini, xAI, and more)",
				"SWE-1 model",
				"Currently available at a promotional rate of 0 credits per prompt",
				"Add-on credits at $10/250 credits",
				"8 App Deploys / day",
				"Priority email support",
			},
			IsActive:  true,
			SortOrder: intPtr(1),
		},
		{
			ID:            "teams",
			Name:          "Teams",
			Description:   "Perfect for development teams",
			Price:         floatPtr(25),
			Currency:      "USD",
			BillingPeriod: PeriodMonth,
			PaymentRef:    cfg.Pricing.TeamsPriceRef,
			ButtonText:    "Select Plan",
			Level:         LevelTeams,
			Highlighted:   false,
			Features: []string{
				"Everything in Pro, plus:",
				"750 prompt credits/user/month",
				"Add-on credits at $40/1000 credits",
				"Code Reviews",
				"Centralized billing",
				"Admin dashboard with analytics",
				"Priority support",
				"Automated zero data retention",
				"SSO available for +$8/user/month",
				"Team collaboration tools",
			},
			IsActive:  true,
			SortOrder: intPtr(2),
		},
		{
			ID:            "enterprise",
			Name:          "Enterprise",
			Description:   "Custom solutions for large organizations",
			Price:         floatPtr(50),
			Currency:      "USD",
			BillingPeriod: PeriodMonth,
			PaymentRef:    cfg.Pricing.EnterprisePriceRef,
			ButtonText:    "Contact Sales",
			Level:         LevelEnterprise,
			Highlighted:   false,
			Features: []string{
				"Everything in Teams, plus:",
				"1,500 prompt credits/user/month",
				"Add-on credits at $40/1000 credits",
				"Role-Based Access Control (RBAC)",
				"SSO + Access control features",
				"For orgs with more than 200 users:",
				"Volume based annual discounts (>200 seats)",
				"Highest priority support",
				"Dedicated account management",
				"Hybrid deployment option",
				"Custom integrations",
				"SLA guarantee",
			},
			URL:       cfg.Links.Calendly,
			IsActive:  true,
			SortOrder: intPtr(3),
		},
	}
}
