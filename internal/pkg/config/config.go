package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/ainative-studio/studio-web/internal/pkg/env"
)

// Site bundles the configuration the rendered pages and the pricing core
// consume. Values come from the environment with production defaults, so a
// bare checkout still serves a complete site.
type Site struct {
	Company Company
	Links   Links
	Pricing Pricing
	Stats   Stats
	API     API
}

type Company struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	Location      string
	BusinessHours string
}

type Links struct {
	Calendly string
	Blog     string
	LinkedIn string
	GitHub   string
	ZeroDB   string
}

// Pricing holds the payment-provider price reference ids, one per tier.
// The ids are opaque; they are only echoed to the checkout endpoint.
type Pricing struct {
	FreePriceRef       string
	BasicPriceRef      string
	ProPriceRef        string
	TeamsPriceRef      string
	ScalePriceRef      string
	EnterprisePriceRef string
	SwarmPriceRef      string
}

type Stats struct {
	TotalUsers  string
	Rating      string
	ReviewCount string
}

type API struct {
	BaseURL string
	Timeout time.Duration
}

// Load reads the site configuration from the environment.
func Load() Site {
	return Site{
		Company: Company{
			Name:          "AINative Studio",
			Email:         env.GetEnv("COMPANY_EMAIL", "hello@ainative.studio"),
			Phone:         env.GetEnv("COMPANY_PHONE", "(831) 295-1482"),
			Address:       env.GetEnv("COMPANY_ADDRESS", "1101 Pacific Avenue, Santa Cruz, CA 95060"),
			Location:      env.GetEnv("COMPANY_LOCATION", "Santa Cruz, California"),
			BusinessHours: env.GetEnv("BUSINESS_HOURS", "Monday - Friday, 9:00 AM - 6:00 PM PST"),
		},
		Links: Links{
			Calendly: env.GetEnv("CALENDLY_URL", "https://calendly.com/seedlingstudio/"),
			Blog:     env.GetEnv("BLOG_URL", "https://blog.ainative.studio"),
			LinkedIn: env.GetEnv("LINKEDIN_URL", "https://www.linkedin.com/company/cody-agent/posts/?feedView=all"),
			GitHub:   env.GetEnv("GITHUB_URL", "https://github.com/AINative-Studio"),
			ZeroDB:   env.GetEnv("ZERODB_URL", "https://zerodb.ainative.studio"),
		},
		Pricing: Pricing{
			FreePriceRef:       env.GetEnv("STRIPE_FREE_PRICE_ID", "price_1RqnriQ15P9oVNQ769M5G46y"),
			BasicPriceRef:      env.GetEnv("STRIPE_BASIC_PRICE_ID", "price_1RqnnmQ15P9oVNQ71LAhpvcp"),
			ProPriceRef:        env.GetEnv("STRIPE_PRO_PRICE_ID", "price_1Rqo1LQ15P9oVNQ7V0vROmsh"),
			TeamsPriceRef:      env.GetEnv("STRIPE_TEAMS_PRICE_ID", "price_1RqnooQ15P9oVNQ73VJGX4LQ"),
			ScalePriceRef:      env.GetEnv("STRIPE_SCALE_PRICE_ID", "price_1Rqo2oQ15P9oVNQ7Eu5odtQ7"),
			EnterprisePriceRef: env.GetEnv("STRIPE_ENTERPRISE_PRICE_ID", "price_1RqnthQ15P9oVNQ7p3lM1BCA"),
			SwarmPriceRef:      env.GetEnv("STRIPE_SWARM_PRICE_ID", "price_1RqnpjQ15P9oVNQ7Zjbj7xuE"),
		},
		Stats: Stats{
			TotalUsers:  env.GetEnv("STATS_USERS", "10,000+"),
			Rating:      env.GetEnv("STATS_RATING", "4.9/5"),
			ReviewCount: env.GetEnv("STATS_REVIEWS", "500+"),
		},
		API: API{
			BaseURL: strings.TrimRight(env.GetEnv("API_BASE_URL", "https://api.ainative.studio"), "/"),
			Timeout: apiTimeout(),
		},
	}
}

func apiTimeout() time.Duration {
	raw := env.GetEnv("API_TIMEOUT_MS", "15000")
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		ms = 15000
	}
	return time.Duration(ms) * time.Millisecond
}
