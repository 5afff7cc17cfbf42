package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/ainative-studio/studio-web/internal/pkg/aikit"
	"github.com/ainative-studio/studio-web/internal/pkg/config"
	"github.com/ainative-studio/studio-web/internal/pkg/constants"
	"github.com/ainative-studio/studio-web/internal/pkg/statistics"
	"github.com/ainative-studio/studio-web/internal/pkg/viewmodel"
)

// HandleHome renders the landing page.
func HandleHome(c *fiber.Ctx) error {
	if err := statistics.AddPageView(constants.HomeRoute); err != nil {
		log.Printf("Warning: could not count home page view: %v", err)
	}

	cfg := config.Load()

	og := &viewmodel.OpenGraph{
		Title:       "AINative Studio - AI-Native Development Tools",
		Description: "Build faster with an AI-native IDE, agent swarms and the AI Kit package collection.",
		URL:         constants.HomeRoute,
	}

	return c.Render("index", fiber.Map{
		"Title": "AINative Studio",
		"Stats": cfg.Stats,
		"Links": cfg.Links,
		"Msg":   flash.Get(c),
		"OG":    og,
	}, "layouts/main")
}

// HandleProducts renders the products overview.
func HandleProducts(c *fiber.Ctx) error {
	if err := statistics.AddPageView(constants.ProductsRoute); err != nil {
		log.Printf("Warning: could not count products page view: %v", err)
	}

	cfg := config.Load()

	return c.Render("products", fiber.Map{
		"Title":    "Products",
		"Features": aikit.SiteFeatures,
		"Links":    cfg.Links,
		"Msg":      flash.Get(c),
	}, "layouts/main")
}

// HandleAIKit renders the AI Kit package catalog grouped by category.
func HandleAIKit(c *fiber.Ctx) error {
	if err := statistics.AddPageView(constants.AIKitRoute); err != nil {
		log.Printf("Warning: could not count ai-kit page view: %v", err)
	}

	return c.Render("aikit", fiber.Map{
		"Title":    "AI Kit",
		"Packages": aikit.Packages,
		"Msg":      flash.Get(c),
	}, "layouts/main")
}
