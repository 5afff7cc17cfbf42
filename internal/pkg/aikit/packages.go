package aikit

// Package describes one published AI Kit NPM package.
type Package struct {
	Name        string
	Description string
	Category    string
	Features    []string
}

// Feature is one selling point rendered on the AI Kit page.
type Feature struct {
	Title       string
	Description string
}

// Packages is the published AI Kit catalog. Order is render order.
var Packages = []Package{
	{
		Name:        "@ainative-studio/aikit-core",
		Description: "Core utilities and shared types for AI Kit ecosystem",
		Category:    "Core",
		Features:    []string{"Type safety", "Base utilities", "Common interfaces"},
	},
	{
		Name:        "@ainative/ai-kit-auth",
		Description: "Authentication and authorization utilities for AI applications",
		Category:    "Security",
		Features:    []string{"JWT handling", "OAuth flows", "Session management"},
	},
	{
		Name:        "@ainative/ai-kit",
		Description: "React hooks and components for AI-powered applications",
		Category:    "Framework",
		Features:    []string{"Custom hooks", "AI components", "State management"},
	},
	{
		Name:        "@ainative/ai-kit-vue",
		Description: "Vue composables and components for AI integration",
		Category:    "Framework",
		Features:    []string{"Composables", "Vue 3 support", "Reactive AI"},
	},
	{
		Name:        "@ainative/ai-kit-svelte",
		Description: "Svelte stores and components for AI applications",
		Category:    "Framework",
		Features:    []string{"Svelte stores", "Components", "Reactive patterns"},
	},
	{
		Name:        "@ainative/ai-kit-nextjs",
		Description: "Next.js utilities and middleware for AI integration",
		Category:    "Framework",
		Features:    []string{"Server actions", "API routes", "Edge runtime"},
	},
	{
		Name:        "@ainative/ai-kit-design-system",
		Description: "Pre-built UI components and design tokens for AI interfaces",
		Category:    "UI/UX",
		Features:    []string{"Design tokens", "Components", "Themes"},
	},
	{
		Name:        "@ainative/ai-kit-zerodb",
		Description: "ZeroDB client SDK for vector search and AI-native storage",
		Category:    "Data",
		Features:    []string{"Vector search", "AI storage", "Real-time sync"},
	},
	{
		Name:        "@ainative/ai-kit-cli",
		Description: "Command-line tools for AI Kit development and deployment",
		Category:    "DevTools",
		Features:    []string{"Project scaffolding", "Deploy tools", "Code generation"},
	},
	{
		Name:        "@ainative/ai-kit-testing",
		Description: "Testing utilities and mocks for AI applications",
		Category:    "DevTools",
		Features:    []string{"AI mocks", "Test helpers", "Fixtures"},
	},
	{
		Name:        "@ainative/ai-kit-observability",
		Description: "Monitoring, logging, and observability tools for AI systems",
		Category:    "DevTools",
		Features:    []string{"Metrics", "Tracing", "Logging"},
	},
	{
		Name:        "@ainative/ai-kit-safety",
		Description: "Safety guardrails and content moderation utilities",
		Category:    "Security",
		Features:    []string{"Content filtering", "Rate limiting", "Guardrails"},
	},
	{
		Name:        "@ainative/ai-kit-rlhf",
		Description: "Reinforcement Learning from Human Feedback utilities",
		Category:    "ML",
		Features:    []string{"Feedback collection", "Model training", "A/B testing"},
	},
	{
		Name:        "@ainative/ai-kit-tools",
		Description: "Function calling and tool integration utilities",
		Category:    "Core",
		Features:    []string{"Function schemas", "Tool execution", "Type validation"},
	},
}

// SiteFeatures is the feature grid below the package list.
var SiteFeatures = []Feature{
	{Title: "Production Ready", Description: "Battle-tested packages used in production by thousands of developers"},
	{Title: "Type Safe", Description: "Full TypeScript support with comprehensive type definitions"},
	{Title: "Framework Agnostic", Description: "Works with React, Vue, Svelte, Next.js, and vanilla JavaScript"},
	{Title: "AI Native", Description: "Purpose-built for modern AI application development"},
	{Title: "Vector Storage", Description: "Integrated with ZeroDB for seamless vector search"},
	{Title: "Observable", Description: "Built-in monitoring, logging, and debugging tools"},
}
