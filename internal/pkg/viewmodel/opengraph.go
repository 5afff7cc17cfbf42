package viewmodel

// OpenGraph holds the social sharing metadata rendered into page heads
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	URL         string
}
