package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/ainative-studio/studio-web/internal/pkg/config"
	"github.com/ainative-studio/studio-web/internal/pkg/env"
	"github.com/ainative-studio/studio-web/internal/pkg/pricing"
)

var apiBaseURL string

func main() {
	rootCmd := &cobra.Command{
		Use:   "sitectl",
		Short: "Operations helper for the AINative Studio website",
		Long:  "Inspect the live plan catalog the website resolves and export it for the sales team.",
	}

	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", "", "pricing API base URL (defaults to API_BASE_URL)")

	plansCmd := &cobra.Command{
		Use:   "plans",
		Short: "Print the resolved plan catalog",
		Long:  "Resolve the plan catalog the pricing page would render, from the pricing API with fallback, and print it.",
		RunE:  runPlans,
	}
	rootCmd.AddCommand(plansCmd)

	var output string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the resolved plan catalog to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(output)
		},
	}
	exportCmd.Flags().StringVarP(&output, "output", "o", "plans.xlsx", "output file path")
	plansCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveCatalog() (pricing.Catalog, config.Site) {
	env.SetupEnvFile()
	if apiBaseURL != "" {
		env.Env["API_BASE_URL"] = apiBaseURL
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resolver := pricing.NewResolver(pricing.NewClient(cfg), cfg)
	return resolver.Resolve(ctx), cfg
}

func runPlans(cmd *cobra.Command, args []string) error {
	catalog, _ := resolveCatalog()

	fmt.Printf("Source: %s\n\n", catalog.Source)
	fmt.Printf("%-16s %-14s %-10s %-8s %-12s %s\n", "ID", "NAME", "PRICE", "PERIOD", "LEVEL", "BUTTON")
	for _, plan := range catalog.Plans {
		fmt.Printf("%-16s %-14s %-10s %-8s %-12s %s\n",
			plan.ID, plan.Name, plan.PriceLabel(), plan.PeriodLabel(), plan.Level, plan.ButtonText)
	}
	return nil
}

func runExport(output string) error {
	catalog, _ := resolveCatalog()

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Plans"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headers := []string{"ID", "Name", "Description", "Price", "Currency", "Billing Period", "Level", "Button", "Highlighted", "Sort Order", "Features"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for row, plan := range catalog.Plans {
		sortOrder := 0
		if plan.SortOrder != nil {
			sortOrder = *plan.SortOrder
		}
		price := ""
		if plan.Price != nil {
			price = fmt.Sprintf("%.2f", *plan.Price)
		}
		values := []interface{}{
			plan.ID, plan.Name, plan.Description, price, plan.Currency,
			plan.BillingPeriod, string(plan.Level), plan.ButtonText,
			plan.Highlighted, sortOrder, joinLines(plan.Features),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(output); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	fmt.Printf("Exported %d plans (%s) to %s\n", len(catalog.Plans), catalog.Source, output)
	return nil
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
