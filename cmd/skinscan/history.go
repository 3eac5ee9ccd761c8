// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/internal/profile"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past analyses for a user",
	Long: `History lists analyses recorded with 'analyze --save', most recent
first, with their per-tier verdict counts.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetString("user")
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := profile.OpenSQLite(dbPath(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.ListAnalyses(context.Background(), userID, limit)
	if err != nil {
		return err
	}

	if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
		data, err := yaml.Marshal(records)
		if err != nil {
			return fmt.Errorf("marshaling history: %w", err)
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("writing history export: %w", err)
		}
		fmt.Fprintf(os.Stderr, "History written to %s\n", outPath)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Printf("No analyses recorded for %s.\n", userID)
		return nil
	}

	fmt.Printf("%-6s  %-20s  %-25s  %-6s  %s\n", "ID", "Date", "Product", "Items", "Verdicts")
	fmt.Println(strings.Repeat("-", 90))
	for _, rec := range records {
		product := rec.ProductName
		if product == "" {
			product = "(unnamed)"
		}
		if len(product) > 25 {
			product = product[:22] + "..."
		}

		counts := make(map[string]int)
		for _, v := range rec.Verdicts {
			counts[string(v.Safety)]++
		}
		var parts []string
		for _, tier := range []string{"excellent", "good", "notbad", "bad"} {
			if counts[tier] > 0 {
				parts = append(parts, fmt.Sprintf("%d %s", counts[tier], tier))
			}
		}

		fmt.Printf("%-6d  %-20s  %-25s  %-6d  %s\n",
			rec.ID, rec.CreatedAt.Format("2006-01-02 15:04"), product,
			len(rec.Ingredients), strings.Join(parts, ", "))
	}
	fmt.Printf("\n%d analyses\n", len(records))
	return nil
}

func init() {
	historyCmd.Flags().String("user", "demo-user", "profile owner")
	historyCmd.Flags().Int("limit", 20, "maximum analyses to list (0 = all)")
	historyCmd.Flags().Bool("json", false, "output history as JSON")
	historyCmd.Flags().String("output", "", "export history to a YAML file")

	rootCmd.AddCommand(historyCmd)
}
