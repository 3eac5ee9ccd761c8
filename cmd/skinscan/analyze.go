// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/internal/analyze"
	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/internal/label"
	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/internal/profile"
	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/internal/search"
	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/internal/verdict"
	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze product ingredients against a stored skin profile",
	Long: `Analyze runs the full pipeline for one product: web evidence retrieval
for every ingredient, per-ingredient relevance scoring, and a single
generative-model call that rates each ingredient for the stored skin
profile with inline source citations.

Ingredients come from --ingredients (comma-separated) or from a label
photo via --image.`,
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetString("user")

	store, err := profile.OpenSQLite(dbPath(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()

	userProfile, err := store.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if userProfile == nil {
		return fmt.Errorf("no profile for user %q: create one with 'skinscan profile set'", userID)
	}

	ingredients, err := ingredientsFromFlags(cmd, ctx)
	if err != nil {
		return err
	}
	if len(ingredients) == 0 {
		return fmt.Errorf("no ingredients: pass --ingredients or --image")
	}

	searchCfg := searchConfigFromFlags(cmd)
	gen := &verdict.GeminiBackend{
		APIKey: resolve(flagString(cmd, "gemini-key"), "analysis.api_key", "gemini-api-key"),
		Model:  modelFromFlags(cmd),
		Client: &http.Client{Timeout: 120 * time.Second},
	}

	pipeline := analyze.New(&search.GoogleBackend{}, gen, searchCfg, os.Stderr)

	verdicts, err := pipeline.Analyze(ctx, ingredients, *userProfile)
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		productName, _ := cmd.Flags().GetString("product")
		if _, err := store.AddAnalysis(ctx, types.AnalysisRecord{
			UserID:      userID,
			ProductName: productName,
			Ingredients: ingredients,
			Verdicts:    verdicts,
		}); err != nil {
			return fmt.Errorf("saving analysis: %w", err)
		}
	}

	if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
		productName, _ := cmd.Flags().GetString("product")
		if err := analyze.WriteReportFile(outPath, productName, *userProfile, ingredients, verdicts); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", outPath)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return analyze.FormatJSON(verdicts, os.Stdout)
	}
	analyze.FormatTable(verdicts, os.Stdout)
	return nil
}

// ingredientsFromFlags reads the ingredient list from --ingredients or
// extracts it from the --image label photo.
func ingredientsFromFlags(cmd *cobra.Command, ctx context.Context) ([]string, error) {
	if list, _ := cmd.Flags().GetString("ingredients"); list != "" {
		return label.ParseIngredients(list), nil
	}

	imagePath, _ := cmd.Flags().GetString("image")
	if imagePath == "" {
		return nil, nil
	}

	image, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("reading label image: %w", err)
	}

	vision := &label.GeminiVision{
		APIKey: resolve(flagString(cmd, "gemini-key"), "label.api_key", "gemini-api-key"),
		Model:  modelFromFlags(cmd),
		Client: &http.Client{Timeout: 120 * time.Second},
		Diag:   os.Stderr,
	}
	return label.ExtractIngredients(ctx, vision, image, http.DetectContentType(image))
}

func searchConfigFromFlags(cmd *cobra.Command) types.SearchConfig {
	maxResults, _ := cmd.Flags().GetInt("max-results")
	top, _ := cmd.Flags().GetInt("top")
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "skinscan/" + version,
		},
		APIKey:         resolve(flagString(cmd, "search-key"), "search.api_key", "google-search-api-key"),
		EngineID:       resolve(flagString(cmd, "search-engine"), "search.engine_id", "google-search-engine-id"),
		MaxResults:     maxResults,
		TopIngredients: top,
	}
}

func modelFromFlags(cmd *cobra.Command) string {
	model := resolve(flagString(cmd, "model"), "analysis.model", "")
	if model == "" {
		model = "gemini-2.0-flash-exp"
	}
	return model
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func init() {
	analyzeCmd.Flags().String("user", "demo-user", "profile owner to analyze for")
	analyzeCmd.Flags().String("ingredients", "", "comma-separated ingredient list")
	analyzeCmd.Flags().String("image", "", "label photo to extract ingredients from")
	analyzeCmd.Flags().String("product", "", "product name for reports and history")
	analyzeCmd.Flags().Int("max-results", 10, "search results requested per analysis (API caps at 10)")
	analyzeCmd.Flags().Int("top", 5, "ingredients given evidence-backed treatment")
	analyzeCmd.Flags().String("model", "", "generative model identifier")
	analyzeCmd.Flags().String("search-key", "", "Google Custom Search API key")
	analyzeCmd.Flags().String("search-engine", "", "Google Custom Search engine ID")
	analyzeCmd.Flags().String("gemini-key", "", "Gemini API key")
	analyzeCmd.Flags().String("output", "", "write a YAML report to this path")
	analyzeCmd.Flags().Bool("save", false, "record the analysis in history")
	analyzeCmd.Flags().Bool("json", false, "output verdicts as JSON")

	rootCmd.AddCommand(analyzeCmd)
}
