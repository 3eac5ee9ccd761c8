// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/internal/label"
)

var extractCmd = &cobra.Command{
	Use:   "extract [image]",
	Short: "Extract the ingredient list from a label photo",
	Long: `Extract transcribes the ingredient list printed on a product label
photo via a vision-capable generative model and prints the normalized
ingredient names, one per line. Use it to inspect what 'analyze --image'
would feed into the pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	image, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading label image: %w", err)
	}

	vision := &label.GeminiVision{
		APIKey: resolve(flagString(cmd, "gemini-key"), "label.api_key", "gemini-api-key"),
		Model:  modelFromFlags(cmd),
		Client: &http.Client{Timeout: 120 * time.Second},
		Diag:   os.Stderr,
	}

	ingredients, err := label.ExtractIngredients(context.Background(), vision, image, http.DetectContentType(image))
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ingredients)
	}

	if len(ingredients) == 0 {
		fmt.Println("No ingredients found on the label.")
		return nil
	}
	for _, ing := range ingredients {
		fmt.Println(ing)
	}
	return nil
}

func init() {
	extractCmd.Flags().String("model", "", "generative model identifier")
	extractCmd.Flags().String("gemini-key", "", "Gemini API key")
	extractCmd.Flags().Bool("json", false, "output ingredients as JSON")

	rootCmd.AddCommand(extractCmd)
}
