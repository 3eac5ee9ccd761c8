// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/internal/profile"
	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/pkg/types"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage skin profiles (get, set)",
	Long: `Profile stores the questionnaire answers the analysis is personalized
against: skin type, concerns, allergies, lifestyle, and an optional
free-text note.`,
}

// --- set subcommand ---

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or replace a skin profile",
	RunE:  runProfileSet,
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetString("user")
	skinType, _ := cmd.Flags().GetString("skin-type")
	note, _ := cmd.Flags().GetString("note")

	p := types.UserProfile{
		UserID:         userID,
		SkinType:       types.SkinType(skinType),
		Concerns:       splitTags(flagString(cmd, "concerns")),
		Allergies:      splitTags(flagString(cmd, "allergies")),
		Lifestyle:      splitTags(flagString(cmd, "lifestyle")),
		AdditionalInfo: note,
	}
	if !types.ValidSkinType(p.SkinType) {
		return fmt.Errorf("invalid skin type %q: use normal, dry, oily, combination, or sensitive", skinType)
	}

	store, err := profile.OpenSQLite(dbPath(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.PutProfile(context.Background(), p); err != nil {
		return err
	}
	fmt.Printf("Profile saved for %s\n", userID)
	return nil
}

// --- get subcommand ---

var profileGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a stored skin profile",
	RunE:  runProfileGet,
}

func runProfileGet(cmd *cobra.Command, args []string) error {
	userID, _ := cmd.Flags().GetString("user")

	store, err := profile.OpenSQLite(dbPath(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	p, err := store.GetProfile(context.Background(), userID)
	if err != nil {
		return err
	}
	if p == nil {
		fmt.Printf("No profile for %s.\n", userID)
		return nil
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	}

	fmt.Printf("User:      %s\n", p.UserID)
	fmt.Printf("Skin type: %s\n", p.SkinType)
	fmt.Printf("Concerns:  %s\n", strings.Join(p.Concerns, ", "))
	fmt.Printf("Allergies: %s\n", strings.Join(p.Allergies, ", "))
	fmt.Printf("Lifestyle: %s\n", strings.Join(p.Lifestyle, ", "))
	if p.AdditionalInfo != "" {
		fmt.Printf("Note:      %s\n", p.AdditionalInfo)
	}
	return nil
}

// splitTags parses a comma-separated flag value into trimmed tags.
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func init() {
	profileCmd.PersistentFlags().String("user", "demo-user", "profile owner")

	profileSetCmd.Flags().String("skin-type", "", "skin type: normal, dry, oily, combination, sensitive")
	profileSetCmd.Flags().String("concerns", "", "comma-separated concerns (e.g. acne, aging)")
	profileSetCmd.Flags().String("allergies", "", "comma-separated allergies/sensitivities")
	profileSetCmd.Flags().String("lifestyle", "", "comma-separated lifestyle factors")
	profileSetCmd.Flags().String("note", "", "optional free-text note")

	profileGetCmd.Flags().Bool("json", false, "output the profile as JSON")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileGetCmd)

	rootCmd.AddCommand(profileCmd)
}
