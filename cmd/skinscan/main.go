// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the skinscan CLI: personalized
// skincare ingredient analysis from a product label and a user skin
// profile.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MdAmzadAli/SkinBeautyProductAnalyzer/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// resolve returns the first non-empty value among the flag value, the
// viper config key, and the secrets file key.
func resolve(flagValue, viperKey, secretKey string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := viper.GetString(viperKey); v != "" {
		return v
	}
	return loadedSecrets[secretKey]
}

// rootCmd is the base command for the skinscan CLI.
var rootCmd = &cobra.Command{
	Use:   "skinscan",
	Short: "Personalized skincare ingredient analysis",
	Long: `skinscan analyzes a product's ingredient list against a user's skin
profile. It extracts ingredient names from a label photo, enriches them
with weighted web-search evidence, and asks a generative model for a
personalized, citation-backed safety verdict per ingredient.

Each operation is a subcommand: extract (label photo to ingredient
list), analyze (full pipeline), profile (questionnaire answers), and
history (past analyses).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/", os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./skinscan.yaml or ~/.config/skinscan/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "profile/history database path (default: ./skinscan.db)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("skinscan")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "skinscan"))
		}
	}

	viper.SetEnvPrefix("SKINSCAN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// dbPath resolves the store path from flag, config, or default.
func dbPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		path = viper.GetString("store.path")
	}
	if path == "" {
		path = "skinscan.db"
	}
	return path
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
