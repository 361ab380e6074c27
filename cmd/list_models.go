/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tieubaoca/reporto-be/service"
)

// listModelsCmd represents the list-models command
var listModelsCmd = &cobra.Command{
	Use:   "list-models",
	Short: "List Gemini models that support content generation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		gemini, err := service.NewGeminiService(cmd.Context(), cfg.GoogleAPIKey, cfg.Model)
		if err != nil {
			return fmt.Errorf("error configuring Gemini API: %w", err)
		}
		defer gemini.Close()

		models, err := gemini.ListModels(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range models {
			fmt.Fprintf(cmd.OutOrStdout(), "Found model: %s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listModelsCmd)
}
