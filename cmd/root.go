/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tieubaoca/reporto-be/config"
	"github.com/tieubaoca/reporto-be/utils"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "reporto-be",
	Short: "Medical document chat backend",
	Long: `Reporto backend extracts text from uploaded PDFs and images and relays
chat questions, with the extracted context, to a generative AI provider,
streaming the answer back to the client.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config/config.yaml", "config file")
	rootCmd.PersistentFlags().String("provider", "", "AI provider: gemini or openai (overrides config)")
	rootCmd.PersistentFlags().String("model", "", "model name (overrides config)")
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if provider, _ := cmd.Flags().GetString("provider"); provider != "" {
		cfg.Provider = provider
	}
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.Model = model
	}
	if cmd.Flags().Lookup("port") != nil {
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return utils.NewLogger(cfg.LogLevel, cfg.LogFormat)
}
