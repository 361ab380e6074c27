/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tieubaoca/reporto-be/service"
	"github.com/tieubaoca/reporto-be/types"
	"github.com/tieubaoca/reporto-be/utils"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract text from local documents",
	Long: `Runs the same PDF/OCR extraction as the upload endpoint on local files
and prints the text of each one. Use --file for a single document or
--directory for every file in a directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath, _ := cmd.Flags().GetString("file")
		directory, _ := cmd.Flags().GetString("directory")
		if (filePath == "") == (directory == "") {
			return errors.New("exactly one of --file or --directory is required")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		documentService := service.NewDocumentService(
			service.NewPDFService(),
			service.NewOCRService(types.OCRConfig{
				Command:  cfg.OCR.Command,
				Language: cfg.OCR.Language,
			}),
			logger,
		)

		files := []string{filePath}
		if directory != "" {
			files, err = utils.ListFiles(directory)
			if err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, path := range files {
			content, mediaType, err := utils.ReadDocument(path)
			if err == nil {
				var text string
				text, err = documentService.Extract(cmd.Context(), content, mediaType)
				if err == nil {
					fmt.Fprintf(out, "=== %s\n%s\n", path, text)
					continue
				}
			}
			failed++
			logger.Warn("Failed to extract document", zap.String("file", path), zap.Error(err))
			fmt.Fprintf(out, "=== %s\nerror: %v\n", path, err)
		}

		if failed > 0 && failed == len(files) {
			return fmt.Errorf("no text extracted from %d file(s)", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("file", "f", "", "Path to the file to extract")
	extractCmd.Flags().StringP("directory", "d", "", "Path to a directory of files to extract")
}
