// Package main is the solarctl CLI: extract solar module specs from a
// datasheet PDF and write the canonical JSON to a file.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/solarstack/datasheet-api/internal/config"
	"github.com/solarstack/datasheet-api/internal/pipeline"
	"github.com/solarstack/datasheet-api/internal/services/extraction"
)

func main() {
	// Pipeline progress goes through log; keep it on stderr without
	// timestamps so stdout stays clean for the progress lines below.
	log.SetFlags(0)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solarctl",
		Short: "Extract solar module specs from datasheet PDFs",
		Long: `solarctl extracts structured technical specifications from solar-panel
datasheet PDFs using a hosted LLM and writes the result as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newExtractCmd())

	return cmd
}

func newExtractCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "extract <pdf>",
		Short: "Extract specs from a datasheet PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pdfPath := args[0]

			// config.Load reads .env, so the CLI shares the server's settings.
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if _, err := os.Stat(pdfPath); err != nil {
				return fmt.Errorf("file not found: %s", pdfPath)
			}

			llm := extraction.New(
				cfg.OpenRouterAPIKey,
				cfg.OpenRouterModel,
				cfg.OpenRouterBaseURL,
				time.Duration(cfg.LLMTimeoutSeconds)*time.Second,
			)
			processor := pipeline.New(llm)

			fmt.Printf("Extracting text from %s...\n", pdfPath)
			fmt.Printf("Sending to %s...\n", cfg.OpenRouterModel)

			out, err := processor.ProcessFile(cmd.Context(), pdfPath)
			if err != nil {
				return err
			}

			fmt.Println("Extraction successful.")

			data, err := out.Result.MarshalIndent()
			if err != nil {
				return fmt.Errorf("failed to serialize result: %w", err)
			}
			if err := os.WriteFile(outputPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}

			fmt.Printf("Results saved to %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "output.json", "Path to save the output JSON file")

	return cmd
}
