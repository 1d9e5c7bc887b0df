package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	portssvc "github.com/taxtrackng/taxtrack_backend/internal/core/ports/services"
	"github.com/taxtrackng/taxtrack_backend/internal/core/services"
	"github.com/taxtrackng/taxtrack_backend/internal/platform/config"
	"github.com/taxtrackng/taxtrack_backend/internal/recognizer"
	"github.com/taxtrackng/taxtrack_backend/internal/repositories/database/sqlite"
)

func scanCmd() *cobra.Command {
	var (
		dryRun    bool
		engineURL string
		apiKey    string
		language  string
	)

	cmd := &cobra.Command{
		Use:   "scan <image>...",
		Short: "Extract tax entries from receipt images",
		Long: `Scan sends each image through the recognition engine, stages the
detected amounts and commits every candidate to the ledger. VAT-marked
lines are converted to the 7.5% VAT amount before committing.

With --dry-run the candidates are printed but nothing is committed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				apiKey = os.Getenv("OCR_ENGINE_API_KEY")
			}

			files := make([]portssvc.ReceiptFile, 0, len(args))
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", path, err)
				}
				defer f.Close()
				files = append(files, portssvc.ReceiptFile{Name: f.Name(), Reader: f})
			}

			ledger, store, err := openLedger()
			if err != nil {
				return err
			}
			defer store.Close()

			client := recognizer.NewClient(&config.Config{
				OCREngineURL:    engineURL,
				OCREngineAPIKey: apiKey,
				OCRLanguage:     language,
			})
			extraction := services.NewExtractionService(client, ledger)

			bar := progressbar.NewOptions(100,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("scanning"),
				progressbar.OptionClearOnFinish(),
			)
			onProgress := func(p portssvc.RecognitionProgress) {
				bar.Describe(p.Status)
				_ = bar.Set(int(p.Progress * 100))
			}

			run, err := extraction.ExtractReceipts(cmd.Context(), sqlite.LocalOwnerID, files, onProgress)
			_ = bar.Finish()
			if err != nil {
				return err
			}

			for _, fr := range run.Files {
				if fr.Error != "" {
					fmt.Fprintf(os.Stderr, "warning: %s: %s\n", fr.FileName, fr.Error)
				}
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "TYPE\tAMOUNT (%s)\tDETAILS\tSOURCE\n", currencySymbol)
			for _, line := range run.Lines {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", line.Type, line.Amount.StringFixed(2), line.Details, line.Source)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if dryRun {
				fmt.Println("Dry run: nothing committed.")
				return nil
			}

			committed, err := extraction.ConfirmRun(cmd.Context(), sqlite.LocalOwnerID, run.RunID)
			if err != nil {
				return fmt.Errorf("failed to commit candidates: %w", err)
			}
			fmt.Printf("Committed %d transaction(s) to the ledger.\n", len(committed))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "stage and print candidates without committing")
	cmd.Flags().StringVar(&engineURL, "engine-url", "https://api.ocr.space/parse/image", "recognition engine endpoint")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "recognition engine API key (default: $OCR_ENGINE_API_KEY)")
	cmd.Flags().StringVar(&language, "language", "eng", "recognition language hint")

	return cmd
}
