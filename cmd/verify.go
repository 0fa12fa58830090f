package cmd

import (
	"context"
	"fmt"
	"os"

	"invoice-verifier/core/config"
	"invoice-verifier/core/logger"
	"invoice-verifier/feature/verification"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the verify command
	excelPath  string
	pdfPath    string
	outputPath string
)

// verifyCmd runs a single verification from the command line.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a shipment declaration against a carrier invoice",
	Long: `Verify reconciles a declaration spreadsheet against the carrier's
commercial invoice PDF and prints a plain-text discrepancy report.

Examples:
  # Report to stdout
  verify --excel declaration.xlsx --pdf invoice.pdf

  # Report to a file
  verify --excel declaration.xlsx --pdf invoice.pdf --output report.txt`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&excelPath, "excel", "", "Path to the declaration spreadsheet (required)")
	verifyCmd.Flags().StringVar(&pdfPath, "pdf", "", "Path to the carrier invoice PDF (required)")
	verifyCmd.Flags().StringVar(&outputPath, "output", "", "Write the report to a file instead of stdout")
	_ = verifyCmd.MarkFlagRequired("excel")
	_ = verifyCmd.MarkFlagRequired("pdf")

	RootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	excelFile, err := os.Open(excelPath)
	if err != nil {
		return fmt.Errorf("failed to open excel file: %w", err)
	}
	defer excelFile.Close()

	pdfFile, err := os.Open(pdfPath)
	if err != nil {
		return fmt.Errorf("failed to open pdf file: %w", err)
	}
	defer pdfFile.Close()

	// CLI runs never archive, no storage client needed.
	svc := verification.NewService(nil, "", l, cfg.Verify)

	result, err := svc.Verify(ctx, excelFile, pdfFile)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(result.Report), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		l.Info("Report written", zap.String("path", outputPath))
	} else {
		fmt.Print(result.Report)
	}

	l.Info("Verification finished",
		zap.Bool("pass", result.Pass),
		zap.Int("perfect_matches", result.Summary.PerfectMatches),
		zap.Int("partial_matches", len(result.Summary.Partials)),
		zap.Int("excel_only", len(result.Summary.UnmatchedExcel)),
		zap.Int("pdf_only", len(result.Summary.UnmatchedPDF)),
	)

	// Discrepancies are a reported outcome, not a command failure.
	return nil
}
