package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/ibskk/subscription-tracker/internal/tracker"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export subscriptions to CSV (or XLSX with an .xlsx output path)",
	Long: "Write all subscriptions in spreadsheet-compatible form.\n" +
		"Without --out the CSV goes to stdout. An --out path ending in .xlsx\n" +
		"produces an Excel workbook instead.",
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default: CSV on stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	subs, err := s.ListAll()
	if err != nil {
		return err
	}

	if flagExportOut == "" {
		return tracker.WriteCSV(os.Stdout, subs)
	}

	if strings.HasSuffix(strings.ToLower(flagExportOut), ".xlsx") {
		if err := tracker.WriteXLSX(flagExportOut, subs); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "  Wrote %d subscriptions to %s\n", len(subs), flagExportOut)
		return nil
	}

	f, err := os.Create(flagExportOut)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := tracker.WriteCSV(f, subs); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "  Wrote %d subscriptions to %s\n", len(subs), flagExportOut)
	return nil
}
