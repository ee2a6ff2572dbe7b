package tracker

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ibskk/subscription-tracker/internal/model"

	"github.com/xuri/excelize/v2"
)

// exportHeader is the column order of the spreadsheet artifact. It matches
// the on-disk table layout.
var exportHeader = []string{"name", "amount", "billing_cycle", "category", "next_payment"}

// ExportRows produces the header row followed by one row per subscription
// in input order. Amounts are raw numeric values, no currency formatting.
func ExportRows(subs []model.Subscription) [][]string {
	rows := make([][]string, 0, len(subs)+1)
	rows = append(rows, exportHeader)
	for _, sub := range subs {
		rows = append(rows, []string{
			sub.Name,
			strconv.FormatFloat(sub.Amount, 'f', -1, 64),
			string(sub.Cycle),
			string(sub.Category),
			sub.NextPayment.Format(model.DateLayout),
		})
	}
	return rows
}

// WriteCSV writes the export rows as comma-separated text.
func WriteCSV(w io.Writer, subs []model.Subscription) error {
	cw := csv.NewWriter(w)
	for _, row := range ExportRows(subs) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the export rows as a single-sheet workbook at path.
// Amounts are written as numbers so spreadsheet formulas work on them.
func WriteXLSX(path string, subs []model.Subscription) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Subscriptions"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for i, h := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for r, sub := range subs {
		values := []any{
			sub.Name,
			sub.Amount,
			string(sub.Cycle),
			string(sub.Category),
			sub.NextPayment.Format(model.DateLayout),
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", r+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
