package tracker

import (
	"strings"
	"testing"

	"github.com/ibskk/subscription-tracker/internal/model"
)

func exportFixture(t *testing.T) []model.Subscription {
	t.Helper()
	return []model.Subscription{
		{
			Name:        "Netflix",
			Amount:      15.99,
			Cycle:       model.CycleMonthly,
			Category:    model.CategoryStreaming,
			NextPayment: mustDate(t, "2026-09-05"),
		},
		{
			Name:        "Backups",
			Amount:      120,
			Cycle:       model.CycleYearly,
			Category:    model.CategorySaaS,
			NextPayment: mustDate(t, "2027-01-15"),
		},
	}
}

func TestExportRows(t *testing.T) {
	rows := ExportRows(exportFixture(t))

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (header + 2 data)", len(rows))
	}

	header := strings.Join(rows[0], ",")
	if header != "name,amount,billing_cycle,category,next_payment" {
		t.Fatalf("header = %q", header)
	}

	// Amounts are raw numeric values, no currency symbol or padding.
	if rows[1][1] != "15.99" {
		t.Fatalf("amount cell = %q, want 15.99", rows[1][1])
	}
	if rows[2][1] != "120" {
		t.Fatalf("amount cell = %q, want 120", rows[2][1])
	}

	want := []string{"Backups", "120", "Yearly", "SaaS", "2027-01-15"}
	for i, cell := range want {
		if rows[2][i] != cell {
			t.Fatalf("row 2 col %d = %q, want %q", i, rows[2][i], cell)
		}
	}
}

func TestExportRowsEmpty(t *testing.T) {
	rows := ExportRows(nil)
	if len(rows) != 1 {
		t.Fatalf("empty export should still carry the header, got %d rows", len(rows))
	}
}

func TestWriteCSV(t *testing.T) {
	var b strings.Builder
	if err := WriteCSV(&b, exportFixture(t)); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "name,amount,billing_cycle,category,next_payment" {
		t.Fatalf("csv header = %q", lines[0])
	}
	if lines[1] != "Netflix,15.99,Monthly,Streaming,2026-09-05" {
		t.Fatalf("csv row = %q", lines[1])
	}
}

func TestWriteXLSX(t *testing.T) {
	path := t.TempDir() + "/subs.xlsx"
	if err := WriteXLSX(path, exportFixture(t)); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}
}
