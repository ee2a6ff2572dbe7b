package cli

import (
	"testing"

	"github.com/ibskk/subscription-tracker/internal/model"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{9.99, "$9.99"},
		{15.9, "$15.90"},
		{1234.5, "$1234.50"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDays(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "today"},
		{1, "in 1 day"},
		{5, "in 5 days"},
		{-1, "1 day overdue"},
		{-3, "3 days overdue"},
	}

	for _, tt := range tests {
		if got := FormatDays(tt.in); got != tt.want {
			t.Errorf("FormatDays(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCost(t *testing.T) {
	if got := FormatCost(15.99, model.CycleMonthly); got != "$15.99 (Monthly)" {
		t.Fatalf("FormatCost = %q", got)
	}
}
