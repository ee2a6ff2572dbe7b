package components

import (
	"strings"
	"testing"
)

func TestRenderStatusBarCount(t *testing.T) {
	bar := RenderStatusBar(80, 3)
	if !strings.Contains(bar, "3 subscriptions") {
		t.Fatalf("status bar missing count: %q", bar)
	}

	bar = RenderStatusBar(80, 1)
	if !strings.Contains(bar, "1 subscription ") {
		t.Fatalf("status bar should use singular for one record: %q", bar)
	}
	if strings.Contains(bar, "1 subscriptions") {
		t.Fatalf("status bar used plural for one record: %q", bar)
	}
}
