package components

import "testing"

func TestTabIdxByKey(t *testing.T) {
	tests := []struct {
		key  rune
		want int
	}{
		{'o', 0},
		{'s', 1},
		{'x', -1},
		{'O', -1},
	}

	for _, tt := range tests {
		if got := TabIdxByKey(tt.key); got != tt.want {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestTabKeysMatchFirstLetters(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Errorf("tab %q: TabIdxByKey(%q) = %d, want %d", tab.Name, tab.Key, got, i)
		}
	}
}
