package order

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeOrdersFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	orders, err := LoadFile("testdata/orders.json", 0)
	if err != nil {
		t.Fatalf("LoadFile() = %v", err)
	}
	if len(orders) != 5 {
		t.Fatalf("loaded %d orders, want 5", len(orders))
	}

	first := orders[0]
	if first.ID != "a8cfcb76-7f24-4420-a5ba-d46dd77bdffd" {
		t.Errorf("first id = %q", first.ID)
	}
	if first.Name != "Banana Split" {
		t.Errorf("first name = %q", first.Name)
	}
	if first.Temp != Frozen {
		t.Errorf("first temp = %q, want frozen", first.Temp)
	}
	if first.ShelfLife != 20 {
		t.Errorf("first shelfLife = %d, want 20", first.ShelfLife)
	}
	if first.DecayRate != 0.63 {
		t.Errorf("first decayRate = %v, want 0.63", first.DecayRate)
	}
}

func TestLoadFileLimit(t *testing.T) {
	orders, err := LoadFile("testdata/orders.json", 2)
	if err != nil {
		t.Fatalf("LoadFile() = %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("loaded %d orders, want 2", len(orders))
	}
	if orders[1].Name != "McFlury" {
		t.Errorf("second order = %q, want McFlury", orders[1].Name)
	}
}

func TestLoadFileLimitBeyondLength(t *testing.T) {
	orders, err := LoadFile("testdata/orders.json", DefaultIntakeLimit)
	if err != nil {
		t.Fatalf("LoadFile() = %v", err)
	}
	if len(orders) != 5 {
		t.Errorf("loaded %d orders, want all 5", len(orders))
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"), 0)
	if err == nil || !strings.Contains(err.Error(), "read orders file") {
		t.Errorf("LoadFile() = %v, want read error", err)
	}
}

func TestLoadFileRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "garbage",
			content: "{{{ not json",
			wantErr: "parse orders file",
		},
		{
			name:    "object instead of array",
			content: `{"id": "a"}`,
			wantErr: "parse orders file",
		},
		{
			name:    "unknown field",
			content: `[{"id": "a", "name": "Soup", "temp": "hot", "shelfLife": 10, "decayRate": 0.1, "spice": "mild"}]`,
			wantErr: "parse orders file",
		},
		{
			name:    "trailing data",
			content: `[] {"more": true}`,
			wantErr: "trailing data",
		},
		{
			name:    "bad temp",
			content: `[{"id": "a", "name": "Soup", "temp": "warm", "shelfLife": 10, "decayRate": 0.1}]`,
			wantErr: "unknown temp",
		},
		{
			name:    "bad shelf life",
			content: `[{"id": "a", "name": "Soup", "temp": "hot", "shelfLife": 0, "decayRate": 0.1}]`,
			wantErr: "order 0 (a)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeOrdersFile(t, tt.content), 0)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadFile() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFileLimitSkipsValidationOfDroppedEntries(t *testing.T) {
	content := `[
		{"id": "a", "name": "Soup", "temp": "hot", "shelfLife": 10, "decayRate": 0.1},
		{"id": "b", "name": "Salad", "temp": "cold", "shelfLife": 20, "decayRate": 0.2},
		{"id": "c", "name": "Mystery", "temp": "warm", "shelfLife": 30, "decayRate": 0.3}
	]`
	orders, err := LoadFile(writeOrdersFile(t, content), 2)
	if err != nil {
		t.Fatalf("LoadFile() = %v, want truncation before validation", err)
	}
	if len(orders) != 2 {
		t.Errorf("loaded %d orders, want 2", len(orders))
	}
}
