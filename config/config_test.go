package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	src := `
drag_threshold = 3
card_width = 20
sound = false
log_file = "/tmp/tierboard.log"
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DragThreshold != 3 || cfg.CardWidth != 20 || cfg.Sound || cfg.LogFile != "/tmp/tierboard.log" {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	// Untouched keys keep defaults
	if cfg.CardHeight != Default().CardHeight {
		t.Errorf("CardHeight = %d, want default %d", cfg.CardHeight, Default().CardHeight)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "Below minimums",
			in:   Config{DragThreshold: 0, RowTolerance: -1, CardWidth: 1, CardHeight: 0, LabelWidth: 0},
			want: Config{DragThreshold: 1, RowTolerance: 1, CardWidth: 4, CardHeight: 1, LabelWidth: 3},
		},
		{
			name: "Above maximums",
			in:   Config{DragThreshold: 99, RowTolerance: 99, CardWidth: 99, CardHeight: 99, LabelWidth: 99},
			want: Config{DragThreshold: 20, RowTolerance: 10, CardWidth: 40, CardHeight: 10, LabelWidth: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Clamp()
			if tt.in != tt.want {
				t.Errorf("Clamp = %+v, want %+v", tt.in, tt.want)
			}
		})
	}
}

func TestLoadGarbageFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("no = [ good"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Error("Expected a parse error")
	}
	if cfg != Default() {
		t.Errorf("Expected defaults on parse failure, got %+v", cfg)
	}
}
