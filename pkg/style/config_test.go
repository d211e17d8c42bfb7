package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/graphlens/graphlens/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viz.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[palette]
colors = ["#e41a1c", "#377eb8"]
fallback = "#808080"

[size]
min = 10
max = 50
metric = "degree"

[color]
key = "kind"

[tooltip]
fields = ["name", "description"]

[tooltip.titles]
name = "Name"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if len(cfg.Palette.Colors) != 2 {
		t.Errorf("palette colors = %d, want 2", len(cfg.Palette.Colors))
	}
	if cfg.Size.Min != 10 || cfg.Size.Max != 50 {
		t.Errorf("size = [%v, %v], want [10, 50]", cfg.Size.Min, cfg.Size.Max)
	}
	if cfg.Size.Metric != "degree" {
		t.Errorf("metric = %q, want degree", cfg.Size.Metric)
	}
	if cfg.Tooltip.Titles["name"] != "Name" {
		t.Errorf("tooltip title = %q, want Name", cfg.Tooltip.Titles["name"])
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode errors.Code
	}{
		{
			name:     "bad toml",
			content:  "[palette\ncolors = [",
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "invalid color",
			content:  "[palette]\ncolors = [\"red\"]",
			wantCode: errors.ErrCodeInvalidPalette,
		},
		{
			name:     "min exceeds max",
			content:  "[size]\nmin = 70\nmax = 15",
			wantCode: errors.ErrCodeInvalidConfig,
		},
		{
			name:     "invalid metric key",
			content:  "[size]\nmetric = \"bad'key\"",
			wantCode: errors.ErrCodeInvalidAttribute,
		},
		{
			name:     "invalid fallback",
			content:  "[palette]\nfallback = \"gray\"",
			wantCode: errors.ErrCodeInvalidPalette,
		},
		{
			name:     "invalid display attr",
			content:  "[display]\nattr = \"bad'key\"",
			wantCode: errors.ErrCodeInvalidAttribute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v (err: %v)", errors.GetCode(err), tt.wantCode, err)
			}
		})
	}
}

func TestLoadConfigNotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestConfigApply(t *testing.T) {
	var cfg Config
	cfg.Palette.Colors = []string{"#111111"}
	cfg.Palette.Fallback = "#222222"
	cfg.Size.Min = 20
	cfg.Size.Metric = "degree"

	opts := Options{MaxSize: 90}
	cfg.Apply(&opts)

	if len(opts.Palette) != 1 {
		t.Errorf("palette not applied: %v", opts.Palette)
	}
	if opts.Fallback != "#222222" {
		t.Errorf("Fallback = %q, want #222222", opts.Fallback)
	}
	if opts.MinSize != 20 {
		t.Errorf("MinSize = %v, want 20", opts.MinSize)
	}
	if opts.SizeKey != "degree" {
		t.Errorf("SizeKey = %q, want degree", opts.SizeKey)
	}
	// Unset config fields leave options untouched
	if opts.MaxSize != 90 {
		t.Errorf("MaxSize = %v, want 90 (untouched)", opts.MaxSize)
	}
}
