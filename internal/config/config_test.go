package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATASET_PATH", "")
	t.Setenv("CHART_WIDTH", "not-a-number")
	t.Setenv("CHART_HEIGHT", "480")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.DatasetPath != "" {
		t.Errorf("DatasetPath = %q, want explicit empty value from env", cfg.DatasetPath)
	}
	if cfg.ChartWidth != 700 {
		t.Errorf("ChartWidth = %d, want fallback 700", cfg.ChartWidth)
	}
	if cfg.ChartHeight != 480 {
		t.Errorf("ChartHeight = %d, want 480", cfg.ChartHeight)
	}
	if cfg.DatasetSource != DatasetSourceFile {
		t.Errorf("DatasetSource = %q, want %q", cfg.DatasetSource, DatasetSourceFile)
	}
}

func TestIsProduction(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"production", true},
		{"development", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := &Config{Environment: tt.env}
			if got := cfg.IsProduction(); got != tt.want {
				t.Errorf("IsProduction() = %v, want %v", got, tt.want)
			}
		})
	}
}
