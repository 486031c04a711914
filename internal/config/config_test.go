package config

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Business.MonthHorizon != 8 || cfg.Business.CurrentYear != 2025 {
		t.Errorf("business = %+v", cfg.Business)
	}
	if cfg.MaxUploadBytes() != 16<<20 {
		t.Errorf("max upload = %d", cfg.MaxUploadBytes())
	}
}

func TestUnmarshalOverridesDefaults(t *testing.T) {
	cfg := DefaultConfig()

	data := []byte("[server]\nport = 9000\n\n[business]\nmonth_horizon = 12\n")
	if err := toml.Unmarshal(data, cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Business.MonthHorizon != 12 {
		t.Errorf("horizon = %d, want 12", cfg.Business.MonthHorizon)
	}
	// Untouched sections keep their defaults.
	if cfg.Data.DataDir != "data" {
		t.Errorf("data dir = %q", cfg.Data.DataDir)
	}
}

func TestIsPortSpecifiedInToml(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want bool
	}{
		{"with port", "[server]\nport = 9000\n", true},
		{"without port", "[server]\ndev_mode = true\n", false},
		{"no server section", "[data]\ndata_dir = \"x\"\n", false},
		{"invalid toml", "not toml at all [", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPortSpecifiedInToml([]byte(tt.toml)); got != tt.want {
				t.Errorf("isPortSpecifiedInToml = %v, want %v", got, tt.want)
			}
		})
	}
}
