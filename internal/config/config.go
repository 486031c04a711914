package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig application configuration
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Business BusinessConfig `toml:"business"`
	Upload   UploadConfig   `toml:"upload"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port        int  `toml:"port"`
	DevMode     bool `toml:"dev_mode"`
	OpenBrowser bool `toml:"open_browser"`
}

// DataConfig storage settings
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// BusinessConfig reporting settings
type BusinessConfig struct {
	MonthHorizon int `toml:"month_horizon"`
	CurrentYear  int `toml:"current_year"`
}

// UploadConfig upload limits
type UploadConfig struct {
	MaxSizeMB int `toml:"max_size_mb"`
}

// LoadConfigInfo config load metadata
type LoadConfigInfo struct {
	PortSpecified bool
	FileExists    bool
}

// DefaultConfig returns the built-in defaults. The report horizon matches
// the Jan..Aug reporting window of the source spreadsheets.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:        8080,
			DevMode:     false,
			OpenBrowser: true,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Business: BusinessConfig{
			MonthHorizon: 8,
			CurrentYear:  2025,
		},
		Upload: UploadConfig{
			MaxSizeMB: 16,
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}
	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}
	_, ok = serverMap["port"]
	return ok
}

// GetExeDir returns the directory holding the executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo loads config.toml from the executable's directory and
// reports which fields the file itself set.
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, info, nil
		}
		return nil, info, err
	}

	info.FileExists = true
	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}
	return config, info, nil
}

// SaveConfig writes the configuration next to the executable.
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir creates the data directory next to the executable.
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// DatabasePath is the SQLite file location inside the data directory.
func DatabasePath(config *AppConfig) string {
	exeDir, _ := GetExeDir()
	if exeDir == "" {
		exeDir = "."
	}
	return filepath.Join(exeDir, config.Data.DataDir, "recruitment_data.db")
}

// MaxUploadBytes converts the configured upload cap to bytes.
func (c *AppConfig) MaxUploadBytes() int64 {
	return int64(c.Upload.MaxSizeMB) << 20
}
