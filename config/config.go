package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Directory DirectoryConfig `yaml:"directory"`
	Tracking  TrackingConfig  `yaml:"tracking"`
	Site      SiteConfig      `yaml:"site"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// DirectoryConfig describes the external shipment directory (hosted
// record-storage service). AppID and APIKey never reach the browser.
type DirectoryConfig struct {
	Mode           string `yaml:"mode"` // "knack" | "fake"
	BaseURL        string `yaml:"base_url"`
	AppID          string `yaml:"app_id"`
	APIKey         string `yaml:"api_key"`
	ObjectKey      string `yaml:"object_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type TrackingConfig struct {
	MinCodeLength int    `yaml:"min_code_length"`
	StageSet      string `yaml:"stage_set"` // "simple" | "full"
}

type SiteConfig struct {
	BaseURL    string `yaml:"base_url"`
	MapsAPIKey string `yaml:"maps_api_key"`
	MenusDir   string `yaml:"menus_dir"`
}

func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	config.applyEnvOverrides()

	return &config, nil
}

// Credentials usually come from the environment (.env in dev, real env in
// prod), so a config file committed to a repo never carries them.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DIRECTORY_APP_ID"); v != "" {
		c.Directory.AppID = v
	}
	if v := os.Getenv("DIRECTORY_API_KEY"); v != "" {
		c.Directory.APIKey = v
	}
	if v := os.Getenv("MAPS_API_KEY"); v != "" {
		c.Site.MapsAPIKey = v
	}
}
