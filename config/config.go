package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Cognito struct {
		AppClientId string `yaml:"appClientId"`
		UserPoolId  string `yaml:"userPoolId"`
		Region      string `yaml:"region"`
	} `yaml:"cognito"`

	Gateway struct {
		URL            string `yaml:"url"`
		ApiKey         string `yaml:"apiKey"`
		Model          string `yaml:"model"`
		ImageModel     string `yaml:"imageModel"`
		TimeoutSeconds int    `yaml:"timeoutSeconds"`
	} `yaml:"gateway"`

	Cors struct {
		AllowedOrigins   []string `yaml:"allowedOrigins"`
		DeploymentOrigin string   `yaml:"deploymentOrigin"`
	} `yaml:"cors"`

	App struct {
		Env string `yaml:"env"`
	} `yaml:"app"`
}

// LoadConfig reads the configuration file. GATEWAY_API_KEY in the environment
// overrides the file value so the key can stay out of version control.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if key := os.Getenv("GATEWAY_API_KEY"); key != "" {
		cfg.Gateway.ApiKey = key
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}

	return &cfg, nil
}
