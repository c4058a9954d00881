package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPredictURL = "https://flood-ai-backend-3.onrender.com/predict"
	DefaultAskURL     = "https://remostart-milestone-one-farmlingua-ai.hf.space/ask"
)

type Config struct {
	Server    ServerConfig   `yaml:"server"`
	Log       LogConfig      `yaml:"log"`
	Predictor EndpointConfig `yaml:"predictor"`
	Assistant EndpointConfig `yaml:"assistant"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type ServerConfig struct {
	Port         int      `yaml:"port"`
	Mode         string   `yaml:"mode"`
	AllowOrigins []string `yaml:"allow_origins"`
}

// EndpointConfig describes one remote collaborator reached with a single POST.
type EndpointConfig struct {
	URL        string `yaml:"url"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

func (e EndpointConfig) Timeout() time.Duration {
	return time.Duration(e.TimeoutSec) * time.Second
}

func Default() *Config {
	return &Config{
		Server:    ServerConfig{Port: 8501, Mode: "release", AllowOrigins: []string{"*"}},
		Log:       LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Predictor: EndpointConfig{URL: DefaultPredictURL, TimeoutSec: 10},
		Assistant: EndpointConfig{URL: DefaultAskURL, TimeoutSec: 1000},
	}
}

func Load(configFile string) *Config {
	c := Default()

	paths := []string{"etc/config-dev.yaml", "/etc/floodwatch/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, c); err != nil {
				slog.Warn("config parse failed, using defaults", "path", path, "err", err)
			}
			break
		}
	}

	c.applyEnvOverrides()
	return c
}

func (c *Config) applyEnvOverrides() {
	envOverride(&c.Server.Mode, "GIN_MODE")
	envOverride(&c.Predictor.URL, "PREDICT_URL")
	envOverride(&c.Assistant.URL, "ASK_URL")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverrideInt(&c.Server.Port, "PORT")
	envOverrideInt(&c.Predictor.TimeoutSec, "PREDICT_TIMEOUT_SEC")
	envOverrideInt(&c.Assistant.TimeoutSec, "ASK_TIMEOUT_SEC")
	if v := os.Getenv("ALLOW_ORIGINS"); v != "" {
		c.Server.AllowOrigins = strings.Split(v, ",")
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
