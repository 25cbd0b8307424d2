// Package config loads the service configuration from a yaml file with
// environment overrides. Missing or unreadable config files are not errors:
// the defaults describe a fully working local setup.
package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// ListenAddr is the host:port the gRPC server binds to.
	ListenAddr string
	// MetricsAddr serves the Prometheus /metrics sidecar; empty disables it.
	MetricsAddr string
	// RosterPath points at the protojson roster database.
	RosterPath string
	// RateRPS/RateBurst bound per-peer request rates; RateRPS <= 0 disables
	// limiting.
	RateRPS   float64
	RateBurst int
}

type FileConfig struct {
	Server struct {
		ListenAddr  string `yaml:"listenAddr"`
		MetricsAddr string `yaml:"metricsAddr"`
		RosterPath  string `yaml:"rosterPath"`
	} `yaml:"server"`
	RateLimit struct {
		RPS   float64 `yaml:"rps"`
		Burst int     `yaml:"burst"`
	} `yaml:"ratelimit"`
}

func Default() Config {
	return Config{
		ListenAddr:  "localhost:8980",
		MetricsAddr: "127.0.0.1:9190",
		RosterPath:  "data/team_db.json",
		RateRPS:     20,
		RateBurst:   40,
	}
}

// LoadFromPath reads the first readable candidate config file, merges it
// over the defaults, and applies env overrides. With an empty configPath the
// conventional locations are tried.
func LoadFromPath(configPath string) Config {
	cfg := Default()

	candidates := make([]string, 0, 2)
	if configPath != "" {
		candidates = append(candidates, configPath)
	} else {
		candidates = append(candidates, "configs/config.yaml")
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var parsed FileConfig
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			continue
		}
		merged := cfg
		Merge(&merged, parsed)
		ApplyEnvOverrides(&merged)
		return merged
	}

	ApplyEnvOverrides(&cfg)
	return cfg
}

func Merge(dst *Config, src FileConfig) {
	if src.Server.ListenAddr != "" {
		dst.ListenAddr = src.Server.ListenAddr
	}
	if src.Server.MetricsAddr != "" {
		dst.MetricsAddr = src.Server.MetricsAddr
	}
	if src.Server.RosterPath != "" {
		dst.RosterPath = src.Server.RosterPath
	}
	if src.RateLimit.RPS != 0 {
		dst.RateRPS = src.RateLimit.RPS
	}
	if src.RateLimit.Burst != 0 {
		dst.RateBurst = src.RateLimit.Burst
	}
}

func ApplyEnvOverrides(cfg *Config) {
	if addr := strings.TrimSpace(os.Getenv("TEAM_LISTEN_ADDR")); addr != "" {
		cfg.ListenAddr = addr
	}
	if addr := strings.TrimSpace(os.Getenv("TEAM_METRICS_ADDR")); addr != "" {
		cfg.MetricsAddr = addr
	}
	if path := strings.TrimSpace(os.Getenv("TEAM_ROSTER_PATH")); path != "" {
		cfg.RosterPath = path
	}
	raw := strings.TrimSpace(os.Getenv("TEAM_RATE_RPS"))
	if raw == "" {
		return
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return
	}
	cfg.RateRPS = v
}
