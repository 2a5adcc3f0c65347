package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// File mirrors the optional TOML config file. Blank values leave the
// underlying setting untouched.
type File struct {
	Port string `toml:"port"`
	Log  struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
	} `toml:"log"`
	Upstream struct {
		Timeout      string `toml:"timeout"`
		UserAgent    string `toml:"user_agent"`
		SeasonCutoff string `toml:"season_cutoff"`
		DataV2       string `toml:"data_v2_base_url"`
		DataV1       string `toml:"data_v1_base_url"`
		DataNBA      string `toml:"data_prod_base_url"`
		Stats        string `toml:"stats_base_url"`
		TeamLogos    string `toml:"team_logo_base_url"`
		Headshots    string `toml:"headshot_base_url"`
	} `toml:"upstream"`
	Metrics struct {
		Enabled      *bool  `toml:"enabled"`
		Port         string `toml:"port"`
		OtlpEndpoint string `toml:"otlp_endpoint"`
		OtlpInsecure *bool  `toml:"otlp_insecure"`
		ServiceName  string `toml:"service_name"`
	} `toml:"metrics"`

	timeout time.Duration
}

// LoadFile reads and parses a TOML config file. A leading ~ expands to the home directory.
func LoadFile(path string) (File, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return File{}, err
	}
	raw, err := os.ReadFile(resolved)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}

	var f File
	if err := toml.Unmarshal(raw, &f); err != nil {
		return File{}, fmt.Errorf("parse config: %w", err)
	}
	if timeout := strings.TrimSpace(f.Upstream.Timeout); timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil || parsed <= 0 {
			return File{}, fmt.Errorf("parse config: upstream.timeout %q is not a positive duration", timeout)
		}
		f.timeout = parsed
	}
	return f, nil
}

func (f File) apply(cfg *Config) {
	overlay(&cfg.Port, f.Port)
	overlay(&cfg.Log.Level, f.Log.Level)
	overlay(&cfg.Log.Format, f.Log.Format)

	if f.timeout > 0 {
		cfg.Upstream.Timeout = f.timeout
	}
	overlay(&cfg.Upstream.UserAgent, f.Upstream.UserAgent)
	overlay(&cfg.Upstream.SeasonCutoff, f.Upstream.SeasonCutoff)
	overlay(&cfg.Upstream.BaseURLs.DataV2, f.Upstream.DataV2)
	overlay(&cfg.Upstream.BaseURLs.DataV1, f.Upstream.DataV1)
	overlay(&cfg.Upstream.BaseURLs.DataNBA, f.Upstream.DataNBA)
	overlay(&cfg.Upstream.BaseURLs.Stats, f.Upstream.Stats)
	overlay(&cfg.Upstream.BaseURLs.TeamLogos, f.Upstream.TeamLogos)
	overlay(&cfg.Upstream.BaseURLs.Headshots, f.Upstream.Headshots)

	if f.Metrics.Enabled != nil {
		cfg.Metrics.Enabled = *f.Metrics.Enabled
	}
	if f.Metrics.OtlpInsecure != nil {
		cfg.Metrics.OtlpInsecure = *f.Metrics.OtlpInsecure
	}
	overlay(&cfg.Metrics.Port, f.Metrics.Port)
	overlay(&cfg.Metrics.OtlpEndpoint, f.Metrics.OtlpEndpoint)
	overlay(&cfg.Metrics.ServiceName, f.Metrics.ServiceName)
}

func overlay(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
