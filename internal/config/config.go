// Package config reads logEater settings from the environment, with a .env
// file autoloaded when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all logEater configuration.
type Config struct {
	LLM     LLMConfig
	Extract ExtractConfig
	Log     LogConfig
}

// LLMConfig holds text-generator settings.
type LLMConfig struct {
	BaseURL   string
	Model     string
	Timeout   time.Duration
	CtxTokens int
}

// ExtractConfig holds discovery and artifact settings.
type ExtractConfig struct {
	RegistryRoot string   // directory holding registry/schemas
	IncludeExts  []string // file extensions considered log material
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables with defaults. A .env
// file in the working directory is loaded first when present; real
// environment variables win over .env entries.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		LLM: LLMConfig{
			BaseURL:   getenv("LOGEATER_OLLAMA_URL", "http://localhost:11434"),
			Model:     getenv("LOGEATER_MODEL", "llama3:latest"),
			Timeout:   getenvDuration("LOGEATER_LLM_TIMEOUT", 90*time.Second),
			CtxTokens: getenvInt("LOGEATER_CTX_TOKENS", 4096),
		},
		Extract: ExtractConfig{
			RegistryRoot: getenv("LOGEATER_REGISTRY_ROOT", "."),
			IncludeExts:  getenvList("LOGEATER_INCLUDE_EXTS", []string{".json", ".log", ".txt"}),
		},
		Log: LogConfig{
			Level: getenv("LOGEATER_LOG_LEVEL", "info"),
		},
	}
}

// Profile is a reusable extraction request: which schema to apply and which
// field paths to pull from every record.
type Profile struct {
	Schema string   `yaml:"schema"`
	Fields []string `yaml:"fields"`
	Format string   `yaml:"format,omitempty"`
}

// LoadProfile reads a YAML extraction profile from disk.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("config: read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("config: parse profile %s: %w", path, err)
	}
	if p.Schema == "" {
		return Profile{}, fmt.Errorf("config: profile %s: missing schema", path)
	}
	if len(p.Fields) == 0 {
		return Profile{}, fmt.Errorf("config: profile %s: no fields listed", path)
	}
	return p, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getenvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
