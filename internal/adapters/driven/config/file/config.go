// Package file loads Sentinel configuration from a TOML file with
// environment variable overrides.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
)

// Environment variables override their file counterparts.
const (
	EnvASIOneAPIKey     = "ASI_ONE_API_KEY"
	EnvAgentverseAPIKey = "AGENTVERSE_API_KEY"
	EnvGitHubToken      = "GITHUB_TOKEN"
	EnvIdentitySeed     = "AI_IDENTITY_SEED"
)

// Identity mode values for Config.IdentityMode.
const (
	IdentityModeSeed   = "seed"
	IdentityModeStatic = "static"
)

// Config holds everything the analyzer needs to talk to the outside
// world. ASIOneAPIKey is the only hard requirement; the rest degrade
// gracefully (no marketplace discovery, no issue creation, static
// identity).
type Config struct {
	ASIOneAPIKey     string `toml:"asi_one_api_key"`
	AgentverseAPIKey string `toml:"agentverse_api_key"`
	GitHubToken      string `toml:"github_token"`
	IdentitySeed     string `toml:"identity_seed"`

	// IdentityMode selects the signing identity implementation:
	// "seed" (default when a seed is set) or "static".
	IdentityMode string `toml:"identity_mode"`

	// Model overrides the default chat model.
	Model string `toml:"model"`

	// CreateIssues enables posting the final payload to GitHub.
	CreateIssues bool `toml:"create_issues"`
}

// DefaultPath returns ~/.sentinel/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sentinel", "config.toml"), nil
}

// Load reads the TOML file at path (missing file is not an error),
// applies environment overrides, then validates. Path may be empty to
// rely on the environment alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Environment-only configuration is fine.
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	applyEnv(cfg)

	if cfg.IdentityMode == "" {
		if cfg.IdentitySeed != "" {
			cfg.IdentityMode = IdentityModeSeed
		} else {
			cfg.IdentityMode = IdentityModeStatic
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment values on top of the file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvASIOneAPIKey); v != "" {
		cfg.ASIOneAPIKey = v
	}
	if v := os.Getenv(EnvAgentverseAPIKey); v != "" {
		cfg.AgentverseAPIKey = v
	}
	if v := os.Getenv(EnvGitHubToken); v != "" {
		cfg.GitHubToken = v
	}
	if v := os.Getenv(EnvIdentitySeed); v != "" {
		cfg.IdentitySeed = v
	}
}

// Validate checks required credentials and mode values.
func (c *Config) Validate() error {
	if c.ASIOneAPIKey == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrConfigMissing, EnvASIOneAPIKey)
	}
	switch c.IdentityMode {
	case IdentityModeSeed:
		if c.IdentitySeed == "" {
			return fmt.Errorf("%w: identity_mode %q needs %s", domain.ErrConfigMissing, IdentityModeSeed, EnvIdentitySeed)
		}
	case IdentityModeStatic:
	default:
		return fmt.Errorf("%w: unknown identity_mode %q", domain.ErrConfigMissing, c.IdentityMode)
	}
	return nil
}

// Save writes the configuration back to path with restricted
// permissions, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Redacted returns a copy safe for logging, with secrets masked.
func (c *Config) Redacted() Config {
	out := *c
	out.ASIOneAPIKey = mask(out.ASIOneAPIKey)
	out.AgentverseAPIKey = mask(out.AgentverseAPIKey)
	out.GitHubToken = mask(out.GitHubToken)
	out.IdentitySeed = mask(out.IdentitySeed)
	return out
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
