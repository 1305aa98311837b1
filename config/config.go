package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spiffcs/prsummary/internal/constants"
	"github.com/spiffcs/prsummary/internal/format"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	DefaultFormat string `yaml:"default_format,omitempty" json:"default_format,omitempty"`
	APIURL        string `yaml:"api_url,omitempty" json:"api_url,omitempty"`
	Timeout       string `yaml:"timeout,omitempty" json:"timeout,omitempty"`
	MaxTitleWidth *int   `yaml:"max_title_width,omitempty" json:"max_title_width,omitempty"`

	PRSize *PRSizeOverrides `yaml:"pr_size,omitempty" json:"pr_size,omitempty"`
}

// PRSizeOverrides customizes the T-shirt size thresholds (total changed lines)
type PRSizeOverrides struct {
	XS *uint `yaml:"xs,omitempty" json:"xs,omitempty"`
	S  *uint `yaml:"s,omitempty" json:"s,omitempty"`
	M  *uint `yaml:"m,omitempty" json:"m,omitempty"`
	L  *uint `yaml:"l,omitempty" json:"l,omitempty"`
}

// GetPRSizeThresholds returns size thresholds with user overrides merged with defaults
func (c *Config) GetPRSizeThresholds() format.PRSizeThresholds {
	thresholds := format.DefaultPRSizeThresholds()

	if c.PRSize != nil {
		p := c.PRSize
		if p.XS != nil {
			thresholds.XS = *p.XS
		}
		if p.S != nil {
			thresholds.S = *p.S
		}
		if p.M != nil {
			thresholds.M = *p.M
		}
		if p.L != nil {
			thresholds.L = *p.L
		}
	}

	return thresholds
}

// GetMaxTitleWidth returns the configured title width, 0 meaning unlimited
func (c *Config) GetMaxTitleWidth() int {
	if c.MaxTitleWidth == nil {
		return 0
	}
	return *c.MaxTitleWidth
}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".prsummary"
	}
	return filepath.Join(configDir, "prsummary")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return ".prsummary.yaml"
}

// Load loads the configuration from disk.
// It first loads the global config from the user config directory, then merges
// any local .prsummary.yaml on top (local values take precedence).
func Load() (*Config, error) {
	cfg, err := LoadGlobal()
	if err != nil {
		return nil, err
	}

	localCfg, err := loadFile(LocalConfigPath())
	if err != nil {
		return nil, fmt.Errorf("local config: %w", err)
	}
	if localCfg != nil {
		cfg = mergeConfig(cfg, localCfg)
	}

	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = constants.FormatText
	}

	return cfg, nil
}

// LoadGlobal loads only the global config file, falling back to defaults
// when it does not exist.
func LoadGlobal() (*Config, error) {
	cfg, err := loadFile(ConfigPath())
	if err != nil {
		return nil, fmt.Errorf("global config: %w", err)
	}
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = constants.FormatText
	}
	return cfg, nil
}

// loadFile parses the YAML file at path. A missing file yields nil, nil.
func loadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfig merges local config on top of global config.
// Local values take precedence; unset local values preserve global values.
func mergeConfig(global, local *Config) *Config {
	result := &Config{
		DefaultFormat: pick(local.DefaultFormat, global.DefaultFormat),
		APIURL:        pick(local.APIURL, global.APIURL),
		Timeout:       pick(local.Timeout, global.Timeout),
		MaxTitleWidth: global.MaxTitleWidth,
	}
	if local.MaxTitleWidth != nil {
		result.MaxTitleWidth = local.MaxTitleWidth
	}

	result.PRSize = mergePRSize(global.PRSize, local.PRSize)

	return result
}

func pick(local, global string) string {
	if local != "" {
		return local
	}
	return global
}

func mergePRSize(global, local *PRSizeOverrides) *PRSizeOverrides {
	if global == nil && local == nil {
		return nil
	}
	result := &PRSizeOverrides{}

	if global != nil {
		*result = *global
	}

	if local != nil {
		if local.XS != nil {
			result.XS = local.XS
		}
		if local.S != nil {
			result.S = local.S
		}
		if local.M != nil {
			result.M = local.M
		}
		if local.L != nil {
			result.L = local.L
		}
	}

	return result
}

// Save writes the config to the global config file
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return SaveTo(ConfigPath(), string(data))
}

// GitHubToken returns the GitHub token from the environment.
// GITHUB_API_TOKEN wins over GITHUB_TOKEN. Tokens are never stored in config files.
func GitHubToken() string {
	if token := os.Getenv(constants.TokenEnvVar); token != "" {
		return token
	}
	return os.Getenv(constants.FallbackTokenEnvVar)
}

// GetAPIURL returns the API root: GITHUB_API_URL if set, then api_url from
// the config file. Empty means api.github.com.
func (c *Config) GetAPIURL() string {
	if u := os.Getenv(constants.APIURLEnvVar); u != "" {
		return u
	}
	return c.APIURL
}

// DefaultConfig returns a fully populated config with all default values.
// This is useful for generating a complete config file template.
func DefaultConfig() *Config {
	thresholds := format.DefaultPRSizeThresholds()
	width := 0

	return &Config{
		DefaultFormat: constants.FormatText,
		APIURL:        "https://api.github.com/",
		Timeout:       "30s",
		MaxTitleWidth: &width,
		PRSize: &PRSizeOverrides{
			XS: &thresholds.XS,
			S:  &thresholds.S,
			M:  &thresholds.M,
			L:  &thresholds.L,
		},
	}
}

// ToYAML returns the config as a YAML string
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// ConfigPathInfo contains information about config file paths
type ConfigPathInfo struct {
	GlobalPath   string
	GlobalExists bool
	LocalPath    string
	LocalExists  bool
}

// GetConfigPaths returns path info for both global and local configs
func GetConfigPaths() ConfigPathInfo {
	globalPath := ConfigPath()
	localPath := LocalConfigPath()

	absLocalPath, err := filepath.Abs(localPath)
	if err != nil {
		absLocalPath = localPath
	}

	_, globalErr := os.Stat(globalPath)
	_, localErr := os.Stat(localPath)

	return ConfigPathInfo{
		GlobalPath:   globalPath,
		GlobalExists: globalErr == nil,
		LocalPath:    absLocalPath,
		LocalExists:  localErr == nil,
	}
}

// MinimalConfig returns a minimal config template with comments
func MinimalConfig() string {
	return `# prsummary configuration file
# See: prsummary config defaults  (for all available options)

# Output format: text, json or markdown
default_format: text

# GitHub Enterprise API root (optional, GITHUB_API_URL wins)
# api_url: https://ghe.example.com/api/v3/

# Request timeout (optional, e.g. 30s, 2m)
# timeout: 30s

# Shorten long titles to this many terminal columns (optional)
# max_title_width: 72

# T-shirt size thresholds in changed lines (optional)
# pr_size:
#   xs: 10
#   s: 50
`
}

// SaveTo writes content to a specific path, creating directories as needed
func SaveTo(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}
