package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	configName      = ".gush"
	configType      = "yaml"
	environmentName = "GUSH"

	// DefaultBaseBranch is the branch pull requests target when none is given
	DefaultBaseBranch = "master"
	// DefaultGitHubHost is the public GitHub host
	DefaultGitHubHost = "github.com"
)

// GitHubConfig holds the hosting service settings
type GitHubConfig struct {
	Username string `mapstructure:"username" validate:"required"`
	Token    string `mapstructure:"token"`
	Host     string `mapstructure:"host" validate:"required,hostname_rfc1123"`
}

// LogConfig holds the file logging settings
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Config is the complete gush configuration
type Config struct {
	GitHub     GitHubConfig `mapstructure:"github"`
	BaseBranch string       `mapstructure:"base_branch" validate:"required"`
	Log        LogConfig    `mapstructure:"log"`

	// FileUsed is the configuration file that was read, if any
	FileUsed string `mapstructure:"-"`
}

var defaults = map[string]any{
	"github.host": DefaultGitHubHost,
	"base_branch": DefaultBaseBranch,
}

// Load reads the configuration. When path is empty the home directory and the
// current directory are searched for .gush.yml; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix(environmentName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	// AutomaticEnv only applies to keys viper already knows about
	v.SetDefault("github.username", "")
	v.SetDefault("github.token", "")
	v.SetDefault("log.file", "")

	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read configuration: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	cfg.FileUsed = v.ConfigFileUsed()

	return &cfg, nil
}

// Validate checks that every required setting is present
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			missing := make([]string, 0, len(fieldErrs))
			for _, fieldErr := range fieldErrs {
				missing = append(missing, keyFor(fieldErr.Namespace()))
			}
			return fmt.Errorf("invalid configuration, check %s (set it in %s or through %s_* environment variables)",
				strings.Join(missing, ", "), DefaultPath(), environmentName)
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// DefaultPath returns the configuration file used when no path is given
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configName + ".yml"
	}
	return filepath.Join(home, configName+".yml")
}

// keyFor maps a validator namespace such as Config.GitHub.Username to github.username
func keyFor(namespace string) string {
	switch namespace {
	case "Config.GitHub.Username":
		return "github.username"
	case "Config.GitHub.Host":
		return "github.host"
	case "Config.BaseBranch":
		return "base_branch"
	}
	return strings.ToLower(strings.TrimPrefix(namespace, "Config."))
}
