// Package config loads the save-license configuration from defaults, an
// optional YAML file, SAVE_LICENSE_* environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mouse-blink/savelicense/internal/adapter"
)

const (
	// ConfigFileName is the name of the config file looked up in the
	// working directory (without extension).
	ConfigFileName = ".save-license"
	// EnvPrefix prefixes the environment variables read by Load.
	EnvPrefix = "SAVE_LICENSE"
	// NoTUIFlag disables the interactive display when set.
	NoTUIFlag = "no-tui"
)

// Config is the effective configuration of one run.
type Config struct {
	Paths      []string `mapstructure:"paths"`
	Out        string   `mapstructure:"out"`
	Patterns   []string `mapstructure:"patterns"`
	Encoding   string   `mapstructure:"encoding"`
	Extensions []string `mapstructure:"extensions"`
	Exclude    []string `mapstructure:"exclude"`
	Report     string   `mapstructure:"report"`
	LogLevel   string   `mapstructure:"log_level"`
	TUI        bool     `mapstructure:"tui"`
}

// DefaultConfig returns the configuration used when nothing else is set.
func DefaultConfig() Config {
	return Config{
		Encoding:   adapter.DefaultEncoding,
		Extensions: append([]string{}, adapter.DefaultExtensions...),
		LogLevel:   "warn",
		TUI:        true,
	}
}

// flagKeys maps config keys to the flag names they can be set with.
var flagKeys = map[string]string{
	"out":        "out",
	"patterns":   "pattern",
	"encoding":   "encoding",
	"extensions": "ext",
	"exclude":    "exclude",
	"report":     "report",
	"log_level":  "log-level",
}

// LoadOptions tells Load where to look.
type LoadOptions struct {
	// ConfigFile is used exclusively when set; it must exist.
	ConfigFile string
	// Dir is searched for ConfigFileName when ConfigFile is empty.
	Dir string
	// Flags are bound on top of every other source. May be nil.
	Flags *pflag.FlagSet
}

// Load resolves the configuration. It returns the config file used, if any.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("paths", defaults.Paths)
	v.SetDefault("out", defaults.Out)
	v.SetDefault("patterns", defaults.Patterns)
	v.SetDefault("encoding", defaults.Encoding)
	v.SetDefault("extensions", defaults.Extensions)
	v.SetDefault("exclude", defaults.Exclude)
	v.SetDefault("report", defaults.Report)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("tui", defaults.TUI)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, "", fmt.Errorf("config file not found: %w", err)
		}

		v.SetConfigFile(opts.ConfigFile)
	} else {
		dir := opts.Dir
		if dir == "" {
			dir = "."
		}

		v.AddConfigPath(filepath.Clean(dir))
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("failed to read config: %w", err)
		}
	}

	if opts.Flags != nil {
		if err := bindFlags(v, opts.Flags); err != nil {
			return nil, "", err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if opts.Flags != nil {
		if noTUI, err := opts.Flags.GetBool(NoTUIFlag); err == nil && noTUI {
			cfg.TUI = false
		}
	}

	return &cfg, v.ConfigFileUsed(), nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	return nil
}
