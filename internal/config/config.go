// Package config binds command-line flags, environment variables and an
// optional dotenv file into a single Config read once at startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"brewfather-mcp/internal/brewfather"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys are flag names and viper keys.
const (
	KeyUserID     = "api-user-id"
	KeyAPIKey     = "api-key"
	KeyBaseURL    = "base-url"
	KeyDebug      = "debug"
	KeyDebugDir   = "debug-dir"
	KeyLogLevel   = "log-level"
	KeyHTTPListen = "http-listen"
	KeyTimeout    = "timeout"
	KeyEnvFile    = "env-file"
)

const (
	EnvPrefix       = "BREWFATHER_MCP"
	DefaultDebugDir = "./debug"
	DefaultEnvFile  = ".env"
	DefaultLogLevel = "info"
)

// envNames maps keys to the environment variable that supplies them.
var envNames = map[string]string{
	KeyUserID:     "BREWFATHER_API_USER_ID",
	KeyAPIKey:     "BREWFATHER_API_KEY",
	KeyBaseURL:    "BREWFATHER_API_BASE_URL",
	KeyDebug:      "BREWFATHER_MCP_DEBUG",
	KeyDebugDir:   "BREWFATHER_MCP_DEBUG_DIR",
	KeyLogLevel:   "BREWFATHER_MCP_LOG_LEVEL",
	KeyHTTPListen: "BREWFATHER_MCP_HTTP_LISTEN",
	KeyTimeout:    "BREWFATHER_MCP_TIMEOUT",
	KeyEnvFile:    "BREWFATHER_MCP_ENV_FILE",
}

// Config is the resolved process configuration.
type Config struct {
	UserID  string
	APIKey  string
	BaseURL string

	Debug    bool
	DebugDir string

	LogLevel   zerolog.Level
	HTTPListen string
	Timeout    time.Duration

	// EnvFile is the dotenv file that was read, if any.
	EnvFile string
}

// RegisterFlags adds every configuration flag to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(KeyUserID, "", "Brewfather API user id")
	flags.String(KeyAPIKey, "", "Brewfather API key")
	flags.String(KeyBaseURL, brewfather.DefaultBaseURL, "Brewfather API base URL")
	flags.Bool(KeyDebug, false, "write every upstream response body to the debug directory")
	flags.String(KeyDebugDir, DefaultDebugDir, "directory for debug response dumps")
	flags.String(KeyLogLevel, DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	flags.String(KeyHTTPListen, "", "serve MCP over streamable HTTP on this address instead of stdio")
	flags.Duration(KeyTimeout, brewfather.DefaultTimeout, "upstream HTTP request timeout")
	flags.String(KeyEnvFile, "", "dotenv file to read (default .env when present)")
}

// Bind wires flags and environment variables into v. Flags take precedence
// over the environment, which takes precedence over the dotenv file.
func Bind(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, env := range envNames {
		if flags != nil {
			if flag := flags.Lookup(key); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return fmt.Errorf("bind flag %s: %w", key, err)
				}
			}
		}
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind env %s: %w", env, err)
		}
	}
	return nil
}

// Load reads the dotenv file, if any, and resolves the configuration.
// Missing credentials are not an error here; the client reports them.
func Load(v *viper.Viper) (Config, error) {
	envFile, err := readEnvFile(v)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		UserID:     lookupString(v, KeyUserID, ""),
		APIKey:     lookupString(v, KeyAPIKey, ""),
		BaseURL:    lookupString(v, KeyBaseURL, brewfather.DefaultBaseURL),
		DebugDir:   lookupString(v, KeyDebugDir, DefaultDebugDir),
		HTTPListen: lookupString(v, KeyHTTPListen, ""),
		EnvFile:    envFile,
	}

	if raw := lookupString(v, KeyDebug, ""); raw != "" {
		cfg.Debug = parseFlag(raw)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(lookupString(v, KeyLogLevel, DefaultLogLevel)))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}
	cfg.LogLevel = level

	cfg.Timeout = brewfather.DefaultTimeout
	if raw := lookupString(v, KeyTimeout, ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", KeyTimeout, raw, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("invalid %s %q: must be positive", KeyTimeout, raw)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// Client returns the client configuration. The debug directory is only
// passed on when debug dumps are enabled.
func (c Config) Client() brewfather.Config {
	cfg := brewfather.Config{
		UserID:  c.UserID,
		APIKey:  c.APIKey,
		BaseURL: c.BaseURL,
	}
	if c.Debug {
		cfg.DebugDir = c.DebugDir
	}
	return cfg
}

// readEnvFile merges the dotenv file into v. An explicitly named file must
// exist; the default one is optional.
func readEnvFile(v *viper.Viper) (string, error) {
	path := lookupString(v, KeyEnvFile, "")
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return "", nil
		}
		return "", fmt.Errorf("env file %q: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("env file %q is a directory", path)
	}

	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.MergeInConfig(); err != nil {
		return "", fmt.Errorf("read env file %q: %w", path, err)
	}
	return path, nil
}

// lookupString resolves key from flags or the environment first, then from
// the dotenv file, where values are keyed by their variable name.
func lookupString(v *viper.Viper, key, fallback string) string {
	if v.IsSet(key) {
		if s := strings.TrimSpace(v.GetString(key)); s != "" {
			return s
		}
	}
	if env, ok := envNames[key]; ok {
		if s := strings.TrimSpace(v.GetString(strings.ToLower(env))); s != "" {
			return s
		}
	}
	if s := strings.TrimSpace(v.GetString(key)); s != "" {
		return s
	}
	return fallback
}

// parseFlag treats any value other than an explicit false as enabled, so
// BREWFATHER_MCP_DEBUG=1 and BREWFATHER_MCP_DEBUG=yes both turn dumps on.
func parseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "no", "off":
		return false
	}
	return true
}
