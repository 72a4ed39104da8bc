package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/envq-labs/envq/internal/branding"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyOutput          = "output"
	KeyRedact          = "redact"
	KeyBackup          = "backup"
	KeyLock            = "lock"
	KeyLogLevel        = "log_level"
	KeyRequiredVersion = "required_version"
)

// Keys lists every setting in display order.
var Keys = []string{KeyOutput, KeyRedact, KeyBackup, KeyLock, KeyLogLevel, KeyRequiredVersion}

var boolKeys = []string{KeyRedact, KeyBackup, KeyLock}

// configFile overrides FilePath when set by Load.
var configFile string

// Dir returns the path to the envq config directory: $ENVQ_HOME when set,
// otherwise ~/.envq/.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file in use.
func FilePath() string {
	if configFile != "" {
		return configFile
	}
	return DefaultFilePath()
}

// DefaultFilePath returns the config file location when --config is not given.
func DefaultFilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the directory holding the config file if it does not exist.
func EnsureDir() error {
	dir := filepath.Dir(FilePath())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment. An
// empty path selects the default location. A missing file is not an error;
// a file that fails schema validation is.
func Load(path string) error {
	viper.Reset()
	configFile = path

	file := FilePath()
	viper.SetConfigFile(file)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	result, err := ValidateFile(file)
	if err != nil {
		return err
	}
	if !result.Valid {
		return &InvalidConfigError{Path: file, Issues: result.Issues}
	}

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", file, err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean setting. Unset means false.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// Output returns the default list format.
func Output() string {
	if v := Get(KeyOutput); v != "" {
		return v
	}
	return "text"
}

// LogLevel returns the configured diagnostics level.
func LogLevel() string {
	if v := Get(KeyLogLevel); v != "" {
		return v
	}
	return "warn"
}

// Set validates a key-value pair, stores it, and saves the config file.
// Boolean settings accept true/false.
func Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown config key %q", key)
	}

	decoded, err := decodeValue(key, value)
	if err != nil {
		return err
	}

	result, err := ValidateSettings(map[string]any{key: decoded})
	if err != nil {
		return err
	}
	if !result.Valid {
		return &InvalidConfigError{Path: FilePath(), Issues: result.Issues}
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, decoded)

	file := FilePath()
	if err := viper.WriteConfigAs(file); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// decodeValue turns command-line text into the type the schema expects.
func decodeValue(key, value string) (any, error) {
	if !slices.Contains(boolKeys, key) {
		return value, nil
	}
	var b bool
	if err := yaml.Unmarshal([]byte(value), &b); err != nil {
		return nil, fmt.Errorf("config key %q expects true or false, got %q", key, value)
	}
	return b, nil
}
