package am

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/teranos/argx/errors"
)

var (
	mu            sync.Mutex
	globalConfig  *Config
	viperInstance *viper.Viper
	explicitFile  string

	// ConfigSources records which file last set each dotted key during the
	// most recent load. Keys absent from the map came from defaults.
	ConfigSources = map[string]SourceInfo{}
)

// SystemConfigPath is the lowest-precedence config file.
const SystemConfigPath = "/etc/argx/config.toml"

// UseConfigFile makes path the highest-precedence config file, above the
// project am.toml (the --config flag). Cached configuration is dropped.
func UseConfigFile(path string) {
	mu.Lock()
	defer mu.Unlock()
	explicitFile = path
	globalConfig = nil
	viperInstance = nil
}

// Load reads the argx configuration using Viper
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalConfig != nil {
		return globalConfig, nil
	}

	v, err := initViper()
	if err != nil {
		return nil, err
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}

	globalConfig = config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access.
// If the config files cannot be read it returns defaults and env only.
func GetViper() *viper.Viper {
	mu.Lock()
	defer mu.Unlock()
	v, err := initViper()
	if err != nil {
		v = viper.New()
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
		SetDefaults(v)
	}
	return v
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path on top of the
// defaults, ignoring every other source.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", configPath)
	}
	return config, nil
}

// Reset clears the cached configuration (useful for testing and for the
// watch command when a config file changes)
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	globalConfig = nil
	viperInstance = nil
	ConfigSources = map[string]SourceInfo{}
}

// initViper initializes Viper with configuration sources and defaults.
// Callers hold mu.
func initViper() (*viper.Viper, error) {
	if viperInstance != nil {
		return viperInstance, nil
	}

	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	BindEnvVars(v)

	SetDefaults(v)

	if err := mergeConfigFiles(v); err != nil {
		return nil, err
	}

	viperInstance = v
	return v, nil
}

// findProjectConfig searches for am.toml by walking up from the working
// directory. Returns "" when none is found.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		amPath := filepath.Join(dir, "am.toml")
		if _, err := os.Stat(amPath); err == nil {
			return amPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// ConfigPaths lists the candidate config files in precedence order, lowest
// first. Missing files are skipped by the loader.
func ConfigPaths() []SourceInfo {
	paths := []SourceInfo{{Source: SourceSystem, Path: SystemConfigPath}}
	if dir := UserDir(); dir != "" {
		paths = append(paths, SourceInfo{Source: SourceUser, Path: filepath.Join(dir, "am.toml")})
	}
	if project := findProjectConfig(); project != "" {
		paths = append(paths, SourceInfo{Source: SourceProject, Path: project})
	}
	if explicitFile != "" {
		paths = append(paths, SourceInfo{Source: SourceFlag, Path: explicitFile})
	}
	return paths
}

// mergeConfigFiles merges configuration files in precedence order.
// Precedence (lowest to highest): system < user < project < --config < env vars
//
// A file that exists but does not parse is an error; an explicit --config
// file that does not exist is an error too.
func mergeConfigFiles(v *viper.Viper) error {
	sources := map[string]SourceInfo{}

	for _, info := range ConfigPaths() {
		if _, err := os.Stat(info.Path); err != nil {
			if info.Source == SourceFlag {
				return errors.WithHint(errors.Wrapf(err, "config file %s", info.Path),
					"check the --config path")
			}
			continue
		}

		tempViper := viper.New()
		tempViper.SetConfigFile(info.Path)
		tempViper.SetConfigType("toml")
		if err := tempViper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", info.Path)
		}

		// config layer, so ARGX_* env vars still win
		if err := v.MergeConfigMap(tempViper.AllSettings()); err != nil {
			return errors.Wrapf(err, "failed to merge config file %s", info.Path)
		}
		for _, key := range tempViper.AllKeys() {
			sources[key] = info
		}
	}

	ConfigSources = sources
	return nil
}

// Get returns a configuration value using dot notation
func Get(key string) interface{} {
	return GetViper().Get(key)
}

// GetString returns a configuration value as string using dot notation
func GetString(key string) string {
	return GetViper().GetString(key)
}

// GetBool returns a configuration value as bool using dot notation
func GetBool(key string) bool {
	return GetViper().GetBool(key)
}

// GetInt returns a configuration value as int using dot notation
func GetInt(key string) int {
	return GetViper().GetInt(key)
}
