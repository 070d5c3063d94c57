package am

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/teranos/argx/errors"
	"github.com/teranos/argx/logger"
)

// createBackup creates rotating backups (.back1, .back2, .back3) before modifying config
func createBackup(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil // No file to backup
	}

	// Rotate backups: .back3 -> delete, .back2 -> .back3, .back1 -> .back2, current -> .back1
	back3 := configPath + ".back3"
	back2 := configPath + ".back2"
	back1 := configPath + ".back1"

	if err := os.Remove(back3); err != nil && !os.IsNotExist(err) {
		logger.Warnw("failed to delete old config backup", logger.FieldPath, back3, logger.FieldError, err)
	}

	if _, err := os.Stat(back2); err == nil {
		if err := os.Rename(back2, back3); err != nil {
			return errors.Wrap(err, "failed to rotate .back2 to .back3")
		}
	}

	if _, err := os.Stat(back1); err == nil {
		if err := os.Rename(back1, back2); err != nil {
			return errors.Wrap(err, "failed to rotate .back1 to .back2")
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(back1, content, DefaultFilePermissions); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}

	return nil
}

// UserConfigPath returns ~/.argx/am.toml
func UserConfigPath() string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "am.toml")
}

// ParseValue converts a command-line string to the type of the setting's
// default (bool, int or string). Unknown keys are rejected.
func ParseValue(key, raw string) (interface{}, error) {
	v := viper.New()
	SetDefaults(v)
	if !v.IsSet(key) {
		return nil, errors.WithHint(errors.Newf("unknown setting %q", key),
			"run 'argx am show' to list settings")
	}

	switch v.Get(key).(type) {
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "%s expects true or false", key)
		}
		return b, nil
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "%s expects an integer", key)
		}
		return n, nil
	}
	return raw, nil
}

// Set writes key = value into the TOML file at configPath, creating it if
// needed and rotating backups of the previous contents. The merged
// configuration is validated before anything is written.
func Set(configPath, key, raw string) error {
	value, err := ParseValue(key, raw)
	if err != nil {
		return err
	}

	doc := map[string]interface{}{}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := toml.Unmarshal(data, &doc); err != nil {
			return errors.Wrapf(err, "failed to parse %s", configPath)
		}
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to read %s", configPath)
	}

	section, field, ok := strings.Cut(key, ".")
	if !ok {
		return errors.Newf("setting %q must be section.name", key)
	}
	table, _ := doc[section].(map[string]interface{})
	if table == nil {
		table = map[string]interface{}{}
	}
	table[field] = value
	doc[section] = table

	check := viper.New()
	SetDefaults(check)
	if err := check.MergeConfigMap(doc); err != nil {
		return errors.Wrap(err, "failed to merge updated config")
	}
	cfg, err := LoadWithViper(check)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.MkdirAll(filepath.Dir(configPath), DefaultDirPermissions); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	if err := createBackup(configPath); err != nil {
		return errors.Wrap(err, "failed to create backup")
	}
	if err := os.WriteFile(configPath, data, DefaultFilePermissions); err != nil {
		return errors.Wrapf(err, "failed to write %s", configPath)
	}

	logger.Debugw("config updated", logger.FieldPath, configPath, "key", key)
	Reset()
	return nil
}
