package am

import (
	"encoding/json"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/teranos/argx/errors"
)

// ShowFormats lists the encodings accepted by Marshal.
var ShowFormats = []string{"toml", "json", "yaml"}

// Marshal renders v (a *Config or *ConfigIntrospection) as toml, json or yaml.
func Marshal(v interface{}, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "toml":
		return toml.Marshal(v)
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		return yaml.Marshal(v)
	}
	return nil, errors.WithHintf(errors.Newf("unknown format %q", format),
		"use one of: %s", strings.Join(ShowFormats, ", "))
}
