// Package config loads hierarchy-remapper settings from an optional YAML
// file, HREMAP_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	FileName  = "hierarchy-remapper"
	fileType  = "yaml"
	EnvPrefix = "HREMAP"
)

// Keys shared by the config file, the environment and flag bindings.
const (
	KeyLogLevel         = "log.level"
	KeyCopyFamilies     = "copy.families"
	KeyCopyTransform    = "copy.transform"
	KeyRemapStrict      = "remap.strict"
	KeyRemapSuggestions = "remap.suggestions"
	KeySchemaFile       = "schema.file"
)

type Config struct {
	LogLevel      string
	Families      []string
	CopyTransform bool
	Strict        bool
	Suggestions   int
	SchemaFile    string
}

// Dir returns the per-user config directory ($HOME/.config/hierarchy-remapper).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", FileName)
	}

	return filepath.Join(home, ".config", FileName)
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyCopyFamilies, []string{"vrc", "ma", "aao"})
	v.SetDefault(KeyCopyTransform, false)
	v.SetDefault(KeyRemapStrict, false)
	v.SetDefault(KeyRemapSuggestions, 3)
	v.SetDefault(KeySchemaFile, "")
}

// Load prepares v to read configuration. An explicit path must exist;
// otherwise hierarchy-remapper.yaml is looked up in the working directory
// and then in Dir, and a missing file is not an error.
func Load(v *viper.Viper, path string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType(fileType)
		v.AddConfigPath(".")
		v.AddConfigPath(Dir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("failed to read config: %w", err)
	}

	return nil
}

// FromViper snapshots the current settings. Family lists given as a single
// comma-separated string ("vrc,ma") are split.
func FromViper(v *viper.Viper) Config {
	var families []string

	for _, f := range v.GetStringSlice(KeyCopyFamilies) {
		for _, part := range strings.Split(f, ",") {
			if part = strings.TrimSpace(part); part != "" {
				families = append(families, part)
			}
		}
	}

	return Config{
		LogLevel:      v.GetString(KeyLogLevel),
		Families:      families,
		CopyTransform: v.GetBool(KeyCopyTransform),
		Strict:        v.GetBool(KeyRemapStrict),
		Suggestions:   v.GetInt(KeyRemapSuggestions),
		SchemaFile:    v.GetString(KeySchemaFile),
	}
}
