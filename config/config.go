// Package config loads coll settings from defaults, the environment and an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/coll-cli/coll/constant"
	"github.com/coll-cli/coll/filesystem"
	"github.com/coll-cli/coll/icon"
	"github.com/coll-cli/coll/key"
	"github.com/coll-cli/coll/where"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ErrInvalidValue is returned by Setup when a loaded setting cannot be used.
var ErrInvalidValue = errors.New("invalid config value")

// EnvKeyReplacer maps config keys to environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and environment bindings, reads coll.toml if present and validates the result.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	return validate()
}

// validate rejects settings that would only fail later, deep inside a command.
func validate() error {
	invalid := func(name string, value any, reason string) error {
		return fmt.Errorf("%w: %s = %v: %s", ErrInvalidValue, name, value, reason)
	}

	if name := viper.GetString(key.CollectionDefault); strings.TrimSpace(name) == "" {
		return invalid(key.CollectionDefault, name, "collection name must not be empty")
	}

	if count := viper.GetInt(key.BenchCount); count <= 0 {
		return invalid(key.BenchCount, count, "must be positive")
	}

	if variant := viper.GetString(key.IconsVariant); !lo.Contains(icon.AvailableVariants(), variant) {
		return invalid(key.IconsVariant, variant, "expected one of "+strings.Join(icon.AvailableVariants(), ", "))
	}

	if level := viper.GetString(key.LogsLevel); level != "" {
		if _, err := logrus.ParseLevel(level); err != nil {
			return invalid(key.LogsLevel, level, err.Error())
		}
	}

	return nil
}
