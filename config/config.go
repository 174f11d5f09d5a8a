// Package config owns the viper-backed settings: defaults, env bindings and the config file.
package config

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/trixio-cli/trixio/constant"
	"github.com/trixio-cli/trixio/filesystem"
	"github.com/trixio-cli/trixio/where"
)

// EnvKeyReplacer maps config keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and env bindings, then reads trixio.toml if it exists.
func Setup() error {
	viper.SetConfigName(constant.Trixio)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Trixio)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}
