// Package where resolves the on-disk locations trixio reads from and writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/trixio-cli/trixio/constant"
	"github.com/trixio-cli/trixio/filesystem"
)

// EnvConfigPath overrides the config directory when set.
const EnvConfigPath = "TRIXIO_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the directory holding trixio.toml, logs and history.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}

	return mkdir(filepath.Join(lo.Must(os.UserConfigDir()), constant.Trixio))
}

// Cache is the directory for disposable data.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return mkdir(filepath.Join(base, constant.Trixio))
}

// Logs is the directory receiving one log file per day.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// History is the watch history file.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Queries is the search query suggestion store.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Responses is the TTL store for cached catalog responses.
func Responses() string {
	return filepath.Join(Cache(), "responses.json")
}

// Temp is a scratch directory wiped on startup.
func Temp() string {
	return mkdir(filepath.Join(os.TempDir(), constant.Trixio))
}
