// Package where resolves the filesystem locations used by the application.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/valtips-cli/valtips/constant"
	"github.com/valtips-cli/valtips/filesystem"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "VALTIPS_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory.
// It honours VALTIPS_CONFIG_PATH, then the platform user config dir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return mkdir(filepath.Join(base, constant.App))
}

// Cache returns the cache directory, falling back to ./cache when the platform offers none.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return mkdir(filepath.Join(base, constant.App))
}

// Logs returns the directory daily log files are written to.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Favorites returns the path of the persisted favorite set.
func Favorites() string {
	return filepath.Join(Config(), "favorites.json")
}

// Catalog returns the directory holding cached catalog responses.
func Catalog() string {
	return mkdir(filepath.Join(Cache(), "catalog"))
}

// Queries returns the path of the remembered search queries used for completion.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}
