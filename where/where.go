// Package where resolves the filesystem locations of application resources.
package where

import (
	"os"
	"path/filepath"

	"github.com/coll-cli/coll/constant"
	"github.com/coll-cli/coll/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable used to override the default configuration directory.
const EnvConfigPath = "COLL_CONFIG_PATH"

// EnvStorePath is the environment variable that points the collection store at a specific file.
const EnvStorePath = "COLL_STORE_PATH"

// StoreFile is the name of the collection store inside the data directory.
const StoreFile = "collections.json"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory.
// It follows os.UserConfigDir unless COLL_CONFIG_PATH is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory holding daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Data resolves the directory holding persisted collections.
func Data() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "data")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Store resolves the file that holds every named collection.
// COLL_STORE_PATH replaces the whole path, which lets separate stores live side by side.
func Store() string {
	if custom, ok := os.LookupEnv(EnvStorePath); ok && custom != "" {
		ensureDir(filepath.Dir(custom))
		return custom
	}
	return filepath.Join(Data(), StoreFile)
}
