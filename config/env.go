package config

import (
	"bytes"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/kbukum/laracore/errors"
)

// LoadEnvFile parses the environment file at path and exports each variable
// that is not already set in the process environment. It returns the names
// it exported, sorted. A missing file is not an error.
func LoadEnvFile(fs afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if exists, _ := afero.Exists(fs, path); !exists {
			return nil, nil
		}
		return nil, errors.InvalidConfig(path, "cannot read environment file").WithCause(err)
	}

	vars, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.InvalidConfig(path, "malformed environment file").WithCause(err)
	}

	exported := make([]string, 0, len(vars))
	for key, value := range vars {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return nil, errors.Internal(err)
		}
		exported = append(exported, key)
	}
	sort.Strings(exported)
	return exported, nil
}

// EnvKey returns the environment variable name for a config key:
// "app.debug" becomes "APP_DEBUG".
func EnvKey(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// AppEnvKeys are the app section keys that environment variables override.
var AppEnvKeys = []string{"app.name", "app.env", "app.debug", "app.key", "app.cipher"}

// BindAppEnv makes APP_NAME, APP_ENV, APP_DEBUG, APP_KEY and APP_CIPHER
// override the matching app keys.
func (r *Repository) BindAppEnv() {
	r.BindEnv(AppEnvKeys...)
}

// BindEnv makes the environment variable EnvKey(key) override each key.
func (r *Repository) BindEnv(keys ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range keys {
		_ = r.v.BindEnv(key, EnvKey(key))
	}
}
