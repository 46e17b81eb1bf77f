package config

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/kbukum/laracore/errors"
)

// SupportedExts are the config file extensions LoadDirectory reads.
var SupportedExts = []string{"yaml", "yml", "json", "toml"}

// LoadDirectory reads every supported file in dir, in name order, and
// merges each into repo under its base name. A missing directory loads
// nothing.
func LoadDirectory(fs afero.Fs, dir string, repo *Repository) error {
	exists, err := afero.DirExists(fs, dir)
	if err != nil {
		return errors.InvalidConfig("", "cannot stat "+dir).WithCause(err)
	}
	if !exists {
		return nil
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return errors.InvalidConfig("", "cannot read "+dir).WithCause(err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.TrimPrefix(filepath.Ext(entry.Name()), ".")
		if !slices.Contains(SupportedExts, strings.ToLower(ext)) {
			continue
		}
		if err := LoadFile(fs, filepath.Join(dir, entry.Name()), repo); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile reads one config file and merges it into repo under the file's
// base name.
func LoadFile(fs afero.Fs, path string, repo *Repository) error {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.InvalidConfig(path, err.Error()).WithCause(err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err := repo.Merge(name, v.AllSettings()); err != nil {
		return errors.InvalidConfig(name, err.Error()).WithCause(err)
	}
	return nil
}
