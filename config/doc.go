// Package config holds application configuration for laracore.
//
// A Repository is a viper instance addressed with dot notation:
// "app.providers" reads the providers key of the app section. LoadDirectory
// fills a repository from every yaml, yml, json and toml file in a
// directory, each stored under its file's base name, so config/db.json
// becomes the "db" section.
//
// # Usage
//
//	repo := config.NewRepository(nil)
//	if err := config.LoadDirectory(fs, "/srv/app/config", repo); err != nil { ... }
//	repo.BindAppEnv()
//	settings, err := repo.AppSettings()
//
// Environment files are parsed with godotenv. Variables already present in
// the process environment are never overwritten.
package config
