// Package config defines the application settings structures and
// their validation. Settings are loaded from a yaml file whose path
// is taken from the CONFIG_PATH environment variable.
package config
