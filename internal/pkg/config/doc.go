// Package config defines the settings structs of the REST API and CLI
// processes, loaded from YAML via viper with environment overrides and
// checked with struct validation.
package config
