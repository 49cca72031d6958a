// Package config provides configuration loading and defaults for codelens.
package config

// DefaultConfigDir is the default location for codelens configuration.
const DefaultConfigDir = "~/.config/codelens"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "codelens.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultMaxFileSize is the largest file loaded for analysis, in bytes.
const DefaultMaxFileSize = 1 << 20

// DefaultWorkers is the analysis worker pool size; zero means one
// worker per CPU.
const DefaultWorkers = 0

// DefaultTimeoutMS is the per-file analysis watchdog in milliseconds.
const DefaultTimeoutMS = 5000

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
