// Package constants provides named constants used throughout the repaircost codebase.
// This centralizes defaults and limits in one place.
package constants

// Simulation defaults
const (
	// DefaultTrials is the number of Monte Carlo trials per (product, horizon).
	DefaultTrials = 100000

	// DefaultFromYears is the first horizon of a sweep.
	DefaultFromYears = 1

	// DefaultToYears is the last horizon of a sweep, inclusive.
	DefaultToYears = 10

	// DefaultTraceYears is the horizon used by a single traced trial.
	DefaultTraceYears = 5
)

// Limits guard against runaway runs from a typo on the command line.
const (
	// MaxTrials caps the number of trials per simulation.
	MaxTrials = 100_000_000

	// MaxYears caps the simulated horizon.
	MaxYears = 100
)

// Paths
const (
	// DataDirName is the per-user directory under the home directory.
	DataDirName = ".repaircost"

	// ConfigFileName is the config file inside DataDirName.
	ConfigFileName = "config.yaml"

	// ReportDBName is the default report database inside DataDirName.
	ReportDBName = "reports.db"

	// EnvFileName is loaded from the working directory if present.
	EnvFileName = ".env"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "REPAIRCOST_"
)
