// Package config defines the ambient configuration for chain construction:
// the lenient/strict policy for configuration misuse and the diagnostic
// logger. Construction uses functional options with safe defaults.
package config
