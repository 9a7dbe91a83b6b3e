// Package config provides configuration management for the leapfmt CLI.
//
// Configuration is layered: defaults, then leapfmt.yaml, then
// LEAPFMT_* environment variables, then command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Exclude lists directory names skipped during recursive
	// discovery, in addition to hidden directories.
	Exclude []string `koanf:"exclude"`
	// Jobs bounds the per-file worker pool; 0 means one worker per
	// CPU.
	Jobs         int    `koanf:"jobs"`
	Backup       bool   `koanf:"backup"`
	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=styled text, non-TTY=plain
	DefaultJobs   = 0      // 0 = one worker per CPU
)

// DefaultExclude lists directory names never descended into during
// recursive discovery.
var DefaultExclude = []string{"node_modules", "target"}
