package app

import "errors"

// Config holds everything an App needs to run one sweep.
type Config struct {
	SweepPath  string // path to the .hcl sweep file
	OutputPath string // destination for the JSON dataset; empty = stdout

	Workers int  // overrides the file's workers setting when non-zero
	Graph   bool // execute through a deferred plan

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SweepPath == "" {
		return nil, errors.New("SweepPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
