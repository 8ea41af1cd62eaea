package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Bulk holds tuning for cache warm-up and bulk operations
type Bulk struct {
	Workers int
}

// Flags returns CLI flags for Bulk configuration
func (b *Bulk) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "workers",
			Usage:       "Concurrent member fetches during cache build (default 5)",
			Category:    "Tuning",
			Sources:     cli.EnvVars("DLMAN_WORKERS"),
			Destination: &b.Workers,
		},
	}
}

// LogValue returns structured log value
func (b Bulk) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("workers", b.Workers),
	)
}
