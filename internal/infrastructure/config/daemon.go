package config

import "time"

// DaemonConfig holds daemon service configuration
type DaemonConfig struct {
	// HTTP address for the read-only status API (host:port)
	Address string `mapstructure:"address" validate:"required"`

	// PID file location
	PIDFile string `mapstructure:"pid_file"`

	// TickInterval is the wall-clock pacing between simulated days
	TickInterval time.Duration `mapstructure:"tick_interval" validate:"required"`

	// Graceful shutdown timeout
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`
}
