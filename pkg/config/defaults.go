package config

import (
	"time"

	"powervoting/pkg/logger"
)

const (
	DefaultPort      = "8080"
	DefaultLogLevel  = logger.INFO
	DefaultLogFormat = logger.JSON

	DefaultRequestTimeout = 5 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
