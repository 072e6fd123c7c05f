package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"powervoting/pkg/contracts"
	"powervoting/pkg/logger"
)

type Config struct {
	Port string

	LogLevel  string
	LogFormat string

	RequestTimeout time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	ContractsFile string
	Contracts     *contracts.AddressBook

	Log *logger.Logger
}

// Load reads the environment, builds the contract address book and validates the
// result. Any failure is fatal.
func Load(serviceName string) *Config {
	cfg := FromEnv(serviceName)

	if err := cfg.LoadContracts(); err != nil {
		cfg.Log.Fatal("Failed to load contract addresses", "error", err)
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

// FromEnv reads plain settings from the environment. The address book is left
// empty until LoadContracts runs.
func FromEnv(serviceName string) *Config {
	cfg := &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		LogLevel:  getEnvStr(EnvLogLevel, DefaultLogLevel),
		LogFormat: getEnvStr(EnvLogFormat, DefaultLogFormat),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		ContractsFile: getEnvStr(EnvContractsFile, ""),
	}

	cfg.Log = logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: true,
		Service:   serviceName,
	})
	return cfg
}

// LoadContracts merges the contracts file (if any) with per-address env overrides
// and builds the address book. Env values win over the file.
func (cfg *Config) LoadContracts() error {
	addresses := make(map[contractKey]string)

	if cfg.ContractsFile != "" {
		fromFile, err := readContractsFile(cfg.ContractsFile)
		if err != nil {
			return err
		}
		for key, address := range fromFile {
			addresses[key] = address
		}
	}

	for key, address := range contractEnvOverrides() {
		addresses[key] = address
	}

	book, err := contracts.NewAddressBook(toEntries(addresses))
	if err != nil {
		return fmt.Errorf("build address book: %w", err)
	}
	cfg.Contracts = book
	return nil
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	switch strings.ToLower(cfg.LogLevel) {
	case logger.DEBUG, logger.INFO, logger.WARN, logger.ERROR:
	default:
		errors = append(errors, fmt.Sprintf("LogLevel must be one of debug, info, warn, error, got: %s", cfg.LogLevel))
	}

	switch strings.ToLower(cfg.LogFormat) {
	case logger.JSON, logger.TEXT:
	default:
		errors = append(errors, fmt.Sprintf("LogFormat must be json or text, got: %s", cfg.LogFormat))
	}

	if cfg.RequestTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.ReadTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errors = append(errors, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if cfg.MaxRequestSize <= 0 {
		errors = append(errors, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}

	if len(errors) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, err := range errors {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, err)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
		"contracts_file", cfg.ContractsFile,
		"contract_addresses", cfg.Contracts.Len(),
	)

	for _, e := range cfg.Contracts.Entries() {
		cfg.Log.Debug("Contract address configured",
			"kind", e.Kind,
			"network_id", e.Network,
			"address", e.Address,
		)
	}
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
