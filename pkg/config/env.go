package config

const (
	EnvPort      = "PORT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvContractsFile = "CONTRACTS_FILE"

	// Per-address overrides are named <KIND>_<NETWORK><EnvContractAddressSuffix>,
	// for example POWER_VOTING_MAINNET_CONTRACT_ADDRESS.
	EnvContractAddressSuffix = "_CONTRACT_ADDRESS"
)
