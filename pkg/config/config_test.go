package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"powervoting/pkg/contracts"
)

const (
	addrA = "0x1111111111111111111111111111111111111111"
	addrB = "0x2222222222222222222222222222222222222222"
	addrC = "0x3333333333333333333333333333333333333333"
)

func writeContractsFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contracts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv("toolkit-test")

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, DefaultMaxRequestSize, cfg.MaxRequestSize)
	assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.ContractsFile)
	assert.NotNil(t, cfg.Log)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvLogFormat, "text")
	t.Setenv(EnvRequestTimeout, "2s")
	t.Setenv(EnvMaxRequestSize, "2048")

	cfg := FromEnv("toolkit-test")

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2048, cfg.MaxRequestSize)
}

func TestFromEnv_IgnoresMalformedValues(t *testing.T) {
	t.Setenv(EnvRequestTimeout, "soon")
	t.Setenv(EnvMaxRequestSize, "big")

	cfg := FromEnv("toolkit-test")

	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, DefaultMaxRequestSize, cfg.MaxRequestSize)
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	cfg := FromEnv("toolkit-test")
	cfg.Port = "70000"
	cfg.LogFormat = "xml"
	cfg.RequestTimeout = 0
	cfg.MaxRequestSize = -1

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "1. Port must be between 1 and 65535")
	assert.Contains(t, msg, "2. LogFormat must be json or text")
	assert.Contains(t, msg, "3. RequestTimeout must be positive")
	assert.Contains(t, msg, "4. MaxRequestSize must be positive")
}

func TestContractEnvVar(t *testing.T) {
	mainnet, _ := contracts.LookupNetwork(int64(contracts.Mainnet))
	calibration, _ := contracts.LookupNetwork(int64(contracts.Calibration))

	assert.Equal(t, "POWER_VOTING_MAINNET_CONTRACT_ADDRESS", ContractEnvVar(contracts.KindPowerVoting, mainnet))
	assert.Equal(t, "ORACLE_POWER_CALIBRATION_CONTRACT_ADDRESS", ContractEnvVar(contracts.KindOraclePower, calibration))
	assert.Equal(t, "POWER_VOTING_FIP_MAINNET_CONTRACT_ADDRESS", ContractEnvVar(contracts.KindPowerVotingFip, mainnet))
	assert.Equal(t, "ORACLE_CALIBRATION_CONTRACT_ADDRESS", ContractEnvVar(contracts.KindOracle, calibration))
}

func TestLoadContracts_Empty(t *testing.T) {
	cfg := FromEnv("toolkit-test")

	require.NoError(t, cfg.LoadContracts())
	assert.Equal(t, 0, cfg.Contracts.Len())

	_, ok := cfg.Contracts.Resolve(314, "powerVoting")
	assert.False(t, ok)
}

func TestLoadContracts_FromFile(t *testing.T) {
	path := writeContractsFile(t, `
contracts:
  powerVoting:
    314: "`+addrA+`"
    314159: "`+addrB+`"
  oracle:
    314159: "`+addrC+`"
`)
	t.Setenv(EnvContractsFile, path)

	cfg := FromEnv("toolkit-test")
	require.NoError(t, cfg.LoadContracts())

	assert.Equal(t, 3, cfg.Contracts.Len())

	got, ok := cfg.Contracts.Resolve(314, "powerVoting")
	require.True(t, ok)
	assert.Equal(t, addrA, got)

	got, ok = cfg.Contracts.Resolve(314159, "oracle")
	require.True(t, ok)
	assert.Equal(t, addrC, got)

	_, ok = cfg.Contracts.Resolve(314, "oracle")
	assert.False(t, ok)
}

func TestLoadContracts_EnvOverridesFile(t *testing.T) {
	path := writeContractsFile(t, `
contracts:
  powerVoting:
    314: "`+addrA+`"
`)
	t.Setenv(EnvContractsFile, path)
	t.Setenv("POWER_VOTING_MAINNET_CONTRACT_ADDRESS", addrB)
	t.Setenv("ORACLE_POWER_CALIBRATION_CONTRACT_ADDRESS", addrC)

	cfg := FromEnv("toolkit-test")
	require.NoError(t, cfg.LoadContracts())

	got, ok := cfg.Contracts.Resolve(314, "powerVoting")
	require.True(t, ok)
	assert.Equal(t, addrB, got)

	got, ok = cfg.Contracts.Resolve(314159, "oraclePower")
	require.True(t, ok)
	assert.Equal(t, addrC, got)
}

func TestLoadContracts_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown kind", body: "contracts:\n  voting:\n    314: \"" + addrA + "\"\n"},
		{name: "unknown field", body: "addresses:\n  powerVoting:\n    314: \"" + addrA + "\"\n"},
		{name: "not an address", body: "contracts:\n  powerVoting:\n    314: \"0x1234\"\n"},
		{name: "non numeric network", body: "contracts:\n  powerVoting:\n    mainnet: \"" + addrA + "\"\n"},
		{name: "malformed yaml", body: "contracts: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvContractsFile, writeContractsFile(t, tt.body))

			cfg := FromEnv("toolkit-test")
			assert.Error(t, cfg.LoadContracts())
		})
	}
}

func TestLoadContracts_MissingFile(t *testing.T) {
	t.Setenv(EnvContractsFile, filepath.Join(t.TempDir(), "absent.yaml"))

	cfg := FromEnv("toolkit-test")
	err := cfg.LoadContracts()

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadContracts_InvalidEnvAddress(t *testing.T) {
	t.Setenv("ORACLE_MAINNET_CONTRACT_ADDRESS", "not-an-address")

	cfg := FromEnv("toolkit-test")
	assert.Error(t, cfg.LoadContracts())
}
