package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"powervoting/internal/toolkit/handler"
	"powervoting/internal/toolkit/service"
	"powervoting/internal/toolkit/validator"
	"powervoting/pkg/app"
	"powervoting/pkg/client"
	"powervoting/pkg/config"
	"powervoting/pkg/logger"
)

const powerVotingCalibration = "0x4444444444444444444444444444444444444444"

// newToolkitServer runs the whole service stack, middleware included, behind an
// httptest server.
func newToolkitServer(t *testing.T) *client.ToolkitClient {
	t.Helper()
	t.Setenv("POWER_VOTING_CALIBRATION_CONTRACT_ADDRESS", powerVotingCalibration)

	cfg := config.FromEnv("toolkit-client-test")
	cfg.Log = logger.Discard()
	require.NoError(t, cfg.LoadContracts())
	require.NoError(t, cfg.Validate())

	svc := service.NewToolkitService(validator.NewToolkitValidator(cfg.Log), cfg)
	a := app.NewApplication(cfg)
	a.SetApp(handler.NewToolkitHandler(svc, cfg.Log), handler.NewHealthHandler(cfg.Contracts, cfg.Log))

	srv := httptest.NewServer(a.Handler())
	t.Cleanup(srv.Close)

	c := client.NewToolkitClient(srv.URL)
	require.NoError(t, c.WaitForHealthy(context.Background(), time.Second))
	return c
}

func TestToolkitClient_RoundTrip(t *testing.T) {
	c := newToolkitServer(t)
	ctx := context.Background()

	text, err := c.MarkdownToText(ctx, "> **Vote** on [FIP-0001](https://fips.dev)")
	require.NoError(t, err)
	assert.Equal(t, "Vote on FIP-0001", text)

	formatted, err := c.FormatBytes(ctx, "1073741824")
	require.NoError(t, err)
	assert.Equal(t, "1.00 GiB", formatted)

	formatted, err = c.FormatDecimal(ctx, "2500000000000000000", nil)
	require.NoError(t, err)
	assert.Equal(t, "2.50", formatted)

	six := 6
	formatted, err = c.FormatDecimal(ctx, "1234567", &six)
	require.NoError(t, err)
	assert.Equal(t, "1.23", formatted)

	fraction, err := c.SimplifyFraction(ctx, 10, 4)
	require.NoError(t, err)
	assert.Equal(t, "5/2", fraction)

	decoded, err := c.DecodeHex(ctx, "0x566f7465")
	require.NoError(t, err)
	assert.Equal(t, "Vote", decoded)

	encoded, err := c.EncodeBase64URL(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8", encoded)

	dup, err := c.HasDuplicates(ctx, []string{"f01", "f02", "f01"})
	require.NoError(t, err)
	assert.True(t, dup)

	value := "x"
	nonEmpty, err := c.IsNonEmpty(ctx, &value)
	require.NoError(t, err)
	assert.True(t, nonEmpty)

	nonEmpty, err = c.IsNonEmpty(ctx, nil)
	require.NoError(t, err)
	assert.False(t, nonEmpty)

	actor, err := c.ActorAddress(ctx, 314, 99)
	require.NoError(t, err)
	assert.Equal(t, "f099", actor)
}

func TestToolkitClient_ResolveContract(t *testing.T) {
	c := newToolkitServer(t)
	ctx := context.Background()

	address, ok, err := c.ResolveContract(ctx, "powerVoting", 314159)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, powerVotingCalibration, address)

	_, ok, err = c.ResolveContract(ctx, "powerVoting", 314)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestToolkitClient_APIError(t *testing.T) {
	c := newToolkitServer(t)

	_, err := c.SimplifyFraction(context.Background(), 3, 0)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "INVALID_INPUT", apiErr.Code)
}
