package driftcord_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/driftcord/driftcord"
	"github.com/driftcord/driftcord/discord"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newGatewayBotServer(t *testing.T, shards, remaining, maxConcurrency int32) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v10/gateway/bot", r.URL.Path)

		rw.Header().Set("Content-Type", "application/json")
		rw.WriteHeader(http.StatusOK)

		response, _ := discord.Marshal(discord.GatewayBotResponse{
			URL:    "wss://gateway.discord.gg",
			Shards: shards,
			SessionStartLimit: discord.SessionStartLimit{
				Total:          1000,
				Remaining:      remaining,
				ResetAfter:     0,
				MaxConcurrency: maxConcurrency,
			},
		})
		rw.Write(response)
	}))

	t.Cleanup(server.Close)

	return server
}

func newTestApplication(serverURL string, configuration *driftcord.ApplicationConfiguration) *driftcord.Application {
	restInterface := discord.NewInterface(&http.Client{
		Timeout: 5 * time.Second,
	}, serverURL, discord.APIVersion, discord.UserAgent)

	return driftcord.NewApplication(configuration, restInterface, zerolog.Nop())
}

func TestApplicationInitializeAutoShards(t *testing.T) {
	t.Parallel()

	server := newGatewayBotServer(t, 4, 100, 1)

	configuration := &driftcord.ApplicationConfiguration{
		Identifier: "autoshard",
		Token:      "token",
	}
	configuration.Sharding.AutoSharded = true

	app := newTestApplication(server.URL, configuration)

	err := app.Initialize(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, int32(4), app.ShardCount)
	assert.Equal(t, []int32{0, 1, 2, 3}, app.ShardIDs)
}

func TestApplicationInitializeShardRange(t *testing.T) {
	t.Parallel()

	server := newGatewayBotServer(t, 2, 100, 1)

	configuration := &driftcord.ApplicationConfiguration{
		Identifier: "ranged",
		Token:      "token",
	}
	configuration.Sharding.ShardCount = 8
	configuration.Sharding.ShardIDs = "0-2,4"

	app := newTestApplication(server.URL, configuration)

	err := app.Initialize(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, int32(8), app.ShardCount)
	assert.Equal(t, []int32{0, 1, 2, 4}, app.ShardIDs)
}

func TestApplicationInitializeSessionLimit(t *testing.T) {
	t.Parallel()

	server := newGatewayBotServer(t, 4, 2, 1)

	configuration := &driftcord.ApplicationConfiguration{
		Identifier: "limited",
		Token:      "token",
	}
	configuration.Sharding.AutoSharded = true

	app := newTestApplication(server.URL, configuration)

	err := app.Initialize(context.Background())
	assert.ErrorIs(t, err, driftcord.ErrSessionLimitExhausted)
}

func TestWaitForIdentifyConsumesSessions(t *testing.T) {
	t.Parallel()

	server := newGatewayBotServer(t, 1, 1, 1)

	configuration := &driftcord.ApplicationConfiguration{
		Identifier: "identify",
		Token:      "token",
	}

	app := newTestApplication(server.URL, configuration)

	err := app.Initialize(context.Background())
	assert.NoError(t, err)

	err = app.WaitForIdentify(context.Background(), 0)
	assert.NoError(t, err)

	err = app.WaitForIdentify(context.Background(), 0)
	assert.ErrorIs(t, err, driftcord.ErrSessionLimitExhausted)
}

func TestApplicationOpenWithoutShards(t *testing.T) {
	t.Parallel()

	server := newGatewayBotServer(t, 1, 100, 1)

	configuration := &driftcord.ApplicationConfiguration{
		Identifier: "empty",
		Token:      "token",
	}
	configuration.Sharding.ShardCount = 4
	configuration.Sharding.ShardIDs = "9"

	app := newTestApplication(server.URL, configuration)

	err := app.Initialize(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, app.ShardIDs)

	_, err = app.Open()
	assert.ErrorIs(t, err, driftcord.ErrMissingShards)
}

func TestApplicationSummary(t *testing.T) {
	t.Parallel()

	server := newGatewayBotServer(t, 1, 100, 1)

	configuration := &driftcord.ApplicationConfiguration{
		Identifier: "summary",
		Token:      "token",
	}

	app := newTestApplication(server.URL, configuration)

	err := app.Initialize(context.Background())
	assert.NoError(t, err)

	summary := app.Summary()
	assert.Equal(t, "summary", summary.Identifier)
	assert.Equal(t, int32(1), summary.ShardCount)
	assert.Empty(t, summary.Shards)
}
