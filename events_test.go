package driftcord_test

import (
	"context"
	"testing"
	"time"

	"github.com/driftcord/driftcord"
	"github.com/driftcord/driftcord/broker"
	"github.com/driftcord/driftcord/discord"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// testProducer captures published payloads instead of sending them to a
// real broker.
type testProducer struct {
	published chan []byte
}

func newTestProducer() *testProducer {
	return &testProducer{
		published: make(chan []byte, 16),
	}
}

func (p *testProducer) String() string {
	return "test"
}

func (p *testProducer) Channel() string {
	return ""
}

func (p *testProducer) Connect(ctx context.Context, clientName string, args map[string]interface{}) error {
	return nil
}

func (p *testProducer) Publish(ctx context.Context, channelName string, data []byte) error {
	p.published <- data

	return nil
}

func (p *testProducer) IsClosed() bool {
	return false
}

func (p *testProducer) Close() {}

func newTestShard(t *testing.T, configuration *driftcord.ApplicationConfiguration) (*driftcord.Application, *driftcord.Shard) {
	t.Helper()

	if configuration == nil {
		configuration = &driftcord.ApplicationConfiguration{
			Identifier: "test",
			Token:      "token",
		}
	}

	app := driftcord.NewApplication(configuration, discord.NewLimitedInterface(), zerolog.Nop())
	app.ShardCount = 1

	return app, app.NewShard(0)
}

func dispatchPayload(t *testing.T, eventType string, data interface{}) discord.GatewayPayload {
	t.Helper()

	raw, err := discord.Marshal(data)
	assert.NoError(t, err)

	return discord.GatewayPayload{
		Type: eventType,
		Data: raw,
		Op:   discord.GatewayOpDispatch,
	}
}

func TestOnReady(t *testing.T) {
	t.Parallel()

	app, sh := newTestShard(t, nil)

	msg := dispatchPayload(t, "READY", discord.Ready{
		User: discord.User{
			ID:       1337,
			Username: "driftcord",
		},
		SessionID: "session-id",
		ResumeURL: "wss://us-east1-b.gateway.discord.gg",
		Guilds: []discord.UnavailableGuild{
			{ID: 100, Unavailable: true},
			{ID: 200, Unavailable: true},
		},
	})

	_, continuable, err := driftcord.OnReady(context.Background(), sh, msg)
	assert.NoError(t, err)
	assert.True(t, continuable)

	assert.Equal(t, "session-id", sh.SessionID.Load())
	assert.Equal(t, "wss://us-east1-b.gateway.discord.gg", sh.ResumeGatewayURL.Load())
	assert.Equal(t, int64(1337), app.UserID.Load())
	assert.Len(t, sh.Unavailable, 2)
	assert.Len(t, sh.Guilds, 2)
	assert.True(t, sh.IsReady)
	assert.Equal(t, driftcord.ShardStatusReady, sh.GetStatus())
}

func TestOnGuildCreateLazyLoad(t *testing.T) {
	t.Parallel()

	_, sh := newTestShard(t, nil)

	sh.Unavailable[100] = true

	msg := dispatchPayload(t, "GUILD_CREATE", discord.UnavailableGuild{ID: 100})

	_, continuable, err := driftcord.OnGuildCreate(context.Background(), sh, msg)
	assert.NoError(t, err)
	assert.True(t, continuable)

	assert.NotContains(t, sh.Unavailable, discord.Snowflake(100))
	assert.Contains(t, sh.Guilds, discord.Snowflake(100))
}

func TestOnGuildDelete(t *testing.T) {
	t.Parallel()

	_, sh := newTestShard(t, nil)

	sh.Guilds[100] = true
	sh.Guilds[200] = true

	// An outage, the guild stays tracked but is marked unavailable.
	msg := dispatchPayload(t, "GUILD_DELETE", discord.UnavailableGuild{ID: 100, Unavailable: true})

	_, _, err := driftcord.OnGuildDelete(context.Background(), sh, msg)
	assert.NoError(t, err)

	assert.Contains(t, sh.Unavailable, discord.Snowflake(100))
	assert.Contains(t, sh.Guilds, discord.Snowflake(100))

	// A removal, the guild is dropped entirely.
	msg = dispatchPayload(t, "GUILD_DELETE", discord.UnavailableGuild{ID: 200})

	_, _, err = driftcord.OnGuildDelete(context.Background(), sh, msg)
	assert.NoError(t, err)

	assert.NotContains(t, sh.Guilds, discord.Snowflake(200))
}

func TestGatewayDispatchUnknownOp(t *testing.T) {
	t.Parallel()

	_, sh := newTestShard(t, nil)

	err := driftcord.GatewayDispatch(context.Background(), sh, discord.GatewayPayload{
		Op: discord.GatewayOp(250),
	})
	assert.ErrorIs(t, err, driftcord.ErrNoGatewayHandler)
}

func TestGatewayHello(t *testing.T) {
	t.Parallel()

	_, sh := newTestShard(t, nil)

	raw, err := discord.Marshal(discord.Hello{HeartbeatInterval: 45000})
	assert.NoError(t, err)

	err = driftcord.GatewayDispatch(context.Background(), sh, discord.GatewayPayload{
		Op:   discord.GatewayOpHello,
		Data: raw,
	})
	assert.NoError(t, err)

	assert.Equal(t, 36*time.Second, sh.HeartbeatInterval)
	assert.Equal(t, 180*time.Second, sh.HeartbeatFailureInterval)
}

func TestGatewayHeartbeatACK(t *testing.T) {
	t.Parallel()

	_, sh := newTestShard(t, nil)

	sh.LastHeartbeatSent.Store(time.Now().UTC())

	err := driftcord.GatewayDispatch(context.Background(), sh, discord.GatewayPayload{
		Op: discord.GatewayOpHeartbeatACK,
	})
	assert.NoError(t, err)

	assert.False(t, sh.LastHeartbeatAck.Load().IsZero())
	assert.GreaterOrEqual(t, sh.Latency(), time.Duration(0))
}

func TestOnDispatchPublishes(t *testing.T) {
	t.Parallel()

	configuration := &driftcord.ApplicationConfiguration{
		Identifier: "test",
		Token:      "token",
	}
	configuration.Messaging.ChannelName = "driftcord"

	app, sh := newTestShard(t, configuration)

	producer := newTestProducer()
	app.WithProducer(producer)

	err := sh.OnDispatch(context.Background(), discord.GatewayPayload{
		Type:     "MESSAGE_CREATE",
		Data:     jsoniter.RawMessage(`{"id":"1","content":"hello"}`),
		Sequence: 3,
		Op:       discord.GatewayOpDispatch,
	})
	assert.NoError(t, err)

	select {
	case payload := <-producer.published:
		var envelope broker.EventEnvelope

		err = jsoniter.Unmarshal(payload, &envelope)
		assert.NoError(t, err)

		assert.Equal(t, "MESSAGE_CREATE", envelope.Type)
		assert.Equal(t, int32(3), envelope.Sequence)
		assert.Equal(t, jsoniter.RawMessage(`{"id":"1","content":"hello"}`), envelope.Data)
		assert.Equal(t, "test", envelope.Metadata.Identifier)
		assert.Equal(t, [2]int32{0, 1}, envelope.Metadata.Shard)
	default:
		t.Fatal("Expected an event to be published")
	}
}

func TestOnDispatchEventBlacklist(t *testing.T) {
	t.Parallel()

	configuration := &driftcord.ApplicationConfiguration{
		Identifier: "test",
		Token:      "token",
	}
	configuration.Events.EventBlacklist = []string{"TYPING_START"}
	configuration.Messaging.ChannelName = "driftcord"

	app, sh := newTestShard(t, configuration)

	producer := newTestProducer()
	app.WithProducer(producer)

	err := sh.OnDispatch(context.Background(), discord.GatewayPayload{
		Type: "TYPING_START",
		Data: jsoniter.RawMessage(`{}`),
		Op:   discord.GatewayOpDispatch,
	})
	assert.NoError(t, err)
	assert.Empty(t, producer.published)
}

func TestOnDispatchProduceBlacklist(t *testing.T) {
	t.Parallel()

	configuration := &driftcord.ApplicationConfiguration{
		Identifier: "test",
		Token:      "token",
	}
	configuration.Events.ProduceBlacklist = []string{"GUILD_CREATE"}
	configuration.Messaging.ChannelName = "driftcord"

	app, sh := newTestShard(t, configuration)

	producer := newTestProducer()
	app.WithProducer(producer)

	err := sh.OnDispatch(context.Background(), dispatchPayload(t, "GUILD_CREATE", discord.UnavailableGuild{ID: 100}))
	assert.NoError(t, err)

	// The handler still tracked the guild even though nothing was produced.
	assert.Contains(t, sh.Guilds, discord.Snowflake(100))
	assert.Empty(t, producer.published)
}

func TestOnDispatchWithoutProducer(t *testing.T) {
	t.Parallel()

	_, sh := newTestShard(t, nil)

	err := sh.OnDispatch(context.Background(), discord.GatewayPayload{
		Type: "MESSAGE_CREATE",
		Data: jsoniter.RawMessage(`{}`),
		Op:   discord.GatewayOpDispatch,
	})
	assert.ErrorIs(t, err, driftcord.ErrProducerMissing)
}
