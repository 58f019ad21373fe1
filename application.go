// Package driftcord implements a sharded client to the discord gateway,
// publishing dispatch events to a configured broker producer.
package driftcord

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/WelcomerTeam/RealRock/bucketstore"
	"github.com/driftcord/driftcord/broker"
	"github.com/driftcord/driftcord/discord"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"nhooyr.io/websocket"
)

// VERSION follows semantic versioning.
const VERSION = "0.1.0"

const (
	ShardMaxRetries           = 10
	ShardMaxHeartbeatFailures = 5
	GatewayLargeThreshold     = 250

	// An identify is allowed once per bucket in this window. Half a second
	// of padding is added on top of discord's documented 5 seconds.
	IdentifyRateLimit = (5 * time.Second) + (500 * time.Millisecond)
)

var gatewayURL = url.URL{
	Scheme:   "wss",
	Host:     "gateway.discord.gg",
	RawQuery: "v=10&encoding=json",
}

// ApplicationConfiguration represents the configuration for a single bot
// application.
type ApplicationConfiguration struct {
	Identifier string `json:"identifier" yaml:"identifier"`
	Token      string `json:"token" yaml:"token"`

	Bot struct {
		DefaultPresence      *discord.UpdateStatus `json:"default_presence,omitempty" yaml:"default_presence,omitempty"`
		Intents              int32                 `json:"intents" yaml:"intents"`
		ChunkGuildsOnStartup bool                  `json:"chunk_guilds_on_startup" yaml:"chunk_guilds_on_startup"`
	} `json:"bot" yaml:"bot"`

	Events struct {
		EventBlacklist   []string `json:"event_blacklist" yaml:"event_blacklist"`
		ProduceBlacklist []string `json:"produce_blacklist" yaml:"produce_blacklist"`
	} `json:"events" yaml:"events"`

	Messaging struct {
		ClientName  string `json:"client_name" yaml:"client_name"`
		ChannelName string `json:"channel_name" yaml:"channel_name"`
	} `json:"messaging" yaml:"messaging"`

	Sharding struct {
		// ShardIDs is a range string such as "0-4,6". When empty, all
		// shards up to ShardCount are ran.
		ShardIDs    string `json:"shard_ids" yaml:"shard_ids"`
		ShardCount  int32  `json:"shard_count" yaml:"shard_count"`
		AutoSharded bool   `json:"auto_sharded" yaml:"auto_sharded"`
	} `json:"sharding" yaml:"sharding"`
}

// Application represents a single bot and the shards it runs.
type Application struct {
	ctx    context.Context
	cancel func()

	Logger zerolog.Logger `json:"-"`

	configurationMu sync.RWMutex
	Configuration   *ApplicationConfiguration `json:"configuration"`

	Identifier *atomic.String `json:"-"`

	Session *discord.Session `json:"-"`

	Producer broker.Producer `json:"-"`

	Error *atomic.String `json:"error"`
	Start *atomic.Time   `json:"start"`

	userMu sync.RWMutex
	User   *discord.User `json:"user"`
	UserID *atomic.Int64 `json:"user_id"`

	gatewayMu sync.RWMutex
	Gateway   discord.GatewayBotResponse `json:"gateway"`

	identifyBuckets *bucketstore.BucketStore

	shardsMu sync.RWMutex
	Shards   map[int32]*Shard `json:"shards"`

	ShardCount int32   `json:"shard_count"`
	ShardIDs   []int32 `json:"shard_ids"`

	eventBlacklistMu sync.RWMutex
	eventBlacklist   []string

	produceBlacklistMu sync.RWMutex
	produceBlacklist   []string

	sentPool sync.Pool
}

// NewApplication creates an application from its configuration. The
// passed RESTInterface is used for all REST calls the gateway needs.
func NewApplication(configuration *ApplicationConfiguration, restInterface discord.RESTInterface, logger zerolog.Logger) *Application {
	app := &Application{
		Logger: logger.With().Str("application", configuration.Identifier).Logger(),

		Configuration: configuration,

		Identifier: atomic.NewString(configuration.Identifier),

		Session: discord.NewSession("Bot "+configuration.Token, restInterface),

		Error: &atomic.String{},
		Start: &atomic.Time{},

		UserID: &atomic.Int64{},

		identifyBuckets: bucketstore.NewBucketStore(),

		Shards: make(map[int32]*Shard),

		eventBlacklist:   configuration.Events.EventBlacklist,
		produceBlacklist: configuration.Events.ProduceBlacklist,

		sentPool: sync.Pool{
			New: func() interface{} { return new(discord.SentPayload) },
		},
	}

	app.ctx, app.cancel = context.WithCancel(context.Background())

	return app
}

// WithProducer attaches a broker producer that dispatch events are
// published to.
func (app *Application) WithProducer(producer broker.Producer) *Application {
	app.Producer = producer

	return app
}

// Initialize fetches the gateway session limits and decides the shard
// layout. It must be called before Open.
func (app *Application) Initialize(ctx context.Context) error {
	app.Logger.Debug().Msg("Initializing application")

	gateway, err := discord.GetGatewayBot(ctx, app.Session)
	if err != nil {
		return fmt.Errorf("failed to fetch gateway: %w", err)
	}

	app.gatewayMu.Lock()
	app.Gateway = *gateway
	app.gatewayMu.Unlock()

	app.configurationMu.RLock()
	shardCount := app.Configuration.Sharding.ShardCount
	autoSharded := app.Configuration.Sharding.AutoSharded
	shardIDs := app.Configuration.Sharding.ShardIDs
	app.configurationMu.RUnlock()

	if autoSharded || shardCount < 1 {
		shardCount = gateway.Shards
	}

	if shardCount < 1 {
		shardCount = 1
	}

	app.ShardCount = shardCount
	app.ShardIDs = app.getInitialShardIDs(shardIDs, shardCount)

	if int32(len(app.ShardIDs)) > gateway.SessionStartLimit.Remaining {
		return ErrSessionLimitExhausted
	}

	app.Logger.Info().
		Int32("shard_count", shardCount).
		Int("shard_ids", len(app.ShardIDs)).
		Int32("remaining", gateway.SessionStartLimit.Remaining).
		Msg("Initialized application")

	return nil
}

// getInitialShardIDs returns the shard ids the application will run.
func (app *Application) getInitialShardIDs(shardIDs string, shardCount int32) []int32 {
	if shardIDs != "" {
		return returnRangeInt32(shardIDs, shardCount)
	}

	ids := make([]int32, 0, shardCount)
	for i := int32(0); i < shardCount; i++ {
		ids = append(ids, i)
	}

	return ids
}

// Open connects every shard. The first shard is connected on its own to
// confirm the token is valid before the rest connect concurrently. The
// returned channel closes once every shard has received READY.
func (app *Application) Open() (ready chan bool, err error) {
	app.Start.Store(time.Now().UTC())

	if len(app.ShardIDs) == 0 {
		return nil, ErrMissingShards
	}

	ready = make(chan bool, 1)

	app.Logger.Info().
		Int32("shard_count", app.ShardCount).
		Int("shard_ids", len(app.ShardIDs)).
		Msg("Starting application")

	app.shardsMu.Lock()
	for _, shardID := range app.ShardIDs {
		app.Shards[shardID] = app.NewShard(shardID)
	}
	app.shardsMu.Unlock()

	app.shardsMu.RLock()
	initialShard := app.Shards[app.ShardIDs[0]]
	app.shardsMu.RUnlock()

	for {
		err = initialShard.Connect()
		if err == nil || errors.Is(err, context.Canceled) {
			break
		}

		retriesRemaining := initialShard.RetriesRemaining.Load()
		if retriesRemaining <= 0 {
			app.Logger.Error().Err(err).Msg("Failed to connect shard. Cannot continue")

			app.Error.Store(err.Error())

			app.Close()

			return nil, err
		}

		app.Logger.Error().Err(err).
			Int32("retries_remaining", retriesRemaining).
			Msg("Failed to connect shard. Retrying")

		initialShard.RetriesRemaining.Sub(1)
	}

	go initialShard.Open()

	connectGroup := sync.WaitGroup{}

	for _, shardID := range app.ShardIDs[1:] {
		connectGroup.Add(1)

		go func(shardID int32) {
			defer connectGroup.Done()

			app.shardsMu.RLock()
			shard := app.Shards[shardID]
			app.shardsMu.RUnlock()

			for {
				shardErr := shard.Connect()
				if shardErr != nil && !errors.Is(shardErr, context.Canceled) {
					app.Logger.Warn().Err(shardErr).
						Int32("shard_id", shardID).
						Msg("Failed to connect shard. Retrying")

					continue
				}

				go shard.Open()

				break
			}
		}(shardID)
	}

	connectGroup.Wait()
	app.Logger.Info().Msg("All shards have connected")

	go func() {
		app.shardsMu.RLock()
		shards := make([]*Shard, 0, len(app.Shards))
		for _, shardID := range app.ShardIDs {
			shards = append(shards, app.Shards[shardID])
		}
		app.shardsMu.RUnlock()

		for _, shard := range shards {
			shard.WaitForReady()
		}

		app.Logger.Info().Msg("All shards are now ready")

		close(ready)
	}()

	return ready, nil
}

// Close stops all shards gracefully.
func (app *Application) Close() {
	app.Logger.Info().Msg("Closing application")

	closeWaiter := sync.WaitGroup{}

	app.shardsMu.RLock()
	for _, sh := range app.Shards {
		closeWaiter.Add(1)

		go func(sh *Shard) {
			sh.Close(websocket.StatusNormalClosure)
			closeWaiter.Done()
		}(sh)
	}
	app.shardsMu.RUnlock()

	closeWaiter.Wait()

	if app.cancel != nil {
		app.cancel()
	}
}

// WaitForIdentify blocks until the shard is allowed to identify. Discord
// allows one identify per max_concurrency bucket every 5 seconds.
func (app *Application) WaitForIdentify(ctx context.Context, shardID int32) error {
	app.gatewayMu.RLock()
	sessionStartLimit := app.Gateway.SessionStartLimit
	app.gatewayMu.RUnlock()

	if sessionStartLimit.Remaining <= 0 {
		return ErrSessionLimitExhausted
	}

	app.configurationMu.RLock()
	token := app.Configuration.Token
	app.configurationMu.RUnlock()

	maxConcurrency := sessionStartLimit.MaxConcurrency
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	bucketName := fmt.Sprintf(
		"identify:%s:%d",
		quickHash(token),
		shardID%maxConcurrency,
	)

	err := app.identifyBuckets.CreateWaitForBucket(bucketName, 1, IdentifyRateLimit)
	if err != nil {
		return fmt.Errorf("failed to wait for identify bucket: %w", err)
	}

	app.gatewayMu.Lock()
	app.Gateway.SessionStartLimit.Remaining--
	app.gatewayMu.Unlock()

	return nil
}

// PublishEvent publishes an event envelope to the producer.
func (app *Application) PublishEvent(ctx context.Context, envelope *broker.EventEnvelope) error {
	if app.Producer == nil {
		return ErrProducerMissing
	}

	app.configurationMu.RLock()
	channelName := app.Configuration.Messaging.ChannelName
	app.configurationMu.RUnlock()

	envelope.Metadata = broker.Metadata{
		Version:       VERSION,
		Identifier:    app.Identifier.Load(),
		ApplicationID: discord.Snowflake(app.UserID.Load()),
		Shard:         envelope.Metadata.Shard,
	}

	payload, err := jsoniter.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	err = app.Producer.Publish(ctx, channelName, payload)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// ApplicationSummary is a read-only snapshot of an application, served
// by the daemon status API.
type ApplicationSummary struct {
	Identifier string                 `json:"identifier"`
	UserID     discord.Snowflake      `json:"user_id"`
	Uptime     string                 `json:"uptime"`
	ShardCount int32                  `json:"shard_count"`
	Shards     map[int32]ShardSummary `json:"shards"`
}

// ShardSummary is a read-only snapshot of a shard.
type ShardSummary struct {
	ShardID int32       `json:"shard_id"`
	Status  ShardStatus `json:"status"`
	Guilds  int         `json:"guilds"`
	Latency int64       `json:"latency_ms"`
}

// Summary returns a snapshot of the application and its shards.
func (app *Application) Summary() ApplicationSummary {
	summary := ApplicationSummary{
		Identifier: app.Identifier.Load(),
		UserID:     discord.Snowflake(app.UserID.Load()),
		Uptime:     time.Now().UTC().Sub(app.Start.Load()).Round(time.Second).String(),
		ShardCount: app.ShardCount,
		Shards:     make(map[int32]ShardSummary),
	}

	app.shardsMu.RLock()
	defer app.shardsMu.RUnlock()

	for shardID, shard := range app.Shards {
		shard.guildsMu.RLock()
		guilds := len(shard.Guilds)
		shard.guildsMu.RUnlock()

		summary.Shards[shardID] = ShardSummary{
			ShardID: shardID,
			Status:  shard.GetStatus(),
			Guilds:  guilds,
			Latency: shard.Latency().Milliseconds(),
		}
	}

	return summary
}
