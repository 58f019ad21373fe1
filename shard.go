package driftcord

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/WelcomerTeam/RealRock/limiter"
	"github.com/WelcomerTeam/czlib"
	"github.com/driftcord/driftcord/discord"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"nhooyr.io/websocket"
)

const (
	WebsocketReadLimit          = 512 << 20
	WebsocketReconnectCloseCode = websocket.StatusCode(4000)

	MessageChannelBuffer = 64

	// Discord allows 120 gateway messages per minute. We reserve the
	// rest for heartbeats, which bypass the limiter entirely.
	ShardWSRateLimit = 110

	FirstEventTimeout = 5 * time.Second

	WaitForReadyTimeout = 15 * time.Second

	MaxReconnectWait = 60 * time.Second
)

// ShardStatus represents the lifecycle state of a shard.
type ShardStatus int32

const (
	ShardStatusIdle ShardStatus = iota
	ShardStatusConnecting
	ShardStatusConnected
	ShardStatusReady
	ShardStatusReconnecting
	ShardStatusClosing
	ShardStatusClosed
	ShardStatusErroring
)

// Shard represents a single gateway connection.
type Shard struct {
	ctx    context.Context
	cancel func()

	Start            *atomic.Time  `json:"start"`
	Init             *atomic.Time  `json:"init"`
	RetriesRemaining *atomic.Int32 `json:"-"`

	Logger zerolog.Logger `json:"-"`

	ShardID    int32 `json:"shard_id"`
	ShardCount int32 `json:"shard_count"`

	ResumeGatewayURL *atomic.String `json:"resume_gateway_url"`
	ConnectionURL    *atomic.String `json:"connection_url"`

	Application *Application `json:"-"`

	HeartbeatActive   *atomic.Bool `json:"-"`
	LastHeartbeatAck  *atomic.Time `json:"-"`
	LastHeartbeatSent *atomic.Time `json:"-"`

	Heartbeater       *time.Ticker  `json:"-"`
	HeartbeatInterval time.Duration `json:"-"`

	// Duration since last heartbeat ack before reconnecting.
	HeartbeatFailureInterval time.Duration `json:"-"`

	// Guilds from READY that have not sent their GUILD_CREATE yet.
	unavailableMu sync.RWMutex
	Unavailable   map[discord.Snowflake]bool `json:"unavailable"`

	// All guilds this shard has seen.
	guildsMu sync.RWMutex
	Guilds   map[discord.Snowflake]bool `json:"guilds"`

	statusMu sync.RWMutex
	Status   ShardStatus `json:"status"`

	channelMu sync.RWMutex
	MessageCh chan discord.GatewayPayload `json:"-"`
	ErrorCh   chan error                  `json:"-"`

	Sequence  *atomic.Int32  `json:"-"`
	SessionID *atomic.String `json:"-"`

	wsConnMu sync.RWMutex
	wsConn   *websocket.Conn

	wsRatelimit *limiter.DurationLimiter

	ready chan void

	IsReady bool
}

// NewShard creates a new shard object.
func (app *Application) NewShard(shardID int32) *Shard {
	logger := app.Logger.With().Int32("shard_id", shardID).Logger()

	sh := &Shard{
		RetriesRemaining: atomic.NewInt32(ShardMaxRetries),

		Logger: logger,

		ShardID:    shardID,
		ShardCount: app.ShardCount,

		Application: app,

		Start: &atomic.Time{},
		Init:  atomic.NewTime(time.Now().UTC()),

		HeartbeatActive:   atomic.NewBool(false),
		LastHeartbeatAck:  &atomic.Time{},
		LastHeartbeatSent: &atomic.Time{},

		unavailableMu: sync.RWMutex{},
		Unavailable:   make(map[discord.Snowflake]bool),

		guildsMu: sync.RWMutex{},
		Guilds:   make(map[discord.Snowflake]bool),

		statusMu: sync.RWMutex{},
		Status:   ShardStatusIdle,

		channelMu: sync.RWMutex{},

		Sequence:         &atomic.Int32{},
		SessionID:        &atomic.String{},
		ResumeGatewayURL: &atomic.String{},
		ConnectionURL:    &atomic.String{},

		wsConnMu: sync.RWMutex{},

		wsRatelimit: limiter.NewDurationLimiter(ShardWSRateLimit, time.Minute),

		ready: make(chan void, 1),
	}

	sh.ctx, sh.cancel = context.WithCancel(app.ctx)

	return sh
}

// Open starts listening to the gateway, reconnecting as necessary. It
// returns once the shard context is cancelled.
func (sh *Shard) Open() {
	sh.Logger.Debug().Msg("Started listening to shard")

	for {
		err := sh.Listen(sh.ctx)
		if errors.Is(err, context.Canceled) {
			sh.Logger.Debug().Msg("Shard context cancelled")

			return
		}

		select {
		case <-sh.ctx.Done():
			return
		default:
		}
	}
}

// Connect dials the gateway and handles identifying or resuming.
func (sh *Shard) Connect() error {
	sh.Logger.Debug().Msg("Connecting shard")

	// Do not override status if it is currently Reconnecting.
	if sh.GetStatus() != ShardStatusReconnecting {
		sh.SetStatus(ShardStatusConnecting)
	}

	var err error

	defer func() {
		if err != nil {
			sh.SetStatus(ShardStatusErroring)
		}
	}()

	// Empty ready channel.
readyConsumer:
	for {
		select {
		case <-sh.ready:
		default:
			break readyConsumer
		}
	}

	sh.IsReady = false

	if sh.cancel != nil {
		sh.cancel()
	}

	sh.ctx, sh.cancel = context.WithCancel(sh.Application.ctx)

	defer func() {
		if err != nil && sh.hasWsConn() {
			_ = sh.CloseWS(websocket.StatusNormalClosure)
		}
	}()

	gwURL := gatewayURL.String()

	if resumeURL := sh.ResumeGatewayURL.Load(); resumeURL != "" {
		gwURL = resumeURL + "/?" + gatewayURL.RawQuery

		sh.Logger.Debug().Str("url", gwURL).Msg("Resuming shard")
		sh.ResumeGatewayURL.Store("")
	} else {
		sh.SessionID.Store("")
	}

	if !sh.hasWsConn() || sh.ConnectionURL.Load() != gwURL {
		if sh.hasWsConn() {
			sh.Logger.Debug().Msg("Closing existing websocket connection")

			_ = sh.CloseWS(websocket.StatusInternalError)
			sh.ConnectionURL.Store("")
		}

		sh.ConnectionURL.Store(gwURL)

		var errorCh chan error

		var messageCh chan discord.GatewayPayload

		errorCh, messageCh, err = sh.FeedWebsocket(sh.ctx, gwURL, nil)
		if err != nil {
			sh.Logger.Error().Err(err).Msg("Failed to dial gateway")

			return err
		}

		sh.channelMu.Lock()
		sh.ErrorCh = errorCh
		sh.MessageCh = messageCh
		sh.channelMu.Unlock()
	} else {
		sh.Logger.Info().Msg("Reusing websocket connection")
	}

	// The first message from the gateway should be HELLO.
	msg, err := sh.readMessage()
	if err != nil {
		sh.Logger.Error().Err(err).Msg("Failed to read message")

		return err
	}

	var hello discord.Hello

	err = sh.decodeContent(msg, &hello)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	sh.Start.Store(now)
	sh.LastHeartbeatAck.Store(now)
	sh.LastHeartbeatSent.Store(now)

	// Jitter the interval so heartbeats land well before the deadline.
	sh.HeartbeatInterval = time.Duration(float64(hello.HeartbeatInterval)*0.8) * time.Millisecond
	sh.HeartbeatFailureInterval = sh.HeartbeatInterval * ShardMaxHeartbeatFailures

	sh.Heartbeater = time.NewTicker(sh.HeartbeatInterval)

	go sh.Heartbeat(sh.ctx)

	sequence := sh.Sequence.Load()
	sessionID := sh.SessionID.Load()

	sh.Logger.Debug().
		Dur("interval", sh.HeartbeatInterval).
		Int32("sequence", sequence).
		Msg("Received HELLO event")

	if sessionID == "" || sequence == 0 {
		err = sh.Identify(sh.ctx)
		if err != nil {
			sh.Logger.Error().Err(err).Msg("Failed to identify")

			return err
		}
	} else {
		err = sh.Resume(sh.ctx)
		if err != nil {
			sh.Logger.Error().Err(err).Msg("Failed to resume")

			return err
		}
	}

	sh.SetStatus(ShardStatusConnected)

	// Wait until we either receive a first event, an error, or hit
	// FirstEventTimeout. Nothing happens on the timeout.
	t := time.NewTicker(FirstEventTimeout)
	defer t.Stop()

	sh.channelMu.RLock()
	errorCh := sh.ErrorCh
	messageCh := sh.MessageCh
	sh.channelMu.RUnlock()

	select {
	case err = <-errorCh:
		if err == nil {
			err = fmt.Errorf("error channel closed")
		}

		sh.Logger.Error().Err(err).Msg("Encountered error whilst connecting")

		return err
	case msg = <-messageCh:
		sh.Logger.Debug().Msgf("Received first event %d %s", msg.Op, msg.Type)

		messageCh <- msg
	case <-t.C:
	}

	return err
}

// Heartbeat maintains a heartbeat with discord.
func (sh *Shard) Heartbeat(ctx context.Context) {
	sh.HeartbeatActive.Store(true)
	defer sh.HeartbeatActive.Store(false)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sh.Heartbeater.C:
			seq := sh.Sequence.Load()

			err := sh.SendEvent(ctx, discord.GatewayOpHeartbeat, seq)

			now := time.Now().UTC()
			sh.LastHeartbeatSent.Store(now)

			if err != nil || now.Sub(sh.LastHeartbeatAck.Load()) > sh.HeartbeatFailureInterval {
				if err != nil {
					sh.Logger.Error().Err(err).Msg("Failed to heartbeat. Reconnecting")
				} else {
					sh.Logger.Warn().Msg("Failed to ack and passed heartbeat failure interval")
					err = fmt.Errorf("failed to ack and passed heartbeat failure interval")
				}

				sh.channelMu.RLock()
				errorCh := sh.ErrorCh
				sh.channelMu.RUnlock()

				select {
				case errorCh <- err:
				case <-ctx.Done():
				}

				return
			}
		}
	}
}

// Listen reads from the gateway and routes payloads to their handlers.
func (sh *Shard) Listen(ctx context.Context) error {
	sh.wsConnMu.RLock()
	wsConn := sh.wsConn
	sh.wsConnMu.RUnlock()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := sh.readMessage()
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				break
			}

			sh.Logger.Error().Err(err).Msg("Error reading from gateway")

			var closeError websocket.CloseError

			if errors.As(err, &closeError) {
				switch closeError.Code {
				case discord.CloseNotAuthenticated,
					discord.CloseAuthenticationFailed:
					err = fmt.Errorf("%w: %s", ErrInvalidToken, closeError.Reason)
				case discord.CloseInvalidShard,
					discord.CloseShardingRequired:
					err = fmt.Errorf("%w: %s", ErrInvalidShard, closeError.Reason)
				}

				switch closeError.Code {
				case discord.CloseNotAuthenticated,
					discord.CloseAuthenticationFailed,
					discord.CloseInvalidShard,
					discord.CloseShardingRequired,
					discord.CloseInvalidAPIVersion,
					discord.CloseInvalidIntents,
					discord.CloseDisallowedIntents:
					sh.Logger.Error().Int("code", int(closeError.Code)).Msg("Shard received closure code")

					sh.Application.Error.Store(err.Error())

					return err
				default:
					sh.Logger.Warn().Msgf("Websocket was closed with code %d", closeError.Code)
				}
			}

			sh.wsConnMu.RLock()
			connEqual := wsConn == sh.wsConn
			sh.wsConnMu.RUnlock()

			if connEqual {
				// The connection we were reading from has gone away.
				sh.Logger.Warn().Msg("Encountered error on the same connection. Reconnecting")

				return sh.Reconnect(websocket.StatusNormalClosure)
			}
		} else {
			sh.OnEvent(ctx, msg)
		}

		// In the event of a reconnect the connection may have been
		// replaced underneath us.
		sh.wsConnMu.RLock()
		connNotEqual := wsConn != sh.wsConn
		sh.wsConnMu.RUnlock()

		if connNotEqual {
			sh.Logger.Debug().Msg("New connection was assigned to shard")

			sh.wsConnMu.RLock()
			wsConn = sh.wsConn
			sh.wsConnMu.RUnlock()
		}
	}

	return nil
}

// FeedWebsocket dials a websocket and feeds its payloads through a channel.
func (sh *Shard) FeedWebsocket(ctx context.Context, u string,
	opts *websocket.DialOptions,
) (errorCh chan error, messageCh chan discord.GatewayPayload, err error) {
	messageCh = make(chan discord.GatewayPayload, MessageChannelBuffer)
	errorCh = make(chan error, 1)

	conn, _, err := websocket.Dial(ctx, u, opts)
	if err != nil {
		return errorCh, messageCh, fmt.Errorf("failed to connect to websocket: %w", err)
	}

	conn.SetReadLimit(WebsocketReadLimit)

	sh.wsConnMu.Lock()
	sh.wsConn = conn
	sh.wsConnMu.Unlock()

	go func() {
		for {
			messageType, data, connectionErr := conn.Read(ctx)

			select {
			case <-ctx.Done():
				return
			default:
			}

			if connectionErr != nil {
				select {
				case errorCh <- connectionErr:
				case <-ctx.Done():
				}

				return
			}

			driftcordEventCount.WithLabelValues(sh.Application.Identifier.Load()).Inc()

			if messageType == websocket.MessageBinary {
				data, connectionErr = czlib.Decompress(data)
				if connectionErr != nil {
					sh.Logger.Error().Err(connectionErr).Msg("Failed to decompress payload")

					select {
					case errorCh <- connectionErr:
					case <-ctx.Done():
					}

					return
				}
			}

			var msg discord.GatewayPayload

			connectionErr = jsoniter.Unmarshal(data, &msg)
			if connectionErr != nil {
				sh.Logger.Error().Err(connectionErr).Msg("Failed to unmarshal payload")

				continue
			}

			select {
			case messageCh <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	return errorCh, messageCh, nil
}

// Identify sends the identify packet to discord.
func (sh *Shard) Identify(ctx context.Context) error {
	err := sh.Application.WaitForIdentify(ctx, sh.ShardID)
	if err != nil {
		return fmt.Errorf("failed to wait for identify: %w", err)
	}

	sh.Logger.Debug().Msg("Wait for identify completed")

	sh.Application.configurationMu.RLock()
	token := sh.Application.Configuration.Token
	presence := sh.Application.Configuration.Bot.DefaultPresence
	intents := sh.Application.Configuration.Bot.Intents
	sh.Application.configurationMu.RUnlock()

	sh.Logger.Debug().Msg("Sending identify")

	return sh.SendEvent(ctx, discord.GatewayOpIdentify, discord.Identify{
		Token: token,
		Properties: &discord.IdentifyProperties{
			OS:      runtime.GOOS,
			Browser: "Driftcord " + VERSION,
			Device:  "Driftcord " + VERSION,
		},
		Compress:       true,
		LargeThreshold: GatewayLargeThreshold,
		Shard:          [2]int32{sh.ShardID, sh.ShardCount},
		Presence:       presence,
		Intents:        intents,
	})
}

// Resume sends the resume packet to discord.
func (sh *Shard) Resume(ctx context.Context) error {
	sh.Application.configurationMu.RLock()
	token := sh.Application.Configuration.Token
	sh.Application.configurationMu.RUnlock()

	sh.Logger.Debug().Msg("Sending resume")

	return sh.SendEvent(ctx, discord.GatewayOpResume, discord.Resume{
		Token:     token,
		SessionID: sh.SessionID.Load(),
		Sequence:  sh.Sequence.Load(),
	})
}

// UpdatePresence updates the presence of the shard's session.
func (sh *Shard) UpdatePresence(ctx context.Context, status *discord.UpdateStatus) error {
	sh.Logger.Debug().Msg("Sending update status")

	return sh.SendEvent(ctx, discord.GatewayOpStatusUpdate, status)
}

// ChunkGuild requests member chunks for a guild. Chunks arrive as
// GUILD_MEMBERS_CHUNK dispatch events.
func (sh *Shard) ChunkGuild(ctx context.Context, guildID discord.Snowflake) error {
	err := sh.SendEvent(ctx, discord.GatewayOpRequestGuildMembers, discord.RequestGuildMembers{
		GuildID: guildID,
		Nonce:   randomHex(16),
	})
	if err != nil {
		return fmt.Errorf("failed to request guild members: %w", err)
	}

	return nil
}

// SendEvent sends an event to discord.
func (sh *Shard) SendEvent(ctx context.Context, op discord.GatewayOp, data interface{}) error {
	packet, _ := sh.Application.sentPool.Get().(*discord.SentPayload)
	defer sh.Application.sentPool.Put(packet)

	packet.Op = op
	packet.Data = data

	err := sh.WriteJSON(ctx, op, packet)
	if err != nil {
		return fmt.Errorf("sendEvent writeJSON: %w", err)
	}

	return nil
}

// WriteJSON writes json data to the websocket.
func (sh *Shard) WriteJSON(ctx context.Context, op discord.GatewayOp, i interface{}) error {
	if !sh.hasWsConn() {
		err := sh.Reconnect(websocket.StatusNormalClosure)

		return fmt.Errorf("no websocket connection: %w", err)
	}

	res, err := jsoniter.Marshal(i)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	// Heartbeats bypass the send limiter so they cannot be starved.
	if op != discord.GatewayOpHeartbeat {
		sh.wsRatelimit.Lock()
	}

	sh.wsConnMu.RLock()
	wsConn := sh.wsConn
	sh.wsConnMu.RUnlock()

	if wsConn == nil {
		return fmt.Errorf("no websocket connection")
	}

	err = wsConn.Write(ctx, websocket.MessageText, res)
	if err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

// decodeContent unmarshals the payload data into the passed interface.
func (sh *Shard) decodeContent(msg discord.GatewayPayload, out interface{}) error {
	err := jsoniter.Unmarshal(msg.Data, out)
	if err != nil {
		sh.Logger.Error().Err(err).Str("type", msg.Type).Msg("Failed to decode event")

		return err
	}

	return nil
}

// readMessage returns the next payload or error from the gateway.
func (sh *Shard) readMessage() (msg discord.GatewayPayload, err error) {
	sh.channelMu.RLock()
	errorCh := sh.ErrorCh
	messageCh := sh.MessageCh
	sh.channelMu.RUnlock()

	select {
	case err = <-errorCh:
		return msg, err
	case msg = <-messageCh:
		return msg, nil
	case <-sh.ctx.Done():
		return msg, sh.ctx.Err()
	}
}

// Close closes the shard connection.
func (sh *Shard) Close(code websocket.StatusCode) {
	sh.Logger.Info().Int("code", int(code)).Msg("Closing shard")

	sh.IsReady = false

	sh.SetStatus(ShardStatusClosing)

	if sh.cancel != nil {
		sh.cancel()
	}

	if sh.hasWsConn() {
		_ = sh.CloseWS(code)
	}

	sh.SetStatus(ShardStatusClosed)
}

// CloseWS closes the websocket connection. Closure errors are suppressed.
func (sh *Shard) CloseWS(statusCode websocket.StatusCode) error {
	if sh.hasWsConn() {
		sh.Logger.Debug().Int("code", int(statusCode)).Msg("Closing websocket connection")

		sh.wsConnMu.Lock()
		wsConn := sh.wsConn

		if wsConn != nil {
			err := wsConn.Close(statusCode, "")
			if err != nil && !errors.Is(err, context.Canceled) {
				sh.Logger.Warn().Err(err).Msg("Failed to close websocket connection")
			}
		}

		sh.wsConn = nil
		sh.wsConnMu.Unlock()
	}

	return nil
}

// WaitForReady blocks until the shard is ready.
func (sh *Shard) WaitForReady() {
	if sh.IsReady {
		return
	}

	since := time.Now().UTC()

	t := time.NewTicker(WaitForReadyTimeout)
	defer t.Stop()

	for {
		if sh.IsReady {
			return
		}

		select {
		case <-sh.ready:
		case <-sh.ctx.Done():
			return
		case <-t.C:
			sh.Logger.Debug().
				Dur("since", time.Now().UTC().Sub(since).Round(time.Second)).
				Msg("Still waiting for shard to be ready")
		}
	}
}

// Reconnect attempts to reconnect to the gateway with exponential backoff.
func (sh *Shard) Reconnect(code websocket.StatusCode) error {
	wait := time.Second

	sh.SetStatus(ShardStatusReconnecting)

	sh.Close(code)

	driftcordReconnectCount.WithLabelValues(
		sh.Application.Identifier.Load(),
		strconv.Itoa(int(sh.ShardID)),
	).Inc()

	for {
		sh.Logger.Info().Msg("Trying to reconnect to gateway")

		err := sh.Connect()
		if err == nil {
			sh.RetriesRemaining.Store(ShardMaxRetries)
			sh.Logger.Info().Msg("Successfully reconnected to gateway")

			return nil
		}

		retries := sh.RetriesRemaining.Sub(1)
		if retries <= 0 {
			sh.Logger.Warn().Msg("Ran out of retries whilst connecting. Attempting to connect once more")
			sh.Close(code)

			return sh.Connect()
		}

		sh.Logger.Warn().Err(err).Dur("retry", wait).Msg("Failed to reconnect to gateway")
		<-time.After(wait)

		wait *= 2
		if wait > MaxReconnectWait {
			wait = MaxReconnectWait
		}
	}
}

// SetStatus sets the status of the shard.
func (sh *Shard) SetStatus(status ShardStatus) {
	sh.statusMu.Lock()
	defer sh.statusMu.Unlock()

	sh.Logger.Debug().Int("status", int(status)).Msg("Shard status changed")

	sh.Status = status
}

// GetStatus returns the status of the shard.
func (sh *Shard) GetStatus() ShardStatus {
	sh.statusMu.RLock()
	defer sh.statusMu.RUnlock()

	return sh.Status
}

// Latency returns the duration between the last heartbeat sent and the
// last heartbeat ack.
func (sh *Shard) Latency() time.Duration {
	return sh.LastHeartbeatAck.Load().Sub(sh.LastHeartbeatSent.Load())
}

func (sh *Shard) hasWsConn() bool {
	sh.wsConnMu.RLock()
	hasWsConn := sh.wsConn != nil
	sh.wsConnMu.RUnlock()

	return hasWsConn
}
