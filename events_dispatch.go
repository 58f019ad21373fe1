package driftcord

import (
	"context"

	"github.com/driftcord/driftcord/discord"
	jsoniter "github.com/json-iterator/go"
)

// OnReady handles the READY event. It stores the session details used
// for resuming and tracks the guilds the shard is responsible for.
func OnReady(ctx context.Context, sh *Shard, msg discord.GatewayPayload) (jsoniter.RawMessage, bool, error) {
	var readyPayload discord.Ready

	err := sh.decodeContent(msg, &readyPayload)
	if err != nil {
		return msg.Data, false, err
	}

	sh.Logger.Info().
		Str("session_id", readyPayload.SessionID).
		Int("guilds", len(readyPayload.Guilds)).
		Msg("Received READY payload")

	sh.SessionID.Store(readyPayload.SessionID)
	sh.ResumeGatewayURL.Store(readyPayload.ResumeURL)

	sh.Application.UserID.Store(int64(readyPayload.User.ID))

	sh.Application.userMu.Lock()
	user := readyPayload.User
	sh.Application.User = &user
	sh.Application.userMu.Unlock()

	sh.unavailableMu.Lock()
	sh.guildsMu.Lock()

	for _, guild := range readyPayload.Guilds {
		sh.Unavailable[guild.ID] = true
		sh.Guilds[guild.ID] = true
	}

	unavailable := len(sh.Unavailable)

	sh.guildsMu.Unlock()
	sh.unavailableMu.Unlock()

	driftcordUnavailableGuildCount.
		WithLabelValues(sh.Application.Identifier.Load()).
		Set(float64(unavailable))

	sh.SetStatus(ShardStatusReady)

	sh.IsReady = true

	select {
	case sh.ready <- void{}:
	default:
	}

	return msg.Data, true, nil
}

// OnResumed handles the RESUMED event.
func OnResumed(ctx context.Context, sh *Shard, msg discord.GatewayPayload) (jsoniter.RawMessage, bool, error) {
	sh.Logger.Info().Msg("Shard has resumed")

	sh.SetStatus(ShardStatusReady)

	sh.IsReady = true

	select {
	case sh.ready <- void{}:
	default:
	}

	return msg.Data, true, nil
}

// OnGuildCreate handles the GUILD_CREATE event. A guild create for a
// guild that was marked unavailable in READY is a lazy-load, not a join.
func OnGuildCreate(ctx context.Context, sh *Shard, msg discord.GatewayPayload) (jsoniter.RawMessage, bool, error) {
	var guildCreatePayload struct {
		ID discord.Snowflake `json:"id"`
	}

	err := sh.decodeContent(msg, &guildCreatePayload)
	if err != nil {
		return msg.Data, false, err
	}

	sh.unavailableMu.Lock()
	lazy := sh.Unavailable[guildCreatePayload.ID]
	delete(sh.Unavailable, guildCreatePayload.ID)
	unavailable := len(sh.Unavailable)
	sh.unavailableMu.Unlock()

	sh.guildsMu.Lock()
	sh.Guilds[guildCreatePayload.ID] = true
	sh.guildsMu.Unlock()

	driftcordUnavailableGuildCount.
		WithLabelValues(sh.Application.Identifier.Load()).
		Set(float64(unavailable))

	if lazy {
		sh.Logger.Trace().
			Int64("guild_id", int64(guildCreatePayload.ID)).
			Msg("Lazy loaded guild")
	}

	sh.Application.configurationMu.RLock()
	chunkOnStartup := sh.Application.Configuration.Bot.ChunkGuildsOnStartup
	sh.Application.configurationMu.RUnlock()

	if chunkOnStartup {
		err = sh.ChunkGuild(ctx, guildCreatePayload.ID)
		if err != nil {
			sh.Logger.Warn().Err(err).
				Int64("guild_id", int64(guildCreatePayload.ID)).
				Msg("Failed to chunk guild")
		}
	}

	return msg.Data, true, nil
}

// OnGuildDelete handles the GUILD_DELETE event. When the unavailable
// flag is set the guild has gone down, not removed the bot.
func OnGuildDelete(ctx context.Context, sh *Shard, msg discord.GatewayPayload) (jsoniter.RawMessage, bool, error) {
	var guildDeletePayload discord.UnavailableGuild

	err := sh.decodeContent(msg, &guildDeletePayload)
	if err != nil {
		return msg.Data, false, err
	}

	if guildDeletePayload.Unavailable {
		sh.unavailableMu.Lock()
		sh.Unavailable[guildDeletePayload.ID] = true
		unavailable := len(sh.Unavailable)
		sh.unavailableMu.Unlock()

		driftcordUnavailableGuildCount.
			WithLabelValues(sh.Application.Identifier.Load()).
			Set(float64(unavailable))
	} else {
		sh.guildsMu.Lock()
		delete(sh.Guilds, guildDeletePayload.ID)
		sh.guildsMu.Unlock()
	}

	return msg.Data, true, nil
}

// OnGuildMembersChunk handles the GUILD_MEMBERS_CHUNK event.
func OnGuildMembersChunk(ctx context.Context, sh *Shard, msg discord.GatewayPayload) (jsoniter.RawMessage, bool, error) {
	var chunkPayload discord.GuildMembersChunk

	err := sh.decodeContent(msg, &chunkPayload)
	if err != nil {
		return msg.Data, false, err
	}

	sh.Logger.Debug().
		Int64("guild_id", int64(chunkPayload.GuildID)).
		Int32("chunk_index", chunkPayload.ChunkIndex).
		Int32("chunk_count", chunkPayload.ChunkCount).
		Msg("Received guild member chunk")

	return msg.Data, true, nil
}

func init() {
	registerDispatch("READY", OnReady)
	registerDispatch("RESUMED", OnResumed)
	registerDispatch("GUILD_CREATE", OnGuildCreate)
	registerDispatch("GUILD_DELETE", OnGuildDelete)
	registerDispatch("GUILD_MEMBERS_CHUNK", OnGuildMembersChunk)
}
