package driftcord

import (
	"context"
	"strconv"
	"time"

	"github.com/driftcord/driftcord/discord"
	jsoniter "github.com/json-iterator/go"
)

func gatewayOpDispatch(ctx context.Context, sh *Shard, msg discord.GatewayPayload) error {
	sh.Sequence.Store(msg.Sequence)

	go func(msg discord.GatewayPayload) {
		err := sh.OnDispatch(ctx, msg)
		if err != nil {
			sh.Logger.Error().Err(err).Str("type", msg.Type).Msg("Dispatch failed")
		}
	}(msg)

	return nil
}

func gatewayOpHeartbeat(ctx context.Context, sh *Shard, msg discord.GatewayPayload) error {
	err := sh.SendEvent(ctx, discord.GatewayOpHeartbeat, sh.Sequence.Load())
	if err != nil {
		sh.Logger.Error().Err(err).Msg("Failed to send heartbeat")

		err = sh.Reconnect(WebsocketReconnectCloseCode)
		if err != nil {
			sh.Logger.Error().Err(err).Msg("Failed to reconnect")
		}
	}

	return err
}

func gatewayOpReconnect(ctx context.Context, sh *Shard, msg discord.GatewayPayload) error {
	sh.Logger.Info().Msg("Reconnecting in response to gateway")

	err := sh.Reconnect(WebsocketReconnectCloseCode)
	if err != nil {
		sh.Logger.Error().Err(err).Msg("Failed to reconnect")
	}

	return err
}

func gatewayOpInvalidSession(ctx context.Context, sh *Shard, msg discord.GatewayPayload) error {
	var resumable bool

	_ = jsoniter.Unmarshal(msg.Data, &resumable)

	if !resumable {
		sh.SessionID.Store("")
		sh.Sequence.Store(0)
	}

	sh.Logger.Warn().Bool("resumable", resumable).Msg("Received invalid session")

	err := sh.Reconnect(WebsocketReconnectCloseCode)
	if err != nil {
		sh.Logger.Error().Err(err).Msg("Failed to reconnect")
	}

	return err
}

func gatewayOpHello(ctx context.Context, sh *Shard, msg discord.GatewayPayload) error {
	var hello discord.Hello

	err := sh.decodeContent(msg, &hello)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	sh.LastHeartbeatSent.Store(now)
	sh.LastHeartbeatAck.Store(now)

	sh.HeartbeatInterval = time.Duration(float64(hello.HeartbeatInterval)*0.8) * time.Millisecond
	sh.HeartbeatFailureInterval = sh.HeartbeatInterval * ShardMaxHeartbeatFailures

	if sh.Heartbeater != nil {
		sh.Heartbeater.Reset(sh.HeartbeatInterval)
	}

	sh.Logger.Debug().
		Dur("interval", sh.HeartbeatInterval).
		Msg("Received HELLO event")

	return nil
}

func gatewayOpHeartbeatACK(ctx context.Context, sh *Shard, msg discord.GatewayPayload) error {
	sh.LastHeartbeatAck.Store(time.Now().UTC())

	heartbeatRTT := sh.Latency().Milliseconds()

	sh.Logger.Debug().
		Int64("RTT", heartbeatRTT).
		Msg("Received heartbeat ACK")

	driftcordGatewayLatency.WithLabelValues(
		sh.Application.Identifier.Load(),
		strconv.Itoa(int(sh.ShardID)),
	).Set(float64(heartbeatRTT))

	return nil
}

func init() {
	registerGatewayEvent(discord.GatewayOpDispatch, gatewayOpDispatch)
	registerGatewayEvent(discord.GatewayOpHeartbeat, gatewayOpHeartbeat)
	registerGatewayEvent(discord.GatewayOpReconnect, gatewayOpReconnect)
	registerGatewayEvent(discord.GatewayOpInvalidSession, gatewayOpInvalidSession)
	registerGatewayEvent(discord.GatewayOpHello, gatewayOpHello)
	registerGatewayEvent(discord.GatewayOpHeartbeatACK, gatewayOpHeartbeatACK)
}
