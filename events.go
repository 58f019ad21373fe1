package driftcord

import (
	"context"
	"errors"

	"github.com/driftcord/driftcord/broker"
	"github.com/driftcord/driftcord/discord"
	jsoniter "github.com/json-iterator/go"
)

// GatewayHandler processes a single gateway opcode.
type GatewayHandler func(ctx context.Context, sh *Shard, msg discord.GatewayPayload) error

// DispatchHandler performs shard bookkeeping for a dispatch event before
// it is produced. Returning false stops the event reaching consumers.
// The returned data overrides what consumers receive.
type DispatchHandler func(ctx context.Context, sh *Shard, msg discord.GatewayPayload) (data jsoniter.RawMessage, continuable bool, err error)

// List of handlers for gateway events.
var gatewayHandlers = make(map[discord.GatewayOp]GatewayHandler)

// List of handlers for dispatch events.
var dispatchHandlers = make(map[string]DispatchHandler)

func registerGatewayEvent(op discord.GatewayOp, handler GatewayHandler) {
	gatewayHandlers[op] = handler
}

func registerDispatch(eventType string, handler DispatchHandler) {
	dispatchHandlers[eventType] = handler
}

// OnEvent routes a gateway payload to its opcode handler.
func (sh *Shard) OnEvent(ctx context.Context, msg discord.GatewayPayload) {
	err := GatewayDispatch(ctx, sh, msg)
	if err != nil {
		if errors.Is(err, ErrNoGatewayHandler) {
			sh.Logger.Warn().
				Int("op", int(msg.Op)).
				Str("type", msg.Type).
				Msg("Gateway sent unknown packet")
		}
	}
}

// OnDispatch routes a dispatch event through its handler and produces
// the result. Events without a handler are produced as-is.
func (sh *Shard) OnDispatch(ctx context.Context, msg discord.GatewayPayload) error {
	sh.Application.eventBlacklistMu.RLock()
	contains := includes(sh.Application.eventBlacklist, msg.Type)
	sh.Application.eventBlacklistMu.RUnlock()

	if contains {
		return nil
	}

	driftcordDispatchEventCount.WithLabelValues(sh.Application.Identifier.Load(), msg.Type).Inc()

	data := msg.Data

	if handler, ok := dispatchHandlers[msg.Type]; ok {
		var continuable bool

		var err error

		data, continuable, err = handler(ctx, sh, msg)
		if err != nil {
			return err
		}

		if !continuable {
			return nil
		}
	}

	sh.Application.produceBlacklistMu.RLock()
	contains = includes(sh.Application.produceBlacklist, msg.Type)
	sh.Application.produceBlacklistMu.RUnlock()

	if contains {
		return nil
	}

	return sh.Application.PublishEvent(ctx, &broker.EventEnvelope{
		Type:     msg.Type,
		Data:     data,
		Sequence: msg.Sequence,
		Op:       msg.Op,
		Metadata: broker.Metadata{
			Shard: [2]int32{sh.ShardID, sh.ShardCount},
		},
	})
}

// GatewayDispatch handles selecting the proper gateway handler and
// executing it.
func GatewayDispatch(ctx context.Context, sh *Shard, event discord.GatewayPayload) error {
	if f, ok := gatewayHandlers[event.Op]; ok {
		return f(ctx, sh, event)
	}

	return ErrNoGatewayHandler
}
