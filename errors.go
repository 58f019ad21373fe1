package driftcord

import "errors"

// ErrSessionLimitExhausted is returned when the sessions remaining
// is less than the number of shards starting.
var ErrSessionLimitExhausted = errors.New("the session limit has been reached")

// ErrInvalidToken is returned when an invalid token is used.
var ErrInvalidToken = errors.New("token passed is not valid")

var (
	ErrInvalidShard  = errors.New("invalid shard id specified")
	ErrMissingShards = errors.New("application has no shards")
)

var (
	ErrNoGatewayHandler = errors.New("no registered handler for gateway event")
	ErrProducerMissing  = errors.New("no producer client found")
)
