package broker

import (
	"context"
	"errors"
	"strings"

	"github.com/driftcord/driftcord/discord"
	jsoniter "github.com/json-iterator/go"
)

// ErrUnknownProducer is returned when an unrecognised producer type is requested.
var ErrUnknownProducer = errors.New("no producer with this name exists")

// Producers lists the producer types that can be passed to NewProducer.
var Producers = []string{"jetstream", "kafka", "redis", "stan"}

// Producer publishes gateway dispatch events to an external message broker.
type Producer interface {
	String() string
	Channel() string

	Connect(ctx context.Context, clientName string, args map[string]interface{}) error
	Publish(ctx context.Context, channelName string, data []byte) error

	IsClosed() bool
	Close()
}

// NewProducer creates a producer client for the passed type.
func NewProducer(producerType string) (Producer, error) {
	switch producerType {
	case "jetstream":
		return &JetStreamProducer{}, nil
	case "kafka":
		return &KafkaProducer{}, nil
	case "redis":
		return &RedisProducer{}, nil
	case "stan":
		return &StanProducer{}, nil
	default:
		return nil, ErrUnknownProducer
	}
}

// EventEnvelope is the payload consumers receive for every dispatch event.
type EventEnvelope struct {
	Type     string              `json:"t"`
	Data     jsoniter.RawMessage `json:"d"`
	Sequence int32               `json:"s"`
	Op       discord.GatewayOp   `json:"op"`

	Metadata Metadata `json:"__driftcord"`
}

// Metadata identifies which application and shard produced an envelope.
type Metadata struct {
	Version       string            `json:"v"`
	Identifier    string            `json:"identifier"`
	ApplicationID discord.Snowflake `json:"application_id,omitempty"`

	// Shard is the [shard_id, shard_count] pair of the producing shard.
	Shard [2]int32 `json:"shard"`
}

// GetEntry returns the value of a key in the map, case insensitively.
func GetEntry(m map[string]interface{}, key string) interface{} {
	key = strings.ToLower(key)
	for i, k := range m {
		if strings.ToLower(i) == key {
			return k
		}
	}

	return nil
}
