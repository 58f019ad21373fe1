package broker_test

import (
	"testing"

	"github.com/driftcord/driftcord/broker"
	"github.com/driftcord/driftcord/discord"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
)

func TestNewProducer(t *testing.T) {
	t.Parallel()

	for _, producerType := range broker.Producers {
		producer, err := broker.NewProducer(producerType)
		assert.NoError(t, err)
		assert.NotNil(t, producer)
		assert.Equal(t, producerType, producer.String())
	}
}

func TestNewProducerUnknown(t *testing.T) {
	t.Parallel()

	producer, err := broker.NewProducer("carrier_pigeon")
	assert.ErrorIs(t, err, broker.ErrUnknownProducer)
	assert.Nil(t, producer)
}

func TestEventEnvelopeMarshal(t *testing.T) {
	t.Parallel()

	envelope := broker.EventEnvelope{
		Type:     "MESSAGE_CREATE",
		Data:     jsoniter.RawMessage(`{"id":"1"}`),
		Sequence: 12,
		Op:       discord.GatewayOpDispatch,
		Metadata: broker.Metadata{
			Version:       "0.1.0",
			Identifier:    "welcomer",
			ApplicationID: 330416853971107840,
			Shard:         [2]int32{2, 16},
		},
	}

	payload, err := jsoniter.Marshal(envelope)
	assert.NoError(t, err)

	var decoded map[string]jsoniter.RawMessage

	err = jsoniter.Unmarshal(payload, &decoded)
	assert.NoError(t, err)

	assert.Contains(t, decoded, "t")
	assert.Contains(t, decoded, "d")
	assert.Contains(t, decoded, "s")
	assert.Contains(t, decoded, "op")
	assert.Contains(t, decoded, "__driftcord")

	var roundTrip broker.EventEnvelope

	err = jsoniter.Unmarshal(payload, &roundTrip)
	assert.NoError(t, err)
	assert.Equal(t, envelope, roundTrip)
}

func TestGetEntry(t *testing.T) {
	t.Parallel()

	args := map[string]interface{}{
		"Address": "localhost:4222",
		"ASYNC":   true,
	}

	assert.Equal(t, "localhost:4222", broker.GetEntry(args, "address"))
	assert.Equal(t, "localhost:4222", broker.GetEntry(args, "Address"))
	assert.Equal(t, true, broker.GetEntry(args, "Async"))
	assert.Nil(t, broker.GetEntry(args, "missing"))
}
