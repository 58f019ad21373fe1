package discord_test

import (
	"testing"
	"time"

	"github.com/driftcord/driftcord/discord"
	"github.com/stretchr/testify/assert"
)

func TestSnowflakeUnmarshal(t *testing.T) {
	t.Parallel()

	var payload struct {
		ID discord.Snowflake `json:"id"`
	}

	err := discord.Unmarshal([]byte(`{"id":"175928847299117063"}`), &payload)
	assert.NoError(t, err)
	assert.Equal(t, discord.Snowflake(175928847299117063), payload.ID)

	err = discord.Unmarshal([]byte(`{"id":175928847299117063}`), &payload)
	assert.NoError(t, err)
	assert.Equal(t, discord.Snowflake(175928847299117063), payload.ID)

	err = discord.Unmarshal([]byte(`{"id":null}`), &payload)
	assert.NoError(t, err)
	assert.Equal(t, discord.Snowflake(0), payload.ID)

	err = discord.Unmarshal([]byte(`{"id":"not-a-snowflake"}`), &payload)
	assert.Error(t, err)
}

func TestSnowflakeMarshal(t *testing.T) {
	t.Parallel()

	payload := struct {
		ID discord.Snowflake `json:"id"`
	}{ID: 175928847299117063}

	body, err := discord.Marshal(payload)
	assert.NoError(t, err)
	assert.Equal(t, `{"id":"175928847299117063"}`, string(body))
}

func TestSnowflakeTime(t *testing.T) {
	t.Parallel()

	// The discord epoch itself.
	assert.Equal(t, int64(1420070400000), discord.Snowflake(0).Time().UnixMilli())

	created := discord.Snowflake(175928847299117063).Time()
	assert.Equal(t, 2016, created.UTC().Year())
}

func TestInt64JSON(t *testing.T) {
	t.Parallel()

	var payload struct {
		Permissions discord.Int64 `json:"permissions"`
	}

	err := discord.Unmarshal([]byte(`{"permissions":"2147483648"}`), &payload)
	assert.NoError(t, err)
	assert.Equal(t, discord.Int64(2147483648), payload.Permissions)

	err = discord.Unmarshal([]byte(`{"permissions":null}`), &payload)
	assert.NoError(t, err)
	assert.Equal(t, discord.Int64(0), payload.Permissions)

	body, err := discord.Marshal(struct {
		Permissions discord.Int64 `json:"permissions"`
	}{Permissions: 8})
	assert.NoError(t, err)
	assert.Equal(t, `{"permissions":"8"}`, string(body))
}

func TestTimestamp(t *testing.T) {
	t.Parallel()

	now := time.Date(2022, time.March, 4, 5, 6, 7, 0, time.UTC)

	timestamp := discord.NewTimestamp(now)
	assert.Equal(t, now, timestamp.Parse())

	body, err := discord.Marshal(timestamp)
	assert.NoError(t, err)
	assert.Equal(t, `"2022-03-04T05:06:07Z"`, string(body))

	_, err = discord.Marshal(discord.Timestamp("tomorrow"))
	assert.Error(t, err)

	assert.True(t, discord.Timestamp("").Parse().IsZero())
}
