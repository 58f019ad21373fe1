package discord

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

const (
	// DiscordEpoch is the discord epoch in milliseconds.
	DiscordEpoch = 1420070400000
)

var null = []byte("null")

// Snowflake represents a discord's 64 bit unique ID.
type Snowflake int64

func (s *Snowflake) IsNil() bool {
	return *s == 0
}

func toSnowflake(b []byte, s *Snowflake) error {
	if bytes.Equal(b, null) {
		*s = 0

		return nil
	}

	if b[0] == '"' && len(b) >= 2 {
		b = b[1 : len(b)-1]
	}

	i, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("failed to unmarshal snowflake: %v", err)
	}

	*s = Snowflake(i)

	return nil
}

func (s *Snowflake) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, s)
}

func (s Snowflake) MarshalJSON() ([]byte, error) {
	return int64ToStringBytes(int64(s)), nil
}

func (s Snowflake) String() string {
	return strconv.FormatInt(int64(s), 10)
}

// Time returns the creation time of the Snowflake.
func (s Snowflake) Time() time.Time {
	msec := (int64(s) >> 22) + DiscordEpoch

	return time.Unix(0, msec*int64(time.Millisecond))
}

// Int64 is an int64 that discord transports as a string.
type Int64 int64

func (in *Int64) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, null) {
		*in = 0

		return nil
	}

	if b[0] == '"' && len(b) >= 2 {
		b = b[1 : len(b)-1]
	}

	i, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("failed to unmarshal int64: %v", err)
	}

	*in = Int64(i)

	return nil
}

func (in Int64) MarshalJSON() ([]byte, error) {
	return int64ToStringBytes(int64(in)), nil
}

func (in Int64) String() string {
	return strconv.FormatInt(int64(in), 10)
}

func int64ToStringBytes(s int64) []byte {
	buf := make([]byte, 0, 22)

	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, s, 10)
	buf = append(buf, '"')

	return buf
}

// Timestamp is an ISO8601 timestamp as transported by discord.
type Timestamp string

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.Format(time.RFC3339))
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t == "" {
		return []byte("null"), nil
	}

	if _, err := time.Parse(time.RFC3339, string(t)); err != nil {
		return nil, fmt.Errorf("timestamp is corrupted (is %v): %w", string(t), err)
	}

	return Marshal(string(t))
}

// Parse returns the time a Timestamp represents. Zero time is
// returned for empty or malformed timestamps.
func (t Timestamp) Parse() time.Time {
	parsed, err := time.Parse(time.RFC3339, string(t))
	if err != nil {
		return time.Time{}
	}

	return parsed
}
