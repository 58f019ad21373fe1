package discord

// emoji.go contains all structures for emojis.

// Emoji represents an Emoji on discord.
type Emoji struct {
	GuildID       *Snowflake  `json:"guild_id,omitempty"`
	User          *User       `json:"user,omitempty"`
	Name          string      `json:"name"`
	Roles         []Snowflake `json:"roles,omitempty"`
	ID            Snowflake   `json:"id"`
	RequireColons bool        `json:"require_colons"`
	Managed       bool        `json:"managed"`
	Animated      bool        `json:"animated"`
	Available     bool        `json:"available"`
}

// EmojiParams represents the arguments to create or modify an emoji.
type EmojiParams struct {
	Name  string      `json:"name"`
	Image string      `json:"image,omitempty"`
	Roles []Snowflake `json:"roles,omitempty"`
}
