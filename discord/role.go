package discord

// role.go represents all structures for a discord guild role.

// Role represents a role on discord.
type Role struct {
	GuildID      *Snowflake `json:"guild_id,omitempty"`
	Tags         *RoleTag   `json:"tags,omitempty"`
	Name         string     `json:"name"`
	Icon         string     `json:"icon,omitempty"`
	UnicodeEmoji string     `json:"unicode_emoji,omitempty"`
	ID           Snowflake  `json:"id"`
	Permissions  Int64      `json:"permissions"`
	Color        int32      `json:"color"`
	Position     int32      `json:"position"`
	Hoist        bool       `json:"hoist"`
	Managed      bool       `json:"managed"`
	Mentionable  bool       `json:"mentionable"`
}

// RoleTag represents extra information about a role.
type RoleTag struct {
	BotID             *Snowflake `json:"bot_id"`
	IntegrationID     *Snowflake `json:"integration_id"`
	PremiumSubscriber *bool      `json:"premium_subscriber"`
}

// RoleParams represents the arguments to create or modify a role.
type RoleParams struct {
	Name         *string `json:"name,omitempty"`
	Permissions  *Int64  `json:"permissions,omitempty"`
	Color        *int32  `json:"color,omitempty"`
	Hoist        *bool   `json:"hoist,omitempty"`
	Icon         *string `json:"icon,omitempty"`
	UnicodeEmoji *string `json:"unicode_emoji,omitempty"`
	Mentionable  *bool   `json:"mentionable,omitempty"`
}

// RolePositionParams represents the arguments to modify role positions.
type RolePositionParams struct {
	ID       Snowflake `json:"id"`
	Position *int32    `json:"position,omitempty"`
}
