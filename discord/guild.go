package discord

// guild.go contains the structures to represent a guild.

const (
	maxNicknameLength = 32

	minPruneDays = 1
	maxPruneDays = 30
)

// MessageNotificationLevel represents a guild's message notification level.
type MessageNotificationLevel int

// Message notification levels.
const (
	MessageNotificationsAllMessages MessageNotificationLevel = iota
	MessageNotificationsOnlyMentions
)

// ExplicitContentFilterLevel represents a guild's explicit content filter level.
type ExplicitContentFilterLevel int

// Explicit content filter levels.
const (
	ExplicitContentFilterDisabled ExplicitContentFilterLevel = iota
	ExplicitContentFilterMembersWithoutRoles
	ExplicitContentFilterAllMembers
)

// MFALevel represents a guild's MFA level.
type MFALevel uint16

// MFA levels.
const (
	MFALevelNone MFALevel = iota
	MFALevelElevated
)

// VerificationLevel represents a guild's verification level.
type VerificationLevel uint16

const (
	VerificationLevelNone VerificationLevel = iota
	VerificationLevelLow
	VerificationLevelMedium
	VerificationLevelHigh
	VerificationLevelVeryHigh
)

// SystemChannelFlags represents the flags of a system channel.
type SystemChannelFlags uint16

const (
	SystemChannelFlagsSuppressJoin SystemChannelFlags = 1 << iota
	SystemChannelFlagsPremiumSubscriptions
	SystemChannelFlagsSuppressSetupTips
	SystemChannelFlagsHideMemberJoinStickerReplyButtons
	SystemChannelFlagsSuppressSubscriptionNotifications
	SystemChannelFlagsHideRoleSubscriptionReplyButtons
)

// PremiumTier represents the current boosting tier of a guild.
type PremiumTier uint16

const (
	PremiumTierNone PremiumTier = iota
	PremiumTier1
	PremiumTier2
	PremiumTier3
)

// GuildNSFWLevelType represents the level of the guild.
type GuildNSFWLevelType uint16

const (
	GuildNSFWLevelTypeDefault GuildNSFWLevelType = iota
	GuildNSFWLevelTypeExplicit
	GuildNSFWLevelTypeSafe
	GuildNSFWLevelTypeAgeRestricted
)

// Guild represents a guild on discord.
type Guild struct {
	WidgetChannelID             *Snowflake                 `json:"widget_channel_id,omitempty"`
	PublicUpdatesChannelID      *Snowflake                 `json:"public_updates_channel_id,omitempty"`
	RulesChannelID              *Snowflake                 `json:"rules_channel_id,omitempty"`
	SystemChannelID             *Snowflake                 `json:"system_channel_id,omitempty"`
	AFKChannelID                *Snowflake                 `json:"afk_channel_id,omitempty"`
	ApplicationID               *Snowflake                 `json:"application_id,omitempty"`
	SystemChannelFlags          *SystemChannelFlags        `json:"system_channel_flags,omitempty"`
	Permissions                 *Int64                     `json:"permissions,omitempty"`
	Icon                        *string                    `json:"icon"`
	WidgetEnabled               *bool                      `json:"widget_enabled,omitempty"`
	JoinedAt                    Timestamp                  `json:"joined_at"`
	Description                 string                     `json:"description"`
	PreferredLocale             string                     `json:"preferred_locale"`
	Name                        string                     `json:"name"`
	IconHash                    string                     `json:"icon_hash,omitempty"`
	Banner                      string                     `json:"banner,omitempty"`
	VanityURLCode               string                     `json:"vanity_url_code"`
	Splash                      string                     `json:"splash,omitempty"`
	DiscoverySplash             string                     `json:"discovery_splash,omitempty"`
	Region                      string                     `json:"region"`
	Features                    []string                   `json:"features"`
	Roles                       []Role                     `json:"roles"`
	Emojis                      []Emoji                    `json:"emojis"`
	Stickers                    []Sticker                  `json:"stickers"`
	StageInstances              []StageInstance            `json:"stage_instances"`
	GuildScheduledEvents        []ScheduledEvent           `json:"guild_scheduled_events"`
	Presences                   []PresenceUpdate           `json:"presences"`
	VoiceStates                 []VoiceState               `json:"voice_states"`
	Members                     []GuildMember              `json:"members"`
	Channels                    []Channel                  `json:"channels"`
	Threads                     []Channel                  `json:"threads"`
	OwnerID                     Snowflake                  `json:"owner_id"`
	ID                          Snowflake                  `json:"id"`
	ExplicitContentFilter       ExplicitContentFilterLevel `json:"explicit_content_filter"`
	DefaultMessageNotifications MessageNotificationLevel   `json:"default_message_notifications"`
	ApproximateMemberCount      int32                      `json:"approximate_member_count"`
	ApproximatePresenceCount    int32                      `json:"approximate_presence_count"`
	MaxMembers                  int32                      `json:"max_members"`
	MemberCount                 int32                      `json:"member_count"`
	AFKTimeout                  int32                      `json:"afk_timeout"`
	MaxPresences                int32                      `json:"max_presences"`
	PremiumSubscriptionCount    int32                      `json:"premium_subscription_count"`
	MaxVideoChannelUsers        int32                      `json:"max_video_channel_users"`
	NSFWLevel                   GuildNSFWLevelType         `json:"nsfw_level"`
	VerificationLevel           VerificationLevel          `json:"verification_level"`
	MFALevel                    MFALevel                   `json:"mfa_level"`
	PremiumTier                 PremiumTier                `json:"premium_tier"`
	Unavailable                 bool                       `json:"unavailable"`
	Large                       bool                       `json:"large"`
	Owner                       bool                       `json:"owner"`
	PremiumProgressBarEnabled   bool                       `json:"premium_progress_bar_enabled"`
}

// UnavailableGuild represents an unavailable guild.
type UnavailableGuild struct {
	ID          Snowflake `json:"id"`
	Unavailable bool      `json:"unavailable"`
}

// GuildMember represents a guild member on discord.
type GuildMember struct {
	User                       *User       `json:"user,omitempty"`
	GuildID                    *Snowflake  `json:"guild_id,omitempty"`
	CommunicationDisabledUntil *Timestamp  `json:"communication_disabled_until,omitempty"`
	Nick                       string      `json:"nick,omitempty"`
	Avatar                     string      `json:"avatar,omitempty"`
	PremiumSince               string      `json:"premium_since,omitempty"`
	JoinedAt                   Timestamp   `json:"joined_at,omitempty"`
	Roles                      []Snowflake `json:"roles"`
	Permissions                Int64       `json:"permissions"`
	Flags                      int32       `json:"flags"`
	Deaf                       bool        `json:"deaf"`
	Mute                       bool        `json:"mute"`
	Pending                    bool        `json:"pending"`
}

// VoiceState represents the voice state on discord.
type VoiceState struct {
	RequestToSpeakTimestamp *Timestamp   `json:"request_to_speak_timestamp"`
	GuildID                 *Snowflake   `json:"guild_id,omitempty"`
	Member                  *GuildMember `json:"member,omitempty"`
	SessionID               string       `json:"session_id"`
	UserID                  Snowflake    `json:"user_id"`
	ChannelID               Snowflake    `json:"channel_id"`
	Mute                    bool         `json:"mute"`
	SelfDeaf                bool         `json:"self_deaf"`
	SelfMute                bool         `json:"self_mute"`
	SelfStream              bool         `json:"self_stream"`
	SelfVideo               bool         `json:"self_video"`
	Suppress                bool         `json:"suppress"`
	Deaf                    bool         `json:"deaf"`
}

// VoiceRegion represents a voice region on discord.
type VoiceRegion struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Optimal    bool   `json:"optimal"`
	Deprecated bool   `json:"deprecated"`
	Custom     bool   `json:"custom"`
}

// GuildBan represents a ban entry.
type GuildBan struct {
	GuildID *Snowflake `json:"guild_id,omitempty"`
	Reason  string     `json:"reason"`
	User    User       `json:"user"`
}

// GuildParams represents the arguments to create or modify a guild.
type GuildParams struct {
	Name                        string                      `json:"name,omitempty"`
	Region                      *string                     `json:"region,omitempty"`
	Icon                        *string                     `json:"icon,omitempty"`
	VerificationLevel           *VerificationLevel          `json:"verification_level,omitempty"`
	DefaultMessageNotifications *MessageNotificationLevel   `json:"default_message_notifications,omitempty"`
	ExplicitContentFilter       *ExplicitContentFilterLevel `json:"explicit_content_filter,omitempty"`
	AFKChannelID                *Snowflake                  `json:"afk_channel_id,omitempty"`
	AFKTimeout                  *int32                      `json:"afk_timeout,omitempty"`
	OwnerID                     *Snowflake                  `json:"owner_id,omitempty"`
	SystemChannelID             *Snowflake                  `json:"system_channel_id,omitempty"`
	SystemChannelFlags          *SystemChannelFlags         `json:"system_channel_flags,omitempty"`
	RulesChannelID              *Snowflake                  `json:"rules_channel_id,omitempty"`
	PublicUpdatesChannelID      *Snowflake                  `json:"public_updates_channel_id,omitempty"`
	PreferredLocale             *string                     `json:"preferred_locale,omitempty"`
	Description                 *string                     `json:"description,omitempty"`
}

// GuildMemberParams represents the arguments to modify a guild member.
type GuildMemberParams struct {
	Nick                       *string      `json:"nick,omitempty"`
	Roles                      *[]Snowflake `json:"roles,omitempty"`
	Deaf                       *bool        `json:"deaf,omitempty"`
	Mute                       *bool        `json:"mute,omitempty"`
	ChannelID                  *Snowflake   `json:"channel_id,omitempty"`
	CommunicationDisabledUntil *Timestamp   `json:"communication_disabled_until,omitempty"`
}

// GuildBanParams represents the arguments to create a guild ban.
type GuildBanParams struct {
	DeleteMessageDays    *int32 `json:"delete_message_days,omitempty"`
	DeleteMessageSeconds *int32 `json:"delete_message_seconds,omitempty"`
}

// GuildPruneParams represents the arguments for a guild prune.
type GuildPruneParams struct {
	Days              *int32      `json:"days,omitempty"`
	IncludeRoles      []Snowflake `json:"include_roles,omitempty"`
	ComputePruneCount bool        `json:"compute_prune_count"`
}

// GuildPruneCount is returned by prune operations.
type GuildPruneCount struct {
	Pruned *int32 `json:"pruned"`
}
