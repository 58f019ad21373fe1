package discord

// channel.go contains the information relating to channels.

// ChannelType represents a channel's type.
type ChannelType uint16

const (
	ChannelTypeGuildText ChannelType = iota
	ChannelTypeDM
	ChannelTypeGuildVoice
	ChannelTypeGroupDM
	ChannelTypeGuildCategory
	ChannelTypeGuildNews
	ChannelTypeGuildStore
	_
	_
	_
	ChannelTypeGuildNewsThread
	ChannelTypeGuildPublicThread
	ChannelTypeGuildPrivateThread
	ChannelTypeGuildStageVoice
	ChannelTypeGuildDirectory
	ChannelTypeGuildForum
)

// VideoQualityMode represents the quality of the video.
type VideoQualityMode uint16

const (
	VideoQualityModeAuto VideoQualityMode = 1 + iota
	VideoQualityModeFull
)

// StageChannelPrivacyLevel represents the privacy level of a stage channel.
type StageChannelPrivacyLevel uint16

const (
	StageChannelPrivacyLevelPublic StageChannelPrivacyLevel = 1 + iota
	StageChannelPrivacyLevelGuildOnly
)

// Channel represents a discord channel.
type Channel struct {
	OwnerID                    *Snowflake               `json:"owner_id,omitempty"`
	GuildID                    *Snowflake               `json:"guild_id,omitempty"`
	ParentID                   *Snowflake               `json:"parent_id,omitempty"`
	ApplicationID              *Snowflake               `json:"application_id,omitempty"`
	ThreadMember               *ThreadMember            `json:"member,omitempty"`
	ThreadMetadata             *ThreadMetadata          `json:"thread_metadata,omitempty"`
	LastPinTimestamp           *Timestamp               `json:"last_pin_timestamp"`
	LastMessageID              *string                  `json:"last_message_id"`
	RTCRegion                  string                   `json:"rtc_region"`
	Topic                      string                   `json:"topic"`
	Icon                       string                   `json:"icon"`
	Name                       string                   `json:"name"`
	PermissionOverwrites       []ChannelOverwrite       `json:"permission_overwrites"`
	Recipients                 []User                   `json:"recipients"`
	Permissions                Int64                    `json:"permissions"`
	ID                         Snowflake                `json:"id"`
	UserLimit                  int32                    `json:"user_limit"`
	Bitrate                    int32                    `json:"bitrate"`
	MessageCount               int32                    `json:"message_count"`
	MemberCount                int32                    `json:"member_count"`
	RateLimitPerUser           int32                    `json:"rate_limit_per_user"`
	Position                   int32                    `json:"position"`
	DefaultAutoArchiveDuration int32                    `json:"default_auto_archive_duration"`
	VideoQualityMode           VideoQualityMode         `json:"video_quality_mode"`
	Type                       ChannelType              `json:"type"`
	NSFW                       bool                     `json:"nsfw"`
}

// ChannelOverwrite represents a permission overwrite for a channel.
type ChannelOverwrite struct {
	Type  ChannelOverrideType `json:"type"`
	ID    Snowflake           `json:"id"`
	Allow Int64               `json:"allow"`
	Deny  Int64               `json:"deny"`
}

// ChannelOverrideType represents the target of a channel override.
type ChannelOverrideType uint16

const (
	ChannelOverrideTypeRole ChannelOverrideType = iota
	ChannelOverrideTypeMember
)

// ThreadMetadata contains thread-specific channel fields.
type ThreadMetadata struct {
	ArchiveTimestamp    Timestamp `json:"archive_timestamp"`
	AutoArchiveDuration int32     `json:"auto_archive_duration"`
	Archived            bool      `json:"archived"`
	Locked              bool      `json:"locked"`
	Invitable           bool      `json:"invitable"`
}

// ThreadMember is used to indicate whether a user has joined a thread or not.
type ThreadMember struct {
	ID            *Snowflake `json:"id,omitempty"`
	UserID        *Snowflake `json:"user_id,omitempty"`
	GuildID       *Snowflake `json:"guild_id,omitempty"`
	JoinTimestamp Timestamp  `json:"join_timestamp"`
	Flags         int32      `json:"flags"`
}

// StageInstance represents a stage channel instance.
type StageInstance struct {
	Topic                string                   `json:"topic"`
	ID                   Snowflake                `json:"id"`
	GuildID              Snowflake                `json:"guild_id"`
	ChannelID            Snowflake                `json:"channel_id"`
	PrivacyLevel         StageChannelPrivacyLevel `json:"privacy_level"`
	DiscoverableDisabled bool                     `json:"discoverable_disabled"`
}

// StageInstanceParams represents the arguments to create or modify a stage instance.
type StageInstanceParams struct {
	ChannelID    *Snowflake                `json:"channel_id,omitempty"`
	Topic        string                    `json:"topic,omitempty"`
	PrivacyLevel *StageChannelPrivacyLevel `json:"privacy_level,omitempty"`
}

// FollowedChannel represents a followed channel.
type FollowedChannel struct {
	ChannelID Snowflake `json:"channel_id"`
	WebhookID Snowflake `json:"webhook_id"`
}

// ChannelParams represents the arguments to create or modify a channel.
type ChannelParams struct {
	Name                 string             `json:"name,omitempty"`
	Type                 *ChannelType       `json:"type,omitempty"`
	Topic                *string            `json:"topic,omitempty"`
	Bitrate              *int32             `json:"bitrate,omitempty"`
	UserLimit            *int32             `json:"user_limit,omitempty"`
	RateLimitPerUser     *int32             `json:"rate_limit_per_user,omitempty"`
	Position             *int32             `json:"position,omitempty"`
	PermissionOverwrites []ChannelOverwrite `json:"permission_overwrites,omitempty"`
	ParentID             *Snowflake         `json:"parent_id,omitempty"`
	NSFW                 *bool              `json:"nsfw,omitempty"`
}

// ChannelPositionParams represents the arguments to modify guild channel positions.
type ChannelPositionParams struct {
	ID              Snowflake  `json:"id"`
	Position        *int32     `json:"position"`
	LockPermissions *bool      `json:"lock_permissions,omitempty"`
	ParentID        *Snowflake `json:"parent_id,omitempty"`
}

// ChannelPermissionParams represents the arguments to edit a channel permission overwrite.
type ChannelPermissionParams struct {
	Allow Int64               `json:"allow"`
	Deny  Int64               `json:"deny"`
	Type  ChannelOverrideType `json:"type"`
}

// ThreadParams represents the arguments to start a thread.
type ThreadParams struct {
	Name                string       `json:"name"`
	AutoArchiveDuration *int32       `json:"auto_archive_duration,omitempty"`
	Type                *ChannelType `json:"type,omitempty"`
	Invitable           *bool        `json:"invitable,omitempty"`
	RateLimitPerUser    *int32       `json:"rate_limit_per_user,omitempty"`
}

// ThreadList is returned when listing archived threads.
type ThreadList struct {
	Threads []Channel      `json:"threads"`
	Members []ThreadMember `json:"members"`
	HasMore bool           `json:"has_more"`
}
