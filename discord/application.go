package discord

import jsoniter "github.com/json-iterator/go"

// application.go represents the application object and integrations.

// ApplicationTeamMemberState represents the state of a member in a team.
type ApplicationTeamMemberState uint8

const (
	ApplicationTeamMemberStateInvited ApplicationTeamMemberState = 1 + iota
	ApplicationTeamMemberStateAccepted
)

// ApplicationCommandType represents the different types of application command.
type ApplicationCommandType uint8

const (
	ApplicationCommandTypeChatInput ApplicationCommandType = 1 + iota
	ApplicationCommandTypeUser
	ApplicationCommandTypeMessage
)

// ApplicationCommandOptionType represents the different types of options.
type ApplicationCommandOptionType uint8

const (
	ApplicationCommandOptionTypeSubCommand ApplicationCommandOptionType = 1 + iota
	ApplicationCommandOptionTypeSubCommandGroup
	ApplicationCommandOptionTypeString
	ApplicationCommandOptionTypeInteger
	ApplicationCommandOptionTypeBoolean
	ApplicationCommandOptionTypeUser
	ApplicationCommandOptionTypeChannel
	ApplicationCommandOptionTypeRole
	ApplicationCommandOptionTypeMentionable
	ApplicationCommandOptionTypeNumber
	ApplicationCommandOptionTypeAttachment
)

// ApplicationCommandPermissionType represents the target for a command permission.
type ApplicationCommandPermissionType uint8

const (
	ApplicationCommandPermissionTypeRole ApplicationCommandPermissionType = 1 + iota
	ApplicationCommandPermissionTypeUser
	ApplicationCommandPermissionTypeChannel
)

// IntegrationType represents the type of integration.
type IntegrationType string

const (
	IntegrationTypeTwitch  IntegrationType = "twitch"
	IntegrationTypeYoutube IntegrationType = "youtube"
	IntegrationTypeDiscord IntegrationType = "discord"
)

// IntegrationExpireBehavior represents the integration expiration.
type IntegrationExpireBehavior uint8

const (
	IntegrationExpireBehaviorRemoveRole IntegrationExpireBehavior = iota
	IntegrationExpireBehaviorKick
)

// Application response from REST.
type Application struct {
	Owner               *User            `json:"owner,omitempty"`
	Team                *ApplicationTeam `json:"team,omitempty"`
	GuildID             *Snowflake       `json:"guild_id,omitempty"`
	PrimarySKUID        *Snowflake       `json:"primary_sku_id,omitempty"`
	Name                string           `json:"name"`
	Icon                string           `json:"icon,omitempty"`
	Description         string           `json:"description"`
	TermsOfServiceURL   string           `json:"terms_of_service,omitempty"`
	PrivacyPolicyURL    string           `json:"privacy_policy_url,omitempty"`
	VerifyKey           string           `json:"verify_key"`
	Slug                string           `json:"slug,omitempty"`
	CoverImage          string           `json:"cover_image,omitempty"`
	RPCOrigins          []string         `json:"rpc_origins,omitempty"`
	ID                  Snowflake        `json:"id"`
	Flags               int32            `json:"flags,omitempty"`
	BotPublic           bool             `json:"bot_public"`
	BotRequireCodeGrant bool             `json:"bot_require_code_grant"`
}

// ApplicationTeam represents the team of an application.
type ApplicationTeam struct {
	Icon        string                  `json:"icon,omitempty"`
	Name        string                  `json:"name"`
	Members     []ApplicationTeamMember `json:"members"`
	ID          Snowflake               `json:"id"`
	OwnerUserID Snowflake               `json:"owner_user_id"`
}

// ApplicationTeamMember represents a member of a team.
type ApplicationTeamMember struct {
	Permissions     []string                   `json:"permissions"`
	User            User                       `json:"user"`
	TeamID          Snowflake                  `json:"team_id"`
	MembershipState ApplicationTeamMemberState `json:"membership_state"`
}

// ApplicationCommand represents an application's command.
type ApplicationCommand struct {
	ID                *Snowflake                 `json:"id,omitempty"`
	Type              *ApplicationCommandType    `json:"type,omitempty"`
	ApplicationID     *Snowflake                 `json:"application_id,omitempty"`
	GuildID           *Snowflake                 `json:"guild_id,omitempty"`
	DefaultPermission *bool                      `json:"default_permission,omitempty"`
	Name              string                     `json:"name"`
	Description       string                     `json:"description,omitempty"`
	Options           []ApplicationCommandOption `json:"options,omitempty"`
	Version           Int64                      `json:"version,omitempty"`
}

// GuildApplicationCommandPermissions represent a guild's application permissions.
type GuildApplicationCommandPermissions struct {
	Permissions   []ApplicationCommandPermissions `json:"permissions"`
	ID            Snowflake                       `json:"id"`
	ApplicationID Snowflake                       `json:"application_id"`
	GuildID       Snowflake                       `json:"guild_id"`
}

// ApplicationCommandPermissions represents the rules for enabling or disabling a command.
type ApplicationCommandPermissions struct {
	ID      Snowflake                        `json:"id"`
	Type    ApplicationCommandPermissionType `json:"type"`
	Allowed bool                             `json:"permission"`
}

// ApplicationCommandOption represents the options for an application command.
type ApplicationCommandOption struct {
	MinValue     *int32                           `json:"min_value,omitempty"`
	MaxValue     *int32                           `json:"max_value,omitempty"`
	Autocomplete *bool                            `json:"autocomplete,omitempty"`
	Name         string                           `json:"name"`
	Description  string                           `json:"description,omitempty"`
	ChannelTypes []ChannelType                    `json:"channel_types,omitempty"`
	Options      []ApplicationCommandOption       `json:"options,omitempty"`
	Choices      []ApplicationCommandOptionChoice `json:"choices,omitempty"`
	Required     bool                             `json:"required,omitempty"`
	Type         ApplicationCommandOptionType     `json:"type"`
}

// ApplicationCommandOptionChoice represents the different choices.
type ApplicationCommandOptionChoice struct {
	Name  string              `json:"name"`
	Value jsoniter.RawMessage `json:"value"`
}

// ApplicationSelectOption represents the structure of select options.
type ApplicationSelectOption struct {
	Emoji       *Emoji `json:"emoji,omitempty"`
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Default     bool   `json:"default,omitempty"`
}

// Integration represents the structure of an integration.
type Integration struct {
	SyncedAt          Timestamp                  `json:"synced_at,omitempty"`
	ExpireBehavior    *IntegrationExpireBehavior `json:"expire_behavior,omitempty"`
	User              *User                      `json:"user,omitempty"`
	Application       *Application               `json:"application,omitempty"`
	GuildID           *Snowflake                 `json:"guild_id,omitempty"`
	RoleID            *Snowflake                 `json:"role_id,omitempty"`
	Account           IntegrationAccount         `json:"account"`
	Type              IntegrationType            `json:"type"`
	Name              string                     `json:"name"`
	ID                Snowflake                  `json:"id"`
	ExpireGracePeriod int32                      `json:"expire_grace_period,omitempty"`
	SubscriberCount   int32                      `json:"subscriber_count,omitempty"`
	EnableEmoticons   bool                       `json:"enable_emoticons"`
	Syncing           bool                       `json:"syncing"`
	Revoked           bool                       `json:"revoked"`
	Enabled           bool                       `json:"enabled"`
}

// IntegrationAccount represents the account of the integration.
type IntegrationAccount struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
