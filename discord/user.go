package discord

// user.go represents all structures for a discord user.

// UserFlags represents the flags on a user's account.
type UserFlags uint32

// User flags.
const (
	UserFlagsDiscordEmployee UserFlags = 1 << iota
	UserFlagsPartneredServerOwner
	UserFlagsHypeSquadEvents
	UserFlagsBugHunterLevel1
	_
	_
	UserFlagsHouseBravery
	UserFlagsHouseBrilliance
	UserFlagsHouseBalance
	UserFlagsEarlySupporter
	UserFlagsTeamUser
	_
	_
	_
	UserFlagsBugHunterLevel2
	_
	UserFlagsVerifiedBot
	UserFlagsVerifiedDeveloper
	UserFlagsCertifiedModerator
	UserFlagsBotHTTPInteractions
	_
	_
	UserFlagsActiveDeveloper
)

// UserPremiumType represents the type of Nitro on a user's account.
type UserPremiumType int

// User premium type.
const (
	UserPremiumTypeNone UserPremiumType = iota
	UserPremiumTypeNitroClassic
	UserPremiumTypeNitro
)

// User represents a user on discord.
type User struct {
	Avatar        *string         `json:"avatar"`
	Banner        string          `json:"banner,omitempty"`
	GlobalName    string          `json:"global_name"`
	Username      string          `json:"username"`
	Discriminator string          `json:"discriminator"`
	Locale        string          `json:"locale,omitempty"`
	Email         string          `json:"email,omitempty"`
	ID            Snowflake       `json:"id"`
	PremiumType   UserPremiumType `json:"premium_type"`
	Flags         UserFlags       `json:"flags"`
	PublicFlags   UserFlags       `json:"public_flags"`
	AccentColor   int32           `json:"accent_color"`
	MFAEnabled    bool            `json:"mfa_enabled"`
	Verified      bool            `json:"verified"`
	Bot           bool            `json:"bot"`
	System        bool            `json:"system"`
}

// Used to avoid a marshal loop.
type marshalUser User

func (u User) MarshalJSON() ([]byte, error) {
	// Users migrated off discriminators marshal as "0".
	if u.Discriminator == "" {
		u.Discriminator = "0"
	}

	return Marshal(marshalUser(u))
}

// ModifyCurrentUserParams represents the arguments to modify the
// current user.
type ModifyCurrentUserParams struct {
	Username *string `json:"username,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// CreateDMParams represents the arguments to create a DM channel.
type CreateDMParams struct {
	RecipientID Snowflake `json:"recipient_id"`
}
