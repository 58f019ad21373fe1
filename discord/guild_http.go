package discord

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// CreateGuild creates a guild owned by the current user. This can only
// be used by bots in fewer than 10 guilds.
func CreateGuild(ctx context.Context, s *Session, params GuildParams) (*Guild, error) {
	endpoint := EndpointGuilds

	var guild *Guild

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, nil, &guild)
	if err != nil {
		return nil, fmt.Errorf("failed to create guild: %w", err)
	}

	return guild, nil
}

// GetGuild returns a guild by its id.
func GetGuild(ctx context.Context, s *Session, guildID Snowflake) (*Guild, error) {
	endpoint := EndpointGuild(guildID.String())

	var guild *Guild

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &guild)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild: %w", err)
	}

	return guild, nil
}

// ModifyGuild modifies a guild.
func ModifyGuild(ctx context.Context, s *Session, guildID Snowflake, params GuildParams, reason *string) (*Guild, error) {
	endpoint := EndpointGuild(guildID.String())

	headers := WithReason(reason)

	var guild *Guild

	err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, headers, &guild)
	if err != nil {
		return nil, fmt.Errorf("failed to modify guild: %w", err)
	}

	return guild, nil
}

// DeleteGuild deletes a guild the current user owns.
func DeleteGuild(ctx context.Context, s *Session, guildID Snowflake) error {
	endpoint := EndpointGuild(guildID.String())

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete guild: %w", err)
	}

	return nil
}

// GetGuildChannels returns the channels of a guild.
func GetGuildChannels(ctx context.Context, s *Session, guildID Snowflake) ([]Channel, error) {
	endpoint := EndpointGuildChannels(guildID.String())

	var channels []Channel

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &channels)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild channels: %w", err)
	}

	return channels, nil
}

// CreateGuildChannel creates a channel in a guild.
func CreateGuildChannel(ctx context.Context, s *Session, guildID Snowflake, params ChannelParams, reason *string) (*Channel, error) {
	endpoint := EndpointGuildChannels(guildID.String())

	headers := WithReason(reason)

	var channel *Channel

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, headers, &channel)
	if err != nil {
		return nil, fmt.Errorf("failed to create guild channel: %w", err)
	}

	return channel, nil
}

// ModifyGuildChannelPositions modifies the positions of guild channels.
func ModifyGuildChannelPositions(ctx context.Context, s *Session, guildID Snowflake, params []ChannelPositionParams, reason *string) error {
	endpoint := EndpointGuildChannels(guildID.String())

	headers := WithReason(reason)

	err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to modify guild channel positions: %w", err)
	}

	return nil
}

// GetGuildMember returns a member of a guild.
func GetGuildMember(ctx context.Context, s *Session, guildID, userID Snowflake) (*GuildMember, error) {
	endpoint := EndpointGuildMember(guildID.String(), userID.String())

	var guildMember *GuildMember

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &guildMember)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild member: %w", err)
	}

	return guildMember, nil
}

// ListGuildMembers returns up to limit members of a guild, paginated
// with the highest user id of the previous page.
func ListGuildMembers(ctx context.Context, s *Session, guildID Snowflake, limit int32, after *Snowflake) ([]GuildMember, error) {
	endpoint := EndpointGuildMembers(guildID.String())

	values := url.Values{}

	if limit > 0 {
		values.Set("limit", strconv.FormatInt(int64(limit), 10))
	}

	if after != nil {
		values.Set("after", after.String())
	}

	if len(values) > 0 {
		endpoint += "?" + values.Encode()
	}

	var guildMembers []GuildMember

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &guildMembers)
	if err != nil {
		return nil, fmt.Errorf("failed to list guild members: %w", err)
	}

	return guildMembers, nil
}

// SearchGuildMembers returns members whose username or nickname starts
// with the provided query.
func SearchGuildMembers(ctx context.Context, s *Session, guildID Snowflake, query string, limit int32) ([]GuildMember, error) {
	endpoint := EndpointGuildMembersSearch(guildID.String())

	values := url.Values{}
	values.Set("query", query)

	if limit > 0 {
		values.Set("limit", strconv.FormatInt(int64(limit), 10))
	}

	endpoint += "?" + values.Encode()

	var guildMembers []GuildMember

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &guildMembers)
	if err != nil {
		return nil, fmt.Errorf("failed to search guild members: %w", err)
	}

	return guildMembers, nil
}

// ModifyGuildMember modifies a member of a guild.
func ModifyGuildMember(ctx context.Context, s *Session, guildID, userID Snowflake, params GuildMemberParams, reason *string) (*GuildMember, error) {
	if params.Nick != nil && len(*params.Nick) > maxNicknameLength {
		return nil, ErrNicknameTooLong
	}

	endpoint := EndpointGuildMember(guildID.String(), userID.String())

	headers := WithReason(reason)

	var guildMember *GuildMember

	err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, headers, &guildMember)
	if err != nil {
		return nil, fmt.Errorf("failed to modify guild member: %w", err)
	}

	return guildMember, nil
}

// ModifyCurrentMember modifies the nickname of the current user in a guild.
func ModifyCurrentMember(ctx context.Context, s *Session, guildID Snowflake, nick *string, reason *string) error {
	if nick != nil && len(*nick) > maxNicknameLength {
		return ErrNicknameTooLong
	}

	endpoint := EndpointGuildMemberSelf(guildID.String())

	headers := WithReason(reason)

	params := struct {
		Nick *string `json:"nick"`
	}{nick}

	err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to modify current member: %w", err)
	}

	return nil
}

// AddGuildMemberRole adds a role to a guild member.
func AddGuildMemberRole(ctx context.Context, s *Session, guildID, userID, roleID Snowflake, reason *string) error {
	endpoint := EndpointGuildMemberRole(guildID.String(), userID.String(), roleID.String())

	headers := WithReason(reason)

	err := s.Interface.FetchJJ(ctx, s, http.MethodPut, endpoint, nil, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to add guild member role: %w", err)
	}

	return nil
}

// RemoveGuildMemberRole removes a role from a guild member.
func RemoveGuildMemberRole(ctx context.Context, s *Session, guildID, userID, roleID Snowflake, reason *string) error {
	endpoint := EndpointGuildMemberRole(guildID.String(), userID.String(), roleID.String())

	headers := WithReason(reason)

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to remove guild member role: %w", err)
	}

	return nil
}

// RemoveGuildMember kicks a member from a guild.
func RemoveGuildMember(ctx context.Context, s *Session, guildID, userID Snowflake, reason *string) error {
	endpoint := EndpointGuildMember(guildID.String(), userID.String())

	headers := WithReason(reason)

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to remove guild member: %w", err)
	}

	return nil
}

// GetGuildBans returns the bans of a guild.
func GetGuildBans(ctx context.Context, s *Session, guildID Snowflake) ([]GuildBan, error) {
	endpoint := EndpointGuildBans(guildID.String())

	var bans []GuildBan

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &bans)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild bans: %w", err)
	}

	return bans, nil
}

// GetGuildBan returns the ban entry for a user, if any.
func GetGuildBan(ctx context.Context, s *Session, guildID, userID Snowflake) (*GuildBan, error) {
	endpoint := EndpointGuildBan(guildID.String(), userID.String())

	var ban *GuildBan

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &ban)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild ban: %w", err)
	}

	return ban, nil
}

// CreateGuildBan bans a user from a guild.
func CreateGuildBan(ctx context.Context, s *Session, guildID, userID Snowflake, params GuildBanParams, reason *string) error {
	endpoint := EndpointGuildBan(guildID.String(), userID.String())

	headers := WithReason(reason)

	err := s.Interface.FetchJJ(ctx, s, http.MethodPut, endpoint, params, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to create guild ban: %w", err)
	}

	return nil
}

// RemoveGuildBan removes a ban entry for a user.
func RemoveGuildBan(ctx context.Context, s *Session, guildID, userID Snowflake, reason *string) error {
	endpoint := EndpointGuildBan(guildID.String(), userID.String())

	headers := WithReason(reason)

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to remove guild ban: %w", err)
	}

	return nil
}

// GetGuildRoles returns the roles of a guild.
func GetGuildRoles(ctx context.Context, s *Session, guildID Snowflake) ([]Role, error) {
	endpoint := EndpointGuildRoles(guildID.String())

	var roles []Role

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &roles)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild roles: %w", err)
	}

	return roles, nil
}

// CreateGuildRole creates a role in a guild.
func CreateGuildRole(ctx context.Context, s *Session, guildID Snowflake, params RoleParams, reason *string) (*Role, error) {
	endpoint := EndpointGuildRoles(guildID.String())

	headers := WithReason(reason)

	var role *Role

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, headers, &role)
	if err != nil {
		return nil, fmt.Errorf("failed to create guild role: %w", err)
	}

	return role, nil
}

// ModifyGuildRolePositions modifies the positions of guild roles.
func ModifyGuildRolePositions(ctx context.Context, s *Session, guildID Snowflake, params []RolePositionParams, reason *string) ([]Role, error) {
	endpoint := EndpointGuildRoles(guildID.String())

	headers := WithReason(reason)

	var roles []Role

	err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, headers, &roles)
	if err != nil {
		return nil, fmt.Errorf("failed to modify guild role positions: %w", err)
	}

	return roles, nil
}

// ModifyGuildRole modifies a guild role.
func ModifyGuildRole(ctx context.Context, s *Session, guildID, roleID Snowflake, params RoleParams, reason *string) (*Role, error) {
	endpoint := EndpointGuildRole(guildID.String(), roleID.String())

	headers := WithReason(reason)

	var role *Role

	err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, headers, &role)
	if err != nil {
		return nil, fmt.Errorf("failed to modify guild role: %w", err)
	}

	return role, nil
}

// DeleteGuildRole deletes a guild role.
func DeleteGuildRole(ctx context.Context, s *Session, guildID, roleID Snowflake, reason *string) error {
	endpoint := EndpointGuildRole(guildID.String(), roleID.String())

	headers := WithReason(reason)

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to delete guild role: %w", err)
	}

	return nil
}

// GetGuildPruneCount returns the number of members that would be pruned
// after the given number of days of inactivity.
func GetGuildPruneCount(ctx context.Context, s *Session, guildID Snowflake, days int32, includeRoles []Snowflake) (*GuildPruneCount, error) {
	if days < minPruneDays || days > maxPruneDays {
		return nil, ErrPruneDaysBounds
	}

	endpoint := EndpointGuildPrune(guildID.String())

	values := url.Values{}
	values.Set("days", strconv.FormatInt(int64(days), 10))

	if len(includeRoles) > 0 {
		roles := make([]string, 0, len(includeRoles))
		for _, roleID := range includeRoles {
			roles = append(roles, roleID.String())
		}

		values.Set("include_roles", strings.Join(roles, ","))
	}

	endpoint += "?" + values.Encode()

	var pruneCount *GuildPruneCount

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &pruneCount)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild prune count: %w", err)
	}

	return pruneCount, nil
}

// BeginGuildPrune kicks members that have been inactive for the given
// number of days.
func BeginGuildPrune(ctx context.Context, s *Session, guildID Snowflake, params GuildPruneParams, reason *string) (*GuildPruneCount, error) {
	if params.Days != nil && (*params.Days < minPruneDays || *params.Days > maxPruneDays) {
		return nil, ErrPruneDaysBounds
	}

	endpoint := EndpointGuildPrune(guildID.String())

	headers := WithReason(reason)

	var pruneCount *GuildPruneCount

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, headers, &pruneCount)
	if err != nil {
		return nil, fmt.Errorf("failed to begin guild prune: %w", err)
	}

	return pruneCount, nil
}

// GetGuildVoiceRegions returns the voice regions of a guild.
func GetGuildVoiceRegions(ctx context.Context, s *Session, guildID Snowflake) ([]VoiceRegion, error) {
	endpoint := EndpointGuildVoiceRegions(guildID.String())

	var voiceRegions []VoiceRegion

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &voiceRegions)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild voice regions: %w", err)
	}

	return voiceRegions, nil
}

// GetGuildInvites returns the invites of a guild.
func GetGuildInvites(ctx context.Context, s *Session, guildID Snowflake) ([]Invite, error) {
	endpoint := EndpointGuildInvites(guildID.String())

	var invites []Invite

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &invites)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild invites: %w", err)
	}

	return invites, nil
}

// GetGuildWebhooks returns the webhooks of a guild.
func GetGuildWebhooks(ctx context.Context, s *Session, guildID Snowflake) ([]Webhook, error) {
	endpoint := EndpointGuildWebhooks(guildID.String())

	var webhooks []Webhook

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &webhooks)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild webhooks: %w", err)
	}

	return webhooks, nil
}

// GetGuildVanityURL returns the vanity invite of a guild.
func GetGuildVanityURL(ctx context.Context, s *Session, guildID Snowflake) (*Invite, error) {
	endpoint := EndpointGuildVanityURL(guildID.String())

	var invite *Invite

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &invite)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild vanity url: %w", err)
	}

	return invite, nil
}

// GetGuildAuditLog returns audit log entries of a guild. All filters
// are optional.
func GetGuildAuditLog(ctx context.Context, s *Session, guildID Snowflake, userID, before *Snowflake, actionType *AuditLogActionType, limit int32) (*GuildAuditLog, error) {
	endpoint := EndpointGuildAuditLogs(guildID.String())

	values := url.Values{}

	if userID != nil {
		values.Set("user_id", userID.String())
	}

	if before != nil {
		values.Set("before", before.String())
	}

	if actionType != nil {
		values.Set("action_type", strconv.FormatInt(int64(*actionType), 10))
	}

	if limit > 0 {
		values.Set("limit", strconv.FormatInt(int64(limit), 10))
	}

	if len(values) > 0 {
		endpoint += "?" + values.Encode()
	}

	var auditLog *GuildAuditLog

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &auditLog)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild audit log: %w", err)
	}

	return auditLog, nil
}

// ListActiveGuildThreads returns the active threads of a guild.
func ListActiveGuildThreads(ctx context.Context, s *Session, guildID Snowflake) (*ThreadList, error) {
	endpoint := EndpointGuildActiveThreads(guildID.String())

	var threadList *ThreadList

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &threadList)
	if err != nil {
		return nil, fmt.Errorf("failed to list active guild threads: %w", err)
	}

	return threadList, nil
}

// ListScheduledEvents returns the scheduled events of a guild.
func ListScheduledEvents(ctx context.Context, s *Session, guildID Snowflake, withUserCount bool) ([]ScheduledEvent, error) {
	endpoint := EndpointGuildScheduledEvents(guildID.String())

	if withUserCount {
		endpoint += "?with_user_count=true"
	}

	var scheduledEvents []ScheduledEvent

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &scheduledEvents)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled events: %w", err)
	}

	return scheduledEvents, nil
}

// GetScheduledEvent returns a scheduled event of a guild.
func GetScheduledEvent(ctx context.Context, s *Session, guildID, eventID Snowflake) (*ScheduledEvent, error) {
	endpoint := EndpointGuildScheduledEvent(guildID.String(), eventID.String())

	var scheduledEvent *ScheduledEvent

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &scheduledEvent)
	if err != nil {
		return nil, fmt.Errorf("failed to get scheduled event: %w", err)
	}

	return scheduledEvent, nil
}

// CreateScheduledEvent creates a scheduled event in a guild.
func CreateScheduledEvent(ctx context.Context, s *Session, guildID Snowflake, params ScheduledEventParams, reason *string) (*ScheduledEvent, error) {
	endpoint := EndpointGuildScheduledEvents(guildID.String())

	headers := WithReason(reason)

	var scheduledEvent *ScheduledEvent

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, headers, &scheduledEvent)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduled event: %w", err)
	}

	return scheduledEvent, nil
}

// ModifyScheduledEvent modifies a scheduled event of a guild.
func ModifyScheduledEvent(ctx context.Context, s *Session, guildID, eventID Snowflake, params ScheduledEventParams, reason *string) (*ScheduledEvent, error) {
	endpoint := EndpointGuildScheduledEvent(guildID.String(), eventID.String())

	headers := WithReason(reason)

	var scheduledEvent *ScheduledEvent

	err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, headers, &scheduledEvent)
	if err != nil {
		return nil, fmt.Errorf("failed to modify scheduled event: %w", err)
	}

	return scheduledEvent, nil
}

// DeleteScheduledEvent deletes a scheduled event of a guild.
func DeleteScheduledEvent(ctx context.Context, s *Session, guildID, eventID Snowflake, reason *string) error {
	endpoint := EndpointGuildScheduledEvent(guildID.String(), eventID.String())

	headers := WithReason(reason)

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to delete scheduled event: %w", err)
	}

	return nil
}

// GetScheduledEventUsers returns the users subscribed to a scheduled event.
func GetScheduledEventUsers(ctx context.Context, s *Session, guildID, eventID Snowflake, limit int32, withMember bool, before, after *Snowflake) ([]ScheduledEventUser, error) {
	endpoint := EndpointScheduledEventUsers(guildID.String(), eventID.String())

	values := url.Values{}

	if limit > 0 {
		values.Set("limit", strconv.FormatInt(int64(limit), 10))
	}

	if withMember {
		values.Set("with_member", "true")
	}

	if before != nil {
		values.Set("before", before.String())
	}

	if after != nil {
		values.Set("after", after.String())
	}

	if len(values) > 0 {
		endpoint += "?" + values.Encode()
	}

	var users []ScheduledEventUser

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &users)
	if err != nil {
		return nil, fmt.Errorf("failed to get scheduled event users: %w", err)
	}

	return users, nil
}
