package discord

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// GetChannel returns a channel by its id.
func GetChannel(ctx context.Context, s *Session, channelID Snowflake) (*Channel, error) {
	endpoint := EndpointChannel(channelID.String())

	var channel *Channel

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &channel)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	return channel, nil
}

// ModifyChannel modifies a channel.
func ModifyChannel(ctx context.Context, s *Session, channelID Snowflake, params ChannelParams, reason *string) (*Channel, error) {
	endpoint := EndpointChannel(channelID.String())

	headers := WithReason(reason)

	var channel *Channel

	err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, headers, &channel)
	if err != nil {
		return nil, fmt.Errorf("failed to modify channel: %w", err)
	}

	return channel, nil
}

// DeleteChannel deletes a channel, or closes it if it is a DM.
func DeleteChannel(ctx context.Context, s *Session, channelID Snowflake, reason *string) error {
	endpoint := EndpointChannel(channelID.String())

	headers := WithReason(reason)

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to delete channel: %w", err)
	}

	return nil
}

// EditChannelPermissions edits a permission overwrite on a channel.
func EditChannelPermissions(ctx context.Context, s *Session, channelID, overwriteID Snowflake, params ChannelPermissionParams, reason *string) error {
	endpoint := EndpointChannelPermission(channelID.String(), overwriteID.String())

	headers := WithReason(reason)

	err := s.Interface.FetchJJ(ctx, s, http.MethodPut, endpoint, params, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to edit channel permissions: %w", err)
	}

	return nil
}

// DeleteChannelPermission deletes a permission overwrite on a channel.
func DeleteChannelPermission(ctx context.Context, s *Session, channelID, overwriteID Snowflake, reason *string) error {
	endpoint := EndpointChannelPermission(channelID.String(), overwriteID.String())

	headers := WithReason(reason)

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to delete channel permission: %w", err)
	}

	return nil
}

// GetChannelInvites returns the invites of a channel.
func GetChannelInvites(ctx context.Context, s *Session, channelID Snowflake) ([]Invite, error) {
	endpoint := EndpointChannelInvites(channelID.String())

	var invites []Invite

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &invites)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel invites: %w", err)
	}

	return invites, nil
}

// CreateChannelInvite creates an invite for a channel.
func CreateChannelInvite(ctx context.Context, s *Session, channelID Snowflake, params InviteParams, reason *string) (*Invite, error) {
	endpoint := EndpointChannelInvites(channelID.String())

	headers := WithReason(reason)

	var invite *Invite

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, headers, &invite)
	if err != nil {
		return nil, fmt.Errorf("failed to create channel invite: %w", err)
	}

	return invite, nil
}

// TriggerTypingIndicator shows a typing indicator in a channel for a
// few seconds.
func TriggerTypingIndicator(ctx context.Context, s *Session, channelID Snowflake) error {
	endpoint := EndpointChannelTyping(channelID.String())

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to trigger typing indicator: %w", err)
	}

	return nil
}

// GetPinnedMessages returns the pinned messages of a channel.
func GetPinnedMessages(ctx context.Context, s *Session, channelID Snowflake) ([]Message, error) {
	endpoint := EndpointChannelPins(channelID.String())

	var messages []Message

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &messages)
	if err != nil {
		return nil, fmt.Errorf("failed to get pinned messages: %w", err)
	}

	return messages, nil
}

// PinMessage pins a message in a channel.
func PinMessage(ctx context.Context, s *Session, channelID, messageID Snowflake, reason *string) error {
	endpoint := EndpointChannelPin(channelID.String(), messageID.String())

	headers := WithReason(reason)

	err := s.Interface.FetchJJ(ctx, s, http.MethodPut, endpoint, nil, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to pin message: %w", err)
	}

	return nil
}

// UnpinMessage unpins a message in a channel.
func UnpinMessage(ctx context.Context, s *Session, channelID, messageID Snowflake, reason *string) error {
	endpoint := EndpointChannelPin(channelID.String(), messageID.String())

	headers := WithReason(reason)

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to unpin message: %w", err)
	}

	return nil
}

// FollowNewsChannel follows a news channel into a target channel.
func FollowNewsChannel(ctx context.Context, s *Session, channelID, targetChannelID Snowflake) (*FollowedChannel, error) {
	endpoint := EndpointChannelFollow(channelID.String())

	params := struct {
		WebhookChannelID Snowflake `json:"webhook_channel_id"`
	}{targetChannelID}

	var followedChannel *FollowedChannel

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, nil, &followedChannel)
	if err != nil {
		return nil, fmt.Errorf("failed to follow news channel: %w", err)
	}

	return followedChannel, nil
}

// StartThreadWithMessage starts a thread from an existing message.
func StartThreadWithMessage(ctx context.Context, s *Session, channelID, messageID Snowflake, params ThreadParams, reason *string) (*Channel, error) {
	endpoint := EndpointChannelMessageThread(channelID.String(), messageID.String())

	headers := WithReason(reason)

	var channel *Channel

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, headers, &channel)
	if err != nil {
		return nil, fmt.Errorf("failed to start thread with message: %w", err)
	}

	return channel, nil
}

// StartThreadWithoutMessage starts a thread that is not attached to a message.
func StartThreadWithoutMessage(ctx context.Context, s *Session, channelID Snowflake, params ThreadParams, reason *string) (*Channel, error) {
	endpoint := EndpointChannelThreads(channelID.String())

	headers := WithReason(reason)

	var channel *Channel

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, headers, &channel)
	if err != nil {
		return nil, fmt.Errorf("failed to start thread: %w", err)
	}

	return channel, nil
}

// JoinThread adds the current user to a thread.
func JoinThread(ctx context.Context, s *Session, channelID Snowflake) error {
	endpoint := EndpointThreadMemberSelf(channelID.String())

	err := s.Interface.FetchJJ(ctx, s, http.MethodPut, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to join thread: %w", err)
	}

	return nil
}

// AddThreadMember adds a member to a thread.
func AddThreadMember(ctx context.Context, s *Session, channelID, userID Snowflake) error {
	endpoint := EndpointThreadMember(channelID.String(), userID.String())

	err := s.Interface.FetchJJ(ctx, s, http.MethodPut, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to add thread member: %w", err)
	}

	return nil
}

// LeaveThread removes the current user from a thread.
func LeaveThread(ctx context.Context, s *Session, channelID Snowflake) error {
	endpoint := EndpointThreadMemberSelf(channelID.String())

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to leave thread: %w", err)
	}

	return nil
}

// RemoveThreadMember removes a member from a thread.
func RemoveThreadMember(ctx context.Context, s *Session, channelID, userID Snowflake) error {
	endpoint := EndpointThreadMember(channelID.String(), userID.String())

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to remove thread member: %w", err)
	}

	return nil
}

// GetThreadMember returns a member of a thread.
func GetThreadMember(ctx context.Context, s *Session, channelID, userID Snowflake) (*ThreadMember, error) {
	endpoint := EndpointThreadMember(channelID.String(), userID.String())

	var threadMember *ThreadMember

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &threadMember)
	if err != nil {
		return nil, fmt.Errorf("failed to get thread member: %w", err)
	}

	return threadMember, nil
}

// ListThreadMembers returns the members of a thread.
func ListThreadMembers(ctx context.Context, s *Session, channelID Snowflake) ([]ThreadMember, error) {
	endpoint := EndpointThreadMembers(channelID.String())

	var threadMembers []ThreadMember

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &threadMembers)
	if err != nil {
		return nil, fmt.Errorf("failed to list thread members: %w", err)
	}

	return threadMembers, nil
}

func listArchivedThreads(ctx context.Context, s *Session, endpoint string, before *Timestamp, limit int32) (*ThreadList, error) {
	values := url.Values{}

	if before != nil {
		values.Set("before", string(*before))
	}

	if limit > 0 {
		values.Set("limit", strconv.FormatInt(int64(limit), 10))
	}

	if len(values) > 0 {
		endpoint += "?" + values.Encode()
	}

	var threadList *ThreadList

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &threadList)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived threads: %w", err)
	}

	return threadList, nil
}

// ListPublicArchivedThreads returns the public archived threads of a
// channel, newest first.
func ListPublicArchivedThreads(ctx context.Context, s *Session, channelID Snowflake, before *Timestamp, limit int32) (*ThreadList, error) {
	return listArchivedThreads(ctx, s, EndpointChannelPublicArchivedThreads(channelID.String()), before, limit)
}

// ListPrivateArchivedThreads returns the private archived threads of a
// channel, newest first.
func ListPrivateArchivedThreads(ctx context.Context, s *Session, channelID Snowflake, before *Timestamp, limit int32) (*ThreadList, error) {
	return listArchivedThreads(ctx, s, EndpointChannelPrivateArchivedThreads(channelID.String()), before, limit)
}

// GetStageInstance returns the stage instance of a stage channel, if any.
func GetStageInstance(ctx context.Context, s *Session, channelID Snowflake) (*StageInstance, error) {
	endpoint := EndpointStageInstance(channelID.String())

	var stageInstance *StageInstance

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &stageInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to get stage instance: %w", err)
	}

	return stageInstance, nil
}

// CreateStageInstance creates a stage instance in a stage channel.
func CreateStageInstance(ctx context.Context, s *Session, params StageInstanceParams, reason *string) (*StageInstance, error) {
	endpoint := EndpointStageInstances

	headers := WithReason(reason)

	var stageInstance *StageInstance

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, headers, &stageInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create stage instance: %w", err)
	}

	return stageInstance, nil
}

// ModifyStageInstance modifies the stage instance of a stage channel.
func ModifyStageInstance(ctx context.Context, s *Session, channelID Snowflake, params StageInstanceParams, reason *string) (*StageInstance, error) {
	endpoint := EndpointStageInstance(channelID.String())

	headers := WithReason(reason)

	var stageInstance *StageInstance

	err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, headers, &stageInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to modify stage instance: %w", err)
	}

	return stageInstance, nil
}

// DeleteStageInstance deletes the stage instance of a stage channel.
func DeleteStageInstance(ctx context.Context, s *Session, channelID Snowflake, reason *string) error {
	endpoint := EndpointStageInstance(channelID.String())

	headers := WithReason(reason)

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to delete stage instance: %w", err)
	}

	return nil
}
