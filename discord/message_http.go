package discord

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	minBulkDeleteMessages = 2
	maxBulkDeleteMessages = 100
)

// GetChannelMessages returns the messages of a channel. At most one of
// around, before and after may be set.
func GetChannelMessages(ctx context.Context, s *Session, channelID Snowflake, around, before, after *Snowflake, limit int32) ([]Message, error) {
	endpoint := EndpointChannelMessages(channelID.String())

	values := url.Values{}

	if around != nil {
		values.Set("around", around.String())
	}

	if before != nil {
		values.Set("before", before.String())
	}

	if after != nil {
		values.Set("after", after.String())
	}

	if limit > 0 {
		values.Set("limit", strconv.FormatInt(int64(limit), 10))
	}

	if len(values) > 0 {
		endpoint += "?" + values.Encode()
	}

	var messages []Message

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &messages)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel messages: %w", err)
	}

	return messages, nil
}

// GetChannelMessage returns a message of a channel.
func GetChannelMessage(ctx context.Context, s *Session, channelID, messageID Snowflake) (*Message, error) {
	endpoint := EndpointChannelMessage(channelID.String(), messageID.String())

	var message *Message

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &message)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel message: %w", err)
	}

	return message, nil
}

// CreateMessage sends a message in a channel. Files are uploaded as a
// multipart request.
func CreateMessage(ctx context.Context, s *Session, channelID Snowflake, params MessageParams) (*Message, error) {
	if len(params.Content) > MaxMessageContentLength {
		return nil, ErrContentTooLong
	}

	endpoint := EndpointChannelMessages(channelID.String())

	var message *Message

	if len(params.Files) > 0 {
		contentType, body, err := multipartBody(params, params.Files)
		if err != nil {
			return nil, err
		}

		err = s.Interface.FetchBJ(ctx, s, http.MethodPost, endpoint, contentType, body, nil, &message)
		if err != nil {
			return nil, fmt.Errorf("failed to create message: %w", err)
		}
	} else {
		err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, nil, &message)
		if err != nil {
			return nil, fmt.Errorf("failed to create message: %w", err)
		}
	}

	return message, nil
}

// EditMessage edits a previously sent message.
func EditMessage(ctx context.Context, s *Session, channelID, messageID Snowflake, params MessageEditParams) (*Message, error) {
	if params.Content != nil && len(*params.Content) > MaxMessageContentLength {
		return nil, ErrContentTooLong
	}

	endpoint := EndpointChannelMessage(channelID.String(), messageID.String())

	var message *Message

	if len(params.Files) > 0 {
		contentType, body, err := multipartBody(params, params.Files)
		if err != nil {
			return nil, err
		}

		err = s.Interface.FetchBJ(ctx, s, http.MethodPatch, endpoint, contentType, body, nil, &message)
		if err != nil {
			return nil, fmt.Errorf("failed to edit message: %w", err)
		}
	} else {
		err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, nil, &message)
		if err != nil {
			return nil, fmt.Errorf("failed to edit message: %w", err)
		}
	}

	return message, nil
}

// DeleteMessage deletes a message.
func DeleteMessage(ctx context.Context, s *Session, channelID, messageID Snowflake, reason *string) error {
	endpoint := EndpointChannelMessage(channelID.String(), messageID.String())

	headers := WithReason(reason)

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}

// BulkDeleteMessages deletes between 2 and 100 messages in a single
// request. Messages older than two weeks are rejected by discord.
func BulkDeleteMessages(ctx context.Context, s *Session, channelID Snowflake, messageIDs []Snowflake, reason *string) error {
	if len(messageIDs) < minBulkDeleteMessages || len(messageIDs) > maxBulkDeleteMessages {
		return ErrBulkDeleteBounds
	}

	endpoint := EndpointChannelMessagesBulkDelete(channelID.String())

	headers := WithReason(reason)

	params := struct {
		Messages []Snowflake `json:"messages"`
	}{messageIDs}

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to bulk delete messages: %w", err)
	}

	return nil
}

// CrosspostMessage publishes a message in a news channel to following
// channels.
func CrosspostMessage(ctx context.Context, s *Session, channelID, messageID Snowflake) (*Message, error) {
	endpoint := EndpointChannelMessageCrosspost(channelID.String(), messageID.String())

	var message *Message

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, nil, nil, &message)
	if err != nil {
		return nil, fmt.Errorf("failed to crosspost message: %w", err)
	}

	return message, nil
}

// CreateReaction adds a reaction to a message as the current user. The
// emoji takes the format name:id for custom emoji.
func CreateReaction(ctx context.Context, s *Session, channelID, messageID Snowflake, emoji string) error {
	endpoint := EndpointChannelMessageReactionSelf(channelID.String(), messageID.String(), url.PathEscape(emoji))

	err := s.Interface.FetchJJ(ctx, s, http.MethodPut, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create reaction: %w", err)
	}

	return nil
}

// DeleteOwnReaction removes the current user's reaction from a message.
func DeleteOwnReaction(ctx context.Context, s *Session, channelID, messageID Snowflake, emoji string) error {
	endpoint := EndpointChannelMessageReactionSelf(channelID.String(), messageID.String(), url.PathEscape(emoji))

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete own reaction: %w", err)
	}

	return nil
}

// DeleteUserReaction removes another user's reaction from a message.
func DeleteUserReaction(ctx context.Context, s *Session, channelID, messageID, userID Snowflake, emoji string) error {
	endpoint := EndpointChannelMessageReactionUser(channelID.String(), messageID.String(), url.PathEscape(emoji), userID.String())

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete user reaction: %w", err)
	}

	return nil
}

// GetReactions returns the users that reacted with an emoji, paginated
// with the highest user id of the previous page.
func GetReactions(ctx context.Context, s *Session, channelID, messageID Snowflake, emoji string, limit int32, after *Snowflake) ([]User, error) {
	endpoint := EndpointChannelMessageReaction(channelID.String(), messageID.String(), url.PathEscape(emoji))

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

	var users []User

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &users)
	if err != nil {
		return nil, fmt.Errorf("failed to get reactions: %w", err)
	}

	return users, nil
}

// DeleteAllReactions removes all reactions from a message.
func DeleteAllReactions(ctx context.Context, s *Session, channelID, messageID Snowflake) error {
	endpoint := EndpointChannelMessageReactions(channelID.String(), messageID.String())

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete all reactions: %w", err)
	}

	return nil
}

// DeleteAllReactionsForEmoji removes all reactions of an emoji from a message.
func DeleteAllReactionsForEmoji(ctx context.Context, s *Session, channelID, messageID Snowflake, emoji string) error {
	endpoint := EndpointChannelMessageReaction(channelID.String(), messageID.String(), url.PathEscape(emoji))

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete all reactions for emoji: %w", err)
	}

	return nil
}
