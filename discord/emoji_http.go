package discord

import (
	"context"
	"fmt"
	"net/http"
)

// ListGuildEmojis returns the emojis of a guild.
func ListGuildEmojis(ctx context.Context, s *Session, guildID Snowflake) ([]Emoji, error) {
	endpoint := EndpointGuildEmojis(guildID.String())

	var emojis []Emoji

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &emojis)
	if err != nil {
		return nil, fmt.Errorf("failed to list guild emojis: %w", err)
	}

	return emojis, nil
}

// GetGuildEmoji returns an emoji of a guild.
func GetGuildEmoji(ctx context.Context, s *Session, guildID, emojiID Snowflake) (*Emoji, error) {
	endpoint := EndpointGuildEmoji(guildID.String(), emojiID.String())

	var emoji *Emoji

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &emoji)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild emoji: %w", err)
	}

	return emoji, nil
}

// CreateGuildEmoji creates an emoji in a guild. The image is a data URI.
func CreateGuildEmoji(ctx context.Context, s *Session, guildID Snowflake, params EmojiParams, reason *string) (*Emoji, error) {
	endpoint := EndpointGuildEmojis(guildID.String())

	headers := WithReason(reason)

	var emoji *Emoji

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, headers, &emoji)
	if err != nil {
		return nil, fmt.Errorf("failed to create guild emoji: %w", err)
	}

	return emoji, nil
}

// ModifyGuildEmoji modifies an emoji in a guild.
func ModifyGuildEmoji(ctx context.Context, s *Session, guildID, emojiID Snowflake, params EmojiParams, reason *string) (*Emoji, error) {
	endpoint := EndpointGuildEmoji(guildID.String(), emojiID.String())

	headers := WithReason(reason)

	var emoji *Emoji

	err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, headers, &emoji)
	if err != nil {
		return nil, fmt.Errorf("failed to modify guild emoji: %w", err)
	}

	return emoji, nil
}

// DeleteGuildEmoji deletes an emoji from a guild.
func DeleteGuildEmoji(ctx context.Context, s *Session, guildID, emojiID Snowflake, reason *string) error {
	endpoint := EndpointGuildEmoji(guildID.String(), emojiID.String())

	headers := WithReason(reason)

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to delete guild emoji: %w", err)
	}

	return nil
}
