package discord

import (
	"context"
	"fmt"
	"net/http"
)

// GetSticker returns a sticker by its id.
func GetSticker(ctx context.Context, s *Session, stickerID Snowflake) (*Sticker, error) {
	endpoint := EndpointSticker(stickerID.String())

	var sticker *Sticker

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &sticker)
	if err != nil {
		return nil, fmt.Errorf("failed to get sticker: %w", err)
	}

	return sticker, nil
}

// ListNitroStickerPacks returns the sticker packs available to nitro
// subscribers.
func ListNitroStickerPacks(ctx context.Context, s *Session) ([]StickerPack, error) {
	endpoint := EndpointNitroStickerPacks

	var response struct {
		StickerPacks []StickerPack `json:"sticker_packs"`
	}

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to list nitro sticker packs: %w", err)
	}

	return response.StickerPacks, nil
}

// ListGuildStickers returns the stickers of a guild.
func ListGuildStickers(ctx context.Context, s *Session, guildID Snowflake) ([]Sticker, error) {
	endpoint := EndpointGuildStickers(guildID.String())

	var stickers []Sticker

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &stickers)
	if err != nil {
		return nil, fmt.Errorf("failed to list guild stickers: %w", err)
	}

	return stickers, nil
}

// GetGuildSticker returns a sticker of a guild.
func GetGuildSticker(ctx context.Context, s *Session, guildID, stickerID Snowflake) (*Sticker, error) {
	endpoint := EndpointGuildSticker(guildID.String(), stickerID.String())

	var sticker *Sticker

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &sticker)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild sticker: %w", err)
	}

	return sticker, nil
}

// CreateGuildSticker uploads a new sticker to a guild. The sticker
// endpoint takes plain form fields rather than payload_json.
func CreateGuildSticker(ctx context.Context, s *Session, guildID Snowflake, params StickerParams, file File, reason *string) (*Sticker, error) {
	endpoint := EndpointGuildStickers(guildID.String())

	headers := WithReason(reason)

	fields := make(map[string]string)

	if params.Name != nil {
		fields["name"] = *params.Name
	}

	if params.Description != nil {
		fields["description"] = *params.Description
	}

	if params.Tags != nil {
		fields["tags"] = *params.Tags
	}

	contentType, body, err := formBody(fields, file)
	if err != nil {
		return nil, err
	}

	var sticker *Sticker

	err = s.Interface.FetchBJ(ctx, s, http.MethodPost, endpoint, contentType, body, headers, &sticker)
	if err != nil {
		return nil, fmt.Errorf("failed to create guild sticker: %w", err)
	}

	return sticker, nil
}

// ModifyGuildSticker modifies a sticker in a guild.
func ModifyGuildSticker(ctx context.Context, s *Session, guildID, stickerID Snowflake, params StickerParams, reason *string) (*Sticker, error) {
	endpoint := EndpointGuildSticker(guildID.String(), stickerID.String())

	headers := WithReason(reason)

	var sticker *Sticker

	err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, headers, &sticker)
	if err != nil {
		return nil, fmt.Errorf("failed to modify guild sticker: %w", err)
	}

	return sticker, nil
}

// DeleteGuildSticker deletes a sticker from a guild.
func DeleteGuildSticker(ctx context.Context, s *Session, guildID, stickerID Snowflake, reason *string) error {
	endpoint := EndpointGuildSticker(guildID.String(), stickerID.String())

	headers := WithReason(reason)

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to delete guild sticker: %w", err)
	}

	return nil
}
