package discord

import (
	"context"
	"fmt"
	"net/http"
)

// CreateInteractionResponse responds to an interaction. The response
// must be sent within 3 seconds of receiving the interaction.
func CreateInteractionResponse(ctx context.Context, s *Session, interactionID Snowflake, token string, response InteractionResponse) error {
	endpoint := EndpointInteractionResponse(interactionID.String(), token)

	if response.Data != nil && len(response.Data.Files) > 0 {
		contentType, body, err := multipartBody(response, response.Data.Files)
		if err != nil {
			return err
		}

		err = s.Interface.FetchBJ(ctx, s, http.MethodPost, endpoint, contentType, body, nil, nil)
		if err != nil {
			return fmt.Errorf("failed to create interaction response: %w", err)
		}

		return nil
	}

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, response, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create interaction response: %w", err)
	}

	return nil
}

// GetOriginalInteractionResponse returns the initial response to an
// interaction.
func GetOriginalInteractionResponse(ctx context.Context, s *Session, applicationID Snowflake, token string) (*Message, error) {
	endpoint := EndpointInteractionResponseActions(applicationID.String(), token)

	var message *Message

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &message)
	if err != nil {
		return nil, fmt.Errorf("failed to get original interaction response: %w", err)
	}

	return message, nil
}

// EditOriginalInteractionResponse edits the initial response to an
// interaction.
func EditOriginalInteractionResponse(ctx context.Context, s *Session, applicationID Snowflake, token string, params WebhookMessageParams) (*Message, error) {
	endpoint := EndpointInteractionResponseActions(applicationID.String(), token)

	var message *Message

	if len(params.Files) > 0 {
		contentType, body, err := multipartBody(params, params.Files)
		if err != nil {
			return nil, err
		}

		err = s.Interface.FetchBJ(ctx, s, http.MethodPatch, endpoint, contentType, body, nil, &message)
		if err != nil {
			return nil, fmt.Errorf("failed to edit original interaction response: %w", err)
		}
	} else {
		err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, nil, &message)
		if err != nil {
			return nil, fmt.Errorf("failed to edit original interaction response: %w", err)
		}
	}

	return message, nil
}

// DeleteOriginalInteractionResponse deletes the initial response to an
// interaction.
func DeleteOriginalInteractionResponse(ctx context.Context, s *Session, applicationID Snowflake, token string) error {
	endpoint := EndpointInteractionResponseActions(applicationID.String(), token)

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete original interaction response: %w", err)
	}

	return nil
}

// CreateFollowupMessage sends a followup message for an interaction.
func CreateFollowupMessage(ctx context.Context, s *Session, applicationID Snowflake, token string, params WebhookMessageParams) (*Message, error) {
	endpoint := EndpointFollowupMessage(applicationID.String(), token)

	var message *Message

	if len(params.Files) > 0 {
		contentType, body, err := multipartBody(params, params.Files)
		if err != nil {
			return nil, err
		}

		err = s.Interface.FetchBJ(ctx, s, http.MethodPost, endpoint, contentType, body, nil, &message)
		if err != nil {
			return nil, fmt.Errorf("failed to create followup message: %w", err)
		}
	} else {
		err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, nil, &message)
		if err != nil {
			return nil, fmt.Errorf("failed to create followup message: %w", err)
		}
	}

	return message, nil
}

// EditFollowupMessage edits a followup message of an interaction.
func EditFollowupMessage(ctx context.Context, s *Session, applicationID Snowflake, token string, messageID Snowflake, params WebhookMessageParams) (*Message, error) {
	return EditWebhookMessage(ctx, s, applicationID, token, messageID, params)
}

// DeleteFollowupMessage deletes a followup message of an interaction.
func DeleteFollowupMessage(ctx context.Context, s *Session, applicationID Snowflake, token string, messageID Snowflake) error {
	return DeleteWebhookMessage(ctx, s, applicationID, token, messageID)
}
