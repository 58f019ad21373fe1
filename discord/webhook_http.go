package discord

import (
	"context"
	"fmt"
	"net/http"
)

// CreateWebhook creates a webhook in a channel.
func CreateWebhook(ctx context.Context, s *Session, channelID Snowflake, params WebhookParam, reason *string) (*Webhook, error) {
	endpoint := EndpointChannelWebhooks(channelID.String())

	headers := WithReason(reason)

	var webhook *Webhook

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, headers, &webhook)
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook: %w", err)
	}

	return webhook, nil
}

// GetChannelWebhooks returns the webhooks of a channel.
func GetChannelWebhooks(ctx context.Context, s *Session, channelID Snowflake) ([]Webhook, error) {
	endpoint := EndpointChannelWebhooks(channelID.String())

	var webhooks []Webhook

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &webhooks)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel webhooks: %w", err)
	}

	return webhooks, nil
}

// GetWebhook returns a webhook by its id.
func GetWebhook(ctx context.Context, s *Session, webhookID Snowflake) (*Webhook, error) {
	endpoint := EndpointWebhook(webhookID.String())

	var webhook *Webhook

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &webhook)
	if err != nil {
		return nil, fmt.Errorf("failed to get webhook: %w", err)
	}

	return webhook, nil
}

// GetWebhookWithToken returns a webhook by its id and token, without
// requiring authentication.
func GetWebhookWithToken(ctx context.Context, s *Session, webhookID Snowflake, token string) (*Webhook, error) {
	endpoint := EndpointWebhookToken(webhookID.String(), token)

	var webhook *Webhook

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &webhook)
	if err != nil {
		return nil, fmt.Errorf("failed to get webhook with token: %w", err)
	}

	return webhook, nil
}

// ModifyWebhook modifies a webhook.
func ModifyWebhook(ctx context.Context, s *Session, webhookID Snowflake, params WebhookParam, reason *string) (*Webhook, error) {
	endpoint := EndpointWebhook(webhookID.String())

	headers := WithReason(reason)

	var webhook *Webhook

	err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, headers, &webhook)
	if err != nil {
		return nil, fmt.Errorf("failed to modify webhook: %w", err)
	}

	return webhook, nil
}

// ModifyWebhookWithToken modifies a webhook using its token.
func ModifyWebhookWithToken(ctx context.Context, s *Session, webhookID Snowflake, token string, params WebhookParam) (*Webhook, error) {
	endpoint := EndpointWebhookToken(webhookID.String(), token)

	var webhook *Webhook

	err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, nil, &webhook)
	if err != nil {
		return nil, fmt.Errorf("failed to modify webhook with token: %w", err)
	}

	return webhook, nil
}

// DeleteWebhook deletes a webhook.
func DeleteWebhook(ctx context.Context, s *Session, webhookID Snowflake, reason *string) error {
	endpoint := EndpointWebhook(webhookID.String())

	headers := WithReason(reason)

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, headers, nil)
	if err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}

	return nil
}

// DeleteWebhookWithToken deletes a webhook using its token.
func DeleteWebhookWithToken(ctx context.Context, s *Session, webhookID Snowflake, token string) error {
	endpoint := EndpointWebhookToken(webhookID.String(), token)

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete webhook with token: %w", err)
	}

	return nil
}

// ExecuteWebhook sends a message through a webhook. When wait is true
// the created message is returned.
func ExecuteWebhook(ctx context.Context, s *Session, webhookID Snowflake, token string, params WebhookMessageParams, wait bool) (*Message, error) {
	endpoint := EndpointWebhookToken(webhookID.String(), token)

	if wait {
		endpoint += "?wait=true"
	}

	var message *Message

	if len(params.Files) > 0 {
		contentType, body, err := multipartBody(params, params.Files)
		if err != nil {
			return nil, err
		}

		err = s.Interface.FetchBJ(ctx, s, http.MethodPost, endpoint, contentType, body, nil, &message)
		if err != nil {
			return nil, fmt.Errorf("failed to execute webhook: %w", err)
		}
	} else {
		var response interface{}
		if wait {
			response = &message
		}

		err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, nil, response)
		if err != nil {
			return nil, fmt.Errorf("failed to execute webhook: %w", err)
		}
	}

	return message, nil
}

// GetWebhookMessage returns a message sent by a webhook.
func GetWebhookMessage(ctx context.Context, s *Session, webhookID Snowflake, token string, messageID Snowflake) (*Message, error) {
	endpoint := EndpointWebhookMessage(webhookID.String(), token, messageID.String())

	var message *Message

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &message)
	if err != nil {
		return nil, fmt.Errorf("failed to get webhook message: %w", err)
	}

	return message, nil
}

// EditWebhookMessage edits a message sent by a webhook.
func EditWebhookMessage(ctx context.Context, s *Session, webhookID Snowflake, token string, messageID Snowflake, params WebhookMessageParams) (*Message, error) {
	endpoint := EndpointWebhookMessage(webhookID.String(), token, messageID.String())

	var message *Message

	if len(params.Files) > 0 {
		contentType, body, err := multipartBody(params, params.Files)
		if err != nil {
			return nil, err
		}

		err = s.Interface.FetchBJ(ctx, s, http.MethodPatch, endpoint, contentType, body, nil, &message)
		if err != nil {
			return nil, fmt.Errorf("failed to edit webhook message: %w", err)
		}
	} else {
		err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, nil, &message)
		if err != nil {
			return nil, fmt.Errorf("failed to edit webhook message: %w", err)
		}
	}

	return message, nil
}

// DeleteWebhookMessage deletes a message sent by a webhook.
func DeleteWebhookMessage(ctx context.Context, s *Session, webhookID Snowflake, token string, messageID Snowflake) error {
	endpoint := EndpointWebhookMessage(webhookID.String(), token, messageID.String())

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete webhook message: %w", err)
	}

	return nil
}
