package discord

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetInvite returns an invite by its code.
func GetInvite(ctx context.Context, s *Session, code string, withCounts, withExpiration bool, scheduledEventID *Snowflake) (*Invite, error) {
	endpoint := EndpointInvite(code)

	values := url.Values{}

	if withCounts {
		values.Set("with_counts", "true")
	}

	if withExpiration {
		values.Set("with_expiration", "true")
	}

	if scheduledEventID != nil {
		values.Set("guild_scheduled_event_id", scheduledEventID.String())
	}

	if len(values) > 0 {
		endpoint += "?" + values.Encode()
	}

	var invite *Invite

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &invite)
	if err != nil {
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return invite, nil
}

// DeleteInvite revokes an invite.
func DeleteInvite(ctx context.Context, s *Session, code string, reason *string) (*Invite, error) {
	endpoint := EndpointInvite(code)

	headers := WithReason(reason)

	var invite *Invite

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, headers, &invite)
	if err != nil {
		return nil, fmt.Errorf("failed to delete invite: %w", err)
	}

	return invite, nil
}
