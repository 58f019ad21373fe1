package discord

import (
	"context"
	"fmt"
	"net/http"
)

// GetCurrentUser returns the user belonging to the current token.
func GetCurrentUser(ctx context.Context, s *Session) (*User, error) {
	endpoint := EndpointUser("@me")

	var user *User

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	return user, nil
}

// GetUser returns a user by their id.
func GetUser(ctx context.Context, s *Session, userID Snowflake) (*User, error) {
	endpoint := EndpointUser(userID.String())

	var user *User

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// ModifyCurrentUser modifies the user belonging to the current token.
func ModifyCurrentUser(ctx context.Context, s *Session, params ModifyCurrentUserParams) (*User, error) {
	endpoint := EndpointUser("@me")

	var user *User

	err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, nil, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to modify current user: %w", err)
	}

	return user, nil
}

// GetCurrentUserGuilds returns the partial guilds the current user is in.
func GetCurrentUserGuilds(ctx context.Context, s *Session) ([]Guild, error) {
	endpoint := EndpointUserGuilds("@me")

	var guilds []Guild

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &guilds)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user guilds: %w", err)
	}

	return guilds, nil
}

// LeaveGuild removes the current user from a guild.
func LeaveGuild(ctx context.Context, s *Session, guildID Snowflake) error {
	endpoint := EndpointUserGuild("@me", guildID.String())

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to leave guild: %w", err)
	}

	return nil
}

// CreateDM opens a DM channel with a user.
func CreateDM(ctx context.Context, s *Session, recipientID Snowflake) (*Channel, error) {
	endpoint := EndpointUserChannels("@me")

	params := CreateDMParams{RecipientID: recipientID}

	var channel *Channel

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, nil, &channel)
	if err != nil {
		return nil, fmt.Errorf("failed to create dm channel: %w", err)
	}

	return channel, nil
}
