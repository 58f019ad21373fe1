package discord

import (
	"context"
	"fmt"
	"net/http"
)

// GetGlobalApplicationCommands returns the global commands of an application.
func GetGlobalApplicationCommands(ctx context.Context, s *Session, applicationID Snowflake) ([]ApplicationCommand, error) {
	endpoint := EndpointApplicationGlobalCommands(applicationID.String())

	var commands []ApplicationCommand

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &commands)
	if err != nil {
		return nil, fmt.Errorf("failed to get global application commands: %w", err)
	}

	return commands, nil
}

// CreateGlobalApplicationCommand creates a global command for an
// application. Commands with the same name are overwritten.
func CreateGlobalApplicationCommand(ctx context.Context, s *Session, applicationID Snowflake, params ApplicationCommand) (*ApplicationCommand, error) {
	endpoint := EndpointApplicationGlobalCommands(applicationID.String())

	var command *ApplicationCommand

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, nil, &command)
	if err != nil {
		return nil, fmt.Errorf("failed to create global application command: %w", err)
	}

	return command, nil
}

// GetGlobalApplicationCommand returns a global command of an application.
func GetGlobalApplicationCommand(ctx context.Context, s *Session, applicationID, commandID Snowflake) (*ApplicationCommand, error) {
	endpoint := EndpointApplicationGlobalCommand(applicationID.String(), commandID.String())

	var command *ApplicationCommand

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &command)
	if err != nil {
		return nil, fmt.Errorf("failed to get global application command: %w", err)
	}

	return command, nil
}

// EditGlobalApplicationCommand edits a global command of an application.
func EditGlobalApplicationCommand(ctx context.Context, s *Session, applicationID, commandID Snowflake, params ApplicationCommand) (*ApplicationCommand, error) {
	endpoint := EndpointApplicationGlobalCommand(applicationID.String(), commandID.String())

	var command *ApplicationCommand

	err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, nil, &command)
	if err != nil {
		return nil, fmt.Errorf("failed to edit global application command: %w", err)
	}

	return command, nil
}

// DeleteGlobalApplicationCommand deletes a global command of an application.
func DeleteGlobalApplicationCommand(ctx context.Context, s *Session, applicationID, commandID Snowflake) error {
	endpoint := EndpointApplicationGlobalCommand(applicationID.String(), commandID.String())

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete global application command: %w", err)
	}

	return nil
}

// BulkOverwriteGlobalApplicationCommands replaces all global commands
// of an application.
func BulkOverwriteGlobalApplicationCommands(ctx context.Context, s *Session, applicationID Snowflake, params []ApplicationCommand) ([]ApplicationCommand, error) {
	endpoint := EndpointApplicationGlobalCommands(applicationID.String())

	var commands []ApplicationCommand

	err := s.Interface.FetchJJ(ctx, s, http.MethodPut, endpoint, params, nil, &commands)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk overwrite global application commands: %w", err)
	}

	return commands, nil
}

// GetGuildApplicationCommands returns the guild commands of an application.
func GetGuildApplicationCommands(ctx context.Context, s *Session, applicationID, guildID Snowflake) ([]ApplicationCommand, error) {
	endpoint := EndpointApplicationGuildCommands(applicationID.String(), guildID.String())

	var commands []ApplicationCommand

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &commands)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild application commands: %w", err)
	}

	return commands, nil
}

// CreateGuildApplicationCommand creates a guild command for an
// application. Commands with the same name are overwritten.
func CreateGuildApplicationCommand(ctx context.Context, s *Session, applicationID, guildID Snowflake, params ApplicationCommand) (*ApplicationCommand, error) {
	endpoint := EndpointApplicationGuildCommands(applicationID.String(), guildID.String())

	var command *ApplicationCommand

	err := s.Interface.FetchJJ(ctx, s, http.MethodPost, endpoint, params, nil, &command)
	if err != nil {
		return nil, fmt.Errorf("failed to create guild application command: %w", err)
	}

	return command, nil
}

// GetGuildApplicationCommand returns a guild command of an application.
func GetGuildApplicationCommand(ctx context.Context, s *Session, applicationID, guildID, commandID Snowflake) (*ApplicationCommand, error) {
	endpoint := EndpointApplicationGuildCommand(applicationID.String(), guildID.String(), commandID.String())

	var command *ApplicationCommand

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &command)
	if err != nil {
		return nil, fmt.Errorf("failed to get guild application command: %w", err)
	}

	return command, nil
}

// EditGuildApplicationCommand edits a guild command of an application.
func EditGuildApplicationCommand(ctx context.Context, s *Session, applicationID, guildID, commandID Snowflake, params ApplicationCommand) (*ApplicationCommand, error) {
	endpoint := EndpointApplicationGuildCommand(applicationID.String(), guildID.String(), commandID.String())

	var command *ApplicationCommand

	err := s.Interface.FetchJJ(ctx, s, http.MethodPatch, endpoint, params, nil, &command)
	if err != nil {
		return nil, fmt.Errorf("failed to edit guild application command: %w", err)
	}

	return command, nil
}

// DeleteGuildApplicationCommand deletes a guild command of an application.
func DeleteGuildApplicationCommand(ctx context.Context, s *Session, applicationID, guildID, commandID Snowflake) error {
	endpoint := EndpointApplicationGuildCommand(applicationID.String(), guildID.String(), commandID.String())

	err := s.Interface.FetchJJ(ctx, s, http.MethodDelete, endpoint, nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to delete guild application command: %w", err)
	}

	return nil
}

// BulkOverwriteGuildApplicationCommands replaces all guild commands of
// an application.
func BulkOverwriteGuildApplicationCommands(ctx context.Context, s *Session, applicationID, guildID Snowflake, params []ApplicationCommand) ([]ApplicationCommand, error) {
	endpoint := EndpointApplicationGuildCommands(applicationID.String(), guildID.String())

	var commands []ApplicationCommand

	err := s.Interface.FetchJJ(ctx, s, http.MethodPut, endpoint, params, nil, &commands)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk overwrite guild application commands: %w", err)
	}

	return commands, nil
}
