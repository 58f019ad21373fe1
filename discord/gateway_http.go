package discord

import (
	"context"
	"fmt"
	"net/http"
)

// GetGateway returns the websocket URL to connect to.
func GetGateway(ctx context.Context, s *Session) (*GatewayResponse, error) {
	endpoint := EndpointGateway

	var gatewayResponse *GatewayResponse

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &gatewayResponse)
	if err != nil {
		return nil, fmt.Errorf("failed to get gateway: %w", err)
	}

	return gatewayResponse, nil
}

// GetGatewayBot returns the websocket URL along with the recommended
// shard count and session start limit for the current bot.
func GetGatewayBot(ctx context.Context, s *Session) (*GatewayBotResponse, error) {
	endpoint := EndpointGatewayBot

	var gatewayBotResponse *GatewayBotResponse

	err := s.Interface.FetchJJ(ctx, s, http.MethodGet, endpoint, nil, nil, &gatewayBotResponse)
	if err != nil {
		return nil, fmt.Errorf("failed to get gateway bot: %w", err)
	}

	return gatewayBotResponse, nil
}
