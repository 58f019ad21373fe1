package discord

import (
	"io"
	"net/http"
)

// http.go represents the structures of common endpoints we use.

// AuditLogReasonHeader is attached to audit-loggable requests when a
// reason is supplied.
const AuditLogReasonHeader = "X-Audit-Log-Reason"

// File stores information about a file sent in a message.
type File struct {
	Reader      io.Reader
	Name        string
	ContentType string
}

// GatewayResponse represents a GET /gateway response.
type GatewayResponse struct {
	URL string `json:"url"`
}

// GatewayBotResponse represents a GET /gateway/bot response.
type GatewayBotResponse struct {
	URL               string            `json:"url"`
	Shards            int32             `json:"shards"`
	SessionStartLimit SessionStartLimit `json:"session_start_limit"`
}

// SessionStartLimit represents the session start limit of a bot.
type SessionStartLimit struct {
	Total          int32 `json:"total"`
	Remaining      int32 `json:"remaining"`
	ResetAfter     int32 `json:"reset_after"`
	MaxConcurrency int32 `json:"max_concurrency"`
}

// WithReason returns headers with an audit log reason attached. A nil
// reason returns nil headers.
func WithReason(reason *string) http.Header {
	if reason == nil {
		return nil
	}

	headers := http.Header{}
	headers.Set(AuditLogReasonHeader, *reason)

	return headers
}
