package discord

import (
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var (
	ErrUnauthorized         = errors.New("improper token was passed")
	ErrUnsupportedImageType = errors.New("unsupported image type given")

	// ErrRateLimited is returned when a request stayed rate limited
	// after exhausting its retries.
	ErrRateLimited = errors.New("request was rate limited")

	ErrBulkDeleteBounds = errors.New("bulk delete requires between 2 and 100 messages")
	ErrPruneDaysBounds  = errors.New("prune days must be between 1 and 30")
	ErrContentTooLong   = errors.New("message content must be 2000 or fewer in length")
	ErrNicknameTooLong  = errors.New("nickname must be 32 or fewer in length")
)

// RestError contains the error structure that is returned by discord.
type RestError struct {
	Request      *http.Request
	Response     *http.Response
	Message      *ErrorMessage
	ResponseBody []byte
}

// ErrorMessage represents a basic error message.
type ErrorMessage struct {
	Message string          `json:"message"`
	Errors  jsoniter.RawMessage `json:"errors"`
	Code    int32           `json:"code"`
}

func NewRestError(req *http.Request, resp *http.Response, body []byte) *RestError {
	var errorMessage ErrorMessage

	_ = Unmarshal(body, &errorMessage)

	return &RestError{
		Request:      req,
		Response:     resp,
		ResponseBody: body,
		Message:      &errorMessage,
	}
}

func (r *RestError) Error() string {
	return fmt.Sprintf("%s: %s", r.Response.Status, r.Message.Message)
}

// TooManyRequests represents the payload of a 429 response.
type TooManyRequests struct {
	Message    string  `json:"message"`
	RetryAfter float64 `json:"retry_after"`
	Global     bool    `json:"global"`
}
