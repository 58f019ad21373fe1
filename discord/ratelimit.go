package discord

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/WelcomerTeam/RealRock/limiter"
)

// Discord rate limit headers.
// https://discord.com/developers/docs/topics/rate-limits
const (
	HeaderRateLimitLimit      = "X-RateLimit-Limit"
	HeaderRateLimitRemaining  = "X-RateLimit-Remaining"
	HeaderRateLimitResetAfter = "X-RateLimit-Reset-After"
	HeaderRateLimitBucket     = "X-RateLimit-Bucket"
	HeaderRateLimitGlobal     = "X-RateLimit-Global"
	HeaderRetryAfter          = "Retry-After"
)

const (
	// GlobalRateLimit is the maximum requests per second across all buckets.
	GlobalRateLimit = 50

	// MaxRateLimitRetries is the number of times a request will be reissued
	// after hitting a 429 before giving up.
	MaxRateLimitRetries = 3
)

// ParseRoute converts a concrete endpoint path into its rate limit route
// and major parameter. Requests on the same route share a rate limit
// bucket when they carry the same major parameter (channel, guild or
// webhook id). Reaction emojis and anything beneath them are collapsed
// into the reactions route.
func ParseRoute(method, endpoint string) (route, major string) {
	if idx := strings.Index(endpoint, "?"); idx >= 0 {
		endpoint = endpoint[:idx]
	}

	segments := strings.Split(strings.Trim(endpoint, "/"), "/")
	parts := make([]string, 0, len(segments))

	previous := ""

	for i, segment := range segments {
		switch {
		case segment == "reactions":
			parts = append(parts, segment)

			return method + " /" + strings.Join(parts, "/"), major
		case isSnowflakeValue(segment):
			if previous == "channels" || previous == "guilds" || previous == "webhooks" || previous == "interactions" {
				if major == "" {
					major = segment
				}
			}

			parts = append(parts, "{id}")
		case i >= 2 && (segments[i-2] == "webhooks" || segments[i-2] == "interactions") && isSnowflakeValue(segments[i-1]):
			// Webhook and interaction tokens form part of the major parameter.
			major += "/" + segment

			parts = append(parts, "{token}")
		default:
			parts = append(parts, segment)
		}

		previous = segment
	}

	return method + " /" + strings.Join(parts, "/"), major
}

func isSnowflakeValue(segment string) bool {
	if segment == "" {
		return false
	}

	for _, r := range segment {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// bucket tracks the rate limit state communicated by discord for a
// single bucket hash and major parameter.
type bucket struct {
	reset     time.Time
	limit     int32
	remaining int32
}

// RateLimiter schedules requests against discord's per-route rate limit
// buckets. Routes that report the same X-RateLimit-Bucket hash share
// their bucket state.
type RateLimiter struct {
	mu sync.Mutex

	// Route to discord issued bucket hash.
	hashes map[string]string

	// Bucket hash and major parameter to bucket state.
	buckets map[string]*bucket

	globalReset time.Time

	globalLimiter *limiter.DurationLimiter
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		hashes:        make(map[string]string),
		buckets:       make(map[string]*bucket),
		globalLimiter: limiter.NewDurationLimiter(GlobalRateLimit, time.Second),
	}
}

func (rl *RateLimiter) bucketKey(route, major string) string {
	if hash, ok := rl.hashes[route]; ok {
		return hash + ":" + major
	}

	return route + ":" + major
}

// Acquire blocks until the bucket for the route allows another request,
// or the context is cancelled. A new bucket permits a single request
// until response headers teach us its real limit.
func (rl *RateLimiter) Acquire(ctx context.Context, route, major string) error {
	for {
		now := time.Now()

		rl.mu.Lock()

		nextReset := rl.globalReset

		b, ok := rl.buckets[rl.bucketKey(route, major)]
		if !ok {
			b = &bucket{limit: 1, remaining: 1}
			rl.buckets[rl.bucketKey(route, major)] = b
		}

		if b.remaining <= 0 && b.reset.After(nextReset) {
			nextReset = b.reset
		}

		if !now.Before(nextReset) && b.remaining > 0 {
			b.remaining--

			rl.mu.Unlock()

			// The global limiter smooths requests out across all buckets.
			rl.globalLimiter.Lock()

			return nil
		}

		rl.mu.Unlock()

		if !now.Before(nextReset) {
			// Our window has reset without hearing back from discord.
			rl.mu.Lock()
			b.remaining = b.limit
			rl.mu.Unlock()

			continue
		}

		t := time.NewTimer(nextReset.Sub(now))

		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()

			return fmt.Errorf("waiting for rate limit: %w", ctx.Err())
		}
	}
}

// Update feeds response rate limit headers back into the bucket for the
// route. It returns the duration to wait before retrying, when the
// response was a 429.
func (rl *RateLimiter) Update(route, major string, resp *http.Response, body []byte) time.Duration {
	headers := resp.Header

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if hash := headers.Get(HeaderRateLimitBucket); hash != "" {
		if previous, ok := rl.hashes[route]; !ok || previous != hash {
			// Migrate state onto the discord issued hash.
			if b, ok := rl.buckets[route+":"+major]; ok {
				rl.buckets[hash+":"+major] = b

				delete(rl.buckets, route+":"+major)
			}

			rl.hashes[route] = hash
		}
	}

	b, ok := rl.buckets[rl.bucketKey(route, major)]
	if !ok {
		b = &bucket{limit: 1, remaining: 1}
		rl.buckets[rl.bucketKey(route, major)] = b
	}

	if limit, err := strconv.ParseInt(headers.Get(HeaderRateLimitLimit), 10, 32); err == nil {
		b.limit = int32(limit)
	}

	if remaining, err := strconv.ParseInt(headers.Get(HeaderRateLimitRemaining), 10, 32); err == nil {
		b.remaining = int32(remaining)
	}

	// Reset-After is relative, making us immune to clock skew between
	// us and discord.
	if resetAfter, err := strconv.ParseFloat(headers.Get(HeaderRateLimitResetAfter), 64); err == nil {
		b.reset = time.Now().Add(time.Duration(resetAfter * float64(time.Second)))
	}

	if resp.StatusCode != http.StatusTooManyRequests {
		return 0
	}

	var tooManyRequests TooManyRequests

	retryAfter := time.Duration(0)

	if err := Unmarshal(body, &tooManyRequests); err == nil && tooManyRequests.RetryAfter > 0 {
		retryAfter = time.Duration(tooManyRequests.RetryAfter * float64(time.Second))
	} else if headerRetry, err := strconv.ParseFloat(headers.Get(HeaderRetryAfter), 64); err == nil {
		retryAfter = time.Duration(headerRetry * float64(time.Second))
	}

	if headers.Get(HeaderRateLimitGlobal) != "" || tooManyRequests.Global {
		rl.globalReset = time.Now().Add(retryAfter)
	} else {
		b.remaining = 0
		b.reset = time.Now().Add(retryAfter)
	}

	return retryAfter
}

// LimitedInterface routes requests to discord whilst honouring its rate
// limit buckets. Requests block until their bucket allows them through
// and are retried a bounded number of times when a 429 slips through.
type LimitedInterface struct {
	HTTP       *http.Client
	Limiter    *RateLimiter
	APIVersion string
	URLHost    string
	URLScheme  string
	UserAgent  string

	Debug bool
}

func NewLimitedInterface() RESTInterface {
	url, _ := url.Parse(EndpointDiscord)

	return &LimitedInterface{
		HTTP: &http.Client{
			Timeout: 20 * time.Second,
		},
		Limiter:    NewRateLimiter(),
		APIVersion: APIVersion,
		URLHost:    url.Host,
		URLScheme:  url.Scheme,
		UserAgent:  UserAgent,
	}
}

func (li *LimitedInterface) Fetch(ctx context.Context, session *Session, method, endpoint, contentType string, body []byte, headers http.Header) ([]byte, error) {
	route, major := ParseRoute(method, endpoint)

	for try := 0; try <= MaxRateLimitRetries; try++ {
		err := li.Limiter.Acquire(ctx, route, major)
		if err != nil {
			return nil, err
		}

		// The body buffer is consumed per attempt, build a fresh request.
		req, err := buildRequest(ctx, session, method, endpoint, contentType, body, headers, li.URLHost, li.URLScheme, li.APIVersion, li.UserAgent)
		if err != nil {
			return nil, err
		}

		resp, err := li.HTTP.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to do request: %w", err)
		}

		response, err := io.ReadAll(resp.Body)

		resp.Body.Close()

		if err != nil {
			return nil, fmt.Errorf("failed to read body: %w", err)
		}

		retryAfter := li.Limiter.Update(route, major, resp, response)

		if li.Debug {
			println(method, req.URL.String(), resp.StatusCode, contentType, string(body), string(response))
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			t := time.NewTimer(retryAfter)

			select {
			case <-t.C:
				continue
			case <-ctx.Done():
				t.Stop()

				return nil, fmt.Errorf("waiting for rate limit: %w", ctx.Err())
			}
		}

		return checkResponse(req, resp, body, response)
	}

	return nil, ErrRateLimited
}

func (li *LimitedInterface) FetchBJ(ctx context.Context, session *Session, method, endpoint, contentType string, body []byte, headers http.Header, response interface{}) error {
	return fetchBJ(ctx, li, session, method, endpoint, contentType, body, headers, response)
}

func (li *LimitedInterface) FetchJJ(ctx context.Context, session *Session, method, endpoint string, payload interface{}, headers http.Header, response interface{}) error {
	return fetchJJ(ctx, li, session, method, endpoint, payload, headers, response)
}

func (li *LimitedInterface) SetDebug(value bool) {
	li.Debug = value
}
