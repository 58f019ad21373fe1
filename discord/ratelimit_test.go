package discord_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/driftcord/driftcord/discord"
	"github.com/stretchr/testify/assert"
)

func TestParseRoute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method   string
		endpoint string
		route    string
		major    string
	}{
		{
			method:   http.MethodGet,
			endpoint: "/channels/175928847299117063/messages/215479185209995265",
			route:    "GET /channels/{id}/messages/{id}",
			major:    "175928847299117063",
		},
		{
			method:   http.MethodGet,
			endpoint: "/guilds/41771983423143937/members?limit=100",
			route:    "GET /guilds/{id}/members",
			major:    "41771983423143937",
		},
		{
			method:   http.MethodPost,
			endpoint: "/webhooks/223704706495545344/3d89bb7572e0fb30d8128367b3b1b44fecd1726de135cbe28a41f8b2f777c372",
			route:    "POST /webhooks/{id}/{token}",
			major:    "223704706495545344/3d89bb7572e0fb30d8128367b3b1b44fecd1726de135cbe28a41f8b2f777c372",
		},
		{
			method:   http.MethodDelete,
			endpoint: "/channels/175928847299117063/messages/215479185209995265/reactions/%F0%9F%98%84/@me",
			route:    "DELETE /channels/{id}/messages/{id}/reactions",
			major:    "175928847299117063",
		},
		{
			method:   http.MethodGet,
			endpoint: "/users/@me",
			route:    "GET /users/@me",
			major:    "",
		},
		{
			method:   http.MethodGet,
			endpoint: "/users/175928847299117063",
			route:    "GET /users/{id}",
			major:    "",
		},
		{
			method:   http.MethodGet,
			endpoint: "/gateway/bot",
			route:    "GET /gateway/bot",
			major:    "",
		},
	}

	for _, test := range tests {
		route, major := discord.ParseRoute(test.method, test.endpoint)
		assert.Equal(t, test.route, route, test.endpoint)
		assert.Equal(t, test.major, major, test.endpoint)
	}
}

func TestParseRouteSeparatesMajorParameters(t *testing.T) {
	t.Parallel()

	routeA, majorA := discord.ParseRoute(http.MethodGet, "/channels/1/messages")
	routeB, majorB := discord.ParseRoute(http.MethodGet, "/channels/2/messages")

	assert.Equal(t, routeA, routeB)
	assert.NotEqual(t, majorA, majorB)
}

func rateLimitResponse(limit, remaining int, resetAfter string, bucketHash string) *http.Response {
	headers := http.Header{}
	headers.Set(discord.HeaderRateLimitLimit, strconv.Itoa(limit))
	headers.Set(discord.HeaderRateLimitRemaining, strconv.Itoa(remaining))
	headers.Set(discord.HeaderRateLimitResetAfter, resetAfter)

	if bucketHash != "" {
		headers.Set(discord.HeaderRateLimitBucket, bucketHash)
	}

	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     headers,
	}
}

func TestRateLimiterBlocksOnExhaustedBucket(t *testing.T) {
	t.Parallel()

	rl := discord.NewRateLimiter()
	ctx := context.Background()

	route, major := discord.ParseRoute(http.MethodGet, "/channels/1/messages")

	assert.NoError(t, rl.Acquire(ctx, route, major))

	rl.Update(route, major, rateLimitResponse(5, 0, "0.1", "abcd1234"), nil)

	start := time.Now()

	assert.NoError(t, rl.Acquire(ctx, route, major))
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}

func TestRateLimiterSharesBucketHash(t *testing.T) {
	t.Parallel()

	rl := discord.NewRateLimiter()
	ctx := context.Background()

	routeA, major := discord.ParseRoute(http.MethodGet, "/channels/1/messages")
	routeB, _ := discord.ParseRoute(http.MethodPost, "/channels/1/messages")

	assert.NoError(t, rl.Acquire(ctx, routeA, major))
	assert.NoError(t, rl.Acquire(ctx, routeB, major))

	// Both routes report the same bucket hash, so the exhaustion on
	// routeA must carry over to routeB.
	rl.Update(routeA, major, rateLimitResponse(5, 0, "0.1", "shared"), nil)
	rl.Update(routeB, major, rateLimitResponse(5, 0, "0.1", "shared"), nil)

	start := time.Now()

	assert.NoError(t, rl.Acquire(ctx, routeB, major))
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}

func TestRateLimiterGlobalLockout(t *testing.T) {
	t.Parallel()

	rl := discord.NewRateLimiter()
	ctx := context.Background()

	route, major := discord.ParseRoute(http.MethodGet, "/channels/1/messages")

	headers := http.Header{}
	headers.Set(discord.HeaderRateLimitGlobal, "true")

	resp := &http.Response{
		StatusCode: http.StatusTooManyRequests,
		Header:     headers,
	}

	retryAfter := rl.Update(route, major, resp, []byte(`{"message":"You are being rate limited.","retry_after":0.1,"global":true}`))
	assert.Equal(t, 100*time.Millisecond, retryAfter)

	// An unrelated route is also held back by the global lockout.
	otherRoute, otherMajor := discord.ParseRoute(http.MethodGet, "/guilds/2")

	start := time.Now()

	assert.NoError(t, rl.Acquire(ctx, otherRoute, otherMajor))
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}

func TestRateLimiterAcquireContextCancel(t *testing.T) {
	t.Parallel()

	rl := discord.NewRateLimiter()

	route, major := discord.ParseRoute(http.MethodGet, "/channels/1/messages")

	assert.NoError(t, rl.Acquire(context.Background(), route, major))

	rl.Update(route, major, rateLimitResponse(5, 0, "5", ""), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := rl.Acquire(ctx, route, major)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func newTestInterface(serverURL string) *discord.LimitedInterface {
	parsed, _ := url.Parse(serverURL)

	return &discord.LimitedInterface{
		HTTP:       &http.Client{Timeout: 5 * time.Second},
		Limiter:    discord.NewRateLimiter(),
		APIVersion: discord.APIVersion,
		URLHost:    parsed.Host,
		URLScheme:  parsed.Scheme,
		UserAgent:  discord.UserAgent,
	}
}

func TestLimitedInterfaceRetriesAfter429(t *testing.T) {
	t.Parallel()

	var requests int64

	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&requests, 1) == 1 {
			rw.Header().Set("Content-Type", "application/json")
			rw.WriteHeader(http.StatusTooManyRequests)
			rw.Write([]byte(`{"message":"You are being rate limited.","retry_after":0.05,"global":false}`))

			return
		}

		rw.Header().Set("Content-Type", "application/json")
		rw.Write([]byte(`{"id":"123","type":0}`))
	}))
	defer server.Close()

	session := discord.NewSession("Bot token", newTestInterface(server.URL))

	channel, err := discord.GetChannel(context.Background(), session, 123)
	assert.NoError(t, err)
	assert.Equal(t, discord.Snowflake(123), channel.ID)
	assert.Equal(t, int64(2), atomic.LoadInt64(&requests))
}

func TestLimitedInterfaceGivesUpAfterRetries(t *testing.T) {
	t.Parallel()

	var requests int64

	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)

		rw.Header().Set("Content-Type", "application/json")
		rw.WriteHeader(http.StatusTooManyRequests)
		rw.Write([]byte(`{"message":"You are being rate limited.","retry_after":0.01,"global":false}`))
	}))
	defer server.Close()

	session := discord.NewSession("Bot token", newTestInterface(server.URL))

	_, err := discord.GetChannel(context.Background(), session, 123)
	assert.ErrorIs(t, err, discord.ErrRateLimited)
	assert.Equal(t, int64(discord.MaxRateLimitRetries+1), atomic.LoadInt64(&requests))
}

func TestLimitedInterfaceHonoursBucketHeaders(t *testing.T) {
	t.Parallel()

	var requests int64

	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)

		rw.Header().Set(discord.HeaderRateLimitLimit, "2")
		rw.Header().Set(discord.HeaderRateLimitRemaining, "0")
		rw.Header().Set(discord.HeaderRateLimitResetAfter, "0.1")
		rw.Header().Set(discord.HeaderRateLimitBucket, "abcd1234")
		rw.Header().Set("Content-Type", "application/json")
		rw.Write([]byte(`{"id":"123","type":0}`))
	}))
	defer server.Close()

	session := discord.NewSession("Bot token", newTestInterface(server.URL))

	_, err := discord.GetChannel(context.Background(), session, 123)
	assert.NoError(t, err)

	// The bucket is exhausted, the second request must wait for the
	// advertised reset.
	start := time.Now()

	_, err = discord.GetChannel(context.Background(), session, 123)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	assert.Equal(t, int64(2), atomic.LoadInt64(&requests))
}
