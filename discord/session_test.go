package discord_test

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/driftcord/driftcord/discord"
	"github.com/stretchr/testify/assert"
)

type recordedRequest struct {
	method      string
	path        string
	query       string
	auth        string
	reason      string
	contentType string
	body        []byte
}

func newRecordingServer(t *testing.T, status int, response string) (*httptest.Server, *recordedRequest) {
	t.Helper()

	recorded := &recordedRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		*recorded = recordedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			query:       r.URL.RawQuery,
			auth:        r.Header.Get("Authorization"),
			reason:      r.Header.Get(discord.AuditLogReasonHeader),
			contentType: r.Header.Get("Content-Type"),
			body:        body,
		}

		rw.Header().Set("Content-Type", "application/json")
		rw.WriteHeader(status)
		rw.Write([]byte(response))
	}))

	t.Cleanup(server.Close)

	return server, recorded
}

func newTestSession(serverURL string) *discord.Session {
	return discord.NewSession("Bot token", discord.NewInterface(&http.Client{
		Timeout: 5 * time.Second,
	}, serverURL, discord.APIVersion, discord.UserAgent))
}

func TestCreateMessagePostsJSON(t *testing.T) {
	t.Parallel()

	server, recorded := newRecordingServer(t, http.StatusOK, `{"id":"456","channel_id":"123"}`)

	session := newTestSession(server.URL)

	message, err := discord.CreateMessage(context.Background(), session, 123, discord.MessageParams{
		Content: "hello world",
	})
	assert.NoError(t, err)
	assert.Equal(t, discord.Snowflake(456), message.ID)

	assert.Equal(t, http.MethodPost, recorded.method)
	assert.Equal(t, "/api/v10/channels/123/messages", recorded.path)
	assert.Equal(t, "Bot token", recorded.auth)
	assert.Equal(t, "application/json", recorded.contentType)
	assert.Contains(t, string(recorded.body), `"content":"hello world"`)
}

func TestCreateMessageRejectsLongContent(t *testing.T) {
	t.Parallel()

	session := newTestSession("http://discord.invalid")

	_, err := discord.CreateMessage(context.Background(), session, 123, discord.MessageParams{
		Content: strings.Repeat("a", discord.MaxMessageContentLength+1),
	})
	assert.ErrorIs(t, err, discord.ErrContentTooLong)
}

func TestCreateMessageUploadsFiles(t *testing.T) {
	t.Parallel()

	server, recorded := newRecordingServer(t, http.StatusOK, `{"id":"456"}`)

	session := newTestSession(server.URL)

	_, err := discord.CreateMessage(context.Background(), session, 123, discord.MessageParams{
		Content: "attached",
		Files: []discord.File{
			{Reader: strings.NewReader("file contents"), Name: "hello.txt", ContentType: "text/plain"},
		},
	})
	assert.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(recorded.contentType)
	assert.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(strings.NewReader(string(recorded.body)), params["boundary"])

	part, err := reader.NextPart()
	assert.NoError(t, err)
	assert.Equal(t, "payload_json", part.FormName())

	payload, _ := io.ReadAll(part)
	assert.Contains(t, string(payload), `"content":"attached"`)

	part, err = reader.NextPart()
	assert.NoError(t, err)
	assert.Equal(t, "files[0]", part.FormName())
	assert.Equal(t, "hello.txt", part.FileName())

	contents, _ := io.ReadAll(part)
	assert.Equal(t, "file contents", string(contents))
}

func TestBulkDeleteMessagesBounds(t *testing.T) {
	t.Parallel()

	session := newTestSession("http://discord.invalid")

	err := discord.BulkDeleteMessages(context.Background(), session, 123, []discord.Snowflake{1}, nil)
	assert.ErrorIs(t, err, discord.ErrBulkDeleteBounds)

	tooMany := make([]discord.Snowflake, 101)
	err = discord.BulkDeleteMessages(context.Background(), session, 123, tooMany, nil)
	assert.ErrorIs(t, err, discord.ErrBulkDeleteBounds)
}

func TestGetGuildPruneCountBounds(t *testing.T) {
	t.Parallel()

	session := newTestSession("http://discord.invalid")

	_, err := discord.GetGuildPruneCount(context.Background(), session, 123, 0, nil)
	assert.ErrorIs(t, err, discord.ErrPruneDaysBounds)

	_, err = discord.GetGuildPruneCount(context.Background(), session, 123, 31, nil)
	assert.ErrorIs(t, err, discord.ErrPruneDaysBounds)
}

func TestAuditLogReasonHeader(t *testing.T) {
	t.Parallel()

	server, recorded := newRecordingServer(t, http.StatusNoContent, "")

	session := newTestSession(server.URL)

	reason := "spamming"

	err := discord.RemoveGuildMember(context.Background(), session, 123, 456, &reason)
	assert.NoError(t, err)

	assert.Equal(t, http.MethodDelete, recorded.method)
	assert.Equal(t, "/api/v10/guilds/123/members/456", recorded.path)
	assert.Equal(t, "spamming", recorded.reason)
}

func TestListGuildMembersQuery(t *testing.T) {
	t.Parallel()

	server, recorded := newRecordingServer(t, http.StatusOK, `[]`)

	session := newTestSession(server.URL)

	after := discord.Snowflake(789)

	_, err := discord.ListGuildMembers(context.Background(), session, 123, 50, &after)
	assert.NoError(t, err)

	assert.Equal(t, "/api/v10/guilds/123/members", recorded.path)
	assert.Equal(t, "after=789&limit=50", recorded.query)
}

func TestUnauthorizedResponse(t *testing.T) {
	t.Parallel()

	server, _ := newRecordingServer(t, http.StatusUnauthorized, `{"message":"401: Unauthorized","code":0}`)

	session := newTestSession(server.URL)

	_, err := discord.GetCurrentUser(context.Background(), session)
	assert.ErrorIs(t, err, discord.ErrUnauthorized)
}

func TestRestErrorResponse(t *testing.T) {
	t.Parallel()

	server, _ := newRecordingServer(t, http.StatusForbidden, `{"message":"Missing Permissions","code":50013}`)

	session := newTestSession(server.URL)

	_, err := discord.GetGuild(context.Background(), session, 123)
	assert.Error(t, err)

	var restErr *discord.RestError

	assert.ErrorAs(t, err, &restErr)
	assert.Equal(t, "Missing Permissions", restErr.Message.Message)
	assert.Equal(t, int32(50013), restErr.Message.Code)
}

func TestRestErrorUsesResponseBody(t *testing.T) {
	t.Parallel()

	server, _ := newRecordingServer(t, http.StatusForbidden, `{"message":"Missing Permissions","code":50013}`)

	session := newTestSession(server.URL)

	// A request with a payload must still surface the response body on
	// the error, not the payload it sent.
	_, err := discord.ModifyGuild(context.Background(), session, 123, discord.GuildParams{
		Name: "new name",
	}, nil)
	assert.Error(t, err)

	var restErr *discord.RestError

	assert.ErrorAs(t, err, &restErr)
	assert.Equal(t, "Missing Permissions", restErr.Message.Message)
	assert.Equal(t, int32(50013), restErr.Message.Code)
	assert.JSONEq(t, `{"message":"Missing Permissions","code":50013}`, string(restErr.ResponseBody))
}

func TestCreateGuild(t *testing.T) {
	t.Parallel()

	server, recorded := newRecordingServer(t, http.StatusCreated, `{"id":"123","name":"driftcord"}`)

	session := newTestSession(server.URL)

	guild, err := discord.CreateGuild(context.Background(), session, discord.GuildParams{
		Name: "driftcord",
	})
	assert.NoError(t, err)
	assert.Equal(t, discord.Snowflake(123), guild.ID)

	assert.Equal(t, http.MethodPost, recorded.method)
	assert.Equal(t, "/api/v10/guilds", recorded.path)
	assert.Contains(t, string(recorded.body), `"name":"driftcord"`)
}

func TestCreateGuildSticker(t *testing.T) {
	t.Parallel()

	server, recorded := newRecordingServer(t, http.StatusCreated, `{"id":"789","name":"wave"}`)

	session := newTestSession(server.URL)

	name := "wave"
	tags := "hello"

	sticker, err := discord.CreateGuildSticker(context.Background(), session, 123, discord.StickerParams{
		Name: &name,
		Tags: &tags,
	}, discord.File{
		Name:        "wave.png",
		ContentType: "image/png",
		Reader:      strings.NewReader("png bytes"),
	}, nil)
	assert.NoError(t, err)
	assert.Equal(t, discord.Snowflake(789), sticker.ID)

	assert.Equal(t, http.MethodPost, recorded.method)
	assert.Equal(t, "/api/v10/guilds/123/stickers", recorded.path)

	mediaType, mediaParams, err := mime.ParseMediaType(recorded.contentType)
	assert.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(strings.NewReader(string(recorded.body)), mediaParams["boundary"])

	form, err := reader.ReadForm(1 << 20)
	assert.NoError(t, err)

	assert.Equal(t, []string{"wave"}, form.Value["name"])
	assert.Equal(t, []string{"hello"}, form.Value["tags"])
	assert.Len(t, form.File["file"], 1)
	assert.Equal(t, "wave.png", form.File["file"][0].Filename)
}
