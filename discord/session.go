package discord

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	APIVersion      = "v10"
	EndpointDiscord = "https://discord.com/api"
	UserAgent       = "Driftcord (github.com/driftcord/driftcord)"
)

type RESTInterface interface {
	// Fetch constructs and executes a request. It returns the response body
	// along with any errors. Errors can include ErrUnauthorized,
	// ErrRateLimited and *RestError.
	Fetch(ctx context.Context, s *Session, method, endpoint, contentType string, body []byte, headers http.Header) ([]byte, error)
	FetchBJ(ctx context.Context, s *Session, method, endpoint, contentType string, body []byte, headers http.Header, response interface{}) error
	FetchJJ(ctx context.Context, s *Session, method, endpoint string, payload interface{}, headers http.Header, response interface{}) error

	SetDebug(value bool)
}

// Session contains the context for the discord rest interface.
type Session struct {
	Interface RESTInterface
	Token     string
}

func NewSession(token string, httpInterface RESTInterface) *Session {
	return &Session{
		Token:     token,
		Interface: httpInterface,
	}
}

// buildRequest builds a request against a discord-like API host. The
// endpoint may include a raw query.
func buildRequest(ctx context.Context, session *Session, method, endpoint, contentType string, body []byte, headers http.Header, urlHost, urlScheme, apiVersion, userAgent string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create new request: %w", err)
	}

	req.URL.Host = urlHost
	req.URL.Scheme = urlScheme

	if strings.Contains(endpoint, "?") {
		req.URL.RawQuery = strings.SplitN(endpoint, "?", 2)[1]
		endpoint = strings.SplitN(endpoint, "?", 2)[0]
	}

	if apiVersion != "" && !strings.HasPrefix(req.URL.Path, "/api") {
		req.URL.Path = "/api/" + apiVersion + endpoint
	}

	for name, values := range headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	if body != nil && len(req.Header.Get("Content-Type")) == 0 {
		req.Header.Set("Content-Type", contentType)
	}

	if session.Token != "" {
		req.Header.Set("Authorization", session.Token)
	}

	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", userAgent)
	}

	req.Header.Set("Accept", "application/json")

	return req, nil
}

// checkResponse maps response status codes onto errors. The response
// body is returned regardless.
func checkResponse(req *http.Request, resp *http.Response, body, response []byte) ([]byte, error) {
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusCreated:
	case http.StatusNoContent:
	case http.StatusUnauthorized:
		return response, ErrUnauthorized
	default:
		return response, NewRestError(req, resp, response)
	}

	return response, nil
}

// BaseInterface is the default HTTP Interface and simply handles routing
// to discord. Careful, this does not handle rate limiting.
type BaseInterface struct {
	HTTP       *http.Client
	APIVersion string
	URLHost    string
	URLScheme  string
	UserAgent  string

	Debug bool
}

func NewBaseInterface() RESTInterface {
	return NewInterface(&http.Client{
		Timeout: 20 * time.Second,
	}, EndpointDiscord, APIVersion, UserAgent)
}

func NewInterface(httpClient *http.Client, endpoint, version, useragent string) RESTInterface {
	url, _ := url.Parse(endpoint)

	return &BaseInterface{
		HTTP:       httpClient,
		APIVersion: version,
		URLHost:    url.Host,
		URLScheme:  url.Scheme,
		UserAgent:  useragent,
	}
}

func (bi *BaseInterface) Fetch(ctx context.Context, session *Session, method, endpoint, contentType string, body []byte, headers http.Header) ([]byte, error) {
	req, err := buildRequest(ctx, session, method, endpoint, contentType, body, headers, bi.URLHost, bi.URLScheme, bi.APIVersion, bi.UserAgent)
	if err != nil {
		return nil, err
	}

	resp, err := bi.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}

	defer resp.Body.Close()

	response, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	if bi.Debug {
		println(method, req.URL.String(), resp.StatusCode, contentType, string(body), string(response))
	}

	return checkResponse(req, resp, body, response)
}

func (bi *BaseInterface) FetchBJ(ctx context.Context, session *Session, method, endpoint, contentType string, body []byte, headers http.Header, response interface{}) error {
	return fetchBJ(ctx, bi, session, method, endpoint, contentType, body, headers, response)
}

func (bi *BaseInterface) FetchJJ(ctx context.Context, session *Session, method, endpoint string, payload interface{}, headers http.Header, response interface{}) error {
	return fetchJJ(ctx, bi, session, method, endpoint, payload, headers, response)
}

func (bi *BaseInterface) SetDebug(value bool) {
	bi.Debug = value
}

// ProxyInterface sends requests through a ratelimit handling proxy,
// instead of directly to discord, for distributed requests. See more at:
// https://github.com/twilight-rs/http-proxy
type ProxyInterface struct {
	HTTP       *http.Client
	APIVersion string
	URLHost    string
	URLScheme  string
	UserAgent  string

	Debug bool
}

func NewProxyInterface(url url.URL) RESTInterface {
	return &ProxyInterface{
		HTTP: &http.Client{
			Timeout: 20 * time.Second,
		},
		APIVersion: APIVersion,
		URLHost:    url.Host,
		URLScheme:  url.Scheme,
		UserAgent:  UserAgent,
	}
}

func (pi *ProxyInterface) Fetch(ctx context.Context, session *Session, method, endpoint, contentType string, body []byte, headers http.Header) ([]byte, error) {
	req, err := buildRequest(ctx, session, method, endpoint, contentType, body, headers, pi.URLHost, pi.URLScheme, pi.APIVersion, pi.UserAgent)
	if err != nil {
		return nil, err
	}

	resp, err := pi.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}

	defer resp.Body.Close()

	response, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	if pi.Debug {
		println(method, req.URL.String(), resp.StatusCode, contentType, string(body), string(response))
	}

	return checkResponse(req, resp, body, response)
}

func (pi *ProxyInterface) FetchBJ(ctx context.Context, session *Session, method, endpoint, contentType string, body []byte, headers http.Header, response interface{}) error {
	return fetchBJ(ctx, pi, session, method, endpoint, contentType, body, headers, response)
}

func (pi *ProxyInterface) FetchJJ(ctx context.Context, session *Session, method, endpoint string, payload interface{}, headers http.Header, response interface{}) error {
	return fetchJJ(ctx, pi, session, method, endpoint, payload, headers, response)
}

func (pi *ProxyInterface) SetDebug(value bool) {
	pi.Debug = value
}

func fetchBJ(ctx context.Context, i RESTInterface, session *Session, method, endpoint, contentType string, body []byte, headers http.Header, response interface{}) error {
	resp, err := i.Fetch(ctx, session, method, endpoint, contentType, body, headers)
	if err != nil {
		return err
	}

	if response != nil {
		err = Unmarshal(resp, response)
		if err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

func fetchJJ(ctx context.Context, i RESTInterface, session *Session, method, endpoint string, payload interface{}, headers http.Header, response interface{}) error {
	var body []byte

	var err error

	if payload != nil {
		body, err = Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
	} else {
		body = make([]byte, 0)
	}

	return i.FetchBJ(ctx, session, method, endpoint, "application/json", body, headers, response)
}
