package mailgun

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultTimeout bounds a whole request when no HTTP client is supplied.
const defaultTimeout = 30 * time.Second

// apiUser is the fixed basic-auth username of the API.
const apiUser = "api"

// Client talks to the Mailgun API for one sending domain.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	apiKey          string
	endpoint        string
	storageEndpoint string
	domain          string
	httpClient      *http.Client
	logger          *slog.Logger
}

// StatusRecorder is implemented by result types that want the HTTP status
// of the reply they are decoded from. The built-in response types embed
// Response, which implements it.
type StatusRecorder interface {
	SetStatusCode(code int)
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
}

// WithHTTPClient replaces the HTTP client used for every call. Transport
// level settings (proxies, TLS, connection pooling) belong there.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		if hc != nil {
			o.httpClient = hc
		}
	}
}

// WithTimeout sets the overall per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithLogger sets the logger for request tracing. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates a Client. endpoint is an API host such as EndpointUS or
// EndpointEU; the storage host is derived from it once, here.
func New(apiKey, endpoint, domain string, opts ...Option) *Client {
	o := clientOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	hc := o.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	if o.timeout > 0 {
		// Copy so a caller-owned client is left untouched.
		c := *hc
		c.Timeout = o.timeout
		hc = &c
	}

	return &Client{
		apiKey:          apiKey,
		endpoint:        endpoint,
		storageEndpoint: StorageEndpoint(endpoint),
		domain:          domain,
		httpClient:      hc,
		logger:          o.logger,
	}
}

// Endpoint returns the API host.
func (c *Client) Endpoint() string { return c.endpoint }

// StorageEndpoint returns the derived stored-message host.
func (c *Client) StorageEndpoint() string { return c.storageEndpoint }

// Domain returns the sending domain.
func (c *Client) Domain() string { return c.domain }

// SendEmail posts msg to the messages endpoint and decodes the response
// into out, typically a *SendResponse.
func (c *Client) SendEmail(ctx context.Context, msg OutboundEmail, out any) error {
	u := c.url(c.endpoint, "/v3/"+c.domain+"/messages")
	return c.do(ctx, http.MethodPost, u, buildSendForm(msg), "", out)
}

// GetAllEvents fetches the first page of the domain event log into out,
// typically an *EventsPage. It does not follow pagination.
func (c *Client) GetAllEvents(ctx context.Context, out any) error {
	u := c.url(c.endpoint, "/v3/"+c.domain+"/events")
	return c.do(ctx, http.MethodGet, u, nil, "", out)
}

// GetMessageByID fetches a stored message into out, typically a
// *StoredMessage. id is the Storage.Key of an event Item.
func (c *Client) GetMessageByID(ctx context.Context, id string, out any) error {
	if id == "" {
		return ErrMissingMessageID
	}
	return c.do(ctx, http.MethodGet, c.storedMessageURL(id), nil, "", out)
}

// GetMessageMIME fetches a stored message in raw MIME form into out,
// typically a *StoredMIME.
func (c *Client) GetMessageMIME(ctx context.Context, id string, out any) error {
	if id == "" {
		return ErrMissingMessageID
	}
	return c.do(ctx, http.MethodGet, c.storedMessageURL(id), nil, "message/rfc2822", out)
}

// GetPage fetches one of the cursor URLs of a Paging record into out.
// Only URLs on the client's own hosts are accepted, so the API key is never
// sent elsewhere.
func (c *Client) GetPage(ctx context.Context, pageURL string, out any) error {
	u, err := url.Parse(pageURL)
	if err != nil {
		return fmt.Errorf("parsing page url: %w", err)
	}
	if u.Scheme != "https" ||
		!(strings.EqualFold(u.Host, c.endpoint) || strings.EqualFold(u.Host, c.storageEndpoint)) {
		return ErrForeignPageURL
	}
	u.User = url.UserPassword(apiUser, c.apiKey)
	return c.do(ctx, http.MethodGet, u, nil, "", out)
}

func (c *Client) storedMessageURL(id string) *url.URL {
	return c.url(c.storageEndpoint, "/v3/domains/"+c.domain+"/messages/"+id)
}

// url builds an https URL carrying the basic-auth credentials.
func (c *Client) url(host, path string) *url.URL {
	return &url.URL{
		Scheme: "https",
		User:   url.UserPassword(apiUser, c.apiKey),
		Host:   host,
		Path:   path,
	}
}

// do performs a single request and decodes the body into out. There are no
// retries; the first failure is returned. A body that decodes is a success
// whatever the status; out learns the status through StatusRecorder.
func (c *Client) do(
	ctx context.Context,
	method string,
	u *url.URL,
	form url.Values,
	accept string,
	out any,
) error {
	redacted := u.Redacted()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return &TransportError{Method: method, URL: redacted, Err: err}
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if accept == "" {
		accept = "application/json"
	}
	req.Header.Set("Accept", accept)

	c.logger.Debug("sending mailgun request",
		"method", method,
		"url", redacted,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Method: method, URL: redacted, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{
			Method: method,
			URL:    redacted,
			Err:    fmt.Errorf("reading response body: %w", err),
		}
	}

	c.logger.Debug("received mailgun response",
		"method", method,
		"url", redacted,
		"status", resp.StatusCode,
		"bytes", len(data),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Warn("mailgun returned an error status",
			"method", method,
			"url", redacted,
			"status", resp.StatusCode,
		)
	}

	if sr, ok := out.(StatusRecorder); ok {
		sr.SetStatusCode(resp.StatusCode)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{StatusCode: resp.StatusCode, Err: err}
	}

	return nil
}
