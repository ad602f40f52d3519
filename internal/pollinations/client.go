package pollinations

import (
    "context"
    "image"
    "net/http"
    "net/url"
    "strings"
    "time"

    imagepkg "github.com/youruser/imagegen/internal/image"
    "github.com/youruser/imagegen/internal/util"
)

const (
    DefaultBaseURL = "https://image.pollinations.ai/prompt/"
    DefaultTimeout = 10 * time.Second

    // generous upper bound for a single generated image
    maxBodyBytes = 32 << 20
)

// Result is a successfully fetched and decoded image.
type Result struct {
    Image image.Image
    URL   string
}

// Client fetches generated images from the Pollinations prompt endpoint.
// Each Generate call issues exactly one GET; there are no retries.
type Client struct {
    httpClient *http.Client
    baseURL    string
}

type Option func(*Client)

// WithBaseURL points the client at another prompt endpoint. The prompt is
// appended as the final path segment, so the value should end in '/'.
func WithBaseURL(u string) Option {
    return func(c *Client) {
        if !strings.HasSuffix(u, "/") {
            u += "/"
        }
        c.baseURL = u
    }
}

func WithTimeout(d time.Duration) Option {
    return func(c *Client) {
        c.httpClient = util.NewHTTPClient(d)
    }
}

// WithHTTPClient replaces the underlying client, timeout included.
func WithHTTPClient(hc *http.Client) Option {
    return func(c *Client) {
        c.httpClient = hc
    }
}

// NewClient creates a client with the public endpoint and a 10s timeout.
func NewClient(opts ...Option) *Client {
    c := &Client{
        httpClient: util.NewHTTPClient(DefaultTimeout),
        baseURL:    DefaultBaseURL,
    }
    for _, o := range opts {
        o(c)
    }
    return c
}

// RequestURL builds the GET URL for prompt.
func (c *Client) RequestURL(prompt string) string {
    return c.baseURL + url.PathEscape(prompt)
}

// Generate fetches the image for prompt. The caller is expected to have
// rejected blank prompts already. Failures are *UpstreamError for a
// non-200 status and *TransportError for everything else.
func (c *Client) Generate(ctx context.Context, prompt string) (*Result, error) {
    u := c.RequestURL(prompt)

    req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
    if err != nil {
        return nil, &TransportError{Err: err}
    }

    resp, err := c.httpClient.Do(req)
    if err != nil {
        return nil, &TransportError{Err: err}
    }
    defer resp.Body.Close()

    if resp.StatusCode != http.StatusOK {
        return nil, &UpstreamError{StatusCode: resp.StatusCode}
    }

    body, err := util.ReadLimited(resp.Body, maxBodyBytes)
    if err != nil {
        return nil, &TransportError{Err: err}
    }
    img, err := imagepkg.Decode(body)
    if err != nil {
        return nil, &TransportError{Err: err}
    }
    return &Result{Image: img, URL: u}, nil
}
