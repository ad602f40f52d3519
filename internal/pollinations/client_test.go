package pollinations

import (
    "bytes"
    "context"
    "errors"
    "image"
    "image/color"
    "image/png"
    "net"
    "net/http"
    "net/http/httptest"
    "net/url"
    "strings"
    "sync/atomic"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func testPNG(t *testing.T) []byte {
    t.Helper()
    img := image.NewRGBA(image.Rect(0, 0, 8, 6))
    img.Set(1, 1, color.RGBA{0, 0, 255, 255})
    buf := new(bytes.Buffer)
    require.NoError(t, png.Encode(buf, img))
    return buf.Bytes()
}

// upstream records every request URI it sees and answers with handler.
type upstream struct {
    srv     *httptest.Server
    hits    atomic.Int32
    lastURI atomic.Value
}

func newUpstream(t *testing.T, handler http.HandlerFunc) *upstream {
    t.Helper()
    u := &upstream{}
    u.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        u.hits.Add(1)
        u.lastURI.Store(r.RequestURI)
        handler(w, r)
    }))
    t.Cleanup(u.srv.Close)
    return u
}

func (u *upstream) client(opts ...Option) *Client {
    return NewClient(append([]Option{WithBaseURL(u.srv.URL + "/prompt/")}, opts...)...)
}

func TestNewClientDefaults(t *testing.T) {
    c := NewClient()
    assert.Equal(t, DefaultBaseURL, c.baseURL)
    assert.Equal(t, 10*time.Second, c.httpClient.Timeout)
    assert.Equal(t, "https://image.pollinations.ai/prompt/A%20cat%20wearing%20sunglasses", c.RequestURL("A cat wearing sunglasses"))
}

func TestWithBaseURLAddsSlash(t *testing.T) {
    c := NewClient(WithBaseURL("http://localhost:1234/prompt"))
    assert.Equal(t, "http://localhost:1234/prompt/x", c.RequestURL("x"))
}

func TestRequestURLRoundTrip(t *testing.T) {
    c := NewClient()
    prompts := []string{
        "A futuristic city skyline at sunset, cyberpunk style",
        "50% off / today?",
        "a+b=c & d#e",
        "日本の桜 🌸",
        "tabs\tand\nnewlines",
        "already%20encoded",
    }
    for _, p := range prompts {
        u := c.RequestURL(p)
        require.True(t, strings.HasPrefix(u, DefaultBaseURL))
        seg := strings.TrimPrefix(u, DefaultBaseURL)
        assert.NotContains(t, seg, "/", "prompt must stay one path segment: %q", p)
        got, err := url.PathUnescape(seg)
        require.NoError(t, err)
        assert.Equal(t, p, got)
    }
}

func TestGenerateSuccess(t *testing.T) {
    body := testPNG(t)
    up := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
        w.Header().Set("Content-Type", "image/png")
        _, _ = w.Write(body)
    })
    c := up.client()

    prompt := "A cat wearing sunglasses, surfing on a pizza"
    res, err := c.Generate(context.Background(), prompt)
    require.NoError(t, err)
    assert.Equal(t, c.RequestURL(prompt), res.URL)
    assert.Equal(t, 8, res.Image.Bounds().Dx())
    assert.Equal(t, 6, res.Image.Bounds().Dy())

    assert.EqualValues(t, 1, up.hits.Load())
    assert.Equal(t, "/prompt/"+url.PathEscape(prompt), up.lastURI.Load())
}

func TestGenerateNon200(t *testing.T) {
    for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusTooManyRequests} {
        up := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
            http.Error(w, "nope", status)
        })
        res, err := up.client().Generate(context.Background(), "castle")
        require.Error(t, err)
        assert.Nil(t, res)
        assert.True(t, IsUpstream(err))
        assert.Equal(t, "Error: Failed to fetch image from Pollinations.", FailureMessage(err))

        var ue *UpstreamError
        require.True(t, errors.As(err, &ue))
        assert.Equal(t, status, ue.StatusCode)
        assert.EqualValues(t, 1, up.hits.Load(), "no retries")
    }
}

func TestGenerateMalformedBody(t *testing.T) {
    up := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
        _, _ = w.Write([]byte("<html>rate limited</html>"))
    })
    _, err := up.client().Generate(context.Background(), "castle")
    require.Error(t, err)
    assert.False(t, IsUpstream(err))

    var te *TransportError
    require.True(t, errors.As(err, &te))
    assert.True(t, strings.HasPrefix(FailureMessage(err), "Error: "))
    assert.Equal(t, "Error: "+te.Err.Error(), FailureMessage(err))
}

func TestGenerateTimeout(t *testing.T) {
    up := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
        select {
        case <-r.Context().Done():
        case <-time.After(3 * time.Second):
        }
    })
    c := up.client(WithTimeout(100 * time.Millisecond))

    start := time.Now()
    _, err := c.Generate(context.Background(), "slow")
    elapsed := time.Since(start)

    require.Error(t, err)
    assert.Less(t, elapsed, 2*time.Second)

    var ne net.Error
    require.True(t, errors.As(err, &ne))
    assert.True(t, ne.Timeout())
    assert.Contains(t, FailureMessage(err), "Timeout")
    assert.EqualValues(t, 1, up.hits.Load())
}

func TestGenerateConnectionRefused(t *testing.T) {
    srv := httptest.NewServer(http.NotFoundHandler())
    base := srv.URL + "/prompt/"
    srv.Close()

    _, err := NewClient(WithBaseURL(base)).Generate(context.Background(), "x")
    require.Error(t, err)
    var te *TransportError
    assert.True(t, errors.As(err, &te))
}

func TestGenerateCanceledContext(t *testing.T) {
    body := testPNG(t)
    up := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
        _, _ = w.Write(body)
    })
    ctx, cancel := context.WithCancel(context.Background())
    cancel()
    _, err := up.client().Generate(ctx, "x")
    require.Error(t, err)
    assert.ErrorIs(t, err, context.Canceled)
}

func TestFailureMessageNil(t *testing.T) {
    assert.Equal(t, "", FailureMessage(nil))
}
