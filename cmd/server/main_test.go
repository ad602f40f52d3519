package main

import (
    "bytes"
    "context"
    "image"
    "image/png"
    "net/http"
    "net/http/httptest"
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestGenerateCommandWritesPNG(t *testing.T) {
    buf := new(bytes.Buffer)
    require.NoError(t, png.Encode(buf, image.NewRGBA(image.Rect(0, 0, 5, 5))))
    body := buf.Bytes()
    upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        _, _ = w.Write(body)
    }))
    defer upstream.Close()

    t.Setenv("POLLINATIONS_BASE_URL", upstream.URL+"/prompt/")
    out := filepath.Join(t.TempDir(), "nested", "fox.png")

    cmd := newRootCmd()
    stdout := new(bytes.Buffer)
    cmd.SetOut(stdout)
    cmd.SetArgs([]string{"generate", "--env-file", filepath.Join(t.TempDir(), "none.env"), "-o", out, "a", "red", "fox"})
    require.NoError(t, cmd.ExecuteContext(context.Background()))

    f, err := os.Open(out)
    require.NoError(t, err)
    defer f.Close()
    img, err := png.Decode(f)
    require.NoError(t, err)
    assert.Equal(t, 5, img.Bounds().Dx())
    assert.Contains(t, stdout.String(), "/prompt/a%20red%20fox")
}

func TestGenerateCommandRejectsBlank(t *testing.T) {
    cmd := newRootCmd()
    cmd.SetOut(new(bytes.Buffer))
    cmd.SetErr(new(bytes.Buffer))
    cmd.SetArgs([]string{"generate", "--env-file", filepath.Join(t.TempDir(), "none.env"), "  "})
    err := cmd.ExecuteContext(context.Background())
    require.Error(t, err)
    assert.Contains(t, err.Error(), "Please enter a prompt")
}
