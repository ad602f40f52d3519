package config

import (
    "os"
    "path/filepath"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

var keys = []string{
    "PORT", "POLLINATIONS_BASE_URL", "FETCH_TIMEOUT_SECONDS",
    "SESSION_IDLE_TIMEOUT_MINUTES", "GALLERY_VIEW_SIZE", "GALLERY_COLUMNS", "THUMBNAIL_SIZE",
}

// clearEnv unsets every key; t.Setenv restores the originals afterwards,
// including anything godotenv wrote.
func clearEnv(t *testing.T) {
    t.Helper()
    for _, k := range keys {
        t.Setenv(k, "")
        require.NoError(t, os.Unsetenv(k))
    }
}

func TestLoadDefaults(t *testing.T) {
    clearEnv(t)
    cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
    require.NoError(t, err)

    assert.Equal(t, "8080", cfg.Port)
    assert.Equal(t, ":8080", cfg.Addr())
    assert.Equal(t, "https://image.pollinations.ai/prompt/", cfg.BaseURL)
    assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
    assert.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
    assert.Equal(t, 9, cfg.GalleryViewSize)
    assert.Equal(t, 3, cfg.GalleryColumns)
    assert.Equal(t, 320, cfg.ThumbnailSize)
}

func TestLoadFromEnvFile(t *testing.T) {
    clearEnv(t)
    path := filepath.Join(t.TempDir(), "test.env")
    require.NoError(t, os.WriteFile(path, []byte("PORT=9090\nFETCH_TIMEOUT_SECONDS=3\nGALLERY_VIEW_SIZE=6\n"), 0o600))

    cfg, err := Load(path)
    require.NoError(t, err)
    assert.Equal(t, "9090", cfg.Port)
    assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
    assert.Equal(t, 6, cfg.GalleryViewSize)
}

func TestEnvironmentWinsOverEnvFile(t *testing.T) {
    clearEnv(t)
    t.Setenv("PORT", "7070")
    path := filepath.Join(t.TempDir(), "test.env")
    require.NoError(t, os.WriteFile(path, []byte("PORT=9090\n"), 0o600))

    cfg, err := Load(path)
    require.NoError(t, err)
    assert.Equal(t, "7070", cfg.Port)
}

func TestLoadRejectsBadValues(t *testing.T) {
    cases := map[string]string{
        "FETCH_TIMEOUT_SECONDS": "soon",
        "GALLERY_VIEW_SIZE":     "0",
        "THUMBNAIL_SIZE":        "-5",
        "GALLERY_COLUMNS":       "three",
    }
    for key, val := range cases {
        t.Run(key, func(t *testing.T) {
            clearEnv(t)
            t.Setenv(key, val)
            _, err := Load(filepath.Join(t.TempDir(), "missing.env"))
            assert.Error(t, err)
        })
    }
}
