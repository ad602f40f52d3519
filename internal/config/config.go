package config

import (
    "errors"
    "fmt"
    "io/fs"
    "os"
    "strconv"
    "time"

    "github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
    Port               string
    BaseURL            string
    FetchTimeout       time.Duration
    SessionIdleTimeout time.Duration
    GalleryViewSize    int
    GalleryColumns     int
    ThumbnailSize      int
}

// Load reads envFile (if present) into the environment and then builds the
// configuration from environment variables. A missing env file is fine.
func Load(envFile string) (*Config, error) {
    if envFile == "" {
        envFile = ".env"
    }
    if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
        return nil, fmt.Errorf("error loading %s: %w", envFile, err)
    }

    cfg := &Config{
        Port:    getString("PORT", "8080"),
        BaseURL: getString("POLLINATIONS_BASE_URL", "https://image.pollinations.ai/prompt/"),
    }

    var err error
    if cfg.FetchTimeout, err = getSeconds("FETCH_TIMEOUT_SECONDS", 10); err != nil {
        return nil, err
    }
    idleMinutes, err := getInt("SESSION_IDLE_TIMEOUT_MINUTES", 30)
    if err != nil {
        return nil, err
    }
    cfg.SessionIdleTimeout = time.Duration(idleMinutes) * time.Minute
    if cfg.GalleryViewSize, err = getInt("GALLERY_VIEW_SIZE", 9); err != nil {
        return nil, err
    }
    if cfg.GalleryColumns, err = getInt("GALLERY_COLUMNS", 3); err != nil {
        return nil, err
    }
    if cfg.ThumbnailSize, err = getInt("THUMBNAIL_SIZE", 320); err != nil {
        return nil, err
    }

    if err := cfg.Validate(); err != nil {
        return nil, err
    }
    return cfg, nil
}

// Validate checks that every numeric setting is usable.
func (c *Config) Validate() error {
    if c.Port == "" {
        return fmt.Errorf("PORT is required")
    }
    if c.BaseURL == "" {
        return fmt.Errorf("POLLINATIONS_BASE_URL is required")
    }
    if c.FetchTimeout <= 0 {
        return fmt.Errorf("FETCH_TIMEOUT_SECONDS must be positive")
    }
    if c.SessionIdleTimeout <= 0 {
        return fmt.Errorf("SESSION_IDLE_TIMEOUT_MINUTES must be positive")
    }
    if c.GalleryViewSize <= 0 {
        return fmt.Errorf("GALLERY_VIEW_SIZE must be positive")
    }
    if c.GalleryColumns <= 0 {
        return fmt.Errorf("GALLERY_COLUMNS must be positive")
    }
    if c.ThumbnailSize <= 0 {
        return fmt.Errorf("THUMBNAIL_SIZE must be positive")
    }
    return nil
}

// Addr is the listen address for the web server.
func (c *Config) Addr() string {
    return ":" + c.Port
}

func getString(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func getInt(key string, def int) (int, error) {
    v := os.Getenv(key)
    if v == "" {
        return def, nil
    }
    n, err := strconv.Atoi(v)
    if err != nil {
        return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
    }
    return n, nil
}

func getSeconds(key string, def int) (time.Duration, error) {
    n, err := getInt(key, def)
    if err != nil {
        return 0, err
    }
    return time.Duration(n) * time.Second, nil
}
