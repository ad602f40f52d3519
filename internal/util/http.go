package util

import (
    "fmt"
    "io"
    "net/http"
    "time"
)

// NewHTTPClient returns a client whose whole request, body read included,
// is bounded by timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
    return &http.Client{Timeout: timeout}
}

// ReadLimited reads r fully but fails once more than limit bytes arrive.
func ReadLimited(r io.Reader, limit int64) ([]byte, error) {
    b, err := io.ReadAll(io.LimitReader(r, limit+1))
    if err != nil {
        return nil, err
    }
    if int64(len(b)) > limit {
        return nil, fmt.Errorf("response body exceeds %d bytes", limit)
    }
    return b, nil
}
