package pollinations

import "errors"

const upstreamFailureText = "Failed to fetch image from Pollinations."

// UpstreamError is a non-200 answer from the endpoint. The status is kept
// for logging only; the user-facing text is always the same.
type UpstreamError struct {
    StatusCode int
}

func (e *UpstreamError) Error() string {
    return upstreamFailureText
}

// TransportError covers network failures, timeouts and bodies that do not
// decode as an image.
type TransportError struct {
    Err error
}

func (e *TransportError) Error() string {
    return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
    return e.Err
}

// FailureMessage is the text shown to the user for a failed generation.
func FailureMessage(err error) string {
    if err == nil {
        return ""
    }
    return "Error: " + err.Error()
}

// IsUpstream reports whether err came from a non-200 response.
func IsUpstream(err error) bool {
    var ue *UpstreamError
    return errors.As(err, &ue)
}
