package session

import (
    "sync"
    "time"

    "github.com/google/uuid"
    "github.com/youruser/imagegen/internal/gallery"
)

// Flash is what the next page render shows once: the image just
// generated, or a warning/error message.
type Flash struct {
    Latest  *gallery.Entry
    Warning string
    Error   string
}

func (f Flash) Empty() bool {
    return f.Latest == nil && f.Warning == "" && f.Error == ""
}

// Session is one browser's state: its gallery, the prompt field value and
// the pending flash. It lives until the manager sweeps it.
type Session struct {
    ID      string
    Gallery *gallery.Gallery

    turn sync.Mutex // one generate action at a time

    mu       sync.Mutex
    prompt   string
    flash    Flash
    lastSeen time.Time
}

func newSession(viewSize int, now time.Time) *Session {
    return &Session{
        ID:       uuid.NewString(),
        Gallery:  gallery.New(viewSize),
        lastSeen: now,
    }
}

// Exclusive runs fn while holding the session's turn, so two submissions
// from the same session never interleave.
func (s *Session) Exclusive(fn func()) {
    s.turn.Lock()
    defer s.turn.Unlock()
    fn()
}

func (s *Session) PromptInput() string {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.prompt
}

func (s *Session) SetPromptInput(p string) {
    s.mu.Lock()
    s.prompt = p
    s.mu.Unlock()
}

func (s *Session) SetFlash(f Flash) {
    s.mu.Lock()
    s.flash = f
    s.mu.Unlock()
}

// TakeFlash returns the pending flash and clears it.
func (s *Session) TakeFlash() Flash {
    s.mu.Lock()
    defer s.mu.Unlock()
    f := s.flash
    s.flash = Flash{}
    return f
}

func (s *Session) touch(now time.Time) {
    s.mu.Lock()
    s.lastSeen = now
    s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.lastSeen
}
