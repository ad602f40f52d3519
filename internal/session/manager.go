package session

import (
    "context"
    "log"
    "sync"
    "time"
)

// Manager owns every live session. Sessions idle for longer than the idle
// timeout are dropped together with their galleries.
type Manager struct {
    mu       sync.Mutex
    sessions map[string]*Session
    viewSize int
    idle     time.Duration
    now      func() time.Time
}

func NewManager(viewSize int, idle time.Duration) *Manager {
    return &Manager{
        sessions: make(map[string]*Session),
        viewSize: viewSize,
        idle:     idle,
        now:      time.Now,
    }
}

// Get returns the live session with id and marks it as used.
func (m *Manager) Get(id string) (*Session, bool) {
    if id == "" {
        return nil, false
    }
    m.mu.Lock()
    s, ok := m.sessions[id]
    m.mu.Unlock()
    if !ok {
        return nil, false
    }
    s.touch(m.now())
    return s, true
}

// Create starts a new, empty session.
func (m *Manager) Create() *Session {
    s := newSession(m.viewSize, m.now())
    m.mu.Lock()
    m.sessions[s.ID] = s
    m.mu.Unlock()
    return s
}

// GetOrCreate resolves id, or starts a new session when it is unknown or
// expired. created reports which happened.
func (m *Manager) GetOrCreate(id string) (s *Session, created bool) {
    if s, ok := m.Get(id); ok {
        return s, false
    }
    return m.Create(), true
}

// End discards a session immediately.
func (m *Manager) End(id string) {
    m.mu.Lock()
    delete(m.sessions, id)
    m.mu.Unlock()
}

func (m *Manager) Len() int {
    m.mu.Lock()
    defer m.mu.Unlock()
    return len(m.sessions)
}

// Sweep removes idle sessions and returns how many were dropped.
func (m *Manager) Sweep() int {
    cutoff := m.now().Add(-m.idle)
    m.mu.Lock()
    defer m.mu.Unlock()
    n := 0
    for id, s := range m.sessions {
        if s.idleSince().Before(cutoff) {
            delete(m.sessions, id)
            n++
        }
    }
    return n
}

// Run sweeps every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
    ticker := time.NewTicker(interval)
    defer ticker.Stop()
    for {
        select {
        case <-ctx.Done():
            return
        case <-ticker.C:
            if n := m.Sweep(); n > 0 {
                log.Printf("expired %d idle session(s), %d live", n, m.Len())
            }
        }
    }
}
