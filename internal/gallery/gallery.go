package gallery

import (
    "image"
    "sync"
    "time"

    "github.com/google/uuid"
)

// DefaultViewSize is how many entries the history grid shows.
const DefaultViewSize = 9

// Entry is one successful generation. Entries are never modified after
// they are recorded.
type Entry struct {
    ID        string
    Prompt    string
    Image     image.Image
    SourceURL string
    CreatedAt time.Time
}

// NewEntry stamps a fresh id and creation time.
func NewEntry(prompt string, img image.Image, sourceURL string) Entry {
    return Entry{
        ID:        uuid.NewString(),
        Prompt:    prompt,
        Image:     img,
        SourceURL: sourceURL,
        CreatedAt: time.Now(),
    }
}

// Gallery holds one session's generations, newest first. The list itself
// is not capped; only View is.
type Gallery struct {
    mu       sync.RWMutex
    entries  []Entry
    viewSize int
}

func New(viewSize int) *Gallery {
    if viewSize <= 0 {
        viewSize = DefaultViewSize
    }
    return &Gallery{viewSize: viewSize}
}

// Record puts e at the head of the list.
func (g *Gallery) Record(e Entry) {
    g.mu.Lock()
    defer g.mu.Unlock()
    g.entries = append(g.entries, Entry{})
    copy(g.entries[1:], g.entries)
    g.entries[0] = e
}

// View returns up to viewSize entries, newest first. The returned slice
// is a copy.
func (g *Gallery) View() []Entry {
    g.mu.RLock()
    defer g.mu.RUnlock()
    n := len(g.entries)
    if n > g.viewSize {
        n = g.viewSize
    }
    out := make([]Entry, n)
    copy(out, g.entries[:n])
    return out
}

func (g *Gallery) Len() int {
    g.mu.RLock()
    defer g.mu.RUnlock()
    return len(g.entries)
}

func (g *Gallery) ViewSize() int {
    return g.viewSize
}

// Lookup finds an entry by id, visible or not.
func (g *Gallery) Lookup(id string) (Entry, bool) {
    g.mu.RLock()
    defer g.mu.RUnlock()
    for _, e := range g.entries {
        if e.ID == id {
            return e, true
        }
    }
    return Entry{}, false
}
