package studio

import (
    "context"
    "errors"
    "fmt"
    "log"
    "strings"
    "unicode/utf8"

    "github.com/youruser/imagegen/internal/gallery"
    "github.com/youruser/imagegen/internal/pollinations"
    "github.com/youruser/imagegen/internal/session"
)

// MaxPromptChars matches the prompt field's maxlength.
const MaxPromptChars = 200

var (
    ErrEmptyPrompt   = errors.New("Please enter a prompt before generating an image.")
    ErrPromptTooLong = fmt.Errorf("Please keep your prompt within %d characters.", MaxPromptChars)
    ErrNoSuchExample = errors.New("unknown example prompt")
)

// ExamplePrompts are offered as one-click fillers for the prompt field.
var ExamplePrompts = []string{
    "A futuristic city skyline at sunset, cyberpunk style",
    "A cat wearing sunglasses, surfing on a pizza",
    "Ancient forest temple overgrown with vines and glowing crystals",
}

// Generator is the fetch side of a generation.
type Generator interface {
    Generate(ctx context.Context, prompt string) (*pollinations.Result, error)
}

type Service struct {
    gen Generator
}

func NewService(gen Generator) *Service {
    return &Service{gen: gen}
}

// ValidatePrompt rejects prompts that are blank after trimming or longer
// than MaxPromptChars.
func ValidatePrompt(raw string) error {
    if strings.TrimSpace(raw) == "" {
        return ErrEmptyPrompt
    }
    if utf8.RuneCountInString(raw) > MaxPromptChars {
        return ErrPromptTooLong
    }
    return nil
}

// IsValidation reports whether err is a prompt validation failure, which
// the page shows as a warning rather than an error.
func IsValidation(err error) bool {
    return errors.Is(err, ErrEmptyPrompt) || errors.Is(err, ErrPromptTooLong)
}

// Generate runs one generate action for sess. The trimmed prompt is sent
// upstream; the raw prompt is what gets recorded and captioned. On any
// failure the gallery is left as it was.
func (s *Service) Generate(ctx context.Context, sess *session.Session, raw string) (entry gallery.Entry, err error) {
    sess.SetPromptInput(raw)
    if err := ValidatePrompt(raw); err != nil {
        return gallery.Entry{}, err
    }

    sess.Exclusive(func() {
        var res *pollinations.Result
        res, err = s.gen.Generate(ctx, strings.TrimSpace(raw))
        if err != nil {
            log.Printf("session %s: generation failed: %v", sess.ID, err)
            return
        }
        entry = gallery.NewEntry(raw, res.Image, res.URL)
        sess.Gallery.Record(entry)
    })
    return entry, err
}

// SelectExample fills the prompt field with example i. Nothing is fetched.
func (s *Service) SelectExample(sess *session.Session, i int) (string, error) {
    if i < 0 || i >= len(ExamplePrompts) {
        return "", ErrNoSuchExample
    }
    sess.SetPromptInput(ExamplePrompts[i])
    return ExamplePrompts[i], nil
}
