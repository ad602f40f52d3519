package api

import (
    "image"
    "log"
    "net/http"
    "strconv"
    "time"

    "github.com/gin-gonic/gin"

    "github.com/youruser/imagegen/internal/gallery"
    imagepkg "github.com/youruser/imagegen/internal/image"
    "github.com/youruser/imagegen/internal/pollinations"
    "github.com/youruser/imagegen/internal/session"
    "github.com/youruser/imagegen/internal/studio"
)

const (
    sessionCookie = "imagegen_session"
    sessionKey    = "session"
    qrSize        = 256
)

// Options controls presentation of the page.
type Options struct {
    Columns       int
    ThumbnailSize int
    SessionMaxAge time.Duration
}

type Handler struct {
    sessions *session.Manager
    studio   *studio.Service
    opts     Options
}

func NewHandler(sessions *session.Manager, svc *studio.Service, opts Options) *Handler {
    if opts.Columns <= 0 {
        opts.Columns = 3
    }
    if opts.ThumbnailSize <= 0 {
        opts.ThumbnailSize = 320
    }
    return &Handler{sessions: sessions, studio: svc, opts: opts}
}

// withSession resolves the caller's session from its cookie, starting a
// new one when needed. The cookie is reissued on every request so it
// expires together with the idle session.
func (h *Handler) withSession(c *gin.Context) {
    id, _ := c.Cookie(sessionCookie)
    sess, _ := h.sessions.GetOrCreate(id)
    c.SetCookie(sessionCookie, sess.ID, int(h.opts.SessionMaxAge.Seconds()), "/", "", false, true)
    c.Set(sessionKey, sess)
    c.Next()
}

func sessionFrom(c *gin.Context) *session.Session {
    return c.MustGet(sessionKey).(*session.Session)
}

// health
func health(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type exampleButton struct {
    Index int
    Text  string
}

type pageData struct {
    Examples []exampleButton
    Prompt   string
    MaxChars int
    Warning  string
    Error    string
    Latest   *gallery.Entry
    History  []gallery.Entry
    Columns  int
}

func (h *Handler) index(c *gin.Context) {
    sess := sessionFrom(c)
    flash := sess.TakeFlash()

    examples := make([]exampleButton, len(studio.ExamplePrompts))
    for i, p := range studio.ExamplePrompts {
        examples[i] = exampleButton{Index: i, Text: p}
    }

    c.HTML(http.StatusOK, "index.html", pageData{
        Examples: examples,
        Prompt:   sess.PromptInput(),
        MaxChars: studio.MaxPromptChars,
        Warning:  flash.Warning,
        Error:    flash.Error,
        Latest:   flash.Latest,
        History:  sess.Gallery.View(),
        Columns:  h.opts.Columns,
    })
}

// generateForm handles the page's form post and redirects back so that a
// reload does not resubmit.
func (h *Handler) generateForm(c *gin.Context) {
    sess := sessionFrom(c)
    entry, err := h.studio.Generate(c.Request.Context(), sess, c.PostForm("prompt"))
    switch {
    case err == nil:
        sess.SetFlash(session.Flash{Latest: &entry})
    case studio.IsValidation(err):
        sess.SetFlash(session.Flash{Warning: err.Error()})
    default:
        sess.SetFlash(session.Flash{Error: pollinations.FailureMessage(err)})
    }
    c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) selectExample(c *gin.Context) {
    i, err := strconv.Atoi(c.Param("index"))
    if err != nil {
        c.String(http.StatusBadRequest, "bad example index")
        return
    }
    if _, err := h.studio.SelectExample(sessionFrom(c), i); err != nil {
        c.String(http.StatusNotFound, err.Error())
        return
    }
    c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) endSession(c *gin.Context) {
    h.sessions.End(sessionFrom(c).ID)
    c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
    c.Redirect(http.StatusSeeOther, "/")
}

type entryJSON struct {
    ID        string    `json:"id"`
    Prompt    string    `json:"prompt"`
    SourceURL string    `json:"source_url"`
    ImageURL  string    `json:"image_url"`
    ThumbURL  string    `json:"thumb_url"`
    CreatedAt time.Time `json:"created_at"`
}

func toJSON(e gallery.Entry) entryJSON {
    return entryJSON{
        ID:        e.ID,
        Prompt:    e.Prompt,
        SourceURL: e.SourceURL,
        ImageURL:  "/images/" + e.ID,
        ThumbURL:  "/images/" + e.ID + "/thumb",
        CreatedAt: e.CreatedAt,
    }
}

func (h *Handler) generateJSON(c *gin.Context) {
    var req struct {
        Prompt string `json:"prompt"`
    }
    if err := c.BindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    entry, err := h.studio.Generate(c.Request.Context(), sessionFrom(c), req.Prompt)
    if err != nil {
        if studio.IsValidation(err) {
            c.JSON(http.StatusBadRequest, gin.H{"warning": err.Error()})
            return
        }
        c.JSON(http.StatusBadGateway, gin.H{"error": pollinations.FailureMessage(err)})
        return
    }
    c.JSON(http.StatusOK, toJSON(entry))
}

func (h *Handler) history(c *gin.Context) {
    g := sessionFrom(c).Gallery
    view := g.View()
    out := make([]entryJSON, len(view))
    for i, e := range view {
        out[i] = toJSON(e)
    }
    c.JSON(http.StatusOK, gin.H{"total": g.Len(), "entries": out})
}

// historySheet renders the visible history as one contact-sheet PNG.
func (h *Handler) historySheet(c *gin.Context) {
    view := sessionFrom(c).Gallery.View()
    if len(view) == 0 {
        c.JSON(http.StatusNotFound, gin.H{"error": "history is empty"})
        return
    }
    imgs := make([]image.Image, len(view))
    for i, e := range view {
        imgs[i] = e.Image
    }
    h.writePNG(c, imagepkg.ComposeGrid(imgs, h.opts.Columns, h.opts.ThumbnailSize))
}

func (h *Handler) lookup(c *gin.Context) (gallery.Entry, bool) {
    e, ok := sessionFrom(c).Gallery.Lookup(c.Param("id"))
    if !ok {
        c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
    }
    return e, ok
}

func (h *Handler) fullImage(c *gin.Context) {
    if e, ok := h.lookup(c); ok {
        h.writePNG(c, e.Image)
    }
}

func (h *Handler) thumbnail(c *gin.Context) {
    if e, ok := h.lookup(c); ok {
        h.writePNG(c, imagepkg.Thumbnail(e.Image, h.opts.ThumbnailSize))
    }
}

// qr returns a QR code of the entry's upstream URL for sharing.
func (h *Handler) qr(c *gin.Context) {
    e, ok := h.lookup(c)
    if !ok {
        return
    }
    b, err := imagepkg.GenerateQRPNG(e.SourceURL, qrSize)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.Data(http.StatusOK, "image/png", b)
}

func (h *Handler) writePNG(c *gin.Context, img image.Image) {
    b, err := imagepkg.PNGBytes(img)
    if err != nil {
        log.Println("png encode error:", err)
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.Header("Cache-Control", "private, max-age=3600")
    c.Data(http.StatusOK, "image/png", b)
}
