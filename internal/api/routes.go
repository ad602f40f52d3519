package api

import (
    "embed"
    "html/template"

    "github.com/gin-gonic/gin"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

func RegisterRoutes(r *gin.Engine, h *Handler) {
    r.SetHTMLTemplate(pageTemplate)

    ui := r.Group("/", h.withSession)
    {
        ui.GET("/", h.index)
        ui.POST("/generate", h.generateForm)
        ui.POST("/examples/:index", h.selectExample)
        ui.POST("/session/end", h.endSession)

        ui.GET("/images/:id", h.fullImage)
        ui.GET("/images/:id/thumb", h.thumbnail)
        ui.GET("/images/:id/qr", h.qr)
    }

    api := r.Group("/api")
    {
        api.GET("/health", health)
        api.POST("/generate", h.withSession, h.generateJSON)
        api.GET("/history", h.withSession, h.history)
        api.GET("/history/sheet", h.withSession, h.historySheet)
    }
}
