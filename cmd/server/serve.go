package main

import (
    "context"
    "errors"
    "log"
    "net/http"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/spf13/cobra"

    "github.com/youruser/imagegen/internal/api"
    "github.com/youruser/imagegen/internal/config"
    "github.com/youruser/imagegen/internal/pollinations"
    "github.com/youruser/imagegen/internal/session"
    "github.com/youruser/imagegen/internal/studio"
)

const sweepInterval = time.Minute

func newServeCmd(envFile *string) *cobra.Command {
    var port string

    cmd := &cobra.Command{
        Use:   "serve",
        Short: "Run the web UI",
        RunE: func(cmd *cobra.Command, args []string) error {
            cfg, err := config.Load(*envFile)
            if err != nil {
                return err
            }
            if port != "" {
                cfg.Port = port
            }
            return serve(cmd.Context(), cfg)
        },
    }
    cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
    return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
    client := pollinations.NewClient(
        pollinations.WithBaseURL(cfg.BaseURL),
        pollinations.WithTimeout(cfg.FetchTimeout),
    )
    sessions := session.NewManager(cfg.GalleryViewSize, cfg.SessionIdleTimeout)
    go sessions.Run(ctx, sweepInterval)

    handler := api.NewHandler(sessions, studio.NewService(client), api.Options{
        Columns:       cfg.GalleryColumns,
        ThumbnailSize: cfg.ThumbnailSize,
        SessionMaxAge: cfg.SessionIdleTimeout,
    })

    r := gin.Default()
    api.RegisterRoutes(r, handler)

    srv := &http.Server{Addr: cfg.Addr(), Handler: r}
    errc := make(chan error, 1)
    go func() {
        log.Println("starting server on http://localhost:" + cfg.Port)
        errc <- srv.ListenAndServe()
    }()

    select {
    case err := <-errc:
        if errors.Is(err, http.ErrServerClosed) {
            return nil
        }
        return err
    case <-ctx.Done():
        log.Println("shutting down...")
    }

    // in-flight generations are bounded by the fetch timeout
    shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout+5*time.Second)
    defer cancel()
    return srv.Shutdown(shutdownCtx)
}
