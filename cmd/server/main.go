package main

import (
    "context"
    "log"
    "os"
    "os/signal"
    "syscall"

    "github.com/spf13/cobra"
)

func main() {
    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    if err := newRootCmd().ExecuteContext(ctx); err != nil {
        log.Fatal(err)
    }
}

func newRootCmd() *cobra.Command {
    var envFile string

    serve := newServeCmd(&envFile)
    root := &cobra.Command{
        Use:   "imagegen",
        Short: "Prompt-to-image web front-end for Pollinations",
        RunE: func(cmd *cobra.Command, args []string) error {
            return serve.RunE(cmd, args)
        },
        SilenceUsage: true,
    }
    root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
    root.Flags().AddFlagSet(serve.Flags())

    root.AddCommand(serve)
    root.AddCommand(newGenerateCmd(&envFile))
    return root
}
