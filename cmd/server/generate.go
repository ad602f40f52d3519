package main

import (
    "errors"
    "fmt"
    "os"
    "strings"

    "github.com/spf13/cobra"

    "github.com/youruser/imagegen/internal/config"
    imagepkg "github.com/youruser/imagegen/internal/image"
    "github.com/youruser/imagegen/internal/pollinations"
    "github.com/youruser/imagegen/internal/studio"
    "github.com/youruser/imagegen/internal/util"
)

func newGenerateCmd(envFile *string) *cobra.Command {
    var output string

    cmd := &cobra.Command{
        Use:   "generate [prompt]",
        Short: "Fetch one image for a prompt and save it as PNG",
        Args:  cobra.MinimumNArgs(1),
        RunE: func(cmd *cobra.Command, args []string) error {
            cfg, err := config.Load(*envFile)
            if err != nil {
                return err
            }
            prompt := strings.Join(args, " ")
            if err := studio.ValidatePrompt(prompt); err != nil {
                return err
            }

            client := pollinations.NewClient(
                pollinations.WithBaseURL(cfg.BaseURL),
                pollinations.WithTimeout(cfg.FetchTimeout),
            )
            res, err := client.Generate(cmd.Context(), strings.TrimSpace(prompt))
            if err != nil {
                return errors.New(pollinations.FailureMessage(err))
            }

            if err := util.EnsureParentDir(output); err != nil {
                return err
            }
            f, err := os.Create(output)
            if err != nil {
                return err
            }
            defer f.Close()
            if err := imagepkg.EncodePNG(f, res.Image); err != nil {
                return err
            }
            fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s)\n", output, res.URL)
            return nil
        },
    }
    cmd.Flags().StringVarP(&output, "output", "o", "image.png", "output PNG path")
    return cmd
}
