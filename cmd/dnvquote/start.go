package main

import (
	"fmt"

	"github.com/mark3labs/dnvquote/internal/logger"
	"github.com/mark3labs/dnvquote/internal/store"
	tuiwizard "github.com/mark3labs/dnvquote/internal/tui/wizard"
	wiz "github.com/mark3labs/dnvquote/internal/wizard"
	"github.com/spf13/cobra"
)

var startFlags struct {
	binding          string
	directorRequired bool
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Fill in the quote request",
	Long: `Open the quote request wizard.

A saved draft is restored automatically. Completed steps are saved as you
continue, ctrl+s saves at any time and the draft is cleared once the request
is submitted.`,
	RunE: runStart,
}

func init() {
	startCmd.Flags().StringVar(&startFlags.binding, "binding", "", "Same-as copy mode: snapshot or live (default from config)")
	startCmd.Flags().BoolVar(&startFlags.directorRequired, "director-required", true, "Require the Director of Quality contact")
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := wizardOptions(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	backend, err := store.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open draft store: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Error("Closing draft store: %v", err)
		}
	}()

	ctrl, err := wiz.New(ctx, backend.Store, backend.Journal, opts)
	if err != nil {
		return err
	}

	return tuiwizard.Run(ctx, ctrl, tuiwizard.Options{
		DataDir:   cfg.DataDir,
		ExportDir: cfg.ExportDir,
		PDFFont:   cfg.PDFFont,
		Flush:     backend.Flush,
	})
}
