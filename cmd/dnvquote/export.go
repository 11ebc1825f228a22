package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/dnvquote/internal/config"
	"github.com/mark3labs/dnvquote/internal/form"
	"github.com/mark3labs/dnvquote/internal/logger"
	"github.com/mark3labs/dnvquote/internal/review"
	"github.com/mark3labs/dnvquote/internal/state"
	"github.com/mark3labs/dnvquote/internal/store"
	tuiwizard "github.com/mark3labs/dnvquote/internal/tui/wizard"
	"github.com/spf13/cobra"
)

// errNoDraft is returned when a command needs a saved draft and there is none.
var errNoDraft = errors.New("no saved draft (run 'dnvquote start' first)")

var exportFlags struct {
	format string
	out    string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the saved draft as CSV or PDF",
	RunE:  runExport,
}

var reviewFlags struct {
	width int
}

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Print the review of the saved draft",
	RunE:  runReview,
}

var templateFlags struct {
	format string
	out    string
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write the multi-site upload template",
	Long: `Write the site information template used when a quote covers
multiple locations. The template has a header row and one example row.`,
	RunE: runTemplate,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlags.format, "format", "f", "csv", "Export format: csv or pdf")
	exportCmd.Flags().StringVarP(&exportFlags.out, "out", "o", "", "Output directory (default from config export_dir)")

	reviewCmd.Flags().IntVarP(&reviewFlags.width, "width", "w", 100, "Word wrap width")

	templateCmd.Flags().StringVarP(&templateFlags.format, "format", "f", "csv", "Template format: csv or xlsx")
	templateCmd.Flags().StringVarP(&templateFlags.out, "out", "o", "", "Output directory (default from config export_dir)")
}

// loadDraft opens the configured store just long enough to read the draft.
func loadDraft(ctx context.Context, cfg *config.Config) (form.Draft, error) {
	backend, err := store.Open(ctx, cfg)
	if err != nil {
		return form.Draft{}, fmt.Errorf("failed to open draft store: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Error("Closing draft store: %v", err)
		}
	}()

	d, ok, err := backend.Store.Load(ctx)
	if err != nil {
		return form.Draft{}, fmt.Errorf("loading draft: %w", err)
	}
	if !ok {
		return form.Draft{}, errNoDraft
	}
	return d, nil
}

func outputDir(flag string, cfg *config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.ExportDir
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := review.ParseFormat(exportFlags.format)
	if err != nil {
		return err
	}
	if format != review.FormatCSV && format != review.FormatPDF {
		return fmt.Errorf("cannot export the review as %q (want csv or pdf)", format)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	d, err := loadDraft(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	path, err := review.ExportFile(outputDir(exportFlags.out, cfg), d, format, review.ExportOptions{PDFFont: cfg.PDFFont})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	d, err := loadDraft(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	// Honor the sections folded in the TUI.
	outline := state.Load(cfg.DataDir).Outline()
	fmt.Fprintln(cmd.OutOrStdout(), tuiwizard.RenderMarkdown(review.Markdown(d, outline), reviewFlags.width))
	return nil
}

func runTemplate(cmd *cobra.Command, args []string) error {
	format, err := review.ParseFormat(templateFlags.format)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path, err := review.WriteTemplateFile(outputDir(templateFlags.out, cfg), format)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Template saved to %s\n", path)
	return nil
}
