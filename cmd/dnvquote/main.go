package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/mark3labs/dnvquote/internal/config"
	"github.com/mark3labs/dnvquote/internal/form"
	"github.com/mark3labs/dnvquote/internal/logger"
	"github.com/mark3labs/dnvquote/internal/tui/theme"
	wiz "github.com/mark3labs/dnvquote/internal/wizard"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀▄ █▄ █ █ █   █▀█ █ █ █▀█ ▀█▀ █▀▀"
	logoText2 = "█▄▀ █ ▀█ ▀▄▀   ▀▀█ █▄█ █▄█  █  ██▄"
)

// Version set via ldflags during build
var version = "dev"

// rootFlags apply to every command that opens the saved draft.
var rootFlags struct {
	store   string
	dataDir string
}

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	// A missing .env is normal; anything else is worth a warning.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Loading .env: %v", err)
	}

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dnvquote",
	Short: "Terminal wizard for the DNV Health Care quote request",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

dnvquote walks a health care organization through the DNV accreditation
quote request: organization and contact details, facility type, leadership
and invoicing, site information, services and a final review.

The draft is saved after every completed step, either to a JSON file or to
an embedded NATS JetStream key-value bucket, and restored on the next run.`

	rootCmd.PersistentFlags().StringVar(&rootFlags.store, "store", "", "Draft store: file or nats (default from config)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.dataDir, "data-dir", "", "Directory for the draft, UI state and submissions (default from config)")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(setupCmd)
}

// loadConfig reads the layered config, applies the flags the user set and
// configures the logger.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store = rootFlags.store
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = rootFlags.dataDir
	}
	if flags.Changed("binding") {
		cfg.Binding = startFlags.binding
	}
	if flags.Changed("director-required") {
		cfg.DirectorRequired = startFlags.directorRequired
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("configuring logger: %w", err)
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return cfg, nil
}

// wizardOptions maps the config onto controller options.
func wizardOptions(cfg *config.Config) (wiz.Options, error) {
	binding, err := form.ParseBindingMode(cfg.Binding)
	if err != nil {
		return wiz.Options{}, err
	}
	return wiz.Options{
		Binding:          binding,
		DirectorRequired: cfg.DirectorRequired,
		ArchiveDir:       cfg.DataDir,
		UploadExtensions: cfg.UploadExtensions,
	}, nil
}
