package main

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/mark3labs/dnvquote/internal/config"
	"github.com/mark3labs/dnvquote/internal/logger"
	"github.com/mark3labs/dnvquote/internal/store"
	"github.com/mark3labs/dnvquote/internal/tui/theme"
	wiz "github.com/mark3labs/dnvquote/internal/wizard"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the saved draft",
	RunE:  runReset,
}

var historyFlags struct {
	name string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journal events for a draft (nats store only)",
	Long: `List the saved, submitted and restarted events recorded for a draft.

The draft is named after its legal entity name (for example
"acme-general-hospital"). Without --name the saved draft is used.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyFlags.name, "name", "n", "", "Draft name (default: the saved draft)")
}

func runReset(cmd *cobra.Command, args []string) error {
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

	// Going through the controller records the restart in the journal.
	ctrl, err := wiz.New(ctx, backend.Store, backend.Journal, opts)
	if err != nil {
		return err
	}
	if err := ctrl.RestartForm(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Saved draft cleared.")
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Store != config.StoreNATS {
		return fmt.Errorf("history needs the nats store (got %q)", cfg.Store)
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

	name := historyFlags.name
	if name == "" {
		d, ok, err := backend.Store.Load(ctx)
		if err != nil {
			return fmt.Errorf("loading draft: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w; pass --name to list a submitted draft", errNoDraft)
		}
		name = store.DraftName(d.Identity.LegalEntityName)
	}

	events, err := backend.History.History(ctx, name)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No events for %s\n", name)
		return nil
	}

	_, err = lipgloss.Fprintln(cmd.OutOrStdout(), renderHistory(events))
	return err
}

// renderHistory lays the journal events out as a table, oldest first.
func renderHistory(events []store.Event) string {
	s := theme.Current().S()
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		step := ""
		if e.Step > 0 {
			step = fmt.Sprint(e.Step)
		}
		rows = append(rows, []string{e.Timestamp.Format("2006-01-02 15:04:05"), strings.ToUpper(e.Type), step, e.Ref})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.Muted.Italic(false)).
		Headers("TIME", "EVENT", "STEP", "REFERENCE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.HeaderTitle.Padding(0, 1)
			}
			return s.Text.Padding(0, 1)
		}).
		String()
}
