package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/loog-project/sidebyside/internal/gesture"
	"github.com/loog-project/sidebyside/internal/ui"
)

var (
	replayWidth  int
	replayHeight int
	replayFrame  time.Duration
	showJournal  bool
)

var replayCmd = &cobra.Command{
	Use:   "replay SCRIPT",
	Short: "Replay a gesture script without a terminal UI",
	Long: `Replays a YAML gesture script against the two lists, laid out as if the
terminal had the given size, and prints the offset of both lists after every step.
With --journal, every swallowed event and mirrored delta is printed as well.
Fails if an expect step does not match.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: scriptCompletion,
	PreRunE:           validateFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		closeLog := setupDebugLog()
		defer closeLog()

		script, err := gesture.Load(args[0])
		if err != nil {
			return fmt.Errorf("loading gesture script: %w", err)
		}

		journal := ui.NewJournal(ui.DefaultJournalSize)
		listView, err := ui.NewListView(configFromViper(), journal)
		if err != nil {
			return err
		}
		listView.SetSize(replayWidth, replayHeight-1) // -1 for the status bar

		records, runErr := gesture.Run(listView.Screen(), script, replayFrame)
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderRecords(records))
		if showJournal {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderJournal(journal.Entries()))
		}

		var expErr gesture.ExpectationError
		if errors.As(runErr, &expErr) {
			return fmt.Errorf("expectation failed: %w", runErr)
		}
		return runErr
	},
}

func init() {
	replayCmd.Flags().IntVar(&replayWidth, "width", 81, "Terminal width to lay out the lists for")
	replayCmd.Flags().IntVar(&replayHeight, "height", 22, "Terminal height to lay out the lists for")
	replayCmd.Flags().DurationVar(&replayFrame, "frame", 16*time.Millisecond, "Duration of one animation frame")
	replayCmd.Flags().BoolVar(&showJournal, "journal", false, "Print the arbiter and mirror decisions after the offsets")
	rootCmd.AddCommand(replayCmd)
}

func renderRecords(records []gesture.Record) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("STEP", "KIND", "CONSUMED", "PRIMARY", "SECONDARY")
	for _, r := range records {
		t.Row(
			strconv.Itoa(r.Step),
			r.Kind,
			strconv.FormatBool(r.Consumed),
			humanize.Comma(int64(r.Primary)),
			humanize.Comma(int64(r.Secondary)),
		)
	}
	return t.Render()
}

func renderJournal(entries []ui.Entry) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "CLOCK", "KIND", "DECISION", "PRIMARY", "SECONDARY")
	for _, e := range entries {
		t.Row(
			strconv.Itoa(e.Seq),
			e.At.String(),
			e.Kind.String(),
			e.Summary(),
			e.Primary.String(),
			e.Secondary.String(),
		)
	}
	return t.Render()
}
