package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
)

// allKinds shows every entry of the journal.
const allKinds = entryKinds

// JournalView lists the decisions of the arbiter and the mirror, together
// with the state both lists were left in.
type JournalView struct {
	Base

	journal  *Journal
	viewport viewport.Model

	autoscroll bool
	filter     EntryKind

	// seq and filter the viewport content was rendered for
	renderedSeq    int
	renderedFilter EntryKind
}

var _ View = (*JournalView)(nil)

func NewJournalView(journal *Journal) *JournalView {
	return &JournalView{
		journal:     journal,
		viewport:    viewport.New(10, 10),
		autoscroll:  true,
		filter:      allKinds,
		renderedSeq: -1,
	}
}

func (jv *JournalView) SetSize(width, height int) {
	jv.Base.SetSize(width, height)
	jv.viewport.Width = max(width-2, 1)
	jv.viewport.Height = max(height-4, 1)
}

func (jv *JournalView) Breadcrumb() string {
	if jv.filter == allKinds {
		return "journal"
	}
	return "journal (" + jv.filter.String() + ")"
}

// refresh re-renders the entries if the journal or the filter changed.
// Everything shown counts as read.
func (jv *JournalView) refresh() {
	seq := jv.journal.Seq()
	if seq == jv.renderedSeq && jv.filter == jv.renderedFilter {
		return
	}
	jv.renderedSeq, jv.renderedFilter = seq, jv.filter
	jv.journal.MarkRead()

	var lines []string
	for _, e := range jv.journal.Entries() {
		if jv.filter != allKinds && e.Kind != jv.filter {
			continue
		}
		lines = append(lines, jv.renderEntry(e))
	}
	jv.viewport.SetContent(strings.Join(lines, "\n"))
	if jv.autoscroll {
		jv.viewport.GotoBottom()
	}
}

func (jv *JournalView) renderEntry(e Entry) string {
	return fmt.Sprintf("%s %s %s %-36s %s %s  %s %s",
		jv.Theme.MutedTextStyle.Render(formatClock(e.At)),
		jv.Theme.MutedTextStyle.Render(fmt.Sprintf("#%-5d", e.Seq)),
		jv.Theme.EntryStyle(e).Render(fmt.Sprintf(" %-7s ", e.Kind)),
		e.Summary(),
		jv.Theme.TagStyle(1).Render(" 1 "),
		e.Primary,
		jv.Theme.TagStyle(2).Render(" 2 "),
		e.Secondary,
	)
}

func formatClock(d time.Duration) string {
	return fmt.Sprintf("%8.3fs", d.Seconds())
}

// nextFilter cycles through all kinds and then back to showing everything.
func nextFilter(f EntryKind) EntryKind {
	if f == allKinds {
		return EntryArbiter
	}
	return f + 1
}

func (jv *JournalView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch v := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(v, journalKeys.Back):
			return jv, popView()
		case key.Matches(v, journalKeys.Autoscroll):
			jv.autoscroll = !jv.autoscroll
			if jv.autoscroll {
				jv.viewport.GotoBottom()
			}
			return jv, nil
		case key.Matches(v, journalKeys.Filter):
			jv.filter = nextFilter(jv.filter)
			jv.refresh()
			return jv, nil
		case key.Matches(v, journalKeys.Clear):
			jv.journal.Clear()
			jv.renderedSeq = -1
			jv.refresh()
			return jv, nil
		}
	}

	var cmd tea.Cmd
	jv.viewport, cmd = jv.viewport.Update(msg)
	return jv, cmd
}

func (jv *JournalView) View() string {
	jv.refresh()

	var counts [entryKinds]int
	entries := jv.journal.Entries()
	for _, e := range entries {
		counts[e.Kind]++
	}
	header := fmt.Sprintf("Journal: %s entries, %s swallowed, %s mirrored [autoscroll %s]",
		humanize.Comma(int64(len(entries))),
		humanize.Comma(int64(counts[EntryArbiter])),
		humanize.Comma(int64(counts[EntryMirror])),
		ternary(jv.autoscroll, "on", "off"))

	return header + "\n\n" + jv.Theme.BorderIdleContainerStyle.Render(jv.viewport.View())
}

func (jv *JournalView) KeyMap() string {
	return renderHelp(jv.Theme, journalKeys.ShortHelp(), "↑/↓/pgup/pgdn scroll")
}
