package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/loog-project/sidebyside/internal/feed"
	"github.com/loog-project/sidebyside/internal/gesture"
	"github.com/loog-project/sidebyside/internal/layout"
	"github.com/loog-project/sidebyside/internal/scroll"
	"github.com/loog-project/sidebyside/internal/util"
)

const (
	frameDuration = 16 * time.Millisecond

	wheelLines     = 3
	keyFlingSpeed  = 120.0
	sizeSkip       = 2
	minPaneWidth   = 8
	headerHeight   = 1
	maxGridColumns = 12

	// DefaultGridColumns keeps grid cells wide enough for their tag in an
	// 80 column terminal; up to maxGridColumns can be configured.
	DefaultGridColumns = 3
)

// Config describes the two lists.
type Config struct {
	Items            int
	Columns          int
	LinearHeightExpr string
	GridHeightExpr   string
	Friction         float64

	// Script is played frame by frame on startup, if set.
	Script *gesture.Script
}

func DefaultConfig() Config {
	return Config{
		Items:            feed.DefaultItemCount,
		Columns:          DefaultGridColumns,
		LinearHeightExpr: feed.DefaultLinearHeightExpr,
		GridHeightExpr:   feed.DefaultStaggeredHeightExpr,
		Friction:         scroll.DefaultFriction,
	}
}

type pane struct {
	binder feed.Binder
	layout *layout.Layout
	list   *scroll.List
}

// ListView shows the single-column list and the staggered grid next to each other.
type ListView struct {
	Base

	panes  [2]*pane
	screen *Screen
	player *gesture.Player

	// ui state
	focusRight   bool
	leftExtra    int
	animating    bool
}

var _ View = (*ListView)(nil)

// NewListView lays out both lists. Decisions of the arbiter and the mirror are
// recorded in journal, which may be nil.
func NewListView(cfg Config, journal *Journal) (*ListView, error) {
	source := feed.NewSequence(cfg.Items)
	columns := util.RangeOrElse(cfg.Columns, 1, maxGridColumns, DefaultConfig().Columns)

	linearHeights, err := feed.CompileHeight(cfg.LinearHeightExpr, 1, source)
	if err != nil {
		return nil, err
	}
	gridHeights, err := feed.CompileHeight(cfg.GridHeightExpr, 2, source)
	if err != nil {
		return nil, err
	}

	primary := &pane{
		binder: feed.NewBinder(1, source),
		layout: layout.Linear(source, linearHeights),
		list:   scroll.NewList("primary"),
	}
	secondary := &pane{
		binder: feed.NewBinder(2, source),
		layout: layout.Staggered(source, gridHeights, columns),
		list:   scroll.NewList("secondary"),
	}
	for _, p := range []*pane{primary, secondary} {
		p.list.SetFriction(cfg.Friction)
	}

	lv := &ListView{
		panes:  [2]*pane{primary, secondary},
		screen: NewScreen(primary.list, secondary.list),
	}
	lv.screen.Journal = journal
	if cfg.Script != nil {
		lv.player = gesture.NewPlayer(lv.screen, cfg.Script, frameDuration)
	}
	return lv, nil
}

// Screen exposes the scroll wiring of the view.
func (lv *ListView) Screen() *Screen {
	return lv.screen
}

func (lv *ListView) Init() tea.Cmd {
	if lv.player != nil {
		return lv.animate()
	}
	return nil
}

func (lv *ListView) Breadcrumb() string {
	return "lists"
}

// SetSize sets the size of the view and re-measures both lists.
func (lv *ListView) SetSize(width, height int) {
	lv.Base.SetSize(width, height)
	lv.calculatePaneSizes()
}

func (lv *ListView) leftWidth() int {
	return util.Clamp(lv.Width/2+lv.leftExtra, minPaneWidth, max(lv.Width-minPaneWidth, minPaneWidth))
}

func (lv *ListView) calculatePaneSizes() {
	paneHeight := lv.Height - headerHeight
	leftWidth := lv.leftWidth()
	widths := [2]int{leftWidth, lv.Width - leftWidth}
	lefts := [2]int{0, leftWidth}

	for i, p := range lv.panes {
		innerWidth, innerHeight := max(widths[i]-2, 0), max(paneHeight-2, 0) // -2 for the border

		p.list.SetViewport(innerWidth, innerHeight)
		p.list.SetContentSize(innerWidth, p.layout.ContentHeight())

		// terminal cells: both edges inclusive, so the rect spans width-1
		if widths[i] > 0 && paneHeight > 0 {
			p.list.SetBounds(scroll.Rect{
				Left:   lefts[i],
				Top:    headerHeight,
				Width:  widths[i] - 1,
				Height: paneHeight - 1,
			})
		} else {
			p.list.SetBounds(scroll.Rect{})
		}
	}
}

func (lv *ListView) focused() *pane {
	return ternary(lv.focusRight, lv.panes[1], lv.panes[0])
}

func center(l *scroll.List) (float64, float64) {
	r, _ := l.Bounds()
	return float64(r.Left) + float64(r.Width)/2, float64(r.Top) + float64(r.Height)/2
}

func (lv *ListView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmds []tea.Cmd

	switch v := msg.(type) {
	case frameMsg:
		lv.screen.Step(frameDuration)
		if cmd := lv.playNext(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		lv.animating = false

	case tea.MouseMsg:
		lv.handleMouse(v)

	case tea.KeyMsg:
		if cmd := lv.handleKey(v); cmd != nil {
			return lv, cmd
		}
	}

	if cmd := lv.animate(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return lv, tea.Batch(cmds...)
}

// animate schedules the next frame while anything moves or a script is playing.
func (lv *ListView) animate() tea.Cmd {
	if lv.animating {
		return nil
	}
	if !lv.screen.Active() && (lv.player == nil || lv.player.Done()) {
		return nil
	}
	lv.animating = true
	return tea.Tick(frameDuration, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (lv *ListView) playNext() tea.Cmd {
	if lv.player == nil || lv.player.Done() {
		return nil
	}
	if err := lv.player.Next(); err != nil {
		lv.player = nil
		lv.screen.Note(true, "gesture script failed: %v", err)
		return PushAlert("gesture script", err)
	}
	if lv.player.Done() {
		lv.screen.Note(false, "gesture script finished, %d events swallowed", lv.screen.Consumed)
	}
	return nil
}

func (lv *ListView) handleMouse(m tea.MouseMsg) {
	x, y := float64(m.X), float64(m.Y)

	switch m.Button {
	case tea.MouseButtonWheelUp:
		lv.screen.Wheel(x, y, -wheelLines)
		return
	case tea.MouseButtonWheelDown:
		lv.screen.Wheel(x, y, wheelLines)
		return
	}

	// terminals report a single pointer, a ctrl-held press stands in for a second finger
	pointers := 1
	if m.Ctrl {
		pointers = 2
	}
	ev := scroll.PointerEvent{Pointers: pointers, X: x, Y: y}

	switch m.Action {
	case tea.MouseActionPress:
		if m.Button != tea.MouseButtonLeft {
			return
		}
		ev.Phase = scroll.PhaseDown
	case tea.MouseActionMotion:
		ev.Phase = scroll.PhaseMove
	case tea.MouseActionRelease:
		ev.Phase = scroll.PhaseUp
	default:
		return
	}
	lv.screen.HandlePointer(ev)
}

func (lv *ListView) handleKey(k tea.KeyMsg) tea.Cmd {
	focused := lv.focused().list
	x, y := center(focused)

	switch {
	case key.Matches(k, listKeys.Quit):
		return tea.Quit
	case key.Matches(k, listKeys.Focus):
		lv.focusRight = !lv.focusRight
	case key.Matches(k, listKeys.Stop):
		lv.screen.Stop()
	case key.Matches(k, listKeys.Reset):
		lv.screen.Reset()
	case key.Matches(k, listKeys.Up):
		lv.screen.Wheel(x, y, -1)
	case key.Matches(k, listKeys.Down):
		lv.screen.Wheel(x, y, 1)
	case key.Matches(k, listKeys.PageUp):
		lv.screen.Wheel(x, y, -lv.pageSize())
	case key.Matches(k, listKeys.PageDown):
		lv.screen.Wheel(x, y, lv.pageSize())
	case key.Matches(k, listKeys.FlingUp):
		lv.screen.Throw(focused, 0, -keyFlingSpeed)
	case key.Matches(k, listKeys.FlingDown):
		lv.screen.Throw(focused, 0, keyFlingSpeed)
	case key.Matches(k, listKeys.Grow):
		maxExtra := (lv.Width / 2) - minPaneWidth
		lv.leftExtra = min(lv.leftExtra+sizeSkip, max(maxExtra, 0))
		lv.calculatePaneSizes()
	case key.Matches(k, listKeys.Shrink):
		minExtra := -(lv.Width / 2) + minPaneWidth
		lv.leftExtra = max(lv.leftExtra-sizeSkip, min(minExtra, 0))
		lv.calculatePaneSizes()
	}
	return nil
}

func (lv *ListView) pageSize() int {
	return max(lv.Height-headerHeight-2, 1)
}

func (lv *ListView) View() string {
	if lv.Width <= 0 || lv.Height <= headerHeight {
		return ""
	}

	boxes := make([]string, 0, len(lv.panes))
	for i, p := range lv.panes {
		isFocused := (i == 1) == lv.focusRight
		style := ternary(isFocused, lv.Theme.BorderActiveContainerStyle, lv.Theme.BorderIdleContainerStyle)
		boxes = append(boxes, style.Render(lv.renderPane(p)))
	}

	return lv.renderHeader() + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (lv *ListView) renderHeader() string {
	parts := make([]string, 0, len(lv.panes))
	for _, p := range lv.panes {
		_, offset := p.list.Offset()
		_, extent := p.list.Extent()
		state := p.list.ScrollState()

		stateStyle := ternary(state == scroll.StateIdle, lv.Theme.MutedTextStyle, lv.Theme.ActivityStyle)
		parts = append(parts, fmt.Sprintf("%s %s/%s %s",
			lv.Theme.TagStyle(p.binder.Tag).Render(" "+p.binder.Label()+" "),
			humanize.Comma(int64(offset)),
			humanize.Comma(int64(extent)),
			stateStyle.Render(state.String()),
		))
	}
	return ansi.Truncate(strings.Join(parts, lv.Theme.MutedTextStyle.Render("  ⇆  ")), lv.Width, "…")
}

// renderPane renders the visible window of a pane, row by row.
func (lv *ListView) renderPane(p *pane) string {
	width, height := p.list.ViewportSize()
	if width <= 0 || height <= 0 {
		return ""
	}
	_, top := p.list.Offset()

	columns := p.layout.Columns
	colWidth := max(width/columns, 1)
	blank := strings.Repeat(" ", colWidth)

	rows := make([][]string, height)
	for r := range rows {
		rows[r] = make([]string, columns)
		for c := range rows[r] {
			rows[r][c] = blank
		}
	}

	for c := 0; c < columns; c++ {
		for _, pl := range p.layout.Visible(c, top, height) {
			for line := 0; line < pl.Height; line++ {
				r := pl.Top + line - top
				if r < 0 || r >= height {
					continue
				}
				rows[r][c] = lv.renderCell(p, pl, line, colWidth)
			}
		}
	}

	lines := make([]string, height)
	for r, cells := range rows {
		lines[r] = fit(strings.Join(cells, ""), width)
	}
	return strings.Join(lines, "\n")
}

func (lv *ListView) renderCell(p *pane, pl layout.Placement, line, width int) string {
	tag := lv.Theme.TagStyle(p.binder.Tag)
	if line > 0 {
		return fit(tag.Render(" "), width)
	}
	content := p.binder.Content(pl.Index)
	if p.layout.Columns == 1 {
		return fit(tag.Render(" "+p.binder.Label()+" ")+" "+lv.Theme.ItemTextStyle.Render(content), width)
	}
	return fit(tag.Render(" ")+lv.Theme.ItemTextStyle.Render(content), width)
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func (lv *ListView) KeyMap() string {
	playing := lv.player != nil && !lv.player.Done()
	return renderHelp(lv.Theme, listKeys.ShortHelp(), ternary(playing, "playing script", ""))
}
