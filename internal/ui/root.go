package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type Baser interface {
	SetSize(width, height int)
	SetTheme(theme Theme)
}

// View is the interface that all views must implement.
type View interface {
	Baser

	Update(tea.Msg) (View, tea.Cmd)
	View() string
	KeyMap() string
	Breadcrumb() string
}

// Initializer is implemented by views that need to run a command on startup.
type Initializer interface {
	Init() tea.Cmd
}

// Root is the bubbletea model. The lists sit at the bottom of the view stack,
// the journal and alerts are pushed on top of them. Animation frames always
// go to the lists, so flings and scripts keep running underneath.
type Root struct {
	Width, Height int
	Theme         Theme

	ViewStack    []View
	ShuttingDown bool

	Journal *Journal
}

func NewRoot(theme Theme, journal *Journal, lists View) *Root {
	r := &Root{
		Theme:   theme,
		Journal: journal,
	}
	r.applyTo(lists)
	r.ViewStack = []View{lists}
	return r
}

func (r Root) Init() tea.Cmd {
	if i, ok := r.ViewStack[0].(Initializer); ok {
		return i.Init()
	}
	return nil
}

func (r Root) applyTo(v View) View {
	v.SetSize(r.Width, r.Height)
	v.SetTheme(r.Theme)
	return v
}

func (r Root) top() View {
	return r.ViewStack[len(r.ViewStack)-1]
}

func (r Root) journalOpen() bool {
	_, ok := r.top().(*JournalView)
	return ok
}

func (r Root) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case stackMsg:
		switch v.op {
		case opPush:
			r.ViewStack = append(r.ViewStack, r.applyTo(v.view))
		case opReplace:
			if len(r.ViewStack) > 1 {
				r.ViewStack[len(r.ViewStack)-1] = r.applyTo(v.view)
			} else {
				r.ViewStack = append(r.ViewStack, r.applyTo(v.view))
			}
		case opPop:
			// the lists can't be popped
			if len(r.ViewStack) > 1 {
				r.ViewStack = r.ViewStack[:len(r.ViewStack)-1]
			}
		}
		return r, nil

	case alertMsg:
		op := opPush
		if _, ok := r.top().(*AlertView); ok {
			op = opReplace
		}
		view := &AlertView{Title: v.Title, Err: v.Err}
		return r, func() tea.Msg { return stackMsg{op: op, view: view} }

	case frameMsg:
		var cmd tea.Cmd
		r.ViewStack[0], cmd = r.ViewStack[0].Update(msg)
		return r, cmd

	case tea.WindowSizeMsg:
		r.Width = v.Width
		r.Height = v.Height - 1 // status bar
		for i := range r.ViewStack {
			r.ViewStack[i].SetSize(r.Width, r.Height)
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(v, rootKeys.Quit):
			r.ShuttingDown = true
			return r, tea.Quit
		case key.Matches(v, rootKeys.Journal):
			if r.journalOpen() {
				return r, popView()
			}
			return r, pushView(NewJournalView(r.Journal))
		}
	}

	i := len(r.ViewStack) - 1
	var cmd tea.Cmd
	r.ViewStack[i], cmd = r.ViewStack[i].Update(msg)
	return r, cmd
}

// renderBar renders the status bar: key help, the view stack and the
// number of journal entries nobody looked at yet.
func (r Root) renderBar(breadcrumbs, help string) string {
	breadcrumbsRender := r.Theme.BreadcrumbBarStyle.Render(breadcrumbs)

	var journalRender string
	if unread := r.Journal.unreadSummary(); unread != "" && !r.journalOpen() {
		journalRender = r.Theme.JournalBarStyle.Render("L " + unread)
	}

	// the help must stay on a single line, the style would wrap it otherwise
	helpWidth := max(r.Width-lipgloss.Width(breadcrumbsRender)-lipgloss.Width(journalRender), 0)
	helpRender := r.Theme.HelpBarStyle.
		Width(helpWidth).
		Render(ansi.Truncate(help, max(helpWidth-r.Theme.HelpBarStyle.GetHorizontalFrameSize(), 0), "…"))

	return lipgloss.JoinHorizontal(lipgloss.Top, helpRender, breadcrumbsRender, journalRender)
}

func (r Root) View() string {
	if r.Height == 0 && r.Width == 0 {
		return ""
	}
	if r.ShuttingDown {
		// keeps the last frame from staying in the terminal after quitting
		return r.Theme.MutedTextStyle.Render("Bye!")
	}

	crumbs := make([]string, 0, len(r.ViewStack))
	for _, view := range r.ViewStack {
		crumbs = append(crumbs, view.Breadcrumb())
	}

	top := r.top()
	return top.View() + "\n" + r.renderBar(strings.Join(crumbs, " ⟩ "), top.KeyMap())
}
