package ui

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/loog-project/sidebyside/internal/gesture"
)

// AlertView shows why a gesture script stopped, on top of the lists, until
// it is dismissed. Failed expectations are broken down into what the script
// wanted and what the lists did.
type AlertView struct {
	Base

	Title string
	Err   error
}

var _ View = (*AlertView)(nil)

func (av *AlertView) View() string {
	body := av.Theme.ErrorTextStyle.Render(av.Err.Error())

	var exp gesture.ExpectationError
	if errors.As(av.Err, &exp) {
		body = table.New().
			Border(lipgloss.HiddenBorder()).
			StyleFunc(func(_, col int) lipgloss.Style {
				if col == 0 {
					return av.Theme.MutedTextStyle
				}
				return lipgloss.NewStyle()
			}).
			Row("step", strconv.Itoa(exp.Step)).
			Row("list", exp.List).
			Row(exp.Field+" wanted", exp.Want).
			Row(exp.Field+" got", av.Theme.ErrorTextStyle.Render(exp.Got)).
			Render()
	}

	return lipgloss.Place(av.Width, av.Height, lipgloss.Center, lipgloss.Center,
		av.Theme.AlertDialogContainerStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			av.Theme.MutedTextStyle.Render(av.Title+" stopped:"),
			"",
			body,
		)))
}

func (av *AlertView) KeyMap() string {
	return renderHelp(av.Theme, []key.Binding{alertKeys.Close, rootKeys.Journal})
}

func (av *AlertView) Breadcrumb() string {
	return av.Title
}

func (av *AlertView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, alertKeys.Close) {
		return av, popView()
	}
	return av, nil
}
