package ui

import "github.com/charmbracelet/lipgloss"

// Some predefined colors

var (
	ColorRed        = lipgloss.Color("1")
	ColorBlue       = lipgloss.Color("4")
	ColorBlack      = lipgloss.Color("0")
	ColorWhite      = lipgloss.Color("7")
	ColorBrightBlue = lipgloss.Color("33")
	ColorLightGray  = lipgloss.Color("243")
	ColorGray       = lipgloss.Color("238")
	ColorOrange     = lipgloss.Color("214")
)

type Theme struct {
	// tag styles of list 1 and list 2
	PrimaryTagStyle   lipgloss.Style
	SecondaryTagStyle lipgloss.Style
	ItemTextStyle     lipgloss.Style

	AlertDialogContainerStyle  lipgloss.Style
	BorderActiveContainerStyle lipgloss.Style
	BorderIdleContainerStyle   lipgloss.Style

	MutedTextStyle   lipgloss.Style
	ErrorTextStyle   lipgloss.Style
	PrimaryTextStyle lipgloss.Style
	ActivityStyle    lipgloss.Style

	BreadcrumbBarStyle lipgloss.Style
	HelpBarStyle       lipgloss.Style
	JournalBarStyle    lipgloss.Style

	// journal entry badges, indexed by EntryKind
	EntryStyles [entryKinds]lipgloss.Style
}

// EntryStyle returns the badge style of a journal entry.
func (t Theme) EntryStyle(e Entry) lipgloss.Style {
	if e.Failed {
		return t.ErrorTextStyle
	}
	return t.EntryStyles[e.Kind]
}

// TagStyle returns the style of the tag of the list with the given id.
func (t Theme) TagStyle(tag int) lipgloss.Style {
	if tag == 2 {
		return t.SecondaryTagStyle
	}
	return t.PrimaryTagStyle
}

var DarkTheme = Theme{
	PrimaryTagStyle: lipgloss.NewStyle().
		Background(ColorRed).
		Foreground(ColorWhite),
	SecondaryTagStyle: lipgloss.NewStyle().
		Background(ColorBlue).
		Foreground(ColorWhite),
	ItemTextStyle: lipgloss.NewStyle().
		Bold(true),

	AlertDialogContainerStyle: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorRed).
		Padding(4, 4),
	BorderActiveContainerStyle: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBrightBlue),
	BorderIdleContainerStyle: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGray),

	MutedTextStyle: lipgloss.NewStyle().
		Foreground(ColorLightGray),
	ErrorTextStyle: lipgloss.NewStyle().
		Foreground(ColorRed).
		Bold(true),
	PrimaryTextStyle: lipgloss.NewStyle().
		Foreground(ColorBrightBlue),
	ActivityStyle: lipgloss.NewStyle().
		Foreground(ColorOrange).
		Bold(true),

	BreadcrumbBarStyle: lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorBrightBlue).
		Foreground(ColorWhite),
	HelpBarStyle: lipgloss.NewStyle().
		Padding(0, 1),
	JournalBarStyle: lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorOrange).
		Foreground(ColorBlack),

	EntryStyles: [entryKinds]lipgloss.Style{
		EntryArbiter: lipgloss.NewStyle().
			Background(ColorOrange).
			Foreground(ColorBlack),
		EntryMirror: lipgloss.NewStyle().
			Foreground(ColorBrightBlue),
		EntryRelease: lipgloss.NewStyle().
			Foreground(ColorWhite),
		EntryScript: lipgloss.NewStyle().
			Foreground(ColorLightGray).
			Italic(true),
	},
}
