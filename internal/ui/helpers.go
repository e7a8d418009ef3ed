package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type Base struct {
	Width  int
	Height int
	Theme  Theme
}

func (b *Base) SetSize(width, height int) {
	b.Width = width
	b.Height = height
}

func (b *Base) SetTheme(theme Theme) {
	b.Theme = theme
}

type stackOp uint8

const (
	opPush stackOp = iota
	opPop
	opReplace
)

// stackMsg asks the root to change the view stack. The lists always stay at
// the bottom of it.
type stackMsg struct {
	op   stackOp
	view View
}

// frameMsg drives drag tracking and fling animation.
type frameMsg struct{}

// alertMsg opens an AlertView, replacing one that is already open.
type alertMsg struct {
	Title string
	Err   error
}

func pushView(view View) tea.Cmd {
	return func() tea.Msg { return stackMsg{op: opPush, view: view} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return stackMsg{op: opPop} }
}

// PushAlert shows err on top of the current view.
func PushAlert(title string, err error) tea.Cmd {
	return func() tea.Msg {
		return alertMsg{Title: title, Err: err}
	}
}

// ternary returns a if cond holds and b otherwise. Rendering only.
func ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
