package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// CommonModel is embedded by every screen to track the terminal size.
type CommonModel struct {
	Width  int
	Height int
}

func (c *CommonModel) resize(msg tea.WindowSizeMsg) {
	c.Width = msg.Width
	c.Height = msg.Height
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
