package main

import (
	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/wheel"
	"github.com/xqrs/wheel/keybind"
	"github.com/xqrs/wheel/picker"
)

var (
	acceptKey = keybind.NewKeybind(keybind.WithKeys("enter"), keybind.WithHelp("enter", "pick"))
	cancelKey = keybind.NewKeybind(keybind.WithKeys("esc", "q", "ctrl+c"), keybind.WithHelp("esc/q", "quit"))
)

// chooser ends the application when a value is picked or the user gives up.
type chooser struct {
	*picker.Picker
	accepted bool
}

func (c *chooser) InputHandler(event *tcell.EventKey) wheel.Command {
	switch {
	case keybind.Matches(event, acceptKey):
		c.accepted = true
		return wheel.QuitCommand{}
	case keybind.Matches(event, cancelKey):
		return wheel.QuitCommand{}
	}
	return c.Picker.InputHandler(event)
}

// choose runs p full screen until the user picks a value or quits. It
// returns the current item of every column and whether a value was picked.
func choose(p *picker.Picker) (map[string]int, bool, error) {
	c := &chooser{Picker: p.SetHelpKeys(acceptKey, cancelKey)}
	if err := wheel.NewApplication().SetRoot(c).Run(); err != nil {
		return nil, false, err
	}
	return p.GetValues(), c.accepted, nil
}
