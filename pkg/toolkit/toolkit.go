// Package toolkit defines the narrow interfaces the chrome core renders
// into. Each GUI backend (Qt, Fyne) implements them; the core never imports
// a widget toolkit directly.
package toolkit

import "github.com/karooapp/karoo/pkg/art"

// Action is a live, toolkit-native UI action.
type Action interface {
	SetIcon(*art.Bitmap)
	SetToolTip(string)
	SetShortcut(string)
	SetEnabled(bool)
	SetCheckable(bool)
	SetChecked(bool)
	Checked() bool

	// OnTriggered registers the activation handler.
	OnTriggered(func())
	// OnDestroyed registers teardown run when the owning container dies;
	// bindings use it to cancel broadcast subscriptions.
	OnDestroyed(func())
}

// ActionContainer is anything actions can be appended to.
type ActionContainer interface {
	AddAction(label string) Action
	AddSeparator()
}

// Menu is one (sub)menu.
type Menu interface {
	ActionContainer
	AddMenu(title string) Menu
	Title() string
}

// MenuBar is the window's top-level menu strip.
type MenuBar interface {
	AddMenu(title string) Menu
}

// DockArea positions toolbars and docks around the central widget.
type DockArea int

const (
	AreaTop DockArea = iota
	AreaBottom
	AreaLeft
	AreaRight
)

// ParseDockArea maps the config spelling to an area, defaulting to top.
func ParseDockArea(s string) DockArea {
	switch s {
	case "bottom":
		return AreaBottom
	case "left":
		return AreaLeft
	case "right":
		return AreaRight
	default:
		return AreaTop
	}
}

// Toolbar is one toolbar strip.
type Toolbar interface {
	ActionContainer
	SetVisible(bool)
	Visible() bool
	OnVisibilityChanged(func(bool))
}

// Dock is a togglable side panel. The title icon lives in the dock's title
// bar and follows theme changes.
type Dock interface {
	SetVisible(bool)
	Visible() bool
	OnVisibilityChanged(func(bool))
	SetTitleIcon(*art.Bitmap)
}

// Window is the main application window the chrome is assembled into.
type Window interface {
	MenuBar() MenuBar
	AddToolbar(id, title string, area DockArea) Toolbar
	AddDock(id, title string, area DockArea) Dock

	// Info shows a modal informational notice; used for deferred-feature
	// messages.
	Info(title, message string)
}
