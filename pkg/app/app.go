// Package app assembles the Karoo chrome: command table, icon set, menus,
// toolbars, and dock panels, independent of the GUI backend driving it.
package app

import (
	_ "embed"
	"fmt"

	"github.com/karooapp/karoo/pkg/art"
	"github.com/karooapp/karoo/pkg/chrome"
	"github.com/karooapp/karoo/pkg/command"
	"github.com/karooapp/karoo/pkg/logging"
	"github.com/karooapp/karoo/pkg/settings"
	"github.com/karooapp/karoo/pkg/toolkit"
)

//go:embed toolbars.yaml
var toolbarConfigYAML []byte

// Panels declared in layout order. The command callbacks are rebound to the
// docks before menus are built so every toggle action is created checkable.
var panelTable = []struct {
	panel chrome.Panel
	title string
	area  toolkit.DockArea
}{
	{chrome.Panel{ID: "navigator", CommandID: "view.navigator", IconID: "view.navigator"}, "Navigator", toolkit.AreaLeft},
	{chrome.Panel{ID: "search", CommandID: "view.search", IconID: "view.search"}, "Search", toolkit.AreaLeft},
	{chrome.Panel{ID: "properties", CommandID: "view.properties", IconID: "view.properties"}, "Properties", toolkit.AreaRight},
	{chrome.Panel{ID: "assistant", CommandID: "view.assistant", IconID: "view.assistant"}, "Assistant", toolkit.AreaRight},
	{chrome.Panel{ID: "log", CommandID: "view.log", IconID: "view.log"}, "Log", toolkit.AreaBottom},
}

// Options configures the assembly.
type Options struct {
	Settings  *settings.Store
	Log       *logging.Logger
	Callbacks Callbacks
}

// App owns the chrome core singletons and builds the window chrome onto any
// toolkit backend.
type App struct {
	Registry *command.Registry
	Art      *art.Provider
	Binder   *chrome.Binder
	Toolbars *chrome.ToolbarManager
	Docks    *chrome.DockCoordinator

	settings *settings.Store
	log      *logging.Logger
	actions  map[string]toolkit.Action
}

// New creates the chrome core, restores persisted appearance state, and
// registers the built-in icon and command tables.
func New(opts Options) (*App, error) {
	log := opts.Log
	if log == nil {
		log = logging.Nop()
	}
	if opts.Settings == nil {
		return nil, fmt.Errorf("app requires a settings store")
	}

	a := &App{
		Registry: command.NewRegistry(log),
		Art:      art.NewProvider(log),
		settings: opts.Settings,
		log:      log,
	}
	a.Binder = chrome.NewBinder(a.Registry, a.Art, log)
	a.Toolbars = chrome.NewToolbarManager(a.Binder, a.Registry, opts.Settings, log)
	a.Docks = chrome.NewDockCoordinator(a.Binder, a.Registry, a.Art, opts.Settings, log)

	RegisterIcons(a.Art)
	a.restoreAppearance()

	cb := opts.Callbacks
	if cb.ToggleDarkMode == nil {
		cb.ToggleDarkMode = a.toggleDarkMode
	}
	if cb.DarkModeOn == nil {
		cb.DarkModeOn = func() bool { return a.Art.Theme().Name == art.DarkTheme.Name }
	}
	if err := RegisterCommands(a.Registry, cb); err != nil {
		return nil, err
	}
	return a, nil
}

// BuildUI constructs menus, toolbars, and dock panels on the window. Call
// once, on the UI thread, before entering the event loop.
func (a *App) BuildUI(win toolkit.Window) error {
	a.Registry.SetNotifier(&deferredNotifier{win: win})

	for _, entry := range a.panels(win) {
		if err := a.Docks.ConnectPanel(entry.panel, entry.dock); err != nil {
			return fmt.Errorf("connecting panel %s: %w", entry.panel.ID, err)
		}
	}

	menus := chrome.NewMenuBuilder(a.Binder, a.Registry, TopLevelMenus(), a.log)
	a.actions = menus.Build(win.MenuBar())

	cfg, err := chrome.ParseToolbarConfig(toolbarConfigYAML)
	if err != nil {
		return err
	}
	a.Toolbars.Build(win, cfg)

	a.Docks.RestoreVisibility()
	a.log.WithFields(map[string]any{
		"commands": a.Registry.Len(),
		"actions":  a.Binder.BoundCount(),
	}).Info("chrome assembled")
	return nil
}

type builtPanel struct {
	panel chrome.Panel
	dock  toolkit.Dock
}

func (a *App) panels(win toolkit.Window) []builtPanel {
	out := make([]builtPanel, 0, len(panelTable))
	for _, entry := range panelTable {
		dock := win.AddDock(entry.panel.ID, entry.title, entry.area)
		out = append(out, builtPanel{panel: entry.panel, dock: dock})
	}
	return out
}

// Action returns a built menu action by command ID, nil when absent.
func (a *App) Action(commandID string) toolkit.Action {
	return a.actions[commandID]
}

// SetTheme switches the icon theme and persists the choice. Every live
// action has re-resolved its icon by the time this returns.
func (a *App) SetTheme(t art.Theme) {
	a.Art.SetTheme(t)
	a.settings.SetString("appearance/theme", t.Name)
	a.Binder.RefreshState("view.darkMode")
}

// SetIconColor applies and persists a per-icon color override.
func (a *App) SetIconColor(iconID, hex string) {
	a.Art.SetIconColor(iconID, hex)
	if stored := a.Art.IconColorOverride(iconID); stored != "" {
		a.settings.SetString("icons/"+iconID+"/color", stored)
	}
}

// ClearIconColor removes a persisted per-icon color override.
func (a *App) ClearIconColor(iconID string) {
	a.Art.ClearIconColor(iconID)
	a.settings.Delete("icons/" + iconID + "/color")
}

// SetIconTemplate applies and persists a per-icon template override.
func (a *App) SetIconTemplate(iconID, template string) {
	a.Art.SetCustomTemplate(iconID, template)
	a.settings.SetString("icons/"+iconID+"/template", template)
}

// ClearIconTemplate removes a persisted per-icon template override.
func (a *App) ClearIconTemplate(iconID string) {
	a.Art.ClearCustomTemplate(iconID)
	a.settings.Delete("icons/" + iconID + "/template")
}

// ResetIconCustomizations drops every color and template override, both live
// and persisted.
func (a *App) ResetIconCustomizations() {
	a.Art.ResetCustomizations()
	for _, iconID := range a.Art.IconIDs() {
		a.settings.Delete("icons/" + iconID + "/color")
		a.settings.Delete("icons/" + iconID + "/template")
	}
}

// SetIconSize changes one size class and persists it.
func (a *App) SetIconSize(class art.SizeClass, px int) {
	a.Art.SetSize(class, px)
	a.settings.SetInt("icons/sizes/"+class.String(), px)
}

func (a *App) toggleDarkMode() {
	if a.Art.Theme().Name == art.DarkTheme.Name {
		a.SetTheme(art.LightTheme)
	} else {
		a.SetTheme(art.DarkTheme)
	}
}

func (a *App) restoreAppearance() {
	theme := a.settings.String("appearance/theme", art.LightTheme.Name)
	a.Art.SetTheme(art.ThemeByName(theme))

	sizes := a.Art.Sizes()
	for _, class := range art.SizeClasses {
		px := a.settings.Int("icons/sizes/"+class.String(), sizes.For(class))
		sizes = sizes.With(class, px)
	}
	a.Art.SetSizes(sizes)

	for _, iconID := range a.Art.IconIDs() {
		if hex := a.settings.String("icons/"+iconID+"/color", ""); hex != "" {
			a.Art.SetIconColor(iconID, hex)
		}
		if tpl := a.settings.String("icons/"+iconID+"/template", ""); tpl != "" {
			a.Art.SetCustomTemplate(iconID, tpl)
		}
	}
}

// deferredNotifier surfaces the not-yet-implemented notice for phased
// commands.
type deferredNotifier struct {
	win toolkit.Window
}

func (n *deferredNotifier) Deferred(label string, phase int) {
	n.win.Info("Feature Not Available Yet",
		fmt.Sprintf("%s is planned for development phase %d and is not available in this build.",
			label, phase))
}
