package chrome

import (
	"github.com/karooapp/karoo/pkg/art"
	"github.com/karooapp/karoo/pkg/command"
	"github.com/karooapp/karoo/pkg/logging"
	"github.com/karooapp/karoo/pkg/toolkit"
)

// Panel declares one dockable panel and the command that toggles it.
type Panel struct {
	ID        string
	CommandID string
	IconID    string
}

// DockCoordinator links dock panels to their toggle commands. The link is
// two-way: executing the command flips visibility, and external visibility
// changes (the dock's own close button) push the new state back into every
// bound action. A per-panel re-entrancy flag breaks the feedback loop so a
// state push never re-invokes the toggle command.
type DockCoordinator struct {
	binder   *Binder
	registry *command.Registry
	art      *art.Provider
	settings Settings
	log      *logging.Logger

	panels map[string]*panelBinding
}

type panelBinding struct {
	panel   Panel
	dock    toolkit.Dock
	syncing bool
}

// NewDockCoordinator creates a coordinator; panels are attached one by one
// with ConnectPanel.
func NewDockCoordinator(binder *Binder, reg *command.Registry, prov *art.Provider, settings Settings, log *logging.Logger) *DockCoordinator {
	if log == nil {
		log = logging.Nop()
	}
	return &DockCoordinator{
		binder:   binder,
		registry: reg,
		art:      prov,
		settings: settings,
		log:      log,
		panels:   make(map[string]*panelBinding),
	}
}

// ConnectPanel rebinds the panel command's execute callback to toggle the
// dock and its checked callback to report dock visibility, installs the
// reverse visibility link, and keeps the dock's title icon current across
// resource broadcasts. Call before building menus so the toggle actions are
// created checkable.
func (d *DockCoordinator) ConnectPanel(p Panel, dock toolkit.Dock) error {
	pb := &panelBinding{panel: p, dock: dock}

	err := d.registry.Rebind(p.CommandID,
		func() {
			if pb.syncing {
				return
			}
			dock.SetVisible(!dock.Visible())
		},
		nil,
		func() bool {
			return dock.Visible()
		})
	if err != nil {
		return err
	}

	dock.OnVisibilityChanged(func(visible bool) {
		if pb.syncing {
			return
		}
		pb.syncing = true
		d.binder.RefreshState(p.CommandID)
		d.settings.SetBool(dockVisibilityKey(p.ID), visible)
		pb.syncing = false
	})

	if p.IconID != "" {
		applyIcon := func() {
			dock.SetTitleIcon(d.art.Resolve(p.IconID, art.SizePanel))
		}
		applyIcon()
		d.art.Subscribe(applyIcon)
	}

	d.panels[p.ID] = pb
	return nil
}

// CreatePanelAction builds a checkable action for a connected panel's toggle
// command, trigger wired through the registry.
func (d *DockCoordinator) CreatePanelAction(commandID string, container toolkit.ActionContainer) (toolkit.Action, error) {
	cmd, err := d.registry.Get(commandID)
	if err != nil {
		return nil, err
	}
	return d.binder.CreateCommandAction(container, cmd, art.SizeMenu), nil
}

// RestoreVisibility applies the persisted visibility of every connected
// panel. Panels default to visible.
func (d *DockCoordinator) RestoreVisibility() {
	for _, pb := range d.panels {
		visible := d.settings.Bool(dockVisibilityKey(pb.panel.ID), true)
		pb.dock.SetVisible(visible)
		d.binder.RefreshState(pb.panel.CommandID)
	}
}

// Dock returns a connected panel's dock handle, nil when unknown.
func (d *DockCoordinator) Dock(panelID string) toolkit.Dock {
	if pb, ok := d.panels[panelID]; ok {
		return pb.dock
	}
	return nil
}

func dockVisibilityKey(id string) string {
	return "docks/" + id + "/visible"
}
