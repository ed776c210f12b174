package chrome

import (
	"github.com/karooapp/karoo/pkg/art"
	"github.com/karooapp/karoo/pkg/command"
	"github.com/karooapp/karoo/pkg/logging"
	"github.com/karooapp/karoo/pkg/toolkit"
)

// TopLevelMenu pairs a command path group with its display title. The
// builder shows top-level menus in exactly this order; groups not listed are
// never shown.
type TopLevelMenu struct {
	Group string
	Title string
}

// MenuBuilder projects the command table into a menu bar. Commands are
// grouped by the first path segment, intermediate segments become nested
// submenus reused by title, and the last segment is the leaf action.
type MenuBuilder struct {
	binder   *Binder
	registry *command.Registry
	topLevel []TopLevelMenu
	log      *logging.Logger
}

// NewMenuBuilder creates a builder with a fixed top-level menu order.
func NewMenuBuilder(binder *Binder, reg *command.Registry, topLevel []TopLevelMenu, log *logging.Logger) *MenuBuilder {
	if log == nil {
		log = logging.Nop()
	}
	return &MenuBuilder{binder: binder, registry: reg, topLevel: topLevel, log: log}
}

// Build populates the menu bar from the registry and returns the created
// leaf actions keyed by command ID. Commands with an empty path or
// ShowInMenu unset are skipped.
func (m *MenuBuilder) Build(bar toolkit.MenuBar) map[string]toolkit.Action {
	actions := make(map[string]toolkit.Action)
	for _, top := range m.topLevel {
		cmds := m.registry.ByPathPrefix(top.Group)
		var shown []*command.Command
		for _, cmd := range cmds {
			if cmd.ShowInMenu && len(cmd.MenuPath) >= 1 {
				shown = append(shown, cmd)
			}
		}
		if len(shown) == 0 {
			continue
		}

		root := bar.AddMenu(top.Title)
		state := &menuState{
			submenus:  make(map[toolkit.Menu]map[string]toolkit.Menu),
			separator: make(map[toolkit.Menu]bool),
		}
		for _, cmd := range shown {
			m.place(root, state, cmd, actions)
		}
	}
	return actions
}

// menuState tracks submenu reuse and pending separators per menu node.
// Separators are deferred until the next item so a trailing SeparatorAfter
// never paints a dangling rule at the bottom of a menu.
type menuState struct {
	submenus  map[toolkit.Menu]map[string]toolkit.Menu
	separator map[toolkit.Menu]bool
}

func (m *MenuBuilder) place(root toolkit.Menu, state *menuState, cmd *command.Command, actions map[string]toolkit.Action) {
	parent := root
	// Segments after the group and before the leaf are submenus.
	if len(cmd.MenuPath) > 2 {
		for _, seg := range cmd.MenuPath[1 : len(cmd.MenuPath)-1] {
			parent = state.submenu(parent, seg)
		}
	}

	if state.separator[parent] {
		parent.AddSeparator()
		state.separator[parent] = false
	}

	actions[cmd.ID] = m.binder.CreateCommandAction(parent, cmd, art.SizeMenu)
	if cmd.SeparatorAfter {
		state.separator[parent] = true
	}
}

func (s *menuState) submenu(parent toolkit.Menu, title string) toolkit.Menu {
	children, ok := s.submenus[parent]
	if !ok {
		children = make(map[string]toolkit.Menu)
		s.submenus[parent] = children
	}
	if sub, ok := children[title]; ok {
		return sub
	}
	if s.separator[parent] {
		parent.AddSeparator()
		s.separator[parent] = false
	}
	sub := parent.AddMenu(title)
	children[title] = sub
	return sub
}
