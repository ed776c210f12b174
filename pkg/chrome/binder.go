// Package chrome assembles the window chrome: it projects the command table
// into menus, toolbars and dock toggles, and keeps every live action's icon
// and state synchronized with the visual resource provider.
package chrome

import (
	"sync"

	"github.com/karooapp/karoo/pkg/art"
	"github.com/karooapp/karoo/pkg/command"
	"github.com/karooapp/karoo/pkg/logging"
	"github.com/karooapp/karoo/pkg/toolkit"
)

// Settings is the key-value store chrome state is persisted into.
type Settings interface {
	Bool(key string, def bool) bool
	SetBool(key string, value bool)
}

// Binder turns commands into live toolkit actions and keeps them fresh. Each
// created action subscribes to the resource provider's broadcast for icon
// refresh and is tracked so enabled/checked state can be pushed when it
// changes outside the action itself.
type Binder struct {
	registry *command.Registry
	art      *art.Provider
	log      *logging.Logger

	mu     sync.Mutex
	bound  map[int]*boundAction
	nextID int
}

type boundAction struct {
	commandID string
	checkable bool
	act       toolkit.Action
}

// NewBinder creates a binder over the given registry and resource provider.
func NewBinder(reg *command.Registry, prov *art.Provider, log *logging.Logger) *Binder {
	if log == nil {
		log = logging.Nop()
	}
	return &Binder{
		registry: reg,
		art:      prov,
		log:      log,
		bound:    make(map[int]*boundAction),
	}
}

// CreateAction builds an action for cmd inside container, applying label,
// tooltip, shortcut, checkability, enabled state and the resolved icon. The
// icon re-resolves on every resource broadcast; the subscription is cancelled
// when the action is destroyed. Execution is not wired here, the caller
// connects the trigger.
func (b *Binder) CreateAction(container toolkit.ActionContainer, cmd *command.Command, class art.SizeClass) toolkit.Action {
	act := container.AddAction(cmd.Label)
	if cmd.Tooltip != "" {
		act.SetToolTip(cmd.Tooltip)
	}
	if !cmd.Shortcut.IsZero() {
		act.SetShortcut(cmd.Shortcut.String())
	}
	if cmd.Checkable() {
		act.SetCheckable(true)
		act.SetChecked(b.registry.Checked(cmd.ID))
	}
	act.SetEnabled(b.registry.CanExecute(cmd.ID))

	applyIcon := func() {
		act.SetIcon(b.art.Resolve(cmd.EffectiveIconID(), class))
	}
	applyIcon()
	cancelBroadcast := b.art.Subscribe(applyIcon)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.bound[id] = &boundAction{commandID: cmd.ID, checkable: cmd.Checkable(), act: act}
	b.mu.Unlock()

	act.OnDestroyed(func() {
		cancelBroadcast()
		b.mu.Lock()
		delete(b.bound, id)
		b.mu.Unlock()
	})
	return act
}

// CreateCommandAction is CreateAction with the trigger wired to the registry.
func (b *Binder) CreateCommandAction(container toolkit.ActionContainer, cmd *command.Command, class art.SizeClass) toolkit.Action {
	act := b.CreateAction(container, cmd, class)
	id := cmd.ID
	act.OnTriggered(func() {
		b.registry.Execute(id)
		b.RefreshState(id)
	})
	return act
}

// RefreshState pushes the current enabled and checked state of one command
// into every live action bound to it.
func (b *Binder) RefreshState(commandID string) {
	enabled := b.registry.CanExecute(commandID)
	checked := b.registry.Checked(commandID)
	for _, ba := range b.snapshot() {
		if ba.commandID != commandID {
			continue
		}
		ba.act.SetEnabled(enabled)
		if ba.checkable {
			ba.act.SetChecked(checked)
		}
	}
}

// RefreshAllStates re-pulls enabled and checked state for every live action.
// Called after command execution, when any command's state may have changed.
func (b *Binder) RefreshAllStates() {
	for _, ba := range b.snapshot() {
		ba.act.SetEnabled(b.registry.CanExecute(ba.commandID))
		if ba.checkable {
			ba.act.SetChecked(b.registry.Checked(ba.commandID))
		}
	}
}

// BoundCount reports how many live actions the binder tracks.
func (b *Binder) BoundCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.bound)
}

func (b *Binder) snapshot() []*boundAction {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*boundAction, 0, len(b.bound))
	for _, ba := range b.bound {
		out = append(out, ba)
	}
	return out
}
