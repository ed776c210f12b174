package command

import (
	"fmt"
	"sort"
	"sync"

	"github.com/karooapp/karoo/pkg/logging"
)

// Notifier surfaces the deferred-feature notice shown when a command whose
// Phase marker is non-zero is invoked. Frontends implement it with a native
// message box.
type Notifier interface {
	Deferred(label string, phase int)
}

// FaultHandler receives command execution faults (unknown IDs, panicking
// callbacks). Faults are always logged; the handler is an optional extra
// surface, e.g. a status bar.
type FaultHandler func(commandID string, msg string)

// Registry is the authoritative table of commands. All mutation and querying
// is safe for multi-threaded embedding, though the application confines both
// to the UI thread.
type Registry struct {
	mu       sync.Mutex
	commands map[string]*Command
	notifier Notifier
	onFault  FaultHandler

	log *logging.Logger
}

// NewRegistry creates an empty registry. A nil logger is replaced with a
// no-op logger.
func NewRegistry(log *logging.Logger) *Registry {
	if log == nil {
		log = logging.Nop()
	}
	return &Registry{
		commands: make(map[string]*Command),
		log:      log,
	}
}

// SetNotifier installs the deferred-feature notice surface.
func (r *Registry) SetNotifier(n Notifier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifier = n
}

// SetFaultHandler installs an optional execution fault callback.
func (r *Registry) SetFaultHandler(h FaultHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onFault = h
}

// Register adds a command to the table. Registering an ID twice fails with
// DuplicateIDError; empty IDs and empty menu path segments are rejected.
func (r *Registry) Register(cmd *Command) error {
	if cmd == nil || cmd.ID == "" {
		return fmt.Errorf("command registration requires a non-empty ID")
	}
	for _, seg := range cmd.MenuPath {
		if seg == "" {
			return fmt.Errorf("command %q has an empty menu path segment", cmd.ID)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.commands[cmd.ID]; exists {
		return &DuplicateIDError{ID: cmd.ID}
	}
	r.commands[cmd.ID] = cmd
	r.log.WithFields(map[string]any{"command": cmd.ID}).Debug("command registered")
	return nil
}

// Unregister removes a command. Removing an unknown ID is a no-op.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.commands, id)
}

// Get returns the command for id or NotFoundError. The returned pointer is
// the live table entry; callers on the UI thread may reassign its callbacks
// and the next query observes the change.
func (r *Registry) Get(id string) (*Command, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cmd, ok := r.commands[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return cmd, nil
}

// Rebind replaces a command's execute, enabled, and checked callbacks under
// the registry lock. Used by the dock coordinator to attach panel toggling
// after the panels exist. Passing nil clears the respective callback.
func (r *Registry) Rebind(id string, execute func(), enabled, checked func() bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cmd, ok := r.commands[id]
	if !ok {
		return &NotFoundError{ID: id}
	}
	cmd.Execute = execute
	cmd.IsEnabled = enabled
	cmd.IsChecked = checked
	return nil
}

// All returns every registered command, ordered by sort key then ID.
func (r *Registry) All() []*Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}
	sortCommands(result)
	return result
}

// ByCategory returns the commands in one category, ordered by sort key.
func (r *Registry) ByCategory(category string) []*Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*Command
	for _, cmd := range r.commands {
		if cmd.Category == category {
			result = append(result, cmd)
		}
	}
	sortCommands(result)
	return result
}

// ByPathPrefix returns the commands whose menu path starts with the given
// segments, ordered by sort key.
func (r *Registry) ByPathPrefix(prefix ...string) []*Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*Command
	for _, cmd := range r.commands {
		if hasPathPrefix(cmd.MenuPath, prefix) {
			result = append(result, cmd)
		}
	}
	sortCommands(result)
	return result
}

// Execute runs the command's execute callback. Unknown IDs and callback
// panics are logged and reported to the fault handler; nothing propagates to
// the caller. A command with a non-zero Phase shows the deferred-feature
// notice instead of executing.
func (r *Registry) Execute(id string) {
	r.mu.Lock()
	cmd, ok := r.commands[id]
	var (
		execute  func()
		label    string
		phase    int
		notifier = r.notifier
		onFault  = r.onFault
	)
	if ok {
		execute = cmd.Execute
		label = cmd.Label
		phase = cmd.Phase
	}
	r.mu.Unlock()

	if !ok {
		r.fault(onFault, id, "unknown command")
		return
	}

	if phase != 0 {
		r.log.WithFields(map[string]any{"command": id, "phase": phase}).
			Info("deferred command invoked")
		if notifier != nil {
			notifier.Deferred(label, phase)
		}
		return
	}

	if execute == nil {
		r.log.WithFields(map[string]any{"command": id}).Debug("command has no execute callback")
		return
	}

	// Callbacks run outside the lock so they may re-enter the registry.
	if err := safeCall(execute); err != nil {
		r.fault(onFault, id, err.Error())
	}
}

// CanExecute reports the command's enabled state: the IsEnabled callback
// result, true when no callback is set, false for unknown IDs or panicking
// callbacks.
func (r *Registry) CanExecute(id string) bool {
	r.mu.Lock()
	cmd, ok := r.commands[id]
	var isEnabled func() bool
	if ok {
		isEnabled = cmd.IsEnabled
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	if isEnabled == nil {
		return true
	}
	return safeBool(isEnabled, false, r.log, id, "isEnabled")
}

// Checked reports the command's checked state, false for unknown IDs,
// non-checkable commands, or panicking callbacks.
func (r *Registry) Checked(id string) bool {
	r.mu.Lock()
	cmd, ok := r.commands[id]
	var isChecked func() bool
	if ok {
		isChecked = cmd.IsChecked
	}
	r.mu.Unlock()

	if !ok || isChecked == nil {
		return false
	}
	return safeBool(isChecked, false, r.log, id, "isChecked")
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.commands)
}

func (r *Registry) fault(handler FaultHandler, id, msg string) {
	r.log.WithFields(map[string]any{"command": id}).Warn("command fault: " + msg)
	if handler != nil {
		handler(id, msg)
	}
}

func sortCommands(cmds []*Command) {
	sort.SliceStable(cmds, func(i, j int) bool {
		if cmds[i].SortKey != cmds[j].SortKey {
			return cmds[i].SortKey < cmds[j].SortKey
		}
		return cmds[i].ID < cmds[j].ID
	})
}

func hasPathPrefix(path, prefix []string) bool {
	if len(prefix) > len(path) {
		return false
	}
	for i, seg := range prefix {
		if path[i] != seg {
			return false
		}
	}
	return true
}

func safeCall(fn func()) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("callback panic: %v", rec)
		}
	}()
	fn()
	return nil
}

func safeBool(fn func() bool, fallback bool, log *logging.Logger, id, kind string) (result bool) {
	result = fallback
	defer func() {
		if rec := recover(); rec != nil {
			result = fallback
			log.WithFields(map[string]any{"command": id, "callback": kind}).
				Warn(fmt.Sprintf("callback panic: %v", rec))
		}
	}()
	return fn()
}
