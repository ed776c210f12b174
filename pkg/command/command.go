// Package command holds the application-wide command table: every
// user-invocable action, its metadata, and its execution callbacks. Menus,
// toolbars and dock toggles are all projections of this one table.
package command

// Command is the toolkit-independent description of one user-invocable
// action. Callbacks may be nil; a nil Execute makes the command a no-op, a
// nil IsEnabled means always enabled, a nil IsChecked means the command is
// not checkable.
type Command struct {
	// Identification
	ID       string
	Label    string
	Tooltip  string
	Category string

	// Menu placement
	MenuPath       []string // e.g. {"FILE", "Import", "DOCX Document..."}
	SortKey        int      // order within siblings; gaps allow insertion
	SeparatorAfter bool
	ShowInMenu     bool
	ShowInToolbar  bool

	// Visuals and input
	IconID   string // defaults to ID when empty
	Shortcut Shortcut

	// Phase marks commands that are declared but not yet implemented.
	// Executing a command with Phase != 0 surfaces a deferred-feature
	// notice instead of running Execute.
	Phase int

	// Execution logic
	Execute   func()
	IsEnabled func() bool
	IsChecked func() bool
}

// EffectiveIconID returns the icon identifier used to resolve this command's
/// icon: the explicit IconID when set, otherwise the command ID itself.
func (c *Command) EffectiveIconID() string {
	if c.IconID != "" {
		return c.IconID
	}
	return c.ID
}

// Checkable reports whether the command carries a checked-state callback and
// must therefore be rendered as a checkable UI action.
func (c *Command) Checkable() bool {
	return c.IsChecked != nil
}
