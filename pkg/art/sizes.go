package art

// SizeClass names a rendering context with its own pixel size. Builders pass
// the class they render into; users can change each mapping independently.
type SizeClass int

const (
	SizeMenu SizeClass = iota
	SizeToolbar
	SizeTreeView
	SizeTabBar
	SizeButton
	SizeDialog
	SizePanel
)

func (s SizeClass) String() string {
	switch s {
	case SizeMenu:
		return "menu"
	case SizeToolbar:
		return "toolbar"
	case SizeTreeView:
		return "treeview"
	case SizeTabBar:
		return "tabbar"
	case SizeButton:
		return "button"
	case SizeDialog:
		return "dialog"
	case SizePanel:
		return "panel"
	}
	return "unknown"
}

// SizeClasses lists every class, in a stable order, for persistence and
// settings UIs.
var SizeClasses = []SizeClass{
	SizeMenu, SizeToolbar, SizeTreeView, SizeTabBar, SizeButton, SizeDialog, SizePanel,
}

// SizeConfig maps each size class to a pixel size.
type SizeConfig struct {
	Menu     int
	Toolbar  int
	TreeView int
	TabBar   int
	Button   int
	Dialog   int
	Panel    int
}

// DefaultSizes are the factory pixel sizes.
var DefaultSizes = SizeConfig{
	Menu:     16,
	Toolbar:  24,
	TreeView: 20,
	TabBar:   16,
	Button:   20,
	Dialog:   32,
	Panel:    16,
}

// For returns the pixel size for a class.
func (c SizeConfig) For(class SizeClass) int {
	switch class {
	case SizeMenu:
		return c.Menu
	case SizeToolbar:
		return c.Toolbar
	case SizeTreeView:
		return c.TreeView
	case SizeTabBar:
		return c.TabBar
	case SizeButton:
		return c.Button
	case SizeDialog:
		return c.Dialog
	case SizePanel:
		return c.Panel
	}
	return c.Toolbar
}

// With returns a copy of the config with one class changed.
func (c SizeConfig) With(class SizeClass, px int) SizeConfig {
	switch class {
	case SizeMenu:
		c.Menu = px
	case SizeToolbar:
		c.Toolbar = px
	case SizeTreeView:
		c.TreeView = px
	case SizeTabBar:
		c.TabBar = px
	case SizeButton:
		c.Button = px
	case SizeDialog:
		c.Dialog = px
	case SizePanel:
		c.Panel = px
	}
	return c
}
