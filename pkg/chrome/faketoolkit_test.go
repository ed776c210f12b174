package chrome

import (
	"github.com/karooapp/karoo/pkg/art"
	"github.com/karooapp/karoo/pkg/toolkit"
)

// Test doubles for the toolkit interfaces. They record what chrome does to
// them and emit visibility events the way a real toolkit would.

const testIconSVG = `<svg width="24" height="24" viewBox="0 0 24 24">` +
	`<rect x="2" y="2" width="20" height="20" fill="{COLOR}"/></svg>`

type fakeAction struct {
	label     string
	tooltip   string
	shortcut  string
	enabled   bool
	checkable bool
	checked   bool
	icon      *art.Bitmap
	iconSets  int
	triggers  []func()
	destroyed []func()
}

func (a *fakeAction) SetIcon(b *art.Bitmap) { a.icon = b; a.iconSets++ }
func (a *fakeAction) SetToolTip(s string)   { a.tooltip = s }
func (a *fakeAction) SetShortcut(s string)  { a.shortcut = s }
func (a *fakeAction) SetEnabled(v bool)     { a.enabled = v }
func (a *fakeAction) SetCheckable(v bool)   { a.checkable = v }
func (a *fakeAction) SetChecked(v bool)     { a.checked = v }
func (a *fakeAction) Checked() bool         { return a.checked }
func (a *fakeAction) OnTriggered(fn func()) { a.triggers = append(a.triggers, fn) }
func (a *fakeAction) OnDestroyed(fn func()) { a.destroyed = append(a.destroyed, fn) }

// trigger simulates user activation: a checkable action flips its own
// checked state before the handler runs, matching toolkit behavior.
func (a *fakeAction) trigger() {
	if a.checkable {
		a.checked = !a.checked
	}
	for _, fn := range a.triggers {
		fn()
	}
}

func (a *fakeAction) destroy() {
	for _, fn := range a.destroyed {
		fn()
	}
}

// fakeMenu records its children in insertion order: "action:<label>",
// "menu:<title>", or "sep".
type fakeMenu struct {
	title   string
	order   []string
	actions []*fakeAction
	menus   []*fakeMenu
}

func (m *fakeMenu) AddAction(label string) toolkit.Action {
	act := &fakeAction{label: label}
	m.actions = append(m.actions, act)
	m.order = append(m.order, "action:"+label)
	return act
}

func (m *fakeMenu) AddSeparator() {
	m.order = append(m.order, "sep")
}

func (m *fakeMenu) AddMenu(title string) toolkit.Menu {
	sub := &fakeMenu{title: title}
	m.menus = append(m.menus, sub)
	m.order = append(m.order, "menu:"+title)
	return sub
}

func (m *fakeMenu) Title() string { return m.title }

func (m *fakeMenu) findMenu(title string) *fakeMenu {
	for _, sub := range m.menus {
		if sub.title == title {
			return sub
		}
	}
	return nil
}

type fakeMenuBar struct {
	menus []*fakeMenu
}

func (b *fakeMenuBar) AddMenu(title string) toolkit.Menu {
	m := &fakeMenu{title: title}
	b.menus = append(b.menus, m)
	return m
}

type fakeToolbar struct {
	order     []string
	actions   []*fakeAction
	visible   bool
	listeners []func(bool)
}

func (t *fakeToolbar) AddAction(label string) toolkit.Action {
	act := &fakeAction{label: label}
	t.actions = append(t.actions, act)
	t.order = append(t.order, "action:"+label)
	return act
}

func (t *fakeToolbar) AddSeparator() {
	t.order = append(t.order, "sep")
}

func (t *fakeToolbar) SetVisible(v bool) {
	if t.visible == v {
		return
	}
	t.visible = v
	for _, fn := range t.listeners {
		fn(v)
	}
}

func (t *fakeToolbar) Visible() bool { return t.visible }

func (t *fakeToolbar) OnVisibilityChanged(fn func(bool)) {
	t.listeners = append(t.listeners, fn)
}

type fakeDock struct {
	visible   bool
	titleIcon *art.Bitmap
	iconSets  int
	flips     int
	listeners []func(bool)
}

func (d *fakeDock) SetVisible(v bool) {
	if d.visible == v {
		return
	}
	d.visible = v
	d.flips++
	for _, fn := range d.listeners {
		fn(v)
	}
}

func (d *fakeDock) Visible() bool { return d.visible }

func (d *fakeDock) OnVisibilityChanged(fn func(bool)) {
	d.listeners = append(d.listeners, fn)
}

func (d *fakeDock) SetTitleIcon(b *art.Bitmap) {
	d.titleIcon = b
	d.iconSets++
}

type fakeWindow struct {
	bar      *fakeMenuBar
	toolbars []*fakeToolbar
	docks    []*fakeDock
	infos    []string
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{bar: &fakeMenuBar{}}
}

func (w *fakeWindow) MenuBar() toolkit.MenuBar { return w.bar }

func (w *fakeWindow) AddToolbar(id, title string, area toolkit.DockArea) toolkit.Toolbar {
	tb := &fakeToolbar{visible: true}
	w.toolbars = append(w.toolbars, tb)
	return tb
}

func (w *fakeWindow) AddDock(id, title string, area toolkit.DockArea) toolkit.Dock {
	d := &fakeDock{visible: true}
	w.docks = append(w.docks, d)
	return d
}

func (w *fakeWindow) Info(title, message string) {
	w.infos = append(w.infos, title+": "+message)
}

type fakeSettings struct {
	bools map[string]bool
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{bools: make(map[string]bool)}
}

func (s *fakeSettings) Bool(key string, def bool) bool {
	if v, ok := s.bools[key]; ok {
		return v
	}
	return def
}

func (s *fakeSettings) SetBool(key string, v bool) {
	s.bools[key] = v
}
