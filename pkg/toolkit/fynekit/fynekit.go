// Package fynekit implements the toolkit interfaces over Fyne. Fyne has no
// native toolbars-in-areas or dock widgets, so toolbars stack under the menu
// bar and docks are side panels in a border layout; visibility events are
// raised by the wrappers themselves.
package fynekit

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/karooapp/karoo/pkg/art"
	"github.com/karooapp/karoo/pkg/logging"
	"github.com/karooapp/karoo/pkg/toolkit"
)

// Window wraps a fyne.Window. The menu structure is accumulated while the
// builders run and pushed to Fyne by Show.
type Window struct {
	app fyne.App
	win fyne.Window
	log *logging.Logger

	menus    []*menu
	topBars  []fyne.CanvasObject
	left     []fyne.CanvasObject
	right    []fyne.CanvasObject
	bottom   []fyne.CanvasObject
	center   fyne.CanvasObject
	iconSeq  int
	onClosed []func()
}

// NewWindow creates the application window.
func NewWindow(title string, width, height int, log *logging.Logger) *Window {
	if log == nil {
		log = logging.Nop()
	}
	a := app.New()
	win := a.NewWindow(title)
	win.Resize(fyne.NewSize(float32(width), float32(height)))
	w := &Window{app: a, win: win, log: log}
	win.SetOnClosed(func() {
		for _, fn := range w.onClosed {
			fn()
		}
	})
	return w
}

// SetContent installs the central widget.
func (w *Window) SetContent(obj fyne.CanvasObject) { w.center = obj }

// ShowAndRun lays out the accumulated chrome and enters the event loop.
func (w *Window) ShowAndRun() {
	w.refreshMenu()
	w.refreshLayout()
	w.win.ShowAndRun()
}

// Close closes the window, ending the event loop.
func (w *Window) Close() { w.win.Close() }

func (w *Window) refreshMenu() {
	items := make([]*fyne.Menu, 0, len(w.menus))
	for _, m := range w.menus {
		items = append(items, m.build())
	}
	w.win.SetMainMenu(fyne.NewMainMenu(items...))
}

func (w *Window) refreshLayout() {
	var top fyne.CanvasObject
	if len(w.topBars) > 0 {
		top = container.NewVBox(w.topBars...)
	}
	var left, right, bottom fyne.CanvasObject
	if len(w.left) > 0 {
		left = container.NewHBox(w.left...)
	}
	if len(w.right) > 0 {
		right = container.NewHBox(w.right...)
	}
	if len(w.bottom) > 0 {
		bottom = container.NewVBox(w.bottom...)
	}
	center := w.center
	if center == nil {
		center = container.NewWithoutLayout()
	}
	w.win.SetContent(container.NewBorder(top, bottom, left, right, center))
}

func (w *Window) MenuBar() toolkit.MenuBar { return (*menuBar)(w) }

func (w *Window) AddToolbar(id, title string, area toolkit.DockArea) toolkit.Toolbar {
	tb := &toolbar{win: w, bar: widget.NewToolbar(), visible: true}
	switch area {
	case toolkit.AreaBottom:
		w.bottom = append(w.bottom, tb.bar)
	default:
		w.topBars = append(w.topBars, tb.bar)
	}
	return tb
}

func (w *Window) AddDock(id, title string, area toolkit.DockArea) toolkit.Dock {
	body := container.NewVBox(widget.NewLabelWithStyle(title, fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true}))
	d := &dock{win: w, title: title, box: body, visible: true}
	switch area {
	case toolkit.AreaRight:
		w.right = append(w.right, body)
	case toolkit.AreaBottom:
		w.bottom = append(w.bottom, body)
	default:
		w.left = append(w.left, body)
	}
	return d
}

func (w *Window) Info(title, message string) {
	dialog.ShowInformation(title, message, w.win)
}

func (w *Window) resource(b *art.Bitmap) fyne.Resource {
	if b == nil {
		return nil
	}
	data, err := b.PNG()
	if err != nil {
		return nil
	}
	w.iconSeq++
	return fyne.NewStaticResource(fmt.Sprintf("icon-%d.png", w.iconSeq), data)
}

type menuBar Window

func (b *menuBar) AddMenu(title string) toolkit.Menu {
	w := (*Window)(b)
	m := &menu{win: w, title: title}
	w.menus = append(w.menus, m)
	return m
}

// menu accumulates items; build converts them to a fyne.Menu. Fyne menus are
// value structures, so every mutation rebuilds the main menu.
type menu struct {
	win   *Window
	title string
	items []menuEntry
}

type menuEntry struct {
	action *action
	sub    *menu
	sep    bool
}

func (m *menu) AddAction(label string) toolkit.Action {
	act := &action{win: m.win, item: fyne.NewMenuItem(label, nil)}
	act.item.Action = func() { act.fireTriggered() }
	m.items = append(m.items, menuEntry{action: act})
	m.win.refreshMenu()
	return act
}

func (m *menu) AddSeparator() {
	m.items = append(m.items, menuEntry{sep: true})
	m.win.refreshMenu()
}

func (m *menu) AddMenu(title string) toolkit.Menu {
	sub := &menu{win: m.win, title: title}
	m.items = append(m.items, menuEntry{sub: sub})
	m.win.refreshMenu()
	return sub
}

func (m *menu) Title() string { return m.title }

func (m *menu) build() *fyne.Menu {
	items := make([]*fyne.MenuItem, 0, len(m.items))
	for _, e := range m.items {
		switch {
		case e.sep:
			items = append(items, fyne.NewMenuItemSeparator())
		case e.sub != nil:
			parent := fyne.NewMenuItem(e.sub.title, nil)
			parent.ChildMenu = e.sub.build()
			items = append(items, parent)
		default:
			items = append(items, e.action.item)
		}
	}
	return fyne.NewMenu(m.title, items...)
}

type action struct {
	win       *Window
	item      *fyne.MenuItem
	tool      *toolbarButton
	checkable bool
	checked   bool
	onTrigger []func()
	onDestroy []func()
}

func (a *action) fireTriggered() {
	if a.checkable {
		a.checked = !a.checked
		a.item.Checked = a.checked
		a.win.refreshMenu()
	}
	for _, fn := range a.onTrigger {
		fn()
	}
}

func (a *action) SetIcon(b *art.Bitmap) {
	res := a.win.resource(b)
	a.item.Icon = res
	if a.tool != nil {
		a.tool.setIcon(res)
	}
	a.win.refreshMenu()
}

func (a *action) SetToolTip(string) {
	// Fyne menu items have no tooltips.
}

func (a *action) SetShortcut(s string) {
	if s == "" {
		return
	}
	if sc := parseShortcut(s); sc != nil {
		a.item.Shortcut = sc
		a.win.refreshMenu()
	}
}

func (a *action) SetEnabled(v bool) {
	a.item.Disabled = !v
	a.win.refreshMenu()
}

func (a *action) SetCheckable(v bool) { a.checkable = v }

func (a *action) SetChecked(v bool) {
	a.checked = v
	a.item.Checked = v
	a.win.refreshMenu()
}

func (a *action) Checked() bool { return a.checked }

func (a *action) OnTriggered(fn func()) {
	a.onTrigger = append(a.onTrigger, fn)
}

func (a *action) OnDestroyed(fn func()) {
	a.onDestroy = append(a.onDestroy, fn)
	a.win.onClosed = append(a.win.onClosed, fn)
}

type toolbar struct {
	win     *Window
	bar     *widget.Toolbar
	visible bool
	list    []func(bool)
}

func (t *toolbar) AddAction(label string) toolkit.Action {
	act := &action{win: t.win, item: fyne.NewMenuItem(label, nil)}
	act.item.Action = func() { act.fireTriggered() }
	btn := &toolbarButton{}
	btn.item = widget.NewToolbarAction(nil, func() { act.fireTriggered() })
	act.tool = btn
	t.bar.Append(btn.item)
	return act
}

func (t *toolbar) AddSeparator() {
	t.bar.Append(widget.NewToolbarSeparator())
}

func (t *toolbar) SetVisible(v bool) {
	if t.visible == v {
		return
	}
	t.visible = v
	if v {
		t.bar.Show()
	} else {
		t.bar.Hide()
	}
	for _, fn := range t.list {
		fn(v)
	}
}

func (t *toolbar) Visible() bool { return t.visible }

func (t *toolbar) OnVisibilityChanged(fn func(bool)) {
	t.list = append(t.list, fn)
}

type toolbarButton struct {
	item *widget.ToolbarAction
}

func (b *toolbarButton) setIcon(res fyne.Resource) {
	if res != nil {
		b.item.SetIcon(res)
	}
}

type dock struct {
	win     *Window
	title   string
	box     *fyne.Container
	visible bool
	list    []func(bool)
}

func (d *dock) SetVisible(v bool) {
	if d.visible == v {
		return
	}
	d.visible = v
	if v {
		d.box.Show()
	} else {
		d.box.Hide()
	}
	for _, fn := range d.list {
		fn(v)
	}
}

func (d *dock) Visible() bool { return d.visible }

func (d *dock) OnVisibilityChanged(fn func(bool)) {
	d.list = append(d.list, fn)
}

func (d *dock) SetTitleIcon(b *art.Bitmap) {
	// Panel headers carry text only; the bitmap is ignored.
	_ = b
}

// parseShortcut maps "Ctrl+S" style strings onto a desktop custom shortcut.
func parseShortcut(s string) fyne.Shortcut {
	var mod fyne.KeyModifier
	key := s
	for {
		switch {
		case len(key) > 5 && key[:5] == "Ctrl+":
			mod |= fyne.KeyModifierControl
			key = key[5:]
		case len(key) > 4 && key[:4] == "Alt+":
			mod |= fyne.KeyModifierAlt
			key = key[4:]
		case len(key) > 6 && key[:6] == "Shift+":
			mod |= fyne.KeyModifierShift
			key = key[6:]
		default:
			if key == "" {
				return nil
			}
			return &desktop.CustomShortcut{KeyName: fyne.KeyName(key), Modifier: mod}
		}
	}
}
