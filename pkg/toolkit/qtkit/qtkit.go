// Package qtkit implements the toolkit interfaces over Qt via miqt.
// Everything here must run on the Qt main thread.
package qtkit

import (
	"github.com/mappu/miqt/qt"

	"github.com/karooapp/karoo/pkg/art"
	"github.com/karooapp/karoo/pkg/logging"
	"github.com/karooapp/karoo/pkg/toolkit"
)

// Window wraps a QMainWindow. Create it after qt.NewQApplication.
type Window struct {
	win *qt.QMainWindow
	log *logging.Logger
}

// NewWindow creates the main window.
func NewWindow(title string, width, height int, log *logging.Logger) *Window {
	if log == nil {
		log = logging.Nop()
	}
	win := qt.NewQMainWindow2()
	win.SetWindowTitle(title)
	win.Resize(width, height)
	return &Window{win: win, log: log}
}

// Native exposes the underlying QMainWindow for central-widget setup.
func (w *Window) Native() *qt.QMainWindow { return w.win }

// Show makes the window visible.
func (w *Window) Show() { w.win.Show() }

func (w *Window) MenuBar() toolkit.MenuBar {
	return &menuBar{bar: w.win.MenuBar()}
}

func (w *Window) AddToolbar(id, title string, area toolkit.DockArea) toolkit.Toolbar {
	tb := qt.NewQToolBar2(title)
	tb.SetObjectName(id)
	w.win.AddToolBar(toolBarArea(area), tb)
	return &toolbar{tb: tb}
}

func (w *Window) AddDock(id, title string, area toolkit.DockArea) toolkit.Dock {
	dw := qt.NewQDockWidget2(title)
	dw.SetObjectName(id)
	w.win.AddDockWidget(dockWidgetArea(area), dw)
	return &dock{dw: dw}
}

func (w *Window) Info(title, message string) {
	qt.QMessageBox_Information(w.win.QWidget, title, message)
}

func toolBarArea(area toolkit.DockArea) qt.ToolBarArea {
	switch area {
	case toolkit.AreaBottom:
		return qt.BottomToolBarArea
	case toolkit.AreaLeft:
		return qt.LeftToolBarArea
	case toolkit.AreaRight:
		return qt.RightToolBarArea
	default:
		return qt.TopToolBarArea
	}
}

func dockWidgetArea(area toolkit.DockArea) qt.DockWidgetArea {
	switch area {
	case toolkit.AreaBottom:
		return qt.BottomDockWidgetArea
	case toolkit.AreaRight:
		return qt.RightDockWidgetArea
	default:
		return qt.LeftDockWidgetArea
	}
}

type menuBar struct {
	bar *qt.QMenuBar
}

func (b *menuBar) AddMenu(title string) toolkit.Menu {
	return &menu{m: b.bar.AddMenu2(title), title: title}
}

type menu struct {
	m     *qt.QMenu
	title string
}

func (m *menu) AddAction(label string) toolkit.Action {
	return &action{act: m.m.AddAction(label)}
}

func (m *menu) AddSeparator() {
	m.m.AddSeparator()
}

func (m *menu) AddMenu(title string) toolkit.Menu {
	return &menu{m: m.m.AddMenu2(title), title: title}
}

func (m *menu) Title() string { return m.title }

type toolbar struct {
	tb *qt.QToolBar
}

func (t *toolbar) AddAction(label string) toolkit.Action {
	return &action{act: t.tb.AddAction(label)}
}

func (t *toolbar) AddSeparator() {
	t.tb.AddSeparator()
}

func (t *toolbar) SetVisible(v bool) { t.tb.SetVisible(v) }
func (t *toolbar) Visible() bool     { return t.tb.IsVisible() }

func (t *toolbar) OnVisibilityChanged(fn func(bool)) {
	t.tb.OnVisibilityChanged(fn)
}

type dock struct {
	dw *qt.QDockWidget
}

func (d *dock) SetVisible(v bool) { d.dw.SetVisible(v) }
func (d *dock) Visible() bool     { return d.dw.IsVisible() }

func (d *dock) OnVisibilityChanged(fn func(bool)) {
	d.dw.OnVisibilityChanged(fn)
}

func (d *dock) SetTitleIcon(b *art.Bitmap) {
	if icon := iconFromBitmap(b); icon != nil {
		d.dw.SetWindowIcon(icon)
	}
}

type action struct {
	act *qt.QAction
}

func (a *action) SetIcon(b *art.Bitmap) {
	if icon := iconFromBitmap(b); icon != nil {
		a.act.SetIcon(icon)
	}
}

func (a *action) SetToolTip(s string) { a.act.SetToolTip(s) }

func (a *action) SetShortcut(s string) {
	if s != "" {
		a.act.SetShortcut(qt.NewQKeySequence2(s))
	}
}

func (a *action) SetEnabled(v bool)   { a.act.SetEnabled(v) }
func (a *action) SetCheckable(v bool) { a.act.SetCheckable(v) }
func (a *action) SetChecked(v bool) {
	// Guard against toggled-signal feedback while pushing state.
	a.act.BlockSignals(true)
	a.act.SetChecked(v)
	a.act.BlockSignals(false)
}
func (a *action) Checked() bool { return a.act.IsChecked() }

func (a *action) OnTriggered(fn func()) {
	a.act.OnTriggered(func() { fn() })
}

func (a *action) OnDestroyed(fn func()) {
	a.act.OnDestroyed(func() { fn() })
}

// iconFromBitmap converts a rendered bundle to a QIcon carrying the base and
// 2x pixmaps. A nil bitmap yields nil so the caller keeps the platform
// default.
func iconFromBitmap(b *art.Bitmap) *qt.QIcon {
	if b == nil {
		return nil
	}
	base, err := b.PNG()
	if err != nil {
		return nil
	}
	pix := qt.NewQPixmap()
	if !pix.LoadFromData(base) {
		return nil
	}
	icon := qt.NewQIcon2(pix)

	if hidpi, err := b.PNGHiDPI(); err == nil {
		pix2 := qt.NewQPixmap()
		if pix2.LoadFromData(hidpi) {
			pix2.SetDevicePixelRatio(2)
			icon.AddPixmap(pix2)
		}
	}
	return icon
}
