package chrome

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/karooapp/karoo/pkg/art"
	"github.com/karooapp/karoo/pkg/command"
)

func newTestCoordinator(t *testing.T) (*DockCoordinator, *Binder, *command.Registry, *art.Provider, *fakeSettings) {
	t.Helper()
	reg := command.NewRegistry(nil)
	prov := art.NewProvider(nil)
	binder := NewBinder(reg, prov, nil)
	settings := newFakeSettings()
	return NewDockCoordinator(binder, reg, prov, settings, nil), binder, reg, prov, settings
}

func registerPanelCommand(t *testing.T, reg *command.Registry, id string) {
	t.Helper()
	require.NoError(t, reg.Register(&command.Command{
		ID:         id,
		Label:      "Outline",
		MenuPath:   []string{"VIEW", "Outline"},
		ShowInMenu: true,
	}))
}

func TestConnectPanelRebindsToggleAndChecked(t *testing.T) {
	t.Parallel()

	coord, _, reg, _, _ := newTestCoordinator(t)
	registerPanelCommand(t, reg, "view.outline")
	dock := &fakeDock{visible: true}

	require.NoError(t, coord.ConnectPanel(Panel{ID: "outline", CommandID: "view.outline"}, dock))
	require.True(t, reg.Checked("view.outline"))

	reg.Execute("view.outline")
	require.False(t, dock.visible)
	require.False(t, reg.Checked("view.outline"))

	reg.Execute("view.outline")
	require.True(t, dock.visible)
}

func TestConnectPanelUnknownCommand(t *testing.T) {
	t.Parallel()

	coord, _, _, _, _ := newTestCoordinator(t)
	err := coord.ConnectPanel(Panel{ID: "outline", CommandID: "view.missing"}, &fakeDock{})
	require.Error(t, err)

	var notFound *command.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestPanelActionTwoWaySync(t *testing.T) {
	t.Parallel()

	coord, _, reg, _, _ := newTestCoordinator(t)
	registerPanelCommand(t, reg, "view.outline")
	dock := &fakeDock{visible: true}
	require.NoError(t, coord.ConnectPanel(Panel{ID: "outline", CommandID: "view.outline"}, dock))

	act, err := coord.CreatePanelAction("view.outline", &fakeMenu{})
	require.NoError(t, err)
	fa := act.(*fakeAction)
	require.True(t, fa.checkable)
	require.True(t, fa.checked)

	// Toggling the action flips the dock exactly once.
	fa.trigger()
	require.False(t, dock.visible)
	require.Equal(t, 1, dock.flips)
	require.False(t, fa.checked)

	// Hiding the dock externally updates the action without re-invoking the
	// toggle command: the dock flips once, by the external call alone.
	dock.SetVisible(true)
	require.True(t, fa.checked)
	require.Equal(t, 2, dock.flips)
}

func TestExternalCloseDoesNotDoubleToggle(t *testing.T) {
	t.Parallel()

	coord, _, reg, _, settings := newTestCoordinator(t)
	registerPanelCommand(t, reg, "view.outline")
	dock := &fakeDock{visible: true}
	require.NoError(t, coord.ConnectPanel(Panel{ID: "outline", CommandID: "view.outline"}, dock))

	_, err := coord.CreatePanelAction("view.outline", &fakeMenu{})
	require.NoError(t, err)

	// The user closes the panel via its own close affordance.
	dock.SetVisible(false)
	require.False(t, dock.visible)
	require.Equal(t, 1, dock.flips)
	require.False(t, settings.Bool("docks/outline/visible", true))
}

func TestConnectPanelTitleIconFollowsTheme(t *testing.T) {
	t.Parallel()

	coord, _, reg, prov, _ := newTestCoordinator(t)
	prov.RegisterIcon("panel.outline", testIconSVG, "Outline")
	registerPanelCommand(t, reg, "view.outline")
	dock := &fakeDock{visible: true}

	require.NoError(t, coord.ConnectPanel(Panel{
		ID: "outline", CommandID: "view.outline", IconID: "panel.outline",
	}, dock))
	require.NotNil(t, dock.titleIcon)

	before := dock.iconSets
	first := dock.titleIcon
	prov.SetTheme(art.DarkTheme)
	require.Equal(t, before+1, dock.iconSets)
	require.NotSame(t, first, dock.titleIcon)
}

func TestRestoreVisibilityAppliesStoredState(t *testing.T) {
	t.Parallel()

	coord, _, reg, _, settings := newTestCoordinator(t)
	registerPanelCommand(t, reg, "view.outline")
	settings.SetBool("docks/outline/visible", false)
	dock := &fakeDock{visible: true}
	require.NoError(t, coord.ConnectPanel(Panel{ID: "outline", CommandID: "view.outline"}, dock))

	coord.RestoreVisibility()
	require.False(t, dock.visible)
	require.False(t, reg.Checked("view.outline"))
	require.Same(t, dock, coord.Dock("outline").(*fakeDock))
}
