package chrome

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/karooapp/karoo/pkg/command"
)

const testToolbarYAML = `
toolbars:
  - id: file
    title: File
    items: [file.new, file.open, _SEPARATOR_, file.save]
  - id: edit
    title: Edit
    area: top
    visible: false
    items: [edit.undo, edit.redo]
`

func TestParseToolbarConfig(t *testing.T) {
	t.Parallel()

	cfg, err := ParseToolbarConfig([]byte(testToolbarYAML))
	require.NoError(t, err)
	require.Len(t, cfg.Toolbars, 2)

	file := cfg.Toolbars[0]
	require.Equal(t, "file", file.ID)
	require.True(t, file.DefaultVisible())
	require.Equal(t, []string{"file.new", "file.open", SeparatorItem, "file.save"}, file.Items)

	edit := cfg.Toolbars[1]
	require.False(t, edit.DefaultVisible())
}

func TestParseToolbarConfigRejectsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{name: "missing id", yaml: "toolbars:\n  - title: File\n    items: [file.new]\n"},
		{name: "missing title", yaml: "toolbars:\n  - id: file\n    items: [file.new]\n"},
		{name: "empty items", yaml: "toolbars:\n  - id: file\n    title: File\n    items: []\n"},
		{name: "bad area", yaml: "toolbars:\n  - id: file\n    title: File\n    area: middle\n    items: [file.new]\n"},
		{name: "no toolbars", yaml: "toolbars: []\n"},
		{name: "not yaml", yaml: "{{"},
		{
			name: "duplicate id",
			yaml: "toolbars:\n  - id: file\n    title: File\n    items: [file.new]\n" +
				"  - id: file\n    title: File Again\n    items: [file.open]\n",
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseToolbarConfig([]byte(tc.yaml))
			require.Error(t, err)
		})
	}
}

func buildToolbars(t *testing.T, settings *fakeSettings, yaml string, cmds ...*command.Command) (*fakeWindow, *ToolbarManager) {
	t.Helper()
	binder, reg, _ := newTestBinder(t)
	for _, cmd := range cmds {
		require.NoError(t, reg.Register(cmd))
	}
	cfg, err := ParseToolbarConfig([]byte(yaml))
	require.NoError(t, err)

	win := newFakeWindow()
	mgr := NewToolbarManager(binder, reg, settings, nil)
	mgr.Build(win, cfg)
	return win, mgr
}

func toolbarCommand(id string) *command.Command {
	return &command.Command{ID: id, Label: id, ShowInToolbar: true, Execute: func() {}}
}

func TestBuildToolbarPlacesSlotsInOrder(t *testing.T) {
	t.Parallel()

	win, mgr := buildToolbars(t, newFakeSettings(), testToolbarYAML,
		toolbarCommand("file.new"), toolbarCommand("file.open"), toolbarCommand("file.save"),
		toolbarCommand("edit.undo"), toolbarCommand("edit.redo"),
	)

	require.Len(t, win.toolbars, 2)
	require.Equal(t,
		[]string{"action:file.new", "action:file.open", "sep", "action:file.save"},
		win.toolbars[0].order)
	require.Equal(t, []string{"file", "edit"}, mgr.IDs())
}

func TestBuildToolbarSkipsBadSlots(t *testing.T) {
	t.Parallel()

	disabled := toolbarCommand("file.save")
	disabled.IsEnabled = func() bool { return false }

	// file.open is never registered.
	win, _ := buildToolbars(t, newFakeSettings(), testToolbarYAML,
		toolbarCommand("file.new"), disabled,
		toolbarCommand("edit.undo"), toolbarCommand("edit.redo"),
	)

	require.Equal(t, []string{"action:file.new", "sep"}, win.toolbars[0].order)
	require.Equal(t, []string{"action:edit.undo", "action:edit.redo"}, win.toolbars[1].order)
}

func TestBuildToolbarAppliesDefaultAndStoredVisibility(t *testing.T) {
	t.Parallel()

	settings := newFakeSettings()
	settings.SetBool("toolbars/file/visible", false)

	win, _ := buildToolbars(t, settings, testToolbarYAML,
		toolbarCommand("file.new"), toolbarCommand("file.open"), toolbarCommand("file.save"),
		toolbarCommand("edit.undo"), toolbarCommand("edit.redo"),
	)

	require.False(t, win.toolbars[0].visible, "stored value wins")
	require.False(t, win.toolbars[1].visible, "declared default applies when nothing stored")
}

func TestToolbarVisibilityChangesPersist(t *testing.T) {
	t.Parallel()

	settings := newFakeSettings()
	_, mgr := buildToolbars(t, settings, testToolbarYAML,
		toolbarCommand("file.new"), toolbarCommand("file.open"), toolbarCommand("file.save"),
		toolbarCommand("edit.undo"), toolbarCommand("edit.redo"),
	)

	mgr.SetVisible("file", false)
	require.False(t, settings.Bool("toolbars/file/visible", true))

	// Flipping through the toolkit (user drags the toolbar closed) persists
	// via the visibility listener.
	mgr.Toolbar("edit").SetVisible(true)
	require.True(t, settings.Bool("toolbars/edit/visible", false))
}
