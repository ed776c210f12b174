package chrome

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/karooapp/karoo/pkg/command"
)

var testTopLevel = []TopLevelMenu{
	{Group: "FILE", Title: "&File"},
	{Group: "EDIT", Title: "&Edit"},
	{Group: "VIEW", Title: "&View"},
}

func menuCommand(id string, path []string, sortKey int) *command.Command {
	return &command.Command{
		ID:         id,
		Label:      path[len(path)-1],
		MenuPath:   path,
		SortKey:    sortKey,
		ShowInMenu: true,
		Execute:    func() {},
	}
}

func buildMenus(t *testing.T, cmds ...*command.Command) *fakeMenuBar {
	t.Helper()
	binder, reg, _ := newTestBinder(t)
	for _, cmd := range cmds {
		require.NoError(t, reg.Register(cmd))
	}
	bar := &fakeMenuBar{}
	NewMenuBuilder(binder, reg, testTopLevel, nil).Build(bar)
	return bar
}

func TestBuildSharedPathPrefixLandsInOneSubmenu(t *testing.T) {
	t.Parallel()

	bar := buildMenus(t,
		menuCommand("file.import.docx", []string{"FILE", "Import", "DOCX Document..."}, 10),
		menuCommand("file.import.epub", []string{"FILE", "Import", "EPUB Book..."}, 20),
	)

	require.Len(t, bar.menus, 1)
	file := bar.menus[0]
	require.Equal(t, "&File", file.title)
	require.Len(t, file.menus, 1, "both imports must share one submenu")

	importMenu := file.findMenu("Import")
	require.NotNil(t, importMenu)
	require.Equal(t, []string{"action:DOCX Document...", "action:EPUB Book..."}, importMenu.order)
}

func TestBuildOrdersBySortKey(t *testing.T) {
	t.Parallel()

	a := menuCommand("a", []string{"FILE", "Second"}, 2)
	b := menuCommand("b", []string{"FILE", "First"}, 1)
	bar := buildMenus(t, a, b)

	require.Len(t, bar.menus, 1)
	require.Equal(t, []string{"action:First", "action:Second"}, bar.menus[0].order)
}

func TestBuildUsesFixedTopLevelOrder(t *testing.T) {
	t.Parallel()

	bar := buildMenus(t,
		menuCommand("view.outline", []string{"VIEW", "Outline"}, 1),
		menuCommand("file.open", []string{"FILE", "Open..."}, 1),
		menuCommand("edit.undo", []string{"EDIT", "Undo"}, 1),
	)

	var titles []string
	for _, m := range bar.menus {
		titles = append(titles, m.title)
	}
	require.Equal(t, []string{"&File", "&Edit", "&View"}, titles)
}

func TestBuildOmitsUnlistedGroups(t *testing.T) {
	t.Parallel()

	bar := buildMenus(t,
		menuCommand("file.open", []string{"FILE", "Open..."}, 1),
		menuCommand("debug.dump", []string{"DEBUG", "Dump State"}, 1),
	)

	require.Len(t, bar.menus, 1)
	require.Equal(t, "&File", bar.menus[0].title)
}

func TestBuildSkipsHiddenCommands(t *testing.T) {
	t.Parallel()

	hidden := menuCommand("file.autosave", []string{"FILE", "Autosave"}, 1)
	hidden.ShowInMenu = false
	bar := buildMenus(t,
		hidden,
		menuCommand("file.open", []string{"FILE", "Open..."}, 2),
	)

	require.Equal(t, []string{"action:Open..."}, bar.menus[0].order)
}

func TestBuildSeparatorAfterLeaf(t *testing.T) {
	t.Parallel()

	first := menuCommand("file.new", []string{"FILE", "New Book"}, 1)
	first.SeparatorAfter = true
	bar := buildMenus(t,
		first,
		menuCommand("file.open", []string{"FILE", "Open..."}, 2),
	)

	require.Equal(t, []string{"action:New Book", "sep", "action:Open..."}, bar.menus[0].order)
}

func TestBuildNeverEndsMenuWithSeparator(t *testing.T) {
	t.Parallel()

	last := menuCommand("file.quit", []string{"FILE", "Quit"}, 99)
	last.SeparatorAfter = true
	bar := buildMenus(t,
		menuCommand("file.open", []string{"FILE", "Open..."}, 1),
		last,
	)

	order := bar.menus[0].order
	require.Equal(t, []string{"action:Open...", "action:Quit"}, order)
}

func TestBuildReturnsLeafActionsByID(t *testing.T) {
	t.Parallel()

	binder, reg, _ := newTestBinder(t)
	ran := false
	cmd := menuCommand("edit.undo", []string{"EDIT", "Undo"}, 1)
	cmd.Execute = func() { ran = true }
	require.NoError(t, reg.Register(cmd))

	bar := &fakeMenuBar{}
	actions := NewMenuBuilder(binder, reg, testTopLevel, nil).Build(bar)

	act, ok := actions["edit.undo"]
	require.True(t, ok)
	act.(*fakeAction).trigger()
	require.True(t, ran)
}
