package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	labels []string
	phases []int
}

func (n *recordingNotifier) Deferred(label string, phase int) {
	n.labels = append(n.labels, label)
	n.phases = append(n.phases, phase)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	require.NoError(t, reg.Register(&Command{ID: "file.open", Label: "Open..."}))

	err := reg.Register(&Command{ID: "file.open", Label: "Open Again"})
	var dup *DuplicateIDError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "file.open", dup.ID)
	require.Equal(t, 1, reg.Len())
}

func TestRegisterRejectsMalformedCommands(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	require.Error(t, reg.Register(nil))
	require.Error(t, reg.Register(&Command{Label: "No ID"}))
	require.Error(t, reg.Register(&Command{
		ID:       "file.open",
		MenuPath: []string{"FILE", "", "Open..."},
	}))
	require.Equal(t, 0, reg.Len())
}

func TestGetReturnsLiveEntry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	require.NoError(t, reg.Register(&Command{ID: "edit.undo", Label: "Undo"}))

	_, err := reg.Get("edit.missing")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	cmd, err := reg.Get("edit.undo")
	require.NoError(t, err)
	ran := false
	cmd.Execute = func() { ran = true }

	reg.Execute("edit.undo")
	require.True(t, ran)
}

func TestExecuteContainsPanics(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	var faults []string
	reg.SetFaultHandler(func(id, msg string) { faults = append(faults, id) })

	require.NoError(t, reg.Register(&Command{
		ID:      "tools.explode",
		Label:   "Explode",
		Execute: func() { panic("boom") },
	}))

	require.NotPanics(t, func() { reg.Execute("tools.explode") })
	require.Equal(t, []string{"tools.explode"}, faults)
}

func TestExecuteUnknownCommandFaults(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	var faults []string
	reg.SetFaultHandler(func(id, msg string) { faults = append(faults, id+": "+msg) })

	require.NotPanics(t, func() { reg.Execute("no.such.command") })
	require.Equal(t, []string{"no.such.command: unknown command"}, faults)
}

func TestExecuteNilCallbackIsNoOp(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	var faults []string
	reg.SetFaultHandler(func(id, msg string) { faults = append(faults, id) })
	require.NoError(t, reg.Register(&Command{ID: "file.recent", Label: "Recent Files"}))

	require.NotPanics(t, func() { reg.Execute("file.recent") })
	require.Empty(t, faults)
}

func TestExecuteDeferredPhaseShowsNoticeInsteadOfRunning(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	notifier := &recordingNotifier{}
	reg.SetNotifier(notifier)

	ran := false
	require.NoError(t, reg.Register(&Command{
		ID:      "tools.thesaurus",
		Label:   "Thesaurus",
		Phase:   2,
		Execute: func() { ran = true },
	}))

	reg.Execute("tools.thesaurus")
	require.False(t, ran, "deferred commands must not run their callback")
	require.Equal(t, []string{"Thesaurus"}, notifier.labels)
	require.Equal(t, []int{2}, notifier.phases)
}

func TestExecuteCallbackMayReenterRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	inner := false
	require.NoError(t, reg.Register(&Command{ID: "b", Label: "B", Execute: func() { inner = true }}))
	require.NoError(t, reg.Register(&Command{ID: "a", Label: "A", Execute: func() { reg.Execute("b") }}))

	reg.Execute("a")
	require.True(t, inner)
}

func TestCanExecute(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	require.NoError(t, reg.Register(&Command{ID: "always", Label: "Always"}))
	require.NoError(t, reg.Register(&Command{
		ID: "never", Label: "Never", IsEnabled: func() bool { return false },
	}))
	require.NoError(t, reg.Register(&Command{
		ID: "broken", Label: "Broken", IsEnabled: func() bool { panic("boom") },
	}))

	require.True(t, reg.CanExecute("always"), "nil IsEnabled means enabled")
	require.False(t, reg.CanExecute("never"))
	require.False(t, reg.CanExecute("broken"), "panicking callback reads as disabled")
	require.False(t, reg.CanExecute("unknown"))
}

func TestChecked(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	require.NoError(t, reg.Register(&Command{ID: "plain", Label: "Plain"}))
	require.NoError(t, reg.Register(&Command{
		ID: "on", Label: "On", IsChecked: func() bool { return true },
	}))
	require.NoError(t, reg.Register(&Command{
		ID: "broken", Label: "Broken", IsChecked: func() bool { panic("boom") },
	}))

	require.False(t, reg.Checked("plain"), "non-checkable reads unchecked")
	require.True(t, reg.Checked("on"))
	require.False(t, reg.Checked("broken"))
	require.False(t, reg.Checked("unknown"))
}

func TestRebindReplacesCallbacks(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	require.NoError(t, reg.Register(&Command{ID: "view.outline", Label: "Outline"}))

	visible := true
	enabled := true
	require.NoError(t, reg.Rebind("view.outline",
		func() { visible = !visible },
		func() bool { return enabled },
		func() bool { return visible }))

	require.True(t, reg.Checked("view.outline"))
	reg.Execute("view.outline")
	require.False(t, reg.Checked("view.outline"))

	enabled = false
	require.False(t, reg.CanExecute("view.outline"))

	var notFound *NotFoundError
	require.ErrorAs(t, reg.Rebind("missing", nil, nil, nil), &notFound)
}

func TestSortOrder(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	require.NoError(t, reg.Register(&Command{
		ID: "a", Label: "A", MenuPath: []string{"FILE"}, SortKey: 2,
	}))
	require.NoError(t, reg.Register(&Command{
		ID: "b", Label: "B", MenuPath: []string{"FILE"}, SortKey: 1,
	}))

	ordered := reg.ByPathPrefix("FILE")
	require.Len(t, ordered, 2)
	require.Equal(t, "b", ordered[0].ID)
	require.Equal(t, "a", ordered[1].ID)
}

func TestByPathPrefix(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	require.NoError(t, reg.Register(&Command{
		ID: "file.import.docx", Label: "DOCX", MenuPath: []string{"FILE", "Import", "DOCX"},
	}))
	require.NoError(t, reg.Register(&Command{
		ID: "file.open", Label: "Open", MenuPath: []string{"FILE", "Open..."},
	}))
	require.NoError(t, reg.Register(&Command{
		ID: "edit.undo", Label: "Undo", MenuPath: []string{"EDIT", "Undo"},
	}))

	require.Len(t, reg.ByPathPrefix("FILE"), 2)
	require.Len(t, reg.ByPathPrefix("FILE", "Import"), 1)
	require.Empty(t, reg.ByPathPrefix("FILE", "Export"))
	require.Len(t, reg.All(), 3)
}

func TestByCategory(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	require.NoError(t, reg.Register(&Command{ID: "a", Label: "A", Category: "editing", SortKey: 5}))
	require.NoError(t, reg.Register(&Command{ID: "b", Label: "B", Category: "editing", SortKey: 1}))
	require.NoError(t, reg.Register(&Command{ID: "c", Label: "C", Category: "navigation"}))

	editing := reg.ByCategory("editing")
	require.Len(t, editing, 2)
	require.Equal(t, "b", editing[0].ID)
}

func TestUnregister(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(nil)
	require.NoError(t, reg.Register(&Command{ID: "a", Label: "A"}))
	reg.Unregister("a")
	reg.Unregister("a")
	require.Equal(t, 0, reg.Len())

	// The ID is free again after unregistration.
	require.NoError(t, reg.Register(&Command{ID: "a", Label: "A"}))
}

func TestEffectiveIconID(t *testing.T) {
	t.Parallel()

	require.Equal(t, "file.open", (&Command{ID: "file.open"}).EffectiveIconID())
	require.Equal(t, "shared.folder", (&Command{ID: "file.open", IconID: "shared.folder"}).EffectiveIconID())
}
