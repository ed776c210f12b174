package app

import (
	"fmt"

	"github.com/karooapp/karoo/pkg/chrome"
	"github.com/karooapp/karoo/pkg/command"
)

// Callbacks carries the handlers the host application wires into the command
// table. Any nil handler leaves the command registered as a no-op so the
// chrome still renders it.
type Callbacks struct {
	NewFile       func()
	NewBook       func()
	OpenBook      func()
	SaveBook      func()
	SaveBookAs    func()
	ImportArchive func()
	ExportArchive func()
	Exit          func()

	Preferences func()

	WordCount         func()
	CustomizeToolbars func()

	ToggleDarkMode func()
	DarkModeOn     func() bool
	FullScreen     func()
	ResetLayout    func()

	About func()
}

func key(s string) command.Shortcut { return command.ParseShortcut(s) }

// RegisterCommands fills the registry with the complete Karoo command table.
// Phase 1-3 commands are declared but deferred; invoking them raises the
// deferred-feature notice instead of executing.
func RegisterCommands(reg *command.Registry, cb Callbacks) error {
	cmds := []*command.Command{
		// FILE
		{ID: "file.new", Label: "New File", MenuPath: p("FILE", "New File"), SortKey: 10,
			ShowInMenu: true, ShowInToolbar: true, Shortcut: key("Ctrl+N"), Execute: cb.NewFile},
		{ID: "file.new.project", Label: "New Book...", MenuPath: p("FILE", "New Book..."), SortKey: 15,
			ShowInMenu: true, ShowInToolbar: true, Shortcut: key("Ctrl+Shift+N"), Execute: cb.NewBook,
			IconID: "file.new.project"},
		{ID: "file.open", Label: "Open Book...", MenuPath: p("FILE", "Open Book..."), SortKey: 20,
			ShowInMenu: true, ShowInToolbar: true, Shortcut: key("Ctrl+O"), Execute: cb.OpenBook},
		{ID: "file.close", Label: "Close Book", MenuPath: p("FILE", "Close Book"), SortKey: 40,
			SeparatorAfter: true, ShowInMenu: true, ShowInToolbar: true, Shortcut: key("Ctrl+W"), Phase: 1},
		{ID: "file.save", Label: "Save", MenuPath: p("FILE", "Save"), SortKey: 50,
			ShowInMenu: true, ShowInToolbar: true, Shortcut: key("Ctrl+S"), Execute: cb.SaveBook},
		{ID: "file.saveAs", Label: "Save As...", MenuPath: p("FILE", "Save As..."), SortKey: 60,
			ShowInMenu: true, ShowInToolbar: true, Shortcut: key("Ctrl+Shift+S"), Execute: cb.SaveBookAs},
		{ID: "file.saveAll", Label: "Save All", MenuPath: p("FILE", "Save All"), SortKey: 70,
			SeparatorAfter: true, ShowInMenu: true, Phase: 1},

		{ID: "file.import.archive", Label: "Project Archive...",
			MenuPath: p("FILE", "Import", "Project Archive..."), SortKey: 75,
			ShowInMenu: true, Execute: cb.ImportArchive, IconID: "file.import.archive"},
		{ID: "file.import.docx", Label: "DOCX Document...",
			MenuPath: p("FILE", "Import", "DOCX Document..."), SortKey: 80, ShowInMenu: true, Phase: 1},
		{ID: "file.import.pdf", Label: "PDF Reference...",
			MenuPath: p("FILE", "Import", "PDF Reference..."), SortKey: 90, ShowInMenu: true, Phase: 2},
		{ID: "file.import.text", Label: "Plain Text...",
			MenuPath: p("FILE", "Import", "Plain Text..."), SortKey: 100, ShowInMenu: true, Phase: 1},

		{ID: "file.export.docx", Label: "DOCX",
			MenuPath: p("FILE", "Export", "DOCX"), SortKey: 120, ShowInMenu: true, Phase: 1},
		{ID: "file.export.pdf", Label: "PDF",
			MenuPath: p("FILE", "Export", "PDF"), SortKey: 130, ShowInMenu: true, Phase: 1},
		{ID: "file.export.markdown", Label: "Markdown",
			MenuPath: p("FILE", "Export", "Markdown"), SortKey: 140, SeparatorAfter: true,
			ShowInMenu: true, Phase: 1},
		{ID: "file.export.epub", Label: "EPUB",
			MenuPath: p("FILE", "Export", "EPUB"), SortKey: 150, ShowInMenu: true, Phase: 2},
		{ID: "file.export.archive", Label: "Project Archive...",
			MenuPath: p("FILE", "Export", "Project Archive..."), SortKey: 195, SeparatorAfter: true,
			ShowInMenu: true, Execute: cb.ExportArchive, IconID: "file.export.archive"},

		{ID: "file.exit", Label: "Exit", MenuPath: p("FILE", "Exit"), SortKey: 200,
			ShowInMenu: true, Shortcut: key("Ctrl+Q"), Execute: cb.Exit},

		// EDIT
		{ID: "edit.undo", Label: "Undo", MenuPath: p("EDIT", "Undo"), SortKey: 10,
			ShowInMenu: true, ShowInToolbar: true, Shortcut: key("Ctrl+Z"), Phase: 1},
		{ID: "edit.redo", Label: "Redo", MenuPath: p("EDIT", "Redo"), SortKey: 20,
			SeparatorAfter: true, ShowInMenu: true, ShowInToolbar: true,
			Shortcut: key("Ctrl+Shift+Z"), Phase: 1},
		{ID: "edit.cut", Label: "Cut", MenuPath: p("EDIT", "Cut"), SortKey: 30,
			ShowInMenu: true, ShowInToolbar: true, Shortcut: key("Ctrl+X"), Phase: 1},
		{ID: "edit.copy", Label: "Copy", MenuPath: p("EDIT", "Copy"), SortKey: 40,
			ShowInMenu: true, ShowInToolbar: true, Shortcut: key("Ctrl+C"), Phase: 1},
		{ID: "edit.paste", Label: "Paste", MenuPath: p("EDIT", "Paste"), SortKey: 50,
			ShowInMenu: true, ShowInToolbar: true, Shortcut: key("Ctrl+V"), Phase: 1},
		{ID: "edit.delete", Label: "Delete", MenuPath: p("EDIT", "Delete"), SortKey: 70,
			SeparatorAfter: true, ShowInMenu: true, Phase: 1},
		{ID: "edit.selectAll", Label: "Select All", MenuPath: p("EDIT", "Select All"), SortKey: 80,
			SeparatorAfter: true, ShowInMenu: true, Shortcut: key("Ctrl+A"), Phase: 1},
		{ID: "edit.find", Label: "Find...", MenuPath: p("EDIT", "Find..."), SortKey: 110,
			ShowInMenu: true, Shortcut: key("Ctrl+F"), Phase: 1},
		{ID: "edit.findNext", Label: "Find Next", MenuPath: p("EDIT", "Find Next"), SortKey: 120,
			ShowInMenu: true, Shortcut: key("F3"), Phase: 1},
		{ID: "edit.findReplace", Label: "Find & Replace...",
			MenuPath: p("EDIT", "Find & Replace..."), SortKey: 140, SeparatorAfter: true,
			ShowInMenu: true, Shortcut: key("Ctrl+H"), Phase: 1},
		{ID: "edit.preferences", Label: "Preferences...",
			MenuPath: p("EDIT", "Preferences..."), SortKey: 160,
			ShowInMenu: true, Execute: cb.Preferences, IconID: "edit.preferences"},

		// BOOK
		{ID: "book.newChapter", Label: "New Chapter...",
			MenuPath: p("BOOK", "New Chapter..."), SortKey: 10,
			ShowInMenu: true, ShowInToolbar: true, Phase: 1},
		{ID: "book.newScene", Label: "New Scene...",
			MenuPath: p("BOOK", "New Scene..."), SortKey: 20, SeparatorAfter: true,
			ShowInMenu: true, Phase: 1},
		{ID: "book.newCharacter", Label: "New Character...",
			MenuPath: p("BOOK", "New Character..."), SortKey: 30,
			ShowInMenu: true, ShowInToolbar: true, Phase: 1},
		{ID: "book.newLocation", Label: "New Location...",
			MenuPath: p("BOOK", "New Location..."), SortKey: 40, SeparatorAfter: true,
			ShowInMenu: true, ShowInToolbar: true, Phase: 1},
		{ID: "book.properties", Label: "Book Properties...",
			MenuPath: p("BOOK", "Book Properties..."), SortKey: 100,
			ShowInMenu: true, ShowInToolbar: true, Phase: 1},

		// FORMAT
		{ID: "format.font", Label: "Font...", MenuPath: p("FORMAT", "Font..."), SortKey: 10,
			ShowInMenu: true, Phase: 1},
		{ID: "format.paragraph", Label: "Paragraph...",
			MenuPath: p("FORMAT", "Paragraph..."), SortKey: 20, SeparatorAfter: true,
			ShowInMenu: true, Phase: 1},
		{ID: "format.style.heading1", Label: "Heading 1",
			MenuPath: p("FORMAT", "Text Style", "Heading 1"), SortKey: 30, ShowInMenu: true, Phase: 1},
		{ID: "format.style.heading2", Label: "Heading 2",
			MenuPath: p("FORMAT", "Text Style", "Heading 2"), SortKey: 40, ShowInMenu: true, Phase: 1},
		{ID: "format.style.body", Label: "Body Text",
			MenuPath: p("FORMAT", "Text Style", "Body Text"), SortKey: 60, SeparatorAfter: true,
			ShowInMenu: true, Phase: 1},
		{ID: "format.style.manage", Label: "Manage Styles...",
			MenuPath: p("FORMAT", "Text Style", "Manage Styles..."), SortKey: 90,
			ShowInMenu: true, Phase: 1},
		{ID: "format.bold", Label: "Bold", MenuPath: p("FORMAT", "Bold"), SortKey: 100,
			ShowInMenu: true, Shortcut: key("Ctrl+B"), Phase: 1},
		{ID: "format.italic", Label: "Italic", MenuPath: p("FORMAT", "Italic"), SortKey: 110,
			ShowInMenu: true, Shortcut: key("Ctrl+I"), Phase: 1},
		{ID: "format.underline", Label: "Underline", MenuPath: p("FORMAT", "Underline"), SortKey: 120,
			SeparatorAfter: true, ShowInMenu: true, Shortcut: key("Ctrl+U"), Phase: 1},
		{ID: "format.clearFormatting", Label: "Clear Formatting",
			MenuPath: p("FORMAT", "Clear Formatting"), SortKey: 230, ShowInMenu: true, Phase: 1},

		// TOOLS
		{ID: "tools.stats.full", Label: "Full Statistics...",
			MenuPath: p("TOOLS", "Statistics", "Full Statistics..."), SortKey: 10,
			ShowInMenu: true, Phase: 2},
		{ID: "tools.stats.wordCount", Label: "Word Count",
			MenuPath: p("TOOLS", "Statistics", "Word Count"), SortKey: 20, SeparatorAfter: true,
			ShowInMenu: true, ShowInToolbar: true, Execute: cb.WordCount},
		{ID: "tools.spellcheck", Label: "Spellchecker",
			MenuPath: p("TOOLS", "Spellchecker"), SortKey: 40,
			ShowInMenu: true, ShowInToolbar: true, Phase: 2},
		{ID: "tools.backupNow", Label: "Backup Now",
			MenuPath: p("TOOLS", "Backup Now"), SortKey: 100, SeparatorAfter: true,
			ShowInMenu: true, Phase: 2},
		{ID: "tools.toolbarManager", Label: "Customize Toolbars...",
			MenuPath: p("TOOLS", "Customize Toolbars..."), SortKey: 210,
			ShowInMenu: true, ShowInToolbar: true, Execute: cb.CustomizeToolbars},

		// VIEW; panel toggle callbacks are rebound by the dock coordinator
		// once the panels exist.
		{ID: "view.navigator", Label: "Navigator",
			MenuPath: p("VIEW", "Panels", "Navigator"), SortKey: 10,
			ShowInMenu: true, ShowInToolbar: true, Shortcut: key("F2")},
		{ID: "view.properties", Label: "Properties",
			MenuPath: p("VIEW", "Panels", "Properties"), SortKey: 20,
			ShowInMenu: true, ShowInToolbar: true, Shortcut: key("F4")},
		{ID: "view.log", Label: "Log",
			MenuPath: p("VIEW", "Panels", "Log"), SortKey: 30,
			ShowInMenu: true, ShowInToolbar: true, Shortcut: key("F5")},
		{ID: "view.search", Label: "Search",
			MenuPath: p("VIEW", "Panels", "Search"), SortKey: 40,
			ShowInMenu: true, ShowInToolbar: true, Shortcut: key("F6")},
		{ID: "view.assistant", Label: "Assistant",
			MenuPath: p("VIEW", "Panels", "Assistant"), SortKey: 50, SeparatorAfter: true,
			ShowInMenu: true, ShowInToolbar: true, Shortcut: key("F7")},
		{ID: "view.darkMode", Label: "Dark Mode",
			MenuPath: p("VIEW", "Dark Mode"), SortKey: 170, SeparatorAfter: true,
			ShowInMenu: true, Execute: cb.ToggleDarkMode, IsChecked: cb.DarkModeOn},
		{ID: "view.zoomIn", Label: "Zoom In", MenuPath: p("VIEW", "Zoom In"), SortKey: 220,
			ShowInMenu: true, Phase: 1},
		{ID: "view.zoomOut", Label: "Zoom Out", MenuPath: p("VIEW", "Zoom Out"), SortKey: 230,
			SeparatorAfter: true, ShowInMenu: true, Phase: 1},
		{ID: "view.fullScreen", Label: "Full Screen",
			MenuPath: p("VIEW", "Full Screen"), SortKey: 250, SeparatorAfter: true,
			ShowInMenu: true, Shortcut: key("F11"), Execute: cb.FullScreen},
		{ID: "view.resetLayout", Label: "Reset Layout",
			MenuPath: p("VIEW", "Reset Layout"), SortKey: 260,
			ShowInMenu: true, Execute: cb.ResetLayout},

		// HELP
		{ID: "help.manual", Label: "Karoo Help", MenuPath: p("HELP", "Karoo Help"), SortKey: 10,
			ShowInMenu: true, Shortcut: key("F1"), Phase: 2},
		{ID: "help.shortcuts", Label: "Keyboard Shortcuts",
			MenuPath: p("HELP", "Keyboard Shortcuts"), SortKey: 30, SeparatorAfter: true,
			ShowInMenu: true, Phase: 1},
		{ID: "help.about", Label: "About Karoo", MenuPath: p("HELP", "About Karoo"), SortKey: 100,
			ShowInMenu: true, Execute: cb.About, IconID: "help.about"},
	}

	for _, cmd := range cmds {
		if err := reg.Register(cmd); err != nil {
			return fmt.Errorf("registering %s: %w", cmd.ID, err)
		}
	}
	return nil
}

func p(segments ...string) []string { return segments }

// TopLevelMenus is the fixed menu bar order; command path groups not listed
// here never appear.
func TopLevelMenus() []chrome.TopLevelMenu {
	return []chrome.TopLevelMenu{
		{Group: "FILE", Title: "&File"},
		{Group: "EDIT", Title: "&Edit"},
		{Group: "BOOK", Title: "&Book"},
		{Group: "FORMAT", Title: "F&ormat"},
		{Group: "TOOLS", Title: "&Tools"},
		{Group: "VIEW", Title: "&View"},
		{Group: "HELP", Title: "&Help"},
	}
}
