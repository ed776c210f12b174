// Karoo desktop shell on Fyne. Menus, toolbars, and panels are approximated
// within Fyne's layout model; the Qt shell is the reference chrome.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/sqweek/dialog"
	"golang.org/x/term"

	"github.com/karooapp/karoo/pkg/app"
	"github.com/karooapp/karoo/pkg/logging"
	"github.com/karooapp/karoo/pkg/settings"
	"github.com/karooapp/karoo/pkg/toolkit/fynekit"
)

type rootFlags struct {
	logLevel    string
	dataDir     string
	theme       string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "karoo-fyne",
		Short:         "Karoo book authoring environment (Fyne shell)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags)
		},
	}

	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&flags.dataDir, "data-dir", "", "Settings directory (defaults under the user config dir)")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "Initial icon theme (light or dark)")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "karoo-fyne:", err)
		os.Exit(1)
	}
}

func run(flags *rootFlags) error {
	log, err := logging.New(logging.Options{
		Level:         flags.logLevel,
		HumanReadable: term.IsTerminal(int(os.Stderr.Fd())),
	})
	if err != nil {
		return err
	}

	dir := flags.dataDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("locating user config dir: %w", err)
		}
		dir = filepath.Join(base, "karoo")
	}
	store := settings.Open(dir, log)
	if flags.theme != "" {
		store.SetString("appearance/theme", flags.theme)
	}

	win := fynekit.NewWindow("Karoo", 1280, 840, log)

	a, err := app.New(app.Options{
		Settings:  store,
		Log:       log,
		Callbacks: callbacks(win, log),
	})
	if err != nil {
		return err
	}
	if err := a.BuildUI(win); err != nil {
		return err
	}

	win.ShowAndRun()
	return nil
}

func callbacks(win *fynekit.Window, log *logging.Logger) app.Callbacks {
	return app.Callbacks{
		OpenBook: func() {
			if path, err := dialog.File().Title("Open Book").Filter("Karoo books", "karoo").Load(); err == nil {
				log.WithFields(map[string]any{"path": path}).Info("book selected")
			}
		},
		SaveBookAs: func() {
			if path, err := dialog.File().Title("Save Book As").Filter("Karoo books", "karoo").Save(); err == nil {
				log.WithFields(map[string]any{"path": path}).Info("save target selected")
			}
		},
		Exit: func() { win.Close() },
		WordCount: func() {
			win.Info("Word Count", "No book is open.")
		},
		About: func() {
			win.Info("About Karoo", "Karoo, a book authoring environment.")
		},
	}
}
