// Karoo desktop shell on Qt.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mappu/miqt/qt"
	"github.com/spf13/cobra"
	"github.com/sqweek/dialog"
	"golang.org/x/term"

	"github.com/karooapp/karoo/pkg/app"
	"github.com/karooapp/karoo/pkg/logging"
	_ "github.com/karooapp/karoo/pkg/qtinit"
	"github.com/karooapp/karoo/pkg/settings"
	"github.com/karooapp/karoo/pkg/toolkit/qtkit"
)

type rootFlags struct {
	logLevel    string
	dataDir     string
	theme       string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "karoo-qt",
		Short:         "Karoo book authoring environment (Qt shell)",
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
		fmt.Fprintln(os.Stderr, "karoo-qt:", err)
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

	dir, err := settingsPath(flags.dataDir)
	if err != nil {
		return err
	}
	store := settings.Open(dir, log)
	if flags.theme != "" {
		store.SetString("appearance/theme", flags.theme)
	}

	qt.NewQApplication(os.Args)
	win := qtkit.NewWindow("Karoo", 1280, 840, log)

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

	win.Show()
	qt.QApplication_Exec()
	return nil
}

func settingsPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(base, "karoo"), nil
}

func callbacks(win *qtkit.Window, log *logging.Logger) app.Callbacks {
	pickOpen := func(title, desc, ext string) (string, bool) {
		path, err := dialog.File().Title(title).Filter(desc, ext).Load()
		if err != nil {
			return "", false
		}
		return path, true
	}
	pickSave := func(title, desc, ext string) (string, bool) {
		path, err := dialog.File().Title(title).Filter(desc, ext).Save()
		if err != nil {
			return "", false
		}
		return path, true
	}

	return app.Callbacks{
		OpenBook: func() {
			if path, ok := pickOpen("Open Book", "Karoo books", "karoo"); ok {
				log.WithFields(map[string]any{"path": path}).Info("book selected")
			}
		},
		SaveBookAs: func() {
			if path, ok := pickSave("Save Book As", "Karoo books", "karoo"); ok {
				log.WithFields(map[string]any{"path": path}).Info("save target selected")
			}
		},
		ImportArchive: func() {
			if path, ok := pickOpen("Import Project Archive", "Karoo archives", "karchive"); ok {
				log.WithFields(map[string]any{"path": path}).Info("archive selected for import")
			}
		},
		ExportArchive: func() {
			if path, ok := pickSave("Export Project Archive", "Karoo archives", "karchive"); ok {
				log.WithFields(map[string]any{"path": path}).Info("archive export target selected")
			}
		},
		Exit: func() { win.Native().Close() },
		FullScreen: func() {
			if win.Native().IsFullScreen() {
				win.Native().ShowNormal()
			} else {
				win.Native().ShowFullScreen()
			}
		},
		WordCount: func() {
			win.Info("Word Count", "No book is open.")
		},
		About: func() {
			win.Info("About Karoo", "Karoo, a book authoring environment.")
		},
	}
}
