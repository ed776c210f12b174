// Package qtinit pins Qt environment variables before the Qt runtime comes
// up. Import it for side effects, before any miqt package:
//
//	import _ "github.com/karooapp/karoo/pkg/qtinit"
package qtinit

import (
	"os"
	"path/filepath"
	"runtime"
)

func setDefault(key, value string) {
	if os.Getenv(key) == "" {
		os.Setenv(key, value)
	}
}

func init() {
	// Auto screen scaling interacts badly with our own 2x icon rendering,
	// so force a 1:1 device pixel mapping unless the user overrides it.
	setDefault("QT_AUTO_SCREEN_SCALE_FACTOR", "0")
	setDefault("QT_SCALE_FACTOR", "1")
	setDefault("QT_SCREEN_SCALE_FACTORS", "1")
	setDefault("QT_ENABLE_HIGHDPI_SCALING", "0")
	setDefault("QT_DEVICE_PIXEL_RATIO", "1")

	switch runtime.GOOS {
	case "darwin":
		for _, qtPath := range []string{
			"/opt/homebrew/opt/qt@5",
			"/usr/local/opt/qt@5",
			"/opt/homebrew/opt/qt",
			"/usr/local/opt/qt",
		} {
			if _, err := os.Stat(qtPath); err == nil {
				setDefault("QT_DIR", qtPath)
				setDefault("QT_PLUGIN_PATH", filepath.Join(qtPath, "plugins"))
				setDefault("QT_QPA_PLATFORM_PLUGIN_PATH", filepath.Join(qtPath, "plugins", "platforms"))
				setDefault("QT_QPA_PLATFORM", "cocoa")
				break
			}
		}
	case "linux":
		for _, pluginPath := range []string{
			"/usr/lib/x86_64-linux-gnu/qt5/plugins",
			"/usr/lib/qt5/plugins",
			"/usr/lib64/qt5/plugins",
		} {
			if _, err := os.Stat(pluginPath); err == nil {
				setDefault("QT_PLUGIN_PATH", pluginPath)
				break
			}
		}
	}
}
