package config

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"

	"github.com/MKhiriev/vim-cmd/models"
)

const (
	appName = "vim-cmd"

	defaultLocalSocket = "/tmp/hostd.sock"
	defaultTCPHost     = "127.0.0.1"
	defaultTCPPort     = 9000
)

// DefaultTarget is the lowest precedence layer: the local socket where the
// platform supports it, loopback TCP otherwise.
func DefaultTarget(caps models.Capabilities) models.Target {
	if caps.LocalSocket {
		return models.Target{
			Transport: models.TransportLocalSocket,
			LocalPath: defaultLocalSocket,
		}
	}
	return models.Target{
		Transport: models.TransportTCP,
		Host:      defaultTCPHost,
		Port:      defaultTCPPort,
	}
}

// DefaultConfigPath returns the per-user config file location:
// %APPDATA%\vim-cmd\config on Windows, otherwise
// $XDG_CONFIG_HOME/vim-cmd/config or ~/.config/vim-cmd/config.
func DefaultConfigPath() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName, "config")
		}
		return filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming", appName, "config")
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "config")
	}
	return filepath.Join(homeDir(), ".config", appName, "config")
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	if u, err := user.Current(); err == nil {
		return u.HomeDir
	}
	return ""
}
