//go:build windows

package config

import (
	"os"
	"path/filepath"
)

func configSearchPaths() []string {
	appData := os.Getenv("APPDATA")
	programData := os.Getenv("ProgramData")
	return []string{
		filepath.Join(appData, "Vitalis", "snapshot.yaml"),
		filepath.Join(programData, "Vitalis", "snapshot.yaml"),
	}
}
