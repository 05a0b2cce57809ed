//go:build !windows

package config

import (
	"os"
	"path/filepath"
)

func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	return []string{
		filepath.Join(home, ".vitalis", "snapshot.yaml"),
		"/etc/vitalis/snapshot.yaml",
	}
}
