// ABOUTME: Standard filesystem paths for trome configuration and data
// ABOUTME: Resolves ~/.trome/ for global and .trome/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".trome"
	projectDirName = ".trome"
)

// GlobalDir returns the user-global config directory (~/.trome/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.trome/ in root).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalSettingsFile returns the path to the global settings file.
func GlobalSettingsFile() string {
	return filepath.Join(GlobalDir(), "settings.json")
}

// ProjectSettingsFile returns the path to the project-local settings file.
func ProjectSettingsFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "settings.json")
}

// ScriptDirs returns the userscript directories in resolution order
// (project-local first, then global).
func ScriptDirs(projectRoot string) []string {
	return []string{
		filepath.Join(ProjectDir(projectRoot), "scripts"),
		filepath.Join(GlobalDir(), "scripts"),
	}
}

// DebugLogFile returns the path debug logs are written to while the TUI
// owns the terminal.
func DebugLogFile() string {
	return filepath.Join(GlobalDir(), "debug.log")
}
