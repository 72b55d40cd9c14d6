// ABOUTME: Settings loading with global + project config merge
// ABOUTME: JSON-based configuration; ${VAR} expansion in string fields

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// Settings holds the merged configuration.
type Settings struct {
	Scale        int                 `json:"scale,omitempty"`         // source pixels per terminal cell
	FPS          int                 `json:"fps,omitempty"`           // target render updates per second
	ScrollPixels int                 `json:"scroll_pixels,omitempty"` // page pixels per wheel tick
	ChromePath   string              `json:"chrome_path,omitempty"`   // browser binary override
	UserAgent    string              `json:"user_agent,omitempty"`
	Homepage     string              `json:"homepage,omitempty"` // opened when no URL argument is given
	Keybindings  map[string][]string `json:"keybindings,omitempty"`
}

// Defaults applied to zero-valued fields after merging.
const (
	DefaultScale        = 8
	DefaultFPS          = 30
	DefaultScrollPixels = 50
)

// Load reads and merges global and project-local settings.
// Project settings override global settings; ${VAR} references in string
// fields are expanded from the environment.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalSettingsFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global settings: %w", err)
	}

	project, err := loadFile(ProjectSettingsFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project settings: %w", err)
	}

	merged := merge(global, project)
	merged.resolveEnvVars()
	return merged, nil
}

// ApplyDefaults fills zero-valued numeric fields with their defaults.
// Called after CLI flags have had their chance to override.
func (s *Settings) ApplyDefaults() {
	if s.Scale <= 0 {
		s.Scale = DefaultScale
	}
	if s.FPS <= 0 {
		s.FPS = DefaultFPS
	}
	if s.ScrollPixels <= 0 {
		s.ScrollPixels = DefaultScrollPixels
	}
}

// loadFile reads Settings from a JSON file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values win.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Scale != 0 {
		result.Scale = project.Scale
	}
	if project.FPS != 0 {
		result.FPS = project.FPS
	}
	if project.ScrollPixels != 0 {
		result.ScrollPixels = project.ScrollPixels
	}
	if project.ChromePath != "" {
		result.ChromePath = project.ChromePath
	}
	if project.UserAgent != "" {
		result.UserAgent = project.UserAgent
	}
	if project.Homepage != "" {
		result.Homepage = project.Homepage
	}

	// Keybinding overrides merge per action
	if len(project.Keybindings) > 0 {
		if result.Keybindings == nil {
			result.Keybindings = make(map[string][]string)
		}
		for action, keys := range project.Keybindings {
			result.Keybindings[action] = keys
		}
	}

	return &result
}

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// resolveEnvVars expands ${VAR} patterns in string fields. Unset variables
// become empty strings.
func (s *Settings) resolveEnvVars() {
	s.ChromePath = expandEnv(s.ChromePath)
	s.UserAgent = expandEnv(s.UserAgent)
	s.Homepage = expandEnv(s.Homepage)
}

func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
