// ABOUTME: Userscript loading from .trome/scripts directories
// ABOUTME: Parses .md files with YAML frontmatter and a JavaScript body

package userscript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lukasmoellerch/trome/internal/log"
)

// Script is one loaded userscript: a named JavaScript snippet the user
// can run against the current page from the command palette.
type Script struct {
	Name        string
	Description string
	// Shortcut is an optional key chord (e.g. "ctrl+u") declared in the
	// script's frontmatter.
	Shortcut   string
	JS         string
	SourcePath string
}

type scriptFrontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Shortcut    string `yaml:"shortcut"`
}

// Load reads scripts from all dirs in parallel and merges them by name.
// Earlier directories win, so a project-local script shadows a global one
// of the same name. Missing directories and malformed files are skipped.
func Load(dirs []string) []Script {
	slots := make([][]Script, len(dirs))

	var g errgroup.Group
	for i, dir := range dirs {
		g.Go(func() error {
			slots[i] = loadDir(dir)
			return nil
		})
	}
	_ = g.Wait() // loaders never return errors

	byName := make(map[string]Script)
	var order []string
	for _, scripts := range slots {
		for _, s := range scripts {
			if _, seen := byName[s.Name]; seen {
				continue
			}
			byName[s.Name] = s
			order = append(order, s.Name)
		}
	}

	out := make([]Script, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out
}

func loadDir(dir string) []Script {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var scripts []Script
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		s, err := parseFile(path)
		if err != nil {
			log.Warn("skipping userscript %s: %v", path, err)
			continue
		}
		scripts = append(scripts, s)
	}
	return scripts
}

func parseFile(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("reading userscript: %w", err)
	}

	fm, body, err := parseFrontmatter[scriptFrontmatter](string(data))
	if err != nil {
		return Script{}, err
	}

	s := Script{
		Name:        fm.Name,
		Description: fm.Description,
		Shortcut:    fm.Shortcut,
		JS:          extractJS(body),
		SourcePath:  path,
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), ".md")
	}
	if s.JS == "" {
		return Script{}, fmt.Errorf("userscript has no script body")
	}
	return s, nil
}

// extractJS pulls the JavaScript out of a markdown body. If the body
// contains a fenced code block, the first fence's contents win; otherwise
// the whole body is the script.
func extractJS(body string) string {
	body = strings.TrimSpace(body)
	start := strings.Index(body, "```")
	if start < 0 {
		return body
	}

	rest := body[start+3:]
	// Drop the info string ("js", "javascript", ...) on the fence line.
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:]
	} else {
		return ""
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}
