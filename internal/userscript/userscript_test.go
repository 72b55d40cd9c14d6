// ABOUTME: Tests for userscript parsing, directory merging, and registration
// ABOUTME: Covers frontmatter handling, fence extraction, and shadowing order

package userscript

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lukasmoellerch/trome/internal/commands"
)

func writeScript(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestParseFileWithFrontmatter(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeScript(t, dir, "darken.md", `---
name: darken
description: Force a dark background
shortcut: ctrl+d
---

`+"```js\ndocument.body.style.background = '#000';\n```\n")

	scripts := Load([]string{dir})
	if len(scripts) != 1 {
		t.Fatalf("loaded %d scripts, want 1", len(scripts))
	}
	s := scripts[0]
	if s.Name != "darken" || s.Shortcut != "ctrl+d" {
		t.Errorf("parsed script = %+v", s)
	}
	if s.JS != "document.body.style.background = '#000';" {
		t.Errorf("JS = %q", s.JS)
	}
}

func TestNameDefaultsFromFilename(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeScript(t, dir, "scroll-top.md", "window.scrollTo(0, 0);\n")

	scripts := Load([]string{dir})
	if len(scripts) != 1 {
		t.Fatalf("loaded %d scripts, want 1", len(scripts))
	}
	if scripts[0].Name != "scroll-top" {
		t.Errorf("name = %q, want %q", scripts[0].Name, "scroll-top")
	}
	if scripts[0].JS != "window.scrollTo(0, 0);" {
		t.Errorf("JS = %q", scripts[0].JS)
	}
}

func TestMalformedScriptsSkipped(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeScript(t, dir, "broken.md", "---\nname: broken\n")
	writeScript(t, dir, "empty.md", "---\nname: empty\n---\n")
	writeScript(t, dir, "good.md", "console.log('ok');\n")

	scripts := Load([]string{dir})
	if len(scripts) != 1 || scripts[0].Name != "good" {
		t.Fatalf("scripts = %+v, want only the well-formed one", scripts)
	}
}

func TestProjectShadowsGlobal(t *testing.T) {
	t.Parallel()
	project := t.TempDir()
	global := t.TempDir()
	writeScript(t, project, "tweak.md", "project();\n")
	writeScript(t, global, "tweak.md", "global();\n")
	writeScript(t, global, "extra.md", "extra();\n")

	scripts := Load([]string{project, global})
	if len(scripts) != 2 {
		t.Fatalf("loaded %d scripts, want 2", len(scripts))
	}
	byName := make(map[string]Script)
	for _, s := range scripts {
		byName[s.Name] = s
	}
	if byName["tweak"].JS != "project();" {
		t.Errorf("tweak JS = %q, want the project-local body", byName["tweak"].JS)
	}
	if _, ok := byName["extra"]; !ok {
		t.Error("global-only script missing from merge")
	}
}

func TestMissingDirIgnored(t *testing.T) {
	t.Parallel()
	scripts := Load([]string{filepath.Join(t.TempDir(), "does-not-exist")})
	if len(scripts) != 0 {
		t.Errorf("scripts = %+v, want none", scripts)
	}
}

func TestExtractJS(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bare body", "alert(1);", "alert(1);"},
		{"fenced", "Intro text.\n\n```js\nalert(2);\n```\ntrailing", "alert(2);"},
		{"fence without language", "```\nalert(3);\n```", "alert(3);"},
		{"unclosed fence", "```js\nalert(4);", "alert(4);"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJS(tt.body); got != tt.want {
				t.Errorf("extractJS(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

// evalRecorder implements only the Eval method of commands.Driver; the
// embedded interface panics if a script command touches anything else.
type evalRecorder struct {
	commands.Driver
	js []string
}

func (e *evalRecorder) Eval(_ context.Context, js string) error {
	e.js = append(e.js, js)
	return nil
}

func TestRegisterBuildsEvalCommands(t *testing.T) {
	t.Parallel()
	r := commands.NewRegistry(nil)
	Register(r, []Script{
		{Name: "darken", Description: "Dark mode", Shortcut: "ctrl+d", JS: "dark();"},
	})

	cmd, ok := r.Get("darken")
	if !ok {
		t.Fatal("script command not registered")
	}
	if cmd.Shortcut != "ctrl+d" {
		t.Errorf("shortcut = %q", cmd.Shortcut)
	}

	rec := &evalRecorder{}
	ctx := &commands.CommandContext{Ctx: context.Background(), Browser: rec}
	if _, err := cmd.Execute(ctx); err != nil {
		t.Fatalf("executing script command: %v", err)
	}
	if len(rec.js) != 1 || rec.js[0] != "dark();" {
		t.Errorf("evaluated %v, want the script body", rec.js)
	}
}

func TestShortcuts(t *testing.T) {
	t.Parallel()
	m := Shortcuts([]Script{
		{Name: "a", Shortcut: "ctrl+1"},
		{Name: "b"},
		{Name: "c", Shortcut: "ctrl+2"},
	})
	if len(m) != 2 || m["ctrl+1"] != "a" || m["ctrl+2"] != "c" {
		t.Errorf("Shortcuts = %v", m)
	}
}
