// ABOUTME: Bridges loaded userscripts into the command palette
// ABOUTME: Each script becomes a command that evaluates its JS on the page

package userscript

import (
	"github.com/lukasmoellerch/trome/internal/commands"
)

// Register adds each script to the registry as a palette command.
// A script with a built-in's name shadows the built-in.
func Register(r *commands.Registry, scripts []Script) {
	for _, s := range scripts {
		r.Register(&commands.Command{
			Name:        s.Name,
			Description: s.Description,
			Shortcut:    s.Shortcut,
			Execute:     executeScript(s.JS),
		})
	}
}

func executeScript(js string) func(*commands.CommandContext) (string, error) {
	return func(ctx *commands.CommandContext) (string, error) {
		if err := ctx.Browser.Eval(ctx.Ctx, js); err != nil {
			return "", err
		}
		return "", nil
	}
}

// Shortcuts returns a chord-to-command-name map for every script that
// declares one. The UI consults it after the built-in keymap.
func Shortcuts(scripts []Script) map[string]string {
	out := make(map[string]string)
	for _, s := range scripts {
		if s.Shortcut != "" {
			out[s.Shortcut] = s.Name
		}
	}
	return out
}
