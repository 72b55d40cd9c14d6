// ABOUTME: Launch failure classification and interactive browser install flow
// ABOUTME: Installs a managed Chrome via npx when no binary is found

package browser

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// NotInstalled reports whether a launch failure looks like a missing
// browser binary rather than some other problem. Only failures that
// clearly mean "no binary" report true; anything else is treated as
// installed so a flaky environment does not trigger a pointless
// reinstall.
func NotInstalled(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range []string{
		"executable file not found",
		"no such file or directory",
		"cannot find",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// InstallFlow asks the user whether to install a managed Chrome build and,
// if confirmed, runs the install with progress streamed to out. It returns
// the installed binary path. Runs before the TUI owns the terminal.
func InstallFlow(ctx context.Context, in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out, "No usable browser found.")
	fmt.Fprint(out, "Install a managed Chrome build now? [y/N] ")

	reader := bufio.NewReader(in)
	answer, _ := reader.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "y" && answer != "yes" {
		return "", fmt.Errorf("browser install declined; install Chrome or Chromium and retry, or point -chrome at an existing binary")
	}

	fmt.Fprintln(out, "Installing Chrome (this downloads ~150MB)...")

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, "npx", "--yes", "@puppeteer/browsers", "install", "chrome@stable")
	cmd.Stdout = io.MultiWriter(out, &stdout)
	cmd.Stderr = out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("chrome install failed: %w (install Chrome manually and retry, or pass -chrome)", err)
	}

	path := parseInstallOutput(stdout.String())
	if path == "" {
		return "", fmt.Errorf("chrome install finished but no binary path was reported; pass -chrome with the installed location")
	}

	fmt.Fprintf(out, "Installed: %s\n", path)
	return path, nil
}

// parseInstallOutput extracts the binary path from the installer's final
// "chrome@<version> <path>" line.
func parseInstallOutput(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "chrome@") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 {
			return fields[len(fields)-1]
		}
	}
	return ""
}
