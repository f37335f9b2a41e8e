// Package clipboard copies text to the system clipboard by shelling out to
// the platform's clipboard command.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// command describes one external clipboard writer.
type command struct {
	name string
	args []string
}

// capabilities maps GOOS to clipboard commands in preference order. Linux
// gets a fallback because xclip and xsel availability varies by distro.
var capabilities = map[string][]command{
	"darwin": {
		{name: "pbcopy"},
	},
	"linux": {
		{name: "xclip", args: []string{"-selection", "clipboard"}},
		{name: "xsel", args: []string{"--clipboard", "--input"}},
	},
	"windows": {
		{name: "clip"},
	},
}

// errNoCommand is returned when no clipboard command could be found or run.
var errNoCommand = errors.New("no clipboard command available")

// Copy writes text to the system clipboard on the current platform.
func Copy(text string) error {
	return copyOn(runtime.GOOS, text)
}

// copyOn tries each capability for the platform in order and returns the
// first success. The first failure is kept as the reported cause.
func copyOn(goos, text string) error {
	cmds, ok := capabilities[goos]
	if !ok {
		return fmt.Errorf("clipboard: unsupported platform %q", goos)
	}

	var firstErr error
	for _, cand := range cmds {
		if _, err := exec.LookPath(cand.name); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		cmd := exec.Command(cand.name, cand.args...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", cand.name, err)
			}
			continue
		}
		return nil
	}

	if firstErr == nil {
		firstErr = errNoCommand
	}
	return fmt.Errorf("clipboard: %w", firstErr)
}
