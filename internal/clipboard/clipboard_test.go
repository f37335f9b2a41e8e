package clipboard

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCopyOn_UnsupportedPlatform(t *testing.T) {
	err := copyOn("plan9", "hello")
	if err == nil {
		t.Fatal("copyOn() expected error for unsupported platform, got nil")
	}
	if !strings.Contains(err.Error(), "plan9") {
		t.Errorf("error = %q, want it to name the platform", err)
	}
}

func TestCapabilities_KnownPlatforms(t *testing.T) {
	tests := []struct {
		goos      string
		wantFirst string
		wantLen   int
	}{
		{"darwin", "pbcopy", 1},
		{"linux", "xclip", 2},
		{"windows", "clip", 1},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			cmds, ok := capabilities[tt.goos]
			if !ok {
				t.Fatalf("no capabilities for %s", tt.goos)
			}
			if len(cmds) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(cmds), tt.wantLen)
			}
			if cmds[0].name != tt.wantFirst {
				t.Errorf("first command = %q, want %q", cmds[0].name, tt.wantFirst)
			}
		})
	}

	// Linux fallback ordering: xclip is preferred, xsel is the fallback.
	if capabilities["linux"][1].name != "xsel" {
		t.Errorf("linux fallback = %q, want xsel", capabilities["linux"][1].name)
	}
}

func TestCopyOn_NoCommandAvailable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH manipulation differs on windows")
	}

	// Empty PATH: LookPath fails for every candidate.
	t.Setenv("PATH", t.TempDir())

	err := copyOn("linux", "hello")
	if err == nil {
		t.Fatal("copyOn() expected error with no commands on PATH, got nil")
	}
	if !strings.Contains(err.Error(), "clipboard:") {
		t.Errorf("error = %q, want clipboard prefix", err)
	}
}

func TestCopyOn_UsesFakeCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes do not run on windows")
	}

	// A fake xclip that writes its stdin to a file proves dispatch and
	// stdin plumbing without a display server.
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	// Use an absolute path: PATH is about to be reduced to just dir, so a
	// bare "cat" would not resolve inside the script.
	script := "#!/bin/sh\n/bin/cat > " + out + "\n"
	if err := os.WriteFile(filepath.Join(dir, "xclip"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	if err := copyOn("linux", "http://127.0.0.1:3000"); err != nil {
		t.Fatalf("copyOn() error = %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "http://127.0.0.1:3000" {
		t.Errorf("fake xclip received %q, want the copied text", got)
	}
}
