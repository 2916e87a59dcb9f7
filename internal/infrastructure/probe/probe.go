// Package probe implements best-effort host environment detection. The
// descriptor it produces is diagnostic context for the prompt; failures
// degrade to the "Unknown" sentinel instead of propagating.
package probe

import (
	"context"
	"os/exec"
	"runtime"

	"github.com/doeshing/gask-go/internal/ports"
)

// New selects the platform-specific probe at startup.
func New() ports.EnvironmentProbe {
	if runtime.GOOS == "windows" {
		return NewWindowsProbe()
	}
	return NewUnixProbe()
}

func osDisplayName() string {
	switch runtime.GOOS {
	case "linux":
		return "Linux"
	case "darwin":
		return "Darwin"
	case "windows":
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	default:
		return runtime.GOOS
	}
}

// runCommand executes a process-listing utility and returns its combined
// output. Used by the platform probes to resolve the parent process name.
func runCommand(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
