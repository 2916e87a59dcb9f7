package probe

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/gask-go/internal/domain"
	"github.com/doeshing/gask-go/internal/ports"
)

// WindowsProbe reads COMSPEC as the terminal identifier and resolves the
// parent process name via tasklist.
type WindowsProbe struct {
	getenv func(string) string
	ppid   func() int
	run    func(ctx context.Context, name string, args ...string) (string, error)
}

// NewWindowsProbe builds the probe with real process and environment access.
func NewWindowsProbe() *WindowsProbe {
	return &WindowsProbe{
		getenv: os.Getenv,
		ppid:   os.Getppid,
		run:    runCommand,
	}
}

// Describe implements ports.EnvironmentProbe.
func (p *WindowsProbe) Describe(ctx context.Context) domain.EnvironmentDescriptor {
	return domain.EnvironmentDescriptor{
		OSName:        osDisplayName(),
		TerminalInfo:  p.terminalInfo(),
		ParentProcess: p.parentProcess(ctx),
	}
}

func (p *WindowsProbe) terminalInfo() string {
	if comspec := p.getenv("COMSPEC"); comspec != "" {
		return comspec
	}
	return domain.UnknownValue
}

func (p *WindowsProbe) parentProcess(ctx context.Context) string {
	filter := fmt.Sprintf("PID eq %d", p.ppid())
	out, err := p.run(ctx, "tasklist", "/FI", filter, "/FO", "CSV", "/NH")
	if err != nil {
		return domain.UnknownValue
	}
	return parseTasklistImage(out)
}

// parseTasklistImage extracts the image name from tasklist CSV output,
// e.g. `"cmd.exe","1234","Console","1","4,096 K"`.
func parseTasklistImage(out string) string {
	line := strings.TrimSpace(out)
	if line == "" || !strings.HasPrefix(line, `"`) {
		// tasklist reports "INFO: No tasks are running..." without quotes.
		return domain.UnknownValue
	}
	line = strings.Trim(line, `"`)
	fields := strings.Split(line, `","`)
	if len(fields) == 0 || fields[0] == "" {
		return domain.UnknownValue
	}
	return fields[0]
}

var _ ports.EnvironmentProbe = (*WindowsProbe)(nil)
