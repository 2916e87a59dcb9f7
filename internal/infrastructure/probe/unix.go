package probe

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/doeshing/gask-go/internal/domain"
	"github.com/doeshing/gask-go/internal/ports"
)

// UnixProbe reads TERM and SHELL and resolves the parent process name via
// the ps utility.
type UnixProbe struct {
	getenv func(string) string
	ppid   func() int
	run    func(ctx context.Context, name string, args ...string) (string, error)
}

// NewUnixProbe builds the probe with real process and environment access.
func NewUnixProbe() *UnixProbe {
	return &UnixProbe{
		getenv: os.Getenv,
		ppid:   os.Getppid,
		run:    runCommand,
	}
}

// Describe implements ports.EnvironmentProbe.
func (p *UnixProbe) Describe(ctx context.Context) domain.EnvironmentDescriptor {
	return domain.EnvironmentDescriptor{
		OSName:        osDisplayName(),
		TerminalInfo:  p.terminalInfo(),
		ParentProcess: p.parentProcess(ctx),
	}
}

func (p *UnixProbe) terminalInfo() string {
	terminal := p.getenv("TERM")
	if terminal == "" {
		terminal = domain.UnknownValue
	}
	shell := p.getenv("SHELL")
	if shell == "" {
		shell = domain.UnknownValue
	}
	return fmt.Sprintf("Terminal: %s, Shell: %s", terminal, shell)
}

func (p *UnixProbe) parentProcess(ctx context.Context) string {
	out, err := p.run(ctx, "ps", "-p", strconv.Itoa(p.ppid()), "-o", "comm=")
	if err != nil {
		return domain.UnknownValue
	}
	name := strings.TrimSpace(out)
	if name == "" {
		return domain.UnknownValue
	}
	return name
}

var _ ports.EnvironmentProbe = (*UnixProbe)(nil)
