package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/doeshing/gask-go/internal/app"
	"github.com/doeshing/gask-go/internal/application/suggest"
	"github.com/doeshing/gask-go/internal/domain"
	"github.com/doeshing/gask-go/internal/infrastructure/config"
	"github.com/doeshing/gask-go/internal/pkg/logger"
	"github.com/doeshing/gask-go/internal/ports"
)

func testContainer(client *stubClient) *app.Container {
	log := logger.NewStd(false)
	return &app.Container{
		SuggestService: &suggest.Service{
			ConfigProvider: stubConfigProvider{cfg: domain.Config{
				APIKey:         "test-key",
				ModelName:      domain.DefaultModelName,
				HistoryEnabled: false,
			}},
			Probe:  stubProbe{},
			Client: client,
			Logger: log,
		},
		ConfigLoader: config.NewFileLoader(""),
		Logger:       log,
	}
}

func execute(t *testing.T, container *app.Container, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	root := newRootCmd(container, Options{})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootPrintsHelpWithoutQueryOrFlag(t *testing.T) {
	client := &stubClient{}
	out, err := execute(t, testContainer(client))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("expected help output, got:\n%s", out)
	}
	if client.called {
		t.Fatal("network call made for bare invocation")
	}
}

func TestRootDescriptionFlagWithoutQueryIsUsageError(t *testing.T) {
	client := &stubClient{}
	_, err := execute(t, testContainer(client), "-d")
	if err == nil {
		t.Fatal("expected usage error")
	}
	if kind := domain.KindOf(err); kind != domain.KindUsage {
		t.Fatalf("kind = %s, want %s", kind, domain.KindUsage)
	}
	if client.called {
		t.Fatal("network call made for flag-only invocation")
	}
}

func TestRootPrintsCommandOnly(t *testing.T) {
	client := &stubClient{payload: `{"command": "ls -la", "description": "List files."}`}
	out, err := execute(t, testContainer(client), "list", "all", "files")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "ls -la\n" {
		t.Fatalf("output = %q, want command only", out)
	}
	if got := client.request.Query; got != "list all files" {
		t.Fatalf("query = %q, want joined args", got)
	}
}

func TestRootPrintsDescriptionWhenRequested(t *testing.T) {
	client := &stubClient{payload: `{"command": "ls -la", "description": "List files."}`}
	out, err := execute(t, testContainer(client), "-d", "list", "all", "files")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "ls -la\nList files.\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestRootDescriptionLongAliasWorks(t *testing.T) {
	client := &stubClient{payload: `{"command": "pwd", "description": "Print working directory."}`}
	out, err := execute(t, testContainer(client), "--description", "where", "am", "i")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "Print working directory.") {
		t.Fatalf("output = %q", out)
	}
}

func TestRootPassesModelOverride(t *testing.T) {
	client := &stubClient{payload: `{"command": "ls", "description": "d"}`}
	if _, err := execute(t, testContainer(client), "--model", "gemini-1.5-pro", "list"); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if client.request.Model != "gemini-1.5-pro" {
		t.Fatalf("model = %q", client.request.Model)
	}
}

func TestRenderErrorShowsSingleLineWithoutDebug(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer

	RenderError(&out, domain.NetworkError("Failed to reach the server. Please check your internet connection.", context.DeadlineExceeded), false)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d:\n%s", len(lines), out.String())
	}
	if lines[0] != "Failed to reach the server. Please check your internet connection." {
		t.Fatalf("line = %q", lines[0])
	}
}

func TestRenderErrorAddsDetailInDebugMode(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer

	RenderError(&out, domain.APIError("An error occurred while communicating with the API. Please try again later.", context.DeadlineExceeded), true)

	if !strings.Contains(out.String(), "Error detail:") {
		t.Fatalf("debug detail missing:\n%s", out.String())
	}
}

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type stubProbe struct{}

func (stubProbe) Describe(context.Context) domain.EnvironmentDescriptor {
	return domain.EnvironmentDescriptor{
		OSName:        "Linux",
		TerminalInfo:  "Terminal: xterm, Shell: /bin/bash",
		ParentProcess: "bash",
	}
}

type stubClient struct {
	payload string
	err     error
	called  bool
	request ports.GenerationRequest
}

func (s *stubClient) Generate(_ context.Context, req ports.GenerationRequest) (string, error) {
	s.called = true
	s.request = req
	return s.payload, s.err
}
