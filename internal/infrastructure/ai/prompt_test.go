package ai

import (
	"strings"
	"testing"

	"github.com/doeshing/gask-go/internal/domain"
)

func testEnvironment() domain.EnvironmentDescriptor {
	return domain.EnvironmentDescriptor{
		OSName:        "Linux",
		TerminalInfo:  "Terminal: xterm-256color, Shell: /bin/zsh",
		ParentProcess: "zsh",
	}
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	env := testEnvironment()
	query := "find all files larger than 100MB"

	first, err := BuildPrompt(env, query)
	if err != nil {
		t.Fatalf("BuildPrompt() error = %v", err)
	}
	second, err := BuildPrompt(env, query)
	if err != nil {
		t.Fatalf("BuildPrompt() error = %v", err)
	}
	if first != second {
		t.Fatal("identical inputs produced different prompts")
	}
}

func TestBuildPromptEmbedsQueryVerbatim(t *testing.T) {
	query := `delete "old logs" && echo {{weird}} $HOME`

	prompt, err := BuildPrompt(testEnvironment(), query)
	if err != nil {
		t.Fatalf("BuildPrompt() error = %v", err)
	}
	if !strings.Contains(prompt, "User query: "+query) {
		t.Fatalf("prompt does not contain the verbatim query:\n%s", prompt)
	}
}

func TestBuildPromptEmbedsEnvironmentDescriptor(t *testing.T) {
	env := testEnvironment()

	prompt, err := BuildPrompt(env, "list files")
	if err != nil {
		t.Fatalf("BuildPrompt() error = %v", err)
	}
	want := "OS: Linux, Terminal: xterm-256color, Shell: /bin/zsh, Parent CLI: zsh"
	if !strings.Contains(prompt, want) {
		t.Fatalf("prompt missing environment descriptor %q:\n%s", want, prompt)
	}
}
