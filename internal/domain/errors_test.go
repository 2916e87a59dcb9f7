package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOfClassifiedError(t *testing.T) {
	err := NetworkError("Failed to reach the server.", errors.New("dial tcp: timeout"))
	if KindOf(err) != KindNetwork {
		t.Fatalf("KindOf = %s, want %s", KindOf(err), KindNetwork)
	}
}

func TestKindOfSurvivesWrapping(t *testing.T) {
	inner := APIError("An error occurred while communicating with the API.", errors.New("HTTP 500"))
	wrapped := fmt.Errorf("suggest: %w", inner)
	if KindOf(wrapped) != KindAPI {
		t.Fatalf("KindOf = %s, want %s", KindOf(wrapped), KindAPI)
	}
}

func TestKindOfUnclassifiedError(t *testing.T) {
	if KindOf(errors.New("boom")) != KindUnknown {
		t.Fatal("plain errors must classify as unknown")
	}
}

func TestUserMessageHidesRawCause(t *testing.T) {
	if got := UserMessage(errors.New("panic: index out of range")); got != "An unexpected error occurred." {
		t.Fatalf("UserMessage = %q", got)
	}
}

func TestEnvironmentDescriptorString(t *testing.T) {
	env := EnvironmentDescriptor{
		OSName:        "Linux",
		TerminalInfo:  "Terminal: xterm, Shell: /bin/bash",
		ParentProcess: "bash",
	}
	want := "OS: Linux, Terminal: xterm, Shell: /bin/bash, Parent CLI: bash"
	if env.String() != want {
		t.Fatalf("String() = %q, want %q", env.String(), want)
	}
}
