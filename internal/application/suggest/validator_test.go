package suggest

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/gask-go/internal/domain"
)

func TestParseSuggestionAcceptsValidPayload(t *testing.T) {
	raw := `{"command": "ls -la", "description": "List all files with details."}`

	got, err := ParseSuggestion(raw)
	if err != nil {
		t.Fatalf("ParseSuggestion() error = %v", err)
	}

	want := domain.CommandSuggestion{
		Command:     "ls -la",
		Description: "List all files with details.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("suggestion mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSuggestionPreservesFieldsVerbatim(t *testing.T) {
	raw := `{"command": "  grep -r \"TODO\" . | wc -l  ", "description": "Counts TODOs.\nMultiline."}`

	got, err := ParseSuggestion(raw)
	if err != nil {
		t.Fatalf("ParseSuggestion() error = %v", err)
	}
	if got.Command != `  grep -r "TODO" . | wc -l  ` {
		t.Fatalf("command was transformed: %q", got.Command)
	}
	if got.Description != "Counts TODOs.\nMultiline." {
		t.Fatalf("description was transformed: %q", got.Description)
	}
}

func TestParseSuggestionRejectsMalformedJSON(t *testing.T) {
	_, err := ParseSuggestion(`{"command": "ls"`)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if kind := domain.KindOf(err); kind != domain.KindResponseFormat {
		t.Fatalf("kind = %s, want %s", kind, domain.KindResponseFormat)
	}
	if domain.UserMessage(err) != msgInvalidJSON {
		t.Fatalf("unexpected message: %q", domain.UserMessage(err))
	}
}

func TestParseSuggestionRejectsNonObjectPayloads(t *testing.T) {
	for _, raw := range []string{`["ls"]`, `"ls"`, `42`, `null`} {
		_, err := ParseSuggestion(raw)
		if err == nil {
			t.Fatalf("expected error for payload %s", raw)
		}
		if kind := domain.KindOf(err); kind != domain.KindResponseFormat {
			t.Fatalf("payload %s: kind = %s, want %s", raw, kind, domain.KindResponseFormat)
		}
	}
}

func TestParseSuggestionNamesTheOffendingField(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
	}{
		{"missing command", `{"description": "d"}`, "command"},
		{"command not a string", `{"command": 7, "description": "d"}`, "command"},
		{"missing description", `{"command": "ls"}`, "description"},
		{"description not a string", `{"command": "ls", "description": false}`, "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSuggestion(tt.raw)
			if err == nil {
				t.Fatal("expected validation error")
			}
			msg := domain.UserMessage(err)
			if !strings.Contains(msg, "'"+tt.field+"'") {
				t.Fatalf("message %q does not name field %q", msg, tt.field)
			}
		})
	}
}
