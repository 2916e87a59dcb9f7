package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/doeshing/gask-go/internal/domain"
)

// RenderSuggestion prints the validated command verbatim, optionally
// followed by the description. Color is applied only when the writer is a
// terminal; captured output stays byte-exact.
func RenderSuggestion(out io.Writer, suggestion domain.CommandSuggestion, withDescription bool) {
	fmt.Fprintln(out, suggestion.Command)
	if withDescription {
		cyan := color.New(color.FgCyan)
		cyan.Fprintln(out, suggestion.Description)
	}
}

// RenderError prints the one-line user-facing explanation for err. In
// debug mode the underlying technical detail follows on its own line.
func RenderError(out io.Writer, err error, debug bool) {
	red := color.New(color.FgRed)
	red.Fprintln(out, domain.UserMessage(err))
	if debug {
		fmt.Fprintf(out, "Error detail: %v\n", err)
	}
}
