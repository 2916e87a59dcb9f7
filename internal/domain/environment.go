package domain

import "fmt"

// UnknownValue is the sentinel used when an environment detail cannot be
// resolved. Probing is best-effort diagnostic context, never an error.
const UnknownValue = "Unknown"

// EnvironmentDescriptor summarizes the host environment at invocation time.
// It is derived once per run and embedded verbatim into the prompt.
type EnvironmentDescriptor struct {
	OSName        string
	TerminalInfo  string
	ParentProcess string
}

// String renders the descriptor in the form embedded into prompts.
func (e EnvironmentDescriptor) String() string {
	return fmt.Sprintf("OS: %s, %s, Parent CLI: %s", e.OSName, e.TerminalInfo, e.ParentProcess)
}
