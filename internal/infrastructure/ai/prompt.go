package ai

import (
	"bytes"
	"text/template"

	"github.com/doeshing/gask-go/internal/domain"
)

// suggestionTemplate instructs the model to answer with the two-field JSON
// contract and to target the user's actual environment.
const suggestionTemplate = `
### Instruction
You are a command line tool that generates command suggestions based on user queries and environment. current user's environment is {{.Environment}}.
"command" must be a valid command that can be executed in the user's environment.
"description" must be a short description of the command.

### Input
User query: {{.Query}}
`

var promptTemplate = template.Must(template.New("suggestion").Parse(suggestionTemplate))

// BuildPrompt substitutes the environment descriptor and the verbatim user
// query into the fixed instruction template. The result is deterministic:
// identical inputs always produce byte-identical prompts.
func BuildPrompt(env domain.EnvironmentDescriptor, query string) (string, error) {
	data := struct {
		Environment string
		Query       string
	}{
		Environment: env.String(),
		Query:       query,
	}

	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
