package ai

// Wire types for the generativelanguage.googleapis.com :generateContent
// endpoint. Only the fields this client reads or writes are declared.

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string      `json:"response_mime_type"`
	ResponseSchema   *jsonSchema `json:"responseSchema,omitempty"`
}

type jsonSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]schemaProperty `json:"properties,omitempty"`
	Required   []string                  `json:"required,omitempty"`
}

type schemaProperty struct {
	Type string `json:"type"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// commandSuggestionSchema constrains the model output to the two-field
// command/description object validated downstream.
func commandSuggestionSchema() *jsonSchema {
	return &jsonSchema{
		Type: "object",
		Properties: map[string]schemaProperty{
			"command":     {Type: "string"},
			"description": {Type: "string"},
		},
		Required: []string{"command", "description"},
	}
}
