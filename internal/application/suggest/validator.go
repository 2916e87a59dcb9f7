package suggest

import (
	"encoding/json"
	"fmt"

	"github.com/doeshing/gask-go/internal/domain"
)

const msgInvalidJSON = "Invalid JSON response from the AI model."

// ParseSuggestion validates the raw text payload returned by the model.
// The payload is untrusted external input: it must parse as a JSON object
// carrying string `command` and string `description` fields before anything
// is displayed. Violations name the offending field.
func ParseSuggestion(raw string) (domain.CommandSuggestion, error) {
	var value interface{}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return domain.CommandSuggestion{}, domain.ResponseFormatError(msgInvalidJSON, err)
	}

	object, ok := value.(map[string]interface{})
	if !ok {
		return domain.CommandSuggestion{}, domain.ResponseFormatError(
			"JSON validation error: Response is not a JSON object", nil)
	}

	command, err := stringField(object, "command")
	if err != nil {
		return domain.CommandSuggestion{}, err
	}
	description, err := stringField(object, "description")
	if err != nil {
		return domain.CommandSuggestion{}, err
	}

	return domain.CommandSuggestion{Command: command, Description: description}, nil
}

func stringField(object map[string]interface{}, field string) (string, error) {
	raw, present := object[field]
	if !present {
		return "", invalidField(field)
	}
	value, ok := raw.(string)
	if !ok {
		return "", invalidField(field)
	}
	return value, nil
}

func invalidField(field string) error {
	return domain.ResponseFormatError(
		fmt.Sprintf("JSON validation error: Missing or invalid '%s' field", field), nil)
}
