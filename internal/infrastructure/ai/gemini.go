package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/doeshing/gask-go/internal/domain"
	"github.com/doeshing/gask-go/internal/ports"
)

const (
	msgAPIFailure     = "An error occurred while communicating with the API. Please try again later."
	msgNetworkFailure = "Failed to reach the server. Please check your internet connection."
	msgEmptyResponse  = "Invalid JSON response from the AI model."
)

// GeminiClient issues a single blocking POST to the Google Generative
// Language :generateContent endpoint and extracts the first candidate's
// text payload. No retries, no streaming.
type GeminiClient struct {
	httpClient *http.Client
	logger     ports.Logger
}

// NewGeminiClient builds the client. Per-request deadlines come from the
// generation request, so the underlying http.Client carries no timeout of
// its own.
func NewGeminiClient(log ports.Logger) *GeminiClient {
	return &GeminiClient{
		httpClient: &http.Client{},
		logger:     log,
	}
}

// Generate implements ports.GenerativeTextClient.
func (c *GeminiClient) Generate(ctx context.Context, req ports.GenerationRequest) (string, error) {
	prompt, err := BuildPrompt(req.Environment, req.Query)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   commandSuggestionSchema(),
		},
	})
	if err != nil {
		return "", err
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultTimeoutSeconds * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL(req), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.logger.Info("calling generative endpoint", map[string]interface{}{
		"model":   req.Model,
		"timeout": timeout.String(),
	})

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", domain.NetworkError(msgNetworkFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", domain.APIError(msgAPIFailure, fmt.Errorf("HTTP %s", resp.Status))
	}

	var parsed generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", domain.ResponseFormatError(msgEmptyResponse, err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", domain.ResponseFormatError(msgEmptyResponse, fmt.Errorf("response contains no candidates"))
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func (c *GeminiClient) endpointURL(req ports.GenerationRequest) string {
	base := req.Endpoint
	if base == "" {
		base = domain.DefaultEndpoint
	}
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		base, url.PathEscape(req.Model), url.QueryEscape(req.APIKey))
}

var _ ports.GenerativeTextClient = (*GeminiClient)(nil)
