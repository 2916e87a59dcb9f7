package suggest

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/doeshing/gask-go/internal/domain"
	"github.com/doeshing/gask-go/internal/ports"
)

// Service orchestrates one suggestion end-to-end: config, environment
// probe, generation call, contract validation, presentation side effects.
// The flow is strictly linear with a single outbound network call.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Probe          ports.EnvironmentProbe
	Client         ports.GenerativeTextClient
	History        ports.HistoryRepository
	Clipboard      ports.Clipboard
	Logger         ports.Logger
}

// Run processes a single natural-language query.
func (s *Service) Run(req domain.SuggestionRequest) (domain.SuggestionResponse, error) {
	if s.ConfigProvider == nil || s.Probe == nil || s.Client == nil || s.Logger == nil {
		return domain.SuggestionResponse{}, errors.New("suggest.Service dependencies not satisfied")
	}

	if strings.TrimSpace(req.Query) == "" {
		return domain.SuggestionResponse{}, domain.UsageError("A query is required.")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.SuggestionResponse{}, err
	}

	env := s.Probe.Describe(ctx)
	s.Logger.Debug("environment probed", map[string]interface{}{
		"descriptor": env.String(),
	})

	model := cfg.ModelName
	if req.ModelOverride != "" {
		model = req.ModelOverride
	}

	raw, err := s.Client.Generate(ctx, ports.GenerationRequest{
		Query:       req.Query,
		Environment: env,
		Model:       model,
		APIKey:      cfg.APIKey,
		Endpoint:    cfg.Endpoint,
		Timeout:     resolveTimeout(req.Timeout, cfg.TimeoutSeconds),
	})
	if err != nil {
		return domain.SuggestionResponse{}, err
	}

	suggestion, err := ParseSuggestion(raw)
	if err != nil {
		return domain.SuggestionResponse{}, err
	}

	resp := domain.SuggestionResponse{
		Suggestion:  suggestion,
		Model:       model,
		Environment: env,
		RawPayload:  raw,
	}

	if req.CopyToClipboard && s.Clipboard != nil && s.Clipboard.Enabled() {
		if err := s.Clipboard.Copy(suggestion.Command); err != nil {
			s.Logger.Warn("clipboard copy failed", map[string]interface{}{"error": err.Error()})
		}
	}

	if req.RecordHistory && cfg.HistoryEnabled && s.History != nil {
		record := domain.HistoryRecord{
			Timestamp:   time.Now(),
			Query:       req.Query,
			Command:     suggestion.Command,
			Description: suggestion.Description,
			Model:       model,
		}
		if err := s.History.Save(record); err != nil {
			s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return resp, nil
}

func resolveTimeout(override time.Duration, cfgSeconds int) time.Duration {
	if override > 0 {
		return override
	}
	if cfgSeconds > 0 {
		return time.Duration(cfgSeconds) * time.Second
	}
	return domain.DefaultTimeoutSeconds * time.Second
}

var _ domain.SuggestionService = (*Service)(nil)
