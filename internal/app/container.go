package app

import (
	"context"

	"github.com/doeshing/gask-go/internal/application/suggest"
	"github.com/doeshing/gask-go/internal/infrastructure/ai"
	"github.com/doeshing/gask-go/internal/infrastructure/config"
	"github.com/doeshing/gask-go/internal/infrastructure/history"
	"github.com/doeshing/gask-go/internal/infrastructure/probe"
	"github.com/doeshing/gask-go/internal/pkg/logger"
	"github.com/doeshing/gask-go/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	SuggestService *suggest.Service
	ConfigLoader   *config.FileLoader
	HistoryStore   ports.HistoryRepository
	Logger         ports.Logger
}

// BuildContainer constructs the dependency graph. Configuration is loaded
// lazily inside the suggestion flow so that subcommands like `init` and
// `version` work before any config file exists.
func BuildContainer(_ context.Context, verbose bool) *Container {
	log := logger.NewStd(verbose)
	cfgLoader := config.NewFileLoader("")
	historyStore := history.NewSQLiteStore()

	suggestService := &suggest.Service{
		ConfigProvider: cfgLoader,
		Probe:          probe.New(),
		Client:         ai.NewGeminiClient(log),
		History:        historyStore,
		Logger:         log,
	}

	return &Container{
		SuggestService: suggestService,
		ConfigLoader:   cfgLoader,
		HistoryStore:   historyStore,
		Logger:         log,
	}
}
