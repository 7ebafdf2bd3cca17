//go:build wireinject
// +build wireinject

package di

import (
	"GodSignal/internal/usecase"
	"GodSignal/pkg/config"
	"GodSignal/pkg/server"

	"github.com/google/wire"
)

var pagesSet = wire.NewSet(
	ProvideLogPublisher,
	ProvideLogger,
	ProvideRegistry,
	ProvideMetrics,
	ProvideEngineSource,
	ProvideSentimentSource,
	usecase.NewPageUseCase,
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, func(), error) {
	wire.Build(
		pagesSet,

		// HTTP surface
		ProvideHTTPMetrics,
		ProvideRateLimiter,
		ProvidePagesHandler,
		ProvideLiveHandler,
		ProvideHandlers,
		ProvideHTTPServer,

		server.New,
	)
	return nil, nil, nil
}

// InitializePages wires only what one-shot CLI commands need.
func InitializePages(cfg *config.Config) (*usecase.PageUseCase, func(), error) {
	wire.Build(pagesSet)
	return nil, nil, nil
}
