//go:build wireinject
// +build wireinject

package main

import (
	"talentboard/config"
	"talentboard/internal/command"
	"talentboard/internal/cron"
	"talentboard/internal/database"
	redisRepo "talentboard/internal/database/redis/repository"
	"talentboard/internal/handler"
	"talentboard/internal/middleware"
	"talentboard/internal/router"
	"talentboard/internal/service"
	"talentboard/internal/store"
	"talentboard/internal/telemetry"
	"talentboard/internal/view"

	client "talentboard/internal/database/client"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			store.ProviderSet,
			view.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			newHttpClient,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(wire.Build(
		command.ProviderSet,
		telemetry.ProviderSet,
		store.ProviderSet,
		client.NewRedisClient,
		redisRepo.NewBookmarkRepository,
		wire.Bind(new(store.BookmarkRepository), new(*redisRepo.BookmarkRepository)),
		service.NewEnricher,
		service.NewLoaderService,
		service.NewAnalyticsService,
		newHttpClient,
	))
}
