package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewEnricher,
	NewLoaderService,
	NewDirectoryService,
	NewAnalyticsService,
	NewSessionService,
	NewHealthService,
)
