package database

import (
	client "talentboard/internal/database/client"
	fluentdRepo "talentboard/internal/database/fluentd/repository"
	redisRepo "talentboard/internal/database/redis/repository"
	"talentboard/internal/store"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewRedisClient,
	client.NewFluentdClient,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
	wire.Bind(new(store.BookmarkRepository), new(*redisRepo.BookmarkRepository)),
)
