package repository

import (
	"context"
	"encoding/json"

	"talentboard/internal/core"
	"talentboard/internal/database/client"
	"talentboard/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

// BookmarkRepository 把書籤 id 清單整包存成一個 Redis key，
// 格式是 JSON int 陣列。讀不到或壞掉一律當空集合。
type BookmarkRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewBookmarkRepository(trace *telemetry.Trace, redisClient *client.RedisClient) *BookmarkRepository {
	return &BookmarkRepository{
		trace:  trace,
		client: redisClient.Client(),
	}
}

// Load 讀出書籤清單。key 不存在回空集合；連線失敗回空集合加 error，
// 由呼叫端決定要不要視為致命。
func (repository *BookmarkRepository) Load(ctx context.Context) ([]int, error) {
	_, _, end := repository.trace.WithSpan(ctx)

	raw, err := repository.client.Get(ctx, string(core.RedisKeyBookmarks)).Result()
	if err == redis.Nil {
		end(nil)
		return []int{}, nil
	}
	if err != nil {
		end(err)
		return []int{}, err
	}

	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		// 內容損毀不算錯誤，視同從未收藏過
		end(nil)
		return []int{}, nil
	}
	end(nil)
	if ids == nil {
		ids = []int{}
	}
	return ids, nil
}

// Save 整包覆寫書籤清單，不設過期
func (repository *BookmarkRepository) Save(ctx context.Context, ids []int) error {
	_, _, end := repository.trace.WithSpan(ctx)

	if ids == nil {
		ids = []int{}
	}
	payload, err := json.Marshal(ids)
	if err != nil {
		end(err)
		return err
	}
	err = repository.client.Set(ctx, string(core.RedisKeyBookmarks), payload, 0).Err()
	end(err)
	return err
}
