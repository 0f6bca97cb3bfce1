package store

import (
	"context"
	"sync"

	"talentboard/internal/core"

	"github.com/google/wire"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewStore)

// BookmarkRepository 將書籤 id 集合橋接到外部 KV 儲存。
// 讀取失敗（key 不存在、內容壞掉）必須回傳空集合而非錯誤。
type BookmarkRepository interface {
	Load(ctx context.Context) ([]int, error)
	Save(ctx context.Context, ids []int) error
}

// Store 是應用狀態唯一的持有者。Dispatch 是唯一的寫入路徑，
// 在鎖內跑完整個 reducer 後才換上新快照，讀取端永遠拿到
// 完整一致的 State，不存在半套用的中間狀態。
type Store struct {
	logger    *zap.Logger
	bookmarks BookmarkRepository

	mu    sync.RWMutex
	state *core.State
}

// NewStore 建立初始狀態，並回填前一個 session 持久化的書籤。
func NewStore(logger *zap.Logger, bookmarks BookmarkRepository) *Store {
	s := &Store{
		logger:    logger,
		bookmarks: bookmarks,
		state:     core.NewInitialState(),
	}

	if bookmarks != nil {
		ids, err := bookmarks.Load(context.Background())
		if err != nil {
			// 持久層讀取失敗不往外冒，視同沒有書籤
			logger.Warn("load persisted bookmarks failed", zap.Error(err))
			return s
		}
		for _, id := range ids {
			s.state = apply(s.state, ToggleBookmark{EmployeeID: id})
		}
	}
	return s
}

// Dispatch 套用動作並發布新快照；若書籤集合有變，整組覆寫到持久層
// （last-write-wins，不做合併）。
func (s *Store) Dispatch(ctx context.Context, action Action) *core.State {
	s.mu.Lock()
	prev := s.state
	next := apply(prev, action)
	s.state = next
	s.mu.Unlock()

	if s.bookmarks != nil && !sameIntSlice(prev.BookmarkedIDs, next.BookmarkedIDs) {
		if err := s.bookmarks.Save(ctx, next.BookmarkedIDs); err != nil {
			s.logger.Warn("persist bookmarks failed", zap.Error(err))
		}
	}
	return next
}

// State 回傳目前快照；快照不可變，呼叫端可自由讀取。
func (s *Store) State() *core.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// reducer 只會整組替換 BookmarkedIDs，identity 相同即代表沒變
func sameIntSlice(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
