package store

import (
	"context"
	"errors"
	"testing"

	"talentboard/internal/core"

	"go.uber.org/zap"
)

// 記憶體版書籤持久層
type fakeBookmarkRepository struct {
	ids     []int
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeBookmarkRepository) Load(ctx context.Context) ([]int, error) {
	if f.loadErr != nil {
		return []int{}, f.loadErr
	}
	return append([]int(nil), f.ids...), nil
}

func (f *fakeBookmarkRepository) Save(ctx context.Context, ids []int) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.ids = append([]int(nil), ids...)
	return nil
}

func TestNewStoreReplaysPersistedBookmarks(t *testing.T) {
	repo := &fakeBookmarkRepository{ids: []int{2, 5}}

	s := NewStore(zap.NewNop(), repo)

	state := s.State()
	if !state.IsBookmarked(2) || !state.IsBookmarked(5) {
		t.Errorf("persisted bookmarks not restored, got %v", state.BookmarkedIDs)
	}
	if repo.saves != 0 {
		t.Errorf("restore must not write back, saves = %d", repo.saves)
	}
}

func TestNewStoreLoadFailureStartsEmpty(t *testing.T) {
	repo := &fakeBookmarkRepository{loadErr: errors.New("connection refused")}

	s := NewStore(zap.NewNop(), repo)

	if len(s.State().BookmarkedIDs) != 0 {
		t.Errorf("load failure should start with empty bookmarks, got %v", s.State().BookmarkedIDs)
	}
}

func TestDispatchPersistsBookmarkChanges(t *testing.T) {
	repo := &fakeBookmarkRepository{}
	s := NewStore(zap.NewNop(), repo)
	ctx := context.Background()

	s.Dispatch(ctx, ToggleBookmark{EmployeeID: 4})
	if repo.saves != 1 {
		t.Fatalf("saves = %d, want 1", repo.saves)
	}
	if len(repo.ids) != 1 || repo.ids[0] != 4 {
		t.Errorf("persisted ids = %v, want [4]", repo.ids)
	}

	// 與書籤無關的動作不應該寫入持久層
	s.Dispatch(ctx, SetSearchTerm{Term: "x"})
	if repo.saves != 1 {
		t.Errorf("non-bookmark action triggered a save, saves = %d", repo.saves)
	}

	s.Dispatch(ctx, ToggleBookmark{EmployeeID: 4})
	if repo.saves != 2 {
		t.Fatalf("saves = %d, want 2", repo.saves)
	}
	if len(repo.ids) != 0 {
		t.Errorf("persisted ids = %v, want empty", repo.ids)
	}
}

func TestDispatchSaveFailureKeepsInMemoryState(t *testing.T) {
	repo := &fakeBookmarkRepository{saveErr: errors.New("write timeout")}
	s := NewStore(zap.NewNop(), repo)

	next := s.Dispatch(context.Background(), ToggleBookmark{EmployeeID: 9})

	if !next.IsBookmarked(9) {
		t.Error("save failure must not roll back the in-memory toggle")
	}
}

func TestStateReturnsConsistentSnapshot(t *testing.T) {
	s := NewStore(zap.NewNop(), &fakeBookmarkRepository{})
	ctx := context.Background()

	s.Dispatch(ctx, SetEmployees{Employees: []core.Employee{{ID: 1, Rating: 4.0}}})
	snapshot := s.State()

	s.Dispatch(ctx, PromoteEmployee{EmployeeID: 1})

	if snapshot.Employees[0].Rating != 4.0 {
		t.Error("earlier snapshot mutated by later dispatch")
	}
	if s.State().Employees[0].Rating != 4.5 {
		t.Errorf("rating = %v, want 4.5", s.State().Employees[0].Rating)
	}
}
