package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/davimarquesgiareta/casa-nova/internal/domain"
	"github.com/davimarquesgiareta/casa-nova/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newRouter wires the full API against the given service mocks.
func newRouter(songs service.SongService, shows service.ShowService, setlist service.SetlistService, stats service.StatsService) *gin.Engine {
	r := gin.New()
	RegisterRoutes(r,
		NewSongHandler(songs),
		NewShowHandler(shows),
		NewSetlistHandler(setlist),
		NewStatsHandler(stats),
	)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// MockSongService mocks service.SongService.
type MockSongService struct {
	mock.Mock
}

func (m *MockSongService) ListSongs(ctx context.Context) ([]*domain.Song, error) {
	args := m.Called(ctx)
	if songs := args.Get(0); songs != nil {
		return songs.([]*domain.Song), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSongService) CreateSong(ctx context.Context, in *service.SongInput) (*domain.Song, error) {
	args := m.Called(ctx, in)
	if song := args.Get(0); song != nil {
		return song.(*domain.Song), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSongService) GetSong(ctx context.Context, id string) (*domain.Song, error) {
	args := m.Called(ctx, id)
	if song := args.Get(0); song != nil {
		return song.(*domain.Song), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSongService) UpdateSong(ctx context.Context, id string, in *service.SongInput) (*domain.Song, error) {
	args := m.Called(ctx, id, in)
	if song := args.Get(0); song != nil {
		return song.(*domain.Song), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSongService) DeleteSong(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockShowService mocks service.ShowService.
type MockShowService struct {
	mock.Mock
}

func (m *MockShowService) ListShows(ctx context.Context) ([]*domain.Show, error) {
	args := m.Called(ctx)
	if shows := args.Get(0); shows != nil {
		return shows.([]*domain.Show), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShowService) CreateShow(ctx context.Context, in *service.ShowInput) (*domain.Show, error) {
	args := m.Called(ctx, in)
	if show := args.Get(0); show != nil {
		return show.(*domain.Show), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShowService) GetShow(ctx context.Context, id string) (*domain.Show, error) {
	args := m.Called(ctx, id)
	if show := args.Get(0); show != nil {
		return show.(*domain.Show), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShowService) UpdateShow(ctx context.Context, id string, in *service.ShowInput) (*domain.Show, error) {
	args := m.Called(ctx, id, in)
	if show := args.Get(0); show != nil {
		return show.(*domain.Show), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShowService) DeleteShow(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShowService) CloneShow(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

// MockSetlistService mocks service.SetlistService.
type MockSetlistService struct {
	mock.Mock
}

func (m *MockSetlistService) ListSetlist(ctx context.Context, showID string) ([]*domain.SetlistEntry, error) {
	args := m.Called(ctx, showID)
	if entries := args.Get(0); entries != nil {
		return entries.([]*domain.SetlistEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSetlistService) AttachSong(ctx context.Context, showID, songID string, songOrder *int) (*domain.ShowSong, error) {
	args := m.Called(ctx, showID, songID, songOrder)
	if ss := args.Get(0); ss != nil {
		return ss.(*domain.ShowSong), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSetlistService) DetachSong(ctx context.Context, showID, songID string) error {
	args := m.Called(ctx, showID, songID)
	return args.Error(0)
}

func (m *MockSetlistService) Reorder(ctx context.Context, showID string, songIDs []string) error {
	args := m.Called(ctx, showID, songIDs)
	return args.Error(0)
}

// MockStatsService mocks service.StatsService.
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) LibraryStats(ctx context.Context) (*domain.LibraryStats, error) {
	args := m.Called(ctx)
	if stats := args.Get(0); stats != nil {
		return stats.(*domain.LibraryStats), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStatsService) ShowStats(ctx context.Context) (*domain.ShowStats, error) {
	args := m.Called(ctx)
	if stats := args.Get(0); stats != nil {
		return stats.(*domain.ShowStats), args.Error(1)
	}
	return nil, args.Error(1)
}
