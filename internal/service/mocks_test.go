package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/davimarquesgiareta/casa-nova/internal/domain"
)

// MockSongRepository mocks repository.SongRepository.
type MockSongRepository struct {
	mock.Mock
}

func (m *MockSongRepository) Create(ctx context.Context, song *domain.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *MockSongRepository) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	args := m.Called(ctx, id)
	if song := args.Get(0); song != nil {
		return song.(*domain.Song), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSongRepository) List(ctx context.Context) ([]*domain.Song, error) {
	args := m.Called(ctx)
	if songs := args.Get(0); songs != nil {
		return songs.([]*domain.Song), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSongRepository) Update(ctx context.Context, song *domain.Song) (*domain.Song, error) {
	args := m.Called(ctx, song)
	if updated := args.Get(0); updated != nil {
		return updated.(*domain.Song), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSongRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockShowRepository mocks repository.ShowRepository.
type MockShowRepository struct {
	mock.Mock
}

func (m *MockShowRepository) Create(ctx context.Context, show *domain.Show) error {
	args := m.Called(ctx, show)
	return args.Error(0)
}

func (m *MockShowRepository) GetByID(ctx context.Context, id string) (*domain.Show, error) {
	args := m.Called(ctx, id)
	if show := args.Get(0); show != nil {
		return show.(*domain.Show), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShowRepository) List(ctx context.Context) ([]*domain.Show, error) {
	args := m.Called(ctx)
	if shows := args.Get(0); shows != nil {
		return shows.([]*domain.Show), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShowRepository) Update(ctx context.Context, show *domain.Show) (*domain.Show, error) {
	args := m.Called(ctx, show)
	if updated := args.Get(0); updated != nil {
		return updated.(*domain.Show), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShowRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShowRepository) Clone(ctx context.Context, sourceID string, newShow *domain.Show) error {
	args := m.Called(ctx, sourceID, newShow)
	return args.Error(0)
}

// MockSetlistRepository mocks repository.SetlistRepository.
type MockSetlistRepository struct {
	mock.Mock
}

func (m *MockSetlistRepository) List(ctx context.Context, showID string) ([]*domain.SetlistEntry, error) {
	args := m.Called(ctx, showID)
	if entries := args.Get(0); entries != nil {
		return entries.([]*domain.SetlistEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSetlistRepository) Add(ctx context.Context, ss *domain.ShowSong) error {
	args := m.Called(ctx, ss)
	return args.Error(0)
}

func (m *MockSetlistRepository) Remove(ctx context.Context, showID, songID string) error {
	args := m.Called(ctx, showID, songID)
	return args.Error(0)
}

func (m *MockSetlistRepository) Exists(ctx context.Context, showID, songID string) (bool, error) {
	args := m.Called(ctx, showID, songID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSetlistRepository) MaxPosition(ctx context.Context, showID string) (int, error) {
	args := m.Called(ctx, showID)
	return args.Int(0), args.Error(1)
}

func (m *MockSetlistRepository) Reorder(ctx context.Context, showID string, songIDs []string) error {
	args := m.Called(ctx, showID, songIDs)
	return args.Error(0)
}

// MockStatsRepository mocks repository.StatsRepository.
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) LibraryStats(ctx context.Context) (*domain.LibraryStats, error) {
	args := m.Called(ctx)
	if stats := args.Get(0); stats != nil {
		return stats.(*domain.LibraryStats), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStatsRepository) ShowStats(ctx context.Context) (*domain.ShowStats, error) {
	args := m.Called(ctx)
	if stats := args.Get(0); stats != nil {
		return stats.(*domain.ShowStats), args.Error(1)
	}
	return nil, args.Error(1)
}
