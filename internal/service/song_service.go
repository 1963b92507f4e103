// Package service holds the business rules between the HTTP handlers
// and the repositories.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/davimarquesgiareta/casa-nova/internal/domain"
	"github.com/davimarquesgiareta/casa-nova/internal/repository"
)

// SongInput carries the mutable fields of a song, for create and for
// full-field update.
type SongInput struct {
	Title        string
	Artist       *string
	Tone         *string
	YouTubeURL   *string
	BPM          *int
	DurationSecs *int
}

// SongService is the song catalog.
type SongService interface {
	// ListSongs returns all songs, newest first.
	ListSongs(ctx context.Context) ([]*domain.Song, error)

	// CreateSong validates the input and persists a new song with a
	// fresh id and the current timestamp.
	CreateSong(ctx context.Context, in *SongInput) (*domain.Song, error)

	// GetSong returns one song by id.
	GetSong(ctx context.Context, id string) (*domain.Song, error)

	// UpdateSong replaces all mutable fields of the song.
	UpdateSong(ctx context.Context, id string, in *SongInput) (*domain.Song, error)

	// DeleteSong removes the song; memberships referencing it cascade.
	DeleteSong(ctx context.Context, id string) error
}

type songService struct {
	songs repository.SongRepository
}

// NewSongService creates a song service.
func NewSongService(songs repository.SongRepository) SongService {
	return &songService{songs: songs}
}

func (s *songService) ListSongs(ctx context.Context) ([]*domain.Song, error) {
	return s.songs.List(ctx)
}

func (s *songService) CreateSong(ctx context.Context, in *SongInput) (*domain.Song, error) {
	song := &domain.Song{
		ID:           uuid.New().String(),
		Title:        in.Title,
		Artist:       in.Artist,
		Tone:         in.Tone,
		YouTubeURL:   in.YouTubeURL,
		BPM:          in.BPM,
		DurationSecs: in.DurationSecs,
		CreatedAt:    time.Now(),
	}
	if err := song.Validate(); err != nil {
		return nil, err
	}

	if err := s.songs.Create(ctx, song); err != nil {
		return nil, err
	}
	return song, nil
}

func (s *songService) GetSong(ctx context.Context, id string) (*domain.Song, error) {
	return s.songs.GetByID(ctx, id)
}

func (s *songService) UpdateSong(ctx context.Context, id string, in *SongInput) (*domain.Song, error) {
	song := &domain.Song{
		ID:           id,
		Title:        in.Title,
		Artist:       in.Artist,
		Tone:         in.Tone,
		YouTubeURL:   in.YouTubeURL,
		BPM:          in.BPM,
		DurationSecs: in.DurationSecs,
	}
	if err := song.Validate(); err != nil {
		return nil, err
	}

	return s.songs.Update(ctx, song)
}

func (s *songService) DeleteSong(ctx context.Context, id string) error {
	return s.songs.Delete(ctx, id)
}
