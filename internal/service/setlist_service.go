package service

import (
	"context"
	"time"

	"github.com/davimarquesgiareta/casa-nova/internal/domain"
	"github.com/davimarquesgiareta/casa-nova/internal/repository"
)

// SetlistService is the show-song membership and ordering core.
type SetlistService interface {
	// ListSetlist returns a show's songs in ascending song_order.
	ListSetlist(ctx context.Context, showID string) ([]*domain.SetlistEntry, error)

	// AttachSong adds a song to the end of a show's setlist, or at the
	// explicit songOrder when one is supplied. Both the show and the
	// song must exist, and the pair must not already be attached.
	AttachSong(ctx context.Context, showID, songID string, songOrder *int) (*domain.ShowSong, error)

	// DetachSong removes a song from a show's setlist. Remaining
	// positions are not renumbered.
	DetachSong(ctx context.Context, showID, songID string) error

	// Reorder makes songIDs the authoritative ordering of the show's
	// setlist: element i gets position i, and songs not yet attached
	// are attached. Atomic and idempotent.
	Reorder(ctx context.Context, showID string, songIDs []string) error
}

type setlistService struct {
	shows   repository.ShowRepository
	songs   repository.SongRepository
	setlist repository.SetlistRepository
}

// NewSetlistService creates a setlist service.
func NewSetlistService(
	shows repository.ShowRepository,
	songs repository.SongRepository,
	setlist repository.SetlistRepository,
) SetlistService {
	return &setlistService{
		shows:   shows,
		songs:   songs,
		setlist: setlist,
	}
}

func (s *setlistService) ListSetlist(ctx context.Context, showID string) ([]*domain.SetlistEntry, error) {
	return s.setlist.List(ctx, showID)
}

func (s *setlistService) AttachSong(ctx context.Context, showID, songID string, songOrder *int) (*domain.ShowSong, error) {
	if _, err := s.shows.GetByID(ctx, showID); err != nil {
		return nil, err
	}
	if _, err := s.songs.GetByID(ctx, songID); err != nil {
		return nil, err
	}

	exists, err := s.setlist.Exists(ctx, showID, songID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrSongAlreadyInShow
	}

	position := 0
	if songOrder != nil {
		position = *songOrder
	} else {
		maxPos, err := s.setlist.MaxPosition(ctx, showID)
		if err != nil {
			return nil, err
		}
		position = maxPos + 1
	}

	ss := &domain.ShowSong{
		ShowID:    showID,
		SongID:    songID,
		SongOrder: position,
		AddedAt:   time.Now(),
	}
	if err := ss.Validate(); err != nil {
		return nil, err
	}

	if err := s.setlist.Add(ctx, ss); err != nil {
		return nil, err
	}
	return ss, nil
}

func (s *setlistService) DetachSong(ctx context.Context, showID, songID string) error {
	return s.setlist.Remove(ctx, showID, songID)
}

func (s *setlistService) Reorder(ctx context.Context, showID string, songIDs []string) error {
	return s.setlist.Reorder(ctx, showID, songIDs)
}
