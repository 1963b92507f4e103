// Package repository implements persistence for the song catalog, the
// show store and the show-song membership relation on PostgreSQL.
package repository

import (
	"context"

	"github.com/davimarquesgiareta/casa-nova/internal/domain"
)

// SongRepository is the song catalog store.
type SongRepository interface {
	Create(ctx context.Context, song *domain.Song) error
	GetByID(ctx context.Context, id string) (*domain.Song, error)
	List(ctx context.Context) ([]*domain.Song, error)
	Update(ctx context.Context, song *domain.Song) (*domain.Song, error)
	Delete(ctx context.Context, id string) error
}

// ShowRepository is the show store.
type ShowRepository interface {
	Create(ctx context.Context, show *domain.Show) error
	GetByID(ctx context.Context, id string) (*domain.Show, error)
	List(ctx context.Context) ([]*domain.Show, error)
	Update(ctx context.Context, show *domain.Show) (*domain.Show, error)
	Delete(ctx context.Context, id string) error

	// Clone inserts newShow and copies every membership row of
	// sourceID into it, preserving song_order, in one transaction.
	Clone(ctx context.Context, sourceID string, newShow *domain.Show) error
}

// SetlistRepository is the show-song membership and ordering store.
type SetlistRepository interface {
	List(ctx context.Context, showID string) ([]*domain.SetlistEntry, error)
	Add(ctx context.Context, ss *domain.ShowSong) error
	Remove(ctx context.Context, showID, songID string) error
	Exists(ctx context.Context, showID, songID string) (bool, error)
	MaxPosition(ctx context.Context, showID string) (int, error)

	// Reorder upserts one membership row per element of songIDs, with
	// song_order equal to the element's index, in one transaction.
	Reorder(ctx context.Context, showID string, songIDs []string) error
}

// StatsRepository runs the aggregation queries behind the stats endpoints.
type StatsRepository interface {
	LibraryStats(ctx context.Context) (*domain.LibraryStats, error)
	ShowStats(ctx context.Context) (*domain.ShowStats, error)
}
