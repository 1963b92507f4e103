package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davimarquesgiareta/casa-nova/internal/domain"
)

// SongRepositoryImpl is the PostgreSQL song catalog store.
type SongRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewSongRepository creates a song repository.
func NewSongRepository(db *pgxpool.Pool) SongRepository {
	return &SongRepositoryImpl{db: db}
}

// Create inserts a new song.
func (r *SongRepositoryImpl) Create(ctx context.Context, song *domain.Song) error {
	query := `
		INSERT INTO songs (id, title, artist, tone, youtube_url, bpm, duration_secs, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		song.ID,
		song.Title,
		song.Artist,
		song.Tone,
		song.YouTubeURL,
		song.BPM,
		song.DurationSecs,
		song.CreatedAt,
	)
	return err
}

// GetByID returns one song or domain.ErrSongNotFound.
func (r *SongRepositoryImpl) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	query := `
		SELECT id, title, artist, tone, youtube_url, bpm, duration_secs, created_at
		FROM songs
		WHERE id = $1
	`
	var song domain.Song
	err := r.db.QueryRow(ctx, query, id).Scan(
		&song.ID,
		&song.Title,
		&song.Artist,
		&song.Tone,
		&song.YouTubeURL,
		&song.BPM,
		&song.DurationSecs,
		&song.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSongNotFound
	}
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// List returns all songs, newest first.
func (r *SongRepositoryImpl) List(ctx context.Context) ([]*domain.Song, error) {
	query := `
		SELECT id, title, artist, tone, youtube_url, bpm, duration_secs, created_at
		FROM songs
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	songs := make([]*domain.Song, 0)
	for rows.Next() {
		var song domain.Song
		err := rows.Scan(
			&song.ID,
			&song.Title,
			&song.Artist,
			&song.Tone,
			&song.YouTubeURL,
			&song.BPM,
			&song.DurationSecs,
			&song.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		songs = append(songs, &song)
	}
	return songs, rows.Err()
}

// Update replaces all mutable fields of a song and returns the stored row.
func (r *SongRepositoryImpl) Update(ctx context.Context, song *domain.Song) (*domain.Song, error) {
	query := `
		UPDATE songs
		SET title = $2, artist = $3, tone = $4, youtube_url = $5, bpm = $6, duration_secs = $7
		WHERE id = $1
		RETURNING id, title, artist, tone, youtube_url, bpm, duration_secs, created_at
	`
	var updated domain.Song
	err := r.db.QueryRow(ctx, query,
		song.ID,
		song.Title,
		song.Artist,
		song.Tone,
		song.YouTubeURL,
		song.BPM,
		song.DurationSecs,
	).Scan(
		&updated.ID,
		&updated.Title,
		&updated.Artist,
		&updated.Tone,
		&updated.YouTubeURL,
		&updated.BPM,
		&updated.DurationSecs,
		&updated.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSongNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a song; memberships referencing it are removed by the
// ON DELETE CASCADE constraint.
func (r *SongRepositoryImpl) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}
