package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davimarquesgiareta/casa-nova/internal/domain"
)

// SetlistRepositoryImpl is the PostgreSQL show-song membership store.
type SetlistRepositoryImpl struct {
	db *pgxpool.Pool
	tx Transaction
}

// NewSetlistRepository creates a setlist repository.
func NewSetlistRepository(db *pgxpool.Pool) SetlistRepository {
	return &SetlistRepositoryImpl{db: db, tx: NewTransaction(db)}
}

// List returns a show's setlist joined with song catalog data, in
// ascending song_order. A show with no members yields an empty slice.
func (r *SetlistRepositoryImpl) List(ctx context.Context, showID string) ([]*domain.SetlistEntry, error) {
	query := `
		SELECT s.id, s.title, s.artist, s.tone, ss.song_order
		FROM show_songs ss
		JOIN songs s ON s.id = ss.song_id
		WHERE ss.show_id = $1
		ORDER BY ss.song_order ASC
	`
	rows, err := r.db.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.SetlistEntry, 0)
	for rows.Next() {
		var entry domain.SetlistEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Title,
			&entry.Artist,
			&entry.Tone,
			&entry.SongOrder,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}

// Add inserts a membership row. A duplicate (show_id, song_id) pair is
// reported as domain.ErrSongAlreadyInShow.
func (r *SetlistRepositoryImpl) Add(ctx context.Context, ss *domain.ShowSong) error {
	query := `
		INSERT INTO show_songs (show_id, song_id, song_order, added_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, ss.ShowID, ss.SongID, ss.SongOrder, ss.AddedAt)
	if isUniqueViolation(err) {
		return domain.ErrSongAlreadyInShow
	}
	return translateFK(err)
}

// Remove deletes a membership row. Remaining positions are not
// renumbered; ordering is by relative rank and tolerates gaps.
func (r *SetlistRepositoryImpl) Remove(ctx context.Context, showID, songID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM show_songs WHERE show_id = $1 AND song_id = $2`,
		showID, songID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSongNotInShow
	}
	return nil
}

// Exists reports whether the song is already part of the show.
func (r *SetlistRepositoryImpl) Exists(ctx context.Context, showID, songID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM show_songs
			WHERE show_id = $1 AND song_id = $2
		)
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, showID, songID).Scan(&exists)
	return exists, err
}

// MaxPosition returns the highest song_order in the show, or -1 when the
// show has no members.
func (r *SetlistRepositoryImpl) MaxPosition(ctx context.Context, showID string) (int, error) {
	query := `SELECT COALESCE(MAX(song_order), -1) FROM show_songs WHERE show_id = $1`
	var maxPos int
	err := r.db.QueryRow(ctx, query, showID).Scan(&maxPos)
	return maxPos, err
}

// Reorder upserts one membership row per element of songIDs with
// song_order equal to the element's index, attaching songs that were not
// yet members. All rows are written in a single transaction, batched, so
// a partial reorder is never visible to concurrent readers.
func (r *SetlistRepositoryImpl) Reorder(ctx context.Context, showID string, songIDs []string) error {
	if len(songIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO show_songs (show_id, song_id, song_order, added_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (show_id, song_id)
		DO UPDATE SET song_order = EXCLUDED.song_order
	`

	return r.tx.ExecTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for i, songID := range songIDs {
			batch.Queue(query, showID, songID, i)
		}

		results := tx.SendBatch(ctx, batch)
		defer results.Close()

		for range songIDs {
			if _, err := results.Exec(); err != nil {
				return translateFK(err)
			}
		}
		return results.Close()
	})
}

// translateFK maps foreign-key violations on show_songs to the matching
// not-found error of the missing parent.
func translateFK(err error) error {
	switch violatedConstraint(err) {
	case "show_songs_show_id_fkey":
		return domain.ErrShowNotFound
	case "show_songs_song_id_fkey":
		return domain.ErrSongNotFound
	}
	return err
}
