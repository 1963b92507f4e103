package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davimarquesgiareta/casa-nova/internal/domain"
)

// ShowRepositoryImpl is the PostgreSQL show store. Dates and times are
// cast through text so the wire form stays YYYY-MM-DD / HH:MM:SS.
type ShowRepositoryImpl struct {
	db *pgxpool.Pool
	tx Transaction
}

// NewShowRepository creates a show repository.
func NewShowRepository(db *pgxpool.Pool) ShowRepository {
	return &ShowRepositoryImpl{db: db, tx: NewTransaction(db)}
}

// Create inserts a new show.
func (r *ShowRepositoryImpl) Create(ctx context.Context, show *domain.Show) error {
	query := `
		INSERT INTO shows (id, name, venue, event_date, show_time, created_at)
		VALUES ($1, $2, $3, $4::date, $5::time, $6)
	`
	_, err := r.db.Exec(ctx, query,
		show.ID,
		show.Name,
		show.Venue,
		show.EventDate,
		show.ShowTime,
		show.CreatedAt,
	)
	return err
}

// GetByID returns one show (with its member count) or domain.ErrShowNotFound.
func (r *ShowRepositoryImpl) GetByID(ctx context.Context, id string) (*domain.Show, error) {
	query := `
		SELECT s.id, s.name, s.venue, s.event_date::text, s.show_time::text, s.created_at,
		       (SELECT COUNT(*) FROM show_songs ss WHERE ss.show_id = s.id) AS song_count
		FROM shows s
		WHERE s.id = $1
	`
	var show domain.Show
	err := r.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.Name,
		&show.Venue,
		&show.EventDate,
		&show.ShowTime,
		&show.CreatedAt,
		&show.SongCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrShowNotFound
	}
	if err != nil {
		return nil, err
	}
	return &show, nil
}

// List returns all shows with their member counts, newest first.
func (r *ShowRepositoryImpl) List(ctx context.Context) ([]*domain.Show, error) {
	query := `
		SELECT s.id, s.name, s.venue, s.event_date::text, s.show_time::text, s.created_at,
		       COUNT(ss.song_id) AS song_count
		FROM shows s
		LEFT JOIN show_songs ss ON ss.show_id = s.id
		GROUP BY s.id
		ORDER BY s.created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]*domain.Show, 0)
	for rows.Next() {
		var show domain.Show
		err := rows.Scan(
			&show.ID,
			&show.Name,
			&show.Venue,
			&show.EventDate,
			&show.ShowTime,
			&show.CreatedAt,
			&show.SongCount,
		)
		if err != nil {
			return nil, err
		}
		shows = append(shows, &show)
	}
	return shows, rows.Err()
}

// Update replaces all mutable fields of a show and returns the stored row.
func (r *ShowRepositoryImpl) Update(ctx context.Context, show *domain.Show) (*domain.Show, error) {
	query := `
		UPDATE shows
		SET name = $2, venue = $3, event_date = $4::date, show_time = $5::time
		WHERE id = $1
		RETURNING id, name, venue, event_date::text, show_time::text, created_at,
		          (SELECT COUNT(*) FROM show_songs ss WHERE ss.show_id = shows.id)
	`
	var updated domain.Show
	err := r.db.QueryRow(ctx, query,
		show.ID,
		show.Name,
		show.Venue,
		show.EventDate,
		show.ShowTime,
	).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Venue,
		&updated.EventDate,
		&updated.ShowTime,
		&updated.CreatedAt,
		&updated.SongCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrShowNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a show; its memberships go with it via ON DELETE CASCADE.
func (r *ShowRepositoryImpl) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM shows WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrShowNotFound
	}
	return nil
}

// Clone inserts newShow and copies every membership row of sourceID into
// it with its song_order intact. Runs as a single transaction so a
// partial clone is never visible.
func (r *ShowRepositoryImpl) Clone(ctx context.Context, sourceID string, newShow *domain.Show) error {
	return r.tx.ExecTx(ctx, func(tx pgx.Tx) error {
		insertShow := `
			INSERT INTO shows (id, name, venue, event_date, show_time, created_at)
			VALUES ($1, $2, $3, $4::date, $5::time, $6)
		`
		_, err := tx.Exec(ctx, insertShow,
			newShow.ID,
			newShow.Name,
			newShow.Venue,
			newShow.EventDate,
			newShow.ShowTime,
			newShow.CreatedAt,
		)
		if err != nil {
			return err
		}

		copySongs := `
			INSERT INTO show_songs (show_id, song_id, song_order, added_at)
			SELECT $1, song_id, song_order, now()
			FROM show_songs
			WHERE show_id = $2
		`
		_, err = tx.Exec(ctx, copySongs, newShow.ID, sourceID)
		return err
	})
}
