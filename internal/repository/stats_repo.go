package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davimarquesgiareta/casa-nova/internal/domain"
)

// StatsRepositoryImpl runs the aggregation queries behind the stats
// endpoints. The result shapes mirror what the dashboard expects.
type StatsRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a stats repository.
func NewStatsRepository(db *pgxpool.Pool) StatsRepository {
	return &StatsRepositoryImpl{db: db}
}

// LibraryStats aggregates the song catalog.
func (r *StatsRepositoryImpl) LibraryStats(ctx context.Context) (*domain.LibraryStats, error) {
	var stats domain.LibraryStats

	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(duration_secs), 0),
		       COALESCE(AVG(duration_secs), 0)
		FROM songs
	`
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalSongs,
		&stats.TotalDurationSecs,
		&stats.AvgDurationSecs,
	)
	if err != nil {
		return nil, err
	}

	stats.MostFrequentArtist, err = r.mostFrequent(ctx, `
		SELECT artist FROM songs
		WHERE artist IS NOT NULL
		GROUP BY artist
		ORDER BY COUNT(*) DESC, artist ASC
		LIMIT 1
	`)
	if err != nil {
		return nil, err
	}

	stats.MostFrequentTone, err = r.mostFrequent(ctx, `
		SELECT tone FROM songs
		WHERE tone IS NOT NULL
		GROUP BY tone
		ORDER BY COUNT(*) DESC, tone ASC
		LIMIT 1
	`)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// ShowStats aggregates the shows and their setlists, including the
// top five most-played songs.
func (r *StatsRepositoryImpl) ShowStats(ctx context.Context) (*domain.ShowStats, error) {
	var stats domain.ShowStats

	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM shows`).Scan(&stats.TotalShows)
	if err != nil {
		return nil, err
	}

	stats.MostFrequentVenue, err = r.mostFrequent(ctx, `
		SELECT venue FROM shows
		WHERE venue IS NOT NULL
		GROUP BY venue
		ORDER BY COUNT(*) DESC, venue ASC
		LIMIT 1
	`)
	if err != nil {
		return nil, err
	}

	stats.MostFrequentArtist, err = r.mostFrequent(ctx, `
		SELECT s.artist
		FROM show_songs ss
		JOIN songs s ON s.id = ss.song_id
		WHERE s.artist IS NOT NULL
		GROUP BY s.artist
		ORDER BY COUNT(*) DESC, s.artist ASC
		LIMIT 1
	`)
	if err != nil {
		return nil, err
	}

	topQuery := `
		SELECT s.title, s.artist, COUNT(*) AS play_count
		FROM show_songs ss
		JOIN songs s ON s.id = ss.song_id
		GROUP BY s.id, s.title, s.artist
		ORDER BY play_count DESC, s.title ASC
		LIMIT 5
	`
	rows, err := r.db.Query(ctx, topQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats.TopSongs = make([]domain.TopSong, 0)
	for rows.Next() {
		var top domain.TopSong
		if err := rows.Scan(&top.Title, &top.Artist, &top.PlayCount); err != nil {
			return nil, err
		}
		stats.TopSongs = append(stats.TopSongs, top)
	}
	return &stats, rows.Err()
}

// mostFrequent runs a single-column LIMIT 1 ranking query; no rows maps
// to nil rather than an error.
func (r *StatsRepositoryImpl) mostFrequent(ctx context.Context, query string) (*string, error) {
	var value string
	err := r.db.QueryRow(ctx, query).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
