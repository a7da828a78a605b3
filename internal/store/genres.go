package store

import (
	"context"
	"fmt"

	"fyyur/internal/models"
)

// genreTable describes one of the ordered genre association tables.
type genreTable struct {
	deleteQuery string
	insertQuery string
	selectQuery string
}

var (
	venueGenres = genreTable{
		deleteQuery: `DELETE FROM venue_genres WHERE venue_id = $1`,
		insertQuery: `INSERT INTO venue_genres (venue_id, position, genre) VALUES ($1, $2, $3)`,
		selectQuery: `SELECT genre FROM venue_genres WHERE venue_id = $1 ORDER BY position ASC`,
	}
	artistGenres = genreTable{
		deleteQuery: `DELETE FROM artist_genres WHERE artist_id = $1`,
		insertQuery: `INSERT INTO artist_genres (artist_id, position, genre) VALUES ($1, $2, $3)`,
		selectQuery: `SELECT genre FROM artist_genres WHERE artist_id = $1 ORDER BY position ASC`,
	}
)

func (s *Store) replaceGenres(ctx context.Context, t genreTable, ownerID int64, genres []models.Genre) error {
	if _, err := s.q.ExecContext(ctx, t.deleteQuery, ownerID); err != nil {
		return fmt.Errorf("delete genres: %w", err)
	}
	return s.insertGenres(ctx, t, ownerID, genres)
}

func (s *Store) insertGenres(ctx context.Context, t genreTable, ownerID int64, genres []models.Genre) error {
	for i, genre := range genres {
		if _, err := s.q.ExecContext(ctx, t.insertQuery, ownerID, i, string(genre)); err != nil {
			return fmt.Errorf("insert genre %q: %w", genre, err)
		}
	}
	return nil
}

func (s *Store) loadGenres(ctx context.Context, t genreTable, ownerID int64) ([]models.Genre, error) {
	rows, err := s.q.QueryContext(ctx, t.selectQuery, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select genres: %w", err)
	}
	defer rows.Close()

	genres := []models.Genre{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		genre, err := models.ParseGenre(raw)
		if err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genres: %w", err)
	}

	return genres, nil
}
