package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fyyur/internal/models"
)

const artistColumns = `id, name, city, state, phone, website, image_link,
		       facebook_link, seeking_venue, seeking_description, created_at`

// ListArtists returns every artist ordered by id. Genres are not loaded.
func (s *Store) ListArtists(ctx context.Context) ([]models.Artist, error) {
	query := `
		SELECT ` + artistColumns + `
		FROM artists
		ORDER BY id ASC
	`
	return s.queryArtists(ctx, query)
}

// RecentArtists returns the most recently listed artists. Genres are not loaded.
func (s *Store) RecentArtists(ctx context.Context, limit int) ([]models.Artist, error) {
	query := `
		SELECT ` + artistColumns + `
		FROM artists
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	return s.queryArtists(ctx, query, limit)
}

// SearchArtists returns artists whose name contains term, ignoring case.
func (s *Store) SearchArtists(ctx context.Context, term string) ([]models.Artist, error) {
	query := `
		SELECT ` + artistColumns + `
		FROM artists
		WHERE name ILIKE $1
		ORDER BY id ASC
	`
	return s.queryArtists(ctx, query, likePattern(term))
}

// GetArtist retrieves a single artist by ID, including its genres.
func (s *Store) GetArtist(ctx context.Context, id int64) (models.Artist, error) {
	query := `
		SELECT ` + artistColumns + `
		FROM artists
		WHERE id = $1
	`

	a, err := scanArtist(s.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Artist{}, ErrArtistNotFound
	}
	if err != nil {
		return models.Artist{}, fmt.Errorf("select artist: %w", err)
	}

	if a.Genres, err = s.loadGenres(ctx, artistGenres, a.ID); err != nil {
		return models.Artist{}, err
	}

	return a, nil
}

// CreateArtist inserts an artist and its genres. A duplicate name yields
// ErrArtistExists and nothing is written.
func (s *Store) CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error) {
	artist.Normalize()

	query := `
		INSERT INTO artists (name, city, state, phone, website, image_link,
		                     facebook_link, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := s.q.QueryRowContext(ctx, query,
		artist.Name, artist.City, artist.State, artist.Phone, artist.Website,
		artist.ImageLink, artist.FacebookLink,
		artist.SeekingVenue, nullString(artist.SeekingDescription),
	).Scan(&artist.ID, &artist.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Artist{}, ErrArtistExists
		}
		return models.Artist{}, fmt.Errorf("insert artist: %w", err)
	}

	if err := s.insertGenres(ctx, artistGenres, artist.ID, artist.Genres); err != nil {
		return models.Artist{}, err
	}

	return artist, nil
}

// UpdateArtist replaces every editable field of an artist, genres included.
func (s *Store) UpdateArtist(ctx context.Context, id int64, artist models.Artist) (models.Artist, error) {
	artist.Normalize()

	query := `
		UPDATE artists
		SET name = $1, city = $2, state = $3, phone = $4, website = $5,
		    image_link = $6, facebook_link = $7,
		    seeking_venue = $8, seeking_description = $9
		WHERE id = $10
		RETURNING created_at
	`

	err := s.q.QueryRowContext(ctx, query,
		artist.Name, artist.City, artist.State, artist.Phone, artist.Website,
		artist.ImageLink, artist.FacebookLink,
		artist.SeekingVenue, nullString(artist.SeekingDescription), id,
	).Scan(&artist.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Artist{}, ErrArtistNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return models.Artist{}, ErrArtistExists
		}
		return models.Artist{}, fmt.Errorf("update artist: %w", err)
	}

	if err := s.replaceGenres(ctx, artistGenres, id, artist.Genres); err != nil {
		return models.Artist{}, err
	}

	artist.ID = id
	return artist, nil
}

func (s *Store) queryArtists(ctx context.Context, query string, args ...any) ([]models.Artist, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select artists: %w", err)
	}
	defer rows.Close()

	artists := []models.Artist{}
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}

	return artists, nil
}

func scanArtist(row scanner) (models.Artist, error) {
	var (
		a           models.Artist
		description sql.NullString
	)
	err := row.Scan(&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Website,
		&a.ImageLink, &a.FacebookLink, &a.SeekingVenue, &description, &a.CreatedAt)
	if err != nil {
		return models.Artist{}, err
	}

	a.SeekingDescription = stringPtr(description)
	a.Normalize()
	return a, nil
}
