package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fyyur/internal/models"
)

const venueColumns = `id, name, address, city, state, phone, website, image_link,
		       facebook_link, seeking_talent, seeking_description, created_at`

// ListVenues returns every venue ordered by id. Genres are not loaded.
func (s *Store) ListVenues(ctx context.Context) ([]models.Venue, error) {
	query := `
		SELECT ` + venueColumns + `
		FROM venues
		ORDER BY id ASC
	`
	return s.queryVenues(ctx, query)
}

// RecentVenues returns the most recently listed venues. Genres are not loaded.
func (s *Store) RecentVenues(ctx context.Context, limit int) ([]models.Venue, error) {
	query := `
		SELECT ` + venueColumns + `
		FROM venues
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	return s.queryVenues(ctx, query, limit)
}

// SearchVenues returns venues whose name contains term, ignoring case.
// Genres are not loaded.
func (s *Store) SearchVenues(ctx context.Context, term string) ([]models.Venue, error) {
	query := `
		SELECT ` + venueColumns + `
		FROM venues
		WHERE name ILIKE $1
		ORDER BY id ASC
	`
	return s.queryVenues(ctx, query, likePattern(term))
}

// GetVenue retrieves a single venue by ID, including its genres.
func (s *Store) GetVenue(ctx context.Context, id int64) (models.Venue, error) {
	query := `
		SELECT ` + venueColumns + `
		FROM venues
		WHERE id = $1
	`

	v, err := scanVenue(s.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Venue{}, ErrVenueNotFound
	}
	if err != nil {
		return models.Venue{}, fmt.Errorf("select venue: %w", err)
	}

	if v.Genres, err = s.loadGenres(ctx, venueGenres, v.ID); err != nil {
		return models.Venue{}, err
	}

	return v, nil
}

// CreateVenue inserts a venue and its genres. A duplicate name yields
// ErrVenueExists and nothing is written.
func (s *Store) CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	venue.Normalize()

	query := `
		INSERT INTO venues (name, address, city, state, phone, website, image_link,
		                    facebook_link, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := s.q.QueryRowContext(ctx, query,
		venue.Name, venue.Address, venue.City, venue.State, venue.Phone,
		venue.Website, venue.ImageLink, venue.FacebookLink,
		venue.SeekingTalent, nullString(venue.SeekingDescription),
	).Scan(&venue.ID, &venue.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Venue{}, ErrVenueExists
		}
		return models.Venue{}, fmt.Errorf("insert venue: %w", err)
	}

	if err := s.insertGenres(ctx, venueGenres, venue.ID, venue.Genres); err != nil {
		return models.Venue{}, err
	}

	return venue, nil
}

// UpdateVenue replaces every editable field of a venue, genres included.
func (s *Store) UpdateVenue(ctx context.Context, id int64, venue models.Venue) (models.Venue, error) {
	venue.Normalize()

	query := `
		UPDATE venues
		SET name = $1, address = $2, city = $3, state = $4, phone = $5,
		    website = $6, image_link = $7, facebook_link = $8,
		    seeking_talent = $9, seeking_description = $10
		WHERE id = $11
		RETURNING created_at
	`

	err := s.q.QueryRowContext(ctx, query,
		venue.Name, venue.Address, venue.City, venue.State, venue.Phone,
		venue.Website, venue.ImageLink, venue.FacebookLink,
		venue.SeekingTalent, nullString(venue.SeekingDescription), id,
	).Scan(&venue.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Venue{}, ErrVenueNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return models.Venue{}, ErrVenueExists
		}
		return models.Venue{}, fmt.Errorf("update venue: %w", err)
	}

	if err := s.replaceGenres(ctx, venueGenres, id, venue.Genres); err != nil {
		return models.Venue{}, err
	}

	venue.ID = id
	return venue, nil
}

// DeleteVenue removes a venue. Venues with booked shows are kept and
// ErrVenueHasShows is returned.
func (s *Store) DeleteVenue(ctx context.Context, id int64) error {
	result, err := s.q.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrVenueHasShows
		}
		return fmt.Errorf("delete venue: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}
	if rows == 0 {
		return ErrVenueNotFound
	}

	return nil
}

func (s *Store) queryVenues(ctx context.Context, query string, args ...any) ([]models.Venue, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}
	defer rows.Close()

	venues := []models.Venue{}
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}

	return venues, nil
}

func scanVenue(row scanner) (models.Venue, error) {
	var (
		v           models.Venue
		description sql.NullString
	)
	err := row.Scan(&v.ID, &v.Name, &v.Address, &v.City, &v.State, &v.Phone,
		&v.Website, &v.ImageLink, &v.FacebookLink, &v.SeekingTalent,
		&description, &v.CreatedAt)
	if err != nil {
		return models.Venue{}, err
	}

	v.SeekingDescription = stringPtr(description)
	v.Normalize()
	return v, nil
}
