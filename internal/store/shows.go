package store

import (
	"context"
	"fmt"

	"fyyur/internal/models"
)

// showsArtistFK is the artist foreign key on shows, named in the schema.
const showsArtistFK = "shows_artist_id_fkey"

const showDetailSelect = `
		SELECT
			s.id, s.artist_id, s.venue_id, s.start_time,
			a.name AS artist_name, a.image_link AS artist_image_link,
			v.name AS venue_name, v.image_link AS venue_image_link
		FROM shows s
		INNER JOIN artists a ON s.artist_id = a.id
		INNER JOIN venues v ON s.venue_id = v.id
`

// ListShows returns every show with artist and venue details, ordered by id.
func (s *Store) ListShows(ctx context.Context) ([]models.ShowDetail, error) {
	query := showDetailSelect + `
		ORDER BY s.id ASC
	`
	return s.queryShows(ctx, query)
}

// ShowsByVenue returns the shows booked at a venue, ordered by id.
func (s *Store) ShowsByVenue(ctx context.Context, venueID int64) ([]models.ShowDetail, error) {
	query := showDetailSelect + `
		WHERE s.venue_id = $1
		ORDER BY s.id ASC
	`
	return s.queryShows(ctx, query, venueID)
}

// ShowsByArtist returns the shows an artist is booked for, ordered by id.
func (s *Store) ShowsByArtist(ctx context.Context, artistID int64) ([]models.ShowDetail, error) {
	query := showDetailSelect + `
		WHERE s.artist_id = $1
		ORDER BY s.id ASC
	`
	return s.queryShows(ctx, query, artistID)
}

// CreateShow books an artist at a venue. Both must exist; a zero StartTime
// defaults to the database clock.
func (s *Store) CreateShow(ctx context.Context, show models.Show) (models.Show, error) {
	if err := s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM artists WHERE id = $1)`, show.ArtistID, ErrArtistNotFound); err != nil {
		return models.Show{}, err
	}
	if err := s.exists(ctx, `SELECT EXISTS (SELECT 1 FROM venues WHERE id = $1)`, show.VenueID, ErrVenueNotFound); err != nil {
		return models.Show{}, err
	}

	var start any
	if !show.StartTime.IsZero() {
		start = show.StartTime
	}

	query := `
		INSERT INTO shows (artist_id, venue_id, start_time)
		VALUES ($1, $2, COALESCE($3, NOW()))
		RETURNING id, start_time
	`

	err := s.q.QueryRowContext(ctx, query, show.ArtistID, show.VenueID, start).
		Scan(&show.ID, &show.StartTime)
	if err != nil {
		if isForeignKeyViolation(err) {
			if violatedConstraint(err) == showsArtistFK {
				return models.Show{}, fmt.Errorf("insert show: %w", ErrArtistNotFound)
			}
			return models.Show{}, fmt.Errorf("insert show: %w", ErrVenueNotFound)
		}
		return models.Show{}, fmt.Errorf("insert show: %w", err)
	}

	return show, nil
}

func (s *Store) exists(ctx context.Context, query string, id int64, notFound error) error {
	var found bool
	if err := s.q.QueryRowContext(ctx, query, id).Scan(&found); err != nil {
		return fmt.Errorf("lookup %d: %w", id, err)
	}
	if !found {
		return notFound
	}
	return nil
}

func (s *Store) queryShows(ctx context.Context, query string, args ...any) ([]models.ShowDetail, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select shows: %w", err)
	}
	defer rows.Close()

	shows := []models.ShowDetail{}
	for rows.Next() {
		var d models.ShowDetail
		if err := rows.Scan(
			&d.ID, &d.ArtistID, &d.VenueID, &d.StartTime,
			&d.ArtistName, &d.ArtistImageLink, &d.VenueName, &d.VenueImageLink,
		); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		shows = append(shows, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}

	return shows, nil
}
