package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"fyyur/internal/models"
)

var (
	// ErrVenueNotFound is returned when no venue has the requested id.
	ErrVenueNotFound = errors.New("venue not found")
	// ErrArtistNotFound is returned when no artist has the requested id.
	ErrArtistNotFound = errors.New("artist not found")
	// ErrVenueExists signals the venue name is already taken.
	ErrVenueExists = errors.New("venue already exists")
	// ErrArtistExists signals the artist name is already taken.
	ErrArtistExists = errors.New("artist already exists")
	// ErrVenueHasShows is returned when deleting a venue that still has shows booked.
	ErrVenueHasShows = errors.New("venue has shows")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Tx is the set of operations available inside a unit of work.
type Tx interface {
	ListVenues(ctx context.Context) ([]models.Venue, error)
	RecentVenues(ctx context.Context, limit int) ([]models.Venue, error)
	SearchVenues(ctx context.Context, term string) ([]models.Venue, error)
	GetVenue(ctx context.Context, id int64) (models.Venue, error)
	CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error)
	UpdateVenue(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	DeleteVenue(ctx context.Context, id int64) error

	ListArtists(ctx context.Context) ([]models.Artist, error)
	RecentArtists(ctx context.Context, limit int) ([]models.Artist, error)
	SearchArtists(ctx context.Context, term string) ([]models.Artist, error)
	GetArtist(ctx context.Context, id int64) (models.Artist, error)
	CreateArtist(ctx context.Context, artist models.Artist) (models.Artist, error)
	UpdateArtist(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)

	ListShows(ctx context.Context) ([]models.ShowDetail, error)
	ShowsByVenue(ctx context.Context, venueID int64) ([]models.ShowDetail, error)
	ShowsByArtist(ctx context.Context, artistID int64) ([]models.ShowDetail, error)
	CreateShow(ctx context.Context, show models.Show) (models.Show, error)
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store provides persistence backed by Postgres.
type Store struct {
	db *sql.DB
	q  querier
}

var _ Tx = (*Store)(nil)

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db, q: db}
}

// InTx runs fn inside a single transaction. The transaction commits when fn
// returns nil and rolls back on error or panic. Calling InTx on the Store
// handed to fn reuses the running transaction.
func (s *Store) InTx(ctx context.Context, fn func(Tx) error) error {
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if err := fn(&Store{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func isUniqueViolation(err error) bool {
	return hasPgCode(err, pgUniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return hasPgCode(err, pgForeignKeyViolation)
}

// violatedConstraint names the constraint behind a Postgres error, if any.
func violatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// likePattern builds an ILIKE pattern matching term anywhere, with the LIKE
// metacharacters in term taken literally.
func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return "%" + escaped + "%"
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
