package shows

import (
	"context"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/schedule"
	"fyyur/internal/store"
)

// Store opens units of work over the show table.
type Store interface {
	InTx(ctx context.Context, fn func(store.Tx) error) error
}

// Options are the artists and venues a new show can be booked between.
type Options struct {
	Artists []schedule.Named
	Venues  []schedule.Named
}

// Service coordinates show listing and booking.
type Service interface {
	List(ctx context.Context) ([]models.ShowDetail, error)
	Options(ctx context.Context) (Options, error)
	Create(ctx context.Context, show models.Show) (models.Show, error)
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs a shows Service. A nil clock means time.Now.
func New(store Store, clock func() time.Time) Service {
	if clock == nil {
		clock = time.Now
	}
	return &service{store: store, now: clock}
}

func (s *service) List(ctx context.Context) ([]models.ShowDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var shows []models.ShowDetail
	err := s.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		shows, err = tx.ListShows(ctx)
		return err
	})
	return shows, err
}

func (s *service) Options(ctx context.Context) (Options, error) {
	if err := ctx.Err(); err != nil {
		return Options{}, err
	}

	var opts Options
	err := s.store.InTx(ctx, func(tx store.Tx) error {
		artists, err := tx.ListArtists(ctx)
		if err != nil {
			return err
		}
		venues, err := tx.ListVenues(ctx)
		if err != nil {
			return err
		}
		opts = Options{
			Artists: schedule.ArtistNames(artists),
			Venues:  schedule.VenueNames(venues),
		}
		return nil
	})
	return opts, err
}

// Create books a show. Both ends must exist; a zero start time becomes now.
func (s *service) Create(ctx context.Context, show models.Show) (models.Show, error) {
	if err := ctx.Err(); err != nil {
		return models.Show{}, err
	}

	if show.StartTime.IsZero() {
		show.StartTime = s.now().UTC()
	}

	var created models.Show
	err := s.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		created, err = tx.CreateShow(ctx, show)
		return err
	})
	return created, err
}
