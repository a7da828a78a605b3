package venues

import (
	"context"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/schedule"
	"fyyur/internal/store"
)

// Store opens units of work over the venue tables.
type Store interface {
	InTx(ctx context.Context, fn func(store.Tx) error) error
}

// Detail is a venue page: the venue plus its shows split around now.
type Detail struct {
	models.Venue
	schedule.Partition
}

// Service coordinates venue listing, lookup and upkeep.
type Service interface {
	Directory(ctx context.Context) ([]schedule.Area, error)
	Recent(ctx context.Context, limit int) ([]models.Venue, error)
	Search(ctx context.Context, term string) (schedule.SearchResult, error)
	Get(ctx context.Context, id int64) (models.Venue, error)
	Detail(ctx context.Context, id int64) (Detail, error)
	Create(ctx context.Context, venue models.Venue) (models.Venue, error)
	Update(ctx context.Context, id int64, venue models.Venue) (models.Venue, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs a venues Service. A nil clock means time.Now.
func New(store Store, clock func() time.Time) Service {
	if clock == nil {
		clock = time.Now
	}
	return &service{store: store, now: clock}
}

func (s *service) Directory(ctx context.Context) ([]schedule.Area, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var areas []schedule.Area
	err := s.store.InTx(ctx, func(tx store.Tx) error {
		venues, err := tx.ListVenues(ctx)
		if err != nil {
			return err
		}
		shows, err := tx.ListShows(ctx)
		if err != nil {
			return err
		}
		areas = schedule.GroupByArea(s.now(), venues, schedule.ByVenue(shows))
		return nil
	})
	return areas, err
}

func (s *service) Recent(ctx context.Context, limit int) ([]models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var venues []models.Venue
	err := s.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		venues, err = tx.RecentVenues(ctx, limit)
		return err
	})
	return venues, err
}

func (s *service) Search(ctx context.Context, term string) (schedule.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return schedule.SearchResult{}, err
	}

	var result schedule.SearchResult
	err := s.store.InTx(ctx, func(tx store.Tx) error {
		venues, err := tx.SearchVenues(ctx, term)
		if err != nil {
			return err
		}
		shows, err := tx.ListShows(ctx)
		if err != nil {
			return err
		}
		result = schedule.Match(s.now(), term, schedule.VenueNames(venues), schedule.ByVenue(shows))
		return nil
	})
	return result, err
}

func (s *service) Get(ctx context.Context, id int64) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}

	var venue models.Venue
	err := s.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		venue, err = tx.GetVenue(ctx, id)
		return err
	})
	return venue, err
}

func (s *service) Detail(ctx context.Context, id int64) (Detail, error) {
	if err := ctx.Err(); err != nil {
		return Detail{}, err
	}

	var detail Detail
	err := s.store.InTx(ctx, func(tx store.Tx) error {
		venue, err := tx.GetVenue(ctx, id)
		if err != nil {
			return err
		}
		shows, err := tx.ShowsByVenue(ctx, id)
		if err != nil {
			return err
		}
		detail = Detail{
			Venue:     venue,
			Partition: schedule.Classify(s.now(), shows, schedule.CounterpartArtist),
		}
		return nil
	})
	return detail, err
}

func (s *service) Create(ctx context.Context, venue models.Venue) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}

	var created models.Venue
	err := s.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		created, err = tx.CreateVenue(ctx, venue)
		return err
	})
	return created, err
}

func (s *service) Update(ctx context.Context, id int64, venue models.Venue) (models.Venue, error) {
	if err := ctx.Err(); err != nil {
		return models.Venue{}, err
	}

	var updated models.Venue
	err := s.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		updated, err = tx.UpdateVenue(ctx, id, venue)
		return err
	})
	return updated, err
}

// Delete removes a venue. Venues with booked shows are refused with
// store.ErrVenueHasShows.
func (s *service) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.store.InTx(ctx, func(tx store.Tx) error {
		return tx.DeleteVenue(ctx, id)
	})
}
