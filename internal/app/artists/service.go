package artists

import (
	"context"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/schedule"
	"fyyur/internal/store"
)

// Store opens units of work over the artist tables.
type Store interface {
	InTx(ctx context.Context, fn func(store.Tx) error) error
}

// Detail is an artist page: the artist plus the venues it plays, split
// around now.
type Detail struct {
	models.Artist
	schedule.Partition
}

// Service coordinates artist listing, lookup and upkeep.
type Service interface {
	List(ctx context.Context) ([]models.Artist, error)
	Recent(ctx context.Context, limit int) ([]models.Artist, error)
	Search(ctx context.Context, term string) (schedule.SearchResult, error)
	Get(ctx context.Context, id int64) (models.Artist, error)
	Detail(ctx context.Context, id int64) (Detail, error)
	Create(ctx context.Context, artist models.Artist) (models.Artist, error)
	Update(ctx context.Context, id int64, artist models.Artist) (models.Artist, error)
}

type service struct {
	store Store
	now   func() time.Time
}

// New constructs an artists Service. A nil clock means time.Now.
func New(store Store, clock func() time.Time) Service {
	if clock == nil {
		clock = time.Now
	}
	return &service{store: store, now: clock}
}

func (s *service) List(ctx context.Context) ([]models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var artists []models.Artist
	err := s.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		artists, err = tx.ListArtists(ctx)
		return err
	})
	return artists, err
}

func (s *service) Recent(ctx context.Context, limit int) ([]models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var artists []models.Artist
	err := s.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		artists, err = tx.RecentArtists(ctx, limit)
		return err
	})
	return artists, err
}

func (s *service) Search(ctx context.Context, term string) (schedule.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return schedule.SearchResult{}, err
	}

	var result schedule.SearchResult
	err := s.store.InTx(ctx, func(tx store.Tx) error {
		artists, err := tx.SearchArtists(ctx, term)
		if err != nil {
			return err
		}
		shows, err := tx.ListShows(ctx)
		if err != nil {
			return err
		}
		result = schedule.Match(s.now(), term, schedule.ArtistNames(artists), schedule.ByArtist(shows))
		return nil
	})
	return result, err
}

func (s *service) Get(ctx context.Context, id int64) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}

	var artist models.Artist
	err := s.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		artist, err = tx.GetArtist(ctx, id)
		return err
	})
	return artist, err
}

func (s *service) Detail(ctx context.Context, id int64) (Detail, error) {
	if err := ctx.Err(); err != nil {
		return Detail{}, err
	}

	var detail Detail
	err := s.store.InTx(ctx, func(tx store.Tx) error {
		artist, err := tx.GetArtist(ctx, id)
		if err != nil {
			return err
		}
		shows, err := tx.ShowsByArtist(ctx, id)
		if err != nil {
			return err
		}
		detail = Detail{
			Artist:    artist,
			Partition: schedule.Classify(s.now(), shows, schedule.CounterpartVenue),
		}
		return nil
	})
	return detail, err
}

func (s *service) Create(ctx context.Context, artist models.Artist) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}

	var created models.Artist
	err := s.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		created, err = tx.CreateArtist(ctx, artist)
		return err
	})
	return created, err
}

func (s *service) Update(ctx context.Context, id int64, artist models.Artist) (models.Artist, error) {
	if err := ctx.Err(); err != nil {
		return models.Artist{}, err
	}

	var updated models.Artist
	err := s.store.InTx(ctx, func(tx store.Tx) error {
		var err error
		updated, err = tx.UpdateArtist(ctx, id, artist)
		return err
	})
	return updated, err
}
