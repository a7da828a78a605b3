// Package storetest provides an in-memory store.Tx for service and handler
// tests.
package storetest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/store"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Memory keeps venues, artists and shows in maps. InTx works on a copy and
// only publishes it when fn succeeds, so a failed unit of work leaves no trace.
type Memory struct {
	mu    sync.Mutex
	state *state
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{state: newState()}
}

// InTx runs fn against a private copy of the data.
func (m *Memory) InTx(ctx context.Context, fn func(store.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	work := m.state.clone()
	if err := fn(work); err != nil {
		return err
	}
	m.state = work
	return nil
}

// AddVenue inserts a venue outside any transaction and returns it with its id.
func (m *Memory) AddVenue(v models.Venue) models.Venue {
	m.mu.Lock()
	defer m.mu.Unlock()

	created, err := m.state.CreateVenue(context.Background(), v)
	if err != nil {
		panic(err)
	}
	return created
}

// AddArtist inserts an artist outside any transaction and returns it with its id.
func (m *Memory) AddArtist(a models.Artist) models.Artist {
	m.mu.Lock()
	defer m.mu.Unlock()

	created, err := m.state.CreateArtist(context.Background(), a)
	if err != nil {
		panic(err)
	}
	return created
}

// AddShow books a show outside any transaction and returns it with its id.
func (m *Memory) AddShow(s models.Show) models.Show {
	m.mu.Lock()
	defer m.mu.Unlock()

	created, err := m.state.CreateShow(context.Background(), s)
	if err != nil {
		panic(err)
	}
	return created
}

// Counts reports how many venues, artists and shows are stored.
func (m *Memory) Counts() (venues, artists, shows int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.state.venues), len(m.state.artists), len(m.state.shows)
}

type state struct {
	venues  map[int64]models.Venue
	artists map[int64]models.Artist
	shows   map[int64]models.Show
	nextID  int64
	tick    int64
}

var _ store.Tx = (*state)(nil)

func newState() *state {
	return &state{
		venues:  make(map[int64]models.Venue),
		artists: make(map[int64]models.Artist),
		shows:   make(map[int64]models.Show),
	}
}

func (s *state) clone() *state {
	c := newState()
	for id, v := range s.venues {
		c.venues[id] = cloneVenue(v)
	}
	for id, a := range s.artists {
		c.artists[id] = cloneArtist(a)
	}
	for id, sh := range s.shows {
		c.shows[id] = sh
	}
	c.nextID = s.nextID
	c.tick = s.tick
	return c
}

func (s *state) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *state) now() time.Time {
	s.tick++
	return epoch.Add(time.Duration(s.tick) * time.Second)
}

func (s *state) ListVenues(context.Context) ([]models.Venue, error) {
	return s.venueList(func(models.Venue) bool { return true }), nil
}

func (s *state) RecentVenues(_ context.Context, limit int) ([]models.Venue, error) {
	venues := s.venueList(func(models.Venue) bool { return true })
	sort.SliceStable(venues, func(i, j int) bool {
		return venues[i].CreatedAt.After(venues[j].CreatedAt)
	})
	if limit < len(venues) {
		venues = venues[:limit]
	}
	return venues, nil
}

func (s *state) SearchVenues(_ context.Context, term string) ([]models.Venue, error) {
	return s.venueList(func(v models.Venue) bool { return containsFold(v.Name, term) }), nil
}

func (s *state) GetVenue(_ context.Context, id int64) (models.Venue, error) {
	v, ok := s.venues[id]
	if !ok {
		return models.Venue{}, store.ErrVenueNotFound
	}
	return cloneVenue(v), nil
}

func (s *state) CreateVenue(_ context.Context, venue models.Venue) (models.Venue, error) {
	for _, existing := range s.venues {
		if existing.Name == venue.Name {
			return models.Venue{}, store.ErrVenueExists
		}
	}

	venue.Normalize()
	venue.ID = s.id()
	venue.CreatedAt = s.now()
	s.venues[venue.ID] = cloneVenue(venue)
	return cloneVenue(venue), nil
}

func (s *state) UpdateVenue(_ context.Context, id int64, venue models.Venue) (models.Venue, error) {
	current, ok := s.venues[id]
	if !ok {
		return models.Venue{}, store.ErrVenueNotFound
	}
	for otherID, existing := range s.venues {
		if otherID != id && existing.Name == venue.Name {
			return models.Venue{}, store.ErrVenueExists
		}
	}

	venue.Normalize()
	venue.ID = id
	venue.CreatedAt = current.CreatedAt
	s.venues[id] = cloneVenue(venue)
	return cloneVenue(venue), nil
}

func (s *state) DeleteVenue(_ context.Context, id int64) error {
	if _, ok := s.venues[id]; !ok {
		return store.ErrVenueNotFound
	}
	for _, sh := range s.shows {
		if sh.VenueID == id {
			return store.ErrVenueHasShows
		}
	}
	delete(s.venues, id)
	return nil
}

func (s *state) ListArtists(context.Context) ([]models.Artist, error) {
	return s.artistList(func(models.Artist) bool { return true }), nil
}

func (s *state) RecentArtists(_ context.Context, limit int) ([]models.Artist, error) {
	artists := s.artistList(func(models.Artist) bool { return true })
	sort.SliceStable(artists, func(i, j int) bool {
		return artists[i].CreatedAt.After(artists[j].CreatedAt)
	})
	if limit < len(artists) {
		artists = artists[:limit]
	}
	return artists, nil
}

func (s *state) SearchArtists(_ context.Context, term string) ([]models.Artist, error) {
	return s.artistList(func(a models.Artist) bool { return containsFold(a.Name, term) }), nil
}

func (s *state) GetArtist(_ context.Context, id int64) (models.Artist, error) {
	a, ok := s.artists[id]
	if !ok {
		return models.Artist{}, store.ErrArtistNotFound
	}
	return cloneArtist(a), nil
}

func (s *state) CreateArtist(_ context.Context, artist models.Artist) (models.Artist, error) {
	for _, existing := range s.artists {
		if existing.Name == artist.Name {
			return models.Artist{}, store.ErrArtistExists
		}
	}

	artist.Normalize()
	artist.ID = s.id()
	artist.CreatedAt = s.now()
	s.artists[artist.ID] = cloneArtist(artist)
	return cloneArtist(artist), nil
}

func (s *state) UpdateArtist(_ context.Context, id int64, artist models.Artist) (models.Artist, error) {
	current, ok := s.artists[id]
	if !ok {
		return models.Artist{}, store.ErrArtistNotFound
	}
	for otherID, existing := range s.artists {
		if otherID != id && existing.Name == artist.Name {
			return models.Artist{}, store.ErrArtistExists
		}
	}

	artist.Normalize()
	artist.ID = id
	artist.CreatedAt = current.CreatedAt
	s.artists[id] = cloneArtist(artist)
	return cloneArtist(artist), nil
}

func (s *state) ListShows(context.Context) ([]models.ShowDetail, error) {
	return s.showList(func(models.Show) bool { return true }), nil
}

func (s *state) ShowsByVenue(_ context.Context, venueID int64) ([]models.ShowDetail, error) {
	return s.showList(func(sh models.Show) bool { return sh.VenueID == venueID }), nil
}

func (s *state) ShowsByArtist(_ context.Context, artistID int64) ([]models.ShowDetail, error) {
	return s.showList(func(sh models.Show) bool { return sh.ArtistID == artistID }), nil
}

func (s *state) CreateShow(_ context.Context, show models.Show) (models.Show, error) {
	if _, ok := s.artists[show.ArtistID]; !ok {
		return models.Show{}, store.ErrArtistNotFound
	}
	if _, ok := s.venues[show.VenueID]; !ok {
		return models.Show{}, store.ErrVenueNotFound
	}

	show.ID = s.id()
	if show.StartTime.IsZero() {
		show.StartTime = s.now()
	}
	s.shows[show.ID] = show
	return show, nil
}

func (s *state) venueList(keep func(models.Venue) bool) []models.Venue {
	venues := []models.Venue{}
	for _, v := range s.venues {
		if keep(v) {
			v = cloneVenue(v)
			v.Genres = nil
			venues = append(venues, v)
		}
	}
	sort.Slice(venues, func(i, j int) bool { return venues[i].ID < venues[j].ID })
	return venues
}

func (s *state) artistList(keep func(models.Artist) bool) []models.Artist {
	artists := []models.Artist{}
	for _, a := range s.artists {
		if keep(a) {
			a = cloneArtist(a)
			a.Genres = nil
			artists = append(artists, a)
		}
	}
	sort.Slice(artists, func(i, j int) bool { return artists[i].ID < artists[j].ID })
	return artists
}

func (s *state) showList(keep func(models.Show) bool) []models.ShowDetail {
	shows := []models.ShowDetail{}
	for _, sh := range s.shows {
		if !keep(sh) {
			continue
		}
		a := s.artists[sh.ArtistID]
		v := s.venues[sh.VenueID]
		shows = append(shows, models.ShowDetail{
			Show:            sh,
			ArtistName:      a.Name,
			ArtistImageLink: a.ImageLink,
			VenueName:       v.Name,
			VenueImageLink:  v.ImageLink,
		})
	}
	sort.Slice(shows, func(i, j int) bool { return shows[i].ID < shows[j].ID })
	return shows
}

func containsFold(name, term string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

func cloneVenue(v models.Venue) models.Venue {
	v.Genres = append([]models.Genre(nil), v.Genres...)
	if v.SeekingDescription != nil {
		d := *v.SeekingDescription
		v.SeekingDescription = &d
	}
	return v
}

func cloneArtist(a models.Artist) models.Artist {
	a.Genres = append([]models.Genre(nil), a.Genres...)
	if a.SeekingDescription != nil {
		d := *a.SeekingDescription
		a.SeekingDescription = &d
	}
	return a
}
