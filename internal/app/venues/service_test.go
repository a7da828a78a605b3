package venues

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/models"
	"fyyur/internal/store"
	"fyyur/internal/store/storetest"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return now }

func seed(t *testing.T) (*storetest.Memory, models.Venue, models.Artist) {
	t.Helper()

	mem := storetest.NewMemory()
	venue := mem.AddVenue(models.Venue{
		Name:   "The Musical Hop",
		City:   "San Francisco",
		State:  "CA",
		Genres: []models.Genre{models.GenreJazz},
	})
	artist := mem.AddArtist(models.Artist{
		Name:      "Guns N Petals",
		City:      "San Francisco",
		State:     "CA",
		ImageLink: "https://example.com/gnp.jpg",
		Genres:    []models.Genre{models.GenreRockNRoll},
	})
	return mem, venue, artist
}

func TestDirectoryCountsUpcomingShows(t *testing.T) {
	mem, venue, artist := seed(t)
	mem.AddVenue(models.Venue{Name: "The Dueling Pianos Bar", City: "New York", State: "NY"})
	mem.AddShow(models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: now.Add(-24 * time.Hour)})
	mem.AddShow(models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: now.Add(24 * time.Hour)})
	mem.AddShow(models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: now})

	svc := New(mem, fixedClock)
	areas, err := svc.Directory(context.Background())
	require.NoError(t, err)

	require.Len(t, areas, 2)
	assert.Equal(t, "San Francisco", areas[0].City)
	require.Len(t, areas[0].Venues, 1)
	assert.Equal(t, 1, areas[0].Venues[0].UpcomingCount, "a show starting now is past")
	assert.Equal(t, 0, areas[1].Venues[0].UpcomingCount)
}

func TestDetailPartitionsShows(t *testing.T) {
	mem, venue, artist := seed(t)
	past := mem.AddShow(models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: now.Add(-time.Hour)})
	upcoming := mem.AddShow(models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: now.Add(time.Hour)})

	svc := New(mem, fixedClock)
	detail, err := svc.Detail(context.Background(), venue.ID)
	require.NoError(t, err)

	assert.Equal(t, "The Musical Hop", detail.Name)
	assert.Equal(t, []models.Genre{models.GenreJazz}, detail.Genres)
	require.Len(t, detail.Past, 1)
	require.Len(t, detail.Upcoming, 1)
	assert.Equal(t, 1, detail.PastCount)
	assert.Equal(t, 1, detail.UpcomingCount)
	assert.Equal(t, artist.ID, detail.Past[0].ID)
	assert.Equal(t, "Guns N Petals", detail.Past[0].Name)
	assert.Equal(t, "https://example.com/gnp.jpg", detail.Past[0].ImageLink)
	assert.Equal(t, past.StartTime.UTC().Format("2006-01-02T15:04:05Z"), detail.Past[0].StartTime)
	assert.Equal(t, upcoming.StartTime.UTC().Format("2006-01-02T15:04:05Z"), detail.Upcoming[0].StartTime)
}

func TestDetailNotFound(t *testing.T) {
	svc := New(storetest.NewMemory(), fixedClock)
	_, err := svc.Detail(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrVenueNotFound)
}

func TestCreateDuplicateNameInsertsNothing(t *testing.T) {
	mem, _, _ := seed(t)
	svc := New(mem, fixedClock)

	_, err := svc.Create(context.Background(), models.Venue{
		Name:   "The Musical Hop",
		City:   "Oakland",
		State:  "CA",
		Genres: []models.Genre{models.GenreFolk},
	})
	assert.ErrorIs(t, err, store.ErrVenueExists)

	venues, _, _ := mem.Counts()
	assert.Equal(t, 1, venues)
}

func TestUpdateDropsDescriptionWhenNotSeeking(t *testing.T) {
	mem, venue, _ := seed(t)
	svc := New(mem, fixedClock)
	desc := "Looking for jazz trios"

	venue.SeekingTalent = true
	venue.SeekingDescription = &desc
	updated, err := svc.Update(context.Background(), venue.ID, venue)
	require.NoError(t, err)
	require.NotNil(t, updated.SeekingDescription)

	venue.SeekingTalent = false
	_, err = svc.Update(context.Background(), venue.ID, venue)
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), venue.ID)
	require.NoError(t, err)
	assert.False(t, got.SeekingTalent)
	assert.Nil(t, got.SeekingDescription)
}

func TestUpdateOntoAnotherNameConflicts(t *testing.T) {
	mem, venue, _ := seed(t)
	mem.AddVenue(models.Venue{Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"})
	svc := New(mem, fixedClock)

	venue.Name = "Park Square Live Music & Coffee"
	_, err := svc.Update(context.Background(), venue.ID, venue)
	assert.ErrorIs(t, err, store.ErrVenueExists)
}

func TestSearch(t *testing.T) {
	mem, venue, artist := seed(t)
	mem.AddVenue(models.Venue{Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"})
	mem.AddShow(models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: now.Add(time.Hour)})
	svc := New(mem, fixedClock)

	result, err := svc.Search(context.Background(), "Music")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "The Musical Hop", result.Items[0].Name)
	assert.Equal(t, 1, result.Items[0].UpcomingCount)

	result, err = svc.Search(context.Background(), "hop")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)

	result, err = svc.Search(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Items)
}

func TestDelete(t *testing.T) {
	mem, venue, artist := seed(t)
	empty := mem.AddVenue(models.Venue{Name: "The Dueling Pianos Bar", City: "New York", State: "NY"})
	mem.AddShow(models.Show{ArtistID: artist.ID, VenueID: venue.ID, StartTime: now})
	svc := New(mem, fixedClock)

	require.NoError(t, svc.Delete(context.Background(), empty.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), empty.ID), store.ErrVenueNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), venue.ID), store.ErrVenueHasShows)

	_, err := svc.Get(context.Background(), venue.ID)
	assert.NoError(t, err)
}

func TestRecentNewestFirst(t *testing.T) {
	mem, _, _ := seed(t)
	mem.AddVenue(models.Venue{Name: "The Dueling Pianos Bar", City: "New York", State: "NY"})
	svc := New(mem, fixedClock)

	venues, err := svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, venues, 2)
	assert.Equal(t, "The Dueling Pianos Bar", venues[0].Name)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := New(storetest.NewMemory(), fixedClock)
	_, err := svc.Directory(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
