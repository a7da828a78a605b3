package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/models"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func detail(id, artistID, venueID int64, start time.Time) models.ShowDetail {
	return models.ShowDetail{
		Show:            models.Show{ID: id, ArtistID: artistID, VenueID: venueID, StartTime: start},
		ArtistName:      "Artist",
		ArtistImageLink: "https://example.com/artist.jpg",
		VenueName:       "Venue",
		VenueImageLink:  "https://example.com/venue.jpg",
	}
}

func TestClassifyEmpty(t *testing.T) {
	p := Classify(time.Now(), nil, CounterpartArtist)

	assert.Empty(t, p.Past)
	assert.Empty(t, p.Upcoming)
	assert.NotNil(t, p.Past)
	assert.NotNil(t, p.Upcoming)
	assert.Zero(t, p.PastCount)
	assert.Zero(t, p.UpcomingCount)
}

func TestClassifyPastAndUpcoming(t *testing.T) {
	now := mustTime(t, "2024-01-01T00:00:00Z")
	shows := []models.ShowDetail{
		detail(1, 4, 1, mustTime(t, "2019-05-21T21:30:00Z")),
		detail(2, 6, 1, mustTime(t, "2035-04-01T20:00:00Z")),
	}

	p := Classify(now, shows, CounterpartArtist)

	require.Len(t, p.Past, 1)
	require.Len(t, p.Upcoming, 1)
	assert.Equal(t, "2019-05-21T21:30:00Z", p.Past[0].StartTime)
	assert.Equal(t, "2035-04-01T20:00:00Z", p.Upcoming[0].StartTime)
	assert.Equal(t, int64(4), p.Past[0].ID)
	assert.Equal(t, int64(6), p.Upcoming[0].ID)
	assert.Equal(t, 1, p.PastCount)
	assert.Equal(t, 1, p.UpcomingCount)
}

func TestClassifyBoundaryIsPast(t *testing.T) {
	now := mustTime(t, "2024-06-01T12:00:00Z")
	shows := []models.ShowDetail{
		detail(1, 1, 1, now),
		detail(2, 1, 1, now.Add(time.Nanosecond)),
	}

	p := Classify(now, shows, CounterpartArtist)

	assert.Equal(t, 1, p.PastCount)
	assert.Equal(t, 1, p.UpcomingCount)
}

func TestClassifyPartitionsEveryShowOnce(t *testing.T) {
	now := mustTime(t, "2024-06-01T12:00:00Z")
	var shows []models.ShowDetail
	for i := -10; i <= 10; i++ {
		shows = append(shows, detail(int64(100+i), int64(100+i), 1, now.Add(time.Duration(i)*time.Hour)))
	}

	p := Classify(now, shows, CounterpartArtist)

	assert.Equal(t, len(shows), p.PastCount+p.UpcomingCount)
	seen := make(map[int64]int)
	for _, l := range append(append([]Listing{}, p.Past...), p.Upcoming...) {
		seen[l.ID]++
	}
	assert.Len(t, seen, len(shows))
	for id, n := range seen {
		assert.Equalf(t, 1, n, "show for artist %d classified %d times", id, n)
	}
}

func TestClassifyKeepsStoreOrder(t *testing.T) {
	now := mustTime(t, "2024-01-01T00:00:00Z")
	shows := []models.ShowDetail{
		detail(1, 30, 1, mustTime(t, "2036-01-01T00:00:00Z")),
		detail(2, 10, 1, mustTime(t, "2035-01-01T00:00:00Z")),
		detail(3, 20, 1, mustTime(t, "2035-06-01T00:00:00Z")),
	}

	p := Classify(now, shows, CounterpartArtist)

	ids := []int64{p.Upcoming[0].ID, p.Upcoming[1].ID, p.Upcoming[2].ID}
	assert.Equal(t, []int64{30, 10, 20}, ids)
}

func TestClassifyCounterpartVenue(t *testing.T) {
	now := mustTime(t, "2024-01-01T00:00:00Z")
	show := detail(1, 4, 9, mustTime(t, "2035-04-01T20:00:00Z"))
	show.VenueName = "The Musical Hop"

	p := Classify(now, []models.ShowDetail{show}, CounterpartVenue)

	require.Len(t, p.Upcoming, 1)
	assert.Equal(t, Listing{
		ID:        9,
		Name:      "The Musical Hop",
		ImageLink: "https://example.com/venue.jpg",
		StartTime: "2035-04-01T20:00:00Z",
	}, p.Upcoming[0])
}

func TestFormatStartUsesUTCSeconds(t *testing.T) {
	loc := time.FixedZone("PDT", -7*60*60)
	ts := time.Date(2019, 5, 21, 14, 30, 0, 999_000_000, loc)

	assert.Equal(t, "2019-05-21T21:30:00Z", FormatStart(ts))
}

func TestByVenueAndByArtist(t *testing.T) {
	start := mustTime(t, "2024-01-01T00:00:00Z")
	shows := []models.ShowDetail{
		detail(1, 4, 1, start),
		detail(2, 5, 1, start),
		detail(3, 4, 3, start),
	}

	byVenue := ByVenue(shows)
	assert.Len(t, byVenue[1], 2)
	assert.Len(t, byVenue[3], 1)

	byArtist := ByArtist(shows)
	assert.Len(t, byArtist[4], 2)
	assert.Equal(t, int64(3), byArtist[4][1].ID)
}
