// Package schedule shapes show records for the directory pages: it splits
// shows into past and upcoming relative to a reference instant, groups venues
// by area and builds name search results. Everything here is pure; callers
// pass in the instant and the rows they loaded from the store.
package schedule

import (
	"time"

	"fyyur/internal/models"
)

// TimestampLayout is the UTC, second precision form used for show start times.
const TimestampLayout = "2006-01-02T15:04:05Z"

// Counterpart selects which side of a show is projected into a Listing.
type Counterpart int

const (
	// CounterpartArtist projects the artist of each show (venue pages).
	CounterpartArtist Counterpart = iota
	// CounterpartVenue projects the venue of each show (artist pages).
	CounterpartVenue
)

// Listing is a show as displayed on the page of the other side of the booking.
type Listing struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ImageLink string `json:"image_link"`
	StartTime string `json:"start_time"`
}

// Partition holds shows split around a reference instant.
type Partition struct {
	Past          []Listing `json:"past_shows"`
	Upcoming      []Listing `json:"upcoming_shows"`
	PastCount     int       `json:"past_shows_count"`
	UpcomingCount int       `json:"upcoming_shows_count"`
}

// IsUpcoming reports whether a show starting at start is still to come at now.
// A show starting exactly at now is already past.
func IsUpcoming(now, start time.Time) bool {
	return start.After(now)
}

// Classify splits shows into past (start <= now) and upcoming (start > now).
// Input order is kept within each side; it is not re-sorted by start time.
func Classify(now time.Time, shows []models.ShowDetail, side Counterpart) Partition {
	p := Partition{
		Past:     []Listing{},
		Upcoming: []Listing{},
	}

	for _, show := range shows {
		listing := project(show, side)
		if IsUpcoming(now, show.StartTime) {
			p.Upcoming = append(p.Upcoming, listing)
		} else {
			p.Past = append(p.Past, listing)
		}
	}

	p.PastCount = len(p.Past)
	p.UpcomingCount = len(p.Upcoming)
	return p
}

// CountUpcoming counts the shows still to come at now.
func CountUpcoming(now time.Time, shows []models.ShowDetail) int {
	n := 0
	for _, show := range shows {
		if IsUpcoming(now, show.StartTime) {
			n++
		}
	}
	return n
}

// FormatStart renders a start time in TimestampLayout.
func FormatStart(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func project(show models.ShowDetail, side Counterpart) Listing {
	if side == CounterpartVenue {
		return Listing{
			ID:        show.VenueID,
			Name:      show.VenueName,
			ImageLink: show.VenueImageLink,
			StartTime: FormatStart(show.StartTime),
		}
	}
	return Listing{
		ID:        show.ArtistID,
		Name:      show.ArtistName,
		ImageLink: show.ArtistImageLink,
		StartTime: FormatStart(show.StartTime),
	}
}

// ByVenue indexes shows by venue id, keeping input order per venue.
func ByVenue(shows []models.ShowDetail) map[int64][]models.ShowDetail {
	out := make(map[int64][]models.ShowDetail)
	for _, show := range shows {
		out[show.VenueID] = append(out[show.VenueID], show)
	}
	return out
}

// ByArtist indexes shows by artist id, keeping input order per artist.
func ByArtist(shows []models.ShowDetail) map[int64][]models.ShowDetail {
	out := make(map[int64][]models.ShowDetail)
	for _, show := range shows {
		out[show.ArtistID] = append(out[show.ArtistID], show)
	}
	return out
}
