package schedule

import (
	"time"

	"fyyur/internal/models"
)

// VenueSummary is a venue line in the directory listing.
type VenueSummary struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	UpcomingCount int    `json:"num_upcoming_shows"`
}

// Area groups the venues sharing a city and state.
type Area struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

type areaKey struct {
	city  string
	state string
}

// GroupByArea groups venues by the (city, state) pairs that actually occur.
// Areas come out in the order their first venue appears in venues, so a fixed
// input always yields the same result. showsByVenue is keyed by venue id.
func GroupByArea(now time.Time, venues []models.Venue, showsByVenue map[int64][]models.ShowDetail) []Area {
	areas := []Area{}
	index := make(map[areaKey]int)

	for _, venue := range venues {
		key := areaKey{city: venue.City, state: venue.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: venue.City, State: venue.State})
		}

		upcoming := CountUpcoming(now, showsByVenue[venue.ID])
		areas[i].Venues = append(areas[i].Venues, VenueSummary{
			ID:            venue.ID,
			Name:          venue.Name,
			UpcomingCount: upcoming,
		})
	}

	return areas
}
