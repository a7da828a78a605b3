package schedule

import (
	"strings"
	"time"

	"fyyur/internal/models"
)

// Named is the part of a venue or artist that search looks at.
type Named struct {
	ID   int64
	Name string
}

// SearchItem is one search hit.
type SearchItem struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	UpcomingCount int    `json:"num_upcoming_shows"`
}

// SearchResult is the response to a name search.
type SearchResult struct {
	Count int          `json:"count"`
	Items []SearchItem `json:"data"`
}

// MatchesName reports whether name contains term, ignoring case.
// The empty term matches every name.
func MatchesName(name, term string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

// Match keeps the entities whose name contains term and attaches their
// upcoming show counts. showsByID is keyed by the entity id.
func Match(now time.Time, term string, entities []Named, showsByID map[int64][]models.ShowDetail) SearchResult {
	result := SearchResult{Items: []SearchItem{}}

	for _, entity := range entities {
		if !MatchesName(entity.Name, term) {
			continue
		}
		result.Items = append(result.Items, SearchItem{
			ID:            entity.ID,
			Name:          entity.Name,
			UpcomingCount: CountUpcoming(now, showsByID[entity.ID]),
		})
	}

	result.Count = len(result.Items)
	return result
}

// VenueNames adapts venues for Match.
func VenueNames(venues []models.Venue) []Named {
	out := make([]Named, len(venues))
	for i, v := range venues {
		out[i] = Named{ID: v.ID, Name: v.Name}
	}
	return out
}

// ArtistNames adapts artists for Match.
func ArtistNames(artists []models.Artist) []Named {
	out := make([]Named, len(artists))
	for i, a := range artists {
		out[i] = Named{ID: a.ID, Name: a.Name}
	}
	return out
}
