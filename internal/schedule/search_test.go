package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/models"
)

var searchNames = []Named{
	{ID: 1, Name: "The Musical Hop"},
	{ID: 2, Name: "The Dueling Pianos Bar"},
	{ID: 3, Name: "Park Square Live Music & Coffee"},
}

func TestMatchEmptyTermReturnsAll(t *testing.T) {
	result := Match(time.Now(), "", searchNames, nil)

	assert.Equal(t, len(searchNames), result.Count)
	assert.Len(t, result.Items, len(searchNames))
}

func TestMatchNoHits(t *testing.T) {
	result := Match(time.Now(), "zzz", searchNames, nil)

	assert.Zero(t, result.Count)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}

func TestMatchIsCaseInsensitiveSubstring(t *testing.T) {
	result := Match(time.Now(), "MuSiC", searchNames, nil)

	require.Equal(t, 2, result.Count)
	assert.Equal(t, int64(1), result.Items[0].ID)
	assert.Equal(t, int64(3), result.Items[1].ID)
}

func TestMatchAttachesUpcomingCount(t *testing.T) {
	now := mustTime(t, "2024-01-01T00:00:00Z")
	shows := ByVenue([]models.ShowDetail{
		detail(1, 1, 2, mustTime(t, "2035-04-01T20:00:00Z")),
		detail(2, 1, 2, mustTime(t, "2019-04-01T20:00:00Z")),
	})

	result := Match(now, "piano", searchNames, shows)

	require.Equal(t, 1, result.Count)
	assert.Equal(t, SearchItem{ID: 2, Name: "The Dueling Pianos Bar", UpcomingCount: 1}, result.Items[0])
}

func TestNamesAdapters(t *testing.T) {
	assert.Equal(t, []Named{{ID: 7, Name: "Guns N Petals"}}, ArtistNames([]models.Artist{{ID: 7, Name: "Guns N Petals"}}))
	assert.Equal(t, []Named{{ID: 8, Name: "The Musical Hop"}}, VenueNames([]models.Venue{{ID: 8, Name: "The Musical Hop"}}))
}
