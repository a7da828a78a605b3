//go:build integration

package store_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"fyyur/internal/models"
	"fyyur/internal/store"
	"fyyur/migrations"
)

// setupTestDB starts Postgres in a container, applies the schema and returns a Store.
func setupTestDB(t *testing.T) *store.Store {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("fyyur"),
		postgres.WithUsername("fyyur"),
		postgres.WithPassword("fyyur"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, migrations.Up(dsn))

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return store.New(db)
}

func musicalHop() models.Venue {
	return models.Venue{
		Name:    "The Musical Hop",
		Address: "1015 Folsom Street",
		City:    "San Francisco",
		State:   "CA",
		Phone:   "123-123-1234",
		Genres:  []models.Genre{models.GenreReggae, models.GenreJazz, models.GenreFolk},
	}
}

func TestStoreIntegration(t *testing.T) {
	st := setupTestDB(t)
	ctx := context.Background()

	var venue models.Venue
	var artist models.Artist

	t.Run("create keeps genre order", func(t *testing.T) {
		err := st.InTx(ctx, func(tx store.Tx) error {
			var err error
			venue, err = tx.CreateVenue(ctx, musicalHop())
			if err != nil {
				return err
			}
			artist, err = tx.CreateArtist(ctx, models.Artist{
				Name:   "Guns N Petals",
				City:   "San Francisco",
				State:  "CA",
				Genres: []models.Genre{models.GenreRockNRoll},
			})
			return err
		})
		require.NoError(t, err)

		got, err := st.GetVenue(ctx, venue.ID)
		require.NoError(t, err)
		assert.Equal(t, []models.Genre{models.GenreReggae, models.GenreJazz, models.GenreFolk}, got.Genres)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("duplicate name rolls back", func(t *testing.T) {
		err := st.InTx(ctx, func(tx store.Tx) error {
			_, err := tx.CreateVenue(ctx, musicalHop())
			return err
		})
		assert.ErrorIs(t, err, store.ErrVenueExists)

		all, err := st.ListVenues(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		found, err := st.SearchVenues(ctx, "hop")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, venue.ID, found[0].ID)

		none, err := st.SearchVenues(ctx, "%")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("show requires both sides", func(t *testing.T) {
		_, err := st.CreateShow(ctx, models.Show{ArtistID: artist.ID, VenueID: venue.ID + 100})
		assert.ErrorIs(t, err, store.ErrVenueNotFound)

		_, err = st.CreateShow(ctx, models.Show{ArtistID: artist.ID + 100, VenueID: venue.ID})
		assert.ErrorIs(t, err, store.ErrArtistNotFound)
	})

	t.Run("delete refuses a venue with shows", func(t *testing.T) {
		show, err := st.CreateShow(ctx, models.Show{ArtistID: artist.ID, VenueID: venue.ID})
		require.NoError(t, err)
		assert.False(t, show.StartTime.IsZero())

		shows, err := st.ShowsByArtist(ctx, artist.ID)
		require.NoError(t, err)
		require.Len(t, shows, 1)
		assert.Equal(t, "The Musical Hop", shows[0].VenueName)

		err = st.DeleteVenue(ctx, venue.ID)
		assert.ErrorIs(t, err, store.ErrVenueHasShows)
	})

	t.Run("delete removes a venue without shows", func(t *testing.T) {
		other := musicalHop()
		other.Name = "Park Square Live Music & Coffee"
		created, err := st.CreateVenue(ctx, other)
		require.NoError(t, err)

		require.NoError(t, st.DeleteVenue(ctx, created.ID))

		_, err = st.GetVenue(ctx, created.ID)
		assert.ErrorIs(t, err, store.ErrVenueNotFound)
	})
}
