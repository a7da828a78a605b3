package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/models"
	"fyyur/internal/store"
)

func TestInTxDiscardsFailedWork(t *testing.T) {
	mem := NewMemory()
	boom := errors.New("boom")

	err := mem.InTx(context.Background(), func(tx store.Tx) error {
		if _, err := tx.CreateVenue(context.Background(), models.Venue{Name: "The Musical Hop"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	venues, _, _ := mem.Counts()
	assert.Equal(t, 0, venues)
}

func TestInTxPublishesSuccessfulWork(t *testing.T) {
	mem := NewMemory()

	err := mem.InTx(context.Background(), func(tx store.Tx) error {
		_, err := tx.CreateArtist(context.Background(), models.Artist{Name: "Matt Quevedo"})
		return err
	})
	require.NoError(t, err)

	_, artists, _ := mem.Counts()
	assert.Equal(t, 1, artists)
}

func TestReadsDoNotAlias(t *testing.T) {
	mem := NewMemory()
	v := mem.AddVenue(models.Venue{Name: "The Musical Hop", Genres: []models.Genre{models.GenreJazz}})

	err := mem.InTx(context.Background(), func(tx store.Tx) error {
		got, err := tx.GetVenue(context.Background(), v.ID)
		if err != nil {
			return err
		}
		got.Genres[0] = models.GenreFolk

		again, err := tx.GetVenue(context.Background(), v.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, models.GenreJazz, again.Genres[0])
		return nil
	})
	require.NoError(t, err)
}
