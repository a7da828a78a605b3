package main

import (
	"context"
	"fmt"
	"time"

	"fyyur/internal/models"
	"fyyur/internal/store"
)

type unitOfWork interface {
	InTx(ctx context.Context, fn func(store.Tx) error) error
}

type seedShow struct {
	Venue  string
	Artist string
	Start  time.Time
}

func strPtr(s string) *string { return &s }

var demoVenues = []models.Venue{
	{
		Name:               "The Musical Hop",
		Address:            "1015 Folsom Street",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "123-123-1234",
		Website:            "https://www.themusicalhop.com",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		Genres:             []models.Genre{models.GenreJazz, models.GenreReggae, models.GenreClassical, models.GenreFolk},
		SeekingTalent:      true,
		SeekingDescription: strPtr("We are on the lookout for a local artist to play every two weeks. Please call us."),
	},
	{
		Name:         "The Dueling Pianos Bar",
		Address:      "335 Delancey Street",
		City:         "New York",
		State:        "NY",
		Phone:        "914-003-1132",
		Website:      "https://www.theduelingpianos.com",
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		Genres:       []models.Genre{models.GenreClassical, models.GenreRB, models.GenreHipHop},
	},
	{
		Name:         "Park Square Live Music & Coffee",
		Address:      "34 Whiskey Moore Ave",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "415-000-1234",
		Website:      "https://www.parksquarelivemusicandcoffee.com",
		FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		Genres:       []models.Genre{models.GenreRockNRoll, models.GenreJazz, models.GenreClassical, models.GenreFolk},
	},
}

var demoArtists = []models.Artist{
	{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Website:            "https://www.gunsnpetalsband.com",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		Genres:             []models.Genre{models.GenreRockNRoll},
		SeekingVenue:       true,
		SeekingDescription: strPtr("Looking for shows to perform at in the San Francisco Bay Area!"),
	},
	{
		Name:         "Matt Quevedo",
		City:         "New York",
		State:        "NY",
		Phone:        "300-400-5000",
		FacebookLink: "https://www.facebook.com/mattquevedo923251523",
		Genres:       []models.Genre{models.GenreJazz},
	},
	{
		Name:   "The Wild Sax Band",
		City:   "San Francisco",
		State:  "CA",
		Phone:  "432-325-5432",
		Genres: []models.Genre{models.GenreJazz, models.GenreClassical},
	},
}

var demoShows = []seedShow{
	{Venue: "The Musical Hop", Artist: "Guns N Petals", Start: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
	{Venue: "Park Square Live Music & Coffee", Artist: "Matt Quevedo", Start: time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
	{Venue: "Park Square Live Music & Coffee", Artist: "The Wild Sax Band", Start: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
	{Venue: "Park Square Live Music & Coffee", Artist: "The Wild Sax Band", Start: time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
	{Venue: "Park Square Live Music & Coffee", Artist: "The Wild Sax Band", Start: time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
}

// bootstrapDirectory loads the demo listings into an empty directory. A
// directory that already has venues or artists is left alone.
func bootstrapDirectory(ctx context.Context, uow unitOfWork) error {
	seeded := false
	err := uow.InTx(ctx, func(tx store.Tx) error {
		existingVenues, err := tx.RecentVenues(ctx, 1)
		if err != nil {
			return fmt.Errorf("check venues: %w", err)
		}
		existingArtists, err := tx.RecentArtists(ctx, 1)
		if err != nil {
			return fmt.Errorf("check artists: %w", err)
		}
		if len(existingVenues) > 0 || len(existingArtists) > 0 {
			return nil
		}

		venueIDs := make(map[string]int64, len(demoVenues))
		for _, venue := range demoVenues {
			created, err := tx.CreateVenue(ctx, venue)
			if err != nil {
				return fmt.Errorf("bootstrap venue %q: %w", venue.Name, err)
			}
			venueIDs[venue.Name] = created.ID
		}

		artistIDs := make(map[string]int64, len(demoArtists))
		for _, artist := range demoArtists {
			created, err := tx.CreateArtist(ctx, artist)
			if err != nil {
				return fmt.Errorf("bootstrap artist %q: %w", artist.Name, err)
			}
			artistIDs[artist.Name] = created.ID
		}

		for _, show := range demoShows {
			if _, err := tx.CreateShow(ctx, models.Show{
				VenueID:   venueIDs[show.Venue],
				ArtistID:  artistIDs[show.Artist],
				StartTime: show.Start,
			}); err != nil {
				return fmt.Errorf("bootstrap show %s at %s: %w", show.Artist, show.Venue, err)
			}
		}

		seeded = true
		return nil
	})
	if err != nil {
		return err
	}

	if seeded {
		logger.Zerolog().Info().
			Int("venues", len(demoVenues)).
			Int("artists", len(demoArtists)).
			Int("shows", len(demoShows)).
			Msg("demo directory loaded")
	}
	return nil
}
