package forms

import (
	"net/url"
	"strings"

	"fyyur/internal/models"
)

// ArtistForm holds the fields of the artist create and edit forms.
type ArtistForm struct {
	Name               string   `form:"name" validate:"required,max=120"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,us_state"`
	Phone              string   `form:"phone" validate:"omitempty,phone"`
	Genres             []string `form:"genres" validate:"min=1,dive,genre"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `form:"website" validate:"omitempty,url,max=120"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" validate:"max=120"`
}

// BindArtist reads a posted artist form.
func BindArtist(values url.Values) (ArtistForm, FieldErrors) {
	form := ArtistForm{
		Name:               text(values, "name"),
		City:               text(values, "city"),
		State:              strings.ToUpper(text(values, "state")),
		Phone:              text(values, "phone"),
		Genres:             genreTokens(values),
		ImageLink:          text(values, "image_link"),
		FacebookLink:       text(values, "facebook_link"),
		Website:            text(values, "website", "website_link"),
		SeekingVenue:       checked(values, "seeking_venue"),
		SeekingDescription: text(values, "seeking_description"),
	}

	errs := FieldErrors{}
	check(form, errs)
	return form, errs
}

// ArtistFormFrom pre-fills the edit form with a stored artist.
func ArtistFormFrom(a models.Artist) ArtistForm {
	form := ArtistForm{
		Name:         a.Name,
		City:         a.City,
		State:        a.State,
		Phone:        a.Phone,
		Genres:       models.GenreStrings(a.Genres),
		ImageLink:    a.ImageLink,
		FacebookLink: a.FacebookLink,
		Website:      a.Website,
		SeekingVenue: a.SeekingVenue,
	}
	if a.SeekingDescription != nil {
		form.SeekingDescription = *a.SeekingDescription
	}
	return form
}

// Artist converts a valid form into an artist.
func (f ArtistForm) Artist() models.Artist {
	genres, _ := models.ParseGenres(f.Genres)
	a := models.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Website:            f.Website,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Genres:             genres,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: optional(f.SeekingDescription),
	}
	a.Normalize()
	return a
}

// HasGenre reports whether the form has name selected.
func (f ArtistForm) HasGenre(name string) bool {
	return hasGenre(f.Genres, name)
}
