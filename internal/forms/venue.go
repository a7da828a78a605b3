package forms

import (
	"net/url"
	"strings"

	"fyyur/internal/models"
)

// VenueForm holds the fields of the venue create and edit forms.
type VenueForm struct {
	Name               string   `form:"name" validate:"required,max=120"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,us_state"`
	Address            string   `form:"address" validate:"required,max=120"`
	Phone              string   `form:"phone" validate:"omitempty,phone"`
	Genres             []string `form:"genres" validate:"min=1,dive,genre"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `form:"website" validate:"omitempty,url,max=120"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" validate:"max=120"`
}

// BindVenue reads a posted venue form. The returned FieldErrors is empty when
// the form is valid.
func BindVenue(values url.Values) (VenueForm, FieldErrors) {
	form := VenueForm{
		Name:               text(values, "name"),
		City:               text(values, "city"),
		State:              strings.ToUpper(text(values, "state")),
		Address:            text(values, "address"),
		Phone:              text(values, "phone"),
		Genres:             genreTokens(values),
		ImageLink:          text(values, "image_link"),
		FacebookLink:       text(values, "facebook_link"),
		Website:            text(values, "website", "website_link"),
		SeekingTalent:      checked(values, "seeking_talent"),
		SeekingDescription: text(values, "seeking_description"),
	}

	errs := FieldErrors{}
	check(form, errs)
	return form, errs
}

// VenueFormFrom pre-fills the edit form with a stored venue.
func VenueFormFrom(v models.Venue) VenueForm {
	form := VenueForm{
		Name:          v.Name,
		City:          v.City,
		State:         v.State,
		Address:       v.Address,
		Phone:         v.Phone,
		Genres:        models.GenreStrings(v.Genres),
		ImageLink:     v.ImageLink,
		FacebookLink:  v.FacebookLink,
		Website:       v.Website,
		SeekingTalent: v.SeekingTalent,
	}
	if v.SeekingDescription != nil {
		form.SeekingDescription = *v.SeekingDescription
	}
	return form
}

// Venue converts a valid form into a venue. The description is dropped when
// the venue is not seeking talent.
func (f VenueForm) Venue() models.Venue {
	genres, _ := models.ParseGenres(f.Genres)
	v := models.Venue{
		Name:               f.Name,
		Address:            f.Address,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Website:            f.Website,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Genres:             genres,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: optional(f.SeekingDescription),
	}
	v.Normalize()
	return v
}

// HasGenre reports whether the form has name selected.
func (f VenueForm) HasGenre(name string) bool {
	return hasGenre(f.Genres, name)
}
