package forms

import (
	"net/url"
	"strconv"
	"time"

	"fyyur/internal/models"
)

// StartTimeLayouts are tried in order when parsing start_time. Values without
// a zone are taken as UTC.
var StartTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// ShowForm holds the fields of the show booking form. Raw values are kept so
// an invalid form can be re-rendered as typed.
type ShowForm struct {
	ArtistID     int64  `form:"artist_id" validate:"gt=0"`
	VenueID      int64  `form:"venue_id" validate:"gt=0"`
	RawArtistID  string `form:"-"`
	RawVenueID   string `form:"-"`
	RawStartTime string `form:"-"`

	StartTime time.Time `form:"-"`
}

// BindShow reads a posted show form. An empty start_time leaves StartTime
// zero, meaning "now".
func BindShow(values url.Values) (ShowForm, FieldErrors) {
	form := ShowForm{
		RawArtistID:  text(values, "artist_id"),
		RawVenueID:   text(values, "venue_id"),
		RawStartTime: text(values, "start_time"),
	}
	errs := FieldErrors{}

	form.ArtistID = bindID(form.RawArtistID, "artist_id", errs)
	form.VenueID = bindID(form.RawVenueID, "venue_id", errs)

	if form.RawStartTime != "" {
		start, ok := parseStart(form.RawStartTime)
		if ok {
			form.StartTime = start
		} else {
			errs.Add("start_time", "must look like 2006-01-02 15:04:05")
		}
	}

	check(form, errs)
	return form, errs
}

// Show converts a valid form into a show.
func (f ShowForm) Show() models.Show {
	return models.Show{
		ArtistID:  f.ArtistID,
		VenueID:   f.VenueID,
		StartTime: f.StartTime,
	}
}

func bindID(raw, field string, errs FieldErrors) int64 {
	if raw == "" {
		errs.Add(field, "is required")
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		errs.Add(field, "must be a positive number")
		return 0
	}
	return id
}

func parseStart(raw string) (time.Time, bool) {
	for _, layout := range StartTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
