package models

import "time"

// Show books one artist at one venue at a point in time.
type Show struct {
	ID        int64     `json:"id"`
	ArtistID  int64     `json:"artist_id"`
	VenueID   int64     `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}

// ShowDetail includes the display fields of both sides of the booking.
// Populated via JOIN queries on the foreign keys.
type ShowDetail struct {
	Show
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	VenueName       string `json:"venue_name"`
	VenueImageLink  string `json:"venue_image_link"`
}
