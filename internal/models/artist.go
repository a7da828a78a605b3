package models

import "time"

// Artist represents a performer that can be booked at venues.
type Artist struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone,omitempty"`
	Website            string    `json:"website,omitempty"`
	ImageLink          string    `json:"image_link,omitempty"`
	FacebookLink       string    `json:"facebook_link,omitempty"`
	Genres             []Genre   `json:"genres"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription *string   `json:"seeking_description,omitempty"` // Only set while SeekingVenue
	CreatedAt          time.Time `json:"created_at"`
}

// Normalize drops the seeking description when the artist is not seeking a venue.
func (a *Artist) Normalize() {
	if !a.SeekingVenue {
		a.SeekingDescription = nil
	}
}
