package models

import "time"

// Venue represents a place that books artists for shows.
type Venue struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Address            string    `json:"address"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone,omitempty"`
	Website            string    `json:"website,omitempty"`
	ImageLink          string    `json:"image_link,omitempty"`
	FacebookLink       string    `json:"facebook_link,omitempty"`
	Genres             []Genre   `json:"genres"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription *string   `json:"seeking_description,omitempty"` // Only set while SeekingTalent
	CreatedAt          time.Time `json:"created_at"`
}

// Normalize drops the seeking description when the venue is not seeking talent.
func (v *Venue) Normalize() {
	if !v.SeekingTalent {
		v.SeekingDescription = nil
	}
}
