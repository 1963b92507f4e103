package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ShowSong links one show to one song and records the song's position
// within that show's setlist. The (ShowID, SongID) pair is unique.
type ShowSong struct {
	ShowID    string    `json:"show_id"`
	SongID    string    `json:"song_id"`
	SongOrder int       `json:"song_order"`
	AddedAt   time.Time `json:"added_at"`
}

// Validate checks the membership row.
func (ss *ShowSong) Validate() error {
	return validation.ValidateStruct(ss,
		validation.Field(&ss.ShowID, validation.Required.Error("show id is required")),
		validation.Field(&ss.SongID, validation.Required.Error("song id is required")),
		validation.Field(&ss.SongOrder, validation.Min(0).Error("song_order must not be negative")),
	)
}

// SetlistEntry is a membership row joined with the song's catalog data,
// as served to clients listing a show's setlist.
type SetlistEntry struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Artist    *string `json:"artist"`
	Tone      *string `json:"tone"`
	SongOrder int     `json:"song_order"`
}
