package domain

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Song is a catalog entry for a single piece of music and its
// performance metadata. Optional fields are pointers so that absent and
// empty are distinguishable and absent round-trips as JSON null.
type Song struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Artist       *string   `json:"artist"`
	Tone         *string   `json:"tone"`
	YouTubeURL   *string   `json:"youtube_url"`
	BPM          *int      `json:"bpm"`
	DurationSecs *int      `json:"duration_secs"`
	CreatedAt    time.Time `json:"created_at"`
}

// Validate checks the song's mutable fields.
func (s *Song) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Title, validation.Required.Error("title is required")),
		validation.Field(&s.BPM, intAtLeast(1, "bpm must be a positive integer")),
		validation.Field(&s.DurationSecs, intAtLeast(0, "duration_secs must not be negative")),
	)
}

// intAtLeast rejects a non-nil *int below min. Min would skip zero as
// an empty value, which here must fail like any other out-of-range int.
func intAtLeast(min int, message string) validation.Rule {
	return validation.By(func(value interface{}) error {
		ptr, _ := value.(*int)
		if ptr == nil || *ptr >= min {
			return nil
		}
		return errors.New(message)
	})
}
