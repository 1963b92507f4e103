package domain

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// EventDateLayout is the calendar-date form accepted for event_date.
const EventDateLayout = "2006-01-02"

// showTimeLayouts are the time-of-day forms accepted for show_time.
// HH:MM:SS is included because that is how the stored value reads back.
var showTimeLayouts = []string{"15:04", "15:04:05"}

// Show is a setlist/event entity grouping an ordered collection of songs.
// Venue, date and time are optional; SongCount is denormalized from the
// membership table on reads.
type Show struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Venue     *string   `json:"venue"`
	EventDate *string   `json:"event_date"`
	ShowTime  *string   `json:"show_time"`
	SongCount int       `json:"song_count"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the show's mutable fields.
func (s *Show) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Name, validation.Required.Error("name is required")),
		validation.Field(&s.EventDate, validation.Date(EventDateLayout).Error("event_date must be YYYY-MM-DD")),
		validation.Field(&s.ShowTime, validation.By(timeOfDay)),
	)
}

func timeOfDay(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		if ptr, isPtr := value.(*string); isPtr {
			if ptr == nil {
				return nil
			}
			str = *ptr
		} else {
			return errors.New("show_time must be a string")
		}
	}
	if str == "" {
		return nil
	}
	for _, layout := range showTimeLayouts {
		if _, err := time.Parse(layout, str); err == nil {
			return nil
		}
	}
	return errors.New("show_time must be HH:MM")
}
