package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/davimarquesgiareta/casa-nova/internal/domain"
	"github.com/davimarquesgiareta/casa-nova/internal/repository"
)

// CloneNameSuffix is appended to a cloned show's name so two clones are
// distinguishable in a listing.
const CloneNameSuffix = " (copy)"

// ShowInput carries the mutable fields of a show. Empty optional fields
// are normalized to absent (NULL) rather than stored as empty strings.
type ShowInput struct {
	Name      string
	Venue     string
	EventDate string
	ShowTime  string
}

// ShowService is the show store.
type ShowService interface {
	// ListShows returns all shows with their member counts, newest first.
	ListShows(ctx context.Context) ([]*domain.Show, error)

	// CreateShow validates the input and persists a new show.
	CreateShow(ctx context.Context, in *ShowInput) (*domain.Show, error)

	// GetShow returns one show by id.
	GetShow(ctx context.Context, id string) (*domain.Show, error)

	// UpdateShow replaces all mutable fields of the show.
	UpdateShow(ctx context.Context, id string, in *ShowInput) (*domain.Show, error)

	// DeleteShow removes the show and, by cascade, its memberships.
	DeleteShow(ctx context.Context, id string) error

	// CloneShow duplicates the show and its entire setlist atomically
	// and returns the new show's id.
	CloneShow(ctx context.Context, id string) (string, error)
}

type showService struct {
	shows repository.ShowRepository
}

// NewShowService creates a show service.
func NewShowService(shows repository.ShowRepository) ShowService {
	return &showService{shows: shows}
}

func (s *showService) ListShows(ctx context.Context) ([]*domain.Show, error) {
	return s.shows.List(ctx)
}

func (s *showService) CreateShow(ctx context.Context, in *ShowInput) (*domain.Show, error) {
	show := &domain.Show{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Venue:     nilIfEmpty(in.Venue),
		EventDate: nilIfEmpty(in.EventDate),
		ShowTime:  nilIfEmpty(in.ShowTime),
		CreatedAt: time.Now(),
	}
	if err := show.Validate(); err != nil {
		return nil, err
	}

	if err := s.shows.Create(ctx, show); err != nil {
		return nil, err
	}
	return show, nil
}

func (s *showService) GetShow(ctx context.Context, id string) (*domain.Show, error) {
	return s.shows.GetByID(ctx, id)
}

func (s *showService) UpdateShow(ctx context.Context, id string, in *ShowInput) (*domain.Show, error) {
	show := &domain.Show{
		ID:        id,
		Name:      in.Name,
		Venue:     nilIfEmpty(in.Venue),
		EventDate: nilIfEmpty(in.EventDate),
		ShowTime:  nilIfEmpty(in.ShowTime),
	}
	if err := show.Validate(); err != nil {
		return nil, err
	}

	return s.shows.Update(ctx, show)
}

func (s *showService) DeleteShow(ctx context.Context, id string) error {
	return s.shows.Delete(ctx, id)
}

func (s *showService) CloneShow(ctx context.Context, id string) (string, error) {
	source, err := s.shows.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	clone := &domain.Show{
		ID:        uuid.New().String(),
		Name:      source.Name + CloneNameSuffix,
		Venue:     source.Venue,
		EventDate: source.EventDate,
		ShowTime:  source.ShowTime,
		CreatedAt: time.Now(),
	}

	if err := s.shows.Clone(ctx, id, clone); err != nil {
		return "", err
	}
	return clone.ID, nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
