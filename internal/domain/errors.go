package domain

import "errors"

var (
	// ErrSongNotFound is returned when no song matches the given id.
	ErrSongNotFound = errors.New("song not found")
	// ErrShowNotFound is returned when no show matches the given id.
	ErrShowNotFound = errors.New("show not found")

	// ErrSongAlreadyInShow is returned when attaching a song that is
	// already part of the show's setlist.
	ErrSongAlreadyInShow = errors.New("song already added to this show")
	// ErrSongNotInShow is returned when detaching a song that is not
	// part of the show's setlist.
	ErrSongNotInShow = errors.New("song not found in this show")
)
