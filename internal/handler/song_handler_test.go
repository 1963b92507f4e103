package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/davimarquesgiareta/casa-nova/internal/domain"
	"github.com/davimarquesgiareta/casa-nova/internal/service"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCreateSong(t *testing.T) {
	songs := new(MockSongService)
	r := newRouter(songs, new(MockShowService), new(MockSetlistService), new(MockStatsService))

	created := &domain.Song{
		ID:        "song-1",
		Title:     "Wonderwall",
		Artist:    strPtr("Oasis"),
		BPM:       intPtr(87),
		CreatedAt: time.Now(),
	}
	songs.On("CreateSong", mock.Anything, mock.MatchedBy(func(in *service.SongInput) bool {
		return in.Title == "Wonderwall" && in.Artist != nil && *in.Artist == "Oasis"
	})).Return(created, nil)

	w := doRequest(t, r, http.MethodPost, "/api/songs", `{"title":"Wonderwall","artist":"Oasis","bpm":87}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"song-1"`)
	songs.AssertExpectations(t)
}

func TestCreateSongMissingTitle(t *testing.T) {
	songs := new(MockSongService)
	r := newRouter(songs, new(MockShowService), new(MockSetlistService), new(MockStatsService))

	songs.On("CreateSong", mock.Anything, mock.Anything).
		Return(nil, validation.Errors{"title": validation.ErrRequired})

	w := doRequest(t, r, http.MethodPost, "/api/songs", `{"artist":"Oasis"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestCreateSongMalformedBody(t *testing.T) {
	songs := new(MockSongService)
	r := newRouter(songs, new(MockShowService), new(MockSetlistService), new(MockStatsService))

	w := doRequest(t, r, http.MethodPost, "/api/songs", `{"title":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	songs.AssertNotCalled(t, "CreateSong", mock.Anything, mock.Anything)
}

func TestGetSongNotFound(t *testing.T) {
	songs := new(MockSongService)
	r := newRouter(songs, new(MockShowService), new(MockSetlistService), new(MockStatsService))

	songs.On("GetSong", mock.Anything, "missing").Return(nil, domain.ErrSongNotFound)

	w := doRequest(t, r, http.MethodGet, "/api/songs/missing", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "song not found")
}

func TestListSongs(t *testing.T) {
	songs := new(MockSongService)
	r := newRouter(songs, new(MockShowService), new(MockSetlistService), new(MockStatsService))

	songs.On("ListSongs", mock.Anything).Return([]*domain.Song{
		{ID: "a", Title: "Second"},
		{ID: "b", Title: "First"},
	}, nil)

	w := doRequest(t, r, http.MethodGet, "/api/songs", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Second")
	assert.Contains(t, w.Body.String(), "First")
}

func TestDeleteSong(t *testing.T) {
	songs := new(MockSongService)
	r := newRouter(songs, new(MockShowService), new(MockSetlistService), new(MockStatsService))

	songs.On("DeleteSong", mock.Anything, "song-1").Return(nil)

	w := doRequest(t, r, http.MethodDelete, "/api/songs/song-1", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestUpdateSongNotFound(t *testing.T) {
	songs := new(MockSongService)
	r := newRouter(songs, new(MockShowService), new(MockSetlistService), new(MockStatsService))

	songs.On("UpdateSong", mock.Anything, "missing", mock.Anything).
		Return(nil, domain.ErrSongNotFound)

	w := doRequest(t, r, http.MethodPut, "/api/songs/missing", `{"title":"Renamed"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
