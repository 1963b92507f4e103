package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts every API endpoint under /api.
func RegisterRoutes(
	r gin.IRouter,
	songs *SongHandler,
	shows *ShowHandler,
	setlist *SetlistHandler,
	stats *StatsHandler,
) {
	api := r.Group("/api")

	api.GET("/songs", songs.ListSongs)
	api.POST("/songs", songs.CreateSong)
	api.GET("/songs/:id", songs.GetSong)
	api.PUT("/songs/:id", songs.UpdateSong)
	api.DELETE("/songs/:id", songs.DeleteSong)

	api.GET("/shows", shows.ListShows)
	api.POST("/shows", shows.CreateShow)
	api.GET("/shows/:id", shows.GetShow)
	api.PUT("/shows/:id", shows.UpdateShow)
	api.DELETE("/shows/:id", shows.DeleteShow)
	api.POST("/shows/:id/clone", shows.CloneShow)

	api.GET("/shows/:id/songs", setlist.ListShowSongs)
	api.POST("/shows/:id/songs", setlist.AttachSong)
	api.DELETE("/shows/:id/songs/:songId", setlist.DetachSong)
	api.PUT("/shows/:id/songs/reorder", setlist.ReorderSongs)

	api.GET("/stats/music", stats.MusicStats)
	api.GET("/stats/shows", stats.ShowStats)
}
