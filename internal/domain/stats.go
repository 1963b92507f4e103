package domain

// LibraryStats aggregates the song catalog.
type LibraryStats struct {
	TotalSongs         int     `json:"total_songs"`
	TotalDurationSecs  int     `json:"total_duration_secs"`
	AvgDurationSecs    float64 `json:"avg_duration_secs"`
	MostFrequentArtist *string `json:"most_frequent_artist"`
	MostFrequentTone   *string `json:"most_frequent_tone"`
}

// TopSong is one entry of the most-played ranking.
type TopSong struct {
	Title     string  `json:"title"`
	Artist    *string `json:"artist"`
	PlayCount int     `json:"play_count"`
}

// ShowStats aggregates the shows and their setlists.
type ShowStats struct {
	TotalShows         int       `json:"total_shows"`
	MostFrequentVenue  *string   `json:"most_frequent_venue"`
	MostFrequentArtist *string   `json:"most_frequent_artist"`
	TopSongs           []TopSong `json:"top_songs"`
}
