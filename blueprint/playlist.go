package blueprint

type UserPlaylist struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Public        bool   `json:"public"`
	Collaborative bool   `json:"collaborative"`
	NbTracks      int    `json:"nb_tracks,omitempty"`
	URL           string `json:"url"`
	// Cover is empty when the playlist has no cover image. That is not an
	// error, spotify returns an empty image set for fresh playlists.
	Cover string `json:"cover,omitempty"`
	// use the name as the owner for now
	Owner string `json:"owner"`
}

// UserSnapshot is the record of a user's display data and playlists as of the
// last successful fetch. It is assembled whole and never mutated afterwards;
// a new fetch replaces the whole snapshot.
type UserSnapshot struct {
	UserID         string         `json:"user_id"`
	DisplayName    string         `json:"display_name"`
	ProfilePicture string         `json:"profile_picture,omitempty"`
	Playlists      []UserPlaylist `json:"playlists"`
}
