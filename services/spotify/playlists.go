package spotify

import (
	"context"
	"errors"
	"github.com/zmb3/spotify/v2"
	"go.uber.org/zap"
	"mixtape/blueprint"
)

// FetchUserSnapshot resolves the current user's identity and enumerates all
// of their playlists, page by page. It returns a fully-assembled snapshot or
// an error, never a partial result. Playlists with an empty image set get an
// empty cover rather than failing the fetch.
func (s *Service) FetchUserSnapshot(ctx context.Context, credential *blueprint.Credential) (*blueprint.UserSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	client := s.NewClient(ctx, credential.Token())

	user, err := client.CurrentUser(ctx)
	if err != nil {
		s.Logger.Error("could not fetch current spotify user", zap.Error(err))
		return nil, s.classifyError(err)
	}

	displayName := user.DisplayName
	if displayName == "" {
		displayName = user.ID
	}
	var picture string
	if len(user.Images) > 0 {
		picture = user.Images[0].URL
	}

	page, err := client.CurrentUsersPlaylists(ctx)
	if err != nil {
		s.Logger.Error("could not fetch playlists", zap.Error(err), zap.String("user", user.ID))
		return nil, s.classifyError(err)
	}

	items := make([]spotify.SimplePlaylist, 0, page.Total)
	items = append(items, page.Playlists...)
	for {
		paginationErr := client.NextPage(ctx, page)
		if errors.Is(paginationErr, spotify.ErrNoMorePages) {
			break
		}
		if paginationErr != nil {
			s.Logger.Error("could not fetch playlist page", zap.Error(paginationErr), zap.String("user", user.ID))
			return nil, s.classifyError(paginationErr)
		}
		items = append(items, page.Playlists...)
	}

	playlists := make([]blueprint.UserPlaylist, 0, len(items))
	for _, playlist := range items {
		pix := playlist.Images
		var cover string
		if len(pix) > 0 {
			cover = pix[0].URL
		}
		playlists = append(playlists, blueprint.UserPlaylist{
			ID:            string(playlist.ID),
			Title:         playlist.Name,
			Public:        playlist.IsPublic,
			Collaborative: playlist.Collaborative,
			NbTracks:      int(playlist.Tracks.Total),
			URL:           playlist.ExternalURLs["spotify"],
			Cover:         cover,
			Owner:         playlist.Owner.DisplayName,
		})
	}

	return &blueprint.UserSnapshot{
		UserID:         user.ID,
		DisplayName:    displayName,
		ProfilePicture: picture,
		Playlists:      playlists,
	}, nil
}
