package spotify

import (
	"context"
	"errors"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"mixtape/blueprint"
	"net"
	"time"
)

// DefaultTimeout bounds every upstream call. A fetch that takes longer than
// this fails the single request, it never stalls the process.
const DefaultTimeout = 10 * time.Second

type Service struct {
	IntegrationAppID     string
	IntegrationAppSecret string
	RedirectURI          string
	Timeout              time.Duration
	Logger               *zap.Logger
}

func NewService(clientID, clientSecret, redirectURI string, logger *zap.Logger) *Service {
	return &Service{
		IntegrationAppID:     clientID,
		IntegrationAppSecret: clientSecret,
		RedirectURI:          redirectURI,
		Timeout:              DefaultTimeout,
		Logger:               logger,
	}
}

// authenticator builds the oauth2 authenticator for the playlist-read scope.
func (s *Service) authenticator() *spotifyauth.Authenticator {
	return spotifyauth.New(
		spotifyauth.WithClientID(s.IntegrationAppID),
		spotifyauth.WithClientSecret(s.IntegrationAppSecret),
		spotifyauth.WithRedirectURL(s.RedirectURI),
		spotifyauth.WithScopes(spotifyauth.ScopePlaylistReadPrivate),
	)
}

// NewClient returns a new spotify client
func (s *Service) NewClient(ctx context.Context, token *oauth2.Token) *spotify.Client {
	httpClient := s.authenticator().Client(ctx, token)
	return spotify.New(httpClient)
}

// classifyError maps an upstream failure onto the error taxonomy the
// controllers surface. Timeouts get their own class so they can come back
// as a 504, everything else from spotify is a generic upstream failure.
func (s *Service) classifyError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return blueprint.EUPSTREAMTIMEOUT
	}
	return blueprint.EUPSTREAMERROR
}
