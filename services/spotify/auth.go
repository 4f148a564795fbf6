package spotify

import (
	"context"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"mixtape/blueprint"
	"net/http"
)

// AuthURL returns the authorization url the browser is redirected to when
// the session holds no usable credential. show_dialog keeps the consent
// screen visible on every re-authorization, matching logout semantics.
func (s *Service) AuthURL(state string) string {
	return s.authenticator().AuthURL(state,
		oauth2.SetAuthURLParam("show_dialog", "true"))
}

// CompleteAuth finishes authorizing a spotify user by exchanging the code in
// the callback request for a token.
func (s *Service) CompleteAuth(ctx context.Context, request *http.Request, state string) (*blueprint.Credential, error) {
	token, err := s.authenticator().Token(ctx, state, request)
	if err != nil {
		s.Logger.Error("could not exchange authorization code", zap.Error(err))
		return nil, blueprint.EINVALIDAUTHCODE
	}
	return blueprint.NewCredential(token), nil
}
