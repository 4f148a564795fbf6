package middleware

import (
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"log"
	"mixtape/blueprint"
	"mixtape/credentials"
	"mixtape/util"
	"net/http"
)

// StateKey is the session key holding the OAuth state nonce between the
// redirect to spotify and the callback.
const StateKey = "oauth_state"

// CredentialKey is the request-local the gate stores the loaded credential
// under, so handlers behind it don't hit the store twice.
const CredentialKey = "credential"

// SessionUserKey is the session key remembering which spotify user this
// browser session last fetched, for the account page.
const SessionUserKey = "user_id"

// Authorizer builds the provider authorization url for a state value.
type Authorizer interface {
	AuthURL(state string) string
}

type AuthMiddleware struct {
	Store    credentials.Store
	Spotify  Authorizer
	Sessions *session.Store
}

func NewAuthMiddleware(store credentials.Store, authorizer Authorizer, sessions *session.Store) *AuthMiddleware {
	return &AuthMiddleware{Store: store, Spotify: authorizer, Sessions: sessions}
}

// RequireAuth gates every route that touches the spotify api. An absent or
// dead credential is not an error page, the browser is just sent back to
// spotify to authorize again. Repeated calls keep producing the same
// redirect target until a new credential lands.
func (a *AuthMiddleware) RequireAuth(ctx *fiber.Ctx) error {
	credential, err := a.Store.Get(ctx)
	if err != nil && !errors.Is(err, blueprint.ENOCREDENTIAL) {
		log.Printf("[middleware][RequireAuth] error - could not read credential store: %v\n", err)
		return util.RenderError(ctx, http.StatusInternalServerError,
			"Something went wrong reading your session.")
	}

	if credential == nil || !credential.Valid() {
		return a.redirectToAuthorize(ctx)
	}

	ctx.Locals(CredentialKey, credential)
	return ctx.Next()
}

func (a *AuthMiddleware) redirectToAuthorize(ctx *fiber.Ctx) error {
	sess, err := a.Sessions.Get(ctx)
	if err != nil {
		log.Printf("[middleware][RequireAuth] error - could not open session: %v\n", err)
		return ctx.SendStatus(http.StatusInternalServerError)
	}

	state := uuid.NewString()
	sess.Set(StateKey, state)
	if err := sess.Save(); err != nil {
		return err
	}

	return ctx.Redirect(a.Spotify.AuthURL(state), http.StatusSeeOther)
}
