package account

import (
	"context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
	"log"
	"mixtape/blueprint"
	"mixtape/cache"
	"mixtape/credentials"
	"mixtape/middleware"
	"mixtape/util"
	"net/http"
)

// Exchanger swaps the authorization code in the callback request for a
// credential.
type Exchanger interface {
	CompleteAuth(ctx context.Context, request *http.Request, state string) (*blueprint.Credential, error)
}

type AccountController struct {
	Store    credentials.Store
	Spotify  Exchanger
	Sessions *session.Store
	Cache    *cache.UserCache
	Logger   *zap.Logger
}

func NewAccountController(store credentials.Store, exchanger Exchanger, sessions *session.Store, userCache *cache.UserCache, logger *zap.Logger) *AccountController {
	return &AccountController{
		Store:    store,
		Spotify:  exchanger,
		Sessions: sessions,
		Cache:    userCache,
		Logger:   logger,
	}
}

// Home is the entrypoint. The auth gate in front of it has already redirected
// anyone without a credential to spotify, so all that is left is to send the
// browser on to the playlist fetch.
func (c *AccountController) Home(ctx *fiber.Ctx) error {
	return ctx.Redirect("/get_playlists", http.StatusSeeOther)
}

// Callback finishes the authorization-code flow. Spotify redirects here with
// a code, we exchange it for tokens, persist the credential for this session
// and move on to the playlist fetch.
func (c *AccountController) Callback(ctx *fiber.Ctx) error {
	if authErr := ctx.Query("error"); authErr != "" {
		log.Printf("[controllers][account][Callback] warning - user did not authorize: %s\n", authErr)
		return ctx.Redirect("/", http.StatusSeeOther)
	}

	if ctx.Query("code") == "" {
		return util.RenderError(ctx, http.StatusBadRequest, "Missing authorization code.")
	}

	sess, err := c.Sessions.Get(ctx)
	if err != nil {
		c.Logger.Error("could not open session in callback", zap.Error(err))
		return ctx.SendStatus(http.StatusInternalServerError)
	}
	state, _ := sess.Get(middleware.StateKey).(string)

	// create a new net/http instance since *fasthttp.Request() cannot be passed
	r, err := http.NewRequest("GET", string(ctx.Request().RequestURI()), nil)
	if err != nil {
		c.Logger.Error("could not build request for token exchange", zap.Error(err))
		return ctx.SendStatus(http.StatusInternalServerError)
	}

	credential, err := c.Spotify.CompleteAuth(ctx.Context(), r, state)
	if err != nil {
		log.Printf("[controllers][account][Callback] error - could not complete auth: %v\n", err)
		return util.RenderError(ctx, http.StatusBadRequest,
			"Spotify did not accept the authorization code. Try logging in again.")
	}

	if err := c.Store.Set(ctx, credential); err != nil {
		c.Logger.Error("could not persist credential", zap.Error(err))
		return ctx.SendStatus(http.StatusInternalServerError)
	}

	return ctx.Redirect("/get_playlists", http.StatusSeeOther)
}

// Account renders the cached display name and picture for the session's
// user. Anyone who never completed a fetch in this session goes home.
func (c *AccountController) Account(ctx *fiber.Ctx) error {
	sess, err := c.Sessions.Get(ctx)
	if err != nil {
		return ctx.SendStatus(http.StatusInternalServerError)
	}

	userID, _ := sess.Get(middleware.SessionUserKey).(string)
	if userID == "" {
		return ctx.Redirect("/", http.StatusSeeOther)
	}

	snapshot, ok := c.Cache.Get(userID)
	if !ok {
		return ctx.Redirect("/", http.StatusSeeOther)
	}

	return ctx.Render("account", fiber.Map{
		"DisplayName":    snapshot.DisplayName,
		"ProfilePicture": snapshot.ProfilePicture,
		"UserID":         snapshot.UserID,
	})
}

// Logout drops the session's credential. The cached snapshot deliberately
// stays: a /user/{id} link keeps working after logout, only the protected
// routes force a fresh authorization.
func (c *AccountController) Logout(ctx *fiber.Ctx) error {
	if err := c.Store.Clear(ctx); err != nil {
		c.Logger.Error("could not clear credential", zap.Error(err))
	}

	sess, err := c.Sessions.Get(ctx)
	if err == nil {
		if destroyErr := sess.Destroy(); destroyErr != nil {
			log.Printf("[controllers][account][Logout] error - could not destroy session: %v\n", destroyErr)
		}
	}

	return ctx.Redirect("/", http.StatusSeeOther)
}
