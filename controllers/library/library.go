package library

import (
	"context"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"
	"log"
	"mixtape/blueprint"
	"mixtape/cache"
	"mixtape/middleware"
	"mixtape/util"
	"net/http"
)

// Fetcher pulls the authenticated user's snapshot from spotify.
type Fetcher interface {
	FetchUserSnapshot(ctx context.Context, credential *blueprint.Credential) (*blueprint.UserSnapshot, error)
}

type LibraryController struct {
	Cache    *cache.UserCache
	Spotify  Fetcher
	Sessions *session.Store
	Logger   *zap.Logger
}

func NewLibraryController(userCache *cache.UserCache, fetcher Fetcher, sessions *session.Store, logger *zap.Logger) *LibraryController {
	return &LibraryController{
		Cache:    userCache,
		Spotify:  fetcher,
		Sessions: sessions,
		Logger:   logger,
	}
}

// GetPlaylists runs a fetch for the session's user and redirects to their
// playlist view. The cache is only written on a fully successful fetch; on
// any upstream failure the previous snapshot, if one exists, stays served.
func (c *LibraryController) GetPlaylists(ctx *fiber.Ctx) error {
	credential, ok := ctx.Locals(middleware.CredentialKey).(*blueprint.Credential)
	if !ok {
		// the auth gate did not run, nothing sane to do with this request
		return ctx.SendStatus(http.StatusUnauthorized)
	}

	snapshot, err := c.Spotify.FetchUserSnapshot(ctx.Context(), credential)
	if err != nil {
		if errors.Is(err, blueprint.EUPSTREAMTIMEOUT) {
			log.Printf("[controllers][library][GetPlaylists] error - spotify timed out\n")
			return util.RenderError(ctx, http.StatusGatewayTimeout,
				"Spotify took too long to answer. Reload the page to try again.")
		}
		c.Logger.Error("could not fetch playlists from spotify", zap.Error(err))
		return util.RenderError(ctx, http.StatusBadGateway,
			"Something went wrong talking to Spotify. Try again in a moment.")
	}

	c.Cache.Put(snapshot.UserID, snapshot)

	sess, sessErr := c.Sessions.Get(ctx)
	if sessErr == nil {
		sess.Set(middleware.SessionUserKey, snapshot.UserID)
		if saveErr := sess.Save(); saveErr != nil {
			log.Printf("[controllers][library][GetPlaylists] error - could not save session: %v\n", saveErr)
		}
	}

	return ctx.Redirect(fmt.Sprintf("/user/%s", snapshot.UserID), http.StatusSeeOther)
}

// UserPlaylists renders the cached snapshot for a user id. The route is
// public on purpose: a fetched library stays viewable by link until the
// process restarts. sort is a-z or z-a (a-z by default), search is a
// case-insensitive substring match on the playlist title, applied after the
// sort.
func (c *LibraryController) UserPlaylists(ctx *fiber.Ctx) error {
	userID := ctx.Params("userId")

	snapshot, ok := c.Cache.Get(userID)
	if !ok {
		log.Printf("[controllers][library][UserPlaylists] warning - %v: no snapshot for user %s\n", blueprint.EUNKNOWNUSER, userID)
		return util.RenderError(ctx, http.StatusNotFound,
			"No playlists found for this user. They may need to log in first.")
	}

	sortOrder := ctx.Query("sort", util.SortAscending)
	search := ctx.Query("search")

	playlists := util.SortPlaylists(snapshot.Playlists, sortOrder)
	playlists = util.FilterPlaylists(playlists, search)

	return ctx.Render("playlists", fiber.Map{
		"DisplayName":    snapshot.DisplayName,
		"ProfilePicture": snapshot.ProfilePicture,
		"UserID":         snapshot.UserID,
		"Playlists":      playlists,
		"Sort":           sortOrder,
		"Search":         search,
	})
}
