package credentials_test

import (
	"encoding/json"
	"errors"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mixtape/blueprint"
	"mixtape/credentials"
	"net/http"
	"testing"
	"time"
)

func newRedisApp(t *testing.T) (*fiber.App, *miniredis.Miniredis, *credentials.RedisStore) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	sessions := session.New()
	store := credentials.NewRedisStore(client, sessions, []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
	app := fiber.New()

	app.Get("/set", func(ctx *fiber.Ctx) error {
		credential := &blueprint.Credential{
			AccessToken:  "access",
			RefreshToken: "refresh",
			Expiry:       time.Now().Add(time.Hour).Truncate(time.Second),
			Scope:        blueprint.PlaylistReadScope,
		}
		if err := store.Set(ctx, credential); err != nil {
			return ctx.SendStatus(http.StatusInternalServerError)
		}
		return ctx.SendStatus(http.StatusOK)
	})

	app.Get("/get", func(ctx *fiber.Ctx) error {
		credential, err := store.Get(ctx)
		if errors.Is(err, blueprint.ENOCREDENTIAL) {
			return ctx.SendStatus(http.StatusNotFound)
		}
		if err != nil {
			return ctx.SendStatus(http.StatusInternalServerError)
		}
		return ctx.JSON(credential)
	})

	app.Get("/clear", func(ctx *fiber.Ctx) error {
		if err := store.Clear(ctx); err != nil {
			return ctx.SendStatus(http.StatusInternalServerError)
		}
		return ctx.SendStatus(http.StatusOK)
	})

	return app, mr, store
}

func TestRedisStoreRoundtrip(t *testing.T) {
	app, mr, _ := newRedisApp(t)

	res, _ := get(t, app, "/set", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	cookie := res.Header.Get("Set-Cookie")
	require.NotEmpty(t, cookie)

	res, body := get(t, app, "/get", cookie)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var credential blueprint.Credential
	require.NoError(t, json.Unmarshal(body, &credential))
	assert.Equal(t, "access", credential.AccessToken)
	assert.Equal(t, "refresh", credential.RefreshToken)
	assert.Equal(t, blueprint.PlaylistReadScope, credential.Scope)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Contains(t, keys[0], "mixtape:credential:")
}

func TestRedisStoreMissesWithoutCredential(t *testing.T) {
	app, _, _ := newRedisApp(t)

	res, _ := get(t, app, "/get", "")
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

// tokens are encrypted at rest, so a stored value never round-trips as
// plaintext and a corrupted one fails closed instead of leaking garbage.
func TestRedisStoreStoresTokensEncrypted(t *testing.T) {
	app, mr, _ := newRedisApp(t)

	res, _ := get(t, app, "/set", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	cookie := res.Header.Get("Set-Cookie")

	keys := mr.Keys()
	require.Len(t, keys, 1)
	stored, err := mr.Get(keys[0])
	require.NoError(t, err)
	assert.NotContains(t, stored, "access")
	assert.NotContains(t, stored, "refresh")

	require.NoError(t, mr.Set(keys[0], "tampered"))
	res, _ = get(t, app, "/get", cookie)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
}

func TestRedisStoreClear(t *testing.T) {
	app, mr, _ := newRedisApp(t)

	res, _ := get(t, app, "/set", "")
	cookie := res.Header.Get("Set-Cookie")

	res, _ = get(t, app, "/clear", cookie)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, mr.Keys())

	res, _ = get(t, app, "/get", cookie)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestRedisStoreWritesWithExpiry(t *testing.T) {
	app, mr, store := newRedisApp(t)

	res, _ := get(t, app, "/set", "")
	require.Equal(t, http.StatusOK, res.StatusCode)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Equal(t, store.TTL, mr.TTL(keys[0]))
}
