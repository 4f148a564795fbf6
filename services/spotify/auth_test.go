package spotify_test

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/url"
	"testing"
)

func TestAuthURLCarriesScopeAndDialog(t *testing.T) {
	service := newTestService()

	authURL := service.AuthURL("state-nonce")
	parsed, err := url.Parse(authURL)
	require.NoError(t, err)

	assert.Equal(t, "accounts.spotify.com", parsed.Host)
	query := parsed.Query()
	assert.Equal(t, "test-client-id", query.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/callback", query.Get("redirect_uri"))
	assert.Equal(t, "playlist-read-private", query.Get("scope"))
	assert.Equal(t, "true", query.Get("show_dialog"))
	assert.Equal(t, "state-nonce", query.Get("state"))
}

func TestAuthURLIsStableForAState(t *testing.T) {
	service := newTestService()
	// the gate may fire on every request; the target must not drift
	assert.Equal(t, service.AuthURL("s"), service.AuthURL("s"))
}
