package blueprint_test

import (
	"github.com/stretchr/testify/assert"
	"golang.org/x/oauth2"
	"mixtape/blueprint"
	"testing"
	"time"
)

func TestCredentialValidity(t *testing.T) {
	cases := []struct {
		name       string
		credential *blueprint.Credential
		want       bool
	}{
		{"nil credential", nil, false},
		{"no access token", &blueprint.Credential{}, false},
		{"unexpired", &blueprint.Credential{AccessToken: "a", Expiry: time.Now().Add(time.Hour)}, true},
		{"no expiry set", &blueprint.Credential{AccessToken: "a"}, true},
		{"expired with refresh token", &blueprint.Credential{AccessToken: "a", RefreshToken: "r", Expiry: time.Now().Add(-time.Hour)}, true},
		{"expired without refresh token", &blueprint.Credential{AccessToken: "a", Expiry: time.Now().Add(-time.Hour)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.credential.Valid())
		})
	}
}

func TestCredentialTokenRoundtrip(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	credential := blueprint.NewCredential(&oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Expiry:       expiry,
	})

	assert.Equal(t, blueprint.PlaylistReadScope, credential.Scope)

	token := credential.Token()
	assert.Equal(t, "access", token.AccessToken)
	assert.Equal(t, "refresh", token.RefreshToken)
	assert.Equal(t, expiry, token.Expiry)
	assert.Equal(t, "Bearer", token.TokenType)
}
