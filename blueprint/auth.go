package blueprint

import (
	"golang.org/x/oauth2"
	"time"
)

// Credential is the OAuth token material for the session's spotify user.
// It serializes to JSON so it can live inside a cookie session or in redis.
type Credential struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	Expiry       time.Time `json:"expiry"`
	Scope        string    `json:"scope,omitempty"`
}

// NewCredential builds a Credential from the token returned by the
// authorization-code exchange.
func NewCredential(token *oauth2.Token) *Credential {
	return &Credential{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
		Scope:        PlaylistReadScope,
	}
}

// Token converts the credential back into the oauth2 token the spotify
// client consumes. The client's token source refreshes it when expired.
func (c *Credential) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		Expiry:       c.Expiry,
		TokenType:    "Bearer",
	}
}

// Valid reports whether the credential can still be used against spotify,
// either directly or through a refresh.
func (c *Credential) Valid() bool {
	if c == nil || c.AccessToken == "" {
		return false
	}
	if c.Expiry.IsZero() || time.Now().Before(c.Expiry) {
		return true
	}
	// expired, but a refresh token lets the token source mint a new one
	return c.RefreshToken != ""
}
