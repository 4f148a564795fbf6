package blueprint

import (
	"errors"
)

// PlaylistReadScope is the only scope we request from spotify. The app
// reads the user's playlists and nothing else.
const PlaylistReadScope = "playlist-read-private"

// perhaps have a different Error type declarations somewhere. For now, be here

var (
	EUPSTREAMTIMEOUT = errors.New("EUPSTREAMTIMEOUT")
	EUPSTREAMERROR   = errors.New("EUPSTREAMERROR")
	EUNKNOWNUSER     = errors.New("EUNKNOWNUSER")
	EINVALIDAUTHCODE = errors.New("EINVALIDAUTHCODE")
	ENOCREDENTIAL    = errors.New("ENOCREDENTIAL")
)

// ControllerError represents a valid error response
type ControllerError struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Error   interface{} `json:"error,omitempty"`
}

// ControllerResult represents a valid success response
type ControllerResult struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Status  int         `json:"status"`
}

// LoggerOptions carries request-scoped metadata attached to sentry events.
type LoggerOptions struct {
	RequestID string
	UserID    string
	AddTrace  bool
	Error     error
}
