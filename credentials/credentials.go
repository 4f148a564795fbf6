// Package credentials stores the OAuth credential of the browser session's
// spotify user. Two backends exist: the cookie session itself (single
// process) and redis (survives restarts, works behind multiple processes).
// The backend is picked by the CREDENTIAL_STORE config at startup.
package credentials

import (
	"github.com/gofiber/fiber/v2"
	"mixtape/blueprint"
)

// Store is the credential repository the auth gate and the controllers talk
// to. Implementations are keyed off the request's session, so a credential
// is only ever visible to the browser session that created it.
type Store interface {
	Get(ctx *fiber.Ctx) (*blueprint.Credential, error)
	Set(ctx *fiber.Ctx, credential *blueprint.Credential) error
	Clear(ctx *fiber.Ctx) error
}
