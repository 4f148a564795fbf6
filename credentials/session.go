package credentials

import (
	"encoding/json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"log"
	"mixtape/blueprint"
)

const sessionKey = "credential"

// SessionStore keeps the credential JSON inside the cookie session itself.
// This is the default backend and mirrors what a single-process deployment
// needs: the credential survives across requests for the same browser
// session and dies with the process.
type SessionStore struct {
	Sessions *session.Store
}

func NewSessionStore(sessions *session.Store) *SessionStore {
	return &SessionStore{Sessions: sessions}
}

func (s *SessionStore) Get(ctx *fiber.Ctx) (*blueprint.Credential, error) {
	sess, err := s.Sessions.Get(ctx)
	if err != nil {
		log.Printf("\n[credentials][session][Get] error - could not open session: %v\n", err)
		return nil, err
	}

	raw, ok := sess.Get(sessionKey).(string)
	if !ok || raw == "" {
		return nil, blueprint.ENOCREDENTIAL
	}

	var credential blueprint.Credential
	if err := json.Unmarshal([]byte(raw), &credential); err != nil {
		log.Printf("\n[credentials][session][Get] error - could not deserialize credential: %v\n", err)
		return nil, err
	}
	return &credential, nil
}

func (s *SessionStore) Set(ctx *fiber.Ctx, credential *blueprint.Credential) error {
	sess, err := s.Sessions.Get(ctx)
	if err != nil {
		return err
	}

	serialized, err := json.Marshal(credential)
	if err != nil {
		log.Printf("\n[credentials][session][Set] error - could not serialize credential: %v\n", err)
		return err
	}

	sess.Set(sessionKey, string(serialized))
	return sess.Save()
}

func (s *SessionStore) Clear(ctx *fiber.Ctx) error {
	sess, err := s.Sessions.Get(ctx)
	if err != nil {
		return err
	}
	sess.Delete(sessionKey)
	return sess.Save()
}
