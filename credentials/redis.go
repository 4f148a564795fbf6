package credentials

import (
	"encoding/json"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"log"
	"mixtape/blueprint"
	"mixtape/util"
	"time"
)

// DefaultCredentialTTL is how long a stored credential outlives its last
// write before the user has to authorize again.
const DefaultCredentialTTL = 30 * 24 * time.Hour

// RedisStore keeps credentials in redis, keyed by the cookie session id.
// Tokens are encrypted at rest with AES-GCM.
type RedisStore struct {
	Client        *redis.Client
	Sessions      *session.Store
	EncryptionKey []byte
	TTL           time.Duration
}

func NewRedisStore(client *redis.Client, sessions *session.Store, encryptionKey []byte) *RedisStore {
	return &RedisStore{
		Client:        client,
		Sessions:      sessions,
		EncryptionKey: encryptionKey,
		TTL:           DefaultCredentialTTL,
	}
}

func (s *RedisStore) key(sessionID string) string {
	return fmt.Sprintf("mixtape:credential:%s", sessionID)
}

func (s *RedisStore) Get(ctx *fiber.Ctx) (*blueprint.Credential, error) {
	sess, err := s.Sessions.Get(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := s.Client.Get(ctx.Context(), s.key(sess.ID())).Bytes()
	if err == redis.Nil {
		return nil, blueprint.ENOCREDENTIAL
	}
	if err != nil {
		log.Printf("\n[credentials][redis][Get] error - could not fetch credential: %v\n", err)
		return nil, err
	}

	decrypted, err := util.Decrypt(raw, s.EncryptionKey)
	if err != nil {
		log.Printf("\n[credentials][redis][Get] error - could not decrypt credential: %v\n", err)
		return nil, err
	}

	var credential blueprint.Credential
	if err := json.Unmarshal(decrypted, &credential); err != nil {
		return nil, err
	}
	return &credential, nil
}

func (s *RedisStore) Set(ctx *fiber.Ctx, credential *blueprint.Credential) error {
	sess, err := s.Sessions.Get(ctx)
	if err != nil {
		return err
	}

	// the session cookie has to reach the browser, otherwise the redis key
	// is orphaned on the very first auth. Save releases the session back to
	// its pool, so grab the id first.
	sessionID := sess.ID()
	if saveErr := sess.Save(); saveErr != nil {
		return saveErr
	}

	serialized, err := json.Marshal(credential)
	if err != nil {
		return err
	}

	encrypted, err := util.Encrypt(serialized, s.EncryptionKey)
	if err != nil {
		log.Printf("\n[credentials][redis][Set] error - could not encrypt credential: %v\n", err)
		return err
	}

	return s.Client.Set(ctx.Context(), s.key(sessionID), encrypted, s.TTL).Err()
}

func (s *RedisStore) Clear(ctx *fiber.Ctx) error {
	sess, err := s.Sessions.Get(ctx)
	if err != nil {
		return err
	}
	return s.Client.Del(ctx.Context(), s.key(sess.ID())).Err()
}
