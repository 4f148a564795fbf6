package util

// THE AES BITS OF THIS CODE ARE A MODIFIED COPY/PASTE VERSION OF THIS:
// https://github.com/gtank/cryptopasta/blob/master/encrypt.go
import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"io"
	"mixtape/blueprint"
	"sort"
	"strings"
)

// Encrypt encrypts data using 256-bit AES-GCM.  This both hides the content of
// the data and provides a check that it hasn't been altered. Output takes the
// form nonce|ciphertext|tag where '|' indicates concatenation.
func Encrypt(plaintext []byte, key []byte) (ciphertext []byte, err error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	_, err = io.ReadFull(rand.Reader, nonce)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt decrypts data using 256-bit AES-GCM.  This both hides the content of
// the data and provides a check that it hasn't been altered. Expects input
// form nonce|ciphertext|tag where '|' indicates concatenation.
func Decrypt(ciphertext []byte, key []byte) (plaintext []byte, err error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("malformed ciphertext")
	}

	return gcm.Open(nil,
		ciphertext[:gcm.NonceSize()],
		ciphertext[gcm.NonceSize():],
		nil,
	)
}

// SuccessResponse sends back a success http response to the client.
func SuccessResponse(ctx *fiber.Ctx, statusCode int, data interface{}) error {
	return ctx.Status(statusCode).JSON(blueprint.ControllerResult{
		Message: "Request Ok",
		Status:  statusCode,
		Data:    data,
	})
}

// ErrorResponse sends back an error http response to the client.
func ErrorResponse(ctx *fiber.Ctx, statusCode int, err interface{}) error {
	return ctx.Status(statusCode).JSON(blueprint.ControllerError{
		Message: "Error with response",
		Status:  statusCode,
		Error:   err,
	})
}

// RenderError renders the html error page for the browser-facing routes.
func RenderError(ctx *fiber.Ctx, statusCode int, message string) error {
	return ctx.Status(statusCode).Render("error", fiber.Map{
		"Status":  statusCode,
		"Message": message,
	})
}

// sort orders accepted by the playlist views.
const (
	SortAscending  = "a-z"
	SortDescending = "z-a"
)

// SortPlaylists returns a new slice ordered case-insensitively by title.
// Anything other than "z-a" sorts ascending, which is also the default when
// the query param is missing. The input slice is left untouched so the cached
// snapshot stays re-sortable.
func SortPlaylists(playlists []blueprint.UserPlaylist, order string) []blueprint.UserPlaylist {
	sorted := make([]blueprint.UserPlaylist, len(playlists))
	copy(sorted, playlists)
	sort.SliceStable(sorted, func(i, j int) bool {
		a := strings.ToLower(sorted[i].Title)
		b := strings.ToLower(sorted[j].Title)
		if order == SortDescending {
			return a > b
		}
		return a < b
	})
	return sorted
}

// FilterPlaylists returns the subsequence of playlists whose title contains
// the query, case-insensitively. An empty query returns the input unchanged.
func FilterPlaylists(playlists []blueprint.UserPlaylist, query string) []blueprint.UserPlaylist {
	if query == "" {
		return playlists
	}
	q := strings.ToLower(query)
	return lo.Filter(playlists, func(p blueprint.UserPlaylist, _ int) bool {
		return strings.Contains(strings.ToLower(p.Title), q)
	})
}
