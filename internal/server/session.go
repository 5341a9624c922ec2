package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// createSessionTokenAndHash signs a session JWT for userID and returns it
// together with the bcrypt hash that gets stored on the user document.
func (s Server) createSessionTokenAndHash(userID string) (string, []byte, error) {
	salt := make([]byte, 64)
	if _, err := rand.Read(salt); err != nil {
		return "", nil, errors.Wrapf(err, "error generating salt for session token for UserID: %s", userID)
	}
	t, err := jwt.NewBuilder().
		Subject(userID).
		Issuer("mightypc-backend").
		JwtID(uuid.NewString()).
		IssuedAt(time.Now()).
		Expiration(time.Now().AddDate(0, 0, 30)).
		Claim("s", base64.StdEncoding.EncodeToString(salt)).
		Build()
	if err != nil {
		return "", nil, errors.Wrapf(err, "error creating session token for UserID: %s", userID)
	}
	lt, err := jwt.Sign(t, jwt.WithKey(jwa.HS256, s.AuthSecretKey))
	if err != nil {
		return "", nil, errors.Wrapf(err, "error signing session token for UserID: %s", userID)
	}
	tokenHash := sha256.Sum256(lt)
	bcryptTokenHash, err := bcrypt.GenerateFromPassword(tokenHash[:], bcrypt.DefaultCost-3)
	if err != nil {
		return "", nil, errors.Wrapf(err, "error generating bcrypt from session token hash for UserID: %s", userID)
	}
	return string(lt), bcryptTokenHash, nil
}
