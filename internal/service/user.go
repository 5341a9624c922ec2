package service

import (
	"context"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/SviatSloboda/MightyPC-sub001/internal/model"
)

// Users owns the User aggregate: registration, login, profile photo and
// account deletion. Deleting a user cascades to the embedded basket and
// orders since they live in the same document.
type Users struct {
	Store UserStore
}

// PublicUser is the projection safe to return to clients.
type PublicUser struct {
	ID        string             `json:"id"`
	Email     string             `json:"email"`
	Role      string             `json:"role"`
	PhotoURL  string             `json:"photoUrl"`
	CreatedAt primitive.DateTime `json:"createdAt"`
}

func publicUser(u model.User) PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		PhotoURL:  u.PhotoURL,
		CreatedAt: u.CreatedAt,
	}
}

func (s Users) RegisterWithPassword(ctx context.Context, email string, rawPassword string) (PublicUser, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return PublicUser{}, errors.Wrapf(ErrInvalidEmail, "cannot parse email: %s", email)
	}
	password, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return PublicUser{}, errors.Wrap(err, "error generating bcrypt from password")
	}

	u := model.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  password,
		Role:      model.RoleCustomer,
		Basket:    []model.Item{},
		Orders:    []model.Order{},
		CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
	}
	if err = s.Store.UserInsert(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(errors.Cause(err)) {
			return PublicUser{}, errors.Wrapf(ErrEmailTaken, "email: %s", email)
		}
		return PublicUser{}, err
	}
	return publicUser(u), nil
}

// VerifyPassword checks the credentials and returns the matching user.
func (s Users) VerifyPassword(ctx context.Context, email string, rawPassword string) (model.User, error) {
	u, err := s.Store.UserFindByEmail(ctx, email)
	if err != nil {
		return model.User{}, errors.Wrapf(ErrInvalidCredentials, "no User with email: %s", email)
	}
	if err = bcrypt.CompareHashAndPassword(u.Password, []byte(rawPassword)); err != nil {
		return model.User{}, errors.Wrapf(ErrInvalidCredentials, "password mismatch for User with email: %s", email)
	}
	return u, nil
}

// LoginOrCreate takes an externally-verified identity claim and returns the
// matching user, creating one on first login. A claim without a usable email
// fails with ErrNoEmailClaim.
func (s Users) LoginOrCreate(ctx context.Context, email string, photoURL string) (model.User, error) {
	if email == "" {
		return model.User{}, ErrNoEmailClaim
	}
	u, err := s.Store.UserFindByEmail(ctx, email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, err
	}

	u = model.User{
		ID:        uuid.NewString(),
		Email:     email,
		Role:      model.RoleCustomer,
		PhotoURL:  photoURL,
		Basket:    []model.Item{},
		Orders:    []model.Order{},
		CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
	}
	if err = s.Store.UserInsert(ctx, u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (s Users) Get(ctx context.Context, userID string) (PublicUser, error) {
	u, err := s.Store.UserFindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return PublicUser{}, errors.Wrapf(ErrUserNotFound, "no User with ID: %s", userID)
		}
		return PublicUser{}, err
	}
	return publicUser(u), nil
}

func (s Users) Delete(ctx context.Context, userID string) error {
	err := s.Store.UserDelete(ctx, userID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return errors.Wrapf(ErrUserNotFound, "no User with ID: %s", userID)
	}
	return err
}

func (s Users) AttachPhoto(ctx context.Context, userID string, url string) error {
	u, err := s.Store.UserFindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return errors.Wrapf(ErrUserNotFound, "no User with ID: %s", userID)
		}
		return err
	}
	u.PhotoURL = url
	return s.Store.UserReplace(ctx, u)
}

// StoreSessionToken persists the hash of the active session token. A nil
// hash invalidates the session.
func (s Users) StoreSessionToken(ctx context.Context, userID string, tokenHash []byte) error {
	u, err := s.Store.UserFindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return errors.Wrapf(ErrUserNotFound, "no User with ID: %s", userID)
		}
		return err
	}
	u.SessionToken = tokenHash
	return s.Store.UserReplace(ctx, u)
}
