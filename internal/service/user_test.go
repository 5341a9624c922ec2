package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/SviatSloboda/MightyPC-sub001/internal/model"
)

func TestRegisterWithPassword(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	s := Users{Store: store}

	pub, err := s.RegisterWithPassword(ctx, "a@b.com", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, pub.ID)
	require.Equal(t, "a@b.com", pub.Email)
	require.Equal(t, model.RoleCustomer, pub.Role)

	u := store.users[pub.ID]
	require.NotEqual(t, []byte("hunter22"), u.Password, "password is stored hashed")
	require.NotNil(t, u.Basket)
	require.NotNil(t, u.Orders)
	require.Empty(t, u.Basket)
	require.Empty(t, u.Orders)
}

func TestRegisterWithPasswordInvalidEmail(t *testing.T) {
	s := Users{Store: newFakeUserStore()}

	_, err := s.RegisterWithPassword(context.Background(), "not-an-email", "pw")
	require.True(t, errors.Is(err, ErrInvalidEmail))
}

func TestRegisterWithPasswordEmailTaken(t *testing.T) {
	ctx := context.Background()
	s := Users{Store: newFakeUserStore()}

	_, err := s.RegisterWithPassword(ctx, "a@b.com", "pw1")
	require.NoError(t, err)

	_, err = s.RegisterWithPassword(ctx, "a@b.com", "pw2")
	require.True(t, errors.Is(err, ErrEmailTaken))
}

func TestVerifyPassword(t *testing.T) {
	ctx := context.Background()
	s := Users{Store: newFakeUserStore()}

	pub, err := s.RegisterWithPassword(ctx, "a@b.com", "hunter22")
	require.NoError(t, err)

	u, err := s.VerifyPassword(ctx, "a@b.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, pub.ID, u.ID)

	_, err = s.VerifyPassword(ctx, "a@b.com", "wrong")
	require.True(t, errors.Is(err, ErrInvalidCredentials))

	_, err = s.VerifyPassword(ctx, "nobody@b.com", "hunter22")
	require.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestLoginOrCreate(t *testing.T) {
	ctx := context.Background()
	s := Users{Store: newFakeUserStore()}

	created, err := s.LoginOrCreate(ctx, "oauth@b.com", "https://img.test/me.png")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, model.RoleCustomer, created.Role)
	require.Equal(t, "https://img.test/me.png", created.PhotoURL)

	again, err := s.LoginOrCreate(ctx, "oauth@b.com", "https://img.test/other.png")
	require.NoError(t, err)
	require.Equal(t, created.ID, again.ID, "second login finds the existing account")
	require.Equal(t, created.PhotoURL, again.PhotoURL)
}

func TestLoginOrCreateNoEmail(t *testing.T) {
	s := Users{Store: newFakeUserStore()}

	_, err := s.LoginOrCreate(context.Background(), "", "")
	require.True(t, errors.Is(err, ErrNoEmailClaim))
}

func TestUserDeleteCascades(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore(model.User{ID: "u1", Email: "a@b.com", Basket: []model.Item{
		{ID: "i1", Price: mustPrice("120")},
	}})
	s := Users{Store: store}
	b := Basket{Store: store}

	require.NoError(t, s.Delete(ctx, "u1"))

	_, err := s.Get(ctx, "u1")
	require.True(t, errors.Is(err, ErrUserNotFound))

	_, err = b.Items(ctx, "u1")
	require.True(t, errors.Is(err, ErrUserNotFound), "basket goes with the account")

	require.True(t, errors.Is(s.Delete(ctx, "u1"), ErrUserNotFound))
}

func TestAttachPhoto(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore(model.User{ID: "u1", Email: "a@b.com"})
	s := Users{Store: store}

	require.NoError(t, s.AttachPhoto(ctx, "u1", "https://img.test/me.png"))
	require.Equal(t, "https://img.test/me.png", store.users["u1"].PhotoURL)

	err := s.AttachPhoto(ctx, "missing", "https://img.test/me.png")
	require.True(t, errors.Is(err, ErrUserNotFound))
}

func TestStoreSessionToken(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore(model.User{ID: "u1", Email: "a@b.com"})
	s := Users{Store: store}

	require.NoError(t, s.StoreSessionToken(ctx, "u1", []byte("hash")))
	require.Equal(t, []byte("hash"), store.users["u1"].SessionToken)

	require.NoError(t, s.StoreSessionToken(ctx, "u1", nil))
	require.Nil(t, store.users["u1"].SessionToken, "nil hash invalidates the session")
}
