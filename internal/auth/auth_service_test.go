package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-storefront/internal/auth"
	autherrors "go-storefront/internal/auth/errors"
	authMock "go-storefront/internal/mock/auth"
	sessionMock "go-storefront/internal/mock/session"
	"go-storefront/internal/session"
	"go-storefront/internal/storeapi"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("provider-secret"))
	require.NoError(t, err)
	return tok
}

func TestService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("success_saves_session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		store := session.NewMemoryStore(time.Hour)
		svc := auth.NewService(auth.Deps{Repo: repo, Store: store, Now: func() time.Time { return fixedNow }})

		tok := signToken(t, jwt.MapClaims{"user_id": "42", "exp": fixedNow.Add(time.Hour).Unix()})
		repo.EXPECT().Register(ctx, storeapi.RegisterRequest{
			FirstName: "Ana", LastName: "Lee", UserName: "ana", Email: "ana@example.com", Password: "secret1",
		}).Return(&storeapi.AuthResult{Token: tok, User: storeapi.User{ID: "42", UserName: "ana", Email: "ana@example.com"}}, nil)

		sess, err := svc.SignUp(ctx, auth.SignUpRequest{
			FirstName: "Ana", LastName: "Lee", UserName: "ana", Email: " Ana@Example.com ", Password: "secret1",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, sess.ID)
		assert.Equal(t, "42", sess.User.ID)
		assert.Equal(t, fixedNow.Add(time.Hour).Unix(), sess.TokenExpiresAt.Unix())

		stored, err := store.Get(ctx, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, tok, stored.Token)
	})

	t.Run("backend_rejects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		store := sessionMock.NewMockStore(ctrl)
		svc := auth.NewService(auth.Deps{Repo: repo, Store: store})

		repo.EXPECT().Register(ctx, gomock.Any()).Return(nil, &storeapi.ServerRejection{Op: "register", Status: 409, Message: "Email already registered"})

		_, err := svc.SignUp(ctx, auth.SignUpRequest{Email: "a@b.c", Password: "secret1"})
		var rej *storeapi.ServerRejection
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, "Email already registered", rej.Message)
	})

	t.Run("store_failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := authMock.NewMockRepository(ctrl)
		store := sessionMock.NewMockStore(ctrl)
		svc := auth.NewService(auth.Deps{Repo: repo, Store: store})

		repo.EXPECT().Register(ctx, gomock.Any()).Return(&storeapi.AuthResult{Token: "opaque", User: storeapi.User{ID: "1"}}, nil)
		store.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("redis down"))

		_, err := svc.SignUp(ctx, auth.SignUpRequest{Email: "a@b.c", Password: "secret1"})
		assert.ErrorIs(t, err, autherrors.ErrSessionSaveFailed)
	})
}

func TestService_SignIn(t *testing.T) {
	ctx := context.Background()

	newSvc := func(t *testing.T, resetters ...auth.Resetter) (auth.Service, *session.MemoryStore) {
		ctrl := gomock.NewController(t)
		store := session.NewMemoryStore(time.Hour)
		return auth.NewService(auth.Deps{
			Repo:      authMock.NewMockRepository(ctrl),
			Store:     store,
			Resetters: resetters,
			Now:       func() time.Time { return fixedNow },
		}), store
	}

	t.Run("success_reads_claims", func(t *testing.T) {
		svc, _ := newSvc(t)
		tok := signToken(t, jwt.MapClaims{"sub": "u-7", "role": "admin", "email": "x@y.z", "exp": fixedNow.Add(time.Hour).Unix()})

		sess, err := svc.SignIn(ctx, session.Session{}, auth.SignInRequest{Token: "Bearer " + tok})
		require.NoError(t, err)
		assert.Equal(t, tok, sess.Token)
		assert.Equal(t, "u-7", sess.User.ID)
		assert.Equal(t, "admin", sess.User.Role)
		assert.Equal(t, "x@y.z", sess.User.Email)
	})

	t.Run("numeric_user_id", func(t *testing.T) {
		svc, _ := newSvc(t)
		tok := signToken(t, jwt.MapClaims{"id": 15})

		sess, err := svc.SignIn(ctx, session.Session{}, auth.SignInRequest{Token: tok})
		require.NoError(t, err)
		assert.Equal(t, "15", sess.User.ID)
	})

	t.Run("expired_token", func(t *testing.T) {
		svc, _ := newSvc(t)
		tok := signToken(t, jwt.MapClaims{"user_id": "1", "exp": fixedNow.Add(-time.Minute).Unix()})

		_, err := svc.SignIn(ctx, session.Session{}, auth.SignInRequest{Token: tok})
		assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
	})

	t.Run("garbage_token", func(t *testing.T) {
		svc, _ := newSvc(t)
		_, err := svc.SignIn(ctx, session.Session{}, auth.SignInRequest{Token: "not-a-jwt"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("no_user_id", func(t *testing.T) {
		svc, _ := newSvc(t)
		tok := signToken(t, jwt.MapClaims{"role": "user"})
		_, err := svc.SignIn(ctx, session.Session{}, auth.SignInRequest{Token: tok})
		assert.ErrorIs(t, err, autherrors.ErrMissingUserID)
	})

	t.Run("replaces_previous_session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reset := authMock.NewMockResetter(ctrl)
		svc, store := newSvc(t, reset)

		old := session.Session{ID: "old", Token: "t", User: session.User{ID: "1"}}
		require.NoError(t, store.Save(ctx, old))
		reset.EXPECT().Reset("old")

		tok := signToken(t, jwt.MapClaims{"user_id": "1"})
		sess, err := svc.SignIn(ctx, old, auth.SignInRequest{Token: tok})
		require.NoError(t, err)
		assert.NotEqual(t, "old", sess.ID)

		_, err = store.Get(ctx, "old")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestService_SignOut(t *testing.T) {
	ctx := context.Background()

	t.Run("success_resets_mirrors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sessionMock.NewMockStore(ctrl)
		carts := authMock.NewMockResetter(ctrl)
		wishlists := authMock.NewMockResetter(ctrl)
		svc := auth.NewService(auth.Deps{Repo: authMock.NewMockRepository(ctrl), Store: store, Resetters: []auth.Resetter{carts, wishlists}})

		carts.EXPECT().Reset("s1")
		wishlists.EXPECT().Reset("s1")
		store.EXPECT().Delete(ctx, "s1").Return(nil)

		assert.NoError(t, svc.SignOut(ctx, session.Session{ID: "s1", Token: "t"}))
	})

	t.Run("anonymous_is_noop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sessionMock.NewMockStore(ctrl)
		svc := auth.NewService(auth.Deps{Repo: authMock.NewMockRepository(ctrl), Store: store})

		assert.NoError(t, svc.SignOut(ctx, session.Session{}))
	})
}

func TestService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := auth.NewService(auth.Deps{Repo: authMock.NewMockRepository(ctrl), Store: sessionMock.NewMockStore(ctrl)})

	_, err := svc.Me(session.Session{})
	assert.ErrorIs(t, err, autherrors.ErrNotSignedIn)

	me, err := svc.Me(session.Session{ID: "s", Token: "t", User: session.User{ID: "1", FirstName: "Ana", LastName: "Lee"}})
	require.NoError(t, err)
	assert.Equal(t, "Ana Lee", me.Name)
	assert.Nil(t, me.ExpiresAt)
}
