package auth

import (
	"context"
	"strings"
	"time"

	autherrors "go-storefront/internal/auth/errors"
	"go-storefront/internal/session"
	"go-storefront/internal/storeapi"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_service.go -destination=../mock/auth/auth_service_mock.go -package=mock
type Service interface {
	SignUp(ctx context.Context, req SignUpRequest) (session.Session, error)
	SignIn(ctx context.Context, current session.Session, req SignInRequest) (session.Session, error)
	SignOut(ctx context.Context, sess session.Session) error
	Me(sess session.Session) (AuthResponse, error)
}

type Deps struct {
	Repo   Repository
	Store  session.Store
	Logger *zap.Logger

	// Mirrors reset on sign-out.
	Resetters []Resetter

	Now func() time.Time
}

type service struct {
	repo      Repository
	store     session.Store
	logger    *zap.Logger
	resetters []Resetter
	now       func() time.Time
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("auth repository cannot be nil")
	}
	if deps.Store == nil {
		panic("session store cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &service{
		repo:      deps.Repo,
		store:     deps.Store,
		logger:    deps.Logger.Named("auth.service"),
		resetters: deps.Resetters,
		now:       deps.Now,
	}
}

func (s *service) SignUp(ctx context.Context, req SignUpRequest) (session.Session, error) {
	res, err := s.repo.Register(ctx, storeapi.RegisterRequest{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		UserName:     strings.TrimSpace(req.UserName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		MobileNumber: strings.TrimSpace(req.MobileNumber),
		Password:     req.Password,
	})
	if err != nil {
		s.logger.Warn("register failed", zap.String("email", req.Email), zap.Error(err))
		return session.Session{}, err
	}

	sess := session.Session{
		ID:    uuid.NewString(),
		Token: res.Token,
		User: session.User{
			ID:           res.User.ID.String(),
			UserName:     res.User.UserName,
			FirstName:    res.User.FirstName,
			LastName:     res.User.LastName,
			Email:        res.User.Email,
			MobileNumber: res.User.MobileNumber,
			Role:         res.User.Role,
		},
		CreatedAt: s.now(),
	}
	// the backend's token may carry an expiry even when the user came back in the body
	if c, err := parseClaims(res.Token); err == nil {
		sess.TokenExpiresAt = c.ExpiresAt
		if sess.User.ID == "" {
			sess.User.ID = c.UserID
		}
	}

	if err := s.save(ctx, sess); err != nil {
		return session.Session{}, err
	}
	s.logger.Info("user signed up", zap.String("user_id", sess.User.ID), zap.String("session_id", sess.ID))
	return sess, nil
}

// SignIn stores a provider-issued token in a fresh session. Any session the
// browser already had is dropped first.
func (s *service) SignIn(ctx context.Context, current session.Session, req SignInRequest) (session.Session, error) {
	token := strings.TrimSpace(strings.TrimPrefix(req.Token, "Bearer "))
	c, err := parseClaims(token)
	if err != nil {
		return session.Session{}, err
	}
	if c.UserID == "" {
		return session.Session{}, autherrors.ErrMissingUserID
	}
	if !c.ExpiresAt.IsZero() && s.now().After(c.ExpiresAt) {
		return session.Session{}, autherrors.ErrTokenExpired
	}

	if current.ID != "" {
		if err := s.SignOut(ctx, current); err != nil {
			s.logger.Warn("drop previous session failed", zap.String("session_id", current.ID), zap.Error(err))
		}
	}

	sess := session.Session{
		ID:    uuid.NewString(),
		Token: token,
		User: session.User{
			ID:        c.UserID,
			Role:      c.Role,
			Email:     pick(req.Email, c.Email),
			FirstName: pick(req.Name, c.Name),
		},
		TokenExpiresAt: c.ExpiresAt,
		CreatedAt:      s.now(),
	}
	if err := s.save(ctx, sess); err != nil {
		return session.Session{}, err
	}
	s.logger.Info("user signed in", zap.String("user_id", sess.User.ID), zap.String("session_id", sess.ID))
	return sess, nil
}

// SignOut forgets the session and everything mirrored for it. Responses
// still in flight for the old session are discarded by the mirrors.
func (s *service) SignOut(ctx context.Context, sess session.Session) error {
	if sess.ID == "" {
		return nil
	}
	for _, r := range s.resetters {
		r.Reset(sess.ID)
	}
	if err := s.store.Delete(ctx, sess.ID); err != nil {
		s.logger.Error("delete session failed", zap.String("session_id", sess.ID), zap.Error(err))
		return err
	}
	s.logger.Info("user signed out", zap.String("user_id", sess.User.ID), zap.String("session_id", sess.ID))
	return nil
}

func (s *service) Me(sess session.Session) (AuthResponse, error) {
	if !sess.Authenticated() {
		return AuthResponse{}, autherrors.ErrNotSignedIn
	}

	res := AuthResponse{
		ID:       sess.User.ID,
		UserName: sess.User.UserName,
		Name:     strings.TrimSpace(sess.User.FirstName + " " + sess.User.LastName),
		Email:    sess.User.Email,
		Role:     sess.User.Role,
	}
	if !sess.TokenExpiresAt.IsZero() {
		exp := sess.TokenExpiresAt
		res.ExpiresAt = &exp
	}
	return res, nil
}

func (s *service) save(ctx context.Context, sess session.Session) error {
	if err := s.store.Save(ctx, sess); err != nil {
		s.logger.Error("save session failed", zap.String("session_id", sess.ID), zap.Error(err))
		return autherrors.ErrSessionSaveFailed
	}
	return nil
}

func pick(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
