package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edusphere/lms-client/internal/dto"
	"github.com/edusphere/lms-client/internal/models"
	"github.com/edusphere/lms-client/internal/session"
	"github.com/edusphere/lms-client/internal/store"
	appErrors "github.com/edusphere/lms-client/pkg/errors"
)

type authAPI interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, userID int, req dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

// AuthService owns the session lifecycle: hydrate at startup, login/logout,
// and the forced teardown triggered by a 401 on any request.
type AuthService struct {
	api       authAPI
	store     *store.Auth
	sessions  *session.FileStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(api authAPI, st *store.Auth, sessions *session.FileStore, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{api: api, store: st, sessions: sessions, validator: validate, logger: logger}
}

// Hydrate restores the persisted session into the store. A missing or expired
// record leaves the store logged out.
func (s *AuthService) Hydrate() error {
	rec, err := s.sessions.Load()
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrTransport.Code, 0, "failed to restore session")
	}
	if rec == nil {
		return nil
	}
	s.store.SetSession(rec.Token, *rec.User)
	return nil
}

// Login authenticates, persists the session, and installs it in the store.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.Login(ctx, req)
	if err != nil {
		s.store.SetError(failMessage(err, "login failed"))
		return nil, err
	}

	if err := s.sessions.Save(session.Record{Token: resp.Token, User: &resp.User}); err != nil {
		s.logger.Warn("failed to persist session", zap.Error(err))
	}
	s.store.SetSession(resp.Token, resp.User)

	user := resp.User
	return &user, nil
}

// Register creates an account. It does not log the new account in.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}

	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.Register(ctx, req)
	if err != nil {
		s.store.SetError(failMessage(err, "registration failed"))
		return nil, err
	}
	user := resp.User
	return &user, nil
}

// FetchCurrentUser refreshes the profile behind the current token and keeps
// the persisted copy in sync.
func (s *AuthService) FetchCurrentUser(ctx context.Context) (*models.User, error) {
	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to load profile"))
		return nil, err
	}

	s.store.SetUser(resp.User)
	if err := s.sessions.Save(session.Record{Token: s.store.Token(), User: &resp.User}); err != nil {
		s.logger.Warn("failed to persist session", zap.Error(err))
	}
	user := resp.User
	return &user, nil
}

// UpdateProfile patches the viewer's own profile and keeps the store and the
// persisted session in sync with the server's record.
func (s *AuthService) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}

	s.store.StartWork()
	defer s.store.FinishWork()
	s.store.ClearError()

	resp, err := s.api.UpdateUser(ctx, s.store.UserID(), req)
	if err != nil {
		s.store.SetError(failMessage(err, "failed to update profile"))
		return nil, err
	}

	s.store.SetUser(resp.User)
	if err := s.sessions.Save(session.Record{Token: s.store.Token(), User: &resp.User}); err != nil {
		s.logger.Warn("failed to persist session", zap.Error(err))
	}
	user := resp.User
	return &user, nil
}

// Logout notifies the server best-effort, then clears the durable record and
// the store.
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.logger.Debug("server logout failed", zap.Error(err))
	}
	s.teardown()
}

// ForceLogout is the 401 hook: it tears the session down without calling the
// server (the token is already dead). Safe to invoke from overlapping
// requests; only the first live teardown does anything.
func (s *AuthService) ForceLogout() {
	if s.teardown() {
		s.logger.Info("session invalidated by server")
	}
}

func (s *AuthService) teardown() bool {
	cleared, err := s.sessions.Clear()
	if err != nil {
		s.logger.Warn("failed to clear persisted session", zap.Error(err))
	}
	live := s.store.Logout()
	return cleared || live
}
