package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edusphere/lms-client/internal/dto"
	"github.com/edusphere/lms-client/internal/models"
	"github.com/edusphere/lms-client/internal/session"
	"github.com/edusphere/lms-client/internal/store"
	appErrors "github.com/edusphere/lms-client/pkg/errors"
)

type mockAuthAPI struct {
	loginResp    *dto.LoginResponse
	loginErr     error
	loginCalls   int
	registerResp *dto.RegisterResponse
	profileResp  *dto.UserResponse
	logoutCalls  int
	logoutErr    error
	updatedID    int
}

func (m *mockAuthAPI) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	m.loginCalls++
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return m.loginResp, nil
}

func (m *mockAuthAPI) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	return m.registerResp, nil
}

func (m *mockAuthAPI) Logout(ctx context.Context) error {
	m.logoutCalls++
	return m.logoutErr
}

func (m *mockAuthAPI) CurrentUser(ctx context.Context) (*dto.UserResponse, error) {
	return m.profileResp, nil
}

func (m *mockAuthAPI) UpdateUser(ctx context.Context, userID int, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	m.updatedID = userID
	return m.profileResp, nil
}

func newSessionStore(t *testing.T) *session.FileStore {
	t.Helper()
	sessions, err := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return sessions
}

func TestAuthServiceLoginInstallsAndPersistsSession(t *testing.T) {
	api := &mockAuthAPI{loginResp: &dto.LoginResponse{
		Token: "token-abc",
		User:  models.User{ID: 7, Username: "alice", Role: models.RoleStudent},
	}}
	authStore := store.NewAuth()
	sessions := newSessionStore(t)
	svc := NewAuthService(api, authStore, sessions, validator.New(), zap.NewNop())

	user, err := svc.Login(context.Background(), dto.LoginRequest{Account: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)

	assert.True(t, authStore.IsLoggedIn())
	assert.Equal(t, "token-abc", authStore.Token())
	assert.False(t, authStore.Loading())

	rec, err := sessions.Load()
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "token-abc", rec.Token)
	assert.Equal(t, "alice", rec.User.Username)
}

func TestAuthServiceLoginValidatesBeforeNetwork(t *testing.T) {
	api := &mockAuthAPI{}
	svc := NewAuthService(api, store.NewAuth(), newSessionStore(t), validator.New(), zap.NewNop())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Account: "alice"})
	require.Error(t, err)
	assert.Zero(t, api.loginCalls)
}

func TestAuthServiceLoginFailureRecordsServerMessage(t *testing.T) {
	api := &mockAuthAPI{loginErr: appErrors.FromStatus(401, "bad credentials")}
	authStore := store.NewAuth()
	svc := NewAuthService(api, authStore, newSessionStore(t), validator.New(), zap.NewNop())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Account: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, "bad credentials", authStore.Err())
	assert.False(t, authStore.IsLoggedIn())
}

func TestAuthServiceHydrateRestoresSession(t *testing.T) {
	sessions := newSessionStore(t)
	require.NoError(t, sessions.Save(session.Record{
		Token: "token-abc",
		User:  &models.User{ID: 7, Username: "alice"},
	}))
	authStore := store.NewAuth()
	svc := NewAuthService(&mockAuthAPI{}, authStore, sessions, validator.New(), zap.NewNop())

	require.NoError(t, svc.Hydrate())
	assert.True(t, authStore.IsLoggedIn())
	assert.Equal(t, 7, authStore.UserID())
}

func TestAuthServiceHydrateWithoutRecordStaysLoggedOut(t *testing.T) {
	authStore := store.NewAuth()
	svc := NewAuthService(&mockAuthAPI{}, authStore, newSessionStore(t), validator.New(), zap.NewNop())

	require.NoError(t, svc.Hydrate())
	assert.False(t, authStore.IsLoggedIn())
}

func TestAuthServiceLogoutTearsDownDespiteServerError(t *testing.T) {
	api := &mockAuthAPI{logoutErr: appErrors.ErrTransport}
	sessions := newSessionStore(t)
	require.NoError(t, sessions.Save(session.Record{Token: "token-abc", User: &models.User{ID: 7}}))
	authStore := store.NewAuth()
	authStore.SetSession("token-abc", models.User{ID: 7})
	svc := NewAuthService(api, authStore, sessions, validator.New(), zap.NewNop())

	svc.Logout(context.Background())

	assert.Equal(t, 1, api.logoutCalls)
	assert.False(t, authStore.IsLoggedIn())
	rec, err := sessions.Load()
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestAuthServiceForceLogoutIdempotent(t *testing.T) {
	sessions := newSessionStore(t)
	require.NoError(t, sessions.Save(session.Record{Token: "token-abc", User: &models.User{ID: 7}}))
	authStore := store.NewAuth()
	authStore.SetSession("token-abc", models.User{ID: 7})
	svc := NewAuthService(&mockAuthAPI{}, authStore, sessions, validator.New(), zap.NewNop())

	svc.ForceLogout()
	assert.False(t, authStore.IsLoggedIn())

	// second 401 arriving from an overlapping request finds nothing to do
	svc.ForceLogout()
	assert.False(t, authStore.IsLoggedIn())
}

func TestAuthServiceUpdateProfileTargetsViewerAndPersists(t *testing.T) {
	bio := "new bio"
	api := &mockAuthAPI{profileResp: &dto.UserResponse{
		User: models.User{ID: 7, Username: "alice", Bio: bio},
	}}
	sessions := newSessionStore(t)
	authStore := store.NewAuth()
	authStore.SetSession("token-abc", models.User{ID: 7, Username: "alice"})
	svc := NewAuthService(api, authStore, sessions, validator.New(), zap.NewNop())

	user, err := svc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, 7, api.updatedID)
	assert.Equal(t, bio, user.Bio)
	assert.Equal(t, bio, authStore.CurrentUser().Bio)

	rec, err := sessions.Load()
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, bio, rec.User.Bio)
}

func TestAuthServiceFetchCurrentUserSyncsPersistedCopy(t *testing.T) {
	api := &mockAuthAPI{profileResp: &dto.UserResponse{
		User: models.User{ID: 7, Username: "alice", Bio: "updated"},
	}}
	sessions := newSessionStore(t)
	authStore := store.NewAuth()
	authStore.SetSession("token-abc", models.User{ID: 7, Username: "alice"})
	svc := NewAuthService(api, authStore, sessions, validator.New(), zap.NewNop())

	user, err := svc.FetchCurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "updated", user.Bio)
	assert.Equal(t, "updated", authStore.CurrentUser().Bio)

	rec, err := sessions.Load()
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "token-abc", rec.Token)
	assert.Equal(t, "updated", rec.User.Bio)
}
