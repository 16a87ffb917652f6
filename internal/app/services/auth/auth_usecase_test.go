package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"vitalsync-client/internal/app/config"
	"vitalsync-client/internal/app/contracts"
	"vitalsync-client/internal/app/models"
	"vitalsync-client/internal/app/services/shared/storage"
	"vitalsync-client/internal/pkg/dto/requests"
	"vitalsync-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAuthClient struct {
	mock.Mock
}

func (m *MockAuthClient) Login(ctx context.Context, request *requests.Login) (*contracts.LoginResult, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.LoginResult), args.Error(1)
}

func (m *MockAuthClient) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAuthClient) Check(ctx context.Context) (*contracts.CheckResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.CheckResult), args.Error(1)
}

type noopNotifier struct {
	mu       sync.Mutex
	warnings []string
}

func (n *noopNotifier) Success(message string) {}
func (n *noopNotifier) Warning(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.warnings = append(n.warnings, message)
}
func (n *noopNotifier) Error(message string) {}

func (n *noopNotifier) warningCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.warnings)
}

func testAuthConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Session: config.Session{TTLInDays: 7},
	}
}

func drSession() models.Session {
	return models.Session{
		UserID:      "u-1",
		Email:       "doctor@clinic.test",
		DisplayName: "Dr. Ana",
		Role:        models.RoleDoctor,
	}
}

func TestLoginSuccessPersistsSessionMirror(t *testing.T) {
	client := new(MockAuthClient)
	store := storage.NewMemorySessionStorage()
	uc := NewAuthUsecase(client, store, &noopNotifier{}, testAuthConfig(), zap.NewNop())

	client.On("Login", mock.Anything, mock.Anything).
		Return(&contracts.LoginResult{User: drSession(), Token: "tok-1"}, nil)

	session, err := uc.Login(context.Background(), &requests.Login{
		Email:    "doctor@clinic.test",
		Password: "secret",
	})
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "u-1", session.UserID)
	assert.True(t, uc.IsAuthenticated())
	assert.Equal(t, "tok-1", uc.Token())

	stored, err := store.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "tok-1", stored.Token)
	assert.Equal(t, "u-1", stored.Session.UserID)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), stored.ExpiresAt, time.Minute)
}

func TestLoginValidationRejectsWithoutNetworkCall(t *testing.T) {
	client := new(MockAuthClient)
	uc := NewAuthUsecase(client, storage.NewMemorySessionStorage(), &noopNotifier{}, testAuthConfig(), zap.NewNop())

	_, err := uc.Login(context.Background(), &requests.Login{Email: "not-an-email", Password: "x"})
	require.Error(t, err)
	assert.True(t, exceptions.IsValidationError(err))
	client.AssertNotCalled(t, "Login")
}

func TestLoginFailureLeavesNothingBehind(t *testing.T) {
	client := new(MockAuthClient)
	store := storage.NewMemorySessionStorage()
	uc := NewAuthUsecase(client, store, &noopNotifier{}, testAuthConfig(), zap.NewNop())

	// a prior session exists, then a fresh login attempt is rejected
	client.On("Login", mock.Anything, mock.Anything).
		Return(&contracts.LoginResult{User: drSession(), Token: "tok-1"}, nil).Once()
	_, err := uc.Login(context.Background(), &requests.Login{Email: "doctor@clinic.test", Password: "secret"})
	require.NoError(t, err)

	client.On("Login", mock.Anything, mock.Anything).
		Return(nil, exceptions.ErrInvalidUsernameOrPassword(nil)).Once()
	_, err = uc.Login(context.Background(), &requests.Login{Email: "doctor@clinic.test", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, exceptions.IsAuthError(err))

	assert.False(t, uc.IsAuthenticated())
	assert.Empty(t, uc.Token())
	assert.Nil(t, uc.CurrentSession())

	stored, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestLogoutClearsLocallyEvenWhenServerFails(t *testing.T) {
	client := new(MockAuthClient)
	store := storage.NewMemorySessionStorage()
	notifier := &noopNotifier{}
	uc := NewAuthUsecase(client, store, notifier, testAuthConfig(), zap.NewNop())

	client.On("Login", mock.Anything, mock.Anything).
		Return(&contracts.LoginResult{User: drSession(), Token: "tok-1"}, nil)
	_, err := uc.Login(context.Background(), &requests.Login{Email: "doctor@clinic.test", Password: "secret"})
	require.NoError(t, err)

	client.On("Logout", mock.Anything).Return(exceptions.ErrSendHTTPRequest(assert.AnError))

	require.NoError(t, uc.Logout(context.Background()))
	assert.False(t, uc.IsAuthenticated())
	assert.Equal(t, 1, notifier.warningCount())

	stored, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stored)

	// logging out again is a no-op, not an error
	client.On("Logout", mock.Anything).Return(nil)
	require.NoError(t, uc.Logout(context.Background()))
}

func TestInitializeWithoutMirrorStaysLoggedOut(t *testing.T) {
	client := new(MockAuthClient)
	uc := NewAuthUsecase(client, storage.NewMemorySessionStorage(), &noopNotifier{}, testAuthConfig(), zap.NewNop())

	client.On("Check", mock.Anything).Return(&contracts.CheckResult{Denied: true}, nil)

	session, err := uc.Initialize(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.False(t, uc.IsAuthenticated())
}

func TestInitializeServerDenialClearsMirror(t *testing.T) {
	client := new(MockAuthClient)
	store := storage.NewMemorySessionStorage()
	uc := NewAuthUsecase(client, store, &noopNotifier{}, testAuthConfig(), zap.NewNop())

	require.NoError(t, store.Set(context.Background(), &models.StoredSession{
		Session:   drSession(),
		Token:     "tok-stale",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	client.On("Check", mock.Anything).Return(&contracts.CheckResult{Denied: true}, nil)

	session, err := uc.Initialize(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.False(t, uc.IsAuthenticated())

	stored, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stored, "denied mirror must be cleared")
}

func TestInitializeKeepsCachedSessionWhenServerUnreachable(t *testing.T) {
	client := new(MockAuthClient)
	store := storage.NewMemorySessionStorage()
	uc := NewAuthUsecase(client, store, &noopNotifier{}, testAuthConfig(), zap.NewNop())

	require.NoError(t, store.Set(context.Background(), &models.StoredSession{
		Session:   drSession(),
		Token:     "tok-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	client.On("Check", mock.Anything).Return(nil, exceptions.ErrSendHTTPRequest(assert.AnError))

	session, err := uc.Initialize(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "u-1", session.UserID)
	assert.True(t, uc.IsAuthenticated())
	assert.Equal(t, "tok-1", uc.Token())
}

func TestInitializeServerWinsOverMirror(t *testing.T) {
	client := new(MockAuthClient)
	store := storage.NewMemorySessionStorage()
	uc := NewAuthUsecase(client, store, &noopNotifier{}, testAuthConfig(), zap.NewNop())

	stale := drSession()
	stale.DisplayName = "Old Name"
	require.NoError(t, store.Set(context.Background(), &models.StoredSession{
		Session:   stale,
		Token:     "tok-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	fresh := drSession()
	client.On("Check", mock.Anything).Return(&contracts.CheckResult{User: &fresh}, nil)

	session, err := uc.Initialize(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "Dr. Ana", session.DisplayName)

	stored, err := store.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Dr. Ana", stored.Session.DisplayName)
}

func TestHandleSessionInvalidIsIdempotent(t *testing.T) {
	client := new(MockAuthClient)
	store := storage.NewMemorySessionStorage()
	notifier := &noopNotifier{}
	uc := NewAuthUsecase(client, store, notifier, testAuthConfig(), zap.NewNop())

	client.On("Login", mock.Anything, mock.Anything).
		Return(&contracts.LoginResult{User: drSession(), Token: "tok-1"}, nil)
	_, err := uc.Login(context.Background(), &requests.Login{Email: "doctor@clinic.test", Password: "secret"})
	require.NoError(t, err)

	// several in-flight requests can all come back 401 at once
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uc.HandleSessionInvalid(context.Background())
		}()
	}
	wg.Wait()

	assert.False(t, uc.IsAuthenticated())
	assert.Empty(t, uc.Token())
	assert.Equal(t, 1, notifier.warningCount())

	stored, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestCurrentSessionReturnsACopy(t *testing.T) {
	client := new(MockAuthClient)
	uc := NewAuthUsecase(client, storage.NewMemorySessionStorage(), &noopNotifier{}, testAuthConfig(), zap.NewNop())

	client.On("Login", mock.Anything, mock.Anything).
		Return(&contracts.LoginResult{User: drSession(), Token: "tok-1"}, nil)
	_, err := uc.Login(context.Background(), &requests.Login{Email: "doctor@clinic.test", Password: "secret"})
	require.NoError(t, err)

	session := uc.CurrentSession()
	require.NotNil(t, session)
	session.DisplayName = "mutated"
	assert.Equal(t, "Dr. Ana", uc.CurrentSession().DisplayName)
}
