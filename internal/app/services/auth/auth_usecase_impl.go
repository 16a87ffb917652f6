package auth

import (
	"context"
	"sync"
	"time"

	"vitalsync-client/internal/app/config"
	"vitalsync-client/internal/app/contracts"
	"vitalsync-client/internal/app/models"
	"vitalsync-client/internal/pkg/constvars"
	"vitalsync-client/internal/pkg/dto/requests"
	"vitalsync-client/internal/pkg/exceptions"
	"vitalsync-client/internal/pkg/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"
)

// authUsecase owns the session state machine and the persisted mirror.
// Operations (login, logout, initialize) are serialized by opMu so a
// login and a startup validation can never interleave; stateMu guards
// the observable state and is never held across network calls.
type authUsecase struct {
	opMu    sync.Mutex
	stateMu sync.Mutex

	state   State
	session *models.Session
	token   string

	AuthClient     contracts.AuthClient
	SessionStorage contracts.SessionStorage
	Notifier       contracts.Notifier
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
	Validate       *validator.Validate
}

func NewAuthUsecase(
	authClient contracts.AuthClient,
	sessionStorage contracts.SessionStorage,
	notifier contracts.Notifier,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		state:          StateUnauthenticated,
		AuthClient:     authClient,
		SessionStorage: sessionStorage,
		Notifier:       notifier,
		InternalConfig: internalConfig,
		Log:            logger,
		Validate:       validator.New(),
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*models.Session, error) {
	uc.opMu.Lock()
	defer uc.opMu.Unlock()

	ctx, requestID := utils.EnsureRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.Validate.Struct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	uc.setState(StateAuthenticating)

	result, err := uc.AuthClient.Login(ctx, request)
	if err != nil {
		// failed login must leave nothing behind, not even an earlier
		// session
		uc.clearSession(ctx, requestID)
		return nil, err
	}

	expiresAt := uc.sessionExpiry(result.Token)

	uc.stateMu.Lock()
	session := result.User
	uc.session = &session
	uc.token = result.Token
	uc.state = StateAuthenticated
	uc.stateMu.Unlock()

	stored := &models.StoredSession{
		Session:   session,
		Token:     result.Token,
		ExpiresAt: expiresAt,
	}
	if err := uc.SessionStorage.Set(ctx, stored); err != nil {
		// the live session is authoritative; a failed mirror write only
		// costs us the restart fallback
		uc.Log.Warn("authUsecase.Login failed to persist session mirror",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingSessionRoleKey, string(session.Role)),
	)
	copied := session
	return &copied, nil
}

func (uc *authUsecase) Logout(ctx context.Context) error {
	uc.opMu.Lock()
	defer uc.opMu.Unlock()

	ctx, requestID := utils.EnsureRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// the server call is best effort; locally the user is logged out no
	// matter what the network does
	if err := uc.AuthClient.Logout(ctx); err != nil {
		uc.Log.Warn("authUsecase.Logout server call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.Notifier.Warning(exceptions.ClientMessage(err))
	}

	uc.clearSession(ctx, requestID)
	return nil
}

func (uc *authUsecase) Initialize(ctx context.Context) (*models.Session, error) {
	uc.opMu.Lock()
	defer uc.opMu.Unlock()

	ctx, requestID := utils.EnsureRequestID(ctx)
	uc.Log.Info("authUsecase.Initialize called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cached, err := uc.SessionStorage.Get(ctx)
	if err != nil {
		uc.Log.Warn("authUsecase.Initialize failed to read session mirror",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		cached = nil
	}

	if cached != nil {
		// optimistically trust the mirror until the server answers
		uc.stateMu.Lock()
		session := cached.Session
		uc.session = &session
		uc.token = cached.Token
		uc.state = StateAuthenticated
		uc.stateMu.Unlock()
	}

	result, err := uc.AuthClient.Check(ctx)
	if err != nil {
		if cached == nil {
			uc.Log.Warn("authUsecase.Initialize validation failed with no cached session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, nil
		}
		// a transient failure is not an authoritative denial; keep the
		// cached session rather than logging the user out over a flaky
		// connection
		uc.Log.Warn("authUsecase.Initialize validation unreachable, keeping cached session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return uc.CurrentSession(), nil
	}

	if result.Denied {
		// the mirror is never trusted over an explicit server denial
		uc.Log.Info("authUsecase.Initialize server denied the cached session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		uc.clearSession(ctx, requestID)
		return nil, nil
	}

	// server wins on conflict: overwrite whatever the mirror said
	uc.stateMu.Lock()
	session := *result.User
	uc.session = &session
	uc.state = StateAuthenticated
	token := uc.token
	uc.stateMu.Unlock()

	expiresAt := uc.sessionExpiry(token)
	if cached != nil && !cached.ExpiresAt.IsZero() && cached.ExpiresAt.Before(expiresAt) {
		expiresAt = cached.ExpiresAt
	}
	stored := &models.StoredSession{
		Session:   session,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if err := uc.SessionStorage.Set(ctx, stored); err != nil {
		uc.Log.Warn("authUsecase.Initialize failed to refresh session mirror",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("authUsecase.Initialize succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	copied := session
	return &copied, nil
}

// HandleSessionInvalid is the one-shot invalidation triggered by any 401
// on an authenticated request. Safe to call concurrently and repeatedly;
// only the first call after authentication has any effect.
func (uc *authUsecase) HandleSessionInvalid(ctx context.Context) {
	uc.stateMu.Lock()
	if uc.state != StateAuthenticated && uc.session == nil {
		uc.stateMu.Unlock()
		return
	}
	uc.session = nil
	uc.token = ""
	uc.state = StateUnauthenticated
	uc.stateMu.Unlock()

	requestID := utils.GetRequestID(ctx)
	uc.Log.Warn("authUsecase.HandleSessionInvalid session invalidated by server",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	if err := uc.SessionStorage.Clear(ctx); err != nil {
		uc.Log.Error("authUsecase.HandleSessionInvalid failed to clear session mirror",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	uc.Notifier.Warning(constvars.ErrClientNotLoggedIn)
}

func (uc *authUsecase) CurrentSession() *models.Session {
	uc.stateMu.Lock()
	defer uc.stateMu.Unlock()
	if uc.session == nil {
		return nil
	}
	copied := *uc.session
	return &copied
}

func (uc *authUsecase) IsAuthenticated() bool {
	uc.stateMu.Lock()
	defer uc.stateMu.Unlock()
	return uc.state == StateAuthenticated && uc.session != nil
}

func (uc *authUsecase) Token() string {
	uc.stateMu.Lock()
	defer uc.stateMu.Unlock()
	return uc.token
}

func (uc *authUsecase) setState(state State) {
	uc.stateMu.Lock()
	uc.state = state
	uc.stateMu.Unlock()
}

func (uc *authUsecase) clearSession(ctx context.Context, requestID string) {
	uc.stateMu.Lock()
	uc.session = nil
	uc.token = ""
	uc.state = StateUnauthenticated
	uc.stateMu.Unlock()

	if err := uc.SessionStorage.Clear(ctx); err != nil {
		uc.Log.Error("authUsecase.clearSession failed to clear session mirror",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

// sessionExpiry caps the mirror's lifetime at the configured TTL, pulled
// in further when the bearer token itself expires sooner.
func (uc *authUsecase) sessionExpiry(token string) time.Time {
	expiresAt := time.Now().Add(time.Duration(uc.InternalConfig.Session.TTLInDays) * 24 * time.Hour)
	if tokenExpiry := utils.TokenExpiry(token); !tokenExpiry.IsZero() && tokenExpiry.Before(expiresAt) {
		expiresAt = tokenExpiry
	}
	return expiresAt
}
