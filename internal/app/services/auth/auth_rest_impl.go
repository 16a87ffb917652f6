package auth

import (
	"context"
	"errors"

	"vitalsync-client/internal/app/contracts"
	"vitalsync-client/internal/app/models"
	"vitalsync-client/internal/app/services/shared/restclient"
	"vitalsync-client/internal/pkg/constvars"
	"vitalsync-client/internal/pkg/dto/requests"
	"vitalsync-client/internal/pkg/dto/responses"
	"vitalsync-client/internal/pkg/exceptions"
	"vitalsync-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type authRestClient struct {
	Rest *restclient.Client
	Log  *zap.Logger
}

func NewAuthRestClient(rest *restclient.Client, logger *zap.Logger) contracts.AuthClient {
	return &authRestClient{
		Rest: rest,
		Log:  logger,
	}
}

func (c *authRestClient) Login(ctx context.Context, request *requests.Login) (*contracts.LoginResult, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Info("authRestClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.Rest.PostPublic(ctx, constvars.EndpointAuthLogin, request)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && !exceptions.IsNetworkError(err) {
			// any authoritative rejection of the credentials is an auth
			// failure, carrying the server's message when it sent one
			message := ""
			if customErr.ClientMessage != constvars.ErrClientCannotProcessRequest {
				message = customErr.ClientMessage
			}
			return nil, exceptions.ErrLoginRejected(customErr.StatusCode, message)
		}
		return nil, err
	}

	envelope := new(responses.LoginEnvelope)
	if err := json.Unmarshal(body, envelope); err != nil {
		c.Log.Error("authRestClient.Login error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMalformedAuthResponse(err)
	}

	user, token, ok := envelope.Normalize()
	if !ok {
		c.Log.Error("authRestClient.Login response is missing the user payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrMalformedAuthResponse(nil)
	}

	c.Log.Info("authRestClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &contracts.LoginResult{
		User:  sessionFromUser(user),
		Token: token,
	}, nil
}

func (c *authRestClient) Logout(ctx context.Context) error {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Info("authRestClient.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	_, err := c.Rest.Post(ctx, constvars.EndpointAuthLogout, nil)
	return err
}

func (c *authRestClient) Check(ctx context.Context) (*contracts.CheckResult, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	c.Log.Info("authRestClient.Check called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.Rest.Get(ctx, constvars.EndpointAuthCheck)
	if err != nil {
		// a 401 on the probe is the server explicitly saying "no"
		if exceptions.IsSessionExpired(err) {
			return &contracts.CheckResult{Denied: true}, nil
		}
		return nil, err
	}

	check := new(responses.AuthCheck)
	if err := json.Unmarshal(body, check); err != nil {
		c.Log.Error("authRestClient.Check error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.EndpointAuthCheck)
	}

	if !check.IsAuthenticated || check.User == nil {
		return &contracts.CheckResult{Denied: true}, nil
	}

	session := sessionFromUser(check.User)
	return &contracts.CheckResult{User: &session}, nil
}

func sessionFromUser(user *responses.User) models.Session {
	return models.Session{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.Name,
		Role:        models.Role(user.Role),
	}
}
