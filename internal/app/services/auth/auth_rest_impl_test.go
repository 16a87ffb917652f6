package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vitalsync-client/internal/app/services/shared/restclient"
	"vitalsync-client/internal/pkg/dto/requests"
	"vitalsync-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func loginRequest() *requests.Login {
	return &requests.Login{Email: "doctor@clinic.test", Password: "secret"}
}

func newAuthClientAgainst(t *testing.T, handler http.Handler) (*httptest.Server, *authRestClient) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	rest := restclient.NewClient(server.URL, 5*time.Second, zap.NewNop())
	return server, NewAuthRestClient(rest, zap.NewNop()).(*authRestClient)
}

func TestLoginDecodesFlatEnvelope(t *testing.T) {
	_, client := newAuthClientAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user":{"id":"u-1","email":"doctor@clinic.test","name":"Dr. Ana","role":"doctor"},"token":"tok-1"}`))
	}))

	result, err := client.Login(context.Background(), loginRequest())
	require.NoError(t, err)
	assert.Equal(t, "u-1", result.User.UserID)
	assert.Equal(t, "Dr. Ana", result.User.DisplayName)
	assert.Equal(t, "tok-1", result.Token)
}

func TestLoginDecodesNestedEnvelope(t *testing.T) {
	_, client := newAuthClientAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"user":{"id":"u-2","email":"admin@clinic.test","name":"Root","role":"admin"},"token":"tok-2"}}`))
	}))

	result, err := client.Login(context.Background(), loginRequest())
	require.NoError(t, err)
	assert.Equal(t, "u-2", result.User.UserID)
	assert.Equal(t, "tok-2", result.Token)
}

func TestLoginWithoutUserPayloadIsAnAuthFailure(t *testing.T) {
	_, client := newAuthClientAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"welcome"}`))
	}))

	_, err := client.Login(context.Background(), loginRequest())
	require.Error(t, err)
	assert.True(t, exceptions.IsAuthError(err))
}

func TestLoginRejectionCarriesServerMessage(t *testing.T) {
	_, client := newAuthClientAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"account is locked"}`))
	}))

	_, err := client.Login(context.Background(), loginRequest())
	require.Error(t, err)
	assert.True(t, exceptions.IsAuthError(err))
	assert.Equal(t, "account is locked", exceptions.ClientMessage(err))
}

func TestLoginNetworkFailureIsNotAnAuthError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	rest := restclient.NewClient(server.URL, time.Second, zap.NewNop())
	client := NewAuthRestClient(rest, zap.NewNop())

	_, err := client.Login(context.Background(), loginRequest())
	require.Error(t, err)
	assert.False(t, exceptions.IsAuthError(err))
	assert.True(t, exceptions.IsNetworkError(err))
}

func TestCheckDeniedOnUnauthorized(t *testing.T) {
	_, client := newAuthClientAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	result, err := client.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Denied)
}

func TestCheckDeniedWhenBodySaysNotAuthenticated(t *testing.T) {
	_, client := newAuthClientAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"isAuthenticated":false}`))
	}))

	result, err := client.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Denied)
}

func TestCheckReturnsServerUser(t *testing.T) {
	_, client := newAuthClientAgainst(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/check", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"isAuthenticated":true,"user":{"id":"u-1","email":"doctor@clinic.test","name":"Dr. Ana","role":"doctor"}}`))
	}))

	result, err := client.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Denied)
	require.NotNil(t, result.User)
	assert.Equal(t, "u-1", result.User.UserID)
}
