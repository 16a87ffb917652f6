package contracts

import (
	"context"

	"vitalsync-client/internal/app/models"
	"vitalsync-client/internal/pkg/dto/requests"
)

// LoginResult is the canonical, already-normalized outcome of a login
// call regardless of which envelope shape the server used.
type LoginResult struct {
	User  models.Session
	Token string
}

// CheckResult is the server's answer to a session validation probe.
// Denied is an authoritative "not authenticated"; it is distinct from a
// transport failure, which surfaces as an error instead.
type CheckResult struct {
	Denied bool
	User   *models.Session
}

type AuthClient interface {
	Login(ctx context.Context, request *requests.Login) (*LoginResult, error)
	Logout(ctx context.Context) error
	Check(ctx context.Context) (*CheckResult, error)
}

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*models.Session, error)
	Logout(ctx context.Context) error
	Initialize(ctx context.Context) (*models.Session, error)
	HandleSessionInvalid(ctx context.Context)
	CurrentSession() *models.Session
	IsAuthenticated() bool
	Token() string
}
