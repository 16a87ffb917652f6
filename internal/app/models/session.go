package models

import "time"

type Role string

const (
	RoleDoctor Role = "doctor"
	RoleAdmin  Role = "admin"
)

// Session is the authenticated identity currently recognized by the
// client. It exists if and only if the client considers itself logged in.
type Session struct {
	UserID      string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"name"`
	Role        Role   `json:"role"`
}

// StoredSession is the persisted mirror of a Session plus the bearer
// credential and its expiry. It survives restarts so the dashboard can
// come up optimistically authenticated before the server confirms.
type StoredSession struct {
	Session   Session   `json:"session"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *StoredSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
