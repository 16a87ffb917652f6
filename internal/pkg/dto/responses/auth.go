package responses

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type loginPayload struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// LoginEnvelope tolerates the two login response shapes the server has
// been observed to produce: a flat {user, token} and a nested
// {data: {user, token}}. Anything without a user payload is a failed
// login regardless of status code.
type LoginEnvelope struct {
	loginPayload
	Data    *loginPayload `json:"data"`
	Message string        `json:"message"`
}

// Normalize resolves the envelope variants into one canonical result.
// ok is false when no user payload is present in either shape.
func (e *LoginEnvelope) Normalize() (user *User, token string, ok bool) {
	if e.User != nil {
		return e.User, e.Token, true
	}
	if e.Data != nil && e.Data.User != nil {
		return e.Data.User, e.Data.Token, true
	}
	return nil, "", false
}

type AuthCheck struct {
	IsAuthenticated bool  `json:"isAuthenticated"`
	User            *User `json:"user"`
}

// ErrorMessage is the body shape servers use for request failures; the
// message travels verbatim to the caller.
type ErrorMessage struct {
	Message string `json:"message"`
}
