package requests

// Login carries the transient credentials. They are never persisted.
type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
