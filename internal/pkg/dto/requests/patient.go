package requests

import "io"

// CreatePatient is sent as a multipart form; Photo is streamed as-is when
// present.
type CreatePatient struct {
	Name      string `validate:"required"`
	Age       int    `validate:"required,gt=0,lt=150"`
	Condition string `validate:"required"`

	Photo         io.Reader `validate:"-"`
	PhotoFilename string    `validate:"-"`
}

// UpdatePatient is a partial update; nil fields are omitted from the
// request body.
type UpdatePatient struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Age       *int    `json:"age,omitempty" validate:"omitempty,gt=0,lt=150"`
	Condition *string `json:"condition,omitempty" validate:"omitempty,min=1"`
}
