// Package forms defines the submitted-field schemas and their validation.
// Validation failures come back as field-level errors so handlers can
// redisplay them without mutating any state.
package forms

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PostForm carries the user-editable post fields. The author is never part
// of the form; it always comes from the session.
type PostForm struct {
	Text    string  `form:"text" json:"text" validate:"required"`
	GroupID *string `form:"group_id" json:"group_id" validate:"omitempty,uuid4"`
	Image   *string `form:"image" json:"image" validate:"omitempty,max=255"`
}

func (f *PostForm) Validate() []FieldError { return check(f) }

type CommentForm struct {
	Text string `form:"text" json:"text" validate:"required"`
}

func (f *CommentForm) Validate() []FieldError { return check(f) }

func check(v any) []FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "uuid4":
		return "must be a valid id"
	case "max":
		return "too long"
	}
	return "invalid value"
}
