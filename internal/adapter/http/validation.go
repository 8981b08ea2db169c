package http

import (
	"assettrack/internal/domain/transaction"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// Closed enums; the usecase re-checks, these fail fast at the edge.
	_ = v.RegisterValidation("txaction", func(fl validator.FieldLevel) bool {
		return transaction.Action(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("txstatus", func(fl validator.FieldLevel) bool {
		return transaction.Status(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("txpriority", func(fl validator.FieldLevel) bool {
		return transaction.Priority(fl.Field().String()).Valid()
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "txaction":
			out = append(out, FieldError{Field: field, Message: "must be one of assign, return, repair, retire, dispose, transfer, maintenance"})
		case "txstatus":
			out = append(out, FieldError{Field: field, Message: "must be a valid transaction status"})
		case "txpriority":
			out = append(out, FieldError{Field: field, Message: "must be one of low, medium, high, urgent"})
		case "datetime":
			out = append(out, FieldError{Field: field, Message: "must match format " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
