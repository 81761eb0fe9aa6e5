package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/lac-hong-legacy/sdr_trainer/shared"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("category", validateCategory)
	validate.RegisterValidation("difficulty", validateDifficulty)
	validate.RegisterValidation("study_mode", validateStudyMode)
	validate.RegisterValidation("rarity", validateRarity)
}

func GetValidator() *validator.Validate {
	return validate
}

func validateCategory(fl validator.FieldLevel) bool {
	return shared.IsCategory(fl.Field().String())
}

func validateDifficulty(fl validator.FieldLevel) bool {
	return shared.IsDifficulty(fl.Field().String())
}

func validateStudyMode(fl validator.FieldLevel) bool {
	return shared.IsStudyMode(fl.Field().String())
}

func validateRarity(fl validator.FieldLevel) bool {
	return shared.IsRarity(fl.Field().String())
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func FormatValidationErrors(err error) []ValidationError {
	var errors []ValidationError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			var message string

			switch fieldError.Tag() {
			case "required":
				message = fieldError.Field() + " is required"
			case "gte":
				message = fieldError.Field() + " must be at least " + fieldError.Param()
			case "oneof":
				message = fieldError.Field() + " must be one of: " + fieldError.Param()
			case "category":
				message = fieldError.Field() + " must be a known question category"
			case "difficulty":
				message = fieldError.Field() + " must be beginner, intermediate or advanced"
			case "study_mode":
				message = fieldError.Field() + " must be a known study mode"
			case "rarity":
				message = fieldError.Field() + " must be common, rare, epic or legendary"
			case "dive":
				message = fieldError.Field() + " contains invalid items"
			default:
				message = fieldError.Field() + " is invalid"
			}

			errors = append(errors, ValidationError{
				Field:   fieldError.Field(),
				Message: message,
			})
		}
	}

	return errors
}

// Validate runs struct validation and converts failures to a 400 AppError.
func Validate(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return shared.NewValidationError(err, FormatValidationErrors(err))
	}
	return nil
}
