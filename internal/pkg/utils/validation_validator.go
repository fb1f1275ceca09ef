package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate         *validator.Validate
	batchNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,31}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("batch_name", validateBatchName)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateBatchName(fl validator.FieldLevel) bool {
	return batchNamePattern.MatchString(fl.Field().String())
}
