package utils

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("report-id", ValidateReportID); err != nil {
		log.Fatal(err)
	}
}

func ValidateReportID(fl validator.FieldLevel) bool {
	_, err := uuid.Parse(fl.Field().String())
	return err == nil
}

func ValidateStruct(value any) error {
	return validate.Struct(value)
}
