package utils

import (
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/dto/requests"
	"lifeledger-service/internal/pkg/exceptions"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate         *validator.Validate
	emailRegex       = regexp.MustCompile(constvars.RegexEmail)
	phoneNumberRegex = regexp.MustCompile(constvars.RegexPhoneNumber)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("pledge_age", validatePledgeAge)
	validate.RegisterValidation("gender", validateGender)
	validate.RegisterValidation("email_address", validateEmailAddress)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("registrable_role", validateRegistrableRole)
	validate.RegisterStructValidation(validateUrgencyLevel, requests.RegistrationForm{})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateRegistrationForm checks the form and reports only its first violation.
func ValidateRegistrationForm(form *requests.RegistrationForm) error {
	if err := validate.Struct(form); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func validatePledgeAge(fl validator.FieldLevel) bool {
	role := reflect.Indirect(fl.Parent()).FieldByName("Role")
	if !role.IsValid() || role.String() != string(models.RolePledge) {
		return true
	}
	return fl.Field().Int() >= constvars.PledgeMinimumAge
}

func validateGender(fl validator.FieldLevel) bool {
	_, ok := models.ParseGender(fl.Field().String())
	return ok
}

func validateEmailAddress(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneNumberRegex.MatchString(fl.Field().String())
}

func validateRegistrableRole(fl validator.FieldLevel) bool {
	return models.Role(fl.Field().String()).IsValid()
}

// validateUrgencyLevel runs after every field rule, so its error never hides one of theirs.
func validateUrgencyLevel(sl validator.StructLevel) {
	form := sl.Current().Interface().(requests.RegistrationForm)
	if form.Role != string(models.RolePatient) {
		return
	}
	if form.UrgencyLevel == nil ||
		*form.UrgencyLevel < constvars.MinUrgencyLevel ||
		*form.UrgencyLevel > constvars.MaxUrgencyLevel {
		sl.ReportError(form.UrgencyLevel, "UrgencyLevel", "UrgencyLevel", "urgency", "")
	}
}
