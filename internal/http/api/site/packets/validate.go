package packets

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

const birthDateLayout = "2006-01-02"

// Email pattern carried over from the original schema. The whole pattern is
// wrapped in an optional group, so it also matches the empty string; the
// required check in front of it is what rejects empty emails.
var emailPattern = regexp.MustCompile(`^([\w-.]+@([\w-]+\.)+[\w-]{2,4})?$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// validator's builtin "email" is stricter than the original pattern,
	// so the pattern is registered as its own rule.
	if err := v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("date_only", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(birthDateLayout, fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks every field constraint and returns one human-readable
// message per violated field, in field order. An empty slice means the
// form is acceptable. Email uniqueness is enforced at persistence time,
// not here.
func (f *RegistrationForm) Validate() []string {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Error processing registration."}
	}

	var messages []string
	for _, fe := range fieldErrors {
		messages = append(messages, fieldMessage(fe))
	}
	return messages
}

// maps a field violation to the record's user-facing message.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "FirstName":
		if fe.Tag() == "required" {
			return "First Name: is required."
		}
		return "First Name: must include at least 3 characters."
	case "LastName":
		if fe.Tag() == "required" {
			return "Last Name: is required."
		}
		return "Last Name: must include at least 2 characters."
	case "Email":
		if fe.Tag() == "required" {
			return "Email: is required."
		}
		return fmt.Sprintf("\"%v\" is not a valid email address.", fe.Value())
	case "BirthDate":
		if fe.Tag() == "required" {
			return "Birth Date: is required."
		}
		return "Birth Date: must be a valid date."
	case "Password":
		if fe.Tag() == "required" {
			return "Password: is required."
		}
		return "Password must include at least 7 characters."
	}
	return fmt.Sprintf("%s: is invalid.", fe.Field())
}
