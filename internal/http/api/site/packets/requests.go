package packets

import "time"

// body for logging in
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// body for registering. Validation is run explicitly after the
// password/confirmation match check, so the fields carry no binding tags.
type RegistrationForm struct {
	FirstName       string `form:"first_name" validate:"required,min=3"`
	LastName        string `form:"last_name" validate:"required,min=2"`
	Email           string `form:"email" validate:"required,email_shape"`
	BirthDate       string `form:"birth_date" validate:"required,date_only"`
	Password        string `form:"password" validate:"required,min=7"`
	PasswordConfirm string `form:"password_confirm"`
}

// ParseBirthDate converts the submitted birth date. Validate guarantees
// the field parses before this is called.
func (f *RegistrationForm) ParseBirthDate() (time.Time, error) {
	return time.Parse(birthDateLayout, f.BirthDate)
}
