package packets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() RegistrationForm {
	return RegistrationForm{
		FirstName:       "Ann",
		LastName:        "Li",
		Email:           "ann@example.com",
		BirthDate:       "1990-01-01",
		Password:        "secret12",
		PasswordConfirm: "secret12",
	}
}

func TestValidate_AcceptsValidForm(t *testing.T) {
	form := validForm()
	assert.Empty(t, form.Validate())
}

func TestValidate_ReportsEveryViolatedField(t *testing.T) {
	form := RegistrationForm{}
	assert.Equal(t, []string{
		"First Name: is required.",
		"Last Name: is required.",
		"Email: is required.",
		"Birth Date: is required.",
		"Password: is required.",
	}, form.Validate())
}

func TestValidate_MinimumLengths(t *testing.T) {
	form := validForm()
	form.FirstName = "An"
	form.LastName = "L"
	form.Password = "short1"

	assert.Equal(t, []string{
		"First Name: must include at least 3 characters.",
		"Last Name: must include at least 2 characters.",
		"Password must include at least 7 characters.",
	}, form.Validate())
}

func TestValidate_EmailShape(t *testing.T) {
	form := validForm()
	form.Email = "bob"
	assert.Equal(t, []string{`"bob" is not a valid email address.`}, form.Validate())
}

func TestValidate_EmptyEmailHitsRequiredFirst(t *testing.T) {
	// the carried-over pattern matches the empty string, so the required
	// rule is what rejects an empty email
	assert.True(t, emailPattern.MatchString(""))

	form := validForm()
	form.Email = ""
	assert.Equal(t, []string{"Email: is required."}, form.Validate())
}

func TestValidate_BirthDateFormat(t *testing.T) {
	form := validForm()
	form.BirthDate = "not-a-date"
	assert.Equal(t, []string{"Birth Date: must be a valid date."}, form.Validate())
}
