package validation

// UserValidator checks registration input. Usernames are taken verbatim and
// password strength is not enforced.
type UserValidator struct {
	validator *Validator
}

// NewUserValidator creates a user validator
func NewUserValidator() *UserValidator {
	return &UserValidator{validator: NewValidatorWithConfig(nil)}
}

// ValidateUsername requires a username that is not blank
func (uv *UserValidator) ValidateUsername(username string) error {
	if uv.validator.IsNonEmptyString(username) {
		return nil
	}
	validationError := NewValidationError()
	validationError.AddRequiredError("username")
	return validationError
}

// ValidateRegistration validates a username/password pair. Any password,
// including an empty one, is accepted.
func (uv *UserValidator) ValidateRegistration(username, password string) error {
	return uv.ValidateUsername(username)
}
