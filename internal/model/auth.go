package model

// SignupParams is the signup form.
type SignupParams struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	GucID           string
}

// ResetParams is the password reset form.
type ResetParams struct {
	Token           string
	Password        string
	ConfirmPassword string
}
