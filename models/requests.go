package models

// RegisterRequest is the sign-up payload. The initial password is not part
// of it: it is derived from the national ID.
type RegisterRequest struct {
	Email     string `json:"email"`
	RUT       string `json:"rut"`
	BirthDate Date   `json:"birthDate"`
	Name      string `json:"name"`
}

// LoginRequest is the sign-in payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EditProfileRequest carries the new profile values. Empty fields keep the
// stored value.
type EditProfileRequest struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	BirthDate Date   `json:"birthDate"`
}

// ResetPasswordRequest carries the new plaintext password.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}
