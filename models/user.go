package models

// RegisteredUser is a locally registered account. The password is stored as
// entered; credential security is out of scope for the mock account flow.
type RegisteredUser struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type RegisteredUsers []RegisteredUser

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterForm struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"cpass"`
}
