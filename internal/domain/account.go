package domain

// Account is a registered credential record. PasswordHash is a bcrypt hash
// and never serialized.
type Account struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
