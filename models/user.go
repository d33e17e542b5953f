package models

// User represents a registered catalog account. The email is the account
// identity; the password is only ever kept as a one-way hash.
type User struct {
	// UserID is the server-assigned identifier of the account.
	UserID int64 `json:"id"`

	// Email is the unique login identity of the user.
	Email string `json:"email"`

	// PasswordHash holds the bcrypt digest of the user's password.
	// It is never serialized to clients.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the email/password pair supplied on registration and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
