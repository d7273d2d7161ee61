package models

// User is a dashboard operator account, keyed by email in the users
// document. Password is a bcrypt hash.
type User struct {
	Password string `json:"password"`
}
