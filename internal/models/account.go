package models

// Account represents a registered user.
type Account struct {
	AccountID int    `json:"account_id" db:"account_id"` // Server-assigned primary key
	Username  string `json:"username" db:"username"`     // Unique username
	Password  string `json:"password" db:"password"`     // Plain password on input, bcrypt hash when read back from storage
}
