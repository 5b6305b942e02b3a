package models

// User is the database representation of an operator account.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
