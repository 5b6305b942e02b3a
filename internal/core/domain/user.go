package domain

// User is an operator of the system who can authenticate and perform actions.
type User struct {
	UserID       string `json:"userID"`   // Primary Key (e.g., UUID)
	Username     string `json:"username"` // Unique (Not Null)
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
	IsActive     bool   `json:"isActive"`
	AuditFields
}
