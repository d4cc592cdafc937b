package models

// User maps to the users table.
type User struct {
	UserID       string
	Name         string
	Email        string
	PasswordHash string
	IsActive     bool
	AuditFields
}

// POSProfileUser maps to the pos_profile_users join table linking cashiers to
// the POS profiles they may operate.
type POSProfileUser struct {
	POSProfile string
	UserID     string
}
