package domain

import "time"

// Account is a login able to obtain API tokens.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	IsStaff      bool
	IsSuperuser  bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
