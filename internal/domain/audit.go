package domain

import "time"

// Audit holds the bookkeeping columns shared by every HR table.
type Audit struct {
	CreatedBy    string
	ModifiedBy   string
	DateCreated  time.Time
	DateModified time.Time
}

// Stamp records actor as the creator and last modifier.
func (a *Audit) Stamp(actor string) {
	a.CreatedBy = actor
	a.ModifiedBy = actor
}
