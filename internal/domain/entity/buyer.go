// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Buyer is a purchasing account on the marketplace. Buyers authenticate with
// an email unique within the buyers table and browse the shared catalog.
type Buyer struct {
	BuyerID      int64     // Auto-incremented identifier, independent of the seller sequence.
	Name         string    // Contact person's display name.
	BusinessName string    // Name of the buying business.
	Email        string    // Login identifier, unique among buyers only.
	PasswordHash string    // bcrypt digest of the account password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
