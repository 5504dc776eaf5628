package entity

import "time"

// Seller is a vending account on the marketplace. Sellers authenticate with an
// email unique within the sellers table and own products through that email.
type Seller struct {
	SellerID     int64     // Auto-incremented identifier, independent of the buyer sequence.
	Name         string    // Contact person's display name.
	BusinessName string    // Name of the selling business.
	Email        string    // Login identifier, unique among sellers only. Products reference it.
	PasswordHash string    // bcrypt digest of the account password.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
