package entity

import "time"

// Product is a catalog listing owned by exactly one seller via SellerEmail.
// The owning email is always taken from the resolved seller identity, never
// from client input.
type Product struct {
	ProductID   int64     // Auto-incremented identifier.
	Name        string    // Listing title.
	Description string    // Free-text description, sanitized before storage.
	Category    string    // Exact-match search key.
	Price       float64   // Must be strictly positive.
	Discount    float64   // Must be non-negative.
	SellerEmail string    // References the owning seller's email.
	CreatedAt   time.Time // Timestamp of when this listing was created.
	UpdatedAt   time.Time // Timestamp of the last full-field overwrite.
}
