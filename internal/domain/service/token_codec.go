package service

import "time"

// TokenCodec signs and verifies the compact session token carried by the
// client's cookie. The token is stateless: it encodes only the numeric
// subject id plus issued-at/expiry claims under a process-wide symmetric
// secret. Nothing is persisted server-side and no revocation list exists;
// logout merely asks the client to discard the cookie.
type TokenCodec interface {
	// Issue produces a signed token for the given subject id.
	Issue(subjectID int64) (string, error)

	// Verify checks the signature and expiry and returns the subject id.
	// Malformed tokens, bad signatures, expired tokens, and tokens signed
	// under a rotated secret all fail verification.
	Verify(token string) (int64, error)

	// SessionTTL returns the configured session lifetime, shared by the
	// token's exp claim and the cookie max-age.
	SessionTTL() time.Duration
}
