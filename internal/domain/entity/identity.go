package entity

// IdentityKind discriminates which table an identity was resolved from.
type IdentityKind string

const (
	KindBuyer  IdentityKind = "buyer"
	KindSeller IdentityKind = "seller"
)

// Identity is the resolved buyer-or-seller principal attached to a request
// after token verification. It is a tagged union: exactly one of Buyer or
// Seller is non-nil, matching Kind.
//
// Buyer and seller ids come from independent sequences, so the same numeric
// subject id can exist in both tables. The resolver breaks that tie by
// checking buyers first; Identity values must only ever be produced by it.
type Identity struct {
	Kind   IdentityKind
	Buyer  *Buyer
	Seller *Seller
}

// NewBuyerIdentity wraps a buyer row as a resolved identity.
func NewBuyerIdentity(b *Buyer) *Identity {
	return &Identity{Kind: KindBuyer, Buyer: b}
}

// NewSellerIdentity wraps a seller row as a resolved identity.
func NewSellerIdentity(s *Seller) *Identity {
	return &Identity{Kind: KindSeller, Seller: s}
}

// SubjectID returns the numeric id encoded into session tokens for this identity.
func (i *Identity) SubjectID() int64 {
	switch i.Kind {
	case KindBuyer:
		return i.Buyer.BuyerID
	case KindSeller:
		return i.Seller.SellerID
	}

	return 0
}

// Email returns the identity's login email.
func (i *Identity) Email() string {
	switch i.Kind {
	case KindBuyer:
		return i.Buyer.Email
	case KindSeller:
		return i.Seller.Email
	}

	return ""
}

// Name returns the identity's display name.
func (i *Identity) Name() string {
	switch i.Kind {
	case KindBuyer:
		return i.Buyer.Name
	case KindSeller:
		return i.Seller.Name
	}

	return ""
}

// PasswordHash returns the stored bcrypt hash for credential checks.
func (i *Identity) PasswordHash() string {
	switch i.Kind {
	case KindBuyer:
		return i.Buyer.PasswordHash
	case KindSeller:
		return i.Seller.PasswordHash
	}

	return ""
}

// BusinessName returns the identity's registered business name.
func (i *Identity) BusinessName() string {
	switch i.Kind {
	case KindBuyer:
		return i.Buyer.BusinessName
	case KindSeller:
		return i.Seller.BusinessName
	}

	return ""
}

// IsSeller reports whether this identity may perform catalog mutations.
func (i *Identity) IsSeller() bool {
	return i.Kind == KindSeller
}
