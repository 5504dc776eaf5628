package handler

import (
	"time"

	"bazaar/internal/domain/entity"
)

// accountView is the wire shape for an account, without the password hash.
type accountView struct {
	ID           int64  `json:"id"`
	Kind         string `json:"kind"`
	Name         string `json:"name"`
	BusinessName string `json:"businessName"`
	Email        string `json:"email"`
}

func newAccountView(identity *entity.Identity) accountView {
	return accountView{
		ID:           identity.SubjectID(),
		Kind:         string(identity.Kind),
		Name:         identity.Name(),
		BusinessName: identity.BusinessName(),
		Email:        identity.Email(),
	}
}

// productView is the wire shape for a product listing.
type productView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Discount    float64   `json:"discount"`
	SellerEmail string    `json:"sellerEmail"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newProductView(product *entity.Product) productView {
	return productView{
		ID:          product.ProductID,
		Name:        product.Name,
		Description: product.Description,
		Category:    product.Category,
		Price:       product.Price,
		Discount:    product.Discount,
		SellerEmail: product.SellerEmail,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func newProductViews(products []*entity.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product))
	}

	return views
}
