package model

import "time"

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ProductID   int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null;index"`
	Description string  `gorm:"type:text;not null"`
	Category    string  `gorm:"type:varchar(100);not null;index"`
	Price       float64 `gorm:"type:numeric(12,2);not null"`
	Discount    float64 `gorm:"type:numeric(12,2);not null;default:0"`
	SellerEmail string  `gorm:"type:varchar(255);not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
