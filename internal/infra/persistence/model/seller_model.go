package model

import "time"

// SellerModel mirrors the 'sellers' table. Products reference sellers by
// email rather than by the numeric id.
type SellerModel struct {
	SellerID     int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(100);not null"`
	BusinessName string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password     string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Products []ProductModel `gorm:"foreignKey:SellerEmail;references:Email"`
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}
