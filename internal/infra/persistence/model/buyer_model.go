package model

import "time"

// BuyerModel mirrors the 'buyers' table. The primary key is a bigserial
// sequence independent of the sellers sequence, so the same numeric id can
// exist in both tables. Email uniqueness is enforced per table only.
type BuyerModel struct {
	BuyerID      int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(100);not null"`
	BusinessName string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password     string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuyerModel) TableName() string {
	return "buyers"
}
