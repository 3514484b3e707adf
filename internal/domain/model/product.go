package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderChild  Gender = "child"
)

// 商品。カート明細から参照されたあとは管理者編集以外で変更しない
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	CategoryID  int64           `gorm:"not null;index" json:"category_id"`
	BrandID     int64           `gorm:"not null;index" json:"brand_id"`
	Gender      Gender          `gorm:"type:varchar(30);not null" json:"gender"`
	Description string          `gorm:"type:text" json:"description"`
	Size        float64         `gorm:"not null" json:"size"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	MainPhoto   string          `gorm:"type:varchar(255)" json:"main_photo"`
	Season      string          `gorm:"type:varchar(50)" json:"season"`
	InAvailable bool            `gorm:"not null;default:true" json:"in_available"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
