package model

// 商品の追加写真
type ProductImage struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64  `gorm:"not null;index" json:"product_id"`
	Image     string `gorm:"type:varchar(255);not null" json:"image"`
}
