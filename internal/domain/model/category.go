package model

// 商品カテゴリ（読み取り専用のカタログ軸）
type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(50);not null" json:"name"`
	Slug string `gorm:"type:varchar(50);not null;uniqueIndex" json:"slug"`
}
