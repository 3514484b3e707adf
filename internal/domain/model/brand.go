package model

// ブランド。slugは名前の小文字から作る
type Brand struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(50);not null" json:"name"`
	Slug string `gorm:"type:varchar(50);not null;uniqueIndex" json:"slug"`
}
