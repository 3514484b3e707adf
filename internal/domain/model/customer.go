package model

import "time"

// 購入者。初回の認証済みアクセスか会員登録時に遅延作成する
type Customer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *int64    `gorm:"uniqueIndex" json:"user_id"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone"`
	Address   string    `gorm:"type:varchar(255)" json:"address"`
	Anonymous bool      `gorm:"not null;default:false" json:"anonymous"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
