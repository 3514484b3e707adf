package model

import "time"

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"type:varchar(150);not null;uniqueIndex" json:"username"`
	Email        string `gorm:"type:varchar(255)" json:"email"`
	FirstName    string `gorm:"type:varchar(255)" json:"first_name"`
	LastName     string `gorm:"type:varchar(255)" json:"last_name"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
