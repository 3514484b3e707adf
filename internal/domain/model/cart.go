package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 所有者1人につき in_order=false のカートは1つ。
// 匿名カートはフラグの全体検索ではなく session_token で引く
type Cart struct {
	ID               int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID          *int64          `gorm:"index" json:"owner_id"`
	SessionToken     string          `gorm:"type:varchar(64);index" json:"-"`
	TotalProducts    int64           `gorm:"not null;default:0" json:"total_products"`
	FinalPrice       decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0" json:"final_price"`
	InOrder          bool            `gorm:"not null;default:false;index" json:"in_order"`
	ForAnonymousUser bool            `gorm:"not null;default:false" json:"for_anonymous_user"`
	CreatedAt        time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
