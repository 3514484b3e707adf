package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カートの明細。追加時点の価格を必ず保存する。
// (cart_id, product_id) は複合ユニーク制約で1明細に固定
type CartItem struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID *int64          `gorm:"index" json:"customer_id"`
	CartID     int64           `gorm:"not null;uniqueIndex:idx_cart_product" json:"cart_id"`
	ProductID  int64           `gorm:"not null;uniqueIndex:idx_cart_product" json:"product_id"`
	FinalPrice decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0" json:"final_price"`
	CreatedAt  time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
