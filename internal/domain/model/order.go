package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusCompleted  OrderStatus = "completed"
)

type BuyingType string

const (
	BuyingTypeSelf     BuyingType = "self_pickup"
	BuyingTypeDelivery BuyingType = "delivery"
)

type DeliveryChoice string

const (
	DeliveryNovaPoshta DeliveryChoice = "nova_poshta"
	DeliveryUkrPoshta  DeliveryChoice = "ukr_poshta"
	DeliveryIntime     DeliveryChoice = "intime"
)

// 注文。作成後はステータス遷移（管理者操作）以外は追記しない
type Order struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID     int64           `gorm:"not null;index" json:"customer_id"`
	FirstName      string          `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName       string          `gorm:"type:varchar(255);not null" json:"last_name"`
	Phone          string          `gorm:"type:varchar(25);not null" json:"phone"`
	Address        string          `gorm:"type:varchar(1024)" json:"address"`
	Status         OrderStatus     `gorm:"type:varchar(30);not null;index;default:'new'" json:"status"`
	BuyingType     BuyingType      `gorm:"type:varchar(30);not null;default:'self_pickup'" json:"buying_type"`
	DeliveryChoice DeliveryChoice  `gorm:"type:varchar(30);not null;default:'nova_poshta'" json:"delivery_choice"`
	Comment        string          `gorm:"type:text" json:"comment"`
	CartID         *int64          `gorm:"index" json:"cart_id"`
	FinalPrice     decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0" json:"final_price"`
	CreatedAt      time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
