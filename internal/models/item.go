package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Item struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"size:100;not null" json:"name"`
	Stock          int             `gorm:"default:0" json:"stock"`
	CapitalPerUnit decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"capital_per_unit"`
	SellingPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"selling_price"`
	CashierBonus   decimal.Decimal `gorm:"type:decimal(10,2);default:0.00" json:"cashier_bonus"` // per unit sold
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
