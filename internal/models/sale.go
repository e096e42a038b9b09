package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale copies the item's economics at the moment it was recorded. ItemID is
// a plain column: deleting the item leaves the sale in place.
type Sale struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	ItemID         uint            `gorm:"index" json:"item_id"`
	Quantity       int             `gorm:"not null" json:"quantity"`
	SellingPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"selling_price"`
	CapitalPerUnit decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"capital_per_unit"`
	CashierBonus   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"cashier_bonus"`
	SoldAt         time.Time       `gorm:"index;not null" json:"sold_at"`
}

// Revenue is the sale's gross at the snapshot price.
func (s Sale) Revenue() decimal.Decimal {
	return s.SellingPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// Bonus is the cashier incentive earned on this sale.
func (s Sale) Bonus() decimal.Decimal {
	return s.CashierBonus.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
