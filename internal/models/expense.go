package models

import (
	"github.com/shopspring/decimal"
)

type Expense struct {
	ID     uint            `gorm:"primaryKey" json:"id"`
	Name   string          `gorm:"size:100;uniqueIndex:idx_expense_name_month" json:"name"`
	Amount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Month  string          `gorm:"size:20;not null;uniqueIndex:idx_expense_name_month" json:"month"` // YYYY-MM
}
