package database

import (
	"fmt"
	"time"

	"store-app/internal/models"
	"store-app/internal/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultExpense is a recurring monthly cost seeded at startup.
type DefaultExpense struct {
	Name   string
	Amount decimal.Decimal
}

// DefaultExpenses are seeded for the current month when missing.
var DefaultExpenses = []DefaultExpense{
	{Name: "Electricity", Amount: decimal.NewFromInt(6000)},
	{Name: "Water", Amount: decimal.NewFromInt(1000)},
	{Name: "Rent", Amount: decimal.NewFromInt(25000)},
	{Name: "BIR tax", Amount: decimal.NewFromInt(900)},
	{Name: "Munisipyo", Amount: decimal.NewFromInt(1000)},
}

// SeedMonthlyExpenses inserts each default expense for the month containing
// now unless a row with the same (name, month) already exists. Existing rows
// keep their amounts. It returns the number of rows created.
func SeedMonthlyExpenses(db *gorm.DB, now time.Time, log *zap.Logger) (int, error) {
	month := utils.MonthKey(now)
	created := 0

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, def := range DefaultExpenses {
			var existing []models.Expense
			if err := tx.Where("name = ? AND month = ?", def.Name, month).Limit(1).Find(&existing).Error; err != nil {
				return fmt.Errorf("look up expense %q: %w", def.Name, err)
			}
			if len(existing) > 0 {
				continue
			}
			expense := models.Expense{Name: def.Name, Amount: def.Amount, Month: month}
			if err := tx.Create(&expense).Error; err != nil {
				return fmt.Errorf("seed expense %q: %w", def.Name, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info("Monthly expenses seeded", zap.String("month", month), zap.Int("created", created))
	return created, nil
}
