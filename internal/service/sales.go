package service

import (
	"context"
	"errors"
	"fmt"

	"store-app/internal/models"
	"store-app/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecordSale snapshots the item's price, cost and bonus into a new Sale and
// decrements stock in one transaction. The decrement only applies while
// stock still covers the quantity, so two racing sales cannot oversell.
func (s *Service) RecordSale(ctx context.Context, itemID uint, quantity int) (*models.Sale, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var sale models.Sale
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return fmt.Errorf("load item %d: %w", itemID, err)
		}

		if item.Stock < quantity {
			return ErrInsufficientStock
		}

		res := tx.Model(&models.Item{}).
			Where("id = ? AND stock >= ?", item.ID, quantity).
			Update("stock", gorm.Expr("stock - ?", quantity))
		if res.Error != nil {
			return fmt.Errorf("decrement stock: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}

		sale = models.Sale{
			ItemID:         item.ID,
			Quantity:       quantity,
			SellingPrice:   item.SellingPrice,
			CapitalPerUnit: item.CapitalPerUnit,
			CashierBonus:   item.CashierBonus,
			SoldAt:         s.clock.Now(),
		}
		if err := tx.Create(&sale).Error; err != nil {
			return fmt.Errorf("create sale: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Sale recorded",
		zap.Uint("sale_id", sale.ID),
		zap.Uint("item_id", sale.ItemID),
		zap.Int("quantity", sale.Quantity),
	)
	return &sale, nil
}

// SalesThisMonth returns sales whose timestamp falls in the current UTC
// calendar month.
func (s *Service) SalesThisMonth(ctx context.Context) ([]models.Sale, error) {
	start, end := utils.MonthRange(s.clock.Now())
	var sales []models.Sale
	if err := s.db.WithContext(ctx).
		Where("sold_at >= ? AND sold_at < ?", start, end).
		Order("sold_at desc").
		Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return sales, nil
}
