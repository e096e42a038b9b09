package service

import (
	"context"
	"errors"
	"fmt"

	"store-app/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type NewItemInput struct {
	Name           string
	Stock          int
	CapitalPerUnit decimal.Decimal
	SellingPrice   decimal.Decimal
	CashierBonus   decimal.Decimal
}

func (s *Service) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (s *Service) GetItem(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return &item, nil
}

// AddItem stores the item with the submitted stock as-is.
func (s *Service) AddItem(ctx context.Context, in NewItemInput) (*models.Item, error) {
	item := models.Item{
		Name:           in.Name,
		Stock:          in.Stock,
		CapitalPerUnit: in.CapitalPerUnit,
		SellingPrice:   in.SellingPrice,
		CashierBonus:   in.CashierBonus,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	s.logger.Info("Item added", zap.Uint("item_id", item.ID), zap.String("name", item.Name), zap.Int("stock", item.Stock))
	return &item, nil
}

// DeleteItem removes the item row. Sales that reference it are kept.
func (s *Service) DeleteItem(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Item{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete item %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	s.logger.Info("Item deleted", zap.Uint("item_id", id))
	return nil
}
