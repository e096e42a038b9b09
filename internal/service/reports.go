package service

import (
	"context"
	"fmt"

	"store-app/internal/models"
	"store-app/internal/utils"

	"github.com/shopspring/decimal"
)

type ManagerDashboard struct {
	Month         string
	Items         []models.Item
	Expenses      []models.Expense
	TotalExpenses decimal.Decimal
	Revenue       decimal.Decimal
	Profit        decimal.Decimal
}

type CashierPanel struct {
	Month      string
	Items      []models.Item
	Sales      []models.Sale
	TotalBonus decimal.Decimal
}

func (s *Service) ManagerDashboard(ctx context.Context) (*ManagerDashboard, error) {
	now := s.clock.Now()
	month := utils.MonthKey(now)

	items, err := s.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	var expenses []models.Expense
	if err := s.db.WithContext(ctx).Where("month = ?", month).Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	sales, err := s.SalesThisMonth(ctx)
	if err != nil {
		return nil, err
	}

	totalExpenses := SumExpenses(expenses)
	revenue := SumRevenue(sales)
	return &ManagerDashboard{
		Month:         month,
		Items:         items,
		Expenses:      expenses,
		TotalExpenses: totalExpenses,
		Revenue:       revenue,
		Profit:        revenue.Sub(totalExpenses),
	}, nil
}

func (s *Service) CashierPanel(ctx context.Context) (*CashierPanel, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.SalesThisMonth(ctx)
	if err != nil {
		return nil, err
	}
	return &CashierPanel{
		Month:      utils.MonthKey(s.clock.Now()),
		Items:      items,
		Sales:      sales,
		TotalBonus: SumBonus(sales),
	}, nil
}

func SumRevenue(sales []models.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.Revenue())
	}
	return total
}

func SumBonus(sales []models.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.Bonus())
	}
	return total
}

func SumExpenses(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
