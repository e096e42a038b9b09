// Package service holds the store's business operations on top of gorm.
package service

import (
	"store-app/internal/clock"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db     *gorm.DB
	clock  clock.Clock
	logger *zap.Logger
}

func New(db *gorm.DB, clk clock.Clock, logger *zap.Logger) *Service {
	if clk == nil {
		clk = clock.System{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{db: db, clock: clk, logger: logger}
}
