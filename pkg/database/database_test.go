package database

import (
	"path/filepath"
	"testing"
	"time"

	"store-app/config"
	"store-app/internal/models"
	applog "store-app/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "store.db"),
	}, gormlogger.Silent, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() { Close(db) })
	return db
}

func TestOpenLogsThroughZap(t *testing.T) {
	db := openTestDB(t)
	assert.IsType(t, &applog.GormLogger{}, db.Config.Logger)
}

func TestSeedMonthlyExpensesIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	created, err := SeedMonthlyExpenses(db, now, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, len(DefaultExpenses), created)

	created, err = SeedMonthlyExpenses(db, now.Add(48*time.Hour), zap.NewNop())
	require.NoError(t, err)
	assert.Zero(t, created)

	var expenses []models.Expense
	require.NoError(t, db.Where("month = ?", "2026-10").Order("id").Find(&expenses).Error)
	require.Len(t, expenses, 5)

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(33900)), "got %s", total)
}

func TestSeedMonthlyExpensesKeepsExistingAmounts(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.Expense{Name: "Rent", Amount: decimal.NewFromInt(30000), Month: "2026-10"}).Error)

	created, err := SeedMonthlyExpenses(db, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 4, created)

	var rent models.Expense
	require.NoError(t, db.Where("name = ? AND month = ?", "Rent", "2026-10").First(&rent).Error)
	assert.True(t, rent.Amount.Equal(decimal.NewFromInt(30000)))
}

func TestSeedMonthlyExpensesPerMonth(t *testing.T) {
	db := openTestDB(t)

	_, err := SeedMonthlyExpenses(db, time.Date(2026, 9, 30, 23, 0, 0, 0, time.UTC), zap.NewNop())
	require.NoError(t, err)
	created, err := SeedMonthlyExpenses(db, time.Date(2026, 10, 1, 1, 0, 0, 0, time.UTC), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 5, created)

	var count int64
	require.NoError(t, db.Model(&models.Expense{}).Count(&count).Error)
	assert.EqualValues(t, 10, count)
}

func TestUniqueExpensePerMonth(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.Expense{Name: "Water", Amount: decimal.NewFromInt(1), Month: "2026-10"}).Error)
	err := db.Create(&models.Expense{Name: "Water", Amount: decimal.NewFromInt(2), Month: "2026-10"}).Error
	assert.Error(t, err)
}

func TestMysqlDSN(t *testing.T) {
	log := zap.NewNop()
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
		want string
	}{
		{
			name: "components",
			cfg:  config.DatabaseConfig{User: "u", Password: "p", Host: "db", Port: "3306", Name: "store"},
			want: "u:p@tcp(db:3306)/store?charset=utf8mb4&parseTime=True&loc=UTC",
		},
		{
			name: "mysql url",
			cfg:  config.DatabaseConfig{URL: "mysql://u:p@db:3306/store"},
			want: "u:p@tcp(db:3306)/store?charset=utf8mb4&parseTime=True&loc=UTC",
		},
		{
			name: "mariadb url with params",
			cfg:  config.DatabaseConfig{URL: "mariadb://u:p@db:3307/store?tls=true"},
			want: "u:p@tcp(db:3307)/store?tls=true",
		},
		{
			name: "raw dsn",
			cfg:  config.DatabaseConfig{URL: "u:p@tcp(db:3306)/store"},
			want: "u:p@tcp(db:3306)/store",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mysqlDSN(tt.cfg, log))
		})
	}
}
