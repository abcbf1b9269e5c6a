package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xgaut85/r1x-pay/internal/pkg/logger"
	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
)

func setupServiceRepoTest(t *testing.T) (*ServiceRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	l, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)

	// No cache in tests: reads fall straight through to the database.
	repo := NewServiceRepo(&models.Config{}, sqlxDB, nil, l)

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func serviceColumns() []string {
	return []string{
		"id", "name", "category", "merchant_address", "network", "chain_id",
		"token_address", "token_symbol", "price_minor", "price_display", "active",
		"upstream_url", "created_at", "updated_at",
	}
}

func serviceRow(id string, active bool) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id, "Market Data", "data", "0xMerchant", "base", int64(8453),
		"0xUSDC", "USDC", int64(25000000), "25.00", active,
		nil, now, now,
	}
}

func TestCreateService(t *testing.T) {
	repo, mock, cleanup := setupServiceRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO services").
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := &models.Service{
		Name:            "Market Data",
		MerchantAddress: "0xMerchant",
		Network:         models.NetworkBase,
		ChainID:         8453,
		TokenAddress:    "0xUSDC",
		TokenSymbol:     "USDC",
		PriceMinor:      25000000,
		PriceDisplay:    "25.00",
		Active:          true,
	}
	err := repo.CreateService(context.Background(), svc)

	require.NoError(t, err)
	assert.NotEmpty(t, svc.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetService(t *testing.T) {
	repo, mock, cleanup := setupServiceRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows(serviceColumns()).AddRow(serviceRow("svc-1", true)...)
	mock.ExpectQuery("SELECT (.+) FROM services").
		WithArgs("svc-1").
		WillReturnRows(rows)

	svc, err := repo.GetService(context.Background(), "svc-1")

	require.NoError(t, err)
	assert.Equal(t, "svc-1", svc.ID)
	assert.Equal(t, models.NetworkBase, svc.Network)
	assert.Equal(t, int64(25000000), svc.PriceMinor)
	assert.True(t, svc.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetService_NotFound(t *testing.T) {
	repo, mock, cleanup := setupServiceRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM services").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	svc, err := repo.GetService(context.Background(), "missing")

	require.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "service not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListServices_ActiveOnly(t *testing.T) {
	repo, mock, cleanup := setupServiceRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows(serviceColumns()).AddRow(serviceRow("svc-1", true)...)
	mock.ExpectQuery("SELECT (.+) FROM services(.+)WHERE active = true").
		WillReturnRows(rows)

	services, err := repo.ListServices(context.Background(), true)

	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.True(t, services[0].Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateService(t *testing.T) {
	repo, mock, cleanup := setupServiceRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE services SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := sqlmock.NewRows(serviceColumns()).AddRow(serviceRow("svc-1", false)...)
	mock.ExpectQuery("SELECT (.+) FROM services").
		WithArgs("svc-1").
		WillReturnRows(rows)

	active := false
	svc, err := repo.UpdateService(context.Background(), "svc-1", nil, nil, &active)

	require.NoError(t, err)
	assert.False(t, svc.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateService_NotFound(t *testing.T) {
	repo, mock, cleanup := setupServiceRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE services SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	active := true
	svc, err := repo.UpdateService(context.Background(), "missing", nil, nil, &active)

	require.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "service not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
