package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
)

func setupTransactionRepoTest(t *testing.T) (*TransactionRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewTransactionRepo(&models.Config{}, sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func transactionColumns() []string {
	return []string{
		"id", "external_id", "service_id", "payer_address", "recipient_address",
		"gross_amount", "fee_amount", "net_amount", "token_address", "network",
		"chain_id", "status", "settlement_hash", "verified_at", "settled_at",
		"created_at", "updated_at",
	}
}

func TestCreatePending(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx := &models.Transaction{
		ExternalID:       "quote-abc",
		ServiceID:        "svc-1",
		RecipientAddress: "0xMerchant",
		GrossAmount:      25000000,
		FeeAmount:        1000000,
		NetAmount:        24000000,
		TokenAddress:     "0xUSDC",
		Network:          models.NetworkBase,
		ChainID:          8453,
	}
	err := repo.CreatePending(context.Background(), tx)

	require.NoError(t, err)
	assert.NotEmpty(t, tx.ID, "an id must be generated")
	assert.Equal(t, models.TransactionPending, tx.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertVerified(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows(transactionColumns()).
		AddRow("tx-1", "0xabc123", "svc-1", "0xPayer", "0xMerchant",
			int64(25000000), int64(1000000), int64(24000000), "0xUSDC", "base",
			int64(8453), "verified", nil, now, nil, now, now)

	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs("tx-1", "0xabc123", "svc-1", "0xPayer", "0xMerchant",
			int64(25000000), int64(1000000), int64(24000000), "0xUSDC", models.NetworkBase,
			int64(8453), models.TransactionVerified, sqlmock.AnyArg()).
		WillReturnRows(rows)

	result, err := repo.UpsertVerified(context.Background(), &models.Transaction{
		ID:               "tx-1",
		ExternalID:       "0xabc123",
		ServiceID:        "svc-1",
		PayerAddress:     "0xPayer",
		RecipientAddress: "0xMerchant",
		GrossAmount:      25000000,
		FeeAmount:        1000000,
		NetAmount:        24000000,
		TokenAddress:     "0xUSDC",
		Network:          models.NetworkBase,
		ChainID:          8453,
	})

	require.NoError(t, err)
	assert.Equal(t, "tx-1", result.ID)
	assert.Equal(t, models.TransactionVerified, result.Status)
	assert.NotNil(t, result.VerifiedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertVerified_SettledRowKeepsStatus(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	// The upsert's CASE keeps a settled row settled; the repo just surfaces
	// whatever the database returns.
	now := time.Now()
	hash := "0xsettled"
	rows := sqlmock.NewRows(transactionColumns()).
		AddRow("tx-1", "0xabc123", "svc-1", "0xPayer", "0xMerchant",
			int64(25000000), int64(1000000), int64(24000000), "0xUSDC", "base",
			int64(8453), "settled", hash, now, now, now, now)

	mock.ExpectQuery("INSERT INTO transactions").WillReturnRows(rows)

	result, err := repo.UpsertVerified(context.Background(), &models.Transaction{
		ID:         "tx-2",
		ExternalID: "0xabc123",
		ServiceID:  "svc-1",
		Network:    models.NetworkBase,
	})

	require.NoError(t, err)
	assert.Equal(t, models.TransactionSettled, result.Status)
	require.NotNil(t, result.SettlementHash)
	assert.Equal(t, "0xsettled", *result.SettlementHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordSettled(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	now := time.Now()
	hash := "0xsettled"
	rows := sqlmock.NewRows(transactionColumns()).
		AddRow("tx-1", "0xabc123", "svc-1", "0xPayer", "0xMerchant",
			int64(25000000), int64(1000000), int64(24000000), "0xUSDC", "base",
			int64(8453), "settled", hash, now, now, now, now)

	mock.ExpectQuery("UPDATE transactions SET").
		WithArgs("0xabc123", "0xsettled", sqlmock.AnyArg()).
		WillReturnRows(rows)

	result, err := repo.RecordSettled(context.Background(), "0xabc123", "0xsettled")

	require.NoError(t, err)
	assert.Equal(t, models.TransactionSettled, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordSettled_AlreadySettledReturnsExisting(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	// The guarded update matches no rows; the repo falls back to reading the
	// row, which is already settled with the first settlement's hash.
	mock.ExpectQuery("UPDATE transactions SET").
		WithArgs("0xabc123", "0xsecond", sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	now := time.Now()
	firstHash := "0xfirst"
	rows := sqlmock.NewRows(transactionColumns()).
		AddRow("tx-1", "0xabc123", "svc-1", "0xPayer", "0xMerchant",
			int64(25000000), int64(1000000), int64(24000000), "0xUSDC", "base",
			int64(8453), "settled", firstHash, now, now, now, now)
	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs("0xabc123").
		WillReturnRows(rows)

	result, err := repo.RecordSettled(context.Background(), "0xabc123", "0xsecond")

	require.NoError(t, err)
	assert.Equal(t, models.TransactionSettled, result.Status)
	require.NotNil(t, result.SettlementHash)
	assert.Equal(t, "0xfirst", *result.SettlementHash, "the first settlement hash must win")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordFailed(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO transactions(.+)ON CONFLICT").
		WithArgs(sqlmock.AnyArg(), "0xabc123", "svc-1", "0xPayer", "0xMerchant",
			int64(25000000), int64(1000000), int64(24000000), "0xUSDC",
			models.NetworkBase, int64(8453), models.TransactionFailed,
			sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RecordFailed(context.Background(), &models.Transaction{
		ExternalID:       "0xabc123",
		ServiceID:        "svc-1",
		PayerAddress:     "0xPayer",
		RecipientAddress: "0xMerchant",
		GrossAmount:      25000000,
		FeeAmount:        1000000,
		NetAmount:        24000000,
		TokenAddress:     "0xUSDC",
		Network:          models.NetworkBase,
		ChainID:          8453,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordFailed_OnlyPendingRowsAreDemoted(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	// The status guard lives in the upsert itself: only a pending row moves
	// to failed, a verified or settled row keeps its status when the same
	// proof is resubmitted during a facilitator outage.
	mock.ExpectExec("WHEN transactions.status = 'pending'(.+)THEN 'failed'(.+)ELSE transactions.status").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RecordFailed(context.Background(), &models.Transaction{
		ExternalID: "0xabc123",
		Network:    models.NetworkBase,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByExternalID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs("0xmissing").
		WillReturnError(sql.ErrNoRows)

	result, err := repo.GetByExternalID(context.Background(), "0xmissing")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "transaction not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTransactions_ClampsLimit(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs(50, 0).
		WillReturnRows(sqlmock.NewRows(transactionColumns()))

	txs, err := repo.ListTransactions(context.Background(), -5, -1)

	require.NoError(t, err)
	assert.Empty(t, txs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTransactions_DatabaseError(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WillReturnError(errors.New("connection reset"))

	txs, err := repo.ListTransactions(context.Background(), 10, 0)

	require.Error(t, err)
	assert.Nil(t, txs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
