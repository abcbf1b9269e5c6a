package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
)

// FeeRepo tracks platform fee rows. The transferred flag is the exactly-once
// gate for on-chain forwarding: it only ever flips false -> true through
// ClaimTransfer, and only one caller wins.
type FeeRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewFeeRepo creates a new fee repository instance
func NewFeeRepo(cfg *models.Config, db *sqlx.DB) *FeeRepo {
	return &FeeRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateFee inserts the fee row for a transaction. A duplicate insert for the
// same transaction is a no-op so re-verification cannot double the fee.
func (r *FeeRepo) CreateFee(ctx context.Context, fee *models.Fee) error {
	if fee.ID == "" {
		fee.ID = uuid.New().String()
	}
	now := time.Now()
	fee.CreatedAt = now
	fee.UpdatedAt = now

	query := `
		INSERT INTO fees (id, transaction_id, amount, recipient, transferred, created_at, updated_at)
		VALUES (:id, :transaction_id, :amount, :recipient, :transferred, :created_at, :updated_at)
		ON CONFLICT (transaction_id) DO NOTHING
	`
	if _, err := r.db.NamedExecContext(ctx, query, fee); err != nil {
		return fmt.Errorf("failed to insert fee: %w", err)
	}
	return nil
}

// ClaimTransfer atomically claims the fee for transfer. It returns true only
// for the single caller that flipped transferred from false to true; all
// duplicate triggers observe false and must not send funds.
func (r *FeeRepo) ClaimTransfer(ctx context.Context, transactionID string) (bool, error) {
	query := `
		UPDATE fees SET transferred = true, updated_at = $2
		WHERE transaction_id = $1 AND transferred = false
	`
	result, err := r.db.ExecContext(ctx, query, transactionID, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to claim fee transfer: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read claim result: %w", err)
	}
	return rows == 1, nil
}

// ReleaseClaim undoes a claim after a failed send. The guard on transfer_hash
// keeps a completed transfer from ever being reopened.
func (r *FeeRepo) ReleaseClaim(ctx context.Context, transactionID string) error {
	query := `
		UPDATE fees SET transferred = false, updated_at = $2
		WHERE transaction_id = $1 AND transfer_hash IS NULL
	`
	if _, err := r.db.ExecContext(ctx, query, transactionID, time.Now()); err != nil {
		return fmt.Errorf("failed to release fee claim: %w", err)
	}
	return nil
}

// RecordTransfer stores the on-chain hash of a completed fee transfer.
func (r *FeeRepo) RecordTransfer(ctx context.Context, transactionID, transferHash string) error {
	now := time.Now()
	query := `
		UPDATE fees SET transfer_hash = $2, transferred_at = $3, updated_at = $3
		WHERE transaction_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, transactionID, transferHash, now); err != nil {
		return fmt.Errorf("failed to record fee transfer: %w", err)
	}
	return nil
}

// GetByTransactionID returns the fee row for a transaction.
func (r *FeeRepo) GetByTransactionID(ctx context.Context, transactionID string) (*models.Fee, error) {
	query := `
		SELECT id, transaction_id, amount, recipient, transferred, transfer_hash,
			transferred_at, created_at, updated_at
		FROM fees
		WHERE transaction_id = $1
	`

	var fee models.Fee
	if err := r.db.GetContext(ctx, &fee, query, transactionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("fee not found for transaction: %s", transactionID)
		}
		return nil, fmt.Errorf("failed to get fee: %w", err)
	}
	return &fee, nil
}

// ListPending returns fee rows that have not been transferred yet, oldest
// first, for reconciliation sweeps.
func (r *FeeRepo) ListPending(ctx context.Context, limit int) ([]models.Fee, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := `
		SELECT id, transaction_id, amount, recipient, transferred, transfer_hash,
			transferred_at, created_at, updated_at
		FROM fees
		WHERE transferred = false
		ORDER BY created_at ASC
		LIMIT $1
	`

	fees := []models.Fee{}
	if err := r.db.SelectContext(ctx, &fees, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list pending fees: %w", err)
	}
	return fees, nil
}
