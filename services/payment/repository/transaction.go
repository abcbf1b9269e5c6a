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

// TransactionRepo implements the payment ledger on Postgres. Idempotency and
// monotonic status transitions are enforced in SQL so concurrent submissions
// of the same proof cannot race past each other.
type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTransactionRepo creates a new transaction repository instance
func NewTransactionRepo(cfg *models.Config, db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreatePending inserts a placeholder ledger row for an issued quote.
func (r *TransactionRepo) CreatePending(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	now := time.Now()
	tx.CreatedAt = now
	tx.UpdatedAt = now
	tx.Status = models.TransactionPending

	query := `
		INSERT INTO transactions (
			id, external_id, service_id, payer_address, recipient_address,
			gross_amount, fee_amount, net_amount, token_address, network,
			chain_id, status, created_at, updated_at
		) VALUES (:id, :external_id, :service_id, :payer_address, :recipient_address,
			:gross_amount, :fee_amount, :net_amount, :token_address, :network,
			:chain_id, :status, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, tx); err != nil {
		return fmt.Errorf("failed to insert pending transaction: %w", err)
	}
	return nil
}

// UpsertVerified records a verified payment keyed by external id. A resubmitted
// proof updates the existing row in place, and a row that already reached
// settled keeps its status and settlement timestamps.
func (r *TransactionRepo) UpsertVerified(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	now := time.Now()

	query := `
		INSERT INTO transactions (
			id, external_id, service_id, payer_address, recipient_address,
			gross_amount, fee_amount, net_amount, token_address, network,
			chain_id, status, verified_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13, $13)
		ON CONFLICT (external_id) DO UPDATE SET
			service_id        = EXCLUDED.service_id,
			payer_address     = EXCLUDED.payer_address,
			recipient_address = EXCLUDED.recipient_address,
			gross_amount      = EXCLUDED.gross_amount,
			fee_amount        = EXCLUDED.fee_amount,
			net_amount        = EXCLUDED.net_amount,
			token_address     = EXCLUDED.token_address,
			network           = EXCLUDED.network,
			chain_id          = EXCLUDED.chain_id,
			status            = CASE WHEN transactions.status = 'settled'
			                         THEN transactions.status
			                         ELSE 'verified'::text END,
			verified_at       = COALESCE(transactions.verified_at, EXCLUDED.verified_at),
			updated_at        = EXCLUDED.updated_at
		RETURNING id, external_id, service_id, payer_address, recipient_address,
			gross_amount, fee_amount, net_amount, token_address, network,
			chain_id, status, settlement_hash, verified_at, settled_at,
			created_at, updated_at
	`

	var result models.Transaction
	err := r.db.QueryRowxContext(ctx, query,
		tx.ID, tx.ExternalID, tx.ServiceID, tx.PayerAddress, tx.RecipientAddress,
		tx.GrossAmount, tx.FeeAmount, tx.NetAmount, tx.TokenAddress, tx.Network,
		tx.ChainID, models.TransactionVerified, now,
	).StructScan(&result)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert verified transaction: %w", err)
	}
	return &result, nil
}

// RecordSettled moves a row to settled and stores the settlement hash. A row
// that is already settled is returned unchanged so duplicate settlements stay
// harmless.
func (r *TransactionRepo) RecordSettled(ctx context.Context, externalID, settlementHash string) (*models.Transaction, error) {
	now := time.Now()
	query := `
		UPDATE transactions SET
			status          = 'settled',
			settlement_hash = $2,
			settled_at      = $3,
			updated_at      = $3
		WHERE external_id = $1 AND status <> 'settled'
		RETURNING id, external_id, service_id, payer_address, recipient_address,
			gross_amount, fee_amount, net_amount, token_address, network,
			chain_id, status, settlement_hash, verified_at, settled_at,
			created_at, updated_at
	`

	var result models.Transaction
	err := r.db.QueryRowxContext(ctx, query, externalID, settlementHash, now).StructScan(&result)
	if err == nil {
		return &result, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to record settlement: %w", err)
	}

	// Either the row is already settled or it does not exist.
	existing, getErr := r.GetByExternalID(ctx, externalID)
	if getErr != nil {
		return nil, getErr
	}
	return existing, nil
}

// RecordFailed records a failed verification attempt. The status guard only
// demotes pending rows, so a proof resubmitted while the facilitator is down
// cannot pull an already verified row back to failed.
func (r *TransactionRepo) RecordFailed(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	now := time.Now()

	query := `
		INSERT INTO transactions (
			id, external_id, service_id, payer_address, recipient_address,
			gross_amount, fee_amount, net_amount, token_address, network,
			chain_id, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
		ON CONFLICT (external_id) DO UPDATE SET
			status     = CASE WHEN transactions.status = 'pending'
			                  THEN 'failed'::text
			                  ELSE transactions.status END,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query,
		tx.ID, tx.ExternalID, tx.ServiceID, tx.PayerAddress, tx.RecipientAddress,
		tx.GrossAmount, tx.FeeAmount, tx.NetAmount, tx.TokenAddress, tx.Network,
		tx.ChainID, models.TransactionFailed, now,
	); err != nil {
		return fmt.Errorf("failed to record failed transaction: %w", err)
	}
	return nil
}

// GetByExternalID looks up a ledger row by its on-chain identifier.
func (r *TransactionRepo) GetByExternalID(ctx context.Context, externalID string) (*models.Transaction, error) {
	query := `
		SELECT id, external_id, service_id, payer_address, recipient_address,
			gross_amount, fee_amount, net_amount, token_address, network,
			chain_id, status, settlement_hash, verified_at, settled_at,
			created_at, updated_at
		FROM transactions
		WHERE external_id = $1
	`

	var tx models.Transaction
	if err := r.db.GetContext(ctx, &tx, query, externalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction not found: %s", externalID)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

// ListTransactions returns ledger rows, most recent first.
func (r *TransactionRepo) ListTransactions(ctx context.Context, limit, offset int) ([]models.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, external_id, service_id, payer_address, recipient_address,
			gross_amount, fee_amount, net_amount, token_address, network,
			chain_id, status, settlement_hash, verified_at, settled_at,
			created_at, updated_at
		FROM transactions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	txs := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &txs, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}
