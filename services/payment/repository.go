package payment

import (
	"context"
	"time"

	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
)

// TransactionRepo is the idempotent payment ledger. All writes are keyed by
// the proof's external id; status transitions are enforced in SQL so they
// stay monotonic under concurrent submissions.
type TransactionRepo interface {
	// CreatePending inserts a placeholder row for an issued quote.
	CreatePending(ctx context.Context, tx *models.Transaction) error

	// UpsertVerified records a verified payment. Resubmitting the same
	// external id updates the existing row instead of inserting a second
	// one, and never demotes a settled row.
	UpsertVerified(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)

	// RecordSettled moves a row to settled and stores the settlement hash.
	// A row that is already settled is left untouched.
	RecordSettled(ctx context.Context, externalID, settlementHash string) (*models.Transaction, error)

	// RecordFailed records a failed verification attempt keyed by external
	// id. Only a pending row is moved to failed; a row that already
	// verified or settled keeps its status.
	RecordFailed(ctx context.Context, tx *models.Transaction) error

	GetByExternalID(ctx context.Context, externalID string) (*models.Transaction, error)
	ListTransactions(ctx context.Context, limit, offset int) ([]models.Transaction, error)
}

// FeeRepo tracks platform fee rows and the exactly-once transfer gate.
type FeeRepo interface {
	// CreateFee inserts the fee row for a transaction if one does not exist.
	CreateFee(ctx context.Context, fee *models.Fee) error

	// ClaimTransfer atomically flips transferred from false to true and
	// reports whether this caller won the claim. Duplicate triggers lose
	// the claim and must not send funds.
	ClaimTransfer(ctx context.Context, transactionID string) (bool, error)

	// ReleaseClaim undoes a claim after a failed send so a retry can claim
	// again.
	ReleaseClaim(ctx context.Context, transactionID string) error

	// RecordTransfer stores the on-chain hash of a completed fee transfer.
	RecordTransfer(ctx context.Context, transactionID, transferHash string) error

	GetByTransactionID(ctx context.Context, transactionID string) (*models.Fee, error)

	// ListPending returns fee rows that have not been transferred yet.
	ListPending(ctx context.Context, limit int) ([]models.Fee, error)
}

// ServiceRepo is the service catalog store with a read-through cache.
type ServiceRepo interface {
	CreateService(ctx context.Context, svc *models.Service) error
	GetService(ctx context.Context, id string) (*models.Service, error)
	ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error)
	UpdateService(ctx context.Context, id string, price *int64, priceDisplay *string, active *bool) (*models.Service, error)
}

// NonceStore records issued quote nonces for auditability. Failures here are
// logged and never block quote issuance.
type NonceStore interface {
	TrackNonce(ctx context.Context, nonce, serviceID string, ttl time.Duration) error
}
