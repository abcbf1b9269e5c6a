package payment

import (
	"context"

	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
)

// PaymentUC defines the payment use case operations: quote issuance,
// verification and settlement, and ledger reads.
type PaymentUC interface {
	// IssueQuote prices access to a service and returns a fresh, time-boxed
	// payment quote. A new nonce is generated on every call.
	IssueQuote(ctx context.Context, serviceID string, requestedAmount string, network string) (*models.PaymentQuote, *models.Service, error)

	// QuoteResponse renders a quote as the x402 402 response body.
	QuoteResponse(service *models.Service, quote *models.PaymentQuote, errMsg string) *models.X402Response

	// VerifyPayment verifies a submitted proof against the service's
	// requirements, records the outcome in the ledger, and optionally
	// settles. Verification failure is a response, not an error.
	VerifyPayment(ctx context.Context, serviceID string, proof *models.PaymentProof, settle bool) (*models.VerifyPaymentResponse, error)

	// Supported reports the schemes and networks the facilitator for the
	// given network accepts.
	Supported(ctx context.Context, network string) (*SupportedResponse, error)

	// GetTransaction looks up a ledger row by its on-chain identifier.
	GetTransaction(ctx context.Context, externalID string) (*models.Transaction, error)

	// ListTransactions returns ledger rows, most recent first.
	ListTransactions(ctx context.Context, limit, offset int) ([]models.Transaction, error)

	// ListPendingFees returns fee rows awaiting on-chain transfer, for
	// operator reconciliation.
	ListPendingFees(ctx context.Context, limit int) ([]models.Fee, error)
}

// ServiceUC defines the service catalog operations.
type ServiceUC interface {
	CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error)
	UpdateService(ctx context.Context, id string, req *models.UpdateServiceRequest) (*models.Service, error)
}
