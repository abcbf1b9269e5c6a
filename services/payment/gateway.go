package payment

import (
	"context"

	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
)

// VerifyOutcome is the result of a facilitator verification. A failed
// verification is carried in the outcome, never as an error.
type VerifyOutcome struct {
	Verified bool
	Reason   string
	Payer    string
}

// SettleOutcome is the result of a facilitator settlement.
type SettleOutcome struct {
	Settled        bool
	SettlementHash string
	Reason         string
}

// SupportedKind is one scheme/network pair a facilitator accepts.
type SupportedKind struct {
	Scheme  string `json:"scheme"`
	Network string `json:"network"`
}

// SupportedResponse lists the payment kinds a facilitator accepts.
type SupportedResponse struct {
	Kinds []SupportedKind `json:"kinds"`
}

// FacilitatorGW delegates on-chain verification and settlement to an external
// facilitator service for one chain family. Implementations check the proof's
// recipient locally before any network call and fold every remote failure
// into the outcome.
type FacilitatorGW interface {
	Verify(ctx context.Context, proof *models.PaymentProof, service *models.Service) (*VerifyOutcome, error)
	Settle(ctx context.Context, proof *models.PaymentProof, service *models.Service) (*SettleOutcome, error)
	Supported(ctx context.Context) (*SupportedResponse, error)
}

// GatewayResolver selects the facilitator gateway for a network.
type GatewayResolver interface {
	Gateway(network models.Network) (FacilitatorGW, error)
}

// FeePublisher enqueues a fee forwarding task. Publishing is fire-and-forget
// relative to the payment flow; a failed publish is logged, not returned to
// the payer.
type FeePublisher interface {
	PublishFeeTransfer(task *models.FeeTransferTask) error
}

// FeeSender moves a claimed fee on chain and returns the transfer hash.
type FeeSender interface {
	// Enabled reports whether a signing key is configured. When false the
	// worker leaves fees untransferred without treating it as a failure.
	Enabled() bool
	TransferFee(ctx context.Context, task *models.FeeTransferTask) (string, error)
}
