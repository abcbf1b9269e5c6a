package models

import (
	"time"
)

// TransactionStatus is the lifecycle state of a ledger row. Transitions are
// monotonic: pending -> verified -> settled, or pending -> failed. A settled
// row is never moved backwards.
type TransactionStatus string

const (
	TransactionPending  TransactionStatus = "pending"
	TransactionVerified TransactionStatus = "verified"
	TransactionSettled  TransactionStatus = "settled"
	TransactionFailed   TransactionStatus = "failed"
)

// Transaction is the durable record of a payment, keyed by the proof's
// on-chain identifier. At most one row exists per external id.
type Transaction struct {
	ID               string            `json:"id" db:"id"`
	ExternalID       string            `json:"external_id" db:"external_id"`
	ServiceID        string            `json:"service_id" db:"service_id"`
	PayerAddress     string            `json:"payer_address" db:"payer_address"`
	RecipientAddress string            `json:"recipient_address" db:"recipient_address"`
	GrossAmount      int64             `json:"gross_amount" db:"gross_amount"`
	FeeAmount        int64             `json:"fee_amount" db:"fee_amount"`
	NetAmount        int64             `json:"net_amount" db:"net_amount"`
	TokenAddress     string            `json:"token_address" db:"token_address"`
	Network          Network           `json:"network" db:"network"`
	ChainID          int64             `json:"chain_id" db:"chain_id"`
	Status           TransactionStatus `json:"status" db:"status"`
	SettlementHash   *string           `json:"settlement_hash,omitempty" db:"settlement_hash"`
	VerifiedAt       *time.Time        `json:"verified_at,omitempty" db:"verified_at"`
	SettledAt        *time.Time        `json:"settled_at,omitempty" db:"settled_at"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" db:"updated_at"`
}

// Fee is the platform's share of a transaction, created once verification
// succeeds and mutated exactly once when the on-chain transfer goes out.
type Fee struct {
	ID            string     `json:"id" db:"id"`
	TransactionID string     `json:"transaction_id" db:"transaction_id"`
	Amount        int64      `json:"amount" db:"amount"`
	Recipient     string     `json:"recipient" db:"recipient"`
	Transferred   bool       `json:"transferred" db:"transferred"`
	TransferHash  *string    `json:"transfer_hash,omitempty" db:"transfer_hash"`
	TransferredAt *time.Time `json:"transferred_at,omitempty" db:"transferred_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// FeeTransferTask is the queue message that triggers one fee forwarding
// attempt. Requeued by the worker on transient failure.
type FeeTransferTask struct {
	TransactionID string  `json:"transaction_id"`
	ExternalID    string  `json:"external_id"`
	Network       Network `json:"network"`
	TokenAddress  string  `json:"token_address"`
	Amount        int64   `json:"amount"`
	Recipient     string  `json:"recipient"`
}
