package models

import (
	"fmt"
	"strings"
	"time"
)

// X402Version is the protocol version advertised in 402 responses.
const X402Version = 1

// PaymentQuote is the priced, time-boxed payment request issued on a 402.
// Quotes are ephemeral: a fresh nonce and deadline are generated on every
// unpaid request and never reused.
type PaymentQuote struct {
	Amount        int64     `json:"amount"`
	AmountDisplay string    `json:"amount_display"`
	TokenAddress  string    `json:"token_address"`
	TokenSymbol   string    `json:"token_symbol"`
	Recipient     string    `json:"recipient"`
	Network       Network   `json:"network"`
	ChainID       int64     `json:"chain_id"`
	Nonce         string    `json:"nonce"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// PaymentRequirements is one entry of the "accepts" array in a 402 body.
type PaymentRequirements struct {
	Scheme            string                 `json:"scheme"`
	Network           string                 `json:"network"`
	MaxAmountRequired string                 `json:"maxAmountRequired"`
	Resource          string                 `json:"resource"`
	Description       string                 `json:"description"`
	MimeType          string                 `json:"mimeType"`
	PayTo             string                 `json:"payTo"`
	MaxTimeoutSeconds int                    `json:"maxTimeoutSeconds"`
	Asset             string                 `json:"asset"`
	Extra             map[string]interface{} `json:"extra,omitempty"`
}

// X402Response is the body returned with HTTP 402.
type X402Response struct {
	X402Version int                   `json:"x402Version"`
	Accepts     []PaymentRequirements `json:"accepts"`
	Error       string                `json:"error,omitempty"`
}

// PaymentProof is client-submitted evidence of an on-chain payment, normalized
// across chain families. EVM proofs carry TransactionHash, Solana proofs carry
// Signature; ExternalID resolves whichever one applies.
type PaymentProof struct {
	Network         Network `json:"network,omitempty"`
	TransactionHash string  `json:"transactionHash,omitempty"`
	Signature       string  `json:"signature,omitempty"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	Amount          string  `json:"amount"`
	Token           string  `json:"token"`
	BlockNumber     uint64  `json:"blockNumber,omitempty"`
	Timestamp       int64   `json:"timestamp,omitempty"`
}

// ExternalID returns the proof's unique on-chain identifier, the natural
// idempotency key for the ledger.
func (p *PaymentProof) ExternalID() string {
	if p.Signature != "" {
		return p.Signature
	}
	return p.TransactionHash
}

// Validate checks the fields every proof must carry regardless of chain family.
func (p *PaymentProof) Validate() error {
	if p.ExternalID() == "" {
		return fmt.Errorf("proof is missing a transaction identifier")
	}
	if p.From == "" {
		return fmt.Errorf("proof is missing the payer address")
	}
	if p.To == "" {
		return fmt.Errorf("proof is missing the recipient address")
	}
	if p.Amount == "" {
		return fmt.Errorf("proof is missing the amount")
	}
	if p.Token == "" {
		return fmt.Errorf("proof is missing the token")
	}
	return nil
}

// MatchesRecipient reports whether the proof pays the expected recipient.
// Address comparison is case-insensitive because EVM addresses have no
// canonical casing on the wire.
func (p *PaymentProof) MatchesRecipient(expected string) bool {
	return strings.EqualFold(p.To, expected)
}

// PayRequest is the body of POST /pay.
type PayRequest struct {
	ServiceID string        `json:"serviceId" validate:"required"`
	Amount    string        `json:"amount,omitempty"`
	Network   string        `json:"network,omitempty"`
	Proof     *PaymentProof `json:"proof,omitempty"`
}

// VerifyPaymentRequest is the body of POST /verify.
type VerifyPaymentRequest struct {
	ServiceID string        `json:"serviceId" validate:"required"`
	Proof     *PaymentProof `json:"proof,omitempty"`
	Settle    bool          `json:"settle,omitempty"`
	Network   string        `json:"network,omitempty"`
}

// PaymentReceipt summarizes a recorded payment for API responses.
type PaymentReceipt struct {
	TransactionHash string `json:"transactionHash"`
	Amount          string `json:"amount"`
	Fee             string `json:"fee"`
	MerchantAmount  string `json:"merchantAmount"`
	ResourceURL     string `json:"resourceUrl,omitempty"`
	SettlementHash  string `json:"settlementHash,omitempty"`
}

// VerifyPaymentResponse is the result of POST /verify.
type VerifyPaymentResponse struct {
	Verified bool            `json:"verified"`
	Settled  *bool           `json:"settled,omitempty"`
	Reason   string          `json:"reason,omitempty"`
	Payment  *PaymentReceipt `json:"payment,omitempty"`
}
