package facilitator

import (
	"time"

	"github.com/0xgaut85/r1x-pay/internal/pkg/logger"
	"github.com/0xgaut85/r1x-pay/internal/pkg/metrics"
	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
	"github.com/0xgaut85/r1x-pay/services/payment"
)

// solanaPayload is the paymentPayload for Solana networks. The transaction is
// identified by its signature; there is no chain id.
type solanaPayload struct {
	Scheme    string `json:"scheme"`
	Network   string `json:"network"`
	Signature string `json:"signature"`
	From      string `json:"from"`
	To        string `json:"to"`
	Amount    string `json:"amount"`
	Token     string `json:"token"`
}

// NewSolanaGateway creates the facilitator gateway for a Solana network.
func NewSolanaGateway(baseURL, apiKey string, timeout time.Duration, network models.Network, l *logger.ZapLogger, rec metrics.Recorder) payment.FacilitatorGW {
	return newGateway(baseURL, apiKey, timeout, network, buildSolanaPayload, l, rec)
}

func buildSolanaPayload(proof *models.PaymentProof, network models.Network) interface{} {
	return solanaPayload{
		Scheme:    schemeExact,
		Network:   network.String(),
		Signature: proof.Signature,
		From:      proof.From,
		To:        proof.To,
		Amount:    proof.Amount,
		Token:     proof.Token,
	}
}
