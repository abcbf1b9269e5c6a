package facilitator

import (
	"time"

	"github.com/0xgaut85/r1x-pay/internal/pkg/logger"
	"github.com/0xgaut85/r1x-pay/internal/pkg/metrics"
	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
	"github.com/0xgaut85/r1x-pay/services/payment"
)

// evmPayload is the paymentPayload for EVM networks. The transaction is
// identified by its hash and the payload carries the chain id so the
// facilitator verifies against the right chain.
type evmPayload struct {
	Scheme          string `json:"scheme"`
	Network         string `json:"network"`
	TransactionHash string `json:"transactionHash"`
	From            string `json:"from"`
	To              string `json:"to"`
	Amount          string `json:"amount"`
	Token           string `json:"token"`
	ChainID         int64  `json:"chainId"`
	BlockNumber     uint64 `json:"blockNumber,omitempty"`
}

// NewEVMGateway creates the facilitator gateway for an EVM network.
func NewEVMGateway(baseURL, apiKey string, timeout time.Duration, network models.Network, l *logger.ZapLogger, rec metrics.Recorder) payment.FacilitatorGW {
	return newGateway(baseURL, apiKey, timeout, network, buildEVMPayload, l, rec)
}

func buildEVMPayload(proof *models.PaymentProof, network models.Network) interface{} {
	return evmPayload{
		Scheme:          schemeExact,
		Network:         network.String(),
		TransactionHash: proof.TransactionHash,
		From:            proof.From,
		To:              proof.To,
		Amount:          proof.Amount,
		Token:           proof.Token,
		ChainID:         network.ChainID(),
		BlockNumber:     proof.BlockNumber,
	}
}
