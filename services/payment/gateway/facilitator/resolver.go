package facilitator

import (
	"fmt"
	"time"

	"github.com/0xgaut85/r1x-pay/internal/pkg/logger"
	"github.com/0xgaut85/r1x-pay/internal/pkg/metrics"
	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
	"github.com/0xgaut85/r1x-pay/services/payment"
)

// Resolver routes networks to their chain family's facilitator gateway.
type Resolver struct {
	evm    payment.FacilitatorGW
	solana payment.FacilitatorGW
}

// NewResolver builds gateways for both chain families from configuration.
// A family with no configured base URL resolves to an error at call time,
// not at startup, so a single-family deployment stays valid.
func NewResolver(cfg models.FacilitatorConfig, l *logger.ZapLogger, rec metrics.Recorder) *Resolver {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	r := &Resolver{}
	if cfg.EVMBaseURL != "" {
		r.evm = NewEVMGateway(cfg.EVMBaseURL, cfg.APIKey, timeout, models.NetworkBase, l, rec)
	}
	if cfg.SolanaBaseURL != "" {
		r.solana = NewSolanaGateway(cfg.SolanaBaseURL, cfg.APIKey, timeout, models.NetworkSolana, l, rec)
	}
	return r
}

// Gateway returns the facilitator gateway for the given network.
func (r *Resolver) Gateway(network models.Network) (payment.FacilitatorGW, error) {
	switch {
	case network.IsEVM():
		if r.evm == nil {
			return nil, fmt.Errorf("no facilitator configured for EVM networks")
		}
		return r.evm, nil
	case network.IsSolana():
		if r.solana == nil {
			return nil, fmt.Errorf("no facilitator configured for Solana networks")
		}
		return r.solana, nil
	}
	return nil, fmt.Errorf("unsupported network: %s", network)
}
