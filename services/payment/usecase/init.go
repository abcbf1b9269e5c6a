package usecase

import (
	"github.com/0xgaut85/r1x-pay/internal/pkg/logger"
	"github.com/0xgaut85/r1x-pay/internal/pkg/metrics"
	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
	"github.com/0xgaut85/r1x-pay/internal/pkg/retry"
	"github.com/0xgaut85/r1x-pay/services/payment"
)

// PaymentUC implements the payment use case: quote issuance, verification and
// settlement orchestration, and ledger reads.
type PaymentUC struct {
	cfg       *models.Config
	feePolicy *FeePolicy
	txRepo    payment.TransactionRepo
	feeRepo   payment.FeeRepo
	svcRepo   payment.ServiceRepo
	nonces    payment.NonceStore
	gateways  payment.GatewayResolver
	publisher payment.FeePublisher
	retrier   *retry.Retrier
	logger    *logger.ZapLogger
	metrics   metrics.Recorder
}

// NewPaymentUC creates a new payment use case instance
func NewPaymentUC(
	cfg *models.Config,
	feePolicy *FeePolicy,
	txRepo payment.TransactionRepo,
	feeRepo payment.FeeRepo,
	svcRepo payment.ServiceRepo,
	nonces payment.NonceStore,
	gateways payment.GatewayResolver,
	publisher payment.FeePublisher,
	retrier *retry.Retrier,
	l *logger.ZapLogger,
	rec metrics.Recorder,
) *PaymentUC {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &PaymentUC{
		cfg:       cfg,
		feePolicy: feePolicy,
		txRepo:    txRepo,
		feeRepo:   feeRepo,
		svcRepo:   svcRepo,
		nonces:    nonces,
		gateways:  gateways,
		publisher: publisher,
		retrier:   retrier,
		logger:    l,
		metrics:   rec,
	}
}
