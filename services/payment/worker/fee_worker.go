// Package worker consumes fee transfer tasks and forwards platform fees on
// chain, at most once per transaction.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/0xgaut85/r1x-pay/internal/pkg/logger"
	"github.com/0xgaut85/r1x-pay/internal/pkg/metrics"
	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
	"github.com/0xgaut85/r1x-pay/internal/pkg/nsq"
	"github.com/0xgaut85/r1x-pay/services/payment"
)

const taskTimeout = 60 * time.Second

// FeeWorker claims fee rows through the atomic transfer gate and sends the
// on-chain transfer. The gate, not the queue, is what guarantees a fee goes
// out at most once: duplicate or requeued tasks lose the claim and finish
// without sending.
type FeeWorker struct {
	feeRepo  payment.FeeRepo
	sender   payment.FeeSender
	consumer *nsq.Consumer
	logger   *logger.ZapLogger
	metrics  metrics.Recorder
}

// NewFeeWorker creates the worker and connects it to the fee topic.
func NewFeeWorker(cfg models.NSQConfig, feeRepo payment.FeeRepo, sender payment.FeeSender, l *logger.ZapLogger, rec metrics.Recorder) (*FeeWorker, error) {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}

	w := &FeeWorker{
		feeRepo: feeRepo,
		sender:  sender,
		logger:  l,
		metrics: rec,
	}

	consumer, err := nsq.NewConsumer(cfg.FeeTopic, cfg.FeeChannel, cfg.Address, cfg.MaxInFlight, w.handleMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to start fee worker: %w", err)
	}
	w.consumer = consumer
	return w, nil
}

func (w *FeeWorker) handleMessage(body []byte) error {
	var task models.FeeTransferTask
	if err := nsq.UnmarshalMessage(body, &task); err != nil {
		// Unparseable tasks would requeue forever; drop them.
		w.logger.Error("dropping malformed fee task", logger.Err(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
	defer cancel()

	return w.ProcessTask(ctx, &task)
}

// ProcessTask runs one fee forwarding attempt. Returning an error requeues
// the task; returning nil finishes it.
func (w *FeeWorker) ProcessTask(ctx context.Context, task *models.FeeTransferTask) error {
	labels := map[string]string{"network": task.Network.String()}

	if task.Amount <= 0 {
		return nil
	}

	// Solana fees are not forwarded by the EVM hot wallet; their rows stay
	// unclaimed for an operator sweep.
	if !task.Network.IsEVM() {
		w.logger.Info("skipping fee transfer for non-EVM network",
			logger.String("transaction_id", task.TransactionID),
			logger.String("network", task.Network.String()))
		return nil
	}

	claimed, err := w.feeRepo.ClaimTransfer(ctx, task.TransactionID)
	if err != nil {
		return fmt.Errorf("failed to claim fee transfer: %w", err)
	}
	if !claimed {
		// Already transferred, or another worker holds the claim.
		w.logger.Debug("fee transfer already claimed",
			logger.String("transaction_id", task.TransactionID))
		return nil
	}

	if !w.sender.Enabled() {
		// No hot wallet key configured yet. Release the claim so the fee
		// can be forwarded once one is, and finish the message.
		w.releaseClaim(ctx, task.TransactionID)
		w.logger.Warn("fee transfer skipped, no signing key configured",
			logger.String("transaction_id", task.TransactionID))
		return nil
	}

	transferHash, err := w.sender.TransferFee(ctx, task)
	if err != nil {
		w.releaseClaim(ctx, task.TransactionID)
		w.metrics.IncCounter("fee_transfer_failed", labels)
		return fmt.Errorf("fee transfer failed for %s: %w", task.TransactionID, err)
	}

	if err := w.feeRepo.RecordTransfer(ctx, task.TransactionID, transferHash); err != nil {
		// The transfer went out; keep the claim so it cannot be sent again
		// and surface the bookkeeping failure in the logs only.
		w.logger.Error("failed to record fee transfer hash",
			logger.String("transaction_id", task.TransactionID),
			logger.String("transfer_hash", transferHash),
			logger.Err(err))
		return nil
	}

	w.metrics.IncCounter("fee_transfer_succeeded", labels)
	w.logger.Info("fee transferred",
		logger.String("transaction_id", task.TransactionID),
		logger.String("transfer_hash", transferHash),
		logger.Int64("amount", task.Amount))
	return nil
}

func (w *FeeWorker) releaseClaim(ctx context.Context, transactionID string) {
	if err := w.feeRepo.ReleaseClaim(ctx, transactionID); err != nil {
		w.logger.Error("failed to release fee claim",
			logger.String("transaction_id", transactionID),
			logger.Err(err))
	}
}

// Stop drains the consumer.
func (w *FeeWorker) Stop() {
	if w.consumer != nil {
		w.consumer.Stop()
	}
}
