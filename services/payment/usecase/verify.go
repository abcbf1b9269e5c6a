package usecase

import (
	"context"
	"errors"
	"strconv"

	"github.com/0xgaut85/r1x-pay/internal/pkg/currency"
	"github.com/0xgaut85/r1x-pay/internal/pkg/logger"
	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
	"github.com/0xgaut85/r1x-pay/services/payment"
)

// Sentinels used to drive the single-retry policy around facilitator calls.
var (
	errVerifyRejected = errors.New("verification rejected")
	errSettleRejected = errors.New("settlement rejected")
)

// VerifyPayment verifies a submitted proof, records the outcome in the ledger,
// and optionally settles. Duplicate submissions of the same proof converge on
// one ledger row and return the same successful result. Verification failure
// is carried in the response; only malformed input surfaces as an error.
func (uc *PaymentUC) VerifyPayment(ctx context.Context, serviceID string, proof *models.PaymentProof, settle bool) (*models.VerifyPaymentResponse, error) {
	if proof == nil {
		return nil, payment.NewError(payment.ErrCodeInvalidInput, "missing payment proof")
	}
	if err := proof.Validate(); err != nil {
		return nil, payment.NewError(payment.ErrCodeInvalidInput, err.Error())
	}

	svc, err := uc.svcRepo.GetService(ctx, serviceID)
	if err != nil {
		return nil, payment.NewError(payment.ErrCodeNotFound, err.Error())
	}

	if proof.Network == "" {
		proof.Network = svc.Network
	}
	network := proof.Network

	// Misdirected payments are rejected before any facilitator call.
	if !proof.MatchesRecipient(svc.MerchantAddress) {
		return nil, payment.NewError(payment.ErrCodeRecipientMismatch,
			"payment recipient does not match the service merchant")
	}

	gross, err := parseProofAmount(proof.Amount)
	if err != nil {
		return nil, payment.NewError(payment.ErrCodeInvalidInput, err.Error())
	}

	gw, err := uc.gateways.Gateway(network)
	if err != nil {
		return nil, payment.NewError(payment.ErrCodeUnsupportedNetwork, err.Error())
	}

	labels := map[string]string{"network": network.String()}

	var outcome *payment.VerifyOutcome
	retryErr := uc.retrier.Execute(ctx, func(ctx context.Context) error {
		o, gwErr := gw.Verify(ctx, proof, svc)
		if gwErr != nil {
			// Drop any earlier rejection so the surfaced reason always
			// describes the last attempt.
			outcome = nil
			return gwErr
		}
		outcome = o
		if !o.Verified {
			return errVerifyRejected
		}
		return nil
	})
	if retryErr != nil && outcome == nil {
		outcome = &payment.VerifyOutcome{Verified: false, Reason: retryErr.Error()}
	}

	if !outcome.Verified {
		uc.metrics.IncCounter("verification_failed", labels)
		uc.recordFailed(ctx, proof, svc, gross)
		return &models.VerifyPaymentResponse{
			Verified: false,
			Reason:   outcome.Reason,
		}, nil
	}

	uc.metrics.IncCounter("verification_succeeded", labels)

	fee, net := uc.feePolicy.Compute(gross)
	row, err := uc.txRepo.UpsertVerified(ctx, &models.Transaction{
		ExternalID:       proof.ExternalID(),
		ServiceID:        svc.ID,
		PayerAddress:     proof.From,
		RecipientAddress: proof.To,
		GrossAmount:      gross,
		FeeAmount:        fee,
		NetAmount:        net,
		TokenAddress:     proof.Token,
		Network:          network,
		ChainID:          network.ChainID(),
	})
	if err != nil {
		return nil, payment.NewError(payment.ErrCodeInternal, "failed to record payment")
	}

	if err := uc.feeRepo.CreateFee(ctx, &models.Fee{
		TransactionID: row.ID,
		Amount:        fee,
		Recipient:     uc.feePolicy.Recipient(),
	}); err != nil {
		// The fee row is recoverable from the transaction; the payer's
		// access never depends on it.
		uc.logger.Error("failed to create fee row",
			logger.String("transaction_id", row.ID),
			logger.Err(err))
	}

	resp := &models.VerifyPaymentResponse{
		Verified: true,
		Payment: &models.PaymentReceipt{
			TransactionHash: proof.ExternalID(),
			Amount:          currency.ToDecimalString(gross),
			Fee:             currency.ToDecimalString(fee),
			MerchantAmount:  currency.ToDecimalString(net),
		},
	}
	if row.SettlementHash != nil {
		resp.Payment.SettlementHash = *row.SettlementHash
	}
	if svc.UpstreamURL != nil {
		resp.Payment.ResourceURL = *svc.UpstreamURL
	}

	if !settle {
		return resp, nil
	}

	settled := uc.settlePayment(ctx, gw, proof, svc, row, resp, labels)
	resp.Settled = &settled
	return resp, nil
}

// settlePayment runs the settlement leg with the same single-retry policy.
// Failure leaves the transaction verified and queryable; the verification
// result is never rolled back.
func (uc *PaymentUC) settlePayment(ctx context.Context, gw payment.FacilitatorGW, proof *models.PaymentProof, svc *models.Service, row *models.Transaction, resp *models.VerifyPaymentResponse, labels map[string]string) bool {
	// A row that already settled is a duplicate trigger; return the first
	// settlement's result without another facilitator call.
	if row.Status == models.TransactionSettled {
		if row.SettlementHash != nil {
			resp.Payment.SettlementHash = *row.SettlementHash
		}
		return true
	}

	var outcome *payment.SettleOutcome
	retryErr := uc.retrier.Execute(ctx, func(ctx context.Context) error {
		o, gwErr := gw.Settle(ctx, proof, svc)
		if gwErr != nil {
			outcome = nil
			return gwErr
		}
		outcome = o
		if !o.Settled {
			return errSettleRejected
		}
		return nil
	})
	if retryErr != nil && outcome == nil {
		outcome = &payment.SettleOutcome{Settled: false, Reason: retryErr.Error()}
	}

	if !outcome.Settled {
		uc.metrics.IncCounter("settlement_failed", labels)
		resp.Reason = outcome.Reason
		return false
	}

	uc.metrics.IncCounter("settlement_succeeded", labels)
	resp.Payment.SettlementHash = outcome.SettlementHash

	settledRow, err := uc.txRepo.RecordSettled(ctx, proof.ExternalID(), outcome.SettlementHash)
	if err != nil {
		uc.logger.Error("failed to record settlement",
			logger.String("external_id", proof.ExternalID()),
			logger.Err(err))
		return true
	}

	uc.publishFeeTransfer(settledRow)
	return true
}

// publishFeeTransfer enqueues the fee forwarding task. Publishing is
// best-effort relative to the payment: a failed publish is logged and the fee
// stays claimable by a reconciliation sweep.
func (uc *PaymentUC) publishFeeTransfer(row *models.Transaction) {
	if uc.publisher == nil || row.FeeAmount <= 0 {
		return
	}

	task := &models.FeeTransferTask{
		TransactionID: row.ID,
		ExternalID:    row.ExternalID,
		Network:       row.Network,
		TokenAddress:  row.TokenAddress,
		Amount:        row.FeeAmount,
		Recipient:     uc.feePolicy.Recipient(),
	}
	if err := uc.publisher.PublishFeeTransfer(task); err != nil {
		uc.logger.Error("failed to publish fee transfer task",
			logger.String("transaction_id", row.ID),
			logger.Err(err))
	}
}

// recordFailed writes the failed attempt to the ledger so every submitted
// proof leaves a row. The repository's status guard keeps rows that already
// verified or settled from being demoted by a resubmission.
func (uc *PaymentUC) recordFailed(ctx context.Context, proof *models.PaymentProof, svc *models.Service, gross int64) {
	fee, net := uc.feePolicy.Compute(gross)
	err := uc.txRepo.RecordFailed(ctx, &models.Transaction{
		ExternalID:       proof.ExternalID(),
		ServiceID:        svc.ID,
		PayerAddress:     proof.From,
		RecipientAddress: proof.To,
		GrossAmount:      gross,
		FeeAmount:        fee,
		NetAmount:        net,
		TokenAddress:     proof.Token,
		Network:          proof.Network,
		ChainID:          proof.Network.ChainID(),
	})
	if err != nil {
		uc.logger.Warn("failed to record failed verification attempt",
			logger.String("external_id", proof.ExternalID()),
			logger.Err(err))
	}
}

// Supported reports the payment kinds the facilitator for the network accepts.
func (uc *PaymentUC) Supported(ctx context.Context, network string) (*payment.SupportedResponse, error) {
	parsed, err := models.ParseNetwork(network)
	if err != nil {
		return nil, payment.NewError(payment.ErrCodeUnsupportedNetwork, err.Error())
	}
	gw, err := uc.gateways.Gateway(parsed)
	if err != nil {
		return nil, payment.NewError(payment.ErrCodeUnsupportedNetwork, err.Error())
	}

	supported, err := gw.Supported(ctx)
	if err != nil {
		return nil, payment.NewError(payment.ErrCodeServiceUnavailable, err.Error())
	}
	return supported, nil
}

// GetTransaction looks up a ledger row by its on-chain identifier.
func (uc *PaymentUC) GetTransaction(ctx context.Context, externalID string) (*models.Transaction, error) {
	tx, err := uc.txRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, payment.NewError(payment.ErrCodeNotFound, err.Error())
	}
	return tx, nil
}

// ListTransactions returns ledger rows, most recent first.
func (uc *PaymentUC) ListTransactions(ctx context.Context, limit, offset int) ([]models.Transaction, error) {
	txs, err := uc.txRepo.ListTransactions(ctx, limit, offset)
	if err != nil {
		return nil, payment.NewError(payment.ErrCodeInternal, err.Error())
	}
	return txs, nil
}

// ListPendingFees returns fee rows awaiting on-chain transfer.
func (uc *PaymentUC) ListPendingFees(ctx context.Context, limit int) ([]models.Fee, error) {
	fees, err := uc.feeRepo.ListPending(ctx, limit)
	if err != nil {
		return nil, payment.NewError(payment.ErrCodeInternal, err.Error())
	}
	return fees, nil
}

// parseProofAmount accepts the on-chain atomic integer form ("25000000") and,
// for convenience, the decimal display form ("25.00").
func parseProofAmount(s string) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		if v < 0 {
			return 0, errors.New("proof amount must not be negative")
		}
		return v, nil
	}
	return currency.ToMinorUnits(s)
}
