package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/0xgaut85/r1x-pay/internal/pkg/currency"
	"github.com/0xgaut85/r1x-pay/internal/pkg/logger"
	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
	"github.com/0xgaut85/r1x-pay/services/payment"
)

// quotePlaceholderPrefix marks ledger rows created for issued quotes before a
// real proof identifier exists.
const quotePlaceholderPrefix = "quote-"

// IssueQuote prices access to a service and returns a fresh, time-boxed quote.
// A new nonce and deadline are generated on every call; quotes are never
// cached or reused. The intended fee split is written to the ledger as a
// pending placeholder row so abandoned quotes stay auditable.
func (uc *PaymentUC) IssueQuote(ctx context.Context, serviceID string, requestedAmount string, network string) (*models.PaymentQuote, *models.Service, error) {
	svc, err := uc.svcRepo.GetService(ctx, serviceID)
	if err != nil {
		return nil, nil, payment.NewError(payment.ErrCodeNotFound, err.Error())
	}
	if !svc.Active {
		return nil, nil, payment.NewError(payment.ErrCodeNotFound, "service is not available")
	}

	if network != "" {
		requested, err := models.ParseNetwork(network)
		if err != nil {
			return nil, nil, payment.NewError(payment.ErrCodeUnsupportedNetwork, err.Error())
		}
		if requested != svc.Network {
			return nil, nil, payment.NewError(payment.ErrCodeInvalidInput,
				"service does not accept payments on network "+network)
		}
	}

	amount := svc.PriceMinor
	if requestedAmount != "" {
		amount, err = currency.ToMinorUnits(requestedAmount)
		if err != nil {
			return nil, nil, payment.NewError(payment.ErrCodeInvalidInput, err.Error())
		}
		if amount < svc.PriceMinor {
			return nil, nil, payment.NewError(payment.ErrCodeInvalidInput,
				"amount is below the service price")
		}
	}

	fee, net := uc.feePolicy.Compute(amount)
	nonce := uuid.New().String()
	ttl := time.Duration(uc.cfg.Fee.QuoteTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = time.Hour
	}

	placeholder := &models.Transaction{
		ExternalID:       quotePlaceholderPrefix + uuid.New().String(),
		ServiceID:        svc.ID,
		RecipientAddress: svc.MerchantAddress,
		GrossAmount:      amount,
		FeeAmount:        fee,
		NetAmount:        net,
		TokenAddress:     svc.TokenAddress,
		Network:          svc.Network,
		ChainID:          svc.ChainID,
	}
	if err := uc.txRepo.CreatePending(ctx, placeholder); err != nil {
		return nil, nil, payment.NewError(payment.ErrCodeInternal, "failed to record quote")
	}

	if err := uc.nonces.TrackNonce(ctx, nonce, svc.ID, ttl); err != nil {
		uc.logger.Warn("failed to track quote nonce",
			logger.String("service_id", svc.ID),
			logger.Err(err))
	}

	uc.metrics.IncCounter("quote_issued", map[string]string{"network": svc.Network.String()})

	quote := &models.PaymentQuote{
		Amount:        amount,
		AmountDisplay: currency.ToDecimalString(amount),
		TokenAddress:  svc.TokenAddress,
		TokenSymbol:   svc.TokenSymbol,
		Recipient:     svc.MerchantAddress,
		Network:       svc.Network,
		ChainID:       svc.ChainID,
		Nonce:         nonce,
		ExpiresAt:     time.Now().Add(ttl),
	}
	return quote, svc, nil
}

// QuoteResponse renders a quote as the 402 response body.
func (uc *PaymentUC) QuoteResponse(service *models.Service, quote *models.PaymentQuote, errMsg string) *models.X402Response {
	resource := uc.cfg.App.BaseURL + "/api/v1/services/" + service.ID
	maxTimeout := int(time.Until(quote.ExpiresAt).Seconds())
	if maxTimeout < 0 {
		maxTimeout = 0
	}

	return &models.X402Response{
		X402Version: models.X402Version,
		Accepts: []models.PaymentRequirements{
			{
				Scheme:            "exact",
				Network:           quote.Network.String(),
				MaxAmountRequired: strconv.FormatInt(quote.Amount, 10),
				Resource:          resource,
				Description:       service.Name,
				MimeType:          "application/json",
				PayTo:             quote.Recipient,
				MaxTimeoutSeconds: maxTimeout,
				Asset:             quote.TokenAddress,
				Extra: map[string]interface{}{
					"nonce":         quote.Nonce,
					"expiresAt":     quote.ExpiresAt.UTC().Format(time.RFC3339),
					"symbol":        quote.TokenSymbol,
					"displayAmount": quote.AmountDisplay,
				},
			},
		},
		Error: errMsg,
	}
}
