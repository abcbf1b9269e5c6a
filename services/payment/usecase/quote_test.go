package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
	"github.com/0xgaut85/r1x-pay/services/payment"
)

func TestIssueQuote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)
	svc := testService()

	f.svcRepo.EXPECT().GetService(gomock.Any(), "svc-1").Return(svc, nil)
	f.txRepo.EXPECT().CreatePending(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *models.Transaction) error {
			assert.True(t, strings.HasPrefix(tx.ExternalID, "quote-"))
			assert.Equal(t, int64(25000000), tx.GrossAmount)
			assert.Equal(t, int64(1000000), tx.FeeAmount)
			assert.Equal(t, int64(24000000), tx.NetAmount)
			return nil
		})
	f.nonces.EXPECT().TrackNonce(gomock.Any(), gomock.Any(), "svc-1", gomock.Any()).Return(nil)

	quote, gotSvc, err := f.uc.IssueQuote(context.Background(), "svc-1", "", "")

	require.NoError(t, err)
	assert.Equal(t, svc, gotSvc)
	assert.Equal(t, int64(25000000), quote.Amount)
	assert.Equal(t, "25.000000", quote.AmountDisplay)
	assert.Equal(t, "0xMerchant", quote.Recipient)
	assert.Equal(t, models.NetworkBase, quote.Network)
	assert.NotEmpty(t, quote.Nonce)
	assert.True(t, quote.ExpiresAt.After(time.Now()))
}

func TestIssueQuote_FreshNonceEveryCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)
	svc := testService()

	f.svcRepo.EXPECT().GetService(gomock.Any(), "svc-1").Return(svc, nil).Times(2)
	f.txRepo.EXPECT().CreatePending(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.nonces.EXPECT().TrackNonce(gomock.Any(), gomock.Any(), "svc-1", gomock.Any()).Return(nil).Times(2)

	first, _, err := f.uc.IssueQuote(context.Background(), "svc-1", "", "")
	require.NoError(t, err)
	second, _, err := f.uc.IssueQuote(context.Background(), "svc-1", "", "")
	require.NoError(t, err)

	assert.NotEqual(t, first.Nonce, second.Nonce)
}

func TestIssueQuote_InactiveService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)
	svc := testService()
	svc.Active = false

	f.svcRepo.EXPECT().GetService(gomock.Any(), "svc-1").Return(svc, nil)

	_, _, err := f.uc.IssueQuote(context.Background(), "svc-1", "", "")

	require.Error(t, err)
	var domainErr *payment.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, payment.ErrCodeNotFound, domainErr.Code)
}

func TestIssueQuote_AmountBelowPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)
	f.svcRepo.EXPECT().GetService(gomock.Any(), "svc-1").Return(testService(), nil)

	_, _, err := f.uc.IssueQuote(context.Background(), "svc-1", "10.00", "")

	require.Error(t, err)
	var domainErr *payment.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, payment.ErrCodeInvalidInput, domainErr.Code)
}

func TestIssueQuote_WrongNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)
	f.svcRepo.EXPECT().GetService(gomock.Any(), "svc-1").Return(testService(), nil)

	_, _, err := f.uc.IssueQuote(context.Background(), "svc-1", "", "solana")

	require.Error(t, err)
	var domainErr *payment.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, payment.ErrCodeInvalidInput, domainErr.Code)
}

func TestQuoteResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUCFixture(t, ctrl)
	svc := testService()
	quote := &models.PaymentQuote{
		Amount:        25000000,
		AmountDisplay: "25.000000",
		TokenAddress:  "0xUSDC",
		TokenSymbol:   "USDC",
		Recipient:     "0xMerchant",
		Network:       models.NetworkBase,
		ChainID:       8453,
		Nonce:         "nonce-1",
		ExpiresAt:     time.Now().Add(30 * time.Minute),
	}

	resp := f.uc.QuoteResponse(svc, quote, "payment required")

	assert.Equal(t, models.X402Version, resp.X402Version)
	assert.Equal(t, "payment required", resp.Error)
	require.Len(t, resp.Accepts, 1)

	req := resp.Accepts[0]
	assert.Equal(t, "exact", req.Scheme)
	assert.Equal(t, "base", req.Network)
	assert.Equal(t, "25000000", req.MaxAmountRequired)
	assert.Equal(t, "http://localhost:8080/api/v1/services/svc-1", req.Resource)
	assert.Equal(t, "0xMerchant", req.PayTo)
	assert.Equal(t, "0xUSDC", req.Asset)
	assert.Greater(t, req.MaxTimeoutSeconds, 0)
	assert.Equal(t, "nonce-1", req.Extra["nonce"])
}
