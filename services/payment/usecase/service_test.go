package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xgaut85/r1x-pay/internal/pkg/logger"
	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
	"github.com/0xgaut85/r1x-pay/services/payment"
	"github.com/0xgaut85/r1x-pay/services/payment/mocks"
)

func newServiceUC(t *testing.T, ctrl *gomock.Controller) (*ServiceUC, *mocks.MockServiceRepo) {
	t.Helper()

	l, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)

	repo := mocks.NewMockServiceRepo(ctrl)
	return NewServiceUC(repo, l), repo
}

func TestCreateService_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, repo := newServiceUC(t, ctrl)

	repo.EXPECT().CreateService(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, svc *models.Service) error {
			assert.Equal(t, int64(25000000), svc.PriceMinor)
			assert.Equal(t, "25.000000", svc.PriceDisplay)
			assert.Equal(t, models.NetworkBase, svc.Network)
			assert.Equal(t, int64(8453), svc.ChainID)
			assert.True(t, svc.Active)
			return nil
		})

	svc, err := uc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name:            "Market Data",
		MerchantAddress: "0xMerchant",
		Network:         "base",
		TokenAddress:    "0xUSDC",
		TokenSymbol:     "USDC",
		Price:           "25.00",
	})

	require.NoError(t, err)
	assert.Equal(t, "Market Data", svc.Name)
}

func TestCreateService_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newServiceUC(t, ctrl)

	_, err := uc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name: "Market Data",
		// missing merchant address, token, price
	})

	require.Error(t, err)
	var domainErr *payment.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, payment.ErrCodeInvalidInput, domainErr.Code)
}

func TestCreateService_BadNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newServiceUC(t, ctrl)

	_, err := uc.CreateService(context.Background(), &models.CreateServiceRequest{
		Name:            "Market Data",
		MerchantAddress: "0xMerchant",
		Network:         "dogecoin",
		TokenAddress:    "0xUSDC",
		TokenSymbol:     "USDC",
		Price:           "25.00",
	})

	require.Error(t, err)
	var domainErr *payment.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, payment.ErrCodeUnsupportedNetwork, domainErr.Code)
}

func TestUpdateService_NothingToUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newServiceUC(t, ctrl)

	_, err := uc.UpdateService(context.Background(), "svc-1", &models.UpdateServiceRequest{})

	require.Error(t, err)
	var domainErr *payment.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, payment.ErrCodeInvalidInput, domainErr.Code)
}

func TestUpdateService_PriceChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, repo := newServiceUC(t, ctrl)

	price := "30.00"
	repo.EXPECT().UpdateService(gomock.Any(), "svc-1", gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, _ string, priceMinor *int64, priceDisplay *string, _ *bool) (*models.Service, error) {
			require.NotNil(t, priceMinor)
			assert.Equal(t, int64(30000000), *priceMinor)
			require.NotNil(t, priceDisplay)
			assert.Equal(t, "30.000000", *priceDisplay)
			return &models.Service{ID: "svc-1", PriceMinor: *priceMinor}, nil
		})

	svc, err := uc.UpdateService(context.Background(), "svc-1", &models.UpdateServiceRequest{Price: &price})

	require.NoError(t, err)
	assert.Equal(t, int64(30000000), svc.PriceMinor)
}
