package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/0xgaut85/r1x-pay/internal/pkg/currency"
	"github.com/0xgaut85/r1x-pay/internal/pkg/logger"
	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
	"github.com/0xgaut85/r1x-pay/services/payment"
)

// ServiceUC implements the service catalog use case.
type ServiceUC struct {
	svcRepo  payment.ServiceRepo
	validate *validator.Validate
	logger   *logger.ZapLogger
}

// NewServiceUC creates a new service catalog use case instance
func NewServiceUC(svcRepo payment.ServiceRepo, l *logger.ZapLogger) *ServiceUC {
	return &ServiceUC{
		svcRepo:  svcRepo,
		validate: validator.New(),
		logger:   l,
	}
}

// CreateService registers a new priced resource.
func (uc *ServiceUC) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.Service, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, payment.NewError(payment.ErrCodeInvalidInput, err.Error())
	}

	network, err := models.ParseNetwork(req.Network)
	if err != nil {
		return nil, payment.NewError(payment.ErrCodeUnsupportedNetwork, err.Error())
	}

	priceMinor, err := currency.ToMinorUnits(req.Price)
	if err != nil {
		return nil, payment.NewError(payment.ErrCodeInvalidInput, err.Error())
	}

	svc := &models.Service{
		Name:            req.Name,
		Category:        req.Category,
		MerchantAddress: req.MerchantAddress,
		Network:         network,
		ChainID:         network.ChainID(),
		TokenAddress:    req.TokenAddress,
		TokenSymbol:     req.TokenSymbol,
		PriceMinor:      priceMinor,
		PriceDisplay:    currency.ToDecimalString(priceMinor),
		Active:          true,
	}
	if req.UpstreamURL != "" {
		svc.UpstreamURL = &req.UpstreamURL
	}

	if err := uc.svcRepo.CreateService(ctx, svc); err != nil {
		uc.logger.Error("failed to create service",
			logger.String("name", req.Name),
			logger.Err(err))
		return nil, payment.NewError(payment.ErrCodeInternal, "failed to create service")
	}
	return svc, nil
}

// GetService returns a catalog entry by id.
func (uc *ServiceUC) GetService(ctx context.Context, id string) (*models.Service, error) {
	svc, err := uc.svcRepo.GetService(ctx, id)
	if err != nil {
		return nil, payment.NewError(payment.ErrCodeNotFound, err.Error())
	}
	return svc, nil
}

// ListServices returns catalog entries, optionally only active ones.
func (uc *ServiceUC) ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	services, err := uc.svcRepo.ListServices(ctx, activeOnly)
	if err != nil {
		return nil, payment.NewError(payment.ErrCodeInternal, err.Error())
	}
	return services, nil
}

// UpdateService applies price and availability changes.
func (uc *ServiceUC) UpdateService(ctx context.Context, id string, req *models.UpdateServiceRequest) (*models.Service, error) {
	if req.Price == nil && req.Active == nil {
		return nil, payment.NewError(payment.ErrCodeInvalidInput, "nothing to update")
	}

	var priceMinor *int64
	var priceDisplay *string
	if req.Price != nil {
		minor, err := currency.ToMinorUnits(*req.Price)
		if err != nil {
			return nil, payment.NewError(payment.ErrCodeInvalidInput, err.Error())
		}
		display := currency.ToDecimalString(minor)
		priceMinor = &minor
		priceDisplay = &display
	}

	svc, err := uc.svcRepo.UpdateService(ctx, id, priceMinor, priceDisplay, req.Active)
	if err != nil {
		return nil, payment.NewError(payment.ErrCodeNotFound, err.Error())
	}
	return svc, nil
}
