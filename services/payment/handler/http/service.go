package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
	"github.com/0xgaut85/r1x-pay/internal/utils"
	"github.com/0xgaut85/r1x-pay/services/payment"
)

// ServiceHandler handles HTTP requests for the service catalog
type ServiceHandler struct {
	serviceUC payment.ServiceUC
}

// NewServiceHandler creates a new service catalog handler
func NewServiceHandler(serviceUC payment.ServiceUC) *ServiceHandler {
	return &ServiceHandler{
		serviceUC: serviceUC,
	}
}

// CreateService registers a new priced resource.
func (h *ServiceHandler) CreateService(c echo.Context) error {
	var req models.CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	svc, err := h.serviceUC.CreateService(c.Request().Context(), &req)
	if err != nil {
		return domainError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "service created", svc)
}

// GetService returns one catalog entry.
func (h *ServiceHandler) GetService(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "service id is required")
	}

	svc, err := h.serviceUC.GetService(c.Request().Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "service retrieved", svc)
}

// ListServices returns catalog entries. ?active=true filters to purchasable
// services.
func (h *ServiceHandler) ListServices(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"

	services, err := h.serviceUC.ListServices(c.Request().Context(), activeOnly)
	if err != nil {
		return domainError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "services retrieved", services)
}

// UpdateService applies price and availability changes.
func (h *ServiceHandler) UpdateService(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "service id is required")
	}

	var req models.UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	svc, err := h.serviceUC.UpdateService(c.Request().Context(), id, &req)
	if err != nil {
		return domainError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "service updated", svc)
}
