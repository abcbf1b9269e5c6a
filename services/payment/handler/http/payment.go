package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
	"github.com/0xgaut85/r1x-pay/internal/utils"
	"github.com/0xgaut85/r1x-pay/services/payment"
)

// NetworkHeader lets clients carry the chain discriminator out of band.
const NetworkHeader = "X-Network"

// PaymentHandler handles HTTP requests for the payment flow
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// Pay is the quote-or-fulfill endpoint. Without a proof it answers 402 with a
// fresh quote; with a valid proof it verifies, settles, and returns the
// receipt. A proof that fails verification gets a fresh quote back with the
// failure reason.
func (h *PaymentHandler) Pay(c echo.Context) error {
	var req models.PayRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.ServiceID == "" {
		return utils.BadRequestResponse(c, "serviceId is required")
	}

	headerValue := c.Request().Header.Get(payment.PaymentHeader)
	proof := payment.ExtractProof(headerValue, req.Proof)
	if headerValue != "" && proof == nil {
		return utils.ErrorResponseWithCode(c, http.StatusBadRequest,
			payment.ErrCodeInvalidInput, "malformed payment header")
	}

	network := h.network(c, req.Network)
	ctx := c.Request().Context()

	if proof == nil {
		quote, svc, err := h.paymentUC.IssueQuote(ctx, req.ServiceID, req.Amount, network)
		if err != nil {
			return domainError(c, err)
		}
		return c.JSON(http.StatusPaymentRequired,
			h.paymentUC.QuoteResponse(svc, quote, "payment required"))
	}

	h.applyNetwork(proof, network)
	resp, err := h.paymentUC.VerifyPayment(ctx, req.ServiceID, proof, true)
	if err != nil {
		return domainError(c, err)
	}

	if !resp.Verified {
		quote, svc, qErr := h.paymentUC.IssueQuote(ctx, req.ServiceID, req.Amount, network)
		if qErr != nil {
			return domainError(c, qErr)
		}
		return c.JSON(http.StatusPaymentRequired,
			h.paymentUC.QuoteResponse(svc, quote, resp.Reason))
	}

	return utils.SuccessResponse(c, http.StatusOK, "payment accepted", resp)
}

// Verify checks a proof and optionally settles it. Verification failure is a
// 402 with the reason, not a 4xx/5xx error.
func (h *PaymentHandler) Verify(c echo.Context) error {
	var req models.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.ServiceID == "" {
		return utils.BadRequestResponse(c, "serviceId is required")
	}

	headerValue := c.Request().Header.Get(payment.PaymentHeader)
	proof := payment.ExtractProof(headerValue, req.Proof)
	if proof == nil {
		return utils.ErrorResponseWithCode(c, http.StatusBadRequest,
			payment.ErrCodeInvalidInput, "missing or malformed payment proof")
	}

	h.applyNetwork(proof, h.network(c, req.Network))

	resp, err := h.paymentUC.VerifyPayment(c.Request().Context(), req.ServiceID, proof, req.Settle)
	if err != nil {
		return domainError(c, err)
	}

	if !resp.Verified {
		return c.JSON(http.StatusPaymentRequired, resp)
	}
	if resp.Settled != nil && !*resp.Settled {
		// Verified but settlement failed after the retry; the verification
		// result is preserved and queryable.
		return c.JSON(http.StatusInternalServerError, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// Supported reports the payment kinds the facilitator accepts.
func (h *PaymentHandler) Supported(c echo.Context) error {
	network := h.network(c, c.QueryParam("network"))

	supported, err := h.paymentUC.Supported(c.Request().Context(), network)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, supported)
}

// GetTransaction returns one ledger row by its on-chain identifier.
func (h *PaymentHandler) GetTransaction(c echo.Context) error {
	externalID := c.Param("id")
	if externalID == "" {
		return utils.BadRequestResponse(c, "transaction id is required")
	}

	tx, err := h.paymentUC.GetTransaction(c.Request().Context(), externalID)
	if err != nil {
		return domainError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "transaction retrieved", tx)
}

// ListTransactions returns ledger rows, most recent first.
func (h *PaymentHandler) ListTransactions(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	txs, err := h.paymentUC.ListTransactions(c.Request().Context(), limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "transactions retrieved", txs)
}

// ListPendingFees returns fee rows awaiting on-chain transfer.
func (h *PaymentHandler) ListPendingFees(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	fees, err := h.paymentUC.ListPendingFees(c.Request().Context(), limit)
	if err != nil {
		return domainError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "pending fees retrieved", fees)
}

// network resolves the chain discriminator: body field first, then the
// X-Network header. Empty means the default network downstream.
func (h *PaymentHandler) network(c echo.Context, bodyNetwork string) string {
	if bodyNetwork != "" {
		return bodyNetwork
	}
	return c.Request().Header.Get(NetworkHeader)
}

// applyNetwork stamps an explicitly requested network onto the proof. A proof
// that already declares its network wins.
func (h *PaymentHandler) applyNetwork(proof *models.PaymentProof, network string) {
	if proof.Network != "" || network == "" {
		return
	}
	if parsed, err := models.ParseNetwork(network); err == nil {
		proof.Network = parsed
	}
}

// domainError maps a domain error code onto an HTTP status.
func domainError(c echo.Context, err error) error {
	var domainErr *payment.Error
	if !errors.As(err, &domainErr) {
		return utils.InternalServerErrorResponse(c, err.Error())
	}

	status := http.StatusInternalServerError
	switch domainErr.Code {
	case payment.ErrCodeInvalidInput, payment.ErrCodeRecipientMismatch, payment.ErrCodeUnsupportedNetwork:
		status = http.StatusBadRequest
	case payment.ErrCodeNotFound:
		status = http.StatusNotFound
	case payment.ErrCodeVerificationFailed:
		status = http.StatusPaymentRequired
	case payment.ErrCodeServiceUnavailable:
		status = http.StatusBadGateway
	}
	return utils.ErrorResponseWithCode(c, status, domainErr.Code, domainErr.Message)
}
