// Package facilitator delegates on-chain payment verification and settlement
// to external facilitator services speaking the x402 /verify, /settle,
// /supported convention.
package facilitator

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	httpclient "github.com/0xgaut85/r1x-pay/internal/pkg/http"
	"github.com/0xgaut85/r1x-pay/internal/pkg/logger"
	"github.com/0xgaut85/r1x-pay/internal/pkg/metrics"
	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
	"github.com/0xgaut85/r1x-pay/services/payment"
)

const schemeExact = "exact"

// facilitatorRequest is the body POSTed to /verify and /settle.
type facilitatorRequest struct {
	X402Version         int                        `json:"x402Version"`
	PaymentPayload      interface{}                `json:"paymentPayload"`
	PaymentRequirements models.PaymentRequirements `json:"paymentRequirements"`
}

type verifyWire struct {
	IsValid       bool   `json:"isValid"`
	InvalidReason string `json:"invalidReason,omitempty"`
	Payer         string `json:"payer,omitempty"`
}

type settleWire struct {
	Success     bool   `json:"success"`
	ErrorReason string `json:"errorReason,omitempty"`
	Transaction string `json:"transaction,omitempty"`
	Network     string `json:"network,omitempty"`
	Payer       string `json:"payer,omitempty"`
}

// payloadBuilder renders a normalized proof as the chain family's wire payload.
type payloadBuilder func(proof *models.PaymentProof, network models.Network) interface{}

// gateway is the shared facilitator transport. EVM and Solana gateways differ
// only in the payload they put on the wire.
type gateway struct {
	client  *httpclient.Client
	network models.Network
	build   payloadBuilder
	logger  *logger.ZapLogger
	metrics metrics.Recorder
}

func newGateway(baseURL, apiKey string, timeout time.Duration, network models.Network, build payloadBuilder, l *logger.ZapLogger, rec metrics.Recorder) *gateway {
	client := httpclient.NewClient(baseURL, timeout)
	if apiKey != "" {
		client = client.WithAPIKey(apiKey)
	}
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &gateway{
		client:  client,
		network: network,
		build:   build,
		logger:  l,
		metrics: rec,
	}
}

// Verify checks the proof against the service requirements. The recipient is
// checked locally before any network call; every remote failure is folded into
// the outcome so verification never surfaces as an error to the payer.
func (g *gateway) Verify(ctx context.Context, proof *models.PaymentProof, service *models.Service) (*payment.VerifyOutcome, error) {
	if err := proof.Validate(); err != nil {
		return &payment.VerifyOutcome{Verified: false, Reason: err.Error()}, nil
	}
	if !proof.MatchesRecipient(service.MerchantAddress) {
		return &payment.VerifyOutcome{Verified: false, Reason: "payment recipient does not match the service merchant"}, nil
	}

	started := time.Now()
	req := facilitatorRequest{
		X402Version:         models.X402Version,
		PaymentPayload:      g.build(proof, g.effectiveNetwork(proof)),
		PaymentRequirements: g.requirements(service),
	}

	var wire verifyWire
	err := g.client.PostJSON(ctx, "/verify", req, &wire)
	g.metrics.ObserveLatency("facilitator_verify", time.Since(started), g.labels())
	if err != nil {
		g.metrics.IncCounter("facilitator_verify_error", g.labels())
		g.logger.Warn("facilitator verify call failed",
			logger.String("network", g.network.String()),
			logger.Err(err))
		return &payment.VerifyOutcome{Verified: false, Reason: remoteReason(err, "invalidReason")}, nil
	}

	if !wire.IsValid {
		reason := wire.InvalidReason
		if reason == "" {
			reason = "facilitator rejected the payment"
		}
		return &payment.VerifyOutcome{Verified: false, Reason: reason}, nil
	}

	payer := wire.Payer
	if payer == "" {
		payer = proof.From
	}
	return &payment.VerifyOutcome{Verified: true, Payer: payer}, nil
}

// Settle executes the verified payment through the facilitator.
func (g *gateway) Settle(ctx context.Context, proof *models.PaymentProof, service *models.Service) (*payment.SettleOutcome, error) {
	started := time.Now()
	req := facilitatorRequest{
		X402Version:         models.X402Version,
		PaymentPayload:      g.build(proof, g.effectiveNetwork(proof)),
		PaymentRequirements: g.requirements(service),
	}

	var wire settleWire
	err := g.client.PostJSON(ctx, "/settle", req, &wire)
	g.metrics.ObserveLatency("facilitator_settle", time.Since(started), g.labels())
	if err != nil {
		g.metrics.IncCounter("facilitator_settle_error", g.labels())
		g.logger.Warn("facilitator settle call failed",
			logger.String("network", g.network.String()),
			logger.Err(err))
		return &payment.SettleOutcome{Settled: false, Reason: remoteReason(err, "errorReason")}, nil
	}

	if !wire.Success {
		reason := wire.ErrorReason
		if reason == "" {
			reason = "facilitator could not settle the payment"
		}
		return &payment.SettleOutcome{Settled: false, Reason: reason}, nil
	}
	return &payment.SettleOutcome{Settled: true, SettlementHash: wire.Transaction}, nil
}

// Supported queries the facilitator for the payment kinds it accepts.
func (g *gateway) Supported(ctx context.Context) (*payment.SupportedResponse, error) {
	var out payment.SupportedResponse
	if err := g.client.GetJSON(ctx, "/supported", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *gateway) labels() map[string]string {
	return map[string]string{"network": g.network.String()}
}

// effectiveNetwork prefers the network the proof declares; testnets of a
// family share one facilitator endpoint.
func (g *gateway) effectiveNetwork(proof *models.PaymentProof) models.Network {
	if proof.Network != "" {
		return proof.Network
	}
	return g.network
}

func (g *gateway) requirements(service *models.Service) models.PaymentRequirements {
	return models.PaymentRequirements{
		Scheme:            schemeExact,
		Network:           service.Network.String(),
		MaxAmountRequired: strconv.FormatInt(service.PriceMinor, 10),
		Description:       service.Name,
		PayTo:             service.MerchantAddress,
		MaxTimeoutSeconds: 60,
		Asset:             service.TokenAddress,
	}
}

// remoteReason extracts the facilitator's reason from a failed call. Non-2xx
// bodies carry the reason under a documented key; transport failures fall
// back to the error text.
func remoteReason(err error, key string) string {
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) && statusErr.Body != "" {
		var body map[string]interface{}
		if jsonErr := json.Unmarshal([]byte(statusErr.Body), &body); jsonErr == nil {
			if reason, ok := body[key].(string); ok && reason != "" {
				return reason
			}
		}
		return statusErr.Error()
	}
	return "facilitator unreachable: " + err.Error()
}
