package facilitator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xgaut85/r1x-pay/internal/pkg/logger"
	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
)

func newTestLogger(t *testing.T) *logger.ZapLogger {
	t.Helper()
	l, err := logger.NewZapLogger(models.LoggerConfig{Level: "error"})
	require.NoError(t, err)
	return l
}

func gatewayService() *models.Service {
	return &models.Service{
		ID:              "svc-1",
		Name:            "Market Data",
		MerchantAddress: "0xMerchant",
		Network:         models.NetworkBase,
		ChainID:         8453,
		TokenAddress:    "0xUSDC",
		TokenSymbol:     "USDC",
		PriceMinor:      25000000,
		Active:          true,
	}
}

func gatewayProof() *models.PaymentProof {
	return &models.PaymentProof{
		Network:         models.NetworkBase,
		TransactionHash: "0xabc123",
		From:            "0xPayer",
		To:              "0xMerchant",
		Amount:          "25000000",
		Token:           "0xUSDC",
	}
}

func TestVerify_Success(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/verify", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]interface{}{"isValid": true, "payer": "0xPayer"})
	}))
	defer server.Close()

	gw := NewEVMGateway(server.URL, "", 5*time.Second, models.NetworkBase, newTestLogger(t), nil)

	outcome, err := gw.Verify(context.Background(), gatewayProof(), gatewayService())

	require.NoError(t, err)
	assert.True(t, outcome.Verified)
	assert.Equal(t, "0xPayer", outcome.Payer)

	// The wire request carries the protocol version, the chain payload, and
	// the service requirements.
	assert.Equal(t, float64(models.X402Version), captured["x402Version"])
	payload := captured["paymentPayload"].(map[string]interface{})
	assert.Equal(t, "exact", payload["scheme"])
	assert.Equal(t, "base", payload["network"])
	assert.Equal(t, "0xabc123", payload["transactionHash"])
	assert.Equal(t, float64(8453), payload["chainId"])
	requirements := captured["paymentRequirements"].(map[string]interface{})
	assert.Equal(t, "25000000", requirements["maxAmountRequired"])
	assert.Equal(t, "0xMerchant", requirements["payTo"])
}

func TestVerify_RecipientMismatchSkipsFacilitator(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		json.NewEncoder(w).Encode(map[string]interface{}{"isValid": true})
	}))
	defer server.Close()

	gw := NewEVMGateway(server.URL, "", 5*time.Second, models.NetworkBase, newTestLogger(t), nil)

	proof := gatewayProof()
	proof.To = "0xSomeoneElse"
	outcome, err := gw.Verify(context.Background(), proof, gatewayService())

	require.NoError(t, err)
	assert.False(t, outcome.Verified)
	assert.Contains(t, outcome.Reason, "recipient")
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits), "the facilitator must not be called")
}

func TestVerify_FacilitatorRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"isValid":       false,
			"invalidReason": "payment not found on chain",
		})
	}))
	defer server.Close()

	gw := NewEVMGateway(server.URL, "", 5*time.Second, models.NetworkBase, newTestLogger(t), nil)

	outcome, err := gw.Verify(context.Background(), gatewayProof(), gatewayService())

	require.NoError(t, err)
	assert.False(t, outcome.Verified)
	assert.Equal(t, "payment not found on chain", outcome.Reason)
}

func TestVerify_NonOKStatusCarriesReason(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{"invalidReason": "malformed payload"})
	}))
	defer server.Close()

	gw := NewEVMGateway(server.URL, "", 5*time.Second, models.NetworkBase, newTestLogger(t), nil)

	outcome, err := gw.Verify(context.Background(), gatewayProof(), gatewayService())

	require.NoError(t, err, "remote failures fold into the outcome")
	assert.False(t, outcome.Verified)
	assert.Equal(t, "malformed payload", outcome.Reason)
}

func TestVerify_FacilitatorUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	gw := NewEVMGateway(server.URL, "", time.Second, models.NetworkBase, newTestLogger(t), nil)

	outcome, err := gw.Verify(context.Background(), gatewayProof(), gatewayService())

	require.NoError(t, err)
	assert.False(t, outcome.Verified)
	assert.Contains(t, outcome.Reason, "facilitator unreachable")
}

func TestSettle_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/settle", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":     true,
			"transaction": "0xsettled",
			"network":     "base",
		})
	}))
	defer server.Close()

	gw := NewEVMGateway(server.URL, "", 5*time.Second, models.NetworkBase, newTestLogger(t), nil)

	outcome, err := gw.Settle(context.Background(), gatewayProof(), gatewayService())

	require.NoError(t, err)
	assert.True(t, outcome.Settled)
	assert.Equal(t, "0xsettled", outcome.SettlementHash)
}

func TestSettle_Rejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":     false,
			"errorReason": "insufficient allowance",
		})
	}))
	defer server.Close()

	gw := NewEVMGateway(server.URL, "", 5*time.Second, models.NetworkBase, newTestLogger(t), nil)

	outcome, err := gw.Settle(context.Background(), gatewayProof(), gatewayService())

	require.NoError(t, err)
	assert.False(t, outcome.Settled)
	assert.Equal(t, "insufficient allowance", outcome.Reason)
}

func TestSolanaPayloadShape(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]interface{}{"isValid": true})
	}))
	defer server.Close()

	gw := NewSolanaGateway(server.URL, "", 5*time.Second, models.NetworkSolana, newTestLogger(t), nil)

	proof := &models.PaymentProof{
		Network:   models.NetworkSolana,
		Signature: "5sig123",
		From:      "PayerPubkey",
		To:        "0xMerchant",
		Amount:    "25000000",
		Token:     "USDCMint",
	}
	outcome, err := gw.Verify(context.Background(), proof, gatewayService())

	require.NoError(t, err)
	assert.True(t, outcome.Verified)

	payload := captured["paymentPayload"].(map[string]interface{})
	assert.Equal(t, "solana", payload["network"])
	assert.Equal(t, "5sig123", payload["signature"])
	_, hasChainID := payload["chainId"]
	assert.False(t, hasChainID, "Solana payloads carry no EVM chain id")
}

func TestSupported(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/supported", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"kinds": []map[string]string{
				{"scheme": "exact", "network": "base"},
				{"scheme": "exact", "network": "base-sepolia"},
			},
		})
	}))
	defer server.Close()

	gw := NewEVMGateway(server.URL, "", 5*time.Second, models.NetworkBase, newTestLogger(t), nil)

	resp, err := gw.Supported(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Kinds, 2)
	assert.Equal(t, "exact", resp.Kinds[0].Scheme)
	assert.Equal(t, "base", resp.Kinds[0].Network)
}
