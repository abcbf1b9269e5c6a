package payment

import (
	"encoding/base64"
	"encoding/json"

	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
)

// PaymentHeader is the HTTP header clients may use to submit a payment proof
// instead of the request body.
const PaymentHeader = "X-PAYMENT"

// ExtractProof resolves the proof for a request. A header value takes
// precedence over a body proof; nil means no parseable proof was submitted
// and the caller should respond with a quote or a 400, never panic.
func ExtractProof(headerValue string, bodyProof *models.PaymentProof) *models.PaymentProof {
	if headerValue != "" {
		if proof := ParseProofHeader(headerValue); proof != nil {
			return proof
		}
		// A present-but-garbled header is not silently ignored in favor of
		// the body; the caller sees no proof and rejects the request.
		return nil
	}
	return bodyProof
}

// ParseProofHeader decodes a proof from a header value. The value may be raw
// JSON, standard base64-encoded JSON, or URL-safe base64-encoded JSON; each
// encoding is tried in order and the first success wins.
func ParseProofHeader(value string) *models.PaymentProof {
	if proof := unmarshalProof([]byte(value)); proof != nil {
		return proof
	}
	if decoded, err := base64.StdEncoding.DecodeString(value); err == nil {
		if proof := unmarshalProof(decoded); proof != nil {
			return proof
		}
	}
	if decoded, err := base64.URLEncoding.DecodeString(value); err == nil {
		if proof := unmarshalProof(decoded); proof != nil {
			return proof
		}
	}
	return nil
}

func unmarshalProof(data []byte) *models.PaymentProof {
	var proof models.PaymentProof
	if err := json.Unmarshal(data, &proof); err != nil {
		return nil
	}
	if proof.ExternalID() == "" {
		return nil
	}
	return &proof
}
