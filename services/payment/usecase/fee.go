package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/0xgaut85/r1x-pay/internal/pkg/currency"
	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
)

var hundred = decimal.NewFromInt(100)

// FeePolicy computes the platform fee split. It is pure and deterministic:
// all amounts are int64 minor units, the percentage is held as an exact
// decimal, and division always floors so the platform never takes more than
// the stated percentage.
type FeePolicy struct {
	percent      decimal.Decimal
	capMinor     int64
	fixedMinimum int64
	recipient    string
}

// NewFeePolicy builds the policy from operator configuration. The decimal
// strings are parsed once here; a malformed value fails startup.
func NewFeePolicy(cfg models.FeeConfig) (*FeePolicy, error) {
	percent, err := currency.ParsePercent(cfg.Percent)
	if err != nil {
		return nil, fmt.Errorf("fee percent: %w", err)
	}

	var capMinor int64
	if cfg.Cap != "" {
		capMinor, err = currency.ToMinorUnits(cfg.Cap)
		if err != nil {
			return nil, fmt.Errorf("fee cap: %w", err)
		}
	}

	var fixedMinimum int64
	if cfg.FixedMinimum != "" {
		fixedMinimum, err = currency.ToMinorUnits(cfg.FixedMinimum)
		if err != nil {
			return nil, fmt.Errorf("fee fixed minimum: %w", err)
		}
	}

	return &FeePolicy{
		percent:      percent,
		capMinor:     capMinor,
		fixedMinimum: fixedMinimum,
		recipient:    cfg.RecipientAddress,
	}, nil
}

// Recipient is the address platform fees are forwarded to.
func (p *FeePolicy) Recipient() string {
	return p.recipient
}

// Compute splits a gross amount into fee and net merchant amounts.
// Rules, in order: a zero gross (free resource) charges the fixed minimum;
// a percentage of 100 or more takes the whole gross so net never goes
// negative; otherwise fee = floor(gross * percent / 100), bounded by the cap.
func (p *FeePolicy) Compute(gross int64) (fee, net int64) {
	if gross == 0 {
		return p.fixedMinimum, 0
	}
	if p.percent.GreaterThanOrEqual(hundred) {
		return gross, 0
	}

	fee = decimal.NewFromInt(gross).
		Mul(p.percent).
		Div(hundred).
		Floor().
		IntPart()
	if p.capMinor > 0 && fee > p.capMinor {
		fee = p.capMinor
	}
	return fee, gross - fee
}
