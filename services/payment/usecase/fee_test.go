package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
)

func newTestPolicy(t *testing.T, cfg models.FeeConfig) *FeePolicy {
	t.Helper()
	policy, err := NewFeePolicy(cfg)
	require.NoError(t, err)
	return policy
}

func TestFeePolicy_Compute(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         models.FeeConfig
		gross       int64
		expectedFee int64
		expectedNet int64
	}{
		{
			name:        "Percentage below cap",
			cfg:         models.FeeConfig{Percent: "5", Cap: "10.00"},
			gross:       25000000, // 25.00
			expectedFee: 1250000,  // 1.25
			expectedNet: 23750000,
		},
		{
			name:        "Cap bounds the fee",
			cfg:         models.FeeConfig{Percent: "5", Cap: "1.00"},
			gross:       25000000,
			expectedFee: 1000000, // capped at 1.00
			expectedNet: 24000000,
		},
		{
			name:        "Fractional fee floors",
			cfg:         models.FeeConfig{Percent: "2.5"},
			gross:       333, // 2.5% = 8.325
			expectedFee: 8,
			expectedNet: 325,
		},
		{
			name:        "Zero gross charges fixed minimum",
			cfg:         models.FeeConfig{Percent: "5", FixedMinimum: "0.05"},
			gross:       0,
			expectedFee: 50000,
			expectedNet: 0,
		},
		{
			name:        "Zero gross without fixed minimum",
			cfg:         models.FeeConfig{Percent: "5"},
			gross:       0,
			expectedFee: 0,
			expectedNet: 0,
		},
		{
			name:        "Hundred percent takes everything",
			cfg:         models.FeeConfig{Percent: "100"},
			gross:       25000000,
			expectedFee: 25000000,
			expectedNet: 0,
		},
		{
			name:        "Over hundred percent never goes negative",
			cfg:         models.FeeConfig{Percent: "150"},
			gross:       25000000,
			expectedFee: 25000000,
			expectedNet: 0,
		},
		{
			name:        "Zero percent",
			cfg:         models.FeeConfig{Percent: "0"},
			gross:       25000000,
			expectedFee: 0,
			expectedNet: 25000000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			policy := newTestPolicy(t, tc.cfg)
			fee, net := policy.Compute(tc.gross)
			assert.Equal(t, tc.expectedFee, fee)
			assert.Equal(t, tc.expectedNet, net)
			if tc.gross > 0 {
				assert.Equal(t, tc.gross, fee+net, "fee and net must sum to gross")
			}
			assert.GreaterOrEqual(t, net, int64(0), "net must never be negative")
		})
	}
}

func TestNewFeePolicy_InvalidConfig(t *testing.T) {
	_, err := NewFeePolicy(models.FeeConfig{Percent: "abc"})
	assert.Error(t, err)

	_, err = NewFeePolicy(models.FeeConfig{Percent: "5", Cap: "nope"})
	assert.Error(t, err)

	_, err = NewFeePolicy(models.FeeConfig{Percent: "5", FixedMinimum: "-1"})
	assert.Error(t, err)
}

func TestFeePolicy_Recipient(t *testing.T) {
	policy := newTestPolicy(t, models.FeeConfig{Percent: "5", RecipientAddress: "0xPlatform"})
	assert.Equal(t, "0xPlatform", policy.Recipient())
}
