package models

import "fmt"

// Network identifies the chain family a payment targets. It is always carried
// explicitly on requests and proofs; it is never inferred from identifier shape.
type Network string

const (
	NetworkBase         Network = "base"
	NetworkBaseSepolia  Network = "base-sepolia"
	NetworkSolana       Network = "solana"
	NetworkSolanaDevnet Network = "solana-devnet"
)

// DefaultNetwork is used when a request carries no network discriminator.
const DefaultNetwork = NetworkBase

func (n Network) IsEVM() bool {
	return n == NetworkBase || n == NetworkBaseSepolia
}

func (n Network) IsSolana() bool {
	return n == NetworkSolana || n == NetworkSolanaDevnet
}

// ChainID returns the EVM chain id, or 0 for non-EVM networks.
func (n Network) ChainID() int64 {
	switch n {
	case NetworkBase:
		return 8453
	case NetworkBaseSepolia:
		return 84532
	default:
		return 0
	}
}

func (n Network) String() string {
	return string(n)
}

// ParseNetwork resolves a client-supplied network string. An empty value
// falls back to the default EVM network.
func ParseNetwork(s string) (Network, error) {
	if s == "" {
		return DefaultNetwork, nil
	}
	switch Network(s) {
	case NetworkBase, NetworkBaseSepolia, NetworkSolana, NetworkSolanaDevnet:
		return Network(s), nil
	}
	return "", fmt.Errorf("unsupported network: %s", s)
}
