// Package chain holds the on-chain clients owned by this service: the
// operator hot wallet used to forward platform fees.
package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/0xgaut85/r1x-pay/internal/pkg/logger"
	"github.com/0xgaut85/r1x-pay/internal/pkg/models"
)

const erc20TransferABI = `[{
	"inputs":[
	  {"name":"to","type":"address"},
	  {"name":"value","type":"uint256"}
	],
	"name":"transfer",
	"outputs":[{"name":"","type":"bool"}],
	"stateMutability":"nonpayable",
	"type":"function"
}]`

// evmBackend is the slice of the ethereum client the sender uses.
type evmBackend interface {
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// EVMSender signs and broadcasts ERC-20 fee transfers from the operator hot
// wallet. A sender constructed without a private key reports Enabled() false
// and never touches the chain.
type EVMSender struct {
	backend    evmBackend
	signer     *ecdsa.PrivateKey
	signerAddr common.Address
	gasLimit   uint64
	transfer   abi.ABI
	logger     *logger.ZapLogger
}

// NewEVMSender dials the RPC endpoint and prepares the hot wallet. An empty
// private key yields a disabled sender; an empty RPC URL with a key is a
// configuration error.
func NewEVMSender(cfg models.WalletConfig, l *logger.ZapLogger) (*EVMSender, error) {
	parsed, err := abi.JSON(strings.NewReader(erc20TransferABI))
	if err != nil {
		return nil, fmt.Errorf("parse erc20 abi: %w", err)
	}

	sender := &EVMSender{
		gasLimit: cfg.GasLimit,
		transfer: parsed,
		logger:   l,
	}

	if cfg.PrivateKey == "" {
		return sender, nil
	}
	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("wallet rpc url is required when a signing key is configured")
	}

	signer, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid wallet key: %w", err)
	}

	eth, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("ethereum rpc dial: %w", err)
	}

	sender.backend = eth
	sender.signer = signer
	sender.signerAddr = crypto.PubkeyToAddress(signer.PublicKey)
	return sender, nil
}

// Enabled reports whether a signing key is configured.
func (s *EVMSender) Enabled() bool {
	return s.signer != nil
}

// TransferFee sends the fee amount of the task's token to the fee recipient
// and returns the broadcast transaction hash.
func (s *EVMSender) TransferFee(ctx context.Context, task *models.FeeTransferTask) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("no signing key configured")
	}
	if !task.Network.IsEVM() {
		return "", fmt.Errorf("hot wallet cannot transfer on network %s", task.Network)
	}

	tokenAddr := common.HexToAddress(task.TokenAddress)
	recipient := common.HexToAddress(task.Recipient)
	amount := big.NewInt(task.Amount)

	callData, err := s.transfer.Pack("transfer", recipient, amount)
	if err != nil {
		return "", fmt.Errorf("pack transfer call: %w", err)
	}

	gasLimit := s.gasLimit
	if gasLimit == 0 {
		estimated, err := s.backend.EstimateGas(ctx, ethereum.CallMsg{
			From: s.signerAddr,
			To:   &tokenAddr,
			Data: callData,
		})
		if err != nil {
			return "", fmt.Errorf("estimate gas: %w", err)
		}
		gasLimit = estimated
	}

	gasPrice, err := s.backend.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("suggest gas price: %w", err)
	}

	nonce, err := s.backend.PendingNonceAt(ctx, s.signerAddr)
	if err != nil {
		return "", fmt.Errorf("pending nonce: %w", err)
	}

	tx := types.NewTransaction(nonce, tokenAddr, big.NewInt(0), gasLimit, gasPrice, callData)
	signed, err := types.SignTx(tx, types.NewEIP155Signer(big.NewInt(task.Network.ChainID())), s.signer)
	if err != nil {
		return "", fmt.Errorf("sign tx: %w", err)
	}

	if err := s.backend.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("send tx: %w", err)
	}

	s.logger.Info("fee transfer broadcast",
		logger.String("transaction_id", task.TransactionID),
		logger.String("transfer_hash", signed.Hash().Hex()),
		logger.Int64("amount", task.Amount))

	return signed.Hash().Hex(), nil
}
