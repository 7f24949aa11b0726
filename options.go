package gotchi

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// CallOption configures a single read-only call.
type CallOption func(*bind.CallOpts)

// AtBlock pins the call to a specific block number instead of latest.
func AtBlock(number *big.Int) CallOption {
	return func(o *bind.CallOpts) {
		o.BlockNumber = number
	}
}

// Pending executes the call against the pending state.
func Pending() CallOption {
	return func(o *bind.CallOpts) {
		o.Pending = true
	}
}

// From sets the sender address the call is evaluated with. Some view
// functions behave differently per caller; the facet's reads do not, but the
// option is cheap to honor.
func From(addr common.Address) CallOption {
	return func(o *bind.CallOpts) {
		o.From = addr
	}
}

// callOpts builds bind.CallOpts for a read.
func (c *Client) callOpts(ctx context.Context, opts []CallOption) *bind.CallOpts {
	co := &bind.CallOpts{Context: ctx}
	for _, opt := range opts {
		opt(co)
	}
	return co
}

// TxOption configures a single write operation.
type TxOption func(*txConfig)

// txConfig holds per-transaction overrides applied on top of the client's
// signer.
type txConfig struct {
	gasLimit  uint64
	gasPrice  *big.Int
	gasFeeCap *big.Int
	gasTipCap *big.Int
	nonce     *big.Int
	noWait    bool
}

// GasLimit sets an explicit gas limit, skipping estimation.
func GasLimit(limit uint64) TxOption {
	return func(c *txConfig) {
		c.gasLimit = limit
	}
}

// GasPrice sets a legacy gas price for the transaction.
func GasPrice(price *big.Int) TxOption {
	return func(c *txConfig) {
		c.gasPrice = price
	}
}

// GasFeeCap sets the EIP-1559 fee cap for the transaction.
func GasFeeCap(feeCap *big.Int) TxOption {
	return func(c *txConfig) {
		c.gasFeeCap = feeCap
	}
}

// GasTipCap sets the EIP-1559 tip cap for the transaction.
func GasTipCap(tipCap *big.Int) TxOption {
	return func(c *txConfig) {
		c.gasTipCap = tipCap
	}
}

// Nonce sets an explicit nonce instead of querying the pending state.
func Nonce(nonce *big.Int) TxOption {
	return func(c *txConfig) {
		c.nonce = nonce
	}
}

// NoWait returns from the write as soon as the transaction is broadcast,
// without waiting for it to be mined. TxResult.Receipt is nil.
func NoWait() TxOption {
	return func(c *txConfig) {
		c.noWait = true
	}
}

// transactOpts builds bind.TransactOpts from the client signer plus
// per-call overrides.
func (c *Client) transactOpts(ctx context.Context, cfg *txConfig) *bind.TransactOpts {
	topts := *c.signer
	topts.Context = ctx
	if cfg.gasLimit != 0 {
		topts.GasLimit = cfg.gasLimit
	}
	if cfg.gasPrice != nil {
		topts.GasPrice = cfg.gasPrice
	}
	if cfg.gasFeeCap != nil {
		topts.GasFeeCap = cfg.gasFeeCap
	}
	if cfg.gasTipCap != nil {
		topts.GasTipCap = cfg.gasTipCap
	}
	if cfg.nonce != nil {
		topts.Nonce = cfg.nonce
	}
	return &topts
}
