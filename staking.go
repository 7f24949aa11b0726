package gotchi

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// TxResult is the outcome of a write operation. Receipt is nil when the
// NoWait option was used.
type TxResult struct {
	Tx      *types.Transaction
	Receipt *types.Receipt
}

// IncreaseStake stakes more collateral behind an Aavegotchi. The amount is
// pulled from the sender, who must own the token; ownership is enforced by
// the contract.
func (c *Client) IncreaseStake(ctx context.Context, tokenID, amount *big.Int, opts ...TxOption) (*TxResult, error) {
	if err := requireAmount("increaseStake", tokenID, amount); err != nil {
		return nil, err
	}
	return c.transact(ctx, "increaseStake", opts, tokenID, amount)
}

// DecreaseStake withdraws collateral from an Aavegotchi's escrow back to the
// sender. The contract rejects withdrawals below the minimum stake.
func (c *Client) DecreaseStake(ctx context.Context, tokenID, amount *big.Int, opts ...TxOption) (*TxResult, error) {
	if err := requireAmount("decreaseStake", tokenID, amount); err != nil {
		return nil, err
	}
	return c.transact(ctx, "decreaseStake", opts, tokenID, amount)
}

// DecreaseAndDestroy burns an Aavegotchi, returns its full collateral to the
// sender, and transfers its experience to another token the sender owns.
func (c *Client) DecreaseAndDestroy(ctx context.Context, tokenID, toID *big.Int, opts ...TxOption) (*TxResult, error) {
	if tokenID == nil || toID == nil {
		return nil, &TxError{Method: "decreaseAndDestroy", Err: ErrNilTokenID}
	}
	return c.transact(ctx, "decreaseAndDestroy", opts, tokenID, toID)
}

// SetCollateralEyeShapeSvgId updates the eye shape SVG id for a collateral
// token. Only the contract owner may call this.
func (c *Client) SetCollateralEyeShapeSvgId(ctx context.Context, collateralToken common.Address, svgID uint8, opts ...TxOption) (*TxResult, error) {
	return c.transact(ctx, "setCollateralEyeShapeSvgId", opts, collateralToken, svgID)
}

// requireAmount validates the token id and amount of a stake mutation.
func requireAmount(method string, tokenID, amount *big.Int) error {
	if tokenID == nil {
		return &TxError{Method: method, Err: ErrNilTokenID}
	}
	if amount == nil {
		return &TxError{Method: method, Err: ErrNilAmount}
	}
	return nil
}

// transact signs and broadcasts a facet transaction, then waits for it to be
// mined unless NoWait was given. A mined receipt with failed status yields
// ErrTransactionReverted.
func (c *Client) transact(ctx context.Context, method string, opts []TxOption, args ...interface{}) (*TxResult, error) {
	if c.signer == nil {
		return nil, &TxError{Method: method, Err: ErrNoSigner}
	}

	cfg := &txConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	tx, err := c.contract.Transact(c.transactOpts(ctx, cfg), method, args...)
	if err != nil {
		return nil, &TxError{Method: method, Err: err}
	}
	c.log.Debug().Str("method", method).Str("tx", tx.Hash().Hex()).Msg("transaction sent")

	if cfg.noWait {
		return &TxResult{Tx: tx}, nil
	}

	receipt, err := c.waitMined(ctx, tx)
	if err != nil {
		return nil, &TxError{Method: method, TxHash: tx.Hash(), Err: err}
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, &TxError{Method: method, TxHash: tx.Hash(), Err: ErrTransactionReverted}
	}
	c.log.Debug().Str("method", method).Str("tx", tx.Hash().Hex()).
		Uint64("block", receipt.BlockNumber.Uint64()).Msg("transaction mined")

	return &TxResult{Tx: tx, Receipt: receipt}, nil
}

// waitMined blocks until the transaction is mined, honoring the client's
// wait timeout when one is set.
func (c *Client) waitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	wctx := ctx
	if c.waitTimeout > 0 {
		var cancel context.CancelFunc
		wctx, cancel = context.WithTimeout(ctx, c.waitTimeout)
		defer cancel()
	}

	receipt, err := bind.WaitMined(wctx, c.backend, tx)
	if err != nil {
		// Distinguish the client-side wait timeout from caller cancellation.
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, ErrWaitTimeout
		}
		return nil, err
	}
	return receipt, nil
}
