package gotchi

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// CollateralBalance returns the collateral token, escrow contract, and
// escrowed amount for an Aavegotchi.
func (c *Client) CollateralBalance(ctx context.Context, tokenID *big.Int, opts ...CallOption) (*CollateralBalance, error) {
	if tokenID == nil {
		return nil, &CallError{Method: "collateralBalance", Err: ErrNilTokenID}
	}

	var out []interface{}
	if err := c.call(ctx, &out, "collateralBalance", opts, tokenID); err != nil {
		return nil, err
	}

	return &CollateralBalance{
		CollateralType: *abi.ConvertType(out[0], new(common.Address)).(*common.Address),
		Escrow:         *abi.ConvertType(out[1], new(common.Address)).(*common.Address),
		Balance:        *abi.ConvertType(out[2], new(*big.Int)).(**big.Int),
	}, nil
}

// Collaterals returns the collateral token addresses a haunt accepts.
func (c *Client) Collaterals(ctx context.Context, hauntID *big.Int, opts ...CallOption) ([]common.Address, error) {
	if hauntID == nil {
		return nil, &CallError{Method: "collaterals", Err: ErrNilHauntID}
	}

	var out []interface{}
	if err := c.call(ctx, &out, "collaterals", opts, hauntID); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new([]common.Address)).(*[]common.Address), nil
}

// AllCollateralTypes returns every collateral token address ever listed,
// across all haunts.
func (c *Client) AllCollateralTypes(ctx context.Context, opts ...CallOption) ([]common.Address, error) {
	var out []interface{}
	if err := c.call(ctx, &out, "getAllCollateralTypes", opts); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new([]common.Address)).(*[]common.Address), nil
}

// CollateralInfo returns the descriptor for one collateral of a haunt,
// addressed by its index in the haunt's collateral list.
func (c *Client) CollateralInfo(ctx context.Context, hauntID, collateralID *big.Int, opts ...CallOption) (*Collateral, error) {
	if hauntID == nil {
		return nil, &CallError{Method: "collateralInfo", Err: ErrNilHauntID}
	}
	if collateralID == nil {
		return nil, &CallError{Method: "collateralInfo", Err: ErrNilCollateralID}
	}

	var out []interface{}
	if err := c.call(ctx, &out, "collateralInfo", opts, hauntID, collateralID); err != nil {
		return nil, err
	}

	info := *abi.ConvertType(out[0], new(Collateral)).(*Collateral)
	return &info, nil
}

// AllCollateralInfo returns the descriptors for every collateral of a haunt.
func (c *Client) AllCollateralInfo(ctx context.Context, hauntID *big.Int, opts ...CallOption) ([]Collateral, error) {
	if hauntID == nil {
		return nil, &CallError{Method: "getCollateralInfo", Err: ErrNilHauntID}
	}

	var out []interface{}
	if err := c.call(ctx, &out, "getCollateralInfo", opts, hauntID); err != nil {
		return nil, err
	}

	return *abi.ConvertType(out[0], new([]Collateral)).(*[]Collateral), nil
}

// call performs a read-only contract call and wraps any failure.
func (c *Client) call(ctx context.Context, out *[]interface{}, method string, opts []CallOption, args ...interface{}) error {
	co := c.callOpts(ctx, opts)
	if err := c.contract.Call(co, out, method, args...); err != nil {
		c.log.Debug().Str("method", method).Err(err).Msg("contract call failed")
		return &CallError{Method: method, Err: err}
	}
	c.log.Debug().Str("method", method).Msg("contract call ok")
	return nil
}
