package main

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	gotchi "github.com/johnfr14/lib-gotchi"
)

// diamondAddress resolves the target contract from flags, falling back to
// the Polygon deployment.
func diamondAddress() (common.Address, error) {
	if flagDiamond == "" {
		return gotchi.DiamondAddress, nil
	}
	if !common.IsHexAddress(flagDiamond) {
		return common.Address{}, errors.New("invalid diamond address: " + flagDiamond)
	}
	return common.HexToAddress(flagDiamond), nil
}

// dialRead builds a read-only client from the persistent flags.
func dialRead(ctx context.Context) (*gotchi.Client, error) {
	if flagRPC == "" {
		return nil, errors.New("no RPC endpoint: set --rpc or GOTCHI_RPC")
	}
	diamond, err := diamondAddress()
	if err != nil {
		return nil, err
	}
	return gotchi.Dial(ctx, flagRPC, diamond, gotchi.WithLogger(logger))
}

// dialWrite connects, derives a signer for the endpoint's chain id from the
// hex private key, and returns a client able to transact. The returned
// cleanup releases the connection.
func dialWrite(ctx context.Context, hexKey string) (*gotchi.Client, func(), error) {
	if flagRPC == "" {
		return nil, nil, errors.New("no RPC endpoint: set --rpc or GOTCHI_RPC")
	}
	diamond, err := diamondAddress()
	if err != nil {
		return nil, nil, err
	}
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, nil, err
	}

	ec, err := ethclient.DialContext(ctx, flagRPC)
	if err != nil {
		return nil, nil, err
	}
	chainID, err := ec.ChainID(ctx)
	if err != nil {
		ec.Close()
		return nil, nil, err
	}
	auth, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		ec.Close()
		return nil, nil, err
	}

	client := gotchi.NewClient(diamond, ec,
		gotchi.WithSigner(auth),
		gotchi.WithLogger(logger))
	return client, ec.Close, nil
}

// parseBig parses a decimal or 0x-prefixed integer argument.
func parseBig(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, errors.New("invalid integer: " + s)
	}
	return n, nil
}
