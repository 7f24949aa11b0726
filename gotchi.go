// Package gotchi provides a typed Go client for the Aavegotchi Diamond's
// CollateralFacet.
//
// The facet manages the collateral staked behind each Aavegotchi: which
// collateral tokens a haunt accepts, how much is escrowed for a given token,
// and the stake mutations (increase, decrease, destroy-and-transfer). All of
// that logic lives in the deployed contract; this library only marshals
// arguments, performs the remote call through an RPC provider, and decodes
// the response.
//
// # Basic Usage
//
// Dial an RPC endpoint and read collateral state:
//
//	client, err := gotchi.Dial(ctx, "https://polygon-rpc.com", gotchi.DiamondAddress)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	balance, err := client.CollateralBalance(ctx, big.NewInt(1484))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("escrow %s holds %s of %s\n",
//	    balance.Escrow, balance.Balance, balance.CollateralType)
//
// # Writes
//
// Write operations need a signer. Configure one with WithSigner; each write
// broadcasts the transaction and then waits for it to be mined:
//
//	auth, _ := bind.NewKeyedTransactorWithChainID(key, chainID)
//	client, _ := gotchi.Dial(ctx, rpcURL, gotchi.DiamondAddress, gotchi.WithSigner(auth))
//
//	res, err := client.IncreaseStake(ctx, tokenID, amount)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("mined in block", res.Receipt.BlockNumber)
//
// Ownership checks, stake arithmetic, and experience transfer are all
// enforced on-chain; a call from the wrong account simply reverts and the
// revert surfaces as an error from the write wrapper.
//
// # Errors
//
// Remote failures are wrapped in *CallError (reads) or *TxError (writes)
// carrying the method name. The underlying provider error is reachable with
// errors.Unwrap; the library makes no attempt to classify or retry it.
package gotchi
