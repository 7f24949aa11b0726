package main

import (
	"context"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	gotchi "github.com/johnfr14/lib-gotchi"
)

var flagKey string

func init() {
	for _, cmd := range []*cobra.Command{stakeCmd, unstakeCmd, destroyCmd} {
		cmd.Flags().StringVar(&flagKey, "key", "", "hex private key of the token owner")
		cmd.MarkFlagRequired("key")
		rootCmd.AddCommand(cmd)
	}
}

var stakeCmd = &cobra.Command{
	Use:   "stake <token-id> <amount>",
	Short: "Increase the collateral staked behind an Aavegotchi",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStake(cmd, args, (*gotchi.Client).IncreaseStake)
	},
}

var unstakeCmd = &cobra.Command{
	Use:   "unstake <token-id> <amount>",
	Short: "Withdraw collateral from an Aavegotchi's escrow",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStake(cmd, args, (*gotchi.Client).DecreaseStake)
	},
}

var destroyCmd = &cobra.Command{
	Use:   "destroy <token-id> <to-token-id>",
	Short: "Burn an Aavegotchi, reclaim its collateral, move its experience",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
		defer cancel()

		tokenID, err := parseBig(args[0])
		if err != nil {
			return err
		}
		toID, err := parseBig(args[1])
		if err != nil {
			return err
		}

		client, closeFn, err := dialWrite(ctx, flagKey)
		if err != nil {
			return err
		}
		defer closeFn()

		res, err := client.DecreaseAndDestroy(ctx, tokenID, toID)
		if err != nil {
			return err
		}
		reportResult(res)

		transfers, err := client.ExperienceTransferEvents(res.Receipt)
		if err != nil {
			return err
		}
		for _, ev := range transfers {
			fmt.Printf("experience: %s moved from #%s to #%s\n",
				ev.Experience, ev.FromTokenId, ev.ToTokenId)
		}
		return nil
	},
}

// stakeFn is the shared shape of IncreaseStake and DecreaseStake.
type stakeFn func(*gotchi.Client, context.Context, *big.Int, *big.Int, ...gotchi.TxOption) (*gotchi.TxResult, error)

func runStake(cmd *cobra.Command, args []string, fn stakeFn) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
	defer cancel()

	tokenID, err := parseBig(args[0])
	if err != nil {
		return err
	}
	amount, err := parseBig(args[1])
	if err != nil {
		return err
	}

	client, closeFn, err := dialWrite(ctx, flagKey)
	if err != nil {
		return err
	}
	defer closeFn()

	res, err := fn(client, ctx, tokenID, amount)
	if err != nil {
		return err
	}
	reportResult(res)
	return nil
}

func reportResult(res *gotchi.TxResult) {
	fmt.Printf("tx:    %s\n", res.Tx.Hash().Hex())
	fmt.Printf("block: %s\n", res.Receipt.BlockNumber)
}
