package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(collateralsCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(balanceCmd)
}

var collateralsCmd = &cobra.Command{
	Use:   "collaterals [haunt-id]",
	Short: "List collateral token addresses (all haunts, or one haunt)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
		defer cancel()

		client, err := dialRead(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		if len(args) == 0 {
			tokens, err := client.AllCollateralTypes(ctx)
			if err != nil {
				return err
			}
			for _, token := range tokens {
				fmt.Println(token.Hex())
			}
			return nil
		}

		hauntID, err := parseBig(args[0])
		if err != nil {
			return err
		}
		tokens, err := client.Collaterals(ctx, hauntID)
		if err != nil {
			return err
		}
		for _, token := range tokens {
			fmt.Println(token.Hex())
		}
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <haunt-id>",
	Short: "Show the collateral descriptors of a haunt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
		defer cancel()

		hauntID, err := parseBig(args[0])
		if err != nil {
			return err
		}

		client, err := dialRead(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		collaterals, err := client.AllCollateralInfo(ctx, hauntID)
		if err != nil {
			return err
		}

		for i, col := range collaterals {
			info := col.CollateralTypeInfo
			fmt.Printf("[%d] %s\n", i, col.CollateralType.Hex())
			fmt.Printf("    modifiers:  %v\n", info.Modifiers)
			fmt.Printf("    colors:     %s %s %s\n",
				info.PrimaryColorHex(), info.SecondaryColorHex(), info.CheekColorHex())
			fmt.Printf("    svg/eye id: %d/%d\n", info.SvgId, info.EyeShapeSvgId)
			fmt.Printf("    conversion: %d\n", info.ConversionRate)
			if info.Delisted {
				fmt.Printf("    delisted\n")
			}
		}
		return nil
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance <token-id>",
	Short: "Show the escrowed collateral behind an Aavegotchi",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
		defer cancel()

		tokenID, err := parseBig(args[0])
		if err != nil {
			return err
		}

		client, err := dialRead(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		balance, err := client.CollateralBalance(ctx, tokenID)
		if err != nil {
			return err
		}

		fmt.Printf("collateral: %s\n", balance.CollateralType.Hex())
		fmt.Printf("escrow:     %s\n", balance.Escrow.Hex())
		fmt.Printf("balance:    %s\n", balance.Balance)
		return nil
	},
}
