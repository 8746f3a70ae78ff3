package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"object_explorer/internal/app/service"
	"object_explorer/internal/domain/entity"
	"object_explorer/internal/pkg/utils"
)

var (
	network  string
	byObject bool
	coinPage int
	nftPage  int
	expanded string
	page     int
)

var ownedCmd = &cobra.Command{
	Use:   "owned <ownerId>",
	Short: "Print the owned-objects view of an address or object",
	Long: `Fetches the objects owned by ownerId and prints the rendered view as JSON:
coin groups with totals, and the sorted NFT grid.

Example:
  explorer owned 0x4a2e8b... --network devnet --expanded '0x2::coin::Coin<0x2::sui::SUI>'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		in := entity.PanelInputs{OwnerID: args[0], ByParentObject: byObject, Network: network}
		coins := service.ExpandGroup(service.OnPageChange(entity.ViewState{}, coinPage), expanded)
		// the Failed view is printed too, so scripts see the fixed message
		view, err := app.owned.GetOwnedObjectsView(cmd.Context(), in, coins, nftPage)
		if printErr := printJSON(cmd.OutOrStdout(), view); err == nil {
			err = printErr
		}
		return err
	},
}

var modulesCmd = &cobra.Command{
	Use:   "modules <packageId>",
	Short: "Print one page of a package's disassembled modules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		modules, err := app.modules.GetModulesPage(cmd.Context(), network, args[0], page)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), modules)
	},
}

var stakingCmd = &cobra.Command{
	Use:   "staking <address>",
	Short: "Print the delegations owned by an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApplication(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		summary, err := app.staking.GetStakingSummary(cmd.Context(), network, args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), summary)
	},
}

func init() {
	for _, c := range []*cobra.Command{ownedCmd, modulesCmd, stakingCmd} {
		c.Flags().StringVarP(&network, "network", "n", "", "network identifier (defaults to defaultNetwork)")
	}
	ownedCmd.Flags().BoolVar(&byObject, "by-object", false, "treat the id as a parent object instead of an address")
	ownedCmd.Flags().IntVar(&coinPage, "coin-page", 1, "page of the coin group table")
	ownedCmd.Flags().IntVar(&nftPage, "nft-page", 1, "page of the NFT grid")
	ownedCmd.Flags().StringVar(&expanded, "expanded", "", "coin type tag whose objects are listed")
	modulesCmd.Flags().IntVarP(&page, "page", "p", 1, "page of modules")
}

func printJSON(w io.Writer, v any) error {
	out, err := utils.JSON.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
