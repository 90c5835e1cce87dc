package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/internal/config"
	"github.com/gaze-network/ckb-inscription/modules/inscription"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/gaze-network/ckb-inscription/pkg/decimals"
	"github.com/spf13/cobra"
)

func NewSupplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "supply <inscription-id>",
		Short: "Print the actual supply of an inscription, measured from its live token cells",
		Args:  cobra.ExactArgs(1),
		RunE:  supplyHandler,
	}
}

func supplyHandler(cmd *cobra.Command, args []string) error {
	conf := config.Load()

	inscriptionId, err := ckb.HexToHash(args[0])
	if err != nil {
		return errors.Wrapf(errs.InvalidArgument, "invalid inscription id %q", args[0])
	}

	uc, err := inscription.NewUsecase(conf)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx := cmd.Context()
	info, err := uc.GetInfo(ctx, inscriptionId)
	if err != nil {
		return errors.WithStack(err)
	}
	supply, err := uc.ActualSupply(ctx, inscriptionId)
	if err != nil {
		return errors.WithStack(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Inscription:   %s (%s)\n", info.Record.Name, info.Record.Symbol)
	fmt.Fprintf(out, "Status:        %s\n", info.Record.Status)
	fmt.Fprintf(out, "Actual supply: %s\n", supply.ActualSupply)
	fmt.Fprintf(out, "Amount:        %s\n", decimals.ToDecimal(supply.ActualSupply, info.Record.Decimal))
	fmt.Fprintf(out, "Token cells:   %d\n", supply.Cells)
	if supply.Truncated {
		fmt.Fprintln(out, "[WARNING] only the first indexer page of token cells was counted")
	}
	return nil
}
