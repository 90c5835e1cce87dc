package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/core/constants"
	"github.com/gaze-network/ckb-inscription/modules/inscription"
	inscriptionconstants "github.com/gaze-network/ckb-inscription/modules/inscription/constants"
	"github.com/spf13/cobra"
)

var versions = map[string]string{
	"":               constants.Version,
	inscription.Name: inscriptionconstants.Version,
}

type versionCmdOptions struct {
	Modules string
}

func NewVersionCommand() *cobra.Command {
	opts := &versionCmdOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show ckb-inscription version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return versionHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Modules, "module", "", `Show version of a specific module. E.g. "inscription"`)

	return cmd
}

func versionHandler(opts *versionCmdOptions, cmd *cobra.Command, _ []string) error {
	version, ok := versions[opts.Modules]
	if !ok {
		return errors.Wrapf(errs.Unsupported, "unknown module %q", opts.Modules)
	}
	fmt.Fprintln(cmd.OutOrStdout(), version)
	return nil
}
