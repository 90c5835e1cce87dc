package cmd

import (
	"context"
	"log/slog"

	"github.com/gaze-network/ckb-inscription/internal/config"
	"github.com/gaze-network/ckb-inscription/pkg/logger"
	"github.com/gaze-network/ckb-inscription/pkg/logger/slogx"
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "ckb-inscription",
	Short: "CKB inscription token transaction builder",
	Long: `Builds unsigned CKB transactions for inscription tokens: deploy, mint, close, rebase
and transfer. Cells are read from a CKB indexer, signing and broadcast are left to the wallet.`,
	SilenceUsage: true,
}

func init() {
	var configFile string

	// Add global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file, E.g. `./config.yaml`")
	flags.String("network", "mainnet", "network to build for, E.g. `mainnet` or `testnet`")

	// Bind flags to configuration
	config.BindPFlag("network", flags.Lookup("network"))

	// Initialize configuration and logger on start command
	cobra.OnInitialize(func() {
		conf := config.Parse(configFile)

		if err := logger.Init(conf.Logger); err != nil {
			logger.Panic("Failed to initialize logger", slogx.Error(err), slog.Any("config", conf.Logger))
		}
	})
}

func Execute(ctx context.Context) {
	// Register sub-commands
	cmd.AddCommand(
		NewRunCommand(),
		NewVersionCommand(),
		NewSupplyCommand(),
		NewGenerateKeypairCommand(),
	)

	if err := cmd.ExecuteContext(ctx); err != nil {
		logger.Panic("Failed to execute root command", slogx.Error(err))
	}
}
