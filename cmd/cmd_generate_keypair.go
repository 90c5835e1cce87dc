package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"path"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/ckb-inscription/common/errs"
	"github.com/gaze-network/ckb-inscription/internal/config"
	"github.com/gaze-network/ckb-inscription/pkg/ckb"
	"github.com/spf13/cobra"
)

type generateKeypairCmdOptions struct {
	Path string
}

func NewGenerateKeypairCommand() *cobra.Command {
	opts := &generateKeypairCmdOptions{}

	cmd := &cobra.Command{
		Use:   "generate-keypair",
		Short: "Generate a secp256k1 keypair and its CKB address",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateKeypairHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Path, "path", "/data/keys", `Path to save to key pair file`)

	return cmd
}

func generateKeypairHandler(opts *generateKeypairCmdOptions, cmd *cobra.Command, _ []string) error {
	conf := config.Load()
	if !conf.Network.IsSupported() {
		return errors.Wrapf(errs.Unsupported, "%q network is not supported", conf.Network)
	}
	out := cmd.OutOrStdout()

	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return errors.Wrap(err, "can't generate private key")
	}
	pubKey := privKey.PubKey().SerializeCompressed()
	address := ckb.NewSecpAddress(conf.Network, ckb.Blake160(pubKey))

	fmt.Fprintf(out, "Public key:    %s\n", hex.EncodeToString(pubKey))
	fmt.Fprintf(out, "Address:       %s\n", address.String())
	fmt.Fprintf(out, "Short address: %s\n", address.ShortString())

	if err := os.MkdirAll(opts.Path, 0o755); err != nil {
		return errors.Wrap(err, "create directory")
	}

	privateKeyPath := path.Join(opts.Path, "priv.key")
	if _, err := os.Stat(privateKeyPath); err == nil {
		fmt.Fprintf(out, "Existing private key found at %s\n[WARNING] THE EXISTING PRIVATE KEY WILL BE LOST\nType [replace] to replace existing private key: ", privateKeyPath)
		var ans string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &ans)
		if ans != "replace" {
			fmt.Fprintln(out, "Keypair generation aborted")
			return nil
		}
	}

	if err := os.WriteFile(privateKeyPath, []byte(hex.EncodeToString(privKey.Serialize())), 0o600); err != nil {
		return errors.Wrap(err, "write private key file")
	}
	fmt.Fprintf(out, "Private key saved at %s\n", privateKeyPath)

	publicKeyPath := path.Join(opts.Path, "pub.key")
	if err := os.WriteFile(publicKeyPath, []byte(hex.EncodeToString(pubKey)), 0o644); err != nil {
		return errors.Wrap(err, "write public key file")
	}
	fmt.Fprintf(out, "Public key saved at %s\n", publicKeyPath)

	addressPath := path.Join(opts.Path, "address")
	if err := os.WriteFile(addressPath, []byte(address.String()), 0o644); err != nil {
		return errors.Wrap(err, "write address file")
	}
	fmt.Fprintf(out, "Address saved at %s\n", addressPath)
	return nil
}
