package wallet

import (
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/go-transfer/internal/config"
	"github/chapool/go-transfer/internal/util/command"
	"github/chapool/go-transfer/internal/wallet/account"
	"github/chapool/go-transfer/internal/wallet/address"
)

func newAddress() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Prints the account address of a seed phrase",
		Long: `Reads a BIP-39 seed phrase from the terminal (or stdin, or --keystore) and prints the
checksummed address and extended public key of the configured account.
Nothing is sent to the network.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return addressCmdFunc(cmd)
		},
	}

	addPathFlags(cmd)

	return cmd
}

func addressCmdFunc(cmd *cobra.Command) error {
	v, err := newViper(cmd)
	if err != nil {
		return err
	}

	cfg := config.DefaultServiceConfigFromEnv()
	if err := applyOverrides(v, &cfg); err != nil {
		return err
	}
	command.SetupLogger(cfg)

	svc, err := account.NewAddressService(cfg.Wallet)
	if err != nil {
		return err
	}

	phrase, err := readPhrase(cmd, v)
	if err != nil {
		return err
	}

	passphrase, err := readPassphrase(cmd, v)
	if err != nil {
		return err
	}

	result, err := svc.DeriveAddress(cmd.Context(), phrase, passphrase)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Path:    %s\n", result.Path)
	fmt.Fprintf(out, "Address: %s\n", address.Checksum(result.Address))
	fmt.Fprintf(out, "Xpub:    %s\n", result.ExtendedPublicKey)

	return nil
}
