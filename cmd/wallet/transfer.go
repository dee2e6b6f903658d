package wallet

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/go-transfer/internal/config"
	"github/chapool/go-transfer/internal/util/command"
	"github/chapool/go-transfer/internal/wallet/account"
	"github/chapool/go-transfer/internal/wallet/address"
	"github/chapool/go-transfer/internal/wallet/network"
)

func newTransfer() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer <receiver>",
		Short: "Signs a transfer from the account of a seed phrase",
		Long: `Reads a BIP-39 seed phrase from the terminal (or stdin, or --keystore), signs a transfer
of the configured value to <receiver> and prints the raw transaction.
The transfer is only broadcast with --broadcast or WALLET_BROADCAST=true.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return transferCmdFunc(cmd, args[0])
		},
	}

	addPathFlags(cmd)
	addTransferFlags(cmd)

	return cmd
}

func transferCmdFunc(cmd *cobra.Command, receiver string) error {
	v, err := newViper(cmd)
	if err != nil {
		return err
	}

	cfg := config.DefaultServiceConfigFromEnv()
	if err := applyOverrides(v, &cfg); err != nil {
		return err
	}
	command.SetupLogger(cfg)

	// fail before prompting for any secret
	receiver, err = address.Normalize(receiver)
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

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dialCtx, cancel := context.WithTimeout(ctx, cfg.Network.DialTimeout)
	defer cancel()

	client, err := network.Dial(dialCtx, cfg.Network.RPCURLs)
	if err != nil {
		return err
	}
	defer client.Close()

	svc, err := account.NewService(cfg.Wallet, client)
	if err != nil {
		return err
	}

	result, err := svc.Transfer(ctx, &account.TransferRequest{
		Phrase:     phrase,
		Passphrase: passphrase,
		Receiver:   receiver,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, result.Message)
	fmt.Fprintf(out, "From:  %s\n", address.Checksum(result.From))
	fmt.Fprintf(out, "To:    %s\n", address.Checksum(result.To))
	fmt.Fprintf(out, "Value: %s wei\n", result.Value)
	fmt.Fprintf(out, "Nonce: %d\n", result.Nonce)
	if result.Broadcast {
		fmt.Fprintf(out, "Hash:  %s\n", result.TxHash)
	}
	fmt.Fprintf(out, "Raw:   %s\n", result.RawTransaction)

	return nil
}
