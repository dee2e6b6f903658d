package wallet

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/go-transfer/internal/config"
	"github/chapool/go-transfer/internal/wallet/address"
	"github/chapool/go-transfer/internal/wallet/signer"
)

func newVerify() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <raw-transaction>",
		Short: "Decodes a signed transaction and recovers its sender",
		Long: `Decodes a 0x prefixed raw transaction, checks it is replay protected for
the configured chain id and prints its sender and fields.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return verifyCmdFunc(cmd, args[0])
		},
	}

	cmd.Flags().Int64(chainIDFlag, 0, "Chain id the transaction must be signed for")

	return cmd
}

func verifyCmdFunc(cmd *cobra.Command, rawHex string) error {
	v, err := newViper(cmd)
	if err != nil {
		return err
	}

	cfg := config.DefaultServiceConfigFromEnv()
	if err := applyOverrides(v, &cfg); err != nil {
		return err
	}

	raw, err := hexutil.Decode(rawHex)
	if err != nil {
		return errors.Wrap(err, "raw transaction is not 0x prefixed hex")
	}

	chainID := big.NewInt(cfg.Wallet.ChainID)

	from, err := signer.Verify(raw, chainID)
	if err != nil {
		return err
	}

	tx, err := signer.Decode(raw)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Hash:     %s\n", tx.Hash().Hex())
	fmt.Fprintf(out, "Type:     %d\n", tx.Type())
	fmt.Fprintf(out, "Chain ID: %s\n", chainID)
	fmt.Fprintf(out, "From:     %s\n", address.Checksum(from))
	if tx.To() != nil {
		fmt.Fprintf(out, "To:       %s\n", address.Checksum(*tx.To()))
	}
	fmt.Fprintf(out, "Nonce:    %d\n", tx.Nonce())
	fmt.Fprintf(out, "Value:    %s wei\n", tx.Value())
	fmt.Fprintf(out, "Gas:      %d\n", tx.Gas())
	fmt.Fprintf(out, "Gas fee:  %s wei\n", tx.GasFeeCap())

	return nil
}
