package wallet

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github/chapool/go-transfer/internal/config"
	"github/chapool/go-transfer/internal/util/command"
	"github/chapool/go-transfer/internal/wallet/keystore"
	"golang.org/x/term"
)

const (
	accountFlag    = "account"
	indexFlag      = "index"
	chainIDFlag    = "chain-id"
	broadcastFlag  = "broadcast"
	dynamicFeeFlag = "dynamic-fee"
	rpcFlag        = "rpc"
	valueFlag      = "value-wei"
	passphraseFlag = "passphrase"
	promptFlag     = "prompt-passphrase"
	keystoreFlag   = "keystore"
	pathFlag       = "path"

	envPrefix = "transfer"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("wallet",
		newAddress(),
		newTransfer(),
		newNewPhrase(),
		newVerify(),
		newKeystore(),
	)
}

// newViper layers the flags of cmd over TRANSFER_* env variables. Both only
// apply when explicitly set, the service config stays the default.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, errors.Wrap(err, "failed to bind flags")
	}

	return v, nil
}

func addPathFlags(cmd *cobra.Command) {
	cmd.Flags().Uint32(accountFlag, 0, "BIP-44 account of the derivation path")
	cmd.Flags().Uint32(indexFlag, 0, "BIP-44 address index of the derivation path")
	cmd.Flags().String(pathFlag, "", "Full derivation path, e.g. m/44'/60'/0'/0/3, overrides --account and --index")
	cmd.Flags().String(passphraseFlag, "", "BIP-39 passphrase, prefer --prompt-passphrase or TRANSFER_PASSPHRASE")
	cmd.Flags().Bool(promptFlag, false, "Prompt for the BIP-39 passphrase")
	cmd.Flags().String(keystoreFlag, "", "Read the seed phrase from an encrypted keystore file")
}

func addTransferFlags(cmd *cobra.Command) {
	cmd.Flags().Int64(chainIDFlag, 0, "Chain id the transfer is signed for")
	cmd.Flags().Bool(broadcastFlag, false, "Broadcast the signed transfer")
	cmd.Flags().Bool(dynamicFeeFlag, false, "Sign an EIP-1559 transaction")
	cmd.Flags().StringSlice(rpcFlag, nil, "JSON-RPC node URLs in failover order")
	cmd.Flags().String(valueFlag, "", "Amount to transfer in wei")
}

// applyOverrides copies every explicitly set flag or env value into cfg.
func applyOverrides(v *viper.Viper, cfg *config.Server) error {
	if v.IsSet(accountFlag) {
		cfg.Wallet.Account = v.GetUint32(accountFlag)
	}

	if v.IsSet(indexFlag) {
		cfg.Wallet.AddressIndex = v.GetUint32(indexFlag)
	}

	if v.IsSet(pathFlag) {
		cfg.Wallet.DerivationPath = v.GetString(pathFlag)
	}

	if v.IsSet(chainIDFlag) {
		cfg.Wallet.ChainID = v.GetInt64(chainIDFlag)
	}

	if v.IsSet(broadcastFlag) {
		cfg.Wallet.Broadcast = v.GetBool(broadcastFlag)
	}

	if v.IsSet(dynamicFeeFlag) {
		cfg.Wallet.DynamicFee = v.GetBool(dynamicFeeFlag)
	}

	if v.IsSet(rpcFlag) {
		cfg.Network.RPCURLs = v.GetStringSlice(rpcFlag)
	}

	if v.IsSet(valueFlag) {
		value, ok := new(big.Int).SetString(v.GetString(valueFlag), 10)
		if !ok || value.Sign() < 0 {
			return errors.Errorf("invalid %s %q", valueFlag, v.GetString(valueFlag))
		}

		cfg.Wallet.TransferValue = value
	}

	return nil
}

// readSecret prompts for a secret on a terminal without echoing it, or
// reads a single line from in otherwise. Only the line ending is removed,
// whitespace inside passphrases and passwords is significant.
func readSecret(cmd *cobra.Command, prompt string) (string, error) {
	in := cmd.InOrStdin()

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), prompt)

		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", errors.Wrap(err, "failed to read from terminal")
		}

		return strings.TrimRight(string(b), "\r\n"), nil
	}

	line, err := readLine(in)
	if err != nil {
		return "", errors.Wrap(err, "failed to read from stdin")
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func readSeedPhrase(cmd *cobra.Command) (string, error) {
	phrase, err := readSecret(cmd, "Seed phrase: ")
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(phrase), nil
}

// readLine reads up to and including the next newline without buffering
// past it, so consecutive secrets can be read from one stream.
func readLine(in io.Reader) (string, error) {
	var (
		line strings.Builder
		b    [1]byte
	)

	for {
		n, err := in.Read(b[:])
		if n == 1 {
			if b[0] == '\n' {
				return line.String(), nil
			}
			line.WriteByte(b[0])
		}

		if errors.Is(err, io.EOF) {
			return line.String(), nil
		}
		if err != nil {
			return "", err
		}
	}
}

// readPhrase decrypts the phrase from --keystore when given and reads it
// from the terminal (or stdin) otherwise.
func readPhrase(cmd *cobra.Command, v *viper.Viper) (string, error) {
	path := v.GetString(keystoreFlag)
	if path == "" {
		return readSeedPhrase(cmd)
	}

	ks, err := keystore.Load(path)
	if err != nil {
		return "", err
	}

	password, err := readSecret(cmd, "Keystore password: ")
	if err != nil {
		return "", err
	}

	return keystore.Decrypt(ks, password)
}

func readPassphrase(cmd *cobra.Command, v *viper.Viper) (string, error) {
	if v.GetBool(promptFlag) {
		return readSecret(cmd, "Passphrase: ")
	}

	return v.GetString(passphraseFlag), nil
}
