package wallet

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/go-transfer/internal/wallet/keystore"
	"github/chapool/go-transfer/internal/wallet/seed"
)

const lightFlag = "light"

func newKeystore() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keystore <file>",
		Short: "Encrypts a seed phrase into a keystore file",
		Long: `Reads a BIP-39 seed phrase and a password from the terminal (or stdin) and
writes the phrase encrypted with scrypt and AES-128-CTR to <file>. The file
can be passed to the address and transfer commands with --keystore.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return keystoreCmdFunc(cmd, args[0])
		},
	}

	cmd.Flags().Bool(lightFlag, false, "Use cheap scrypt parameters")

	return cmd
}

func keystoreCmdFunc(cmd *cobra.Command, path string) error {
	light, err := cmd.Flags().GetBool(lightFlag)
	if err != nil {
		return err
	}

	phrase, err := readSeedPhrase(cmd)
	if err != nil {
		return err
	}

	if err := seed.Validate(phrase); err != nil {
		return err
	}

	password, err := readSecret(cmd, "Keystore password: ")
	if err != nil {
		return err
	}

	if password == "" {
		return errors.New("keystore password must not be empty")
	}

	params := keystore.StandardScrypt
	if light {
		params = keystore.LightScrypt
	}

	ks, err := keystore.Encrypt(phrase, password, params)
	if err != nil {
		return err
	}

	if err := keystore.Save(path, ks); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Keystore %s written to %s\n", ks.ID, path)

	return nil
}
